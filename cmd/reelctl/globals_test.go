package main

import (
	"os"
	"path/filepath"
	"testing"

	"reelnorm/internal/longsymbol"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReel(t *testing.T) {
	reel, err := parseReel(" 1, 5,5 ,5,5")
	require.NoError(t, err)
	assert.Equal(t, longsymbol.Reel{1, 5, 5, 5, 5}, reel)

	reel, err = parseReel("")
	require.NoError(t, err)
	assert.Empty(t, reel)

	_, err = parseReel("1,x")
	assert.Error(t, err)

	_, err = parseMatrix([]string{"1,2", "3,,4"})
	assert.ErrorContains(t, err, "reel 2")
}

func TestFormatReel(t *testing.T) {
	assert.Equal(t, "48,49,50", formatReel(longsymbol.Reel{48, 49, 50}))
	assert.Equal(t, "", formatReel(nil))
}

func TestGlobalsNormalizer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"game_id":3,"long_symbols":{"5":[48,49,50,51]},"replace_symbols":[2]}`), 0o644))

	g := &Globals{Game: path}
	n, cfg, err := g.normalizer()
	require.NoError(t, err)
	assert.Equal(t, int64(3), cfg.GameID)
	assert.Equal(t, longsymbol.Reel{3, 48, 49, 50, 51}, n.Expand(longsymbol.Reel{3, 5, 5, 5, 5}))

	require.NoError(t, os.WriteFile(path, []byte(`{"long_symbols":{"5":[]}}`), 0o644))
	_, _, err = g.normalizer()
	assert.ErrorIs(t, err, longsymbol.ErrInvalidTable)
}
