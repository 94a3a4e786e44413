package longsymbol

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyRun(t *testing.T) {
	tests := []struct {
		symbolLen, runLen, capacity int
		want                        runAction
	}{
		{4, 1, 10, runMask},
		{4, 2, 10, runExtend},
		{4, 3, 4, runExtend},
		{4, 3, 3, runMaskRest},
		{4, 4, 1, runKeep},
		{4, 5, 10, runExtend},
		{2, 1, 2, runExtend},
		{2, 1, 1, runMaskRest},
		{1, 1, 1, runKeep},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, classifyRun(tt.symbolLen, tt.runLen, tt.capacity), "%+v", tt)
	}
}

func TestRollingModeByName(t *testing.T) {
	m, ok := RollingModeByName("fake")
	require.True(t, ok)
	assert.Equal(t, FakeRollingMode, m)

	m, ok = RollingModeByName("true")
	require.True(t, ok)
	assert.Equal(t, TrueRollingMode, m)

	_, ok = RollingModeByName("slow")
	assert.False(t, ok)
}

func TestFakeRolling(t *testing.T) {
	n := newTestNormalizer(t, WithReplaceSymbols([]int64{9}))

	contents := Reel{54, 55, 10, 11}
	strip := Reel{54, 55, 10, 11, 12, 13, 14, 40, 12, 52, 53, 12, 13, 56, 57, 12}
	want := Reel{54, 55, 10, 11, 12, 54, 55, 40, 41, 52, 53, 54, 55, 9, 52, 53}

	got, err := n.FakeRolling(strip, contents)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, Reel{54, 55, 10, 11, 12, 13, 14, 40, 12, 52, 53, 12, 13, 56, 57, 12}, strip)
}

func TestTrueRolling(t *testing.T) {
	n := newTestNormalizer(t, WithReplaceSymbols([]int64{9}))

	tests := []struct {
		name     string
		contents Reel
		strip    Reel
		want     Reel
	}{
		{
			name:     "seam and cursor",
			contents: Reel{54, 55, 10, 11},
			strip:    Reel{12, 12, 54, 12, 12, 56, 57, 58, 12, 40, 12, 12, 12, 12},
			want:     Reel{12, 12, 54, 55, 12, 56, 57, 58, 59, 40, 41, 12, 52, 53},
		},
		{
			name:     "first cell completes a cut symbol",
			contents: Reel{10, 11, 12},
			strip:    Reel{40, 53, 54, 12, 12, 12},
			want:     Reel{52, 53, 54, 55, 12, 12},
		},
		{
			name:     "first cell shows the tail",
			contents: Reel{10, 11, 12},
			strip:    Reel{52, 12, 12, 12},
			want:     Reel{55, 12, 12, 12},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := n.TrueRolling(tt.strip, tt.contents)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRolling_Classification(t *testing.T) {
	n := newTestNormalizer(t, WithReplaceSymbols([]int64{8, 9}))
	contents := Reel{10, 11}

	tests := []struct {
		name  string
		strip Reel
		want  Reel
	}{
		{"short run is masked", Reel{10, 11, 12, 53, 12, 12, 12, 12}, Reel{10, 11, 12, 8, 12, 12, 12, 12}},
		{"no room masks the rest", Reel{10, 11, 12, 12, 12, 12, 52, 53, 54}, Reel{10, 11, 12, 12, 12, 12, 8, 8, 8}},
		{"complete symbol is kept", Reel{10, 11, 12, 52, 53, 54, 55, 12}, Reel{10, 11, 12, 52, 53, 54, 55, 12}},
		{"medium run is extended", Reel{10, 11, 12, 53, 54, 55, 12, 12}, Reel{10, 11, 12, 52, 53, 54, 55, 12}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := n.FakeRolling(tt.strip, contents)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRolling_Errors(t *testing.T) {
	n := newTestNormalizer(t)

	_, err := n.FakeRolling(Reel{10}, Reel{10, 11})
	require.ErrorIs(t, err, ErrShortStrip)

	_, err = n.TrueRolling(Reel{10, 11, 12, 13}, Reel{10})
	require.ErrorIs(t, err, ErrShortStrip)

	_, err = n.FakeRolling(Reel{10, 11, 12}, nil)
	require.ErrorIs(t, err, ErrShortStrip)

	_, err = n.FakeRolling(Reel{10, 11, 12, 53, 12}, Reel{10, 11})
	require.ErrorIs(t, err, ErrEmptyPalette)
}

func TestRolling_NoPartialSymbols(t *testing.T) {
	n := newTestNormalizer(t, WithRandom(true), WithSeed(5), WithReplaceSymbols([]int64{8, 9}))
	table := n.Table()
	rng := rand.New(rand.NewPCG(3, 4))
	alphabet := []int64{10, 11, 12, 13, 14, 40, 41, 42, 43, 48, 49, 50, 51, 52, 53, 54, 55}
	contents := Reel{10, 11}
	start := len(contents) + FakeRollingMode.Offset

	for range 1000 {
		strip := make(Reel, 6+rng.IntN(20))
		for i := range strip {
			for {
				id := alphabet[rng.IntN(len(alphabet))]
				if i == 0 || id != strip[i-1] {
					strip[i] = id
					break
				}
			}
		}

		got, err := n.FakeRolling(strip, contents)
		require.NoError(t, err)

		for pos := start; pos < len(got); {
			cells := table.Cells(got[pos])
			if cells == nil {
				pos++
				continue
			}
			require.LessOrEqual(t, pos+len(cells), len(got), "cut symbol in %v (from %v)", got, strip)
			require.Equal(t, Reel(cells), got[pos:pos+len(cells)], "partial symbol in %v (from %v)", got, strip)
			pos += len(cells)
		}
	}
}
