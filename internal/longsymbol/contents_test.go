package longsymbol

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpdateContents(t *testing.T) {
	n := newTestNormalizer(t)

	tests := []struct {
		in   Reel
		want Reel
	}{
		{Reel{9, 51, 48, 49, 50, 51, 48, 9}, Reel{50, 51, 48, 49, 50, 51, 48, 49}},
		{Reel{9, 52, 53, 54, 55, 52, 53, 9}, Reel{9, 52, 53, 54, 55, 52, 53, 54}},
		{Reel{9, 59, 56, 57, 58, 59, 56, 9}, Reel{58, 59, 56, 57, 58, 59, 56, 57}},
		{Reel{9, 45, 10, 40, 41, 9, 42, 9}, Reel{44, 45, 10, 40, 41, 9, 42, 43}},
		{Reel{9, 44, 45, 40, 41, 42, 43, 9}, Reel{9, 44, 45, 40, 41, 42, 43, 9}},
		{Reel{9, 40, 41, 14, 10, 52, 53, 9}, Reel{9, 40, 41, 14, 10, 52, 53, 54}},
		{Reel{9, 54, 55, 11, 10, 10, 52, 9}, Reel{53, 54, 55, 11, 10, 10, 52, 53}},
		{Reel{9, 53, 54, 55, 14, 11, 52, 9}, Reel{52, 53, 54, 55, 14, 11, 52, 53}},
		{Reel{9, 52, 53, 54, 55, 12, 13, 9}, Reel{9, 52, 53, 54, 55, 12, 13, 9}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, n.UpdateContents(tt.in), "contents %v", tt.in)
	}
}

func TestUpdateContents_EdgeOwnSymbol(t *testing.T) {
	n := newTestNormalizer(t)

	// complete neighbour: the edge shows the tail (top) or head (bottom) of its own symbol
	assert.Equal(t, Reel{41, 52, 53, 54, 55, 42}, n.UpdateContents(Reel{40, 52, 53, 54, 55, 43}))
	// unrelated neighbour
	assert.Equal(t, Reel{41, 10, 11, 42}, n.UpdateContents(Reel{40, 10, 11, 43}))
}

func TestUpdateContents_FullTile(t *testing.T) {
	n := newTestNormalizer(t)
	assert.Equal(t, Reel{48, 49, 50, 51}, n.UpdateContents(Reel{49, 50, 51, 48}))
	assert.Equal(t, Reel{52, 53, 54}, n.UpdateContents(Reel{6, 6, 6}))
	assert.Equal(t, Reel{48}, n.UpdateContents(Reel{51}))
}

func TestUpdateContents_ShortWindows(t *testing.T) {
	n := newTestNormalizer(t)
	assert.Nil(t, n.UpdateContents(nil))
	assert.Equal(t, Reel{9}, n.UpdateContents(Reel{9}))
	assert.Equal(t, Reel{50, 51}, n.UpdateContents(Reel{9, 51}))
	// the bottom edge is only stitched from three cells on
	assert.Equal(t, Reel{51, 9}, n.UpdateContents(Reel{51, 9}))
	assert.Equal(t, Reel{9, 9, 9}, n.UpdateContents(Reel{9, 9, 9}))
}

func TestUpdateContents_LogicalNeighbour(t *testing.T) {
	n := newTestNormalizer(t)
	assert.Equal(t, Reel{55, 6, 10, 6, 52}, n.UpdateContents(Reel{9, 6, 10, 6, 9}))
}

func TestUpdateContents_DoesNotModifyInput(t *testing.T) {
	n := newTestNormalizer(t)
	in := Reel{9, 51, 48, 49, 50, 51, 48, 9}
	_ = n.UpdateContents(in)
	assert.Equal(t, Reel{9, 51, 48, 49, 50, 51, 48, 9}, in)
}
