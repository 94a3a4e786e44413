package longsymbol

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRestore(t *testing.T) {
	n := newTestNormalizer(t)

	tiles := []struct {
		logical  Reel
		expanded Reel
	}{
		{Reel{5, 5, 5, 5, 5, 5}, Reel{51, 48, 49, 50, 51, 48}},
		{Reel{6, 6, 6, 6, 6, 6}, Reel{52, 53, 54, 55, 52, 53}},
		{Reel{7, 7, 7, 7, 7, 7}, Reel{59, 56, 57, 58, 59, 56}},
	}
	for _, tt := range tiles {
		assert.Equal(t, tt.logical, n.Restore(tt.expanded))
	}

	for _, tt := range expandCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.logical, n.Restore(tt.expanded))
		})
	}
}

func TestRestore_Identity(t *testing.T) {
	n := newTestNormalizer(t)
	assert.Nil(t, n.Restore(nil))
	assert.Equal(t, Reel{9, 10, 11}, n.Restore(Reel{9, 10, 11}))
	assert.Equal(t, Reel{5, 6, 9}, n.Restore(Reel{5, 6, 9}))
}

func TestRestore_Idempotent(t *testing.T) {
	n := newTestNormalizer(t)
	for _, reel := range []Reel{
		{45, 10, 40, 41, 9, 42},
		{51, 48, 49, 6, 55, 12},
		{9, 9, 9},
	} {
		once := n.Restore(reel)
		assert.Equal(t, once, n.Restore(once))
	}
}

func TestRestore_DoesNotModifyInput(t *testing.T) {
	n := newTestNormalizer(t)
	in := Reel{45, 10, 40, 41, 9, 42}
	_ = n.Restore(in)
	assert.Equal(t, Reel{45, 10, 40, 41, 9, 42}, in)
}

func TestRestoreMatrixAndReels(t *testing.T) {
	n := newTestNormalizer(t)
	got := n.RestoreReels(Reels{
		Matrix:  Matrix{{45, 10, 40, 41, 9, 42}},
		Rolling: Matrix{{52, 53, 54, 55, 12, 13}, {9}},
	})
	assert.Equal(t, Matrix{{3, 10, 1, 1, 9, 2}}, got.Matrix)
	assert.Equal(t, Matrix{{6, 6, 6, 6, 12, 13}, {9}}, got.Rolling)
	assert.Nil(t, n.RestoreMatrix(nil))
}
