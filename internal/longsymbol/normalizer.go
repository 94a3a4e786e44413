// Package longsymbol converts reels between logical long symbols and the cell ids they are
// rendered with, and prepares rolling strips so long symbols are never cut at strip seams.
package longsymbol

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	mathrand "math/rand/v2"
	"slices"
	"sync"

	"go.uber.org/zap"
)

var (
	ErrInvalidTable = errors.New("longsymbol: invalid long symbol table")
	ErrEmptyPalette = errors.New("longsymbol: replacement palette is empty")
	ErrShortStrip   = errors.New("longsymbol: rolling strip or contents too short")
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// Reel is one column of symbol ids.
type Reel []int64

// Matrix is a set of reels.
type Matrix []Reel

// Reels pairs the stop matrix with the rolling matrix used for spin animation.
type Reels struct {
	Matrix  Matrix `json:"matrix"`
	Rolling Matrix `json:"rolling"`
}

type options struct {
	replace []int64
	random  bool
	seed    *int64
	logger  *zap.Logger
}

// Option configures a Normalizer.
type Option func(*options)

// WithReplaceSymbols sets the filler palette used to mask unrenderable runs.
func WithReplaceSymbols(ids []int64) Option {
	return func(o *options) { o.replace = slices.Clone(ids) }
}

// WithRandom enables random tiling offsets and filler draws.
func WithRandom(random bool) Option {
	return func(o *options) { o.random = random }
}

// WithSeed makes the generator reproducible.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = &seed }
}

// WithLogger sets the logger used for configuration warnings.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// Normalizer reshapes reels for a fixed long symbol table and replacement palette.
//
// Reel operations are safe to call concurrently; SetLongSymbols and SetReplaceSymbols are not
// and must not overlap with any other call.
type Normalizer struct {
	table   *Table
	replace []int64
	random  bool
	logger  *zap.Logger

	mu  sync.Mutex // guards src and rng
	src *mathrand.PCG
	rng *mathrand.Rand
}

// New creates a Normalizer. An invalid table is rejected with ErrInvalidTable.
func New(longSymbols LongSymbols, opts ...Option) (*Normalizer, error) {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	table, err := NewTable(longSymbols)
	if err != nil {
		return nil, err
	}
	seed := randomSeed()
	if o.seed != nil {
		seed = uint64(*o.seed)
	}
	src := mathrand.NewPCG(mix(seed), mix(seed+goldenRatio64))
	return &Normalizer{
		table:   table,
		replace: o.replace,
		random:  o.random,
		logger:  o.logger,
		src:     src,
		rng:     mathrand.New(src),
	}, nil
}

func randomSeed() uint64 {
	var seed uint64
	if err := binary.Read(rand.Reader, binary.LittleEndian, &seed); err != nil {
		return mathrand.Uint64()
	}
	return seed
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// Clone returns an independent Normalizer with the same configuration and generator state.
func (n *Normalizer) Clone() *Normalizer {
	n.mu.Lock()
	state, err := n.src.MarshalBinary()
	n.mu.Unlock()

	src := mathrand.NewPCG(0, 0)
	if err == nil {
		err = src.UnmarshalBinary(state)
	}
	if err != nil {
		n.logger.Warn("longsymbol: clone generator state", zap.Error(err))
		src = mathrand.NewPCG(mix(randomSeed()), mix(randomSeed()))
	}
	return &Normalizer{
		table:   n.table,
		replace: slices.Clone(n.replace),
		random:  n.random,
		logger:  n.logger,
		src:     src,
		rng:     mathrand.New(src),
	}
}

// SetLongSymbols replaces the table. The previous table is kept when validation fails.
func (n *Normalizer) SetLongSymbols(longSymbols LongSymbols) error {
	table, err := NewTable(longSymbols)
	if err != nil {
		return err
	}
	n.table = table
	return nil
}

// SetReplaceSymbols replaces the filler palette.
func (n *Normalizer) SetReplaceSymbols(ids []int64) {
	n.replace = slices.Clone(ids)
}

// LongSymbols returns a copy of the configured long symbols.
func (n *Normalizer) LongSymbols() LongSymbols { return n.table.Snapshot() }

// ReplaceSymbols returns a copy of the filler palette.
func (n *Normalizer) ReplaceSymbols() []int64 { return slices.Clone(n.replace) }

// UseRandom reports whether draws are random.
func (n *Normalizer) UseRandom() bool { return n.random }

// Table returns the indexed long symbol table.
func (n *Normalizer) Table() *Table { return n.table }

// IsPartOfLongSymbol reports whether id is a long symbol key or one of its cells.
func (n *Normalizer) IsPartOfLongSymbol(id int64) bool { return n.table.IsMember(id) }

// LongSymbol returns a copy of the cell sequence id belongs to, nil if unrelated.
func (n *Normalizer) LongSymbol(id int64) []int64 { return slices.Clone(n.table.Cells(id)) }

// drawIndex returns a uniform index in [0, size) in random mode and 0 otherwise.
func (n *Normalizer) drawIndex(size int) int {
	if !n.random || size <= 1 {
		return 0
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.rng.IntN(size)
}

func (n *Normalizer) filler() (int64, error) {
	if len(n.replace) == 0 {
		return 0, ErrEmptyPalette
	}
	return n.replace[n.drawIndex(len(n.replace))], nil
}

// tile fills size cells with the sequence of id, starting at a drawn offset and wrapping.
func (n *Normalizer) tile(id int64, size int) Reel {
	cells := n.table.Cells(id)
	out := make(Reel, size)
	idx := n.drawIndex(len(cells))
	for i := range out {
		out[i] = cells[idx]
		idx = (idx + 1) % len(cells)
	}
	return out
}

// singleLogical returns the logical key every id of reel restores to, if there is one.
func (n *Normalizer) singleLogical(reel Reel) (int64, bool) {
	if len(reel) == 0 {
		return 0, false
	}
	first := n.table.Logical(reel[0])
	if !n.table.IsLogical(first) {
		return 0, false
	}
	for _, id := range reel[1:] {
		if n.table.Logical(id) != first {
			return 0, false
		}
	}
	return first, true
}
