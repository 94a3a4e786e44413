package longsymbol

import (
	"fmt"
	"slices"
)

// RollingMode is a named configuration of rolling strip synthesis. Modes only differ in
// where the scan starts relative to the visible contents and in how the seam with the
// contents is closed.
type RollingMode struct {
	Name   string
	Offset int // scan start relative to len(contents)
	// MirrorFront replays the front symbol of the contents from its first visible cell at
	// the scan start.
	MirrorFront bool
	// CompleteCursor completes an incomplete run found at the scan start.
	CompleteCursor bool
}

var (
	FakeRollingMode = RollingMode{Name: "fake", Offset: 1, MirrorFront: true}
	TrueRollingMode = RollingMode{Name: "true", Offset: -2, CompleteCursor: true}
)

// RollingModeByName looks up a predefined rolling mode.
func RollingModeByName(name string) (RollingMode, bool) {
	switch name {
	case FakeRollingMode.Name:
		return FakeRollingMode, true
	case TrueRollingMode.Name:
		return TrueRollingMode, true
	default:
		return RollingMode{}, false
	}
}

// FakeRolling prepares strip for the fake spin animation shown before contents.
func (n *Normalizer) FakeRolling(strip, contents Reel) (Reel, error) {
	return n.Rolling(FakeRollingMode, strip, contents)
}

// TrueRolling prepares strip for the true spin animation leading into contents.
func (n *Normalizer) TrueRolling(strip, contents Reel) (Reel, error) {
	return n.Rolling(TrueRollingMode, strip, contents)
}

// Rolling rewrites strip so that every long symbol on it is either complete or hidden behind
// filler symbols, and so that the symbol cut at the front of contents continues on the strip.
func (n *Normalizer) Rolling(mode RollingMode, strip, contents Reel) (Reel, error) {
	left := len(contents) + mode.Offset
	if len(strip) < 2 || len(contents) == 0 || left < 0 || left >= len(strip) {
		return nil, fmt.Errorf("%w: mode=%s strip=%d contents=%d", ErrShortStrip, mode.Name, len(strip), len(contents))
	}

	s := &rollingScan{
		n:     n,
		t:     n.table,
		reel:  slices.Clone(strip),
		left:  left,
		right: len(strip) - 1,
	}
	s.closeFrontSeam(contents, mode.MirrorFront)
	if mode.CompleteCursor {
		s.completeCursor()
	}
	if err := s.scan(); err != nil {
		return nil, err
	}
	s.finalize()
	return s.reel, nil
}

type runAction int8

const (
	runKeep     runAction = iota // complete occurrence, leave it
	runMask                      // too short to read, hide it
	runExtend                    // long enough, draw the whole symbol
	runMaskRest                  // no room for the whole symbol, hide the rest of the strip
)

// classifyRun decides what to do with a run of runLen cells of a symbolLen long symbol when
// capacity cells remain on the strip.
func classifyRun(symbolLen, runLen, capacity int) runAction {
	switch {
	case runLen < symbolLen/2:
		return runMask
	case runLen == symbolLen:
		return runKeep
	case capacity >= symbolLen:
		return runExtend
	default:
		return runMaskRest
	}
}

type rollingScan struct {
	n     *Normalizer
	t     *Table
	reel  Reel
	left  int
	right int
}

// closeFrontSeam writes the hidden head of the symbol cut at the front of contents backwards
// from the end of the strip.
func (s *rollingScan) closeFrontSeam(contents Reel, mirror bool) {
	front := contents[0]
	cells := s.t.Cells(front)
	if cells == nil || s.t.runLength(contents, 0, Right) >= len(cells) {
		return
	}
	idx, _ := s.t.Ordinal(front)
	for i := idx - 1; i >= 0 && s.right >= s.left; i-- {
		s.reel[s.right] = cells[i]
		s.right--
	}
	if !mirror {
		return
	}
	for i := idx; i < len(cells) && s.left <= s.right; i++ {
		s.reel[s.left] = cells[i]
		s.left++
	}
}

// completeCursor finishes an incomplete symbol sitting under the scan start.
func (s *rollingScan) completeCursor() {
	id := s.reel[s.left]
	cells := s.t.Cells(id)
	if cells == nil || s.t.runLength(s.reel, s.left, Right) >= len(cells) {
		return
	}
	idx, ok := s.t.Ordinal(id)
	if !ok {
		return
	}
	for i := idx; i < len(cells) && s.left <= s.right; i++ {
		s.reel[s.left] = cells[i]
		s.left++
	}
}

func (s *rollingScan) scan() error {
	for s.left <= s.right {
		cells := s.t.Cells(s.reel[s.left])
		if cells == nil {
			s.left++
			continue
		}
		length := s.t.runLength(s.reel, s.left, Right)
		capacity := s.right - s.left + 1

		switch classifyRun(len(cells), length, capacity) {
		case runKeep:
			s.left += length
		case runMask:
			if err := s.mask(min(length, capacity)); err != nil {
				return err
			}
		case runExtend:
			s.left += copy(s.reel[s.left:], cells)
		case runMaskRest:
			if err := s.mask(capacity); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *rollingScan) mask(count int) error {
	for end := s.left + count; s.left < end; s.left++ {
		id, err := s.n.filler()
		if err != nil {
			return err
		}
		s.reel[s.left] = id
	}
	return nil
}

// finalize makes sure the first strip cell never shows a dangling fragment.
func (s *rollingScan) finalize() {
	second := s.reel[1]
	if cells := s.t.Cells(second); cells != nil && s.t.runLength(s.reel, 1, Right) != len(cells) {
		if s.t.isAdjacentCell(s.reel, 1, Left) {
			return
		}
		idx, ok := s.t.Ordinal(second)
		if !ok || idx == 0 {
			s.reel[0] = cells[len(cells)-1]
		} else {
			s.reel[0] = cells[idx-1]
		}
		return
	}
	if cells := s.t.Cells(s.reel[0]); cells != nil {
		s.reel[0] = cells[len(cells)-1]
	}
}
