// Per-tick boundary records.
//
// A Marker sits at one boundary tick and classifies every epoch that
// touches that tick into exactly one of three sets: Begins (range starts
// here), Ends (range stops here, so the epoch is not active at the tick)
// and Internals (range strictly contains the tick). Sets are kept sorted
// largest first so the winning id is always at index 0.
package daxutil

import (
	"cmp"
	"fmt"
	"slices"
)

// Tick is a point on the discrete 64-bit clock. Ranges are half-open.
type Tick int64

// Sets is a bitmask naming the Marker sets touched by Remove.
type Sets uint8

const (
	SetBegins Sets = 1 << iota
	SetInternals
	SetEnds
)

// ids is a set of epoch ids in descending order.
type ids []int

func descending(e, target int) int {
	return cmp.Compare(target, e)
}

func (s ids) find(n int) (int, bool) {
	return slices.BinarySearchFunc(s, n, descending)
}

func (s ids) contains(n int) bool {
	_, ok := s.find(n)
	return ok
}

func (s ids) insert(n int) ids {
	i, ok := s.find(n)
	if ok {
		return s
	}
	return slices.Insert(s, i, n)
}

func (s ids) remove(n int) (ids, bool) {
	i, ok := s.find(n)
	if !ok {
		return s, false
	}
	return slices.Delete(s, i, i+1), true
}

// merge inserts every id of o. Both are descending, so a linear merge
// keeps the result sorted without repeated shifting.
func (s ids) merge(o ids) ids {
	if len(o) == 0 {
		return s
	}
	if len(s) == 0 {
		return slices.Clone(o)
	}
	out := make(ids, 0, len(s)+len(o))
	i, j := 0, 0
	for i < len(s) && j < len(o) {
		switch {
		case s[i] > o[j]:
			out = append(out, s[i])
			i++
		case s[i] < o[j]:
			out = append(out, o[j])
			j++
		default:
			out = append(out, s[i])
			i++
			j++
		}
	}
	out = append(out, s[i:]...)
	return append(out, o[j:]...)
}

// top returns the larger of the two heads.
func top(a, b ids) (int, bool) {
	switch {
	case len(a) == 0 && len(b) == 0:
		return 0, false
	case len(a) == 0:
		return b[0], true
	case len(b) == 0:
		return a[0], true
	}
	return max(a[0], b[0]), true
}

// Marker records how epochs relate to a single boundary tick.
type Marker struct {
	tick      Tick
	begins    ids
	internals ids
	ends      ids
}

// NewMarker returns an empty Marker for tick t.
func NewMarker(t Tick) *Marker {
	return &Marker{tick: t}
}

// Tick returns the boundary tick.
func (m *Marker) Tick() Tick { return m.tick }

// AddBegin records that epoch n starts at this tick.
func (m *Marker) AddBegin(n int) { m.begins = m.begins.insert(n) }

// AddEnd records that epoch n stops at this tick.
func (m *Marker) AddEnd(n int) { m.ends = m.ends.insert(n) }

// AddInternal records that epoch n passes through this tick.
func (m *Marker) AddInternal(n int) { m.internals = m.internals.insert(n) }

// LeftValue is the winning epoch on the interval that starts at this
// tick: the largest id in Internals or Begins.
func (m *Marker) LeftValue() (int, bool) {
	return top(m.internals, m.begins)
}

// RightValue is the winning epoch on the interval that stops at this
// tick: the largest id in Internals or Ends.
func (m *Marker) RightValue() (int, bool) {
	return top(m.internals, m.ends)
}

// Empty reports whether no epoch touches this tick.
func (m *Marker) Empty() bool {
	return len(m.begins) == 0 && len(m.internals) == 0 && len(m.ends) == 0
}

// Remove drops n from whichever sets hold it and reports which did.
func (m *Marker) Remove(n int) Sets {
	var hit Sets
	var ok bool
	if m.begins, ok = m.begins.remove(n); ok {
		hit |= SetBegins
	}
	if m.internals, ok = m.internals.remove(n); ok {
		hit |= SetInternals
	}
	if m.ends, ok = m.ends.remove(n); ok {
		hit |= SetEnds
	}
	return hit
}

// AbsorbAsLeftNeighbor fills Internals for a Marker newly placed
// directly to the left of right. Anything continuing through or ending
// at right, and not starting between the two, passes through here.
func (m *Marker) AbsorbAsLeftNeighbor(right *Marker) {
	m.internals = m.internals.merge(right.internals).merge(right.ends)
}

// AbsorbAsRightNeighbor is the mirror of AbsorbAsLeftNeighbor for a
// Marker newly placed directly to the right of left.
func (m *Marker) AbsorbAsRightNeighbor(left *Marker) {
	m.internals = m.internals.merge(left.begins).merge(left.internals)
}

// Begins returns a copy of the ids starting here, largest first.
func (m *Marker) Begins() []int { return slices.Clone(m.begins) }

// Internals returns a copy of the ids passing through, largest first.
func (m *Marker) Internals() []int { return slices.Clone(m.internals) }

// Ends returns a copy of the ids stopping here, largest first.
func (m *Marker) Ends() []int { return slices.Clone(m.ends) }

// Clone returns a deep copy.
func (m *Marker) Clone() *Marker {
	return &Marker{
		tick:      m.tick,
		begins:    slices.Clone(m.begins),
		internals: slices.Clone(m.internals),
		ends:      slices.Clone(m.ends),
	}
}

func (m *Marker) String() string {
	return fmt.Sprintf("t=%d begins=%v internals=%v ends=%v",
		m.tick, []int(m.begins), []int(m.internals), []int(m.ends))
}

// overlaps reports whether any id sits in more than one set.
func (m *Marker) overlaps() (int, bool) {
	for _, n := range m.begins {
		if m.internals.contains(n) || m.ends.contains(n) {
			return n, true
		}
	}
	for _, n := range m.internals {
		if m.ends.contains(n) {
			return n, true
		}
	}
	return 0, false
}
