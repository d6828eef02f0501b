// Epoch insertion.
//
// A new boundary inherits, as Internals, everything already active on
// the interval it lands in. That set can be read from either existing
// neighbor: the left one's Begins and Internals, or the right one's
// Internals and Ends. Both new boundaries of an Add take their
// inheritance before either is inserted, so neither mistakes the other
// for a pre-existing neighbor. Only then is the new id recorded at its
// own boundaries and at every boundary strictly inside its range.
package daxutil

import "fmt"

// Add registers epoch n over [begin, end). The range must be non-empty
// and must not overlap or touch another range already registered for n;
// on error the timeline is unchanged.
func (tl *Timeline) Add(n int, begin, end Tick) error {
	if begin >= end {
		return fmt.Errorf("%w: epoch %d [%d, %d)", ErrInvalidRange, n, begin, end)
	}
	for _, s := range tl.spans[n] {
		if begin <= s.End && s.Begin <= end {
			return fmt.Errorf("%w: epoch %d [%d, %d) meets [%d, %d)",
				ErrOverlap, n, begin, end, s.Begin, s.End)
		}
	}

	b, bNew := tl.obtain(begin)
	e, eNew := tl.obtain(end)
	if bNew {
		tl.tree.ReplaceOrInsert(entry{begin, b})
	}
	if eNew {
		tl.tree.ReplaceOrInsert(entry{end, e})
	}

	b.AddBegin(n)
	e.AddEnd(n)

	tl.tree.AscendRange(entry{tick: begin}, entry{tick: end}, func(x entry) bool {
		if x.tick != begin {
			x.marker.AddInternal(n)
		}
		return true
	})

	tl.spans[n] = append(tl.spans[n], Span{n, begin, end})
	return nil
}

// obtain returns the Marker at t, building a detached one that has
// absorbed its neighbors if t is not yet a boundary.
func (tl *Timeline) obtain(t Tick) (*Marker, bool) {
	if m, ok := tl.lookup(t); ok {
		return m, false
	}
	m := NewMarker(t)
	if left, ok := tl.before(t); ok {
		m.AbsorbAsRightNeighbor(left)
	}
	if right, ok := tl.after(t); ok {
		m.AbsorbAsLeftNeighbor(right)
	}
	return m, true
}
