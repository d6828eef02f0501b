// Integrity verification.
//
// Check walks the boundary sequence once and verifies what Add and Del
// are supposed to maintain. A failure names the first offending tick.
// It exists for tests and diagnostics; nothing in the query path calls
// it.
package daxutil

import (
	"fmt"
	"slices"
)

// Check verifies every Marker and every adjacent pair of boundaries.
func (tl *Timeline) Check() error {
	var err error
	var prev *Marker

	tl.tree.Ascend(func(e entry) bool {
		m := e.marker
		if m.tick != e.tick {
			err = fmt.Errorf("%w: marker at %d keyed as %d", ErrInconsistent, m.tick, e.tick)
			return false
		}
		if m.Empty() {
			err = fmt.Errorf("%w: empty marker at %d", ErrInconsistent, m.tick)
			return false
		}
		if n, ok := m.overlaps(); ok {
			err = fmt.Errorf("%w: epoch %d in more than one set at %d", ErrInconsistent, n, m.tick)
			return false
		}
		if prev == nil {
			if len(m.internals) > 0 || len(m.ends) > 0 {
				err = fmt.Errorf("%w: activity before first boundary %d", ErrInconsistent, m.tick)
				return false
			}
		} else {
			left := ids(nil).merge(prev.begins).merge(prev.internals)
			right := ids(nil).merge(m.internals).merge(m.ends)
			if !slices.Equal(left, right) {
				err = fmt.Errorf("%w: (%d, %d) is %v from the left, %v from the right",
					ErrInconsistent, prev.tick, m.tick, []int(left), []int(right))
				return false
			}
		}
		prev = m
		return true
	})
	if err != nil {
		return err
	}

	if prev != nil && (len(prev.begins) > 0 || len(prev.internals) > 0) {
		return fmt.Errorf("%w: activity after last boundary %d", ErrInconsistent, prev.tick)
	}
	return nil
}
