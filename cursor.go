// Successor lookup with a locality cursor.
//
// Queries usually arrive in runs of nearby or increasing ticks. The
// cursor remembers the last boundary returned so the next lookup can
// start from there:
//
//   - cursor hit: the cursor already sits on the query tick.
//   - keyed hit: the query tick is itself a boundary. O(log n).
//   - walk: step from the cursor toward the query, one boundary at a
//     time, moving the cursor as we go. Cheap when the query is close.
//
// Results never depend on the cursor, only cost does.
package daxutil

// findAfter returns the Marker at the smallest boundary >= t, or false
// if t lies above every boundary.
func (tl *Timeline) findAfter(t Tick) (*Marker, bool) {
	if tl.tree.Len() == 0 {
		tl.dropCursor()
		return nil, false
	}

	if tl.config.DisableCursor {
		return tl.successor(t)
	}

	if tl.hasCursor && tl.cursor.tick == t {
		return tl.cursor.marker, true
	}
	if e, ok := tl.tree.Get(entry{tick: t}); ok {
		tl.setCursor(e)
		return e.marker, true
	}

	if !tl.hasCursor {
		first, _ := tl.tree.Min()
		tl.setCursor(first)
	}

	if tl.cursor.tick > t {
		return tl.walkDown(t)
	}
	return tl.walkUp(t)
}

// walkDown moves the cursor toward lower ticks while the boundary
// below it is still above t.
func (tl *Timeline) walkDown(t Tick) (*Marker, bool) {
	tl.tree.DescendLessOrEqual(tl.cursor, func(e entry) bool {
		if e.tick < t {
			return false
		}
		tl.cursor = e
		return true
	})
	return tl.cursor.marker, true
}

// walkUp moves the cursor toward higher ticks until it reaches one at
// or above t. Running off the end leaves the cursor on the last
// boundary.
func (tl *Timeline) walkUp(t Tick) (*Marker, bool) {
	found := false
	tl.tree.AscendGreaterOrEqual(tl.cursor, func(e entry) bool {
		tl.cursor = e
		if e.tick >= t {
			found = true
			return false
		}
		return true
	})
	if !found {
		return nil, false
	}
	return tl.cursor.marker, true
}

// successor is the plain keyed search used when the cursor is disabled.
func (tl *Timeline) successor(t Tick) (*Marker, bool) {
	var m *Marker
	tl.tree.AscendGreaterOrEqual(entry{tick: t}, func(e entry) bool {
		m = e.marker
		return false
	})
	return m, m != nil
}

func (tl *Timeline) setCursor(e entry) {
	tl.cursor = e
	tl.hasCursor = true
}

func (tl *Timeline) dropCursor() {
	tl.cursor = entry{}
	tl.hasCursor = false
}
