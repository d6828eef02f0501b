// Epoch removal.
package daxutil

// Del removes every range registered for epoch n. It visits each
// boundary because a Marker does not know which ranges pass through it;
// deletions are expected to be rarer than queries. Boundaries left
// empty are dropped. Deleting an unknown id is a no-op.
func (tl *Timeline) Del(n int) {
	if _, ok := tl.spans[n]; !ok {
		return
	}

	var dead []entry
	tl.tree.Ascend(func(e entry) bool {
		if e.marker.Remove(n) != 0 && e.marker.Empty() {
			dead = append(dead, e)
		}
		return true
	})
	for _, e := range dead {
		tl.tree.Delete(e)
		if tl.hasCursor && tl.cursor.tick == e.tick {
			tl.dropCursor()
		}
	}
	delete(tl.spans, n)

	if tl.tree.Len() == 0 {
		tl.dropCursor()
	}
}
