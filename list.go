// Enumeration of boundaries and registered spans.
package daxutil

import (
	"cmp"
	"iter"
	"maps"
	"slices"
)

// Boundaries yields every boundary in ascending tick order with a copy
// of its Marker. Callers can break early. The timeline must not be
// mutated during iteration.
func (tl *Timeline) Boundaries() iter.Seq2[Tick, *Marker] {
	return func(yield func(Tick, *Marker) bool) {
		tl.tree.Ascend(func(e entry) bool {
			return yield(e.tick, e.marker.Clone())
		})
	}
}

// Spans yields every registered span ordered by id, then begin.
func (tl *Timeline) Spans() iter.Seq[Span] {
	return func(yield func(Span) bool) {
		for _, n := range slices.Sorted(maps.Keys(tl.spans)) {
			for _, s := range tl.SpansOf(n) {
				if !yield(s) {
					return
				}
			}
		}
	}
}

// SpansOf returns the ranges registered for id n, ordered by begin.
func (tl *Timeline) SpansOf(n int) []Span {
	out := slices.Clone(tl.spans[n])
	slices.SortFunc(out, func(a, b Span) int {
		return cmp.Compare(a.Begin, b.Begin)
	})
	return out
}
