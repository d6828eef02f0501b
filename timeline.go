// Core timeline type and lifecycle.
//
// Timeline owns an ordered mapping from boundary tick to Marker, a
// registry of the spans added per id, and a cursor on the last boundary
// returned by a lookup. Markers are held by pointer inside B-tree
// entries and mutated in place; the tree itself is only restructured
// when a boundary is created or dropped.
package daxutil

import (
	"github.com/google/btree"
)

// Config holds timeline options. Zero values select defaults.
type Config struct {
	HashAlgorithm int  // Fingerprint algorithm (default AlgXXHash3)
	Degree        int  // B-tree degree (default 32)
	DisableCursor bool // Always use keyed successor search
}

// Span is one registered epoch: id plus half-open range.
type Span struct {
	ID    int
	Begin Tick
	End   Tick
}

// entry is the B-tree item: a tick and the Marker it owns.
type entry struct {
	tick   Tick
	marker *Marker
}

func byTick(a, b entry) bool {
	return a.tick < b.tick
}

// Timeline is an index of epochs keyed by boundary tick.
type Timeline struct {
	tree   *btree.BTreeG[entry]
	spans  map[int][]Span
	config Config

	cursor    entry
	hasCursor bool
}

// New returns an empty timeline.
func New(config Config) *Timeline {
	if config.HashAlgorithm == 0 {
		config.HashAlgorithm = AlgXXHash3
	}
	if config.Degree < 2 {
		config.Degree = 32
	}
	return &Timeline{
		tree:   btree.NewG(config.Degree, byTick),
		spans:  make(map[int][]Span),
		config: config,
	}
}

// Len returns the number of boundary ticks.
func (tl *Timeline) Len() int {
	return tl.tree.Len()
}

// Empty reports whether no epochs are registered.
func (tl *Timeline) Empty() bool {
	return tl.tree.Len() == 0
}

// Reset drops every epoch.
func (tl *Timeline) Reset() {
	tl.tree.Clear(false)
	clear(tl.spans)
	tl.dropCursor()
}

// lookup returns the Marker at exactly t.
func (tl *Timeline) lookup(t Tick) (*Marker, bool) {
	e, ok := tl.tree.Get(entry{tick: t})
	return e.marker, ok
}

// before returns the closest boundary strictly below t.
func (tl *Timeline) before(t Tick) (*Marker, bool) {
	var m *Marker
	tl.tree.DescendLessOrEqual(entry{tick: t}, func(e entry) bool {
		if e.tick == t {
			return true
		}
		m = e.marker
		return false
	})
	return m, m != nil
}

// after returns the closest boundary strictly above t.
func (tl *Timeline) after(t Tick) (*Marker, bool) {
	var m *Marker
	tl.tree.AscendGreaterOrEqual(entry{tick: t}, func(e entry) bool {
		if e.tick == t {
			return true
		}
		m = e.marker
		return false
	})
	return m, m != nil
}
