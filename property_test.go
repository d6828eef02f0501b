// Randomised property tests.
//
// The incremental bookkeeping in Add and Del is easy to get subtly
// wrong at boundaries that are created next to each other, inherited
// from a neighbor, or left behind by a deletion. Rather than enumerate
// those cases by hand, these tests drive the timeline with random
// overlapping epochs and compare every answer against a brute-force
// model that simply scans the live spans. Query order is shuffled so
// the cursor walks in both directions and from stale positions.
package daxutil

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"
)

// model is the obviously-correct reference: a list of live spans.
type model struct {
	spans []Span
}

func (m *model) add(s Span) { m.spans = append(m.spans, s) }

func (m *model) del(n int) {
	m.spans = slices.DeleteFunc(m.spans, func(s Span) bool { return s.ID == n })
}

func (m *model) active(t Tick) []int {
	var out []int
	for _, s := range m.spans {
		if s.Begin <= t && t < s.End && !slices.Contains(out, s.ID) {
			out = append(out, s.ID)
		}
	}
	slices.Sort(out)
	slices.Reverse(out)
	return out
}

func (m *model) epoch(t Tick) (int, bool) {
	a := m.active(t)
	if len(a) == 0 {
		return 0, false
	}
	return a[0], true
}

const (
	sweepLo = Tick(-3)
	sweepHi = Tick(64)
)

// compare checks every tick in the sweep window, in shuffled order.
func compare(t *testing.T, rng *rand.Rand, tl *Timeline, m *model, step int) {
	t.Helper()
	if err := tl.Check(); err != nil {
		t.Fatalf("step %d: %v", step, err)
	}

	var ticks []Tick
	for x := sweepLo; x < sweepHi; x++ {
		ticks = append(ticks, x)
	}
	switch rng.IntN(3) {
	case 0:
		rng.Shuffle(len(ticks), func(i, j int) { ticks[i], ticks[j] = ticks[j], ticks[i] })
	case 1:
		slices.Reverse(ticks)
	}

	for _, x := range ticks {
		got, gok := tl.Epoch(x)
		want, wok := m.epoch(x)
		if got != want || gok != wok {
			t.Fatalf("step %d: Epoch(%d) = %d, %v; model %d, %v", step, x, got, gok, want, wok)
		}
		if a, b := tl.Active(x), m.active(x); !equalInts(a, b) {
			t.Fatalf("step %d: Active(%d) = %v; model %v", step, x, a, b)
		}
	}
}

func randomSpan(rng *rand.Rand, n int) Span {
	b := Tick(rng.IntN(60))
	e := b + 1 + Tick(rng.IntN(20))
	return Span{n, b, e}
}

func TestRandomAgainstModel(t *testing.T) {
	for seed := range uint64(40) {
		for _, config := range []Config{{}, {DisableCursor: true}, {Degree: 2}} {
			rng := rand.New(rand.NewPCG(seed, 0xda7))
			tl := New(config)
			m := &model{}
			live := map[int]bool{}

			for step := range 60 {
				n := 1 + rng.IntN(12)
				if live[n] && rng.IntN(3) > 0 {
					tl.Del(n)
					m.del(n)
					delete(live, n)
				} else if !live[n] {
					s := randomSpan(rng, n)
					if err := tl.Add(s.ID, s.Begin, s.End); err != nil {
						t.Fatalf("seed %d step %d: Add %v: %v", seed, step, s, err)
					}
					m.add(s)
					live[n] = true
				}
				compare(t, rng, tl, m, step)
			}
		}
	}
}

// TestRandomRepeatedIDs lets one id hold several disjoint ranges. An
// Add that meets an existing range of the same id must fail and leave
// everything unchanged, and Del must drop every range of the id at once.
func TestRandomRepeatedIDs(t *testing.T) {
	for seed := range uint64(40) {
		for _, config := range []Config{{}, {DisableCursor: true}} {
			rng := rand.New(rand.NewPCG(seed, 0x5ba))
			tl := New(config)
			m := &model{}

			for step := range 80 {
				n := 1 + rng.IntN(6)
				if rng.IntN(4) == 0 {
					tl.Del(n)
					m.del(n)
					if len(tl.SpansOf(n)) != 0 {
						t.Fatalf("seed %d step %d: spans of %d survived Del", seed, step, n)
					}
				} else {
					s := randomSpan(rng, n)
					meets := slices.ContainsFunc(m.spans, func(o Span) bool {
						return o.ID == n && s.Begin <= o.End && o.Begin <= s.End
					})
					fp := tl.Fingerprint()
					err := tl.Add(s.ID, s.Begin, s.End)
					switch {
					case meets && !errors.Is(err, ErrOverlap):
						t.Fatalf("seed %d step %d: Add %v = %v, want ErrOverlap", seed, step, s, err)
					case meets && tl.Fingerprint() != fp:
						t.Fatalf("seed %d step %d: rejected Add %v changed the timeline", seed, step, s)
					case !meets && err != nil:
						t.Fatalf("seed %d step %d: Add %v: %v", seed, step, s, err)
					case !meets:
						m.add(s)
					}
				}
				if got, want := len(tl.SpansOf(n)), countID(m, n); got != want {
					t.Fatalf("seed %d step %d: %d spans for %d, model %d", seed, step, got, n, want)
				}
				compare(t, rng, tl, m, step)
			}
		}
	}
}

func countID(m *model, n int) int {
	c := 0
	for _, s := range m.spans {
		if s.ID == n {
			c++
		}
	}
	return c
}

// TestDeletionRoundTrip adds and then deletes one extra epoch and
// expects every query to answer as before. The boundary set itself may
// differ: boundaries the extra epoch created can survive holding only
// inherited Internals, which is harmless to queries.
func TestDeletionRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	for range 50 {
		tl := New(Config{})
		for n := range 8 {
			s := randomSpan(rng, n+1)
			tl.Add(s.ID, s.Begin, s.End)
		}

		before := snapshot(tl)
		// Above every other id it wins wherever it lands; below, it never does.
		id := 100
		if rng.IntN(2) == 0 {
			id = -100
		}
		extra := randomSpan(rng, id)
		if err := tl.Add(extra.ID, extra.Begin, extra.End); err != nil {
			t.Fatal(err)
		}
		tl.Del(extra.ID)

		if err := tl.Check(); err != nil {
			t.Fatal(err)
		}
		if after := snapshot(tl); !slices.Equal(before, after) {
			t.Fatalf("round trip of %v changed answers:\n before %v\n after  %v", extra, before, after)
		}
	}
}

// TestDeleteUnknownIsNoop verifies Del of an id never added leaves the
// boundary sequence byte-for-byte identical.
func TestDeleteUnknownIsNoop(t *testing.T) {
	tl := newScenario(t, Config{})
	fp := tl.Fingerprint()
	answers := snapshot(tl)

	tl.Del(99)
	tl.Del(-1)

	if tl.Fingerprint() != fp {
		t.Error("Del of unknown id changed the boundaries")
	}
	if !slices.Equal(snapshot(tl), answers) {
		t.Error("Del of unknown id changed query answers")
	}
}

// TestEmptinessCollapse deletes every epoch touching a chosen boundary
// and expects the boundary to be gone.
func TestEmptinessCollapse(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 11))
	for range 50 {
		tl := New(Config{})
		var spans []Span
		for n := range 10 {
			s := randomSpan(rng, n+1)
			tl.Add(s.ID, s.Begin, s.End)
			spans = append(spans, s)
		}

		var ticks []Tick
		for tick := range tl.Boundaries() {
			ticks = append(ticks, tick)
		}
		target := ticks[rng.IntN(len(ticks))]

		for _, s := range spans {
			if s.Begin <= target && target <= s.End {
				tl.Del(s.ID)
			}
		}
		if _, ok := tl.lookup(target); ok {
			t.Fatalf("boundary %d survived deletion of every epoch touching it", target)
		}
		if err := tl.Check(); err != nil {
			t.Fatal(err)
		}
	}
}

// snapshot records Epoch over the sweep window, -1 meaning none.
func snapshot(tl *Timeline) []int {
	var out []int
	for x := sweepLo; x < sweepHi+20; x++ {
		n, ok := tl.Epoch(x)
		if !ok {
			n = -1
		}
		out = append(out, n)
	}
	return out
}
