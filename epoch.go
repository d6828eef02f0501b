// Point queries.
//
// Both queries locate the first boundary at or after the tick. When the
// tick falls strictly before that boundary, the interval ending there is
// described by its Internals and Ends. When the tick is the boundary
// itself, what is active at the tick is what starts or continues from
// it: Begins and Internals. That is what makes ranges half-open.
package daxutil

// Epoch returns the id in effect at t: the largest id among the epochs
// whose range contains t. ok is false when no epoch covers t.
func (tl *Timeline) Epoch(t Tick) (id int, ok bool) {
	m, found := tl.findAfter(t)
	if !found {
		return 0, false
	}
	if m.tick == t {
		return m.LeftValue()
	}
	return m.RightValue()
}

// Active returns every id whose range contains t, largest first.
func (tl *Timeline) Active(t Tick) []int {
	m, found := tl.findAfter(t)
	if !found {
		return nil
	}
	var out ids
	if m.tick == t {
		out = out.merge(m.internals).merge(m.begins)
	} else {
		out = out.merge(m.internals).merge(m.ends)
	}
	return out
}
