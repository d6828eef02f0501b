// Package daxutil indexes integer-identified epochs over a 64-bit tick
// clock and answers which epoch is in effect at any tick.
//
// An epoch is an id plus a half-open range [begin, end). Where epochs
// overlap, the numerically largest id wins. The index stores no epoch
// objects: each boundary tick holds a Marker recording which ids begin,
// end, or pass through it, and adjacent Markers always agree on the set
// of ids active between them. Add and Del keep that agreement
// incrementally, so Epoch costs one ordered lookup plus a glance at the
// head of two sorted sets.
//
// A Timeline has a single owner. Queries move an internal cursor, so
// even Epoch mutates state; callers sharing one must serialise access.
package daxutil

import "errors"

// Sentinel errors for programmatic handling with errors.Is.
var (
	ErrInvalidRange       = errors.New("epoch range is empty or inverted")
	ErrOverlap            = errors.New("epoch id already covers an overlapping range")
	ErrInconsistent       = errors.New("timeline is inconsistent")
	ErrUnknownFormat      = errors.New("unknown dump format")
	ErrUnknownCompression = errors.New("unknown dump compression")
)
