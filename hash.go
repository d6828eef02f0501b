// Timeline fingerprints.
//
// A fingerprint is a 16 hex character digest of the boundary sequence.
// Two timelines with the same boundaries and the same Marker contents
// share a fingerprint regardless of the order epochs were added, which
// makes it a cheap equality check in tests and diagnostics. Four
// algorithms are supported, selectable via Config.HashAlgorithm.
package daxutil

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"

	"github.com/zeebo/blake3"
	"github.com/zeebo/xxh3"
	"golang.org/x/crypto/blake2b"
)

// Hash algorithm constants.
const (
	AlgXXHash3 = 1 // Default, fastest
	AlgFNV1a   = 2 // No external dependencies
	AlgBlake2b = 3 // Best distribution
	AlgBlake3  = 4
)

// Fingerprint digests the current boundary sequence with the configured
// algorithm. It returns "" for an unknown algorithm.
func (tl *Timeline) Fingerprint() string {
	return digest(tl.canonical(), tl.config.HashAlgorithm)
}

// canonical encodes each boundary as its tick followed by the three
// sets, each length-prefixed. All values are varints.
func (tl *Timeline) canonical() []byte {
	var buf []byte
	tl.tree.Ascend(func(e entry) bool {
		buf = binary.AppendVarint(buf, int64(e.tick))
		for _, set := range []ids{e.marker.begins, e.marker.internals, e.marker.ends} {
			buf = binary.AppendUvarint(buf, uint64(len(set)))
			for _, n := range set {
				buf = binary.AppendVarint(buf, int64(n))
			}
		}
		return true
	})
	return buf
}

// digest hashes data to 16 hex characters using the specified algorithm.
func digest(data []byte, alg int) string {
	switch alg {
	case AlgXXHash3:
		return fmt.Sprintf("%016x", xxh3.Hash(data))
	case AlgFNV1a:
		h := fnv.New64a()
		h.Write(data)
		return fmt.Sprintf("%016x", h.Sum64())
	case AlgBlake2b:
		h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
		h.Write(data)
		return fmt.Sprintf("%016x", h.Sum(nil))
	case AlgBlake3:
		sum := blake3.Sum256(data)
		return fmt.Sprintf("%016x", sum[:8])
	default:
		return ""
	}
}
