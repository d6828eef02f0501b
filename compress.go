// Compression for diagnostic dumps.
//
// Dumps of large timelines are mostly repeated small integers and
// compress well. zstd gives the better ratio; lz4 is cheaper to produce
// when dumps are taken often.
package daxutil

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression selects the dump stream codec.
type Compression int

const (
	CompressNone Compression = iota
	CompressZstd
	CompressLZ4
)

// nopCloser lets an uncompressed stream share the codec code path.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// compressor wraps w in the chosen codec. Close flushes the codec but
// never closes w.
func compressor(w io.Writer, c Compression) (io.WriteCloser, error) {
	switch c {
	case CompressNone:
		return nopCloser{w}, nil
	case CompressZstd:
		enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, fmt.Errorf("dump: zstd: %w", err)
		}
		return enc, nil
	case CompressLZ4:
		return lz4.NewWriter(w), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownCompression, c)
	}
}
