// Diagnostic dumps.
//
// Dump streams the boundary sequence for inspection. It is write-only:
// nothing in this package reads a dump back into a Timeline.
package daxutil

import (
	"bufio"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
)

// Format selects the dump record encoding.
type Format int

const (
	FormatJSON Format = iota // one JSON object per line
	FormatCBOR               // CBOR sequence (RFC 8742)
)

// DumpOptions configures Dump. The zero value writes plain JSON lines.
type DumpOptions struct {
	Format      Format
	Compression Compression
}

// cborMode uses Core Deterministic Encoding so equal timelines produce
// identical bytes.
var cborMode, _ = cbor.CoreDetEncOptions().EncMode()

// Dump writes one Record per boundary, in ascending tick order.
func (tl *Timeline) Dump(w io.Writer, opts DumpOptions) error {
	if opts.Format != FormatJSON && opts.Format != FormatCBOR {
		return fmt.Errorf("%w: %d", ErrUnknownFormat, opts.Format)
	}

	zw, err := compressor(w, opts.Compression)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(zw)

	var enc *cbor.Encoder
	if opts.Format == FormatCBOR {
		enc = cborMode.NewEncoder(bw)
	}

	tl.tree.Ascend(func(e entry) bool {
		r := record(e.marker)
		if enc != nil {
			err = enc.Encode(r)
			return err == nil
		}
		var line []byte
		if line, err = encodeJSON(r); err != nil {
			return false
		}
		if _, err = bw.Write(line); err != nil {
			return false
		}
		err = bw.WriteByte('\n')
		return err == nil
	})
	if err != nil {
		zw.Close()
		return fmt.Errorf("dump: %w", err)
	}

	if err := bw.Flush(); err != nil {
		zw.Close()
		return fmt.Errorf("dump: flush: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("dump: close: %w", err)
	}
	return nil
}
