// Dump record layout.
//
// Each boundary is written as one self-contained record: the tick and
// its three id sets, largest id first. JSON records use short keys and
// omit empty sets; CBOR records use small integer keys.
package daxutil

import (
	json "github.com/goccy/go-json"
)

// Record is the dump form of one boundary.
type Record struct {
	Tick      int64 `json:"t" cbor:"1,keyasint"`
	Begins    []int `json:"b,omitempty" cbor:"2,keyasint,omitempty"`
	Internals []int `json:"i,omitempty" cbor:"3,keyasint,omitempty"`
	Ends      []int `json:"e,omitempty" cbor:"4,keyasint,omitempty"`
}

// record converts a Marker to its dump form.
func record(m *Marker) Record {
	return Record{
		Tick:      int64(m.tick),
		Begins:    m.Begins(),
		Internals: m.Internals(),
		Ends:      m.Ends(),
	}
}

// encodeJSON renders a record as a single line without the newline.
func encodeJSON(r Record) ([]byte, error) {
	return json.Marshal(r)
}
