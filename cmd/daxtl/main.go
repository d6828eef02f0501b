// daxtl loads a set of epochs from a file into a timeline and answers
// questions about it: which epoch is in effect at a tick, which epochs
// are active, what the boundary sequence looks like, and whether the
// index is internally consistent.
//
// Epoch files are YAML (.yaml, .yml) or JSON with comments (.json,
// .jsonc), optionally compressed with a trailing .zst or .lz4:
//
//	epochs:
//	  - {id: 1, begin: 100, end: 200}
//	  - {id: 2, begin: 120, end: 220}
//	del: [1]
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
