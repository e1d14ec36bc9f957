// Copyright 2024, The bitcode Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package code

import (
	"github.com/elias-codes/bitcode"
	"github.com/elias-codes/bitcode/bitio"
	"github.com/elias-codes/bitcode/internal/codetab"
)

// tryTable peeks tbl.Bits bits from r, converts them to true stream
// order if r is BigEndian, and looks them up in tbl. ok is false on a
// table miss or if fewer than tbl.Bits bits remain (in which case the
// caller should fall back to its bit-by-bit slow path, which tolerates a
// codeword that completes exactly at end of stream).
func tryTable(r *bitio.Reader, tbl *codetab.Table) (codetab.Entry, bool) {
	pattern, err := r.PeekBits(tbl.Bits)
	if err != nil {
		return 0, false
	}
	if r.Endianness() == bitcode.BigEndian {
		pattern = bitio.ReverseBits(pattern, tbl.Bits)
	}
	e := tbl.Lookup(pattern)
	if e.Miss() {
		return 0, false
	}
	return e, true
}
