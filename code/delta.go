// Copyright 2024, The bitcode Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package code

import (
	"github.com/dsnet/golib/errs"
	"github.com/elias-codes/bitcode"
	"github.com/elias-codes/bitcode/bitio"
)

// WriteDelta writes v using the Elias delta code: gamma(L) followed by
// the low L bits of v+1, where L = floor(log2(v+1)).
func WriteDelta(w *bitio.Writer, v uint64) (err error) {
	defer errs.Recover(&err)
	n := v + 1
	l := log2Floor(n)
	errs.Panic(WriteGamma(w, uint64(l)))
	errs.Panic(w.WriteBits(n&maskN(l), l))
	return nil
}

// ReadDelta reads an Elias delta codeword. Its first stage (decoding L)
// reuses ReadGamma, including ReadGamma's own table fast path; the
// second stage (L more payload bits) is always the bit-by-bit slow path,
// the two-stage decode design noted in DESIGN.md rather than a
// dedicated, larger delta table.
func ReadDelta(r *bitio.Reader) (v uint64, err error) {
	defer errs.Recover(&err)
	l, e := ReadGamma(r)
	errs.Panic(e)
	if l > 63 {
		return 0, bitcode.ErrDecodeOverflow
	}
	low, e := r.ReadBits(uint(l))
	errs.Panic(e)
	return (uint64(1)<<l | low) - 1, nil
}

// LenDelta returns the length in bits of the delta encoding of v.
func LenDelta(v uint64) uint64 {
	l := log2Floor(v + 1)
	return LenGamma(uint64(l)) + uint64(l)
}
