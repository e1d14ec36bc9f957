// Copyright 2024, The bitcode Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package code

import (
	"github.com/dsnet/golib/errs"
	"github.com/elias-codes/bitcode"
	"github.com/elias-codes/bitcode/bitio"
)

// WritePi writes v using the Boldi-Vigna pi_k code: for x = v+1 with
// s = floor(log2(x)), it writes zeta_k(s) followed by the low s bits of
// x. Where Elias gamma spells out a value's bit-length in unary, pi_k
// spells it out in zeta_k. Since zeta_1 has gamma's codeword lengths,
// pi_1 has delta's; a larger k makes the length prefix longer for small
// values and, for large enough values, shorter. k must be >= 1.
func WritePi(w *bitio.Writer, v, k uint64) (err error) {
	defer errs.Recover(&err)
	if k < 1 {
		return bitcode.ErrInvalidArgument
	}
	x := v + 1
	s := uint(log2Floor(x))
	errs.Panic(WriteZeta(w, uint64(s), k))
	errs.Panic(w.WriteBits(x-(uint64(1)<<s), s))
	return nil
}

// ReadPi reads a pi_k codeword. k must be >= 1.
func ReadPi(r *bitio.Reader, k uint64) (v uint64, err error) {
	defer errs.Recover(&err)
	if k < 1 {
		return 0, bitcode.ErrInvalidArgument
	}
	s64, e := ReadZeta(r, k)
	errs.Panic(e)
	if s64 > 63 {
		return 0, bitcode.ErrDecodeOverflow
	}
	s := uint(s64)
	low, e := r.ReadBits(s)
	errs.Panic(e)
	x := (uint64(1) << s) | low
	return x - 1, nil
}

// LenPi returns the length in bits of the pi_k encoding of v.
func LenPi(v, k uint64) uint64 {
	x := v + 1
	s := uint64(log2Floor(x))
	return LenZeta(s, k) + s
}
