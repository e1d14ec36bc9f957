// Copyright 2024, The bitcode Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package code

import (
	"github.com/dsnet/golib/errs"
	"github.com/elias-codes/bitcode"
	"github.com/elias-codes/bitcode/bitio"
)

// zetaRange computes, for value v and parameter k, h = floor(log2(v+1)/k)
// and the [lo,hi) range of v+1 values sharing that h, i.e. lo = 2^(hk),
// hi = 2^((h+1)k). zeta then minimal-binary encodes (v+1-lo) in a
// max-(hi-lo) field. k must be >= 1.
func zetaRange(n, k uint64) (h, lo, max uint64) {
	l := log2Floor(n)
	h = uint64(l) / k
	lo = uint64(1) << (h * k)
	hi := uint64(1) << ((h + 1) * k)
	return h, lo, hi - lo
}

// WriteZeta writes v using the Boldi-Vigna zeta_k code. k must be >= 1.
func WriteZeta(w *bitio.Writer, v, k uint64) (err error) {
	defer errs.Recover(&err)
	if k < 1 {
		return bitcode.ErrInvalidArgument
	}
	n := v + 1
	h, lo, max := zetaRange(n, k)
	if (h+1)*k > 63 {
		return bitcode.ErrInvalidArgument
	}
	errs.Panic(w.WriteUnary(h))
	errs.Panic(WriteMinimalBinary(w, n-lo, max))
	return nil
}

// ReadZeta reads a zeta_k codeword. k must be >= 1.
func ReadZeta(r *bitio.Reader, k uint64) (v uint64, err error) {
	defer errs.Recover(&err)
	if k < 1 {
		return 0, bitcode.ErrInvalidArgument
	}
	h, e := r.ReadUnary()
	errs.Panic(e)
	if (h+1)*k > 63 {
		return 0, bitcode.ErrDecodeOverflow
	}
	lo := uint64(1) << (h * k)
	hi := uint64(1) << ((h + 1) * k)
	val, e := ReadMinimalBinary(r, hi-lo)
	errs.Panic(e)
	return lo + val - 1, nil
}

// LenZeta returns the length in bits of the zeta_k encoding of v.
func LenZeta(v, k uint64) uint64 {
	n := v + 1
	h, lo, max := zetaRange(n, k)
	return (h + 1) + LenMinimalBinary(n-lo, max)
}
