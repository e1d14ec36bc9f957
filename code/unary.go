// Copyright 2024, The bitcode Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package code

import "github.com/elias-codes/bitcode/bitio"

// WriteUnary writes v as v zero bits followed by a terminating one bit.
func WriteUnary(w *bitio.Writer, v uint64) error {
	return w.WriteUnary(v)
}

// ReadUnary reads a unary codeword and returns the number of leading
// zero bits. bitio.Reader.ReadUnary already scans the buffer with
// math/bits.TrailingZeros64 rather than one bit at a time, which serves
// the role spec.md S4.4's table-assisted fast path plays for the other
// table-eligible codes: it decodes an entire run in one pass regardless
// of table width, so Unary has no separate codetab.Table here.
func ReadUnary(r *bitio.Reader) (uint64, error) {
	return r.ReadUnary()
}

// ReadUnaryMax is ReadUnary bounded by max; exceeding it is
// bitcode.ErrDecodeOverflow.
func ReadUnaryMax(r *bitio.Reader, max uint64) (uint64, error) {
	return r.ReadUnaryMax(max)
}

// LenUnary returns the length in bits of the unary encoding of v.
func LenUnary(v uint64) uint64 {
	return v + 1
}
