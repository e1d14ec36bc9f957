// Copyright 2024, The bitcode Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package code

import (
	"github.com/dsnet/golib/errs"
	"github.com/elias-codes/bitcode"
	"github.com/elias-codes/bitcode/bitio"
)

// writeMSBFirst writes the low n bits of v one bit at a time, most
// significant first. A 1-bit field is its own reversal, so this is the
// same true-stream-order layout under both BigEndian and LittleEndian,
// the same reason WriteUnary bypasses WriteBits's per-field endian
// conversion: the short/long split below only self-delimits correctly
// when read back in the order it was written, which a single multi-bit
// WriteBits call cannot guarantee across both endiannesses.
func writeMSBFirst(w *bitio.Writer, v uint64, n uint) error {
	for i := int(n) - 1; i >= 0; i-- {
		if err := w.WriteBits((v>>uint(i))&1, 1); err != nil {
			return err
		}
	}
	return nil
}

// readMSBFirst is the inverse of writeMSBFirst.
func readMSBFirst(r *bitio.Reader, n uint) (uint64, error) {
	var v uint64
	for i := uint(0); i < n; i++ {
		b, err := r.ReadBits(1)
		if err != nil {
			return 0, err
		}
		v = v<<1 | b
	}
	return v, nil
}

// WriteMinimalBinary writes v, which must satisfy 0 <= v < max, as a
// phased-in (truncated) binary code: values below the threshold
// 2^ceil(log2(max))-max are packed into floor(log2(max)) bits; the rest
// use ceil(log2(max)) bits, offset by the threshold. max == 0 is
// invalid; max == 1 always writes zero bits (the sole value is 0).
func WriteMinimalBinary(w *bitio.Writer, v, max uint64) (err error) {
	defer errs.Recover(&err)
	if max == 0 {
		return bitcode.ErrInvalidArgument
	}
	if v >= max {
		return bitcode.ErrInvalidArgument
	}
	fl := log2Floor(max)
	cl := fl
	if !isPow2(max) {
		cl = fl + 1
	}
	t := (uint64(1) << cl) - max
	if v < t {
		errs.Panic(writeMSBFirst(w, v, fl))
	} else {
		errs.Panic(writeMSBFirst(w, v+t, cl))
	}
	return nil
}

// ReadMinimalBinary reads a value encoded by WriteMinimalBinary with the
// same max.
func ReadMinimalBinary(r *bitio.Reader, max uint64) (v uint64, err error) {
	defer errs.Recover(&err)
	if max == 0 {
		return 0, bitcode.ErrInvalidArgument
	}
	fl := log2Floor(max)
	cl := fl
	if !isPow2(max) {
		cl = fl + 1
	}
	t := (uint64(1) << cl) - max
	if fl == cl {
		val, e := readMSBFirst(r, fl)
		errs.Panic(e)
		return val, nil
	}
	p, e := readMSBFirst(r, fl)
	errs.Panic(e)
	if p < t {
		return p, nil
	}
	b, e := r.ReadBits(1)
	errs.Panic(e)
	return (p<<1 | b) - t, nil
}

// LenMinimalBinary returns the length in bits of the minimal-binary
// encoding of v under max.
func LenMinimalBinary(v, max uint64) uint64 {
	fl := log2Floor(max)
	cl := fl
	if !isPow2(max) {
		cl = fl + 1
	}
	t := (uint64(1) << cl) - max
	if v < t {
		return uint64(fl)
	}
	return uint64(cl)
}
