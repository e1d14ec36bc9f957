// Copyright 2024, The bitcode Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package code

import (
	"github.com/dsnet/golib/errs"
	"github.com/elias-codes/bitcode"
	"github.com/elias-codes/bitcode/bitio"
)

// WriteGamma writes v using the Elias gamma code: unary(L) followed by
// the low L bits of v+1, where L = floor(log2(v+1)).
func WriteGamma(w *bitio.Writer, v uint64) (err error) {
	defer errs.Recover(&err)
	n := v + 1
	l := log2Floor(n)
	errs.Panic(w.WriteUnary(uint64(l)))
	errs.Panic(w.WriteBits(n&maskN(l), l))
	return nil
}

// ReadGamma reads an Elias gamma codeword, consulting the shared gamma
// table before falling back to the bit-by-bit path.
func ReadGamma(r *bitio.Reader) (uint64, error) {
	if e, ok := tryTable(r, gammaTable(r.Endianness())); ok {
		if err := r.SkipBits(uint64(e.Len())); err != nil {
			return 0, err
		}
		return e.Value(), nil
	}
	return readGammaSlow(r)
}

func readGammaSlow(r *bitio.Reader) (v uint64, err error) {
	defer errs.Recover(&err)
	l, e := r.ReadUnary()
	errs.Panic(e)
	if l > 63 {
		return 0, bitcode.ErrDecodeOverflow
	}
	low, e := r.ReadBits(uint(l))
	errs.Panic(e)
	return (uint64(1)<<l | low) - 1, nil
}

// LenGamma returns the length in bits of the gamma encoding of v.
func LenGamma(v uint64) uint64 {
	l := log2Floor(v + 1)
	return 2*uint64(l) + 1
}
