// Copyright 2024, The bitcode Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package code

import (
	"github.com/dsnet/golib/errs"
	"github.com/elias-codes/bitcode/bitio"
)

// WriteExpGolomb writes v using exponential-Golomb order k: gamma(v>>k)
// followed by the low k bits of v.
func WriteExpGolomb(w *bitio.Writer, v uint64, k uint) (err error) {
	defer errs.Recover(&err)
	errs.Panic(WriteGamma(w, v>>k))
	errs.Panic(w.WriteBits(v&maskN(k), k))
	return nil
}

// ReadExpGolomb reads an ExpGolomb(k) codeword.
func ReadExpGolomb(r *bitio.Reader, k uint) (v uint64, err error) {
	defer errs.Recover(&err)
	hi, e := ReadGamma(r)
	errs.Panic(e)
	low, e := r.ReadBits(k)
	errs.Panic(e)
	return hi<<k | low, nil
}

// LenExpGolomb returns the length in bits of the ExpGolomb(k) encoding
// of v.
func LenExpGolomb(v uint64, k uint) uint64 {
	return LenGamma(v>>k) + uint64(k)
}
