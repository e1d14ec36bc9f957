// Copyright 2024, The bitcode Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package code

import (
	"github.com/dsnet/golib/errs"
	"github.com/elias-codes/bitcode/bitio"
)

// WriteRice writes v using the Rice/Golomb-power-of-two code with
// parameter b: unary(v>>b) followed by the low b bits of v.
func WriteRice(w *bitio.Writer, v uint64, b uint) (err error) {
	defer errs.Recover(&err)
	errs.Panic(w.WriteUnary(v >> b))
	errs.Panic(w.WriteBits(v&maskN(b), b))
	return nil
}

// ReadRice reads a Rice(b) codeword.
func ReadRice(r *bitio.Reader, b uint) (v uint64, err error) {
	defer errs.Recover(&err)
	q, e := r.ReadUnary()
	errs.Panic(e)
	low, e := r.ReadBits(b)
	errs.Panic(e)
	return q<<b | low, nil
}

// LenRice returns the length in bits of the Rice(b) encoding of v.
func LenRice(v uint64, b uint) uint64 {
	return (v >> b) + 1 + uint64(b)
}
