// Copyright 2024, The bitcode Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package code

import (
	"math/bits"

	"github.com/dsnet/golib/errs"
	"github.com/elias-codes/bitcode/bitio"
)

// WriteOmega writes v using the recursive Elias omega code: the binary
// representation of v is prepended by the binary representation of its
// own bit length minus one, recursively, until the running value is 1,
// then a terminating zero bit is written. Each group goes out as its
// leading one bit followed by its remaining bits, the latter through
// WriteBits like any other multi-bit field, which is the layout
// readOmegaSlow and decodeOmegaPattern read back under both
// endiannesses. v == 0 is special-cased to the
// single bit "0", per spec.md S4.4's tie-break ("omega terminates at
// v=0; omega(0) = 0"): the general recursive construction is only
// defined for v >= 1.
func WriteOmega(w *bitio.Writer, v uint64) (err error) {
	defer errs.Recover(&err)
	if v == 0 {
		errs.Panic(w.WriteBits(0, 1))
		return nil
	}
	var groups [][2]uint64 // (value, bit length), innermost group first
	n := v
	for n > 1 {
		l := uint64(bits.Len64(n))
		groups = append(groups, [2]uint64{n, l})
		n = l - 1
	}
	for i := len(groups) - 1; i >= 0; i-- {
		l := uint(groups[i][1])
		errs.Panic(w.WriteBits(1, 1))
		errs.Panic(w.WriteBits(groups[i][0]&maskN(l-1), l-1))
	}
	errs.Panic(w.WriteBits(0, 1))
	return nil
}

// ReadOmega reads an Elias omega codeword, consulting the shared omega
// table before falling back to the bit-by-bit path.
func ReadOmega(r *bitio.Reader) (uint64, error) {
	if e, ok := tryTable(r, omegaTable(r.Endianness())); ok {
		if err := r.SkipBits(uint64(e.Len())); err != nil {
			return 0, err
		}
		return e.Value(), nil
	}
	return readOmegaSlow(r)
}

func readOmegaSlow(r *bitio.Reader) (v uint64, err error) {
	defer errs.Recover(&err)
	first, e := r.ReadBits(1)
	errs.Panic(e)
	if first == 0 {
		return 0, nil
	}
	n := uint64(1)
	bit := first
	for bit == 1 {
		rest, e := r.ReadBits(uint(n))
		errs.Panic(e)
		n = uint64(1)<<n | rest
		bit, e = r.ReadBits(1)
		errs.Panic(e)
	}
	return n, nil
}

// LenOmega returns the length in bits of the omega encoding of v.
func LenOmega(v uint64) uint64 {
	if v == 0 {
		return 1
	}
	total := uint64(1)
	n := v
	for n > 1 {
		l := uint64(bits.Len64(n))
		total += l
		n = l - 1
	}
	return total
}
