// Copyright 2024, The bitcode Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package code

import (
	"math/bits"

	"github.com/dsnet/golib/errs"
	"github.com/elias-codes/bitcode"
	"github.com/elias-codes/bitcode/bitio"
)

// maxVByteGroups bounds the number of continuation bytes a decoder will
// follow before giving up: 10 groups of 7 bits comfortably covers every
// uint64 value (70 >= 64), so more than that can only be corrupt input.
const maxVByteGroups = 10

// vbyteGroups returns the number of 7-bit groups needed to represent v,
// matching spec.md S4.4's length formula ceil((floor(log2(v+1))+1)/7).
func vbyteGroups(v uint64) int {
	n := bits.Len64(v + 1)
	return (n + 6) / 7
}

// WriteVByteLE writes v as a little-endian base-128 varint: each byte
// holds 7 payload bits, least-significant group first, with the MSB of
// every byte but the last set to signal another byte follows.
func WriteVByteLE(w *bitio.Writer, v uint64) (err error) {
	defer errs.Recover(&err)
	g := vbyteGroups(v)
	for i := 0; i < g; i++ {
		chunk := (v >> uint(7*i)) & 0x7f
		if i < g-1 {
			chunk |= 0x80
		}
		errs.Panic(w.WriteBits(chunk, 8))
	}
	return nil
}

// ReadVByteLE reads a little-endian base-128 varint.
func ReadVByteLE(r *bitio.Reader) (v uint64, err error) {
	defer errs.Recover(&err)
	var value uint64
	shift := uint(0)
	for i := 0; ; i++ {
		if i >= maxVByteGroups {
			return 0, bitcode.ErrDecodeOverflow
		}
		b, e := r.ReadBits(8)
		errs.Panic(e)
		value |= (b & 0x7f) << shift
		if b&0x80 == 0 {
			return value, nil
		}
		shift += 7
	}
}

// WriteVByteBE writes v as a big-endian base-128 varint: the same
// 7-bit groups as VByteLE, but emitted most-significant group first,
// with the MSB of every byte but the last (chronologically) set.
func WriteVByteBE(w *bitio.Writer, v uint64) (err error) {
	defer errs.Recover(&err)
	g := vbyteGroups(v)
	for i := g - 1; i >= 0; i-- {
		chunk := (v >> uint(7*i)) & 0x7f
		if i > 0 {
			chunk |= 0x80
		}
		errs.Panic(w.WriteBits(chunk, 8))
	}
	return nil
}

// ReadVByteBE reads a big-endian base-128 varint.
func ReadVByteBE(r *bitio.Reader) (v uint64, err error) {
	defer errs.Recover(&err)
	var value uint64
	for i := 0; ; i++ {
		if i >= maxVByteGroups {
			return 0, bitcode.ErrDecodeOverflow
		}
		b, e := r.ReadBits(8)
		errs.Panic(e)
		value = value<<7 | (b & 0x7f)
		if b&0x80 == 0 {
			return value, nil
		}
	}
}

// LenVByteBE and LenVByteLE share the same length formula: both spend
// one byte per 7 bits of payload.
func LenVByteBE(v uint64) uint64 { return uint64(vbyteGroups(v)) * 8 }
func LenVByteLE(v uint64) uint64 { return uint64(vbyteGroups(v)) * 8 }
