// Copyright 2024, The bitcode Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package code

import (
	"math/bits"
	"sync"

	"github.com/elias-codes/bitcode"
	"github.com/elias-codes/bitcode/bitio"
	"github.com/elias-codes/bitcode/internal/codetab"
)

// defaultTableBits is the table window width used by the gamma and
// omega fast paths, within spec.md S6's configured table_bits range of
// 0..=17.
const defaultTableBits = 9

// Both codecs keep one table per endianness. tryTable (tablelookup.go)
// always hands decode* a pattern in true stream order, but
// Writer.WriteBits (and TryWriteBits, writer.go) reverses each
// multi-bit field's own bits under BigEndian before pushing it into
// that true-stream-order buffer — it never touches single-bit unary
// fields, since reversing one bit is a no-op. decodeGammaPattern and
// decodeOmegaPattern extract exactly those multi-bit sub-fields
// (gamma's payload; omega's recursive "rest" fields), so a single
// shared table cannot serve both endiannesses: the BigEndian variant
// must undo that per-field reversal on each multi-bit sub-field, or it
// disagrees with the slow, bit-by-bit path's per-call, endianness-aware
// ReadBits.
//
// sync.OnceValue (new in Go 1.21) replaces the teacher-era
// sync.Once-guarded package variable with the same once-per-process
// guarantee spec.md S9 asks for ("runtime construction is acceptable
// but must happen once"), now one instance per endianness.
var gammaTableLE = sync.OnceValue(func() *codetab.Table {
	return codetab.Build(defaultTableBits, decodeGammaPattern(bitcode.LittleEndian))
})
var gammaTableBE = sync.OnceValue(func() *codetab.Table {
	return codetab.Build(defaultTableBits, decodeGammaPattern(bitcode.BigEndian))
})

var omegaTableLE = sync.OnceValue(func() *codetab.Table {
	return codetab.Build(defaultTableBits, decodeOmegaPattern(bitcode.LittleEndian))
})
var omegaTableBE = sync.OnceValue(func() *codetab.Table {
	return codetab.Build(defaultTableBits, decodeOmegaPattern(bitcode.BigEndian))
})

// gammaTable returns the process-wide gamma lookup table for endian.
func gammaTable(endian bitcode.Endianness) *codetab.Table {
	if endian == bitcode.BigEndian {
		return gammaTableBE()
	}
	return gammaTableLE()
}

// omegaTable returns the process-wide omega lookup table for endian.
func omegaTable(endian bitcode.Endianness) *codetab.Table {
	if endian == bitcode.BigEndian {
		return omegaTableBE()
	}
	return omegaTableLE()
}

// decodeGammaPattern builds the table-entry decoder for endian. It
// attempts to fully decode a gamma codeword from the low `bits` bits of
// pattern (true stream order), returning a miss entry if the codeword's
// unary prefix runs off the end of the pattern, or if decoding the
// prefix leaves no room for the payload bits.
func decodeGammaPattern(endian bitcode.Endianness) func(uint64) codetab.Entry {
	return func(pattern uint64) codetab.Entry {
		if pattern == 0 {
			return codetab.MakeEntry(0, 0)
		}
		l := uint(bits.TrailingZeros64(pattern))
		total := 2*l + 1
		if total > defaultTableBits {
			return codetab.MakeEntry(0, 0)
		}
		payload := (pattern >> (l + 1)) & maskN(l)
		if endian == bitcode.BigEndian {
			payload = bitio.ReverseBits(payload, l)
		}
		value := (uint64(1)<<l | payload) - 1
		return codetab.MakeEntry(value, total)
	}
}

// decodeOmegaPattern builds the table-entry decoder for endian, running
// the same recursive decode ReadOmega performs against a live reader,
// but bounded to the bits available in pattern; a miss means the
// codeword needs more bits than the table window holds.
func decodeOmegaPattern(endian bitcode.Endianness) func(uint64) codetab.Entry {
	return func(pattern uint64) codetab.Entry {
		pos := uint(0)
		readBit := func() (uint64, bool) {
			if pos >= defaultTableBits {
				return 0, false
			}
			b := (pattern >> pos) & 1
			pos++
			return b, true
		}
		readN := func(n uint) (uint64, bool) {
			if pos+n > defaultTableBits {
				return 0, false
			}
			v := (pattern >> pos) & maskN(n)
			if endian == bitcode.BigEndian {
				v = bitio.ReverseBits(v, n)
			}
			pos += n
			return v, true
		}

		b, ok := readBit()
		if !ok {
			return codetab.MakeEntry(0, 0)
		}
		if b == 0 {
			return codetab.MakeEntry(0, 1)
		}
		n := uint64(1)
		for {
			rest, ok := readN(uint(n))
			if !ok {
				return codetab.MakeEntry(0, 0)
			}
			n = uint64(1)<<n | rest
			b, ok = readBit()
			if !ok {
				return codetab.MakeEntry(0, 0)
			}
			if b == 0 {
				break
			}
		}
		return codetab.MakeEntry(n, pos)
	}
}
