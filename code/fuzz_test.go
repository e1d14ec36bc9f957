// Copyright 2024, The bitcode Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package code

import (
	"bytes"
	"testing"

	"github.com/elias-codes/bitcode"
	"github.com/elias-codes/bitcode/bitio"
	word "github.com/elias-codes/bitcode/internal/wordio"
)

// readerOver builds a little-endian Width64 Reader over arbitrary bytes,
// padded to a whole word so a short fuzz input never trips FileReader's
// own bounds rather than the decoder under test.
func readerOver(data []byte) *bitio.Reader {
	pad := (8 - len(data)%8) % 8
	data = append(append([]byte(nil), data...), make([]byte, pad)...)
	fr := word.NewFileReader(bytes.NewReader(data), word.Width64, int64(len(data)))
	return bitio.NewReader(fr, word.Width64, bitcode.LittleEndian)
}

// decodeNoCrash decodes from random bytes and only requires that decode
// either succeeds or returns an error — never panics.
func decodeNoCrash(t *testing.T, data []byte, decode func(*bitio.Reader) error) {
	t.Helper()
	if len(data) == 0 {
		return
	}
	r := readerOver(data)
	_ = decode(r) // error is an acceptable outcome; a panic is not
}

func FuzzDecodeGamma(f *testing.F) {
	f.Add([]byte{0x00})
	f.Add([]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff})
	f.Add([]byte{0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00})
	f.Fuzz(func(t *testing.T, data []byte) {
		decodeNoCrash(t, data, func(r *bitio.Reader) error { _, err := ReadGamma(r); return err })
	})
}

func FuzzDecodeDelta(f *testing.F) {
	f.Add([]byte{0x00})
	f.Add([]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff})
	f.Fuzz(func(t *testing.T, data []byte) {
		decodeNoCrash(t, data, func(r *bitio.Reader) error { _, err := ReadDelta(r); return err })
	})
}

func FuzzDecodeZeta(f *testing.F) {
	f.Add([]byte{0x00}, uint64(3))
	f.Add([]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, uint64(1))
	f.Fuzz(func(t *testing.T, data []byte, k uint64) {
		k = k%8 + 1 // keep k in a plausible [1,8] range
		decodeNoCrash(t, data, func(r *bitio.Reader) error { _, err := ReadZeta(r, k); return err })
	})
}

func FuzzDecodeOmega(f *testing.F) {
	f.Add([]byte{0x00})
	f.Add([]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff})
	f.Fuzz(func(t *testing.T, data []byte) {
		decodeNoCrash(t, data, func(r *bitio.Reader) error { _, err := ReadOmega(r); return err })
	})
}

func FuzzDecodePi(f *testing.F) {
	f.Add([]byte{0x00}, uint64(2))
	f.Fuzz(func(t *testing.T, data []byte, k uint64) {
		k = k%8 + 1
		decodeNoCrash(t, data, func(r *bitio.Reader) error { _, err := ReadPi(r, k); return err })
	})
}

func FuzzDecodeVByte(f *testing.F) {
	f.Add([]byte{0x00})
	f.Add([]byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x00})
	f.Fuzz(func(t *testing.T, data []byte) {
		decodeNoCrash(t, data, func(r *bitio.Reader) error { _, err := ReadVByteBE(r); return err })
		decodeNoCrash(t, append([]byte(nil), data...), func(r *bitio.Reader) error { _, err := ReadVByteLE(r); return err })
	})
}

// FuzzWriteReadRoundTrip checks that every code recovers exactly the
// value it was given, across a random stream of (kind, value) pairs.
func FuzzWriteReadRoundTrip(f *testing.F) {
	f.Add(uint8(0), uint64(0))
	f.Add(uint8(1), uint64(1000000))
	f.Add(uint8(7), uint64(42))
	f.Fuzz(func(t *testing.T, kind uint8, v uint64) {
		mw := word.NewMemoryWriter(word.Width64)
		w := bitio.NewWriter(mw, word.Width64, bitcode.LittleEndian, nil)

		var write func(*bitio.Writer, uint64) error
		var read func(*bitio.Reader) (uint64, error)
		switch kind % 8 {
		case 0:
			write, read = WriteUnary, ReadUnary
			if v > 1<<20 {
				v %= 1 << 20 // keep unary fuzz inputs from building gigantic streams
			}
		case 1:
			write, read = WriteGamma, ReadGamma
		case 2:
			write, read = WriteDelta, ReadDelta
		case 3:
			write = func(w *bitio.Writer, v uint64) error { return WriteZeta(w, v, 3) }
			read = func(r *bitio.Reader) (uint64, error) { return ReadZeta(r, 3) }
		case 4:
			write, read = WriteOmega, ReadOmega
		case 5:
			write = func(w *bitio.Writer, v uint64) error { return WritePi(w, v, 2) }
			read = func(r *bitio.Reader) (uint64, error) { return ReadPi(r, 2) }
		case 6:
			write = func(w *bitio.Writer, v uint64) error { return WriteRice(w, v, 4) }
			read = func(r *bitio.Reader) (uint64, error) { return ReadRice(r, 4) }
		default:
			write, read = WriteVByteBE, ReadVByteBE
		}

		if err := write(w, v); err != nil {
			t.Fatalf("write(%d): %v", v, err)
		}
		if _, err := w.Flush(); err != nil {
			t.Fatalf("Flush: %v", err)
		}
		r := bitio.NewReader(mw.Reader(), word.Width64, bitcode.LittleEndian)
		got, err := read(r)
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		if got != v {
			t.Errorf("round trip of %d (kind %d) = %d", v, kind%8, got)
		}
	})
}
