// Copyright 2024, The bitcode Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bitio

import (
	"math/bits"

	"github.com/elias-codes/bitcode"
	word "github.com/elias-codes/bitcode/internal/wordio"
)

// Reader is a buffered bit-level reader over a word.Reader backend. It
// maintains a bit buffer twice as wide as the backend's word width, so
// that ReadBits(n) for any n <= width always succeeds with at most one
// word fetch. The zero value is not usable; construct with NewReader.
//
// Internally the buffer always holds bits in true stream order (the
// first bit yet to be consumed sits at position zero), independent of
// the configured Endianness. Endianness only governs the two points
// where the buffer's true-order content meets the outside world: the
// native word fetched from the backend (ensure), and the n-bit value
// handed back to the caller (ReadBits). See bitbuf.go.
type Reader struct {
	backend word.Reader
	width   word.Width
	endian  bitcode.Endianness

	idx int
	buf bitbuf
}

// NewReader constructs a Reader over backend, reading words of the given
// width packed according to endian.
func NewReader(backend word.Reader, width word.Width, endian bitcode.Endianness) *Reader {
	return &Reader{backend: backend, width: width, endian: endian}
}

// Width reports the backend's word width.
func (r *Reader) Width() word.Width { return r.width }

// Endianness reports the configured bit-packing order.
func (r *Reader) Endianness() bitcode.Endianness { return r.endian }

// ensure refills the buffer until it holds at least n bits, fetching one
// backend word at a time. n must not exceed the backend's word width.
func (r *Reader) ensure(n uint) error {
	for r.buf.fill < n {
		if r.idx >= r.backend.Len() {
			return bitcode.ErrUnexpectedEndOfStream
		}
		w, err := r.backend.Word(r.idx)
		if err != nil {
			return err
		}
		r.idx++
		if r.endian == bitcode.BigEndian {
			w = reverseBitsN(w, uint(r.width))
		}
		r.buf.push(w, uint(r.width))
	}
	return nil
}

// TryReadBits reads n bits without refilling the buffer from the
// backend, for the fast path where the caller already knows enough bits
// are buffered (e.g. immediately after a PeekBits of the same or greater
// width). ok is false if fewer than n bits are currently buffered, in
// which case val is zero and the buffer is left untouched.
func (r *Reader) TryReadBits(n uint) (val uint64, ok bool) {
	if r.buf.fill < n {
		return 0, false
	}
	raw := r.buf.pop(n)
	if r.endian == bitcode.BigEndian {
		raw = reverseBitsN(raw, n)
	}
	return raw, true
}

// ReadBits reads the next n bits (n <= Width) as an unsigned integer,
// refilling from the backend as needed.
func (r *Reader) ReadBits(n uint) (uint64, error) {
	if n > uint(r.width) {
		return 0, bitcode.ErrInvalidArgument
	}
	if err := r.ensure(n); err != nil {
		return 0, err
	}
	raw := r.buf.pop(n)
	if r.endian == bitcode.BigEndian {
		raw = reverseBitsN(raw, n)
	}
	return raw, nil
}

// PeekBits returns the next n bits without consuming them.
func (r *Reader) PeekBits(n uint) (uint64, error) {
	if n > uint(r.width) {
		return 0, bitcode.ErrInvalidArgument
	}
	if err := r.ensure(n); err != nil {
		return 0, err
	}
	raw := r.buf.lo & maskN(n)
	if r.endian == bitcode.BigEndian {
		raw = reverseBitsN(raw, n)
	}
	return raw, nil
}

// ReadUnary reads a unary code: some number of zero bits followed by a
// terminating one bit, and returns the count of zero bits. It scans the
// buffer directly (via math/bits.TrailingZeros64) rather than reading
// one bit at a time, refilling a word at a time when the buffered
// content is entirely zero. Because the buffer is always true stream
// order, this scan is endianness-agnostic.
func (r *Reader) ReadUnary() (uint64, error) {
	var count uint64
	for {
		if r.buf.fill == 0 {
			if err := r.ensure(1); err != nil {
				return 0, err
			}
		}
		if r.buf.lo != 0 {
			tz := uint(bits.TrailingZeros64(r.buf.lo))
			count += uint64(tz)
			r.buf.pop(tz + 1)
			return count, nil
		}
		if r.buf.hi != 0 {
			tz := uint(bits.TrailingZeros64(r.buf.hi))
			count += 64 + uint64(tz)
			r.buf.pop(64 + tz + 1)
			return count, nil
		}
		count += uint64(r.buf.fill)
		r.buf.reset()
	}
}

// ReadUnaryMax behaves like ReadUnary but fails with
// bitcode.ErrDecodeOverflow as soon as the zero run exceeds max, without
// consuming more of the stream than necessary to detect the overflow.
func (r *Reader) ReadUnaryMax(max uint64) (uint64, error) {
	var count uint64
	for {
		if r.buf.fill == 0 {
			if err := r.ensure(1); err != nil {
				return 0, err
			}
		}
		if r.buf.lo != 0 {
			tz := uint(bits.TrailingZeros64(r.buf.lo))
			if count+uint64(tz) > max {
				return 0, bitcode.ErrDecodeOverflow
			}
			count += uint64(tz)
			r.buf.pop(tz + 1)
			return count, nil
		}
		if r.buf.hi != 0 {
			tz := uint(bits.TrailingZeros64(r.buf.hi))
			if count+64+uint64(tz) > max {
				return 0, bitcode.ErrDecodeOverflow
			}
			count += 64 + uint64(tz)
			r.buf.pop(64 + tz + 1)
			return count, nil
		}
		count += uint64(r.buf.fill)
		if count > max {
			return 0, bitcode.ErrDecodeOverflow
		}
		r.buf.reset()
	}
}

// SkipBits advances the stream by n bits without materializing their
// value: it first drains whatever is already buffered, then skips whole
// backend words, then tops up with a final partial read.
func (r *Reader) SkipBits(n uint64) error {
	if r.buf.fill > 0 {
		take := uint64(r.buf.fill)
		if take > n {
			take = n
		}
		r.buf.pop(uint(take))
		n -= take
	}
	wordBits := uint64(r.width)
	for n >= wordBits {
		if r.idx >= r.backend.Len() {
			return bitcode.ErrUnexpectedEndOfStream
		}
		r.idx++
		n -= wordBits
	}
	if n > 0 {
		if err := r.ensure(uint(n)); err != nil {
			return err
		}
		r.buf.pop(uint(n))
	}
	return nil
}

// BitsRemaining reports a lower bound on the number of bits left to
// read: the buffered bits plus the bits in any whole words not yet
// fetched. It is exact unless the backend's Len is only an estimate.
func (r *Reader) BitsRemaining() uint64 {
	whole := r.backend.Len() - r.idx
	if whole < 0 {
		whole = 0
	}
	return uint64(r.buf.fill) + uint64(whole)*uint64(r.width)
}

// CopyTo transfers nBits bits from r to w. When r and w share the same
// Endianness and word Width and both are currently word-aligned (no
// partially consumed or buffered word), whole words are moved directly
// between backends without passing through the bit buffers; the
// remainder, and any input where the fast path does not apply, is copied
// bit-by-bit via ReadBits/WriteBits. The bit-by-bit path is always
// correct; the fast path is a verified-equivalent optimization.
func (r *Reader) CopyTo(w *Writer, nBits uint64) error {
	if r.endian == w.endian && r.width == w.width && r.buf.fill == 0 && w.buf.fill == 0 {
		wordBits := uint64(r.width)
		for nBits >= wordBits {
			v, err := r.backend.Word(r.idx)
			if err != nil {
				return err
			}
			r.idx++
			if err := w.appendRawWord(v); err != nil {
				return err
			}
			nBits -= wordBits
		}
	}
	chunk := uint(r.width)
	if uint(w.width) < chunk {
		chunk = uint(w.width)
	}
	for nBits > 0 {
		n := chunk
		if uint64(n) > nBits {
			n = uint(nBits)
		}
		v, err := r.ReadBits(n)
		if err != nil {
			return err
		}
		if err := w.WriteBits(v, n); err != nil {
			return err
		}
		nBits -= uint64(n)
	}
	return nil
}
