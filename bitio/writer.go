// Copyright 2024, The bitcode Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bitio

import (
	"github.com/elias-codes/bitcode"
	word "github.com/elias-codes/bitcode/internal/wordio"
)

// Config adjusts a Writer's behavior. The zero value has Checks false;
// pass nil to NewWriter to get the safer default of Checks true, or an
// explicit *Config to control it precisely.
type Config struct {
	// Checks, when true, makes WriteBits reject values that do not fit
	// in the requested bit width with bitcode.ErrInvalidArgument. When
	// false, out-of-range values are silently truncated. Disabling
	// checks trades a small amount of safety for one less branch per
	// call, matching the "checks off" performance mode of spec.md S6.
	Checks bool
	_      struct{}
}

// Writer is a buffered bit-level writer over a word.Writer backend,
// mirroring Reader. See bitbuf.go for the shared true-stream-order
// buffer representation.
type Writer struct {
	backend word.Writer
	width   word.Width
	endian  bitcode.Endianness
	checks  bool

	buf         bitbuf
	bitsWritten uint64
	flushed     bool
}

// NewWriter constructs a Writer over backend. If conf is nil, checks are
// enabled by default; pass &Config{} explicitly to disable them.
func NewWriter(backend word.Writer, width word.Width, endian bitcode.Endianness, conf *Config) *Writer {
	checks := true
	if conf != nil {
		checks = conf.Checks
	}
	return &Writer{backend: backend, width: width, endian: endian, checks: checks}
}

// Width reports the backend's word width.
func (w *Writer) Width() word.Width { return w.width }

// Endianness reports the configured bit-packing order.
func (w *Writer) Endianness() bitcode.Endianness { return w.endian }

// BitsWritten reports the total number of bits written so far, including
// any still sitting in the buffer awaiting Flush.
func (w *Writer) BitsWritten() uint64 { return w.bitsWritten }

// drain emits any complete backend words currently sitting in the
// buffer.
func (w *Writer) drain() error {
	wordBits := uint(w.width)
	for w.buf.fill >= wordBits {
		raw := w.buf.pop(wordBits)
		out := raw
		if w.endian == bitcode.BigEndian {
			out = reverseBitsN(raw, wordBits)
		}
		if err := w.backend.AppendWord(out); err != nil {
			return err
		}
	}
	return nil
}

// appendRawWord appends v directly to the backend, bypassing the bit
// buffer. The caller (CopyTo's fast path) must only use this when the
// buffer is empty, so the stream stays word-aligned.
func (w *Writer) appendRawWord(v uint64) error {
	if err := w.backend.AppendWord(v); err != nil {
		return err
	}
	w.bitsWritten += uint64(w.width)
	return nil
}

// TryWriteBits writes n bits without draining completed words to the
// backend first, for the fast inlinable path where the caller already
// knows the buffer has room (fill+n does not reach 2*Width). It never
// fails for valid n; callers still wanting the checks behavior of
// WriteBits should check the value themselves.
func (w *Writer) TryWriteBits(v uint64, n uint) {
	raw := v
	if w.endian == bitcode.BigEndian {
		raw = reverseBitsN(v, n)
	}
	w.buf.push(raw, n)
	w.bitsWritten += uint64(n)
}

// WriteBits writes the low n bits of v (n <= Width) to the stream. If
// checks are enabled and v does not fit in n bits, it returns
// bitcode.ErrInvalidArgument without writing anything.
func (w *Writer) WriteBits(v uint64, n uint) error {
	if w.flushed {
		return bitcode.ErrInvalidState
	}
	if n > uint(w.width) {
		return bitcode.ErrInvalidArgument
	}
	if w.checks && n < 64 && v>>n != 0 {
		return bitcode.ErrInvalidArgument
	}
	w.TryWriteBits(v, n)
	return w.drain()
}

// WriteUnary writes k zero bits followed by a terminating one bit. It
// pushes whole zero words directly into the buffer a word at a time
// rather than calling WriteBits once per bit, and constructs the final
// partial word directly in true stream order: this is why it bypasses
// WriteBits's endianness conversion (see bitbuf.go) rather than building
// the pattern from a caller-style value, which would only happen to
// match BigEndian's bit order and not LittleEndian's.
func (w *Writer) WriteUnary(k uint64) error {
	if w.flushed {
		return bitcode.ErrInvalidState
	}
	wordBits := uint64(w.width)
	for k >= wordBits {
		w.buf.push(0, uint(wordBits))
		w.bitsWritten += wordBits
		if err := w.drain(); err != nil {
			return err
		}
		k -= wordBits
	}
	w.buf.push(uint64(1)<<k, uint(k)+1)
	w.bitsWritten += k + 1
	return w.drain()
}

// Flush pads the buffer with zero bits up to the next whole word (on the
// trailing side, i.e. appended after the last bit written), emits that
// final word if any bits were pending, and returns the total number of
// backend words written. After Flush, further writes return
// bitcode.ErrInvalidState.
func (w *Writer) Flush() (int64, error) {
	if w.flushed {
		return int64(w.backend.Words()), nil
	}
	if err := w.drain(); err != nil {
		return int64(w.backend.Words()), err
	}
	if w.buf.fill > 0 {
		pad := uint(w.width) - w.buf.fill
		w.buf.push(0, pad)
		if err := w.drain(); err != nil {
			return int64(w.backend.Words()), err
		}
	}
	w.flushed = true
	return int64(w.backend.Words()), nil
}
