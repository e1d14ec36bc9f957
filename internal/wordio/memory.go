// Copyright 2024, The bitcode Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package word

import "github.com/elias-codes/bitcode"

// MemoryReader is a read-only Reader backed by an owned or borrowed slice
// of words. It satisfies both the "in-memory vector (owned)" and
// "in-memory slice (borrowed read-only)" backend variants required by
// spec.md SS4.1: constructing one from a slice the caller still holds a
// reference to is exactly the borrowed case, since MemoryReader never
// copies or mutates the slice.
type MemoryReader struct {
	words []uint64
	width Width
}

// NewMemoryReader wraps words (each truncated to width bits) as a Reader.
// The slice is not copied; the caller must not mutate it while the
// reader is in use.
func NewMemoryReader(words []uint64, width Width) *MemoryReader {
	return &MemoryReader{words: words, width: width}
}

func (r *MemoryReader) Word(i int) (uint64, error) {
	if i < 0 || i >= len(r.words) {
		return 0, bitcode.ErrOutOfBounds
	}
	return r.words[i] & r.width.Mask(), nil
}

func (r *MemoryReader) Len() int { return len(r.words) }

// SliceReader is the borrowed-slice backend variant: an alias for
// MemoryReader, since borrowing differs from owning only in who
// allocated the slice, not in how the Reader interface is satisfied.
type SliceReader = MemoryReader

// NewSliceReader wraps a caller-owned slice without copying it, the
// "in-memory slice (borrowed read-only)" variant of spec.md SS4.1.
func NewSliceReader(words []uint64, width Width) *SliceReader {
	return NewMemoryReader(words, width)
}

// MemoryWriter is a Writer that appends words to an owned, growable
// slice. WordsSlice() and Words() expose the result once the writer has been
// flushed by its bitio.Writer.
type MemoryWriter struct {
	words []uint64
	width Width
	max   int // 0 means unbounded
}

// NewMemoryWriter creates a Writer that grows without bound.
func NewMemoryWriter(width Width) *MemoryWriter {
	return &MemoryWriter{width: width}
}

// NewBoundedMemoryWriter creates a Writer that reports bitcode.ErrBackendFull
// once maxWords have been appended, modeling a fixed-capacity buffer.
func NewBoundedMemoryWriter(width Width, maxWords int) *MemoryWriter {
	return &MemoryWriter{width: width, max: maxWords, words: make([]uint64, 0, maxWords)}
}

func (w *MemoryWriter) AppendWord(v uint64) error {
	if w.max > 0 && len(w.words) >= w.max {
		return bitcode.ErrBackendFull
	}
	w.words = append(w.words, v&w.width.Mask())
	return nil
}

func (w *MemoryWriter) Words() int { return len(w.words) }

// WordsSlice returns the words written so far. The caller must not mutate the
// returned slice.
func (w *MemoryWriter) WordsSlice() []uint64 { return w.words }

// Reader returns a MemoryReader over the words written so far, useful for
// round-tripping in tests without going through a byte adapter.
func (w *MemoryWriter) Reader() *MemoryReader {
	return NewMemoryReader(w.words, w.width)
}
