// Copyright 2024, The bitcode Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package word

import (
	"testing"

	"github.com/elias-codes/bitcode"
)

func TestMemoryReaderWriter(t *testing.T) {
	var widths = map[string]Width{"16": Width16, "32": Width32, "64": Width64}
	for name, width := range widths {
		t.Run(name, func(t *testing.T) {
			w := NewMemoryWriter(width)
			in := []uint64{0, 1, width.Mask(), width.Mask() - 1, 0x1234}
			for _, v := range in {
				if err := w.AppendWord(v); err != nil {
					t.Fatalf("AppendWord(%d): %v", v, err)
				}
			}
			if got, want := w.Words(), len(in); got != want {
				t.Fatalf("Words() = %d, want %d", got, want)
			}

			r := w.Reader()
			if got, want := r.Len(), len(in); got != want {
				t.Fatalf("Len() = %d, want %d", got, want)
			}
			for i, want := range in {
				want &= width.Mask()
				got, err := r.Word(i)
				if err != nil {
					t.Fatalf("Word(%d): %v", i, err)
				}
				if got != want {
					t.Errorf("Word(%d) = %#x, want %#x", i, got, want)
				}
			}
			if _, err := r.Word(len(in)); err != bitcode.ErrOutOfBounds {
				t.Errorf("Word(out of bounds) = %v, want ErrOutOfBounds", err)
			}
			if _, err := r.Word(-1); err != bitcode.ErrOutOfBounds {
				t.Errorf("Word(-1) = %v, want ErrOutOfBounds", err)
			}
		})
	}
}

func TestMemoryWriterTruncatesToWidth(t *testing.T) {
	w := NewMemoryWriter(Width16)
	if err := w.AppendWord(0xdeadbeef); err != nil {
		t.Fatalf("AppendWord: %v", err)
	}
	if got, want := w.WordsSlice()[0], uint64(0xbeef); got != want {
		t.Errorf("stored word = %#x, want %#x", got, want)
	}
}

func TestBoundedMemoryWriterFull(t *testing.T) {
	w := NewBoundedMemoryWriter(Width64, 2)
	if err := w.AppendWord(1); err != nil {
		t.Fatalf("AppendWord 1: %v", err)
	}
	if err := w.AppendWord(2); err != nil {
		t.Fatalf("AppendWord 2: %v", err)
	}
	if err := w.AppendWord(3); err != bitcode.ErrBackendFull {
		t.Errorf("AppendWord 3 = %v, want ErrBackendFull", err)
	}
}

func TestSliceReaderIsMemoryReader(t *testing.T) {
	words := []uint64{7, 8, 9}
	r := NewSliceReader(words, Width64)
	var _ *MemoryReader = r // SliceReader is an alias, not a distinct type
	if got, want := r.Len(), 3; got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}
	v, err := r.Word(1)
	if err != nil || v != 8 {
		t.Errorf("Word(1) = (%d, %v), want (8, nil)", v, err)
	}
}

func TestWidthMask(t *testing.T) {
	tests := []struct {
		w    Width
		want uint64
	}{
		{Width16, 0xffff},
		{Width32, 0xffffffff},
		{Width64, ^uint64(0)},
	}
	for _, tc := range tests {
		if got := tc.w.Mask(); got != tc.want {
			t.Errorf("Width(%d).Mask() = %#x, want %#x", tc.w, got, tc.want)
		}
	}
}
