// Copyright 2024, The bitcode Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package word

import (
	"encoding/binary"
	"io"

	"github.com/elias-codes/bitcode"
)

// FileReader adapts an io.ReaderAt (typically an *os.File, but any
// ReaderAt works, including a bytes.Reader) into a word.Reader by
// assembling native-endian words of the configured width, the
// "byte-file adapter" of spec.md SS4.1.
type FileReader struct {
	ra     io.ReaderAt
	width  Width
	nWords int // -1 if unknown
}

// NewFileReader wraps ra. If size >= 0, it is the total byte length of
// ra and is used to bound Len(); pass -1 if unknown, in which case Word
// reads lazily and Len always reports 0.
func NewFileReader(ra io.ReaderAt, width Width, size int64) *FileReader {
	bytesPerWord := int64(width) / 8
	nWords := -1
	if size >= 0 {
		nWords = int(size / bytesPerWord)
	}
	return &FileReader{ra: ra, width: width, nWords: nWords}
}

func (r *FileReader) Len() int {
	if r.nWords < 0 {
		return 0
	}
	return r.nWords
}

func (r *FileReader) Word(i int) (uint64, error) {
	if i < 0 || (r.nWords >= 0 && i >= r.nWords) {
		return 0, bitcode.ErrOutOfBounds
	}
	bytesPerWord := int(r.width) / 8
	buf := make([]byte, bytesPerWord)
	if _, err := r.ra.ReadAt(buf, int64(i*bytesPerWord)); err != nil {
		if err == io.EOF {
			return 0, bitcode.ErrOutOfBounds
		}
		return 0, err
	}
	switch r.width {
	case Width16:
		return uint64(binary.NativeEndian.Uint16(buf)), nil
	case Width32:
		return uint64(binary.NativeEndian.Uint32(buf)), nil
	default:
		return binary.NativeEndian.Uint64(buf), nil
	}
}

// FileWriter adapts an io.Writer into a word.Writer by disassembling
// each appended word into native-endian bytes and writing them through.
type FileWriter struct {
	w      io.Writer
	width  Width
	nWords int
}

// NewFileWriter wraps w.
func NewFileWriter(w io.Writer, width Width) *FileWriter {
	return &FileWriter{w: w, width: width}
}

func (w *FileWriter) Words() int { return w.nWords }

func (w *FileWriter) AppendWord(v uint64) error {
	bytesPerWord := int(w.width) / 8
	buf := make([]byte, bytesPerWord)
	switch w.width {
	case Width16:
		binary.NativeEndian.PutUint16(buf, uint16(v))
	case Width32:
		binary.NativeEndian.PutUint32(buf, uint32(v))
	default:
		binary.NativeEndian.PutUint64(buf, v)
	}
	if _, err := w.w.Write(buf); err != nil {
		return err
	}
	w.nWords++
	return nil
}
