// Copyright 2024, The bitcode Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// +build debug

package code

import (
	"github.com/elias-codes/bitcode"
	"github.com/elias-codes/bitcode/internal/codetab"
)

// DumpGammaTable renders the gamma/delta-prefix lookup table for endian
// as a human-readable string, for use by cmd/bitgen and ad-hoc
// debugging.
func DumpGammaTable(endian bitcode.Endianness) string {
	return gammaTable(endian).String()
}

// DumpOmegaTable renders the omega lookup table for endian as a
// human-readable string.
func DumpOmegaTable(endian bitcode.Endianness) string {
	return omegaTable(endian).String()
}

// GammaTable returns the gamma/delta-prefix lookup table for endian,
// for cmd/bitgen's independent verification pass.
func GammaTable(endian bitcode.Endianness) *codetab.Table { return gammaTable(endian) }

// OmegaTable returns the omega lookup table for endian, for cmd/bitgen's
// independent verification pass.
func OmegaTable(endian bitcode.Endianness) *codetab.Table { return omegaTable(endian) }
