// Copyright 2024, The bitcode Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package code implements the individual code codecs: Unary, Gamma,
// Delta, Zeta, Omega, Pi, MinimalBinary, Rice, ExpGolomb, and the two
// VByte variants. Each is a Write*/Read*/Len* trio over a *bitio.Writer
// / *bitio.Reader, operating on the non-negative uint64 domain (signed
// values are mapped through bitcode.ToNat/ToInt at the caller's
// boundary, per spec.md S4.6).
package code

import "math/bits"

// maskN returns a mask of the low n bits, for n in [0,64]; see
// bitio/bitbuf.go for why this is branch-free under Go's shift
// semantics.
func maskN(n uint) uint64 {
	return uint64(1)<<n - 1
}

// log2Floor returns floor(log2(v)) for v >= 1.
func log2Floor(v uint64) uint {
	return uint(bits.Len64(v)) - 1
}

// isPow2 reports whether v is an exact power of two. v must be >= 1.
func isPow2(v uint64) bool {
	return v&(v-1) == 0
}
