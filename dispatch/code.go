// Copyright 2024, The bitcode Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package dispatch implements the runtime code-selection layer atop
// package code: a closed tagged variant (Code) that can be stored,
// compared, and used as a map key, plus a CodeStats accumulator for
// choosing among codes by total encoded size.
package dispatch

import (
	"github.com/elias-codes/bitcode"
	"github.com/elias-codes/bitcode/bitio"
	"github.com/elias-codes/bitcode/code"
)

// Kind tags which member of the code family a Code value selects.
type Kind uint8

const (
	Unary Kind = iota
	Gamma
	Delta
	Zeta
	Omega
	Pi
	MinimalBinary
	Rice
	ExpGolomb
	VByteBE
	VByteLE
)

func (k Kind) String() string {
	switch k {
	case Unary:
		return "Unary"
	case Gamma:
		return "Gamma"
	case Delta:
		return "Delta"
	case Zeta:
		return "Zeta"
	case Omega:
		return "Omega"
	case Pi:
		return "Pi"
	case MinimalBinary:
		return "MinimalBinary"
	case Rice:
		return "Rice"
	case ExpGolomb:
		return "ExpGolomb"
	case VByteBE:
		return "VByteBE"
	case VByteLE:
		return "VByteLE"
	default:
		return "Kind(?)"
	}
}

// Code is a value-level descriptor for one member of the code family,
// carrying whatever parameter that member needs. It is a plain
// comparable struct rather than an interface: dispatch is a switch over
// Kind, not a virtual call, so the compiler can inline each arm, and a
// Code is cheap enough to use as a map key in Stats.
type Code struct {
	Kind Kind
	// K is the order parameter for Zeta, Pi, and ExpGolomb.
	K uint64
	// Max is the exclusive upper bound for MinimalBinary.
	Max uint64
	// Log2B is the b parameter for Rice.
	Log2B uint
	_     struct{}
}

// NewUnary returns the Unary code descriptor.
func NewUnary() Code { return Code{Kind: Unary} }

// NewGamma returns the Elias gamma code descriptor.
func NewGamma() Code { return Code{Kind: Gamma} }

// NewDelta returns the Elias delta code descriptor.
func NewDelta() Code { return Code{Kind: Delta} }

// NewZeta returns the Boldi-Vigna zeta_k code descriptor. k must be >= 1.
func NewZeta(k uint64) Code { return Code{Kind: Zeta, K: k} }

// NewOmega returns the Elias omega code descriptor.
func NewOmega() Code { return Code{Kind: Omega} }

// NewPi returns the Boldi-Vigna pi_k code descriptor. k must be >= 1.
func NewPi(k uint64) Code { return Code{Kind: Pi, K: k} }

// NewMinimalBinary returns the phased-in binary code descriptor for
// values in [0,max).
func NewMinimalBinary(max uint64) Code { return Code{Kind: MinimalBinary, Max: max} }

// NewRice returns the Rice/Golomb-power-of-two code descriptor with
// parameter b.
func NewRice(b uint) Code { return Code{Kind: Rice, Log2B: b} }

// NewExpGolomb returns the exponential-Golomb order-k code descriptor.
func NewExpGolomb(k uint64) Code { return Code{Kind: ExpGolomb, K: k} }

// NewVByteBE returns the big-endian variable-byte code descriptor.
func NewVByteBE() Code { return Code{Kind: VByteBE} }

// NewVByteLE returns the little-endian variable-byte code descriptor.
func NewVByteLE() Code { return Code{Kind: VByteLE} }

// Write encodes v to w using the code this descriptor selects.
func (c Code) Write(w *bitio.Writer, v uint64) error {
	switch c.Kind {
	case Unary:
		return w.WriteUnary(v)
	case Gamma:
		return code.WriteGamma(w, v)
	case Delta:
		return code.WriteDelta(w, v)
	case Zeta:
		return code.WriteZeta(w, v, c.K)
	case Omega:
		return code.WriteOmega(w, v)
	case Pi:
		return code.WritePi(w, v, c.K)
	case MinimalBinary:
		return code.WriteMinimalBinary(w, v, c.Max)
	case Rice:
		return code.WriteRice(w, v, c.Log2B)
	case ExpGolomb:
		return code.WriteExpGolomb(w, v, uint(c.K))
	case VByteBE:
		return code.WriteVByteBE(w, v)
	case VByteLE:
		return code.WriteVByteLE(w, v)
	default:
		return bitcode.ErrInvalidArgument
	}
}

// Read decodes a value from r using the code this descriptor selects.
func (c Code) Read(r *bitio.Reader) (uint64, error) {
	switch c.Kind {
	case Unary:
		return r.ReadUnary()
	case Gamma:
		return code.ReadGamma(r)
	case Delta:
		return code.ReadDelta(r)
	case Zeta:
		return code.ReadZeta(r, c.K)
	case Omega:
		return code.ReadOmega(r)
	case Pi:
		return code.ReadPi(r, c.K)
	case MinimalBinary:
		return code.ReadMinimalBinary(r, c.Max)
	case Rice:
		return code.ReadRice(r, c.Log2B)
	case ExpGolomb:
		return code.ReadExpGolomb(r, uint(c.K))
	case VByteBE:
		return code.ReadVByteBE(r)
	case VByteLE:
		return code.ReadVByteLE(r)
	default:
		return 0, bitcode.ErrInvalidArgument
	}
}

// Len returns the length in bits that Write(v) would produce, without
// writing anything.
func (c Code) Len(v uint64) uint64 {
	switch c.Kind {
	case Unary:
		return code.LenUnary(v)
	case Gamma:
		return code.LenGamma(v)
	case Delta:
		return code.LenDelta(v)
	case Zeta:
		return code.LenZeta(v, c.K)
	case Omega:
		return code.LenOmega(v)
	case Pi:
		return code.LenPi(v, c.K)
	case MinimalBinary:
		return code.LenMinimalBinary(v, c.Max)
	case Rice:
		return code.LenRice(v, c.Log2B)
	case ExpGolomb:
		return code.LenExpGolomb(v, uint(c.K))
	case VByteBE:
		return code.LenVByteBE(v)
	case VByteLE:
		return code.LenVByteLE(v)
	default:
		return 0
	}
}
