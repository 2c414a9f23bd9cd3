//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package exconv

import (
	"github.com/markkurossi/text/superscript"

	"github.com/markkurossi/pcg/ot"
)

// Field defines the element addition of the encoded vectors. The
// zero value of T must be the additive identity.
type Field[T any] interface {
	// Plus returns a+b.
	Plus(a, b T) T

	// Name returns the name of the element algebra.
	Name() string
}

// GF2Byte implements byte elements with bitwise XOR addition.
type GF2Byte struct{}

// Plus implements Field.Plus.
func (GF2Byte) Plus(a, b byte) byte {
	return a ^ b
}

// Name implements Field.Name.
func (GF2Byte) Name() string {
	return vectorSpace(8)
}

// GF2Word implements 64-bit word elements with bitwise XOR addition.
type GF2Word struct{}

// Plus implements Field.Plus.
func (GF2Word) Plus(a, b uint64) uint64 {
	return a ^ b
}

// Name implements Field.Name.
func (GF2Word) Name() string {
	return vectorSpace(64)
}

// GF2Block implements 128-bit block elements with bitwise XOR
// addition.
type GF2Block struct{}

// Plus implements Field.Plus.
func (GF2Block) Plus(a, b ot.Block) ot.Block {
	a.Xor(b)
	return a
}

// Name implements Field.Name.
func (GF2Block) Name() string {
	return vectorSpace(128)
}

func vectorSpace(bits int) string {
	return "GF(2)" + superscript.Itoa(bits)
}
