//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package exconv

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidParameters is returned when the code parameters are
	// invalid.
	ErrInvalidParameters = errors.New("exconv: invalid parameters")

	// ErrLengthMismatch is returned when an encode buffer length does
	// not match the code size.
	ErrLengthMismatch = errors.New("exconv: length mismatch")

	// ErrAlignmentViolation is the panic value of EncodePaired when its
	// byte buffer is not 16-byte aligned.
	ErrAlignmentViolation = errors.New("exconv: alignment violation")
)

// Default code shape for silent OT.
const (
	DefaultExpanderWeight    = 7
	DefaultAccumulatorWeight = 24
)

// Params define the shape of an ExConv code.
type Params struct {
	MessageSize       uint64
	CodeSize          uint64
	ExpanderWeight    uint64
	AccumulatorWeight uint64
}

func (p Params) String() string {
	return fmt.Sprintf("ExConv(k=%d, n=%d, w_e=%d, w_a=%d)",
		p.MessageSize, p.CodeSize, p.ExpanderWeight, p.AccumulatorWeight)
}

// Validate checks that the parameters define a legal code:
//
//	0 < MessageSize < CodeSize
//	0 < ExpanderWeight < CodeSize
//	0 < AccumulatorWeight < CodeSize
func (p Params) Validate() error {
	if p.MessageSize == 0 || p.CodeSize == 0 || p.ExpanderWeight == 0 ||
		p.AccumulatorWeight == 0 {
		return fmt.Errorf("%w: zero value in %v", ErrInvalidParameters, p)
	}
	if p.MessageSize >= p.CodeSize {
		return fmt.Errorf("%w: message size %d >= code size %d",
			ErrInvalidParameters, p.MessageSize, p.CodeSize)
	}
	if p.ExpanderWeight >= p.CodeSize {
		return fmt.Errorf("%w: expander weight %d >= code size %d",
			ErrInvalidParameters, p.ExpanderWeight, p.CodeSize)
	}
	if p.AccumulatorWeight >= p.CodeSize {
		return fmt.Errorf("%w: accumulator weight %d >= code size %d",
			ErrInvalidParameters, p.AccumulatorWeight, p.CodeSize)
	}
	if p.CodeSize > math.MaxInt32 {
		return fmt.Errorf("%w: code size %d too large",
			ErrInvalidParameters, p.CodeSize)
	}
	return nil
}
