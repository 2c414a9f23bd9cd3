//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package exconv

import (
	"fmt"

	"github.com/markkurossi/pcg/env"
	"github.com/markkurossi/pcg/ot"
	"github.com/markkurossi/pcg/prg"
)

// Encoder implements an ExConv code instance. The encoder is
// immutable after creation: the encode functions allocate their
// scratch space per call and it is safe to call them concurrently
// with distinct buffers.
type Encoder struct {
	params Params
	seed   ot.Block
	kind   prg.Kind
	acc    accumulator
	exp    expander
}

// New creates an encoder with the default public parameters.
func New(messageSize, codeSize, expanderWeight, accumulatorWeight uint64) (
	*Encoder, error) {

	return NewWithConfig(Params{
		MessageSize:       messageSize,
		CodeSize:          codeSize,
		ExpanderWeight:    expanderWeight,
		AccumulatorWeight: accumulatorWeight,
	}, nil)
}

// NewDefault creates an encoder with the silent OT code shape: rate
// 1/2 with the default expander and accumulator weights.
func NewDefault(messageSize uint64) (*Encoder, error) {
	if messageSize == 0 {
		return nil, fmt.Errorf("%w: zero message size", ErrInvalidParameters)
	}
	codeSize := 2 * messageSize
	return New(messageSize, codeSize,
		min(DefaultExpanderWeight, codeSize-1),
		min(DefaultAccumulatorWeight, codeSize-1))
}

// NewWithConfig creates an encoder for the parameters. The config
// provides the graph seed and PRG kind; a nil config selects the
// defaults.
func NewWithConfig(params Params, config *env.Config) (*Encoder, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	seed := config.GetSeed()
	kind := config.GetPRG()

	shape := []uint64{
		params.MessageSize,
		params.CodeSize,
		params.ExpanderWeight,
		params.AccumulatorWeight,
	}
	accKey := prg.DeriveKey(seed, accumulatorDomain, shape...)
	expKey := prg.DeriveKey(seed, expanderDomain, shape...)

	// Verify the PRG kind here so that encoding does not fail on it.
	if _, err := prg.New(kind, accKey[:]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidParameters, err)
	}

	acc, err := newAccumulator(params, kind, accKey)
	if err != nil {
		return nil, err
	}
	exp, err := newExpander(params, kind, expKey)
	if err != nil {
		return nil, err
	}

	return &Encoder{
		params: params,
		seed:   seed,
		kind:   kind,
		acc:    acc,
		exp:    exp,
	}, nil
}

func (e *Encoder) String() string {
	return fmt.Sprintf("%v/%v/%v", e.params, e.kind, e.seed)
}

// Params returns the code parameters.
func (e *Encoder) Params() Params {
	return e.params
}

// MessageSize returns the number of output elements.
func (e *Encoder) MessageSize() uint64 {
	return e.params.MessageSize
}

// CodeSize returns the number of input elements.
func (e *Encoder) CodeSize() uint64 {
	return e.params.CodeSize
}

func (e *Encoder) checkLength(n int) error {
	if uint64(n) != e.params.CodeSize {
		return fmt.Errorf("%w: buffer length %d, code size %d",
			ErrLengthMismatch, n, e.params.CodeSize)
	}
	return nil
}

func (e *Encoder) encode(lanes ...lane) error {
	if err := e.acc.apply(lanes); err != nil {
		return err
	}
	return e.exp.apply(lanes)
}

// Encode dual-encodes buf in place over the field f. After the call,
// buf[:MessageSize()] holds the result and the rest of buf is
// unspecified.
func Encode[T any, F Field[T]](e *Encoder, f F, buf []T) error {
	if err := e.checkLength(len(buf)); err != nil {
		return err
	}
	return e.encode(newVector(f, buf, e.params.MessageSize))
}

// EncodeBytes dual-encodes the byte buffer in place.
func (e *Encoder) EncodeBytes(buf []byte) error {
	return Encode(e, GF2Byte{}, buf)
}

// EncodeWords dual-encodes the 64-bit word buffer in place.
func (e *Encoder) EncodeWords(buf []uint64) error {
	return Encode(e, GF2Word{}, buf)
}

// EncodeBlocks dual-encodes the block buffer in place.
func (e *Encoder) EncodeBlocks(buf []ot.Block) error {
	return Encode(e, GF2Block{}, buf)
}

// EncodePaired dual-encodes the blocks and bytes buffers in place
// with one graph generation. The bytes buffer must start at a 16-byte
// aligned address, see ot.AlignedBytes. The function panics with
// ErrAlignmentViolation if bytes is misaligned; the buffers are not
// modified in that case.
func (e *Encoder) EncodePaired(blocks []ot.Block, bytes []byte) error {
	if err := e.checkLength(len(blocks)); err != nil {
		return err
	}
	if err := e.checkLength(len(bytes)); err != nil {
		return err
	}
	if !ot.Aligned(bytes) {
		panic(fmt.Errorf("%w: bytes buffer at %p", ErrAlignmentViolation,
			&bytes[0]))
	}
	return e.encode(
		newVector(GF2Block{}, blocks, e.params.MessageSize),
		newVector(GF2Byte{}, bytes, e.params.MessageSize))
}

// ExpanderRows returns the expander source positions of the outputs
// [first, first+count). Every row holds one position from each
// expander band in increasing order.
func (e *Encoder) ExpanderRows(first, count uint64) ([][]uint64, error) {
	if first > e.params.MessageSize || count > e.params.MessageSize-first {
		return nil, fmt.Errorf("exconv: rows [%d,%d) outside message size %d",
			first, first+count, e.params.MessageSize)
	}
	result := make([][]uint64, 0, count)
	err := e.exp.walk(func(k int, sources []uint64) {
		if uint64(k) >= first && uint64(k) < first+count {
			result = append(result, append([]uint64(nil), sources...))
		}
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
