//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package exconv

import (
	"fmt"

	"github.com/markkurossi/pcg/prg"
)

const accumulatorDomain = "ExConv accumulator"

// accumulator implements the convolution stage. Small graphs are
// cached at creation; others are regenerated from the key on every
// pass.
type accumulator struct {
	codeSize uint64
	weight   uint64
	kind     prg.Kind
	key      [32]byte
	cache    *graph
}

func newAccumulator(p Params, kind prg.Kind, key [32]byte) (
	accumulator, error) {

	acc := accumulator{
		codeSize: p.CodeSize,
		weight:   p.AccumulatorWeight,
		kind:     kind,
		key:      key,
	}
	entries := (p.CodeSize - 1) * p.AccumulatorWeight
	if entries <= graphCacheLimit {
		g, err := collect(1, int(p.CodeSize-1), int(entries), acc.generate)
		if err != nil {
			return acc, err
		}
		acc.cache = g
	}
	return acc, nil
}

// row returns the lookback offsets of position i. The offset 1 is
// always present, the rest are distinct and within [2, min(i,2w)].
func (acc *accumulator) row(g *prg.PRG, s *prg.Sampler, i uint64,
	buf []uint64) []uint64 {

	count := min(i, acc.weight)
	span := min(i, 2*acc.weight)

	offsets := buf[:count]
	offsets[0] = 1
	s.Sample(g, offsets[1:], 2, span)
	return offsets
}

// generate calls fn for positions 1...codeSize-1 in increasing order
// with rows drawn from the PRG.
func (acc *accumulator) generate(fn rowFunc) error {
	g, err := prg.New(acc.kind, acc.key[:])
	if err != nil {
		return fmt.Errorf("exconv: accumulator: %w", err)
	}
	s := prg.NewSampler(2 * acc.weight)
	buf := make([]uint64, acc.weight)
	for i := uint64(1); i < acc.codeSize; i++ {
		fn(int(i), acc.row(g, s, i, buf))
	}
	return nil
}

// walk calls fn for positions 1...codeSize-1 in increasing order.
func (acc *accumulator) walk(fn rowFunc) error {
	if acc.cache != nil {
		acc.cache.walk(fn)
		return nil
	}
	return acc.generate(fn)
}

func (acc *accumulator) apply(lanes []lane) error {
	if len(lanes) == 1 {
		return acc.walk(lanes[0].accumulate)
	}
	return acc.walk(func(i int, offsets []uint64) {
		for _, l := range lanes {
			l.accumulate(i, offsets)
		}
	})
}
