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

const expanderDomain = "ExConv expander"

// expander implements the regular compression stage. The code size
// positions are split into weight bands and every output takes one
// position from each band.
type expander struct {
	messageSize uint64
	bounds      []uint64
	kind        prg.Kind
	key         [32]byte
	cache       *graph
}

func newExpander(p Params, kind prg.Kind, key [32]byte) (expander, error) {
	bounds := make([]uint64, p.ExpanderWeight+1)
	for b := range bounds {
		bounds[b] = uint64(b) * p.CodeSize / p.ExpanderWeight
	}
	exp := expander{
		messageSize: p.MessageSize,
		bounds:      bounds,
		kind:        kind,
		key:         key,
	}
	entries := p.MessageSize * p.ExpanderWeight
	if entries <= graphCacheLimit {
		g, err := collect(0, int(p.MessageSize), int(entries), exp.generate)
		if err != nil {
			return exp, err
		}
		exp.cache = g
	}
	return exp, nil
}

func (exp *expander) row(g *prg.PRG, sources []uint64) []uint64 {
	for b := range sources {
		lo := exp.bounds[b]
		sources[b] = lo + g.Intn(exp.bounds[b+1]-lo)
	}
	return sources
}

// generate calls fn for outputs 0...messageSize-1 in increasing order
// with rows drawn from the PRG.
func (exp *expander) generate(fn rowFunc) error {
	g, err := prg.New(exp.kind, exp.key[:])
	if err != nil {
		return fmt.Errorf("exconv: expander: %w", err)
	}
	sources := make([]uint64, len(exp.bounds)-1)
	for k := uint64(0); k < exp.messageSize; k++ {
		fn(int(k), exp.row(g, sources))
	}
	return nil
}

// walk calls fn for outputs 0...messageSize-1 in increasing order.
func (exp *expander) walk(fn rowFunc) error {
	if exp.cache != nil {
		exp.cache.walk(fn)
		return nil
	}
	return exp.generate(fn)
}

func (exp *expander) apply(lanes []lane) error {
	var err error
	if len(lanes) == 1 {
		err = exp.walk(lanes[0].expand)
	} else {
		err = exp.walk(func(k int, sources []uint64) {
			for _, l := range lanes {
				l.expand(k, sources)
			}
		})
	}
	if err != nil {
		return err
	}
	for _, l := range lanes {
		l.finish()
	}
	return nil
}
