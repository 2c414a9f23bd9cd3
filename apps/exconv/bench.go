//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/markkurossi/pcg/env"
	"github.com/markkurossi/pcg/exconv"
	"github.com/markkurossi/pcg/ot"
	"github.com/markkurossi/pcg/timing"
)

// Mode specifies an encode variant.
type Mode int

// Encode modes.
const (
	ModeBytes Mode = iota
	ModeBlocks
	ModePaired
)

var modeNames = map[Mode]string{
	ModeBytes:  "bytes",
	ModeBlocks: "blocks",
	ModePaired: "paired",
}

func (m Mode) String() string {
	name, ok := modeNames[m]
	if ok {
		return name
	}
	return fmt.Sprintf("{Mode %d}", m)
}

// ParseMode parses the encode mode name.
func ParseMode(name string) (Mode, error) {
	for m, n := range modeNames {
		if n == name {
			return m, nil
		}
	}
	return ModeBytes, fmt.Errorf("unknown mode '%s'", name)
}

// Benchmark runs rounds encodes of random inputs for each mode.
func Benchmark(code *exconv.Encoder, config *env.Config, modes []Mode,
	rounds int) (*timing.Timing, error) {

	n := int(code.CodeSize())
	blocks := make([]ot.Block, n)
	bytes := ot.AlignedBytes(n)

	t := timing.New()
	t.Sample("Init", 0)

	for _, mode := range modes {
		var random, encode time.Duration
		var data timing.Size

		for i := 0; i < rounds; i++ {
			start := time.Now()
			if err := randomize(config, mode, blocks, bytes); err != nil {
				return nil, err
			}
			mid := time.Now()

			var err error
			switch mode {
			case ModeBytes:
				err = code.EncodeBytes(bytes)
				data += timing.Size(n)
			case ModeBlocks:
				err = code.EncodeBlocks(blocks)
				data += timing.Size(n * ot.BlockSize)
			case ModePaired:
				err = code.EncodePaired(blocks, bytes)
				data += timing.Size(n * (ot.BlockSize + 1))
			}
			if err != nil {
				return nil, fmt.Errorf("%v: %w", mode, err)
			}
			random += mid.Sub(start)
			encode += time.Since(mid)
		}
		if verbose {
			fmt.Printf("%v: %d rounds, encode %v\n", mode, rounds,
				timing.Rate(data, encode))
		}
		sample := t.Sample(mode.String(), data)
		sample.AbsSubSample("Random", random)
		sample.AbsSubSample("Encode", encode)
	}
	return t, nil
}

func randomize(config *env.Config, mode Mode, blocks []ot.Block,
	bytes []byte) error {

	rand := config.GetRandom()
	if mode != ModeBytes {
		if err := ot.RandomBlocks(rand, blocks); err != nil {
			return err
		}
	}
	if mode != ModeBlocks {
		if _, err := io.ReadFull(rand, bytes); err != nil {
			return err
		}
	}
	return nil
}
