//
// main.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"strings"

	"github.com/markkurossi/pcg/env"
	"github.com/markkurossi/pcg/exconv"
	"github.com/markkurossi/pcg/ot"
	"github.com/markkurossi/pcg/prg"
)

var (
	verbose = false
)

func main() {
	k := flag.Uint64("k", 1<<16, "message size")
	n := flag.Uint64("n", 0, "code size (default 2*k)")
	we := flag.Uint64("we", exconv.DefaultExpanderWeight, "expander weight")
	wa := flag.Uint64("wa", exconv.DefaultAccumulatorWeight,
		"accumulator weight")
	prgName := flag.String("prg", prg.AESCTR.String(),
		"graph PRG: aes-ctr, chacha20")
	seed := flag.String("seed", "", "graph seed as 32 hex digits")
	mode := flag.String("mode", "all", "encode mode: bytes, blocks, paired, all")
	rounds := flag.Int("rounds", 10, "encode rounds per mode")
	fingerprint := flag.Bool("fingerprint", false,
		"print fingerprint of the code")
	check := flag.Bool("check", false, "verify code linearity")
	cpuprofile := flag.String("cpuprofile", "", "write cpu profile to `file`")
	fVerbose := flag.Bool("v", false, "verbose output")
	flag.Parse()

	log.SetFlags(0)
	verbose = *fVerbose

	if len(*cpuprofile) > 0 {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
	}

	config := new(env.Config)
	kind, err := prg.ParseKind(*prgName)
	if err != nil {
		log.Fatal(err)
	}
	config.PRG = kind
	if len(*seed) > 0 {
		config.Seed, err = parseSeed(*seed)
		if err != nil {
			log.Fatal(err)
		}
	}

	if *n == 0 {
		*n = 2 * *k
	}
	params := exconv.Params{
		MessageSize:       *k,
		CodeSize:          *n,
		ExpanderWeight:    *we,
		AccumulatorWeight: *wa,
	}
	code, err := exconv.NewWithConfig(params, config)
	if err != nil {
		log.Fatal(err)
	}
	if verbose {
		fmt.Printf("Code: %v\n", code)
	}

	if *fingerprint {
		fp, err := Fingerprint(code, config)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%x\n", fp)
		return
	}
	if *check {
		if err := CheckLinearity(code, config); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%v: linear over %s and %s\n", params,
			exconv.GF2Byte{}.Name(), exconv.GF2Block{}.Name())
		return
	}

	var modes []Mode
	if *mode == "all" {
		modes = []Mode{ModeBytes, ModeBlocks, ModePaired}
	} else {
		m, err := ParseMode(*mode)
		if err != nil {
			log.Fatal(err)
		}
		modes = []Mode{m}
	}
	timing, err := Benchmark(code, config, modes, *rounds)
	if err != nil {
		log.Fatal(err)
	}
	timing.Print(os.Stdout)
}

func parseSeed(s string) (ot.Block, error) {
	var seed ot.Block
	data, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return seed, fmt.Errorf("invalid seed: %w", err)
	}
	if len(data) != ot.BlockSize {
		return seed, errors.New("seed must be 16 bytes")
	}
	seed.SetBytes(data)
	return seed, nil
}
