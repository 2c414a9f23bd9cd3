//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"fmt"
	"io"

	"golang.org/x/crypto/sha3"

	"github.com/markkurossi/pcg/env"
	"github.com/markkurossi/pcg/exconv"
	"github.com/markkurossi/pcg/ot"
	"github.com/markkurossi/pcg/prg"
)

const testVectorDomain = "ExConv test vector"

// Fingerprint encodes a test vector that is derived from the public
// parameters and returns the SHA3-256 digest of the result. Two
// parties with equal codes get equal fingerprints.
func Fingerprint(code *exconv.Encoder, config *env.Config) ([32]byte, error) {
	var fp [32]byte

	p := code.Params()
	g, err := prg.NewDerived(config.GetPRG(), config.GetSeed(),
		testVectorDomain, p.MessageSize, p.CodeSize, p.ExpanderWeight,
		p.AccumulatorWeight)
	if err != nil {
		return fp, err
	}
	blocks := make([]ot.Block, p.CodeSize)
	if err := ot.RandomBlocks(g, blocks); err != nil {
		return fp, err
	}
	if err := code.EncodeBlocks(blocks); err != nil {
		return fp, err
	}

	h := sha3.New256()
	var data ot.BlockData
	for _, b := range blocks[:p.MessageSize] {
		h.Write(b.Bytes(&data))
	}
	copy(fp[:], h.Sum(nil))
	return fp, nil
}

// CheckLinearity verifies that encode(a)^encode(b) = encode(a^b) for
// random a and b with the paired encoder.
func CheckLinearity(code *exconv.Encoder, config *env.Config) error {
	n := int(code.CodeSize())
	k := int(code.MessageSize())
	rand := config.GetRandom()

	var blocks [3][]ot.Block
	var bytes [3][]byte
	for i := 0; i < 2; i++ {
		blocks[i] = make([]ot.Block, n)
		if err := ot.RandomBlocks(rand, blocks[i]); err != nil {
			return err
		}
		bytes[i] = ot.AlignedBytes(n)
		if _, err := io.ReadFull(rand, bytes[i]); err != nil {
			return err
		}
	}
	blocks[2] = append([]ot.Block(nil), blocks[0]...)
	ot.XorBlocks(blocks[2], blocks[1])
	bytes[2] = ot.AlignedBytes(n)
	for i := range bytes[2] {
		bytes[2][i] = bytes[0][i] ^ bytes[1][i]
	}

	for i := range blocks {
		if err := code.EncodePaired(blocks[i], bytes[i]); err != nil {
			return err
		}
	}
	for i := 0; i < k; i++ {
		b := blocks[0][i]
		b.Xor(blocks[1][i])
		if b != blocks[2][i] {
			return fmt.Errorf("block %d: %v != %v", i, b, blocks[2][i])
		}
		if bytes[0][i]^bytes[1][i] != bytes[2][i] {
			return fmt.Errorf("byte %d: %02x != %02x",
				i, bytes[0][i]^bytes[1][i], bytes[2][i])
		}
	}
	return nil
}
