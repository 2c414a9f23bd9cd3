//
// block.go
//
// Copyright (c) 2019-2026 Markku Rossi
//
// All rights reserved.
//

package ot

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Block implements a 128 bit vector element. Blocks carry one
// batched OT or PCG instance. The zero value is the all-zero block.
type Block struct {
	D0 uint64
	D1 uint64
}

// BlockData contains block data as byte array.
type BlockData [16]byte

// BlockSize defines the size of a block in bytes.
const BlockSize = 16

func (b Block) String() string {
	return fmt.Sprintf("%016x%016x", b.D0, b.D1)
}

// Equal tests if the blocks are equal.
func (b Block) Equal(o Block) bool {
	return b.D0 == o.D0 && b.D1 == o.D1
}

// IsZero tests if the block is the all-zero block.
func (b Block) IsZero() bool {
	return b.D0 == 0 && b.D1 == 0
}

// Xor xors the block with the argument block.
func (b *Block) Xor(o Block) {
	b.D0 ^= o.D0
	b.D1 ^= o.D1
}

// GetData gets the block as block data.
func (b Block) GetData(buf *BlockData) {
	binary.BigEndian.PutUint64(buf[0:8], b.D0)
	binary.BigEndian.PutUint64(buf[8:16], b.D1)
}

// SetData sets the block from block data.
func (b *Block) SetData(data *BlockData) {
	b.D0 = binary.BigEndian.Uint64((*data)[0:8])
	b.D1 = binary.BigEndian.Uint64((*data)[8:16])
}

// Bytes returns the block data as bytes.
func (b Block) Bytes(buf *BlockData) []byte {
	b.GetData(buf)
	return buf[:]
}

// SetBytes sets the block data from bytes.
func (b *Block) SetBytes(data []byte) {
	b.D0 = binary.BigEndian.Uint64(data[0:8])
	b.D1 = binary.BigEndian.Uint64(data[8:16])
}

// XorBlocks xors the blocks src into dst. The slices must have equal
// lengths.
func XorBlocks(dst, src []Block) {
	if len(dst) != len(src) {
		panic("len(dst) != len(src)")
	}
	for i := range dst {
		dst[i].D0 ^= src[i].D0
		dst[i].D1 ^= src[i].D1
	}
}

// RandomBlocks fills blocks with random data from rand.
func RandomBlocks(rand io.Reader, blocks []Block) error {
	var buf BlockData
	for i := range blocks {
		if _, err := io.ReadFull(rand, buf[:]); err != nil {
			return err
		}
		blocks[i].SetData(&buf)
	}
	return nil
}
