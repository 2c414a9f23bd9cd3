//
// block_test.go
//
// Copyright (c) 2019-2026 Markku Rossi
//
// All rights reserved.
//

package ot

import (
	"bytes"
	"crypto/rand"
	"testing"
)

func TestBlockXor(t *testing.T) {
	a := Block{
		D0: 0xffffffffffffffff,
		D1: 0x00000000ffffffff,
	}
	b := Block{
		D0: 0x0f0f0f0f0f0f0f0f,
		D1: 0xffffffff00000000,
	}
	a.Xor(b)
	if a.D0 != 0xf0f0f0f0f0f0f0f0 || a.D1 != 0xffffffffffffffff {
		t.Fatalf("Xor failed: %v", a)
	}
	a.Xor(a)
	if !a.IsZero() {
		t.Fatalf("x^x != 0: %v", a)
	}
}

func TestBlockData(t *testing.T) {
	blocks := make([]Block, 1)
	if err := RandomBlocks(rand.Reader, blocks); err != nil {
		t.Fatal(err)
	}
	b := blocks[0]
	var data BlockData
	var c Block
	c.SetBytes(b.Bytes(&data))
	if !c.Equal(b) || c != b {
		t.Fatalf("SetBytes(Bytes(%v)) = %v", b, c)
	}
	if len(b.String()) != 32 {
		t.Errorf("invalid string %q", b.String())
	}
	var zero Block
	if !zero.IsZero() || zero.String() != "00000000000000000000000000000000" {
		t.Errorf("invalid zero block %v", zero)
	}
}

func TestXorBlocks(t *testing.T) {
	a := make([]Block, 64)
	b := make([]Block, 64)
	if err := RandomBlocks(rand.Reader, a); err != nil {
		t.Fatal(err)
	}
	copy(b, a)
	XorBlocks(a, b)
	for i, blk := range a {
		if !blk.IsZero() {
			t.Fatalf("block %d: %v != 0", i, blk)
		}
	}
}

func TestAlignedBytes(t *testing.T) {
	for n := 0; n < 100; n++ {
		buf := AlignedBytes(n)
		if len(buf) != n {
			t.Fatalf("len(AlignedBytes(%d))=%d", n, len(buf))
		}
		if n > 0 && !Aligned(buf) {
			t.Fatalf("AlignedBytes(%d) not aligned", n)
		}
		if !bytes.Equal(buf, make([]byte, n)) {
			t.Fatalf("AlignedBytes(%d) not zeroed", n)
		}
	}
	buf := AlignedBytes(64)
	if Aligned(buf[1:]) {
		t.Errorf("buf[1:] reported aligned")
	}
	if !Aligned(buf[16:]) {
		t.Errorf("buf[16:] reported unaligned")
	}
	if !Aligned(nil) {
		t.Errorf("empty buffer reported unaligned")
	}
}
