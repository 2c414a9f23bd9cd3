//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package exconv

import (
	"encoding/hex"
	"errors"
	"fmt"
	"testing"

	"github.com/markkurossi/pcg/env"
	"github.com/markkurossi/pcg/prg"
)

// Graph rows of New(100, 200, 7, 16). Both parties must derive these
// exact values.
var accumulatorRowTests = map[int][]uint64{
	1:  {1},
	2:  {1, 2},
	16: {1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16},
	17: {1, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17},
	18: {1, 2, 5, 6, 3, 7, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18},
	19: {1, 2, 6, 7, 8, 9, 4, 11, 12, 13, 14, 10, 16, 17, 18, 19},
	20: {1, 4, 5, 6, 9, 10, 7, 12, 13, 11, 14, 2, 17, 3, 19, 16},
}

var expanderRowTests = []struct {
	kind prg.Kind
	rows [][]uint64
}{
	{
		kind: prg.AESCTR,
		rows: [][]uint64{
			{25, 54, 80, 109, 116, 168, 171},
			{21, 36, 57, 92, 117, 145, 188},
			{23, 56, 61, 99, 121, 151, 192},
			{25, 46, 84, 111, 117, 160, 187},
		},
	},
	{
		kind: prg.ChaCha20,
		rows: [][]uint64{
			{27, 38, 79, 94, 118, 146, 183},
			{9, 45, 71, 105, 115, 165, 172},
		},
	},
}

func equalRows(a, b []uint64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestAccumulatorVector(t *testing.T) {
	code, err := New(100, 200, 7, 16)
	if err != nil {
		t.Fatal(err)
	}
	if code.acc.cache == nil {
		t.Fatalf("accumulator graph not cached")
	}
	walks := map[string]func(rowFunc) error{
		"cached":    code.acc.walk,
		"generated": code.acc.generate,
	}
	for name, walk := range walks {
		var matched int
		err := walk(func(i int, offsets []uint64) {
			expected, ok := accumulatorRowTests[i]
			if !ok {
				return
			}
			matched++
			if !equalRows(offsets, expected) {
				t.Errorf("%s: row %d: %v, expected %v",
					name, i, offsets, expected)
			}
		})
		if err != nil {
			t.Fatal(err)
		}
		if matched != len(accumulatorRowTests) {
			t.Errorf("%s: matched %d rows", name, matched)
		}
	}
}

func TestExpanderVector(t *testing.T) {
	p := Params{100, 200, 7, 16}
	for _, test := range expanderRowTests {
		code, err := NewWithConfig(p, &env.Config{PRG: test.kind})
		if err != nil {
			t.Fatal(err)
		}
		rows, err := code.ExpanderRows(0, uint64(len(test.rows)))
		if err != nil {
			t.Fatal(err)
		}
		for k, row := range rows {
			if !equalRows(row, test.rows[k]) {
				t.Errorf("%v: row %d: %v, expected %v",
					test.kind, k, row, test.rows[k])
			}
		}
	}
}

func TestEncodeVector(t *testing.T) {
	code, err := New(100, 200, 7, 16)
	if err != nil {
		t.Fatal(err)
	}
	buf := make([]byte, 200)
	for i := range buf {
		buf[i] = byte(i)
	}
	if err := code.EncodeBytes(buf); err != nil {
		t.Fatal(err)
	}
	const expected = "f50d760b91403afcba834d5dc4ca4584"
	if got := hex.EncodeToString(buf[:16]); got != expected {
		t.Errorf("EncodeBytes: %s, expected %s", got, expected)
	}
}

func TestGraphCache(t *testing.T) {
	for _, p := range encodeTests {
		code := newCode(t, p)
		if code.acc.cache == nil || code.exp.cache == nil {
			t.Fatalf("%v: graphs not cached", p)
		}
		uncached := *code
		uncached.acc.cache = nil
		uncached.exp.cache = nil

		input := randomBlocks(t, int(p.CodeSize))
		e0 := append(input[:0:0], input...)
		e1 := append(input[:0:0], input...)
		if err := code.EncodeBlocks(e0); err != nil {
			t.Fatal(err)
		}
		if err := uncached.EncodeBlocks(e1); err != nil {
			t.Fatal(err)
		}
		for i := 0; i < int(p.MessageSize); i++ {
			if e0[i] != e1[i] {
				t.Fatalf("%v: output %d: cached %v, generated %v",
					p, i, e0[i], e1[i])
			}
		}
	}

	code := newCode(t, Params{100, 20000, 7, 1600})
	if code.acc.cache != nil {
		t.Errorf("oversized accumulator graph cached")
	}
}

// Large accumulator weights run from the PRG without a graph cache.
func TestLargeAccumulatorWeight(t *testing.T) {
	p := Params{1000, 20000, 7, 1600}
	code := newCode(t, p)

	var rows int
	seen := make([]bool, 2*p.AccumulatorWeight+1)
	err := code.acc.walk(func(i int, offsets []uint64) {
		rows++
		if uint64(len(offsets)) != min(uint64(i), p.AccumulatorWeight) {
			t.Fatalf("position %d: %d offsets", i, len(offsets))
		}
		for _, o := range offsets {
			if o > min(uint64(i), 2*p.AccumulatorWeight) || seen[o] {
				t.Fatalf("position %d: invalid offset %d", i, o)
			}
			seen[o] = true
		}
		for _, o := range offsets {
			seen[o] = false
		}
	})
	if err != nil {
		t.Fatal(err)
	}
	if uint64(rows) != p.CodeSize-1 {
		t.Errorf("%d rows", rows)
	}

	buf := make([]byte, p.CodeSize)
	if err := code.EncodeBytes(buf); err != nil {
		t.Fatal(err)
	}
}

func TestExpanderRowsError(t *testing.T) {
	code, err := New(100, 200, 7, 16)
	if err != nil {
		t.Fatal(err)
	}
	_, err = code.ExpanderRows(95, 10)
	if err == nil {
		t.Fatalf("ExpanderRows(95, 10) succeeded")
	}
	if errors.Is(err, ErrLengthMismatch) {
		t.Errorf("row range error reported as length mismatch: %v", err)
	}
}

func BenchmarkAccumulatorWeight(b *testing.B) {
	for _, w := range []uint64{100, 400, 1600} {
		b.Run(fmt.Sprintf("w=%d", w), func(b *testing.B) {
			code, err := New(1000, 20000, 7, w)
			if err != nil {
				b.Fatal(err)
			}
			buf := make([]byte, code.CodeSize())
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				code.EncodeBytes(buf)
			}
		})
	}
}
