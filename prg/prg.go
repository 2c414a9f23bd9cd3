//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

// Package prg implements deterministic counter-mode pseudorandom
// generators for public code graphs. Two parties that create a PRG
// with the same kind and key observe bit-identical streams.
package prg

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"
	"fmt"
	"math"

	"golang.org/x/crypto/chacha20"
)

// Kind specifies the keystream cipher of a PRG.
type Kind int

// PRG kinds.
const (
	AESCTR Kind = iota
	ChaCha20
)

var kinds = map[Kind]string{
	AESCTR:   "aes-ctr",
	ChaCha20: "chacha20",
}

func (k Kind) String() string {
	name, ok := kinds[k]
	if ok {
		return name
	}
	return fmt.Sprintf("{Kind %d}", k)
}

// ParseKind parses the PRG kind name.
func ParseKind(name string) (Kind, error) {
	for k, n := range kinds {
		if n == name {
			return k, nil
		}
	}
	return AESCTR, fmt.Errorf("prg: unknown kind '%s'", name)
}

// KeySize returns the key size of the kind in bytes.
func (k Kind) KeySize() int {
	switch k {
	case ChaCha20:
		return chacha20.KeySize
	default:
		return 16
	}
}

const bufSize = 4096

// PRG implements a buffered pseudorandom stream. The stream is the
// cipher keystream starting at counter zero.
type PRG struct {
	stream cipher.Stream
	buf    [bufSize]byte
	ofs    int
}

// New creates a PRG of the kind k with the key. Only the first
// k.KeySize() bytes of the key are used.
func New(k Kind, key []byte) (*PRG, error) {
	if len(key) < k.KeySize() {
		return nil, fmt.Errorf("prg: %s key too short: %d < %d",
			k, len(key), k.KeySize())
	}
	key = key[:k.KeySize()]

	var stream cipher.Stream
	switch k {
	case AESCTR:
		block, err := aes.NewCipher(key)
		if err != nil {
			return nil, err
		}
		var iv [aes.BlockSize]byte
		stream = cipher.NewCTR(block, iv[:])

	case ChaCha20:
		var nonce [chacha20.NonceSize]byte
		c, err := chacha20.NewUnauthenticatedCipher(key, nonce[:])
		if err != nil {
			return nil, err
		}
		stream = c

	default:
		return nil, fmt.Errorf("prg: unsupported kind %v", k)
	}

	prg := &PRG{
		stream: stream,
	}
	prg.refill()
	return prg, nil
}

func (prg *PRG) refill() {
	clear(prg.buf[:])
	prg.stream.XORKeyStream(prg.buf[:], prg.buf[:])
	prg.ofs = 0
}

// Read fills p with pseudorandom bytes. It never fails.
func (prg *PRG) Read(p []byte) (int, error) {
	n := len(p)
	for len(p) > 0 {
		if prg.ofs == bufSize {
			prg.refill()
		}
		c := copy(p, prg.buf[prg.ofs:])
		prg.ofs += c
		p = p[c:]
	}
	return n, nil
}

// Uint64 returns the next 64 bits of the stream as a little-endian
// integer.
func (prg *PRG) Uint64() uint64 {
	if prg.ofs+8 > bufSize {
		var tmp [8]byte
		prg.Read(tmp[:])
		return binary.LittleEndian.Uint64(tmp[:])
	}
	v := binary.LittleEndian.Uint64(prg.buf[prg.ofs:])
	prg.ofs += 8
	return v
}

// Intn returns a uniform value from [0, n). The function panics if n
// is zero.
func (prg *PRG) Intn(n uint64) uint64 {
	if n == 0 {
		panic("prg: Intn(0)")
	}
	if n&(n-1) == 0 {
		return prg.Uint64() & (n - 1)
	}
	// Reject the top partial range to keep the result unbiased.
	limit := math.MaxUint64 - math.MaxUint64%n
	for {
		v := prg.Uint64()
		if v < limit {
			return v % n
		}
	}
}

// Sampler draws distinct values with Floyd's algorithm. It keeps a
// membership table over the range offsets so that every draw costs
// O(1); the table is cleared after each Sample call so a sampler can
// serve repeated draws from ranges of at most its size.
type Sampler struct {
	marks []bool
}

// NewSampler creates a sampler for ranges of at most size values.
func NewSampler(size uint64) *Sampler {
	return &Sampler{
		marks: make([]bool, size),
	}
}

// Sample draws len(dst) distinct values from [lo, hi] using the
// stream g. Value j of the Floyd loop consumes one Intn(j+1) draw. The
// function panics if the range holds fewer than len(dst) values or
// more values than the sampler size.
func (s *Sampler) Sample(g *PRG, dst []uint64, lo, hi uint64) {
	m := uint64(len(dst))
	if m == 0 {
		return
	}
	if hi < lo || hi-lo+1 < m {
		panic(fmt.Sprintf("prg: cannot sample %d values from [%d,%d]",
			m, lo, hi))
	}
	n := hi - lo + 1
	if n > uint64(len(s.marks)) {
		panic(fmt.Sprintf("prg: range [%d,%d] exceeds sampler size %d",
			lo, hi, len(s.marks)))
	}
	var count int
	for j := n - m; j < n; j++ {
		t := g.Intn(j + 1)
		if s.marks[t] {
			t = j
		}
		s.marks[t] = true
		dst[count] = lo + t
		count++
	}
	for _, v := range dst {
		s.marks[v-lo] = false
	}
}
