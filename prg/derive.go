//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package prg

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"

	"github.com/markkurossi/pcg/ot"
)

// KeyFunctionName is the cSHAKE function name of key derivation.
const KeyFunctionName = "PCG key derivation"

// DeriveKey derives a 32-byte PRG key from the seed, the domain
// string, and the public parameters. Different domains give
// independent keys for the same seed and parameters.
func DeriveKey(seed ot.Block, domain string, params ...uint64) [32]byte {
	h := sha3.NewCShake128([]byte(KeyFunctionName), []byte(domain))

	var data ot.BlockData
	h.Write(seed.Bytes(&data))

	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(len(params)))
	h.Write(buf[:])
	for _, p := range params {
		binary.LittleEndian.PutUint64(buf[:], p)
		h.Write(buf[:])
	}

	var key [32]byte
	h.Read(key[:])
	return key
}

// NewDerived creates a PRG of the kind k with the key DeriveKey(seed,
// domain, params...).
func NewDerived(k Kind, seed ot.Block, domain string, params ...uint64) (
	*PRG, error) {

	key := DeriveKey(seed, domain, params...)
	return New(k, key[:])
}
