//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

// Package env implements the global public parameters of the PCG
// codes.
package env

import (
	"crypto/rand"
	"io"

	"github.com/markkurossi/pcg/ot"
	"github.com/markkurossi/pcg/prg"
)

// DefaultSeed is the public seed that code graphs are derived from
// unless Config specifies one.
var DefaultSeed = ot.Block{
	D0: 9996754675674599,
	D1: 56756745976768754,
}

// Config defines the global public parameters for the code
// instances. Both protocol parties must use equal Seed and PRG
// values; the graphs of the codes are functions of them. Config must
// not be modified after being passed to any module. It is safe for
// concurrent use by multiple modules as they do not modify it.
type Config struct {
	// Rand is the entropy source for random test vectors and
	// benchmark inputs. Code graphs never use it.
	Rand io.Reader

	// Seed is the public seed of the code graphs. The zero value
	// selects DefaultSeed.
	Seed ot.Block

	// PRG selects the keystream cipher for graph generation.
	PRG prg.Kind
}

// GetRandom returns the source of entropy for input vectors.
func (config *Config) GetRandom() io.Reader {
	if config != nil && config.Rand != nil {
		return config.Rand
	}
	return rand.Reader
}

// GetSeed returns the public graph seed.
func (config *Config) GetSeed() ot.Block {
	if config == nil || config.Seed.IsZero() {
		return DefaultSeed
	}
	return config.Seed
}

// GetPRG returns the graph PRG kind.
func (config *Config) GetPRG() prg.Kind {
	if config == nil {
		return prg.AESCTR
	}
	return config.PRG
}
