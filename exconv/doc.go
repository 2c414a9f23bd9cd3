//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package exconv implements the Expand-Convolute (ExConv) code used
// by silent OT and PCG protocols to compress a long noisy vector
// into a short, linearly related one (dual encoding).
//
// The dual encoding runs two stages over a code size buffer:
//
//   - the accumulator stage makes a single forward pass over the
//     buffer and adds a pseudorandom set of preceding positions into
//     each position
//   - the expander stage sums, for each of the message size outputs,
//     a regular pseudorandom set of accumulated positions
//
// The result is left in the first message size elements of the
// buffer. Both stages are linear over the element addition, which is
// XOR for the byte, word, and block elements this package provides.
//
// The code graphs are derived from the public parameters (the code
// shape, the seed, and the PRG kind) with a counter-mode PRG so that
// two parties which configure equal encoders evaluate identical codes
// without any communication:
//
//	code, err := exconv.New(n, 2*n, 7, 24)
//	if err != nil { ... }
//	err = code.EncodeBlocks(e)
//
// The lookback policy of the accumulator is: position i always adds
// position i-1 and min(i,w)-1 further distinct positions that are
// drawn uniformly from the window [i-min(i,2w), i-2] where w is the
// accumulator weight. The expander splits the code size positions
// into expander weight equal bands and selects one position from each
// band for every output.
package exconv
