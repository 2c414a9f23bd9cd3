//
// ot.go
//
// Copyright (c) 2023-2026 Markku Rossi
//
// All rights reserved.

// Package ot implements the 128-bit block type that carries batched
// oblivious transfer and PCG instances, together with the buffer
// helpers that vectorized OT kernels expect.
package ot
