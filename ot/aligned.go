//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package ot

import (
	"unsafe"
)

// Alignment defines the address alignment that vector kernels
// require from byte buffers.
const Alignment = 16

// Aligned tests if the byte slice starts at an address that is a
// multiple of Alignment. Empty slices are aligned.
func Aligned(buf []byte) bool {
	if len(buf) == 0 {
		return true
	}
	return uintptr(unsafe.Pointer(unsafe.SliceData(buf)))%Alignment == 0
}

// AlignedBytes allocates an n byte slice that starts at an Alignment
// boundary.
func AlignedBytes(n int) []byte {
	raw := make([]byte, n+Alignment)
	off := int(uintptr(unsafe.Pointer(&raw[0])) % Alignment)
	if off != 0 {
		off = Alignment - off
	}
	return raw[off : off+n : off+n]
}
