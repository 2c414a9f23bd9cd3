//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package exconv

// lane is one buffer that a graph pass updates. A single graph
// generation can drive several lanes row by row.
type lane interface {
	accumulate(i int, offsets []uint64)
	expand(k int, sources []uint64)
	finish()
}

// vector implements a lane over the elements T with the addition of
// the field F.
type vector[T any, F Field[T]] struct {
	f F
	x []T
	y []T
}

func newVector[T any, F Field[T]](f F, x []T, messageSize uint64) *vector[T, F] {
	return &vector[T, F]{
		f: f,
		x: x,
		y: make([]T, messageSize),
	}
}

// accumulate sets x[i] += sum(x[i-o]) for o in offsets.
func (v *vector[T, F]) accumulate(i int, offsets []uint64) {
	x := v.x
	acc := x[i]
	for _, o := range offsets {
		acc = v.f.Plus(acc, x[i-int(o)])
	}
	x[i] = acc
}

// expand sets y[k] = sum(x[j]) for j in sources.
func (v *vector[T, F]) expand(k int, sources []uint64) {
	x := v.x
	var sum T
	for _, j := range sources {
		sum = v.f.Plus(sum, x[j])
	}
	v.y[k] = sum
}

// finish moves the expander output to the front of the buffer.
func (v *vector[T, F]) finish() {
	copy(v.x, v.y)
}
