//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package exconv

// graphCacheLimit is the maximum number of graph entries that an
// encoder keeps in memory. Larger graphs are regenerated from the PRG
// on every pass.
const graphCacheLimit = 1 << 21

// rowFunc receives graph row r. The row slice is only valid during
// the call.
type rowFunc func(r int, row []uint64)

// graph holds generated rows in one flat table.
type graph struct {
	first  int
	values []uint64
	starts []int
}

// collect runs gen and stores the rows it produces. The rows are
// numbered from first.
func collect(first, rows, entries int, gen func(rowFunc) error) (
	*graph, error) {

	g := &graph{
		first:  first,
		values: make([]uint64, 0, entries),
		starts: make([]int, 1, rows+1),
	}
	err := gen(func(r int, row []uint64) {
		g.values = append(g.values, row...)
		g.starts = append(g.starts, len(g.values))
	})
	if err != nil {
		return nil, err
	}
	return g, nil
}

func (g *graph) walk(fn rowFunc) {
	for r := 0; r+1 < len(g.starts); r++ {
		fn(g.first+r, g.values[g.starts[r]:g.starts[r+1]])
	}
}
