// Package cornertable exposes the corner heuristic table as a single
// type: generate it from a reference cube, look up a distance in O(1),
// and persist it to or from a flat file. It is the seam between the
// algorithmic core (cornerhash, nibble, generator, visited, tablefile)
// and the CLI that drives it.
package cornertable

import (
	"fmt"
	"io"

	"github.com/andrewbrown/cornertable/internal/cornerhash"
	"github.com/andrewbrown/cornertable/internal/cube"
	"github.com/andrewbrown/cornertable/internal/generator"
	"github.com/andrewbrown/cornertable/internal/nibble"
	"github.com/andrewbrown/cornertable/internal/tablefile"
)

// Table is a generated (or loaded) corner heuristic table.
type Table struct {
	arr *nibble.Array
}

// New allocates an empty table. Lookup on an empty table always returns
// (0, false), since every entry of a freshly allocated nibble.Array reads
// as the "unset" sentinel.
func New() *Table {
	return &Table{arr: nibble.New()}
}

// Generate fills t so that every reachable corner configuration's true
// minimum distance from reference is recorded, using generator.Run. The
// table is reset to empty first, so Generate can be called more than
// once (e.g. from the CLI's generate command against a fresh Table).
func (t *Table) Generate(reference cube.State, opts ...generator.Option) (generator.Stats, error) {
	t.arr.Clear()
	g := generator.New(opts...)
	stats, err := g.Run(reference, t.arr)
	if err != nil {
		return stats, fmt.Errorf("cornertable: generate: %w", err)
	}
	return stats, nil
}

// Lookup returns the minimum distance from the table's reference state to
// s, and whether that entry has been filled. An unfilled entry (ok=false)
// means either the table hasn't finished generating, or s's corner
// configuration is unreachable from the reference (a programmer error in
// the caller, since every legal cube state is reachable from any other).
func (t *Table) Lookup(s *cube.State) (dist int, ok bool) {
	raw := t.arr.Get(cornerhash.Hash(s))
	if raw == 0 {
		return 0, false
	}
	return int(raw) - 1, true
}

// FillCount returns the number of filled entries in the table.
func (t *Table) FillCount() int {
	n := 0
	for i := 0; i < nibble.Entries; i++ {
		if t.arr.Get(i) != 0 {
			n++
		}
	}
	return n
}

// Histogram returns a count of entries per distance value 0..generator.MaxDepth.
func (t *Table) Histogram() [generator.MaxDepth + 1]int {
	var h [generator.MaxDepth + 1]int
	for i := 0; i < nibble.Entries; i++ {
		raw := t.arr.Get(i)
		if raw == 0 {
			continue
		}
		h[int(raw)-1]++
	}
	return h
}

// Write persists t's raw packed bytes to w.
func (t *Table) Write(w io.Writer) error {
	return tablefile.Write(w, t.arr)
}

// Read replaces t's contents with the raw packed bytes read from r.
func (t *Table) Read(r io.Reader) error {
	return tablefile.Read(r, t.arr)
}
