package generator

import (
	"testing"

	"github.com/andrewbrown/cornertable/internal/cornerhash"
	"github.com/andrewbrown/cornertable/internal/cube"
	"github.com/andrewbrown/cornertable/internal/nibble"
)

// TestFullGeneration runs the generator to completion and checks the
// properties spec'd for the corner table: every entry filled, the solved
// state at distance 0, a single U turn at distance 1, no entry beyond
// MaxDepth, and a maximum observed distance of 11. This
// walks the full 88,179,840-entry space and is slow; skipped under
// -short.
func TestFullGeneration(t *testing.T) {
	if testing.Short() {
		t.Skip("full corner table generation is slow; skipped under -short")
	}

	table := nibble.New()
	g := New(WithProgressInterval(0))
	stats, err := g.Run(cube.Solved(), table)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if stats.FillCount != nibble.Entries {
		t.Fatalf("FillCount = %d, want %d", stats.FillCount, nibble.Entries)
	}
	if stats.MaxDepth > MaxDepth {
		t.Fatalf("MaxDepth observed %d exceeds the known diameter %d", stats.MaxDepth, MaxDepth)
	}

	lookup := func(s cube.State) int {
		return int(table.Get(cornerhash.Hash(&s))) - 1
	}

	if d := lookup(cube.Solved()); d != 0 {
		t.Errorf("solved state distance = %d, want 0", d)
	}

	solved := cube.Solved()
	var afterU cube.State
	cube.ApplyTurn(&afterU, &solved, int(cube.U)*3)
	if d := lookup(afterU); d != 1 {
		t.Errorf("single U-turn distance = %d, want 1", d)
	}

	var sawMax bool
	for i := 0; i < nibble.Entries; i++ {
		v := int(table.Get(i)) - 1
		if v < 0 {
			t.Fatalf("entry %d was never filled", i)
		}
		if v > MaxDepth {
			t.Fatalf("entry %d has distance %d, exceeds max depth %d", i, v, MaxDepth)
		}
		if v == MaxDepth {
			sawMax = true
		}
	}
	if !sawMax {
		t.Error("no entry reached the maximum depth of 11")
	}
}

// TestTriangleAndAdmissibility generates from solved, then checks the
// triangle bound and admissibility (|T[h(s)] - T[h(s')]| <= 1 for adjacent
// states) along one fixed six-turn path from solved, without re-walking
// the full space.
func TestTriangleAndAdmissibility(t *testing.T) {
	if testing.Short() {
		t.Skip("requires a full generation pass; skipped under -short")
	}

	table := nibble.New()
	g := New(WithProgressInterval(0))
	if _, err := g.Run(cube.Solved(), table); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	dist := func(s cube.State) int { return int(table.Get(cornerhash.Hash(&s))) - 1 }

	cur := cube.Solved()
	path := []int{int(cube.U) * 3, int(cube.R) * 3, int(cube.U)*3 + 2, int(cube.F)*3 + 1, int(cube.L) * 3, int(cube.D)*3 + 1}
	k := 0
	for _, turn := range path {
		var next cube.State
		cube.ApplyTurn(&next, &cur, turn)
		k++

		nextDist := dist(next)
		if nextDist > k {
			t.Errorf("triangle bound violated: distance %d after %d moves", nextDist, k)
		}

		if diff := nextDist - dist(cur); diff > 1 || diff < -1 {
			t.Errorf("admissibility violated between adjacent states: delta %d", diff)
		}
		cur = next
	}
}
