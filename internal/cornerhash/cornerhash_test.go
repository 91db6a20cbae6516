package cornerhash

import (
	"testing"

	"github.com/andrewbrown/cornertable/internal/cube"
)

func TestSolvedHashesToZero(t *testing.T) {
	s := cube.Solved()
	if h := Hash(&s); h != 0 {
		t.Errorf("Hash(solved) = %d, want 0", h)
	}
}

func TestHashRangeOverRandomWalk(t *testing.T) {
	turns := []int{0, 7, 12, 3, 9, 15, 1, 10, 4, 17, 6, 13}
	cur := cube.Solved()
	for _, turn := range turns {
		var next cube.State
		cube.ApplyTurn(&next, &cur, turn)
		cur = next

		h := Hash(&cur)
		if h < 0 || h >= Size {
			t.Fatalf("Hash returned %d, outside [0, %d)", h, Size)
		}
	}
}

func TestHashIsDeterministic(t *testing.T) {
	cur := cube.Solved()
	for _, turn := range []int{3, 9, 15} {
		var next cube.State
		cube.ApplyTurn(&next, &cur, turn)
		cur = next
	}
	a := Hash(&cur)
	b := Hash(&cur)
	if a != b {
		t.Errorf("Hash is not deterministic: %d != %d", a, b)
	}
}

func TestHashInjectiveOverSampledScrambles(t *testing.T) {
	// A small, fixed set of short scrambles from solved, each distinct,
	// should yield distinct hashes: sampled injectivity per spec's
	// testable property (full injectivity is checked indirectly by the
	// generator's fill-count assertion).
	scrambles := [][]int{
		{},
		{0},
		{3},
		{6},
		{9},
		{12},
		{15},
		{0, 6},
		{0, 12},
		{6, 12},
		{0, 6, 12},
		{1, 7, 13},
		{2, 8, 14},
		{0, 3, 6, 9, 12, 15},
	}

	seen := make(map[int][]int)
	for _, turns := range scrambles {
		s := cube.ApplySequence(cube.Solved(), turns)
		h := Hash(&s)
		if prior, ok := seen[h]; ok {
			t.Errorf("scrambles %v and %v collide at hash %d", prior, turns, h)
		}
		seen[h] = turns
	}
}

func TestTwoOppositeQuarterTurnsReturnToSolvedHash(t *testing.T) {
	s := cube.Solved()
	var afterU cube.State
	cube.ApplyTurn(&afterU, &s, int(cube.U)*3)
	var afterUUPrime cube.State
	cube.ApplyTurn(&afterUUPrime, &afterU, int(cube.U)*3+2)

	if h := Hash(&afterUUPrime); h != 0 {
		t.Errorf("Hash(U U') = %d, want 0", h)
	}
}
