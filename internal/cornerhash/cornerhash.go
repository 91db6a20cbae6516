// Package cornerhash implements the perfect hash from a cube's corner
// configuration to an integer in [0, 88_179_840), the index space the
// corner heuristic table is built over.
//
// The encoding is a mixed-radix numeral system: 7 permutation digits in
// a Lehmer-like code (bases 8,7,6,5,4,3,2 from most to least significant,
// the 8th corner determined by elimination) followed by 7 base-3
// orientation digits (the 8th determined by the sum-mod-3 invariant).
package cornerhash

import (
	"fmt"

	"github.com/andrewbrown/cornertable/internal/cube"
	"github.com/andrewbrown/cornertable/internal/nibble"
)

// Size is the number of distinct indices the hash can produce: 8! * 3^7.
const Size = nibble.Entries

// orientationBase is 3^7, the size of the orientation half of the index
// space.
const orientationBase = 2187

// Hash maps a cube state to its corner index in [0, Size).
func Hash(s *cube.State) int {
	// slot starts as the identity assignment and is decremented in place
	// as each corner's Lehmer digit is read off, exactly mirroring the
	// "corner_slot_value" array of the algorithm this is drawn from. It
	// is local to each call so no state leaks between hashes.
	var slot [8]int
	for i := range slot {
		slot[i] = i
	}

	var digits [7]int
	var orientations [7]byte
	for k := 0; k < 7; k++ {
		pos := cube.CornerPositions[k]
		c := cube.CUBIE(s, pos)
		rank := cube.CornerRank(int(c.ID))
		if rank < 0 {
			panic(fmt.Sprintf("cornerhash: cubie id %d at position %d is not a corner", c.ID, pos))
		}
		digits[k] = slot[rank]
		for j := rank + 1; j < 8; j++ {
			slot[j]--
		}
		orientations[k] = c.Orientation
	}

	index := 0
	base := [7]int{5040, 720, 120, 24, 6, 2, 1} // 7!,6!,5!,4!,3!,2!,1!
	for k := 0; k < 7; k++ {
		index += digits[k] * base[k] * orientationBase
	}

	oBase := [7]int{729, 243, 81, 27, 9, 3, 1} // 3^6 .. 3^0
	for k := 0; k < 7; k++ {
		index += int(orientations[k]) * oBase[k]
	}

	if index < 0 || index >= Size {
		panic(fmt.Sprintf("cornerhash: computed index %d out of range [0, %d)", index, Size))
	}
	return index
}
