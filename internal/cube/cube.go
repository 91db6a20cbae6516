// Package cube models the 20 movable cubies of a 3x3x3 Rubik's cube as a
// fixed-length array of (identity, orientation) pairs, and exposes the
// face-turn operator the corner heuristic generator drives its search with.
package cube

// CUBELEN is the number of tracked cubie positions.
const CUBELEN = 20

// Face identifies one of the six faces of the cube. Opposite faces pair up
// as (U,D), (F,B), (R,L); Prune uses both the pairing and the numeric
// ordering within a pair to forbid a redundant move order.
type Face int

const (
	U Face = iota
	D
	F
	B
	R
	L
)

func (f Face) String() string {
	switch f {
	case U:
		return "U"
	case D:
		return "D"
	case F:
		return "F"
	case B:
		return "B"
	case R:
		return "R"
	case L:
		return "L"
	default:
		return "?"
	}
}

func opposite(f Face) Face {
	switch f {
	case U:
		return D
	case D:
		return U
	case F:
		return B
	case B:
		return F
	case R:
		return L
	case L:
		return R
	default:
		return f
	}
}

// Cubie is the state of a single tracked position: which cubie currently
// occupies it, and that cubie's orientation.
type Cubie struct {
	ID          byte
	Orientation byte
}

// State is the full cube, indexed by position 0..19.
type State [CUBELEN]Cubie

// CornerPositions lists the 8 positions that hold corner cubies, in the
// fixed order used to build the corner rank for the heuristic hash.
var CornerPositions = [8]int{0, 2, 5, 7, 12, 14, 17, 19}

// cornerRank maps a corner position to its rank 0..7 among CornerPositions,
// or -1 if the position is not a corner. Derived from CornerPositions so the
// two can never drift out of sync.
var cornerRank [CUBELEN]int8

func init() {
	for i := range cornerRank {
		cornerRank[i] = -1
	}
	for rank, pos := range CornerPositions {
		cornerRank[pos] = int8(rank)
	}
}

// CornerRank returns the rank 0..7 of corner position p, or -1 if p does
// not hold a corner cubie.
func CornerRank(p int) int {
	return int(cornerRank[p])
}

// Solved returns the reference state: every position holds the cubie of
// the same number, at orientation 0.
func Solved() State {
	var s State
	for p := 0; p < CUBELEN; p++ {
		s[p] = Cubie{ID: byte(p), Orientation: 0}
	}
	return s
}

// CUBIE returns the (identity, orientation) pair currently occupying
// position p.
func CUBIE(s *State, p int) Cubie {
	return s[p]
}

// IsSolved reports whether s is the reference solved state.
func (s *State) IsSolved() bool {
	for p := 0; p < CUBELEN; p++ {
		if s[p].ID != byte(p) || s[p].Orientation != 0 {
			return false
		}
	}
	return true
}
