package cube

// TurnCount is the number of distinct face-turn identifiers: 6 faces times
// 3 magnitudes (90 degrees, 180 degrees, 270 degrees).
const TurnCount = 18

// faceMove describes one face's quarter (90 degree, clockwise-by-convention)
// turn as two independent 4-cycles: the face's 4 corner positions cycle
// among themselves, and its 4 edge positions cycle among themselves (a
// corner cubie can never move into an edge slot or vice versa). Applying
// the cycle once is a 90 degree turn; twice is 180; three times is the
// 270/CCW turn. Deriving 180/270 by composition, rather than hand-writing
// separate cycles for them, guarantees turn^4 == identity by construction.
type faceMove struct {
	corners      [4]int
	edges        [4]int
	cornerDeltas [4]byte // mod 3, applied to the position a corner moves into
	edgeDeltas   [4]byte // mod 2, applied to the position an edge moves into
}

// U and D turns are pure permutations: no cubie changes orientation when
// only the top or bottom layer turns. F/B/R/L turns twist the 4 corners
// they carry (deltas sum to 0 mod 3 around the cycle) and flip the 4
// edges they carry (delta 1 mod 2, i.e. always flipped).
var faceMoves = [6]faceMove{
	U: {
		corners: [4]int{0, 2, 7, 5},
		edges:   [4]int{1, 4, 6, 3},
	},
	D: {
		corners: [4]int{12, 17, 19, 14},
		edges:   [4]int{13, 15, 18, 16},
	},
	F: {
		corners:      [4]int{5, 7, 14, 12},
		edges:        [4]int{6, 8, 13, 11},
		cornerDeltas: [4]byte{1, 2, 1, 2},
		edgeDeltas:   [4]byte{1, 1, 1, 1},
	},
	B: {
		corners:      [4]int{2, 0, 17, 19},
		edges:        [4]int{1, 10, 18, 9},
		cornerDeltas: [4]byte{1, 2, 1, 2},
		edgeDeltas:   [4]byte{1, 1, 1, 1},
	},
	R: {
		corners:      [4]int{7, 2, 19, 14},
		edges:        [4]int{4, 9, 16, 8},
		cornerDeltas: [4]byte{1, 2, 1, 2},
		edgeDeltas:   [4]byte{1, 1, 1, 1},
	},
	L: {
		corners:      [4]int{5, 0, 17, 12},
		edges:        [4]int{3, 10, 15, 11},
		cornerDeltas: [4]byte{1, 2, 1, 2},
		edgeDeltas:   [4]byte{1, 1, 1, 1},
	},
}

// applyQuarter applies one 90-degree turn of face f to src, writing the
// result into dst. dst must not alias src.
func applyQuarter(dst *State, src *State, f Face) {
	*dst = *src
	m := &faceMoves[f]
	for i := 0; i < 4; i++ {
		toC := m.corners[i]
		fromC := m.corners[(i+3)%4]
		c := src[fromC]
		c.Orientation = (c.Orientation + m.cornerDeltas[i]) % 3
		dst[toC] = c

		toE := m.edges[i]
		fromE := m.edges[(i+3)%4]
		e := src[fromE]
		e.Orientation = (e.Orientation + m.edgeDeltas[i]) % 2
		dst[toE] = e
	}
}

// ApplyTurn writes into dst the result of applying turn (0..TurnCount-1)
// to src. dst must not alias src.
func ApplyTurn(dst *State, src *State, turn int) {
	if turn < 0 || turn >= TurnCount {
		panic("cube: turn id out of range")
	}
	face := Face(turn / 3)
	quarters := turn%3 + 1 // 1 => 90, 2 => 180, 3 => 270

	cur := *src
	var next State
	for i := 0; i < quarters; i++ {
		applyQuarter(&next, &cur, face)
		cur = next
	}
	*dst = cur
}

// TurnFace returns the face a turn identifier rotates.
func TurnFace(turn int) Face {
	return Face(turn / 3)
}

// Prune reports whether move `next` is trivially redundant given that the
// previous move applied was `last` ("none" is represented by -1, which
// never prunes). Same-face repeats are always redundant. For a pair of
// opposite faces, only one of the two orderings is kept canonical: the
// higher-numbered face must come first, so the higher-numbered face
// following the lower-numbered one is pruned (e.g. D after U is pruned;
// U after D is kept).
func Prune(next, last int) bool {
	if last < 0 {
		return false
	}
	nf, lf := TurnFace(next), TurnFace(last)
	if nf == lf {
		return true
	}
	if opposite(nf) == lf && nf > lf {
		return true
	}
	return false
}
