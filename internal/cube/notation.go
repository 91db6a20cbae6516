package cube

import (
	"fmt"
	"strings"
)

// ParseMove parses a single standard cube notation token (R, R', R2, U, ...)
// into a turn identifier. Examples: "U" -> 90 degree U turn, "D2" -> 180
// degree D turn, "F'" -> 270 degree (CCW) F turn.
func ParseMove(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("cube: empty move token")
	}

	var face Face
	switch s[0] {
	case 'U', 'u':
		face = U
	case 'D', 'd':
		face = D
	case 'F', 'f':
		face = F
	case 'B', 'b':
		face = B
	case 'R', 'r':
		face = R
	case 'L', 'l':
		face = L
	default:
		return 0, fmt.Errorf("cube: unknown face in move %q", s)
	}

	magnitude := 0 // 0 => 90, 1 => 180, 2 => 270
	switch suffix := s[1:]; suffix {
	case "":
		magnitude = 0
	case "2":
		magnitude = 1
	case "'", "`":
		magnitude = 2
	default:
		return 0, fmt.Errorf("cube: unknown modifier in move %q", s)
	}

	return int(face)*3 + magnitude, nil
}

// ParseSequence parses a space-separated sequence of notation tokens into
// turn identifiers.
func ParseSequence(s string) ([]int, error) {
	fields := strings.Fields(s)
	turns := make([]int, 0, len(fields))
	for _, f := range fields {
		t, err := ParseMove(f)
		if err != nil {
			return nil, err
		}
		turns = append(turns, t)
	}
	return turns, nil
}

// MoveName returns the standard notation for a turn identifier.
func MoveName(turn int) string {
	face := TurnFace(turn)
	switch turn % 3 {
	case 0:
		return face.String()
	case 1:
		return face.String() + "2"
	default:
		return face.String() + "'"
	}
}

// ApplySequence applies a sequence of turns to src and returns the result.
func ApplySequence(src State, turns []int) State {
	cur := src
	var next State
	for _, t := range turns {
		ApplyTurn(&next, &cur, t)
		cur = next
	}
	return cur
}
