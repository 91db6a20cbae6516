package dfsstack

import (
	"testing"

	"github.com/andrewbrown/cornertable/internal/cube"
)

func TestPushPopIsLIFO(t *testing.T) {
	s := New()
	s.Push(Frame{State: cube.Solved(), LastTurn: -1, Dist: 0})
	s.Push(Frame{State: cube.Solved(), LastTurn: 0, Dist: 1})
	s.Push(Frame{State: cube.Solved(), LastTurn: 1, Dist: 2})

	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}

	want := []int{2, 1, 0}
	for _, w := range want {
		f, ok := s.Pop()
		if !ok {
			t.Fatal("Pop() returned ok=false before stack was empty")
		}
		if f.Dist != w {
			t.Errorf("Pop().Dist = %d, want %d", f.Dist, w)
		}
	}

	if _, ok := s.Pop(); ok {
		t.Error("Pop() on empty stack should return ok=false")
	}
}

func TestResetEmptiesStack(t *testing.T) {
	s := New()
	s.Push(Frame{Dist: 1})
	s.Push(Frame{Dist: 2})
	s.Reset()
	if s.Len() != 0 {
		t.Errorf("Len() after Reset = %d, want 0", s.Len())
	}
	if _, ok := s.Pop(); ok {
		t.Error("Pop() after Reset should return ok=false")
	}
}
