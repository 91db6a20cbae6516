package visited

import "testing"

func TestUnmarkedIsNeverSeen(t *testing.T) {
	f := New()
	if f.SeenAtOrBefore(1234, 1) {
		t.Error("a fresh filter should report nothing as seen")
	}
}

func TestMarkThenSeenAtOrBefore(t *testing.T) {
	f := New()
	f.Mark(42, 3)
	if !f.SeenAtOrBefore(42, 3) {
		t.Error("marking at 3 should be seen at-or-before 3")
	}
	if !f.SeenAtOrBefore(42, 5) {
		t.Error("marking at 3 should be seen at-or-before a deeper value too")
	}
	if f.SeenAtOrBefore(42, 2) {
		t.Error("marking at 3 should not be seen at-or-before a shallower value")
	}
}

func TestResetClearsMarks(t *testing.T) {
	f := New()
	f.Mark(7, 1)
	f.Reset()
	if f.SeenAtOrBefore(7, 1) {
		t.Error("Reset should clear previously marked entries")
	}
}
