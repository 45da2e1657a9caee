package life

import (
	"reflect"
	"testing"
)

func TestLiveSetToggleOn(t *testing.T) {
	s := NewLiveSet(Field{W: 4, H: 3})

	if !s.IsEmpty() {
		t.Fatal("new set should be empty")
	}

	if !s.ToggleOn(1, 2) {
		t.Error("ToggleOn(1, 2) should change the set")
	}
	if s.ToggleOn(1, 2) {
		t.Error("ToggleOn(1, 2) twice should not change the set")
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", s.Len())
	}
	if !s.Contains(1, 2) {
		t.Error("Contains(1, 2) should be true")
	}
}

func TestLiveSetRejectsOutOfBounds(t *testing.T) {
	s := NewLiveSet(Field{W: 4, H: 3})

	for _, c := range []Cell{{-1, 0}, {0, -1}, {4, 0}, {0, 3}, {100, 100}} {
		if s.ToggleOn(c.X, c.Y) {
			t.Errorf("ToggleOn(%d, %d) should be ignored", c.X, c.Y)
		}
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d after out-of-bounds toggles, expected 0", s.Len())
	}
}

func TestLiveSetClear(t *testing.T) {
	s := NewLiveSet(Field{W: 4, H: 4})
	s.ToggleOn(0, 0)
	s.ToggleOn(3, 3)

	s.Clear()

	if !s.IsEmpty() {
		t.Errorf("Clear() left %d cells", s.Len())
	}
}

func TestLiveSetCellsOrdered(t *testing.T) {
	s := NewLiveSet(Field{W: 5, H: 5})
	s.ToggleOn(3, 1)
	s.ToggleOn(0, 2)
	s.ToggleOn(1, 1)
	s.ToggleOn(4, 0)

	expected := []Cell{{4, 0}, {1, 1}, {3, 1}, {0, 2}}
	if got := s.Cells(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Cells() = %v, expected %v", got, expected)
	}
}

func TestLiveSetCloneIsIndependent(t *testing.T) {
	s := NewLiveSet(Field{W: 5, H: 5})
	s.ToggleOn(1, 1)

	c := s.Clone()
	c.ToggleOn(2, 2)

	if s.Contains(2, 2) {
		t.Error("modifying a clone should not affect the original")
	}
	if !c.Contains(1, 1) {
		t.Error("clone should keep the original cells")
	}
	if s.Equal(c) {
		t.Error("Equal() should be false after the clone diverged")
	}
	if !s.Equal(s.Clone()) {
		t.Error("Equal() should be true for a fresh clone")
	}
}
