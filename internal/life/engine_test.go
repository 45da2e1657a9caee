package life

import (
	"math/rand"
	"testing"
)

// setOf builds a live set on the field from a list of cells.
func setOf(f Field, cells ...Cell) LiveSet {
	s := NewLiveSet(f)
	for _, c := range cells {
		s.ToggleOn(c.X, c.Y)
	}
	return s
}

func TestStepEmptyIsFixedPoint(t *testing.T) {
	empty := NewLiveSet(Field{W: 8, H: 8})
	if next := Step(empty); !next.IsEmpty() {
		t.Errorf("Step(empty) has %d cells, expected 0", next.Len())
	}
}

func TestStepBlockIsFixedPoint(t *testing.T) {
	f := Field{W: 6, H: 6}
	block := setOf(f, Cell{0, 0}, Cell{1, 0}, Cell{0, 1}, Cell{1, 1})

	next := Step(block)
	if !next.Equal(block) {
		t.Errorf("Step(block) = %v, expected %v", next.Cells(), block.Cells())
	}
}

func TestStepIsolatedCellDies(t *testing.T) {
	f := Field{W: 5, H: 5}
	for _, c := range []Cell{{0, 0}, {2, 2}, {4, 4}} {
		if next := Step(setOf(f, c)); !next.IsEmpty() {
			t.Errorf("Step({%v}) = %v, expected empty", c, next.Cells())
		}
	}
}

func TestStepBlinkerOscillates(t *testing.T) {
	f := Field{W: 5, H: 5}
	vertical := setOf(f, Cell{2, 1}, Cell{2, 2}, Cell{2, 3})
	horizontal := setOf(f, Cell{1, 2}, Cell{2, 2}, Cell{3, 2})

	first := Step(vertical)
	if !first.Equal(horizontal) {
		t.Fatalf("first step = %v, expected %v", first.Cells(), horizontal.Cells())
	}

	second := Step(first)
	if !second.Equal(vertical) {
		t.Fatalf("second step = %v, expected %v", second.Cells(), vertical.Cells())
	}
}

func TestStepEdgesDoNotWrap(t *testing.T) {
	// On a torus (1,2) would be born too; on a bounded field the row
	// above the top edge simply does not exist.
	f := Field{W: 3, H: 3}
	row := setOf(f, Cell{0, 0}, Cell{1, 0}, Cell{2, 0})

	expected := setOf(f, Cell{1, 0}, Cell{1, 1})
	if next := Step(row); !next.Equal(expected) {
		t.Errorf("Step(top row) = %v, expected %v", next.Cells(), expected.Cells())
	}
}

func TestStepRuleTable(t *testing.T) {
	f := Field{W: 5, H: 5}
	center := Cell{2, 2}

	for n := 0; n <= 8; n++ {
		for _, alive := range []bool{false, true} {
			s := NewLiveSet(f)
			for _, d := range mooreOffsets[:n] {
				s.ToggleOn(center.X+d.X, center.Y+d.Y)
			}
			if alive {
				s.ToggleOn(center.X, center.Y)
			}

			if got := Neighbors(s, center.X, center.Y); got != n {
				t.Fatalf("Neighbors() = %d, expected %d", got, n)
			}

			expected := n == 3 || (alive && n == 2)
			if got := Step(s).Contains(center.X, center.Y); got != expected {
				t.Errorf("alive=%v neighbors=%d: next alive = %v, expected %v", alive, n, got, expected)
			}
		}
	}
}

func TestStepLeavesInputUntouched(t *testing.T) {
	f := Field{W: 5, H: 5}
	glider := setOf(f, Cell{1, 0}, Cell{2, 1}, Cell{0, 2}, Cell{1, 2}, Cell{2, 2})
	before := glider.Clone()

	Step(glider)

	if !glider.Equal(before) {
		t.Errorf("Step mutated its input: %v, expected %v", glider.Cells(), before.Cells())
	}
}

func TestStepGliderTranslates(t *testing.T) {
	f := Field{W: 10, H: 10}
	glider := setOf(f, Cell{1, 0}, Cell{2, 1}, Cell{0, 2}, Cell{1, 2}, Cell{2, 2})

	s := glider
	for range 4 {
		s = Step(s)
	}

	// After four generations a glider moves one cell down and right.
	expected := setOf(f, Cell{2, 1}, Cell{3, 2}, Cell{1, 3}, Cell{2, 3}, Cell{3, 3})
	if !s.Equal(expected) {
		t.Errorf("glider after 4 steps = %v, expected %v", s.Cells(), expected.Cells())
	}
}

func TestStepRandomSoupMatchesRule(t *testing.T) {
	f := Field{W: 23, H: 17}
	rng := rand.New(rand.NewSource(42))

	s := NewLiveSet(f)
	for y := 0; y < f.H; y++ {
		for x := 0; x < f.W; x++ {
			if rng.Intn(3) == 0 {
				s.ToggleOn(x, y)
			}
		}
	}

	for gen := 0; gen < 30; gen++ {
		next := Step(s)

		for _, c := range next.Cells() {
			if !f.InBounds(c.X, c.Y) {
				t.Fatalf("generation %d: cell %v escaped the field", gen+1, c)
			}
		}

		for y := 0; y < f.H; y++ {
			for x := 0; x < f.W; x++ {
				n := Neighbors(s, x, y)
				expected := n == 3 || (s.Contains(x, y) && n == 2)
				if next.Contains(x, y) != expected {
					t.Fatalf("generation %d: cell (%d,%d) alive=%v, expected %v",
						gen+1, x, y, next.Contains(x, y), expected)
				}
			}
		}

		s = next
	}
}
