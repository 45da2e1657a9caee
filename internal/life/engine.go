package life

// mooreOffsets are the eight neighbor offsets of a cell.
var mooreOffsets = [8]Cell{
	{X: 0, Y: 1},
	{X: 0, Y: -1},
	{X: -1, Y: 0},
	{X: 1, Y: 0},
	{X: 1, Y: 1},
	{X: -1, Y: 1},
	{X: 1, Y: -1},
	{X: -1, Y: -1},
}

// Neighbors counts the alive cells in the Moore neighborhood of (x, y).
// Positions outside the field contribute nothing.
func Neighbors(live LiveSet, x, y int) int {
	n := 0
	for _, d := range mooreOffsets {
		if live.Contains(x+d.X, y+d.Y) {
			n++
		}
	}
	return n
}

// Step computes the next generation (B3/S23).
//
// Every position of the field is evaluated against the current generation
// only; the result is a new set and live is left untouched.
func Step(live LiveSet) LiveSet {
	field := live.Field()
	next := NewLiveSet(field)

	for y := 0; y < field.H; y++ {
		for x := 0; x < field.W; x++ {
			n := Neighbors(live, x, y)
			alive := live.Contains(x, y)
			if (alive && (n == 2 || n == 3)) || (!alive && n == 3) {
				next.cells[Cell{X: x, Y: y}] = struct{}{}
			}
		}
	}

	return next
}
