package life

import "sort"

// Cell is a grid coordinate.
type Cell struct {
	X, Y int
}

// LiveSet is the sparse set of alive cells on a field.
// It never holds a coordinate outside its field.
type LiveSet struct {
	field Field
	cells map[Cell]struct{}
}

// NewLiveSet returns an empty set bound to the field.
func NewLiveSet(field Field) LiveSet {
	return LiveSet{
		field: field,
		cells: make(map[Cell]struct{}),
	}
}

// Field returns the field the set is bound to.
func (s LiveSet) Field() Field {
	return s.field
}

// ToggleOn marks (x, y) alive. Out-of-bounds coordinates are ignored.
// Returns true if the set changed.
func (s LiveSet) ToggleOn(x, y int) bool {
	if !s.field.InBounds(x, y) {
		return false
	}
	c := Cell{X: x, Y: y}
	if _, ok := s.cells[c]; ok {
		return false
	}
	s.cells[c] = struct{}{}
	return true
}

// Clear removes every cell.
func (s LiveSet) Clear() {
	clear(s.cells)
}

// Contains reports whether (x, y) is alive.
// Out-of-bounds coordinates are never alive.
func (s LiveSet) Contains(x, y int) bool {
	_, ok := s.cells[Cell{X: x, Y: y}]
	return ok
}

// IsEmpty reports whether no cell is alive.
func (s LiveSet) IsEmpty() bool {
	return len(s.cells) == 0
}

// Len returns the number of alive cells.
func (s LiveSet) Len() int {
	return len(s.cells)
}

// Cells returns the alive cells in row-major order.
func (s LiveSet) Cells() []Cell {
	out := make([]Cell, 0, len(s.cells))
	for c := range s.cells {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

// Clone returns an independent copy of the set.
func (s LiveSet) Clone() LiveSet {
	c := LiveSet{
		field: s.field,
		cells: make(map[Cell]struct{}, len(s.cells)),
	}
	for k := range s.cells {
		c.cells[k] = struct{}{}
	}
	return c
}

// Equal reports whether both sets hold exactly the same cells.
func (s LiveSet) Equal(other LiveSet) bool {
	if len(s.cells) != len(other.cells) {
		return false
	}
	for c := range s.cells {
		if _, ok := other.cells[c]; !ok {
			return false
		}
	}
	return true
}
