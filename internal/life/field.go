// Package life implements Conway's Game of Life on a bounded field: the
// sparse live-cell set, the generation engine, and the interaction state
// machine that edits, starts, paces and resets a simulation.
//
// Nothing here knows about terminals. The platform layer feeds core.Events
// and core.Actions in and reads snapshots or a rendered core.Screen out.
package life

import "fmt"

// Field is the fixed, bounded extent of the grid. Edges do not wrap.
type Field struct {
	W, H int
}

// NewField returns a field of the given size.
// Both dimensions must be positive.
func NewField(w, h int) (Field, error) {
	if w <= 0 || h <= 0 {
		return Field{}, fmt.Errorf("life: invalid field size %dx%d", w, h)
	}
	return Field{W: w, H: h}, nil
}

// InBounds reports whether (x, y) lies inside [0,W)×[0,H).
func (f Field) InBounds(x, y int) bool {
	return x >= 0 && x < f.W && y >= 0 && y < f.H
}

// Area returns the number of positions in the field.
func (f Field) Area() int {
	return f.W * f.H
}

// String returns the field size as "WxH".
func (f Field) String() string {
	return fmt.Sprintf("%dx%d", f.W, f.H)
}
