package life

import "github.com/vovakirdan/tui-life/internal/core"

// Layout maps grid cells to screen positions: each cell is CellW×CellH
// characters followed by Gap blank characters, offset by the margins.
type Layout struct {
	CellW   int
	CellH   int
	Gap     int
	MarginX int
	MarginY int
}

// DefaultLayout returns a layout with two-column cells (roughly square in
// most terminal fonts), no gap, and room for a one-character border.
func DefaultLayout() Layout {
	return Layout{
		CellW:   2,
		CellH:   1,
		Gap:     0,
		MarginX: 1,
		MarginY: 1,
	}
}

// footerRows is the number of rows reserved below the grid: bottom border,
// two button rows, status, instructions and the error line.
const footerRows = 6

// pitchX returns the horizontal distance between cell origins.
func (l Layout) pitchX() int {
	return l.CellW + l.Gap
}

// pitchY returns the vertical distance between cell origins.
func (l Layout) pitchY() int {
	return l.CellH + l.Gap
}

// CellToPixel returns the screen position of the top-left corner of cell (x, y).
func (l Layout) CellToPixel(x, y int) (int, int) {
	return l.MarginX + l.pitchX()*x, l.MarginY + l.pitchY()*y
}

// PixelToCell returns the cell whose hit box contains the screen position.
// The hit box includes the gap after the cell. ok is false left of or
// above the grid; callers check the field bounds themselves.
func (l Layout) PixelToCell(px, py int) (x, y int, ok bool) {
	rx, ry := px-l.MarginX, py-l.MarginY
	if rx < 0 || ry < 0 {
		return 0, 0, false
	}
	return rx / l.pitchX(), ry / l.pitchY(), true
}

// GridRect returns the screen region covered by the field.
func (l Layout) GridRect(f Field) core.Rect {
	return core.NewRect(l.MarginX, l.MarginY, f.W*l.pitchX(), f.H*l.pitchY())
}

// FitField returns the largest field that fits a screen of the given size
// together with its border and footer. Never smaller than 1×1.
func (l Layout) FitField(screenW, screenH int) Field {
	w := (screenW - 2*l.MarginX) / l.pitchX()
	h := (screenH - l.MarginY - footerRows) / l.pitchY()
	return Field{W: max(1, w), H: max(1, h)}
}
