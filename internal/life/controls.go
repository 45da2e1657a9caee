package life

import "github.com/vovakirdan/tui-life/internal/core"

// Button is a named control region on the screen.
type Button struct {
	Label   string
	Command CommandKind
	Rect    core.Rect
}

// Controls knows where the grid and the four buttons are on screen and
// turns pointer events into commands.
type Controls struct {
	layout  Layout
	field   Field
	grid    core.Rect
	buttons []Button
}

// buttonWidth returns the screen width of a "[ Label ]" button.
func buttonWidth(label string) int {
	return len(label) + 4
}

// NewControls lays out the buttons below the grid: Slower and Reset on the
// left, Start and Faster on the right. When the grid is too narrow for both
// groups, Start and Faster move to a second row.
func NewControls(layout Layout, field Field) Controls {
	grid := layout.GridRect(field)
	y := grid.Bottom() + 1 // below the bottom border

	slower := core.NewRect(grid.X, y, buttonWidth("Slower"), 1)
	reset := core.NewRect(slower.Right()+1, y, buttonWidth("Reset"), 1)

	faster := core.NewRect(grid.Right()-buttonWidth("Faster"), y, buttonWidth("Faster"), 1)
	start := core.NewRect(faster.X-1-buttonWidth("Start"), y, buttonWidth("Start"), 1)

	// Keep at least one blank column between the two groups.
	if start.X <= reset.Right() {
		start = core.NewRect(grid.X, y+1, buttonWidth("Start"), 1)
		faster = core.NewRect(start.Right()+1, y+1, buttonWidth("Faster"), 1)
	}

	return Controls{
		layout: layout,
		field:  field,
		grid:   grid,
		buttons: []Button{
			{Label: "Slower", Command: CmdSlowDown, Rect: slower},
			{Label: "Reset", Command: CmdReset, Rect: reset},
			{Label: "Start", Command: CmdStart, Rect: start},
			{Label: "Faster", Command: CmdSpeedUp, Rect: faster},
		},
	}
}

// Buttons returns the button regions.
func (c Controls) Buttons() []Button {
	return c.buttons
}

// Grid returns the screen region of the field.
func (c Controls) Grid() core.Rect {
	return c.grid
}

// Bottom returns the first screen row below the lowest button.
func (c Controls) Bottom() int {
	bottom := c.grid.Bottom() + 1
	for _, b := range c.buttons {
		bottom = max(bottom, b.Rect.Bottom())
	}
	return bottom
}

// Translate maps a pointer event to a command.
//
// Pointer-down on a button yields its command. Pointer-down inside the grid
// yields ToggleCell; pointer-held does too, but only while Editing.
// Anything else (margins, borders, quit) yields false.
func (c Controls) Translate(ev core.Event, mode Mode) (Command, bool) {
	switch ev.Kind {
	case core.EventPointerDown:
		for _, b := range c.buttons {
			if b.Rect.Contains(ev.X, ev.Y) {
				return Command{Kind: b.Command}, true
			}
		}
		return c.cellCommand(ev.X, ev.Y)

	case core.EventPointerHeld:
		if mode != ModeEditing {
			return Command{}, false
		}
		return c.cellCommand(ev.X, ev.Y)
	}

	return Command{}, false
}

// cellCommand returns ToggleCell for a screen position inside the field.
func (c Controls) cellCommand(px, py int) (Command, bool) {
	if !c.grid.Contains(px, py) {
		return Command{}, false
	}
	x, y, ok := c.layout.PixelToCell(px, py)
	if !ok || !c.field.InBounds(x, y) {
		return Command{}, false
	}
	return ToggleCell(x, y), true
}
