package life

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-life/internal/core"
)

// On-screen text.
const (
	instructionText = "Click cells to bring them alive, then hit Start and watch Conway's Game of Life unfold!"
	emptyStartText  = "You have not created any alive squares"
)

// Game ties a Machine to its screen layout. It is what the platform layer
// drives: raw events and keyboard actions go in, a rendered screen comes out.
type Game struct {
	machine  *Machine
	layout   Layout
	controls Controls
	cursor   Cell
}

// NewGame creates a game for the machine using the given layout.
func NewGame(machine *Machine, layout Layout) *Game {
	return &Game{
		machine:  machine,
		layout:   layout,
		controls: NewControls(layout, machine.Field()),
	}
}

// Machine returns the underlying state machine.
func (g *Game) Machine() *Machine {
	return g.machine
}

// Controls returns the button and grid regions.
func (g *Game) Controls() Controls {
	return g.controls
}

// Cursor returns the keyboard edit cursor position.
func (g *Game) Cursor() Cell {
	return g.cursor
}

// HandleEvent applies a raw input event. Returns true if the session
// should end.
func (g *Game) HandleEvent(ev core.Event) bool {
	if ev.Kind == core.EventQuit {
		g.machine.Finish(EndQuit)
		return true
	}

	if cmd, ok := g.controls.Translate(ev, g.machine.Mode()); ok {
		if cmd.Kind == CmdToggleCell {
			g.cursor = Cell{X: cmd.X, Y: cmd.Y}
		}
		g.machine.Apply(cmd)
	}
	return false
}

// HandleAction applies a keyboard action. Returns true if the session
// should end.
func (g *Game) HandleAction(a core.Action) bool {
	field := g.machine.Field()

	switch a {
	case core.ActionQuit:
		return g.HandleEvent(core.Event{Kind: core.EventQuit})
	case core.ActionUp:
		g.cursor.Y = core.Clamp(g.cursor.Y-1, 0, field.H-1)
	case core.ActionDown:
		g.cursor.Y = core.Clamp(g.cursor.Y+1, 0, field.H-1)
	case core.ActionLeft:
		g.cursor.X = core.Clamp(g.cursor.X-1, 0, field.W-1)
	case core.ActionRight:
		g.cursor.X = core.Clamp(g.cursor.X+1, 0, field.W-1)
	case core.ActionMark:
		g.machine.Apply(ToggleCell(g.cursor.X, g.cursor.Y))
	case core.ActionStart:
		g.machine.Apply(Command{Kind: CmdStart})
	case core.ActionReset:
		g.machine.Apply(Command{Kind: CmdReset})
	case core.ActionSlower:
		g.machine.Apply(Command{Kind: CmdSlowDown})
	case core.ActionFaster:
		g.machine.Apply(Command{Kind: CmdSpeedUp})
	}
	return false
}

// MinScreen returns the smallest screen that shows the whole game.
func (g *Game) MinScreen() (w, h int) {
	grid := g.controls.Grid()
	return grid.Right() + 1, g.controls.Bottom() + 3
}

// Update advances the simulation if a generation is due.
func (g *Game) Update(now time.Time) bool {
	return g.machine.Advance(now)
}

// Snapshot returns the machine state.
func (g *Game) Snapshot() Snapshot {
	return g.machine.Snapshot()
}

// Render draws the field, the buttons and the status lines.
// The screen is cleared first.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	m := g.machine
	field := m.Field()
	grid := g.controls.Grid()
	editing := m.Mode() == ModeEditing

	dst.DrawBox(core.NewRect(grid.X-1, grid.Y-1, grid.W+2, grid.H+2), core.ColorGray)

	for y := 0; y < field.H; y++ {
		for x := 0; x < field.W; x++ {
			g.renderCell(dst, x, y, editing && g.cursor == Cell{X: x, Y: y})
		}
	}

	for _, b := range g.controls.Buttons() {
		color := core.ColorWhite
		if b.Command == CmdStart && !editing {
			color = core.ColorYellow
		}
		dst.DrawText(b.Rect.X, b.Rect.Y, "[ "+b.Label+" ]", color)
	}

	row := g.controls.Bottom()
	status := fmt.Sprintf("%s  delay %.1fs  generation %d  population %d",
		m.Mode(), m.Delay().Seconds(), m.Generation(), m.Population())
	dst.DrawText(grid.X, row, status, core.ColorGray)
	dst.DrawText(grid.X, row+1, instructionText, core.ColorWhite)
	if m.Error() {
		dst.DrawText(grid.X, row+2, emptyStartText, core.ColorRed)
	}
}

// renderCell draws one grid cell.
func (g *Game) renderCell(dst *core.Screen, x, y int, cursor bool) {
	px, py := g.layout.CellToPixel(x, y)
	alive := g.machine.Contains(x, y)

	for dy := 0; dy < g.layout.CellH; dy++ {
		for dx := 0; dx < g.layout.CellW; dx++ {
			c := core.Cell{Rune: ' '}
			switch {
			case alive && cursor:
				c = core.Cell{Rune: '█', Color: core.ColorYellow}
			case alive:
				c = core.Cell{Rune: '█', Color: core.ColorBrightBlue}
			case cursor:
				c = core.Cell{Rune: '░', Color: core.ColorYellow}
			case dx == 0 && dy == 0:
				c = core.Cell{Rune: '·', Color: core.ColorDarkGray}
			}
			dst.SetCell(px+dx, py+dy, c)
		}
	}
}
