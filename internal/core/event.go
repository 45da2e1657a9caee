package core

// EventKind identifies a raw input event coming from the presentation layer.
type EventKind int

const (
	EventNone        EventKind = iota
	EventQuit                  // Window closed / session ended
	EventPointerDown           // Pointer button pressed at (X, Y)
	EventPointerHeld           // Pointer moved while the button is held
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventNone:
		return "None"
	case EventQuit:
		return "Quit"
	case EventPointerDown:
		return "PointerDown"
	case EventPointerHeld:
		return "PointerHeld"
	default:
		return "Unknown"
	}
}

// Event is a single discrete input event in screen coordinates.
type Event struct {
	Kind EventKind
	X, Y int
}

// PointerDown builds a pointer-down event at (x, y).
func PointerDown(x, y int) Event {
	return Event{Kind: EventPointerDown, X: x, Y: y}
}

// PointerHeld builds a pointer-held event at (x, y).
func PointerHeld(x, y int) Event {
	return Event{Kind: EventPointerHeld, X: x, Y: y}
}

// Action represents a semantic keyboard action, abstracted from physical
// key presses so the simulation never sees raw keys.
type Action int

const (
	ActionNone   Action = iota
	ActionUp            // Move the edit cursor up
	ActionDown          // Move the edit cursor down
	ActionLeft          // Move the edit cursor left
	ActionRight         // Move the edit cursor right
	ActionMark          // Mark the cell under the cursor alive
	ActionStart         // Start the simulation
	ActionReset         // Reset to an empty editing field
	ActionSlower        // Increase the generation delay
	ActionFaster        // Decrease the generation delay
	ActionQuit          // Exit the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionMark:
		return "Mark"
	case ActionStart:
		return "Start"
	case ActionReset:
		return "Reset"
	case ActionSlower:
		return "Slower"
	case ActionFaster:
		return "Faster"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
