package life

import (
	"time"

	"github.com/vovakirdan/tui-life/internal/core"
)

// Mode is the interaction mode of a Machine.
type Mode int

const (
	ModeEditing Mode = iota // Cells can be marked; nothing advances
	ModeRunning             // Generations advance every delay
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeEditing:
		return "Editing"
	case ModeRunning:
		return "Running"
	default:
		return "Unknown"
	}
}

// Playback defines the generation delay and its bounds.
type Playback struct {
	Default time.Duration // Delay after creation and after Reset
	Min     time.Duration // Lower bound for SpeedUp
	Max     time.Duration // Upper bound for SlowDown
	Step    time.Duration // Amount added or removed per command
}

// DefaultPlayback returns 500ms default delay in 100ms steps within [100ms, 1s].
func DefaultPlayback() Playback {
	return Playback{
		Default: 500 * time.Millisecond,
		Min:     100 * time.Millisecond,
		Max:     time.Second,
		Step:    100 * time.Millisecond,
	}
}

// CommandKind identifies a user command.
type CommandKind int

const (
	CmdNone CommandKind = iota
	CmdReset
	CmdStart
	CmdSlowDown
	CmdSpeedUp
	CmdToggleCell
)

// String returns a human-readable name for the command kind.
func (k CommandKind) String() string {
	switch k {
	case CmdNone:
		return "None"
	case CmdReset:
		return "Reset"
	case CmdStart:
		return "Start"
	case CmdSlowDown:
		return "SlowDown"
	case CmdSpeedUp:
		return "SpeedUp"
	case CmdToggleCell:
		return "ToggleCell"
	default:
		return "Unknown"
	}
}

// Command is a user command. X and Y are only used by CmdToggleCell.
type Command struct {
	Kind CommandKind
	X, Y int
}

// ToggleCell builds a CmdToggleCell command for (x, y).
func ToggleCell(x, y int) Command {
	return Command{Kind: CmdToggleCell, X: x, Y: y}
}

// End reasons recorded in a RunSummary.
const (
	EndReset      = "reset"
	EndQuit       = "quit"
	EndDisconnect = "disconnect"
)

// RunSummary describes a finished run, from Start until it was reset or
// the session ended.
type RunSummary struct {
	StartedAt         time.Time
	EndedAt           time.Time
	Generations       int
	InitialPopulation int
	PeakPopulation    int
	FinalPopulation   int
	EndReason         string
}

// Option configures a Machine.
type Option func(*Machine)

// WithClock replaces time.Now as the machine's clock.
func WithClock(now func() time.Time) Option {
	return func(m *Machine) {
		m.clock = now
	}
}

// WithRunEndHook registers a function called with the summary of every
// run that ends.
func WithRunEndHook(fn func(RunSummary)) Option {
	return func(m *Machine) {
		m.onRunEnd = fn
	}
}

// Machine owns the simulation state and applies user commands to it.
// It is not safe for concurrent use; one control loop owns it.
type Machine struct {
	field    Field
	playback Playback
	clock    func() time.Time
	onRunEnd func(RunSummary)

	live     LiveSet
	mode     Mode
	delay    time.Duration
	errEmpty bool
	lastTick time.Time

	// Current run statistics
	startedAt  time.Time
	generation int
	initialPop int
	peakPop    int
}

// NewMachine creates a machine in Editing mode with an empty field.
func NewMachine(field Field, playback Playback, opts ...Option) *Machine {
	m := &Machine{
		field:    field,
		playback: playback,
		clock:    time.Now,
		live:     NewLiveSet(field),
		mode:     ModeEditing,
		delay:    playback.Default,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Reset clears the field and the error, restores the default delay and
// returns to Editing. A run in progress ends with reason "reset".
func (m *Machine) Reset() {
	m.endRun(EndReset)
	m.live.Clear()
	m.mode = ModeEditing
	m.errEmpty = false
	m.delay = m.playback.Default
	m.lastTick = time.Time{}
	m.generation = 0
}

// Start begins running. With no alive cells it raises the error flag and
// stays in Editing. Returns true if the machine is running afterwards.
func (m *Machine) Start() bool {
	if m.mode == ModeRunning {
		return true
	}
	if m.live.IsEmpty() {
		m.errEmpty = true
		return false
	}

	now := m.clock()
	m.errEmpty = false
	m.mode = ModeRunning
	m.lastTick = now
	m.startedAt = now
	m.generation = 0
	m.initialPop = m.live.Len()
	m.peakPop = m.initialPop
	return true
}

// SlowDown lengthens the delay by one step, up to the maximum.
func (m *Machine) SlowDown() {
	m.delay = core.Clamp(m.delay+m.playback.Step, m.playback.Min, m.playback.Max)
}

// SpeedUp shortens the delay by one step, down to the minimum.
func (m *Machine) SpeedUp() {
	m.delay = core.Clamp(m.delay-m.playback.Step, m.playback.Min, m.playback.Max)
}

// ToggleCell marks (x, y) alive while Editing.
// Returns true if the field changed.
func (m *Machine) ToggleCell(x, y int) bool {
	if m.mode != ModeEditing {
		return false
	}
	return m.live.ToggleOn(x, y)
}

// Apply dispatches a command.
func (m *Machine) Apply(cmd Command) {
	switch cmd.Kind {
	case CmdReset:
		m.Reset()
	case CmdStart:
		m.Start()
	case CmdSlowDown:
		m.SlowDown()
	case CmdSpeedUp:
		m.SpeedUp()
	case CmdToggleCell:
		m.ToggleCell(cmd.X, cmd.Y)
	}
}

// Advance performs at most one generation: while Running, once at least
// the current delay has elapsed since the previous tick.
// Returns true if a generation was computed.
func (m *Machine) Advance(now time.Time) bool {
	if m.mode != ModeRunning {
		return false
	}
	if now.Sub(m.lastTick) < m.delay {
		return false
	}

	m.lastTick = now
	m.live = Step(m.live)
	m.generation++
	m.peakPop = max(m.peakPop, m.live.Len())
	return true
}

// Finish ends a run in progress, e.g. when the session closes.
func (m *Machine) Finish(reason string) {
	m.endRun(reason)
}

// endRun reports the current run to the hook, if a run is in progress.
func (m *Machine) endRun(reason string) {
	if m.mode != ModeRunning {
		return
	}
	summary := RunSummary{
		StartedAt:         m.startedAt,
		EndedAt:           m.clock(),
		Generations:       m.generation,
		InitialPopulation: m.initialPop,
		PeakPopulation:    m.peakPop,
		FinalPopulation:   m.live.Len(),
		EndReason:         reason,
	}
	m.mode = ModeEditing
	if m.onRunEnd != nil {
		m.onRunEnd(summary)
	}
}

// Field returns the field the machine simulates.
func (m *Machine) Field() Field {
	return m.field
}

// Mode returns the current mode.
func (m *Machine) Mode() Mode {
	return m.mode
}

// Delay returns the current generation delay.
func (m *Machine) Delay() time.Duration {
	return m.delay
}

// Error reports whether the last Start was refused for an empty field.
func (m *Machine) Error() bool {
	return m.errEmpty
}

// Generation returns the number of generations computed in the current run.
func (m *Machine) Generation() int {
	return m.generation
}

// Population returns the number of alive cells.
func (m *Machine) Population() int {
	return m.live.Len()
}

// Contains reports whether (x, y) is alive.
func (m *Machine) Contains(x, y int) bool {
	return m.live.Contains(x, y)
}

// Live returns a copy of the current live-cell set.
func (m *Machine) Live() LiveSet {
	return m.live.Clone()
}

// Snapshot is a read-only view of the machine for rendering and tests.
type Snapshot struct {
	Mode       Mode
	Delay      time.Duration
	Error      bool
	Generation int
	Population int
	Cells      []Cell
}

// Snapshot returns the current state.
func (m *Machine) Snapshot() Snapshot {
	return Snapshot{
		Mode:       m.mode,
		Delay:      m.delay,
		Error:      m.errEmpty,
		Generation: m.generation,
		Population: m.live.Len(),
		Cells:      m.live.Cells(),
	}
}
