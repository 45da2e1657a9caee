package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/life"
	"github.com/vovakirdan/tui-life/internal/storage"
)

// helpRows is the number of terminal rows below the screen buffer that
// hold the key help line.
const helpRows = 1

// Model is the Bubble Tea model for a simulator session.
type Model struct {
	game     *life.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	logger   *log.Logger
	keys     KeyMap
	help     help.Model
	quitting bool
}

// NewModel creates a new Bubble Tea model driving the given game.
func NewModel(game *life.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.FrameRate <= 0 {
		cfg.FrameRate = core.DefaultConfig().FrameRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpRows, 1)),
		config: cfg,
		logger: logger,
		keys:   DefaultKeyMap(),
		help:   h,
	}
}

// NewGame creates a game sized for a terminal of screenW x screenH, with
// finished runs recorded in store. A nil store disables history.
func NewGame(cfg config.LifeConfig, screenW, screenH int, store *storage.Store, logger *log.Logger) (*life.Game, error) {
	field, err := cfg.FieldFor(screenW, screenH-helpRows)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	machine := life.NewMachine(field, cfg.PlaybackSettings(),
		life.WithRunEndHook(recordRun(store, logger)))
	return life.NewGame(machine, cfg.LayoutSettings()), nil
}

// recordRun returns a run-end hook that saves runs to the store.
// Saving is best-effort: a failure is logged and the session continues.
func recordRun(store *storage.Store, logger *log.Logger) func(life.RunSummary) {
	return func(run life.RunSummary) {
		logger.Info("run ended",
			"reason", run.EndReason,
			"generations", run.Generations,
			"peak", run.PeakPopulation,
		)
		if store == nil {
			return
		}
		if _, err := store.SaveRun(run); err != nil {
			logger.Warn("could not save run", "error", err)
		}
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("Conway's Game of Life"),
		tickCmd(m.config.FrameRate),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if ev, ok := PointerEvent(msg); ok {
			m.game.HandleEvent(ev)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if m.game.Update(time.Time(msg)) {
			m.logger.Debug("generation", "n", m.game.Machine().Generation(),
				"population", m.game.Machine().Population())
		}
		return m, tickCmd(m.config.FrameRate)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.game.Render(m.screen)
		if path, err := saveScreenshot(m.screen, time.Now()); err != nil {
			m.logger.Warn("could not save screenshot", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionNone {
		return m, nil
	}
	m.logger.Debug("key", "action", action)

	if m.game.HandleAction(action) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events. The field keeps its size;
// only the screen buffer follows the terminal.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-helpRows, 1))
	m.help.Width = msg.Width
	return m, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if w, h := m.game.MinScreen(); m.screen.Width() < w || m.screen.Height() < h {
		m.screen.Clear()
		m.screen.DrawTextCentered(m.screen.Height()/2,
			fmt.Sprintf("Terminal too small: need %dx%d", w, h+helpRows), core.ColorYellow)
		return RenderScreen(m.screen)
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Game returns the game the model drives.
func (m Model) Game() *life.Game {
	return m.game
}

// saveScreenshot writes the screen as plain text to ~/.life/screenshots.
func saveScreenshot(screen *core.Screen, now time.Time) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return writeScreenshot(filepath.Join(home, ".life", "screenshots"), screen, now)
}

// writeScreenshot writes the screen to a timestamped file in dir.
func writeScreenshot(dir string, screen *core.Screen, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create screenshot directory: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("life_%s.txt", now.Format("20060102_150405")))
	if err := os.WriteFile(path, []byte(screen.String()+"\n"), 0o600); err != nil {
		return "", fmt.Errorf("write screenshot: %w", err)
	}
	return path, nil
}

// Run starts the Bubble Tea program for a local session.
// A run still in progress when the program exits is recorded as quit.
func Run(game *life.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	game.Machine().Finish(life.EndQuit)
	return err
}
