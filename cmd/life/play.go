package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/platform/tui"
	"github.com/vovakirdan/tui-life/internal/storage"
)

var (
	flagLogFile string
	flagDebug   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a local session",
	Long: `Start a local session in the current terminal.

Click cells (or drag across them) to bring them alive, then press Start.
While the simulation runs, Slower and Faster change the delay between
generations. Reset clears the field.

Controls:
  Mouse          - Mark cells, press buttons
  Arrows/hjkl    - Move the cursor
  Space/Enter    - Mark the cursor cell
  S              - Start
  R              - Reset
  -  / +         - Slower / Faster
  Ctrl+S         - Save a screenshot to ~/.life/screenshots
  ?              - Toggle full help
  Q/Ctrl+C       - Quit

A field size of 0 in the config fits the field to the terminal.

Examples:
  life play
  life play --log-file life.log --debug
  life play --config ./configs/life.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	playCmd.Flags().BoolVar(&flagDebug, "debug", false, "Log at debug level")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// The alternate screen owns stdout, so logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	level := log.InfoLevel
	if flagDebug {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(logOut, log.Options{
		ReportTimestamp: true,
		Prefix:          "life",
		Level:           level,
	})

	var store *storage.Store
	if path := historyPath(cfg); path != "" {
		var err error
		store, err = storage.Open(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open history database: %v\n", err)
			// Continue without history
			store = nil
		}
	}

	game, err := tui.NewGame(cfg, width, height, store, logger)
	if err != nil {
		if store != nil {
			store.Close()
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("session started", "field", game.Machine().Field(), "terminal", fmt.Sprintf("%dx%d", width, height))

	runErr := tui.Run(game, core.RuntimeConfig{
		ScreenW:   width,
		ScreenH:   height,
		FrameRate: cfg.Playback.FrameRate,
	}, logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running session: %v\n", runErr)
		os.Exit(1)
	}
}
