package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-life/internal/platform/tui"
	"github.com/vovakirdan/tui-life/internal/storage"
)

var (
	flagLimit       int
	flagInteractive bool
	flagClear       bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded runs",
	Long: `Display recently recorded runs and aggregate statistics.

A run lasts from Start until Reset or the end of the session.

Examples:
  life history
  life history --limit 50
  life history --interactive
  life history --clear`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	historyCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse runs in a table")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs")
}

func runHistory(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	path := historyPath(cfg)
	if path == "" {
		fmt.Fprintln(os.Stderr, "Error: history is disabled in the config; pass --db to read a database")
		os.Exit(1)
	}

	store, err := storage.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	fail := func(format string, args ...any) {
		store.Close()
		fmt.Fprintf(os.Stderr, format, args...)
		os.Exit(1)
	}

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			fail("Error: %v\n", err)
		}
		fmt.Println("History cleared.")
		return
	}

	runs, err := store.RecentRuns(flagLimit)
	if err != nil {
		fail("Error retrieving runs: %v\n", err)
	}
	stats, err := store.Stats()
	if err != nil {
		fail("Error retrieving stats: %v\n", err)
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunHistory(runs, stats, width, height); err != nil {
			fail("Error: %v\n", err)
		}
		return
	}

	fmt.Println("Run History")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'life play' and press Start to record the first run!")
		return
	}

	fmt.Printf("  %-5s  %-19s  %9s  %6s  %6s  %6s  %6s  %s\n",
		"#", "Started", "Duration", "Gens", "Start", "Peak", "Final", "End")
	fmt.Printf("  %-5s  %-19s  %9s  %6s  %6s  %6s  %6s  %s\n",
		"-", "-------", "--------", "----", "-----", "----", "-----", "---")

	for _, r := range runs {
		fmt.Printf("  %-5d  %-19s  %9s  %6d  %6d  %6d  %6d  %s\n",
			r.ID,
			r.StartedAt.Local().Format("2006-01-02 15:04:05"),
			r.Duration().Round(100*time.Millisecond),
			r.Generations,
			r.InitialPopulation,
			r.PeakPopulation,
			r.FinalPopulation,
			r.EndReason,
		)
	}

	fmt.Println()
	fmt.Println(tui.StatsLine(stats))
}
