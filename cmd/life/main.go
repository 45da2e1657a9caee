// life is Conway's Game of Life for the terminal.
//
// Usage:
//
//	life play              - Edit a field and watch it evolve
//	life serve             - Start SSH server for remote sessions
//	life history           - Show recorded runs
//	life config            - Print the effective configuration
//
// Global flags:
//
//	--config <path>  - Use a specific config file
//	--db <path>      - Set history database path (default: from config)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/config"
)

var (
	// Global flags
	flagConfig string
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "life",
	Short: "Conway's Game of Life in your terminal",
	Long: `Conway's Game of Life on a bounded grid.

Mark cells with the mouse or the keyboard, press Start and watch the
generations unfold. Cells beyond the edges of the field are always dead.

Available commands:
  play     - Start a local session
  serve    - Start SSH server for remote sessions
  history  - Show recorded runs
  config   - Print the effective configuration

Examples:
  life play
  life play --config ./big-field.yaml
  life serve --ssh :2222
  life history --limit 5`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to history database (overrides config)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the configuration or exits.
func loadConfig() config.LifeConfig {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// historyPath returns the database path, or empty if history is disabled.
func historyPath(cfg config.LifeConfig) string {
	if flagDBPath != "" {
		return flagDBPath
	}
	if !cfg.History.Enabled {
		return ""
	}
	return cfg.History.DBPath
}
