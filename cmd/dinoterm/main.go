// dinoterm is a pixel-rendered endless runner for the terminal, drawn with
// Unicode quadrant glyphs for sub-character resolution.
//
// Usage:
//
//	dinoterm play             - Play in the current terminal
//	dinoterm scores           - Show recorded high scores
//	dinoterm serve            - Serve the game over SSH
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.dinoterm/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dinoterm",
	Short: "dinoterm - a quadrant-pixel endless runner for your terminal",
	Long: `dinoterm renders an animated, physics-driven runner onto plain text,
packing 2x2 pixel blocks into single glyphs for sub-character resolution.

Controls:
  Space/Up   - Jump / start / restart
  Down       - Duck
  C          - Continue after game over (keeps score)
  Esc/Ctrl+C - Quit

Examples:
  dinoterm play
  dinoterm play --fps 30 --seed 42
  dinoterm scores
  dinoterm serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.dinoterm/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
