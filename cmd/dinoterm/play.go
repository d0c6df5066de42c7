package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dinoterm/internal/config"
	"github.com/vovakirdan/dinoterm/internal/platform/tui"
	"github.com/vovakirdan/dinoterm/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start the game in the current terminal.

Controls:
  Space/Up   - Jump / start / restart
  Down       - Duck (auto-releases after a moment)
  C          - Continue after game over, keeping score and speed
  B          - Toggle border
  Esc/Ctrl+C - Quit

Examples:
  dinoterm play
  dinoterm play --fps 30
  dinoterm play --seed 42 --config ./my-config.yaml`,
	Run: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size early; the model tracks resizes from there.
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "dinoterm"})

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(cfg, store, logger, tui.Options{
		FPS:  flagFPS,
		Seed: flagSeed,
		Cols: width,
		Rows: height,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
