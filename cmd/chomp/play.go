package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mazeworks/chomp/internal/core"
	"github.com/mazeworks/chomp/internal/games/chomp"
	"github.com/mazeworks/chomp/internal/platform/tui"
	"github.com/mazeworks/chomp/internal/registry"
	"github.com/mazeworks/chomp/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagClassicBug bool
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play the game",
	Long: `Start playing. With no argument the main game is launched.

Controls:
  Arrows/WASD/HJKL - Steer
  P                - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - More lives, longer fright time, slower ghosts
  normal - The classic tuning
  hard   - Fewer lives, shorter fright time, faster ghosts

Examples:
  chomp play
  chomp play --difficulty easy
  chomp play --classic-bug=false
  chomp play --config ./my-chomp.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().BoolVar(&flagClassicBug, "classic-bug", true, "Reproduce the original ambush-targeting artifact")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "chomp"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'chomp list' to see available games.")
		os.Exit(1)
	}

	// Terminal size for the runtime config
	width, height := 80, 36 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Configure the game before creation
	chomp.SetConfigPath(flagConfig)
	chomp.SetDifficultyPreset(flagDifficulty)
	if cmd.Flags().Changed("classic-bug") {
		chomp.SetClassicBug(flagClassicBug)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
