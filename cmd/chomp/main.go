// chomp is a terminal rendition of the classic maze-chase arcade game.
//
// Usage:
//
//	chomp play               - Play the game
//	chomp menu               - Interactive launcher menu
//	chomp serve              - Start SSH server for remote play
//	chomp scores             - Show high scores
//	chomp list               - List registered games
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.chomp/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/mazeworks/chomp/internal/games/chomp"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "chomp",
	Short: "Chomp - the maze-chase arcade game in your terminal",
	Long: `Chomp is a terminal rendition of the classic maze-chase arcade game:
clear the pellet maze, dodge the four ghosts, grab the power pellets
and turn the tables.

Available commands:
  play     - Play directly
  menu     - Interactive launcher menu
  serve    - Start SSH server for remote play
  scores   - View high scores
  list     - Show registered games

Examples:
  chomp play
  chomp play --difficulty hard
  chomp play --classic-bug=false
  chomp serve --ssh :2222
  chomp scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.chomp/scores.db", "Path to scores database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
