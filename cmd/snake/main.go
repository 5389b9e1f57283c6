// snake is a terminal snake game.
//
// Usage:
//
//	snake play      - Play in the current terminal (also the default)
//	snake scores    - Show score history
//	snake serve     - Start an SSH server for remote play
//
// Global flags:
//
//	--config <path>  - Custom game config YAML
//	--fps <rate>     - Override the simulation tick rate
//	--seed <value>   - RNG seed for reproducible food placement
//	--db <path>      - Scores database path (default: ~/.snake/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig string
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
	Use:   "snake",
	Short: "Snake - the classic grid game in your terminal",
	Long: `Snake is a terminal rendition of the classic grid game.

Steer the snake with the arrow keys (or WASD), eat food to grow and
score, and avoid the walls and your own tail.

Available commands:
  play     - Play in the current terminal
  scores   - View score history
  serve    - Start an SSH server for remote play

Examples:
  snake play
  snake play --fps 15 --seed 42
  snake scores --tui
  snake serve --ssh :2222`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (ticks per second, 0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
