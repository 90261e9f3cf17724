// flappy-dragon is a terminal arcade game: guide a gravity-bound dragon
// through gaps in oncoming walls for as long as you can.
//
// Usage:
//
//	flappy-dragon play           - Play the game
//	flappy-dragon scores         - Show high scores
//	flappy-dragon serve          - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set frame rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.flappy-dragon/scores.db)
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
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy-dragon",
	Short: "Flappy Dragon - a terminal arcade game",
	Long: `Flappy Dragon is a terminal arcade game. Press space to flap and
steer the dragon through the gap in each oncoming wall; every wall you
pass scores a point and shrinks the next gap.

Available commands:
  play     - Play the game in your terminal
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  flappy-dragon play
  flappy-dragon play --difficulty hard
  flappy-dragon scores
  flappy-dragon serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flappy-dragon/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
