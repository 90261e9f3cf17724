package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexgladd/flappy-dragon/internal/config"
	"github.com/alexgladd/flappy-dragon/internal/core"
	"github.com/alexgladd/flappy-dragon/internal/game"
	"github.com/alexgladd/flappy-dragon/internal/platform/tui"
	"github.com/alexgladd/flappy-dragon/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start Flappy Dragon in your terminal.

Controls:
  Space      - Flap
  P          - Play / play again
  Q          - Quit (from the menu or death screen)
  Ctrl+C     - Quit immediately

Difficulty options:
  easy   - Wider gaps, weaker gravity
  normal - Reference tuning
  hard   - Narrower gaps, stronger gravity

Examples:
  flappy-dragon play
  flappy-dragon play --difficulty hard
  flappy-dragon play --config ./my-flappy.yaml
  flappy-dragon play --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	config.ApplyPreset(&cfg, config.DifficultyPreset(flagDifficulty))

	// The world is a fixed grid; warn when the terminal can't show all of it
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		if w < cfg.World.ScreenWidth || h < cfg.World.ScreenHeight {
			fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, game world is %dx%d; display will be clipped\n",
				w, h, cfg.World.ScreenWidth, cfg.World.ScreenHeight)
		}
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rtc := core.RuntimeConfig{
		TickRate: flagFPS,
		Seed:     seed,
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	g := game.New(cfg, rtc.Seed)
	runErr := tui.Run(g, store, cfg, rtc)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
