// Package game implements the Flappy Dragon game logic: a gravity-bound
// glider that must pass through procedurally generated gap obstacles.
// The package is pure (no terminal or Bubble Tea dependencies); the
// platform layer drives it one Frame at a time.
package game

import (
	"fmt"
	"math/rand"

	"github.com/alexgladd/flappy-dragon/internal/config"
	"github.com/alexgladd/flappy-dragon/internal/core"
)

// Mode is the current game mode.
type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
	ModeEnd
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "Menu"
	case ModePlaying:
		return "Playing"
	case ModeEnd:
		return "End"
	default:
		return "Unknown"
	}
}

// Frame is the per-frame contract between the host loop and the game:
// a drawing surface, the measured elapsed time for the frame, and the
// single most-recent key action observed this frame (ActionNone if no
// key was pressed). The game sets Quitting to request loop termination.
type Frame struct {
	Screen   *core.Screen
	DeltaMS  float64
	Key      core.Action
	Quitting bool
}

// Game owns the player, the single live obstacle, the score, and the
// mode machine. One Game is created per session and mutated only by
// Tick on the host loop goroutine.
type Game struct {
	cfg      config.Config
	rng      *rand.Rand
	player   Player
	obstacle Obstacle
	score    int
	mode     Mode
}

// New creates a game in Menu mode. The seed drives obstacle gap
// placement; equal seeds and inputs replay identically.
func New(cfg config.Config, seed int64) *Game {
	g := &Game{
		cfg:  cfg,
		rng:  rand.New(rand.NewSource(seed)),
		mode: ModeMenu,
	}
	g.player = g.newPlayer()
	g.obstacle = NewObstacle(cfg.World.ScreenWidth, 0, cfg.Obstacles, g.rng)
	return g
}

// newPlayer creates a player at the start position: the player column,
// vertically centered.
func (g *Game) newPlayer() Player {
	return NewPlayer(
		float64(g.cfg.World.PlayerOffset),
		float64(g.cfg.World.ScreenHeight)/2.0,
		g.cfg.Physics.ForwardSpeed,
	)
}

// Tick advances the game by one frame, dispatching on the current mode.
func (g *Game) Tick(f *Frame) {
	switch g.mode {
	case ModeMenu:
		g.menu(f)
	case ModePlaying:
		g.play(f)
	case ModeEnd:
		g.dead(f)
	}
}

// play runs one Playing frame: integrate physics with the measured
// variable delta, consume a pending flap, render, score a passed
// obstacle, then check end conditions.
func (g *Game) play(f *Frame) {
	f.Screen.ClearBg(core.ColorNavy)

	deltaS := f.DeltaMS / 1000.0
	g.player.Update(deltaS, g.cfg.Physics.Gravity)

	if f.Key == core.ActionFlap {
		g.player.Flap(g.cfg.Physics.FlapImpulse)
	}

	g.player.Render(f.Screen, g.cfg.World.PlayerOffset)
	g.obstacle.Render(f.Screen, g.player.WorldX(), g.cfg.World.PlayerOffset)

	f.Screen.DrawText(0, 0, "Press SPACE to flap.")
	f.Screen.DrawText(0, 1, fmt.Sprintf("Score %d", g.score))

	if g.player.WorldX() > g.obstacle.X+g.cfg.World.PlayerOffset {
		g.score++
		g.obstacle = NewObstacle(
			g.player.WorldX()+g.cfg.World.ScreenWidth-g.cfg.World.PlayerOffset,
			g.score,
			g.cfg.Obstacles,
			g.rng,
		)
	}

	if g.player.ScreenY() > g.cfg.World.ScreenHeight || g.obstacle.Hit(&g.player) {
		g.mode = ModeEnd
	}
}

// menu renders the main menu and handles start/quit.
func (g *Game) menu(f *Frame) {
	f.Screen.Clear()
	f.Screen.DrawTextCentered(5, "Welcome to Flappy Dragon")
	f.Screen.DrawTextCentered(8, "(P) Play game")
	f.Screen.DrawTextCentered(9, "(Q) Quit game")

	switch f.Key {
	case core.ActionStart:
		g.Restart()
	case core.ActionQuit:
		f.Quitting = true
	}
}

// dead renders the death screen and handles replay/quit.
func (g *Game) dead(f *Frame) {
	f.Screen.Clear()
	f.Screen.DrawTextCentered(5, "You are dead!")
	f.Screen.DrawTextCentered(6, fmt.Sprintf("You earned %d points", g.score))
	f.Screen.DrawTextCentered(8, "(P) Play again")
	f.Screen.DrawTextCentered(9, "(Q) Quit game")

	switch f.Key {
	case core.ActionStart:
		g.Restart()
	case core.ActionQuit:
		f.Quitting = true
	}
}

// Restart reinitializes the player, obstacle, and score, and enters
// Playing mode. Valid from any mode.
func (g *Game) Restart() {
	g.player = g.newPlayer()
	g.obstacle = NewObstacle(g.cfg.World.ScreenWidth, 0, g.cfg.Obstacles, g.rng)
	g.score = 0
	g.mode = ModePlaying
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Mode returns the current game mode.
func (g *Game) Mode() Mode {
	return g.mode
}
