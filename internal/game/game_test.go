package game

import (
	"strings"
	"testing"

	"github.com/alexgladd/flappy-dragon/internal/config"
	"github.com/alexgladd/flappy-dragon/internal/core"
)

func testGame(seed int64) (*Game, *core.Screen) {
	cfg := config.Default()
	return New(cfg, seed), core.NewScreen(cfg.World.ScreenWidth, cfg.World.ScreenHeight)
}

func tick(g *Game, s *core.Screen, deltaMS float64, key core.Action) *Frame {
	f := &Frame{Screen: s, DeltaMS: deltaMS, Key: key}
	g.Tick(f)
	return f
}

func TestGameStartsInMenu(t *testing.T) {
	g, _ := testGame(1)

	if g.Mode() != ModeMenu {
		t.Errorf("Mode() = %v, expected Menu", g.Mode())
	}
	if g.Score() != 0 {
		t.Errorf("Score() = %d, expected 0", g.Score())
	}
}

func TestMenuStartEntersPlaying(t *testing.T) {
	g, s := testGame(1)

	tick(g, s, 16, core.ActionStart)

	if g.Mode() != ModePlaying {
		t.Errorf("Mode() = %v after start, expected Playing", g.Mode())
	}
	if g.Score() != 0 {
		t.Errorf("Score() = %d after start, expected 0", g.Score())
	}
}

func TestMenuQuitRequestsExit(t *testing.T) {
	g, s := testGame(1)

	f := tick(g, s, 16, core.ActionQuit)

	if !f.Quitting {
		t.Error("Quit in menu should set Frame.Quitting")
	}
	if g.Mode() != ModeMenu {
		t.Errorf("Mode() = %v, quit should not change mode", g.Mode())
	}
}

func TestMenuIgnoresFlap(t *testing.T) {
	g, s := testGame(1)

	f := tick(g, s, 16, core.ActionFlap)

	if g.Mode() != ModeMenu || f.Quitting {
		t.Error("Flap in menu should do nothing")
	}
}

func TestMenuRender(t *testing.T) {
	g, s := testGame(1)

	tick(g, s, 16, core.ActionNone)

	if !strings.Contains(s.Row(5), "Welcome to Flappy Dragon") {
		t.Errorf("Menu should show title, row 5 = %q", s.Row(5))
	}
	if !strings.Contains(s.Row(8), "(P) Play game") {
		t.Errorf("Menu should show play option, row 8 = %q", s.Row(8))
	}
	if !strings.Contains(s.Row(9), "(Q) Quit game") {
		t.Errorf("Menu should show quit option, row 9 = %q", s.Row(9))
	}
}

func TestPlayingRendersHUD(t *testing.T) {
	g, s := testGame(1)
	g.Restart()

	tick(g, s, 16, core.ActionNone)

	if !strings.Contains(s.Row(0), "Press SPACE to flap.") {
		t.Errorf("HUD row 0 = %q", s.Row(0))
	}
	if !strings.Contains(s.Row(1), "Score 0") {
		t.Errorf("HUD row 1 = %q", s.Row(1))
	}
	if s.Background() != core.ColorNavy {
		t.Errorf("Playing background = %v, expected navy", s.Background())
	}
}

func TestPlayingFlapSetsImpulse(t *testing.T) {
	g, s := testGame(1)
	g.Restart()
	g.player.DY = 5.0

	// Zero delta isolates the input handling from integration
	tick(g, s, 0, core.ActionFlap)

	if g.player.DY != -15.0 {
		t.Errorf("DY = %v after flap, expected -15.0", g.player.DY)
	}
}

func TestPassingObstacleScoresOnce(t *testing.T) {
	g, s := testGame(1)
	g.Restart()

	// Place the player just past the obstacle at x=80 (offset 5)
	g.player.X = 86
	g.player.Y = float64(g.obstacle.GapY) // Stay clear of walls

	tick(g, s, 0, core.ActionNone)

	if g.Score() != 1 {
		t.Fatalf("Score() = %d after passing, expected 1", g.Score())
	}
	// Replacement spawns one screen ahead of the player
	wantX := 86 + 80 - 5
	if g.obstacle.X != wantX {
		t.Errorf("New obstacle X = %d, expected %d", g.obstacle.X, wantX)
	}

	// The same pass must never score twice
	tick(g, s, 0, core.ActionNone)
	if g.Score() != 1 {
		t.Errorf("Score() = %d after second tick, expected still 1", g.Score())
	}
}

func TestGapShrinksWithScore(t *testing.T) {
	g, s := testGame(1)
	g.Restart()

	if g.obstacle.Size != 20 {
		t.Fatalf("Initial gap size = %d, expected 20", g.obstacle.Size)
	}

	g.player.X = 86
	g.player.Y = float64(g.obstacle.GapY)
	tick(g, s, 0, core.ActionNone)

	if g.obstacle.Size != 19 {
		t.Errorf("Gap size after one pass = %d, expected 19", g.obstacle.Size)
	}
}

func TestFallingOffBottomEndsGame(t *testing.T) {
	g, s := testGame(1)
	g.Restart()
	g.player.Y = 51 // Below the 50-row world

	tick(g, s, 0, core.ActionNone)

	if g.Mode() != ModeEnd {
		t.Errorf("Mode() = %v after falling out, expected End", g.Mode())
	}
}

func TestWallCollisionEndsGame(t *testing.T) {
	g, s := testGame(1)
	g.Restart()
	g.obstacle = Obstacle{X: 5, GapY: 20, Size: 6}
	g.player.X = 5
	g.player.Y = 10 // Above the gap

	tick(g, s, 0, core.ActionNone)

	if g.Mode() != ModeEnd {
		t.Errorf("Mode() = %v after wall hit, expected End", g.Mode())
	}
}

func TestDeadScreenShowsScore(t *testing.T) {
	g, s := testGame(1)
	g.Restart()
	g.score = 7
	g.mode = ModeEnd

	tick(g, s, 16, core.ActionNone)

	if !strings.Contains(s.Row(5), "You are dead!") {
		t.Errorf("Dead screen row 5 = %q", s.Row(5))
	}
	if !strings.Contains(s.Row(6), "You earned 7 points") {
		t.Errorf("Dead screen row 6 = %q", s.Row(6))
	}
}

func TestRestartFromEnd(t *testing.T) {
	g, s := testGame(1)
	g.Restart()
	g.score = 12
	g.mode = ModeEnd

	tick(g, s, 16, core.ActionStart)

	if g.Mode() != ModePlaying {
		t.Errorf("Mode() = %v after replay, expected Playing", g.Mode())
	}
	if g.Score() != 0 {
		t.Errorf("Score() = %d after replay, expected 0", g.Score())
	}
	if g.obstacle.X != 80 {
		t.Errorf("Obstacle X = %d after replay, expected 80", g.obstacle.X)
	}
	if g.obstacle.Size != 20 {
		t.Errorf("Obstacle size = %d after replay, expected 20", g.obstacle.Size)
	}
}

func TestEndQuitRequestsExit(t *testing.T) {
	g, s := testGame(1)
	g.Restart()
	g.mode = ModeEnd

	f := tick(g, s, 16, core.ActionQuit)

	if !f.Quitting {
		t.Error("Quit on dead screen should set Frame.Quitting")
	}
}

func TestGameDeterminism(t *testing.T) {
	// Same seed and same inputs must replay identically
	run := func() (*Game, int) {
		g, s := testGame(12345)
		g.Restart()

		ticks := 0
		for i := 0; i < 400 && g.Mode() == ModePlaying; i++ {
			key := core.ActionNone
			if i%12 == 0 {
				key = core.ActionFlap
			}
			tick(g, s, 16.0, key)
			ticks++
		}
		return g, ticks
	}

	g1, t1 := run()
	g2, t2 := run()

	if g1.Score() != g2.Score() {
		t.Errorf("Determinism failed: scores differ, %d vs %d", g1.Score(), g2.Score())
	}
	if t1 != t2 {
		t.Errorf("Determinism failed: tick counts differ, %d vs %d", t1, t2)
	}
	if g1.obstacle != g2.obstacle {
		t.Errorf("Determinism failed: obstacles differ, %+v vs %+v", g1.obstacle, g2.obstacle)
	}
	if g1.Mode() != g2.Mode() {
		t.Errorf("Determinism failed: modes differ, %v vs %v", g1.Mode(), g2.Mode())
	}
}
