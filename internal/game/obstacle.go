package game

import (
	"math/rand"

	"github.com/alexgladd/flappy-dragon/internal/config"
	"github.com/alexgladd/flappy-dragon/internal/core"
)

// WallGlyph is the character drawn for obstacle walls.
const WallGlyph = '|'

// Obstacle is a pair of vertical wall segments with a gap between them.
// Exactly one obstacle is live at a time; once passed it is replaced,
// not mutated.
type Obstacle struct {
	X    int // World x position, fixed after creation
	GapY int // Gap center row
	Size int // Gap height in cells
}

// NewObstacle creates an obstacle at the given world x. The gap center
// is drawn uniformly from the configured range and the gap size shrinks
// with score down to the configured floor.
func NewObstacle(x, score int, cfg config.ObstaclesConfig, rng *rand.Rand) Obstacle {
	return Obstacle{
		X:    x,
		GapY: cfg.GapCenterMin + rng.Intn(cfg.GapCenterMax-cfg.GapCenterMin),
		Size: core.Max(cfg.MinGapSize, cfg.BaseGapSize-score),
	}
}

// Render draws the two wall segments. The screen x follows the player's
// world position so that the walls scroll toward the fixed player column.
// Half-size truncates on integer division.
func (o Obstacle) Render(dst *core.Screen, playerX, playerOffset int) {
	screenX := o.X - playerX + playerOffset
	halfSize := o.Size / 2

	// Top half, from the top of the screen down to the gap
	for y := 0; y < o.GapY-halfSize; y++ {
		dst.SetColored(screenX, y, WallGlyph, core.ColorRed)
	}

	// Bottom half, from the gap down to the bottom of the screen
	for y := o.GapY + halfSize; y < dst.Height(); y++ {
		dst.SetColored(screenX, y, WallGlyph, core.ColorRed)
	}
}

// Hit reports whether the player collides with a wall segment this
// frame. The test is exact on the x axis: only the single frame where
// the rounded world positions coincide can collide. A fast enough
// integration step can skip that frame entirely; that tunnel-through is
// the accepted behavior, not widened to an interval test.
func (o Obstacle) Hit(p *Player) bool {
	halfSize := o.Size / 2
	xMatch := p.WorldX() == o.X
	aboveGap := p.ScreenY() < o.GapY-halfSize
	belowGap := p.ScreenY() > o.GapY+halfSize

	return xMatch && (aboveGap || belowGap)
}
