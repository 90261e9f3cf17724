package game

import (
	"github.com/alexgladd/flappy-dragon/internal/core"
)

// PlayerGlyph is the character drawn for the dragon.
const PlayerGlyph = '@'

// Player is the dragon: a position and velocity in world coordinates.
// The world scrolls under the player; on screen it stays at a fixed
// column and only its vertical position changes.
type Player struct {
	X, Y   float64 // World position
	DX, DY float64 // Velocity, cells per second
}

// NewPlayer creates a player at the given world position with the
// constant forward speed and no vertical velocity.
func NewPlayer(x, y, forwardSpeed float64) Player {
	return Player{
		X:  x,
		Y:  y,
		DX: forwardSpeed,
		DY: 0,
	}
}

// WorldX returns the player's world x rounded to the nearest cell.
func (p *Player) WorldX() int {
	return core.Round(p.X)
}

// ScreenY returns the player's vertical screen cell, rounded to nearest.
func (p *Player) ScreenY() int {
	return core.Round(p.Y)
}

// Update advances the player by one explicit Euler step: gravity first,
// then position from the updated velocity. Y is clamped to 0 so the
// player cannot leave the top of the visible area.
func (p *Player) Update(dt, gravity float64) {
	p.DY += gravity * dt

	p.Y += p.DY * dt
	p.X += p.DX * dt

	if p.Y < 0 {
		p.Y = 0
	}
}

// Flap sets the vertical velocity to the flap impulse. The impulse
// replaces the current velocity rather than adding to it, so repeated
// flaps never accumulate thrust.
func (p *Player) Flap(impulse float64) {
	p.DY = impulse
}

// Render draws the player at the fixed screen column.
func (p *Player) Render(dst *core.Screen, playerOffset int) {
	dst.SetColored(playerOffset, p.ScreenY(), PlayerGlyph, core.ColorBrightYellow)
}
