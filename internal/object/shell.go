package object

import (
	"math"

	"tankbox/internal/geometry"
)

// Shell hitbox half-extents, oriented along the travel direction.
const (
	ShellHalfLength = 0.8
	ShellHalfWidth  = 0.3
)

// ShellSpeed is the base speed of shells on top of the shooter's speed.
const ShellSpeed = 55.0

// ShellLifetime is how long shells last before disappearing.
const ShellLifetime = 2.5

// Shell is a projectile fired by the tank.
type Shell struct {
	Pos       geometry.Vector2
	Angle     float64 // Travel direction in radians
	Speed     float64
	Lifetime  float64 // Seconds remaining before removal
	destroyed bool
}

// NewShell creates a shell at pos traveling in direction angle. The shell
// inherits the shooter's speed along the barrel plus its own muzzle speed.
func NewShell(pos geometry.Vector2, angle, shooterSpeed float64) *Shell {
	return &Shell{
		Pos:      pos,
		Angle:    angle,
		Speed:    shooterSpeed + ShellSpeed,
		Lifetime: ShellLifetime,
	}
}

// Hitbox returns the shell as a small oriented rectangle along its travel
// direction.
func (s *Shell) Hitbox() geometry.OrientedRectangle {
	return geometry.NewOrientedRectangle(
		s.Pos,
		geometry.Vector2{X: ShellHalfLength, Y: ShellHalfWidth},
		geometry.Rotation(s.Angle),
	)
}

// MarkDestroyed marks the shell for removal.
func (s *Shell) MarkDestroyed() {
	s.destroyed = true
	s.Lifetime = 0
}

// IsDestroyed returns true if the shell is marked for destruction.
func (s *Shell) IsDestroyed() bool {
	return s.destroyed || s.Lifetime <= 0
}

// Update moves the shell and checks lifetime and arena bounds.
func (s *Shell) Update(ctx UpdateContext) (bool, error) {
	dt := ctx.Delta.Seconds()

	s.Lifetime -= dt
	if s.IsDestroyed() {
		return true, nil
	}

	dir := geometry.Vector2{X: math.Cos(s.Angle), Y: math.Sin(s.Angle)}
	s.Pos = s.Pos.Add(dir.Scale(s.Speed * dt))

	// Shells vanish once fully outside the arena.
	if !ctx.Arena.Bounds().Intersects(s.Hitbox().BoundingBox()) {
		return true, nil
	}

	return false, nil
}

// Draw renders the shell as a small filled quad.
func (s *Shell) Draw(ctx DrawContext) error {
	hitbox := s.Hitbox()
	if !ctx.Visible(hitbox.BoundingBox()) {
		return nil
	}
	ctx.Canvas.DrawQuad(ctx.QuadToScreen(hitbox.Points()), true)
	return nil
}
