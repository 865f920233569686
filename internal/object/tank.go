package object

import (
	"math"

	"tankbox/internal/geometry"
)

// Tank hull half-extents: the hitbox is longer along the heading than wide.
const (
	TankHalfLength = 3.0
	TankHalfWidth  = 1.8
)

// Tank is the player-controlled vehicle.
type Tank struct {
	Pos   geometry.Vector2
	Angle float64 // Heading in radians (0 = pointing right)
	Speed float64 // Signed speed along the heading (negative = reversing)

	TurnSpeed    float64 // Radians per second
	Accel        float64 // Speed gain per second while throttling
	MaxSpeed     float64 // Forward speed cap (reverse is capped at half)
	Drag         float64 // Speed retained per second when coasting
	FireRate     float64 // Minimum seconds between shots
	fireCooldown float64
	prevPos      geometry.Vector2 // Position before the last move, for wall resolution
	destroyed    bool
}

// NewTank creates a tank at the given position, pointing up.
func NewTank(pos geometry.Vector2) *Tank {
	return &Tank{
		Pos:       pos,
		Angle:     -math.Pi / 2,
		TurnSpeed: 3.0,
		Accel:     30.0,
		MaxSpeed:  22.0,
		Drag:      0.2,
		FireRate:  0.35,
	}
}

// Hitbox returns the hull as an oriented rectangle aligned to the heading.
func (t *Tank) Hitbox() geometry.OrientedRectangle {
	return geometry.NewOrientedRectangle(
		t.Pos,
		geometry.Vector2{X: TankHalfLength, Y: TankHalfWidth},
		geometry.Rotation(t.Angle),
	)
}

// MarkDestroyed marks the tank as killed.
func (t *Tank) MarkDestroyed() {
	t.destroyed = true
}

// IsDestroyed returns true if the tank has been killed.
func (t *Tank) IsDestroyed() bool {
	return t.destroyed
}

// RevertMove undoes the last position change. The loop calls this when the
// tank's hull would end up inside a wall.
func (t *Tank) RevertMove() {
	t.Pos = t.prevPos
}

// Update handles turning, throttle physics and firing.
func (t *Tank) Update(ctx UpdateContext) (bool, error) {
	dt := ctx.Delta.Seconds()

	if ctx.Input.Left {
		t.Angle -= t.TurnSpeed * dt
	}
	if ctx.Input.Right {
		t.Angle += t.TurnSpeed * dt
	}

	// Normalize angle to [-π, π]
	for t.Angle > math.Pi {
		t.Angle -= 2 * math.Pi
	}
	for t.Angle < -math.Pi {
		t.Angle += 2 * math.Pi
	}

	throttling := false
	if ctx.Input.Forward {
		t.Speed += t.Accel * dt
		throttling = true

		// Exhaust puffs from the rear of the hull.
		rear := t.Pos.Sub(geometry.Vector2{
			X: math.Cos(t.Angle) * TankHalfLength,
			Y: math.Sin(t.Angle) * TankHalfLength,
		})
		SpawnExhaust(rear, t.Angle, ctx.Spawner)
	}
	if ctx.Input.Reverse {
		t.Speed -= t.Accel * dt
		throttling = true
	}
	if !throttling {
		t.Speed *= math.Pow(t.Drag, dt)
	}

	// Reverse gear is slower than forward.
	if t.Speed > t.MaxSpeed {
		t.Speed = t.MaxSpeed
	}
	if t.Speed < -t.MaxSpeed/2 {
		t.Speed = -t.MaxSpeed / 2
	}

	heading := geometry.Vector2{X: math.Cos(t.Angle), Y: math.Sin(t.Angle)}
	t.prevPos = t.Pos
	t.Pos = t.Pos.Add(heading.Scale(t.Speed * dt))
	t.Pos = ctx.Arena.Clamp(t.Pos, TankHalfLength)

	t.fireCooldown -= dt
	if ctx.Input.Fire && t.fireCooldown <= 0 && ctx.Spawner != nil {
		t.fireCooldown = t.FireRate

		// Spawn the shell just past the muzzle so it cannot hit the hull.
		muzzle := t.Pos.Add(heading.Scale(TankHalfLength + ShellHalfLength + 0.5))
		ctx.Spawner.Spawn(NewShell(muzzle, t.Angle, t.Speed))
	}

	return t.destroyed, nil
}

// Draw renders the hull as a filled quad with a turret line toward the muzzle.
func (t *Tank) Draw(ctx DrawContext) error {
	hitbox := t.Hitbox()
	if !ctx.Visible(hitbox.BoundingBox()) {
		return nil
	}

	ctx.Canvas.DrawQuad(ctx.QuadToScreen(hitbox.Points()), true)

	heading := geometry.Vector2{X: math.Cos(t.Angle), Y: math.Sin(t.Angle)}
	muzzle := t.Pos.Add(heading.Scale(TankHalfLength + 1.5))
	ctx.Canvas.DrawLine(
		WorldToScreen(t.Pos, ctx.Camera, ctx.View),
		WorldToScreen(muzzle, ctx.Camera, ctx.View),
	)

	return nil
}
