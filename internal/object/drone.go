package object

import (
	"math"
	"math/rand"

	"tankbox/internal/geometry"
	"tankbox/internal/physics"
)

// Drone hitbox half-extents, oriented along the travel direction.
const (
	DroneHalfLength = 2.2
	DroneHalfWidth  = 1.4
)

// Drone is an enemy that chases the tank and kills it on contact.
type Drone struct {
	Pos   geometry.Vector2
	Vel   geometry.Vector2
	Angle float64 // Facing, follows the velocity direction

	MaxSpeed   float64
	Accel      float64
	AggroRange float64 // Chase the tank within this distance
	wanderDir  float64 // Drift heading while idle
	wanderTime float64 // Seconds until the next drift change
	destroyed  bool
}

// NewDrone creates a drone at the given position.
func NewDrone(pos geometry.Vector2) *Drone {
	return &Drone{
		Pos:        pos,
		Angle:      rand.Float64() * 2 * math.Pi,
		MaxSpeed:   14.0,
		Accel:      20.0,
		AggroRange: 45.0,
		wanderDir:  rand.Float64() * 2 * math.Pi,
	}
}

// Hitbox returns the drone's hull aligned to its facing.
func (d *Drone) Hitbox() geometry.OrientedRectangle {
	return geometry.NewOrientedRectangle(
		d.Pos,
		geometry.Vector2{X: DroneHalfLength, Y: DroneHalfWidth},
		geometry.Rotation(d.Angle),
	)
}

// MarkDestroyed marks the drone for removal.
func (d *Drone) MarkDestroyed() {
	d.destroyed = true
}

// IsDestroyed returns true if the drone is marked for destruction.
func (d *Drone) IsDestroyed() bool {
	return d.destroyed
}

// Deflect bounces the drone off an obstacle: the velocity reverses at half
// speed and the hull is nudged back the way it came.
func (d *Drone) Deflect() {
	d.Vel = d.Vel.Scale(-0.5)
	d.Pos = d.Pos.Add(d.Vel.Scale(0.1))
	d.wanderTime = 0 // Pick a new drift direction next update
}

// Update steers toward the tank when in range, drifts otherwise.
func (d *Drone) Update(ctx UpdateContext) (bool, error) {
	if d.destroyed {
		return true, nil
	}

	dt := ctx.Delta.Seconds()

	target, hasTarget := d.findTank(ctx.Objects)

	var desired geometry.Vector2
	if hasTarget && physics.WithinRange(d.Pos, target, d.AggroRange) {
		desired = target.Sub(d.Pos)
	} else {
		d.wanderTime -= dt
		if d.wanderTime <= 0 {
			d.wanderDir = rand.Float64() * 2 * math.Pi
			d.wanderTime = 1.5 + rand.Float64()*2
		}
		desired = geometry.Vector2{X: math.Cos(d.wanderDir), Y: math.Sin(d.wanderDir)}
	}

	length := desired.Length()
	if length > 0 {
		accel := desired.Scale(d.Accel * dt / length)
		d.Vel = d.Vel.Add(accel)
	}

	speed := d.Vel.Length()
	if speed > d.MaxSpeed {
		d.Vel = d.Vel.Scale(d.MaxSpeed / speed)
	}

	d.Pos = d.Pos.Add(d.Vel.Scale(dt))
	d.Pos = ctx.Arena.Clamp(d.Pos, DroneHalfLength)

	// Face the direction of travel.
	if speed > 0.5 {
		d.Angle = math.Atan2(d.Vel.Y, d.Vel.X)
	}

	return false, nil
}

// findTank locates the player tank among the world objects.
func (d *Drone) findTank(objects []Object) (geometry.Vector2, bool) {
	for _, obj := range objects {
		if tank, ok := obj.(*Tank); ok && !tank.IsDestroyed() {
			return tank.Pos, true
		}
	}
	return geometry.Vector2{}, false
}

// Draw renders the drone as a hollow quad.
func (d *Drone) Draw(ctx DrawContext) error {
	hitbox := d.Hitbox()
	if !ctx.Visible(hitbox.BoundingBox()) {
		return nil
	}
	ctx.Canvas.DrawQuad(ctx.QuadToScreen(hitbox.Points()), false)
	return nil
}
