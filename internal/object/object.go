// Package object contains the game entities of the tank arena. Every solid
// entity exposes its collision shape as an oriented rectangle; the loop
// package runs the overlap tests.
package object

import (
	"io"
	"time"

	"tankbox/internal/draw"
	"tankbox/internal/geometry"
	"tankbox/internal/input"
)

// Spawner allows objects to spawn new objects during update.
type Spawner interface {
	Spawn(obj Object)
}

// Input is an alias for the input package's Input type.
type Input = input.Input

// Arena is the bounded world the game takes place in. Unlike a wrapping
// world, positions are clamped at the edges; the outer walls are solid.
type Arena struct {
	Width, Height float64
}

// Bounds returns the arena as an axis-aligned rectangle at the origin.
func (a Arena) Bounds() geometry.Rectangle {
	return geometry.Rectangle{Width: a.Width, Height: a.Height}
}

// Clamp returns p moved inside the arena, keeping at least margin distance
// from every edge.
func (a Arena) Clamp(p geometry.Vector2, margin float64) geometry.Vector2 {
	if p.X < margin {
		p.X = margin
	}
	if p.X > a.Width-margin {
		p.X = a.Width - margin
	}
	if p.Y < margin {
		p.Y = margin
	}
	if p.Y > a.Height-margin {
		p.Y = a.Height - margin
	}
	return p
}

// Camera represents the viewport center in world space.
type Camera struct {
	Center geometry.Vector2
}

// View holds the logical viewport dimensions (what the camera sees).
type View struct {
	Width, Height float64
}

// WorldToScreen converts a world position to viewport coordinates for the
// given camera. The camera center maps to the middle of the view.
func WorldToScreen(world geometry.Vector2, cam Camera, view View) geometry.Vector2 {
	return geometry.Vector2{
		X: world.X - cam.Center.X + view.Width/2,
		Y: world.Y - cam.Center.Y + view.Height/2,
	}
}

// ClampCamera keeps the camera's view inside the arena. An arena smaller
// than the view is centered instead.
func ClampCamera(cam Camera, view View, arena Arena) Camera {
	cam.Center.X = clampAxis(cam.Center.X, view.Width, arena.Width)
	cam.Center.Y = clampAxis(cam.Center.Y, view.Height, arena.Height)
	return cam
}

func clampAxis(center, viewSize, arenaSize float64) float64 {
	if viewSize >= arenaSize {
		return arenaSize / 2
	}
	half := viewSize / 2
	if center < half {
		return half
	}
	if center > arenaSize-half {
		return arenaSize - half
	}
	return center
}

// UpdateContext provides all the information an object needs during update.
type UpdateContext struct {
	Delta   time.Duration
	Input   Input
	Arena   Arena
	Spawner Spawner
	Objects []Object
}

// DrawContext provides drawing resources for objects.
type DrawContext struct {
	Canvas *draw.Canvas // High-resolution canvas (2x vertical)
	Writer io.Writer    // Direct terminal output (for text overlays)
	Camera Camera       // Camera position for viewport offset
	View   View         // Viewport dimensions
}

// Visible reports whether a world-space bounding box is inside the view,
// with some margin for partially visible shapes.
func (ctx DrawContext) Visible(bounds geometry.Rectangle) bool {
	screen := WorldToScreen(geometry.Vector2{X: bounds.X, Y: bounds.Y}, ctx.Camera, ctx.View)
	const margin = 4.0
	return screen.X+bounds.Width >= -margin && screen.X <= ctx.View.Width+margin &&
		screen.Y+bounds.Height >= -margin && screen.Y <= ctx.View.Height+margin
}

// QuadToScreen maps the four corners of an oriented rectangle to viewport
// coordinates for drawing.
func (ctx DrawContext) QuadToScreen(points [4]geometry.Vector2) [4]geometry.Vector2 {
	for i, p := range points {
		points[i] = WorldToScreen(p, ctx.Camera, ctx.View)
	}
	return points
}

// Object is a drawable and updatable game entity.
type Object interface {
	// Update advances the object state. Returns true if the object should
	// be removed from the world.
	Update(ctx UpdateContext) (remove bool, err error)

	// Draw renders the object using ctx.Canvas (shapes) or ctx.Writer (text).
	Draw(ctx DrawContext) error
}

// Collidable is implemented by objects that take part in collision testing.
type Collidable interface {
	Object

	// Hitbox returns the object's collision shape in world space.
	Hitbox() geometry.OrientedRectangle
}
