package object

import "tankbox/internal/geometry"

// Wall is a static obstacle. The hitbox is fixed at construction; walls
// never move or rotate afterwards.
type Wall struct {
	hitbox geometry.OrientedRectangle
}

// WallDef describes a wall in level data: an axis-aligned footprint plus a
// rotation about the footprint's own center.
type WallDef struct {
	Rect  geometry.Rectangle
	Angle float64 // Radians
}

// NewWall builds a wall from its definition. The footprint is converted to
// an oriented rectangle and rotated about its own center: the rectangle is
// moved to the origin before the rotation transform, because Transform
// rotates the center about the origin as well.
func NewWall(def WallDef) *Wall {
	box := geometry.OrientRectangle(def.Rect)
	if def.Angle != 0 {
		center := box.Center
		box.Center = geometry.Vector2{}
		box = box.Transform(geometry.Rotation(def.Angle))
		box.Center = center
	}
	return &Wall{hitbox: box}
}

// BuildWalls constructs walls from level data, skipping duplicate
// definitions. Duplicates are detected by the hash of the resulting hitbox,
// so two definitions producing the same shape collapse to one wall.
func BuildWalls(defs []WallDef) []*Wall {
	seen := make(map[uint64]struct{}, len(defs))
	walls := make([]*Wall, 0, len(defs))
	for _, def := range defs {
		wall := NewWall(def)
		key := wall.hitbox.Hash()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		walls = append(walls, wall)
	}
	return walls
}

// Hitbox returns the wall's collision shape.
func (w *Wall) Hitbox() geometry.OrientedRectangle {
	return w.hitbox
}

// Update is a no-op; walls are static.
func (w *Wall) Update(_ UpdateContext) (bool, error) {
	return false, nil
}

// Draw renders the wall outline.
func (w *Wall) Draw(ctx DrawContext) error {
	if !ctx.Visible(w.hitbox.BoundingBox()) {
		return nil
	}
	ctx.Canvas.DrawQuad(ctx.QuadToScreen(w.hitbox.Points()), false)
	return nil
}
