package loop

import (
	"math"

	"tankbox/internal/geometry"
	"tankbox/internal/object"
)

// wallThickness is the thickness of the arena border walls.
const wallThickness = 3.0

// levelWalls returns the wall layout: a solid border around the arena plus
// a handful of rotated interior obstacles. Duplicate definitions are
// collapsed by BuildWalls.
func levelWalls() []*object.Wall {
	defs := []object.WallDef{
		// Border
		{Rect: geometry.Rectangle{X: 0, Y: 0, Width: ArenaWidth, Height: wallThickness}},
		{Rect: geometry.Rectangle{X: 0, Y: ArenaHeight - wallThickness, Width: ArenaWidth, Height: wallThickness}},
		{Rect: geometry.Rectangle{X: 0, Y: 0, Width: wallThickness, Height: ArenaHeight}},
		{Rect: geometry.Rectangle{X: ArenaWidth - wallThickness, Y: 0, Width: wallThickness, Height: ArenaHeight}},

		// Interior obstacles
		{Rect: geometry.Rectangle{X: 50, Y: 35, Width: 34, Height: 5}, Angle: math.Pi / 6},
		{Rect: geometry.Rectangle{X: 150, Y: 30, Width: 40, Height: 5}, Angle: -math.Pi / 8},
		{Rect: geometry.Rectangle{X: 100, Y: 70, Width: 5, Height: 36}},
		{Rect: geometry.Rectangle{X: 40, Y: 110, Width: 30, Height: 5}, Angle: math.Pi / 4},
		{Rect: geometry.Rectangle{X: 160, Y: 105, Width: 44, Height: 5}, Angle: math.Pi / 12},
		{Rect: geometry.Rectangle{X: 195, Y: 60, Width: 5, Height: 30}, Angle: -math.Pi / 6},
	}
	return object.BuildWalls(defs)
}

// playerSpawn is where the tank starts and respawns.
func playerSpawn() geometry.Vector2 {
	return geometry.Vector2{X: ArenaWidth / 2, Y: ArenaHeight * 0.75}
}
