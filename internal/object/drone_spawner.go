package object

import (
	"math/rand"

	"tankbox/internal/geometry"
	"tankbox/internal/physics"
)

// minSpawnDistance keeps new drones from appearing on top of the player.
const minSpawnDistance = 30.0

// DroneSpawner keeps the drone population at a target level.
type DroneSpawner struct {
	target int
}

// NewDroneSpawner creates a spawner with a target drone count.
func NewDroneSpawner(target int) *DroneSpawner {
	if target < 0 {
		target = 0
	}
	return &DroneSpawner{
		target: target,
	}
}

// Update spawns drones near the arena edges when the count drops.
func (s *DroneSpawner) Update(ctx UpdateContext) (bool, error) {
	if s.target == 0 {
		return false, nil
	}

	count := s.countActiveDrones(ctx)
	if count >= s.target {
		return false, nil
	}

	tankPos, hasTank := s.findTankPos(ctx.Objects)

	for count < s.target {
		pos := edgePosition(ctx.Arena)
		if hasTank && physics.Distance(pos, tankPos) < minSpawnDistance {
			// Try the opposite edge instead of spawning in the player's face.
			pos = geometry.Vector2{
				X: ctx.Arena.Width - pos.X,
				Y: ctx.Arena.Height - pos.Y,
			}
			if physics.Distance(pos, tankPos) < minSpawnDistance {
				return false, nil // Arena too crowded; retry next frame
			}
		}
		ctx.Spawner.Spawn(NewDrone(pos))
		count++
	}
	return false, nil
}

// Draw is a no-op; the spawner is not visible.
func (s *DroneSpawner) Draw(_ DrawContext) error {
	return nil
}

func (s *DroneSpawner) countActiveDrones(ctx UpdateContext) int {
	total := 0
	for _, obj := range ctx.Objects {
		if drone, ok := obj.(*Drone); ok && !drone.IsDestroyed() {
			total++
		}
	}
	return total
}

func (s *DroneSpawner) findTankPos(objects []Object) (geometry.Vector2, bool) {
	for _, obj := range objects {
		if tank, ok := obj.(*Tank); ok && !tank.IsDestroyed() {
			return tank.Pos, true
		}
	}
	return geometry.Vector2{}, false
}

// edgePosition picks a random position along one of the four arena edges,
// inset by the drone's hull size.
func edgePosition(arena Arena) geometry.Vector2 {
	inset := DroneHalfLength + 1
	switch rand.Intn(4) {
	case 0: // Top
		return geometry.Vector2{X: inset + rand.Float64()*(arena.Width-2*inset), Y: inset}
	case 1: // Bottom
		return geometry.Vector2{X: inset + rand.Float64()*(arena.Width-2*inset), Y: arena.Height - inset}
	case 2: // Left
		return geometry.Vector2{X: inset, Y: inset + rand.Float64()*(arena.Height-2*inset)}
	default: // Right
		return geometry.Vector2{X: arena.Width - inset, Y: inset + rand.Float64()*(arena.Height-2*inset)}
	}
}
