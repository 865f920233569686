package loop

import (
	"tankbox/internal/object"
	"tankbox/internal/physics"
)

// checkCollisions runs the frame's collision pass: every collidable's
// bounding box goes into the spatial grid, candidate pairs come back out,
// and each pair is confirmed with the separating-axis test before being
// resolved by type.
func (s *State) checkCollisions() {
	s.collidables = s.collidables[:0]
	for _, obj := range s.Objects {
		if c, ok := obj.(object.Collidable); ok {
			s.collidables = append(s.collidables, c)
		}
	}

	s.grid.Clear()
	for i, c := range s.collidables {
		s.grid.Insert(c.Hitbox().BoundingBox(), i)
	}

	for i, c := range s.collidables {
		bounds := c.Hitbox().BoundingBox()
		s.grid.Query(bounds, func(j int) bool {
			// Each unordered pair is resolved once.
			if j <= i {
				return false
			}
			a, b := s.collidables[i], s.collidables[j]
			if physics.Overlap(a.Hitbox(), b.Hitbox()) {
				s.resolveCollision(a, b)
			}
			return false
		})
	}
}

// resolveCollision dispatches on the pair's types. Order of the arguments
// is arbitrary, so both orientations are tried.
func (s *State) resolveCollision(a, b object.Collidable) {
	if s.resolveOrdered(a, b) {
		return
	}
	s.resolveOrdered(b, a)
}

// resolveOrdered handles a directed pair; returns true when the pair matched
// a rule.
func (s *State) resolveOrdered(a, b object.Collidable) bool {
	switch x := a.(type) {
	case *object.Shell:
		switch y := b.(type) {
		case *object.Drone:
			s.shellHitsDrone(x, y)
			return true
		case *object.Wall:
			s.shellHitsWall(x)
			return true
		case *object.Tank:
			s.shellHitsTank(x, y)
			return true
		case *object.Shell:
			x.MarkDestroyed()
			y.MarkDestroyed()
			return true
		}
	case *object.Tank:
		switch y := b.(type) {
		case *object.Wall:
			// Walls stop the hull dead.
			x.RevertMove()
			x.Speed = 0
			return true
		case *object.Drone:
			s.droneHitsTank(y, x)
			return true
		}
	case *object.Drone:
		switch y := b.(type) {
		case *object.Wall:
			x.Deflect()
			return true
		case *object.Drone:
			separateDrones(x, y)
			return true
		}
	}
	return false
}

func (s *State) shellHitsDrone(shell *object.Shell, drone *object.Drone) {
	if shell.IsDestroyed() || drone.IsDestroyed() {
		return
	}
	shell.MarkDestroyed()
	drone.MarkDestroyed()
	s.Score += ScoreDrone
	object.SpawnExplosion(drone.Pos, 14, 20.0, 0.8, s)
}

func (s *State) shellHitsWall(shell *object.Shell) {
	if shell.IsDestroyed() {
		return
	}
	shell.MarkDestroyed()
	object.SpawnExplosion(shell.Pos, 4, 10.0, 0.3, s)
}

func (s *State) shellHitsTank(shell *object.Shell, tank *object.Tank) {
	if shell.IsDestroyed() || tank.IsDestroyed() || s.InvincibleTime > 0 {
		return
	}
	shell.MarkDestroyed()
	s.killTank(tank)
}

func (s *State) droneHitsTank(drone *object.Drone, tank *object.Tank) {
	if drone.IsDestroyed() || tank.IsDestroyed() || s.InvincibleTime > 0 {
		return
	}
	drone.MarkDestroyed()
	object.SpawnExplosion(drone.Pos, 10, 15.0, 0.6, s)
	s.killTank(tank)
}

// killTank handles the player's death and the state transition.
func (s *State) killTank(tank *object.Tank) {
	tank.MarkDestroyed()
	object.SpawnExplosion(tank.Pos, 24, 28.0, 1.2, s)

	// Remove the wreck from the world; the dead screen keeps the rest.
	var wreck object.Object = tank
	kept := s.Objects[:0]
	for _, obj := range s.Objects {
		if obj != wreck {
			kept = append(kept, obj)
		}
	}
	s.Objects = kept

	s.Lives--
	s.GameState = GameStateDead
	s.Player = nil
}

// separateDrones nudges two overlapping drones apart along the line between
// their centers. No impulse physics, just positional separation.
func separateDrones(a, b *object.Drone) {
	delta := b.Pos.Sub(a.Pos)
	dist := delta.Length()
	if dist == 0 {
		return
	}
	push := delta.Scale(0.5 / dist)
	a.Pos = a.Pos.Sub(push)
	b.Pos = b.Pos.Add(push)
}
