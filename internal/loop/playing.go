package loop

import "tankbox/internal/object"

// updatePlayingState advances one frame of active gameplay.
func updatePlayingState(state *State) error {
	// Decrement spawn protection
	if state.InvincibleTime > 0 {
		state.InvincibleTime -= state.Delta.Seconds()
		if state.InvincibleTime < 0 {
			state.InvincibleTime = 0
		}
	}

	if err := updateObjects(state); err != nil {
		return err
	}
	state.checkCollisions()
	updateCamera(state)
	return nil
}

// updateObjects updates all objects and removes any that request removal.
func updateObjects(state *State) error {
	ctx := state.UpdateContext()

	kept := state.Objects[:0] // reuse backing array
	for _, obj := range state.Objects {
		remove, err := obj.Update(ctx)
		if err != nil {
			return err
		}
		if !remove {
			kept = append(kept, obj)
			continue
		}
		if p, ok := obj.(*object.Particle); ok {
			p.Release()
		}
	}
	state.Objects = kept

	// Add any newly spawned objects
	state.FlushSpawned()

	return nil
}

// updateCamera keeps the view centered on the tank, clamped to the arena.
func updateCamera(state *State) {
	if state.Player != nil {
		state.Camera.Center = state.Player.Pos
	}
	state.Camera = object.ClampCamera(state.Camera, state.View, state.Arena)
}
