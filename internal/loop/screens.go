package loop

import (
	"fmt"

	"tankbox/internal/draw"
	"tankbox/internal/input"
	"tankbox/internal/object"
)

// updateStartState handles the title screen.
func updateStartState(state *State) {
	if state.Input.Fire || state.Input.Enter {
		startGame(state)
	}
}

// updateDeadState keeps explosion particles moving while waiting for the
// restart key.
func updateDeadState(state *State) {
	ctx := state.UpdateContext()
	kept := state.Objects[:0]
	for _, obj := range state.Objects {
		switch obj.(type) {
		case *object.Particle:
			remove, _ := obj.Update(ctx)
			if !remove {
				kept = append(kept, obj)
			}
		default:
			kept = append(kept, obj) // Keep the world visible but frozen
		}
	}
	state.Objects = kept
	state.FlushSpawned()

	if state.Input.Fire || state.Input.Enter {
		startGame(state)
	}
}

// startGame initializes a new game or respawns the tank.
func startGame(state *State) {
	input.Reset(state.InputStream)

	if state.GameState == GameStateStart || state.Lives <= 0 {
		// Full restart
		state.Objects = state.Objects[:0]
		state.toSpawn = state.toSpawn[:0]
		state.Score = 0
		state.Lives = InitialLives

		for _, wall := range levelWalls() {
			state.AddObject(wall)
		}
		state.AddObject(object.NewDroneSpawner(DroneTarget))
	} else {
		// Respawn - keep the world, drop leftover shells and particles
		kept := state.Objects[:0]
		for _, obj := range state.Objects {
			switch obj.(type) {
			case *object.Particle, *object.Shell:
			default:
				kept = append(kept, obj)
			}
		}
		state.Objects = kept
	}

	tank := object.NewTank(playerSpawn())
	state.Player = tank
	state.AddObject(tank)

	state.Camera.Center = tank.Pos
	state.InvincibleTime = InvincibilitySeconds
	state.GameState = GameStatePlaying
}

// drawUI draws the game UI overlay.
func drawUI(state *State, w *draw.ChunkWriter, canvas *draw.Canvas) {
	termWidth := canvas.TerminalWidth()
	termHeight := canvas.TerminalHeight()
	centerX := termWidth / 2
	centerY := termHeight / 2

	switch state.GameState {
	case GameStateStart:
		drawStartScreen(w, centerX, centerY)
	case GameStatePlaying:
		drawPlayingHUD(state, w, termWidth)
	case GameStateDead:
		drawDeadScreen(state, w, centerX, centerY)
	}
}

// drawStartScreen draws the title screen.
func drawStartScreen(w *draw.ChunkWriter, centerX, centerY int) {
	title := "T A N K B O X"
	w.WriteAt(centerX-len(title)/2, centerY-2, title)

	subtitle := "Press SPACE to Start"
	w.WriteAt(centerX-len(subtitle)/2, centerY+1, subtitle)

	controls := "Controls: A/D or Arrows to steer, W/S to drive, SPACE to fire, Q to quit"
	w.WriteAt(centerX-len(controls)/2, centerY+4, controls)
}

// drawPlayingHUD draws the in-game HUD (score, lives).
func drawPlayingHUD(state *State, w *draw.ChunkWriter, termWidth int) {
	scoreText := fmt.Sprintf("Score: %d", state.Score)
	w.WriteAt(2, 1, scoreText)

	livesText := fmt.Sprintf("Lives: %d", state.Lives)
	w.WriteAt(termWidth-len(livesText)-1, 1, livesText)
}

// drawDeadScreen draws the death/game over screen.
func drawDeadScreen(state *State, w *draw.ChunkWriter, centerX, centerY int) {
	var title string
	if state.Lives > 0 {
		title = "TANK DESTROYED"
	} else {
		title = "GAME OVER"
	}
	w.WriteAt(centerX-len(title)/2, centerY-2, title)

	scoreText := fmt.Sprintf("Score: %d", state.Score)
	w.WriteAt(centerX-len(scoreText)/2, centerY, scoreText)

	var prompt string
	if state.Lives > 0 {
		prompt = fmt.Sprintf("Lives remaining: %d - Press SPACE to continue", state.Lives)
	} else {
		prompt = "Press SPACE to Restart"
	}
	w.WriteAt(centerX-len(prompt)/2, centerY+2, prompt)
}
