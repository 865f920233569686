// Package loop provides the main game loop and state management.
package loop

import (
	"bufio"
	"io"
	"time"

	"tankbox/internal/draw"
	"tankbox/internal/input"
	"tankbox/internal/object"
)

const targetFPS = 60
const targetFrameTime = time.Second / targetFPS

// Target resolution - the viewport uses these logical dimensions.
// Actual rendering scales to fit the terminal size.
const (
	targetWidth  = 120.0 // Logical width
	targetHeight = 80.0  // Logical height (in sub-pixels, so 40 terminal rows)
)

// Run starts the main game loop with the standard Input → Update → Draw
// cycle. sizeFunc supplies the terminal dimensions; sessions over SSH pass
// their own pty size instead of the process's stdout.
func Run(r *bufio.Reader, w io.Writer, sizeFunc draw.TermSizeFunc) error {
	state := NewState()
	state.InputStream = input.StartStream(r)

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)

	termWidth, termHeight, err := sizeFunc()
	if err != nil {
		return err
	}
	canvas := draw.NewCanvas(termWidth, termHeight, targetWidth, targetHeight)
	writer := draw.NewChunkWriter(w, 0, 0)

	lastTime := time.Now()

	for state.Running {
		frameStart := time.Now()
		state.Delta = frameStart.Sub(lastTime)
		lastTime = frameStart

		// ===== INPUT PHASE =====
		processInput(state)

		// ===== UPDATE PHASE =====
		if err := updateScreen(canvas, sizeFunc); err != nil {
			return err
		}

		switch state.GameState {
		case GameStateStart:
			updateStartState(state)
		case GameStatePlaying:
			if err := updatePlayingState(state); err != nil {
				return err
			}
		case GameStateDead:
			updateDeadState(state)
		}

		// ===== DRAW PHASE =====
		if err := drawFrame(state, writer, canvas); err != nil {
			return err
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < targetFrameTime {
			time.Sleep(targetFrameTime - elapsed)
		}
	}

	draw.ClearScreen(w)
	return nil
}

// processInput reads all pending input and applies the global keys.
func processInput(state *State) {
	state.Input = input.Poll(state.InputStream)

	if state.Input.Quit {
		state.Running = false
	}
}

// updateScreen checks for terminal resize and updates canvas scaling.
func updateScreen(canvas *draw.Canvas, sizeFunc draw.TermSizeFunc) error {
	termWidth, termHeight, err := sizeFunc()
	if err != nil {
		return err
	}

	// Resize canvas if the terminal changed (updates scaling)
	canvas.Resize(termWidth, termHeight)

	return nil
}

// drawFrame accumulates the whole frame in the chunk writer and flushes it
// in one go, so partially drawn frames never reach the terminal.
func drawFrame(state *State, writer *draw.ChunkWriter, canvas *draw.Canvas) error {
	draw.ClearScreen(writer)
	canvas.Clear()

	ctx := object.DrawContext{
		Canvas: canvas,
		Writer: writer,
		Camera: state.Camera,
		View:   state.View,
	}

	for _, obj := range state.Objects {
		if err := obj.Draw(ctx); err != nil {
			return err
		}
	}

	canvas.Render(writer)

	// UI overlay goes after the canvas render so it sits on top.
	drawUI(state, writer, canvas)

	return writer.Flush()
}
