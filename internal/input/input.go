// Package input turns a raw terminal byte stream into per-frame key state.
//
// Terminals deliver key repeats rather than press/release events, so each
// key records the time it was last seen and counts as held for a short
// window afterwards. This lets the game see simultaneous combinations like
// "throttle and turn" from a plain byte stream.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
const keyHoldDuration = 30 * time.Millisecond

// Input represents the current frame's input state, mapped to tank controls.
type Input struct {
	Quit    bool
	Left    bool // rotate counter-clockwise
	Right   bool // rotate clockwise
	Forward bool // throttle forward
	Reverse bool // throttle backward
	Fire    bool
	Enter   bool
	Escape  bool
	Pressed []byte
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	quit    time.Time
	left    time.Time
	right   time.Time
	forward time.Time
	reverse time.Time
	fire    time.Time
	enter   time.Time
	escape  time.Time
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch    chan byte
	state keyState
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// The goroutine exits when the reader returns an error (e.g. the session closed).
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch: make(chan byte, 128),
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// Reset clears all key state, so no key reads as held on the next frame.
// Used on screen transitions to avoid a stale fire/enter carrying over.
func Reset(s *Stream) {
	if s == nil {
		return
	}
	s.state = keyState{}
}

// Poll drains all available bytes from the stream (non-blocking), updates
// the key-hold state and returns the resulting per-frame input.
func Poll(s *Stream) Input {
	now := time.Now()
	var buf []byte

	// Drain all available bytes
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				goto parse
			}
			buf = append(buf, b)
		default:
			goto parse
		}
	}

parse:
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequences for arrow keys: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A': // Up arrow
				s.state.forward = now
				i += 2
				continue
			case 'B': // Down arrow
				s.state.reverse = now
				i += 2
				continue
			case 'C': // Right arrow
				s.state.right = now
				i += 2
				continue
			case 'D': // Left arrow
				s.state.left = now
				i += 2
				continue
			}
		}

		applyByteToState(&s.state, b, now)
	}

	// Keys are "pressed" if seen within the hold window.
	return Input{
		Quit:    now.Sub(s.state.quit) < keyHoldDuration,
		Left:    now.Sub(s.state.left) < keyHoldDuration,
		Right:   now.Sub(s.state.right) < keyHoldDuration,
		Forward: now.Sub(s.state.forward) < keyHoldDuration,
		Reverse: now.Sub(s.state.reverse) < keyHoldDuration,
		Fire:    now.Sub(s.state.fire) < keyHoldDuration,
		Enter:   now.Sub(s.state.enter) < keyHoldDuration,
		Escape:  now.Sub(s.state.escape) < keyHoldDuration,
		Pressed: buf,
	}
}

// applyByteToState updates the key state timestamps based on the pressed byte.
func applyByteToState(state *keyState, b byte, now time.Time) {
	switch b {
	case 'q', 'Q':
		state.quit = now
	case 'a', 'A', 'j', 'J':
		state.left = now
	case 'd', 'D', 'l', 'L':
		state.right = now
	case 'w', 'W', 'i', 'I':
		state.forward = now
	case 's', 'S', 'k', 'K':
		state.reverse = now
	case ' ':
		state.fire = now
	case '\n', '\r':
		state.enter = now
	case '\x1b':
		state.escape = now
	}
}
