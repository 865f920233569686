package input

import (
	"bufio"
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// pollUntilDrained polls the stream until the reader goroutine has delivered
// everything, accumulating held keys across polls.
func pollUntilDrained(s *Stream) Input {
	deadline := time.Now().Add(100 * time.Millisecond)
	var last Input
	for time.Now().Before(deadline) {
		last = Poll(s)
		if len(last.Pressed) > 0 {
			return last
		}
		time.Sleep(time.Millisecond)
	}
	return last
}

func TestPollMapsKeys(t *testing.T) {
	tests := []struct {
		name  string
		bytes []byte
		check func(t *testing.T, in Input)
	}{
		{name: "quit", bytes: []byte("q"), check: func(t *testing.T, in Input) { assert.True(t, in.Quit) }},
		{name: "rotate left", bytes: []byte("a"), check: func(t *testing.T, in Input) { assert.True(t, in.Left) }},
		{name: "rotate right", bytes: []byte("d"), check: func(t *testing.T, in Input) { assert.True(t, in.Right) }},
		{name: "throttle", bytes: []byte("w"), check: func(t *testing.T, in Input) { assert.True(t, in.Forward) }},
		{name: "reverse", bytes: []byte("s"), check: func(t *testing.T, in Input) { assert.True(t, in.Reverse) }},
		{name: "fire", bytes: []byte(" "), check: func(t *testing.T, in Input) { assert.True(t, in.Fire) }},
		{name: "up arrow", bytes: []byte("\x1b[A"), check: func(t *testing.T, in Input) { assert.True(t, in.Forward) }},
		{name: "left arrow", bytes: []byte("\x1b[D"), check: func(t *testing.T, in Input) { assert.True(t, in.Left) }},
		{name: "combination", bytes: []byte("w d"), check: func(t *testing.T, in Input) {
			assert.True(t, in.Forward)
			assert.True(t, in.Right)
			assert.True(t, in.Fire)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := StartStream(bufio.NewReader(bytes.NewReader(tt.bytes)))
			tt.check(t, pollUntilDrained(s))
		})
	}
}

func TestReset(t *testing.T) {
	s := StartStream(bufio.NewReader(bytes.NewReader([]byte(" "))))
	in := pollUntilDrained(s)
	assert.True(t, in.Fire)

	Reset(s)
	assert.False(t, Poll(s).Fire)
}

func TestKeyHoldExpires(t *testing.T) {
	s := StartStream(bufio.NewReader(bytes.NewReader([]byte("w"))))
	in := pollUntilDrained(s)
	assert.True(t, in.Forward)

	time.Sleep(keyHoldDuration + 10*time.Millisecond)
	assert.False(t, Poll(s).Forward)
}
