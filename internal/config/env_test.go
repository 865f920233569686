package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("TANKBOX_TEST_STR", "hello")
	assert.Equal(t, "hello", GetEnv("TANKBOX_TEST_STR", "fallback"))
	assert.Equal(t, "fallback", GetEnv("TANKBOX_TEST_MISSING", "fallback"))
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("TANKBOX_TEST_INT", "42")
	assert.Equal(t, 42, GetEnvInt("TANKBOX_TEST_INT", 7))
	assert.Equal(t, 7, GetEnvInt("TANKBOX_TEST_INT_MISSING", 7))

	t.Setenv("TANKBOX_TEST_BAD", "not-a-number")
	assert.Equal(t, 7, GetEnvInt("TANKBOX_TEST_BAD", 7))
}
