package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetFloat(t *testing.T) {
	c := &Config{}
	t.Setenv("GOAL_TOLERANCE_KG", "0.75")
	assert.Equal(t, 0.75, c.GetFloat("GOAL_TOLERANCE_KG", 0.5))
	t.Setenv("GOAL_TOLERANCE_KG", "abc")
	assert.Equal(t, 0.5, c.GetFloat("GOAL_TOLERANCE_KG", 0.5))
	assert.Equal(t, 1.0, c.GetFloat("MISSING_KEY_FOR_TEST", 1))
}

func TestGetBoolAndDuration(t *testing.T) {
	c := &Config{}
	t.Setenv("LOG_TO_STDOUT", "true")
	assert.True(t, c.GetBool("LOG_TO_STDOUT", false))
	t.Setenv("LOG_TO_STDOUT", "maybe")
	assert.False(t, c.GetBool("LOG_TO_STDOUT", false))

	t.Setenv("JWT_TTL", "90m")
	assert.Equal(t, 90*time.Minute, c.GetDuration("JWT_TTL", time.Hour))
	t.Setenv("JWT_TTL", "soon")
	assert.Equal(t, time.Hour, c.GetDuration("JWT_TTL", time.Hour))
}
