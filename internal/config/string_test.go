package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigTree(t *testing.T) {
	cfg := NewDefault()
	cfg.HTTP.IdleTimeout = Duration(0)

	out := cfg.String()
	assert.Contains(t, out, "Greeter Config (v1)")
	assert.Contains(t, out, "Address: :3000")
	assert.Contains(t, out, "Idle Timeout: default")
	assert.Contains(t, out, "Level: info")
	assert.Contains(t, out, "Format: txt")
	assert.Contains(t, out, "專題伺服器")
}
