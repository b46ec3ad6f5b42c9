package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 1, cfg.Backlog)
	assert.Equal(t, 4096, cfg.ReadBufferSize)
	assert.Equal(t, "index.html", cfg.DefaultDocument)
	assert.Equal(t, "404.html", cfg.NotFoundPage)
	assert.Equal(t, "400.html", cfg.BadRequestPage)
	assert.Equal(t, "server.log", cfg.LogFile)
}

func TestValidate(t *testing.T) {
	// Test: Ephemeral port is allowed
	cfg := Default()
	cfg.Port = 0
	require.NoError(t, cfg.Validate())

	// Test: Port out of range
	cfg = Default()
	cfg.Port = 70000
	require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	// Test: Zero backlog
	cfg = Default()
	cfg.Backlog = 0
	require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	// Test: Zero read buffer
	cfg = Default()
	cfg.ReadBufferSize = 0
	require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	// Test: Missing default document
	cfg = Default()
	cfg.DefaultDocument = ""
	require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	// Test: Missing log file
	cfg = Default()
	cfg.LogFile = ""
	require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}
