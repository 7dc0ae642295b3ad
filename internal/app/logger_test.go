package app

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	for _, env := range []string{"production", "development", ""} {
		logger := NewLogger(env, "lesson-scheduler")
		require.NotNil(t, logger, "env %q", env)
		logger.Sync()
	}
}
