//go:build unit
// +build unit

package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niyatanya/habit-tracker/internal/pkg/config"
)

func TestNewFileLogger(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "habit-tracker.log")

	logger := NewFileLogger(config.LogLevelWarning, logPath, 10, 3, 28)
	require.NotNil(t, logger)

	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)

	logOutput := string(content)
	assert.NotContains(t, logOutput, "info message")
	assert.Contains(t, logOutput, "warn message")
	assert.Contains(t, logOutput, "error message")
	assert.Contains(t, logOutput, `"level":"WARN"`)
	assert.Contains(t, logOutput, `"level":"ERROR"`)
}
