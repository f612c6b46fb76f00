package di

import (
	"os"
	"path/filepath"
	"testing"

	"applicant_review_system/configs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "service.log")

	logger := NewLogger(configs.Logger{AppName: "test", File: path}, configs.App{Environment: "prod"})
	logger.Infow("vote recorded", "rowKey", "r1")
	logger.Debugw("hidden outside dev")
	_ = logger.Sync()

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"msg":"vote recorded"`)
	assert.Contains(t, string(content), `"rowKey":"r1"`)
	assert.NotContains(t, string(content), "hidden outside dev")
}

func TestNewLogger_DevEnablesDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "service.log")

	logger := NewLogger(configs.Logger{File: path}, configs.App{Environment: "dev"})
	logger.Debugw("tally computed")
	_ = logger.Sync()

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "tally computed")
}
