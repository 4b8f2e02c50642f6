package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"habits-cli/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "habits.log")
	log, err := New(&config.LoggingConfig{Level: "info", OutputPath: path, MaxSizeMB: 1})
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("habit defined", zap.String("name", "Reading"))
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "habit defined", entry["msg"])
	assert.Equal(t, "Reading", entry["name"])
	assert.Contains(t, entry, "ts")
}

func TestNew_EmptyPathIsNop(t *testing.T) {
	log, err := New(&config.LoggingConfig{Level: "info"})
	require.NoError(t, err)
	assert.NotNil(t, log)
	log.Info("dropped")
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(&config.LoggingConfig{Level: "loud", OutputPath: filepath.Join(t.TempDir(), "x.log")})
	assert.Error(t, err)
}
