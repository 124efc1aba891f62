package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/pandamj/internal/config"
)

func TestNew_TextToFallback(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := New(config.LogConfig{Level: "debug", Format: "text"}, &buf)
	require.NoError(t, err)
	defer closer.Close()

	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	logger.WithField("stage", "stage-01").Debug("Stage settled")
	assert.Contains(t, buf.String(), "Stage settled")
	assert.Contains(t, buf.String(), "stage=stage-01")
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := New(config.LogConfig{Level: "info", Format: "json"}, &buf)
	require.NoError(t, err)

	logger.WithField("run_id", "abc").Info("Drill started")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Drill started", entry["msg"])
	assert.Equal(t, "abc", entry["run_id"])
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := New(config.LogConfig{Level: "warn", Format: "text"}, &buf)
	require.NoError(t, err)

	logger.Info("hidden")
	assert.Empty(t, buf.String())
}

func TestNew_BadLevel(t *testing.T) {
	_, _, err := New(config.LogConfig{Level: "chatty", Format: "text"}, nil)
	assert.Error(t, err)
}

func TestNew_RotatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "pandamj.log")
	logger, closer, err := New(config.LogConfig{
		Level: "info", Format: "text", File: path, MaxSizeMB: 1, MaxBackups: 1,
	}, nil)
	require.NoError(t, err)

	logger.Warn("Progress storage unavailable")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "Progress storage unavailable"))
}
