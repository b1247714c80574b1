// SPDX-License-Identifier: MIT

package logging_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/katalvlaran/gaussmix/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_JSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gmm.log")
	cfg := logging.DefaultConfig()
	cfg.OutputPaths = []string{path}

	logger, err := logging.New(cfg)
	require.NoError(t, err)
	logger.Debug("dropped below info")
	logger.Info("gmm: loaded", zap.Int("components", 3))
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var entry map[string]any
	require.NoError(t, sonic.Unmarshal(data, &entry), "exactly one JSON line: %s", data)
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "gmm: loaded", entry["message"])
	assert.EqualValues(t, 3, entry["components"])
}

func TestNew_Development(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dev.log")
	cfg := logging.DevelopmentConfig()
	cfg.OutputPaths = []string{path}

	logger, err := logging.New(cfg)
	require.NoError(t, err)
	logger.Debug("gmm: resized")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "gmm: resized")
	assert.Contains(t, string(data), "DEBUG")
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := logging.New(logging.Config{Level: "chatty"})
	assert.ErrorIs(t, err, logging.ErrInvalidLevel)

	assert.NotNil(t, logging.NewOrNop(logging.Config{Level: "chatty"}))
}

func TestNew_DefaultsOutput(t *testing.T) {
	logger, err := logging.New(logging.Config{Level: "warn"})
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zap.InfoLevel))
	assert.True(t, logger.Core().Enabled(zap.WarnLevel))
}
