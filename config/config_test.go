package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	v, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	cfg, err := ParseConfig(v)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
	assert.Equal(t, int64(32<<20), cfg.Server.MaxUploadBytes())
	assert.Equal(t, int64(89478485), cfg.Server.MaxPixels)
	assert.Equal(t, StorageConfig{
		UploadsDir:   "uploads",
		ProcessedDir: "processed",
		TemplatesDir: "templates",
		HeartMask:    "heart_base.png",
	}, cfg.Storage)
	assert.False(t, cfg.Kafka.Enabled)
	assert.Equal(t, "flag-combined", cfg.Kafka.Topic)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	yaml := `
server:
  port: "9090"
  mode: release
  idle_timeout: 2m
storage:
  processed_dir: out
kafka:
  enabled: true
  brokers: "a:9092, b:9092"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))

	v, err := LoadConfig(dir)
	require.NoError(t, err)
	cfg, err := ParseConfig(v)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, 2*time.Minute, cfg.Server.IdleTimeout)
	assert.Equal(t, "out", cfg.Storage.ProcessedDir)
	assert.Equal(t, "uploads", cfg.Storage.UploadsDir)
	assert.True(t, cfg.Kafka.Enabled)
	assert.Equal(t, []string{"a:9092", "b:9092"}, cfg.Kafka.BrokerList())
}

func TestLoadRejectsBrokenFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("server: [port"), 0o644))

	_, err := LoadConfig(dir)
	assert.Error(t, err)
}

func TestGetEnv(t *testing.T) {
	t.Setenv("FLAGCOMPOSER_TEST_KEY", "value")

	assert.Equal(t, "value", GetEnv("FLAGCOMPOSER_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("FLAGCOMPOSER_TEST_MISSING", "fallback"))
}
