package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, DefaultSource, cfg.Source)
	assert.Equal(t, "html", cfg.Format)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "localhost:8080", cfg.Server.Addr)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 10.0, cfg.Server.RateLimit)
	assert.Equal(t, 20, cfg.Server.RateBurst)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfotimes.yaml")
	content := `source: s3://reports/titan.yaml
format: json
server:
  addr: ":9090"
  shutdown_timeout: 3s
aws:
  profile: benefique
  region: us-west-2`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(New(), path)
	require.NoError(t, err)

	assert.Equal(t, "s3://reports/titan.yaml", cfg.Source)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "benefique", cfg.AWS.Profile)
	assert.Equal(t, "us-west-2", cfg.AWS.Region)
	assert.Equal(t, 20, cfg.Server.RateBurst)
}

func TestLoad_Env(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CFOTIMES_SOURCE", "builtin:titan")
	t.Setenv("CFOTIMES_SERVER_ADDR", ":7070")
	t.Setenv("CFOTIMES_LOG_LEVEL", "debug")

	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Server.Addr)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	_, err := Load(New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unclosed"), 0o644))

	_, err := Load(New(), path)
	assert.Error(t, err)
}
