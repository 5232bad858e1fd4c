package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "refframes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("REFFRAMES_HOME", t.TempDir()) // avoid the real ~/.refframes

	cfg, err := Load(writeConfig(t, "ephemeris:\n  kernel: /data/de430.bin\n"))
	require.NoError(t, err)

	assert.Equal(t, "/data/de430.bin", cfg.Ephemeris.Kernel)
	assert.True(t, cfg.Ephemeris.Cache)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, time.Minute, cfg.CacheTruncation())
}

func TestLoadExplicitValues(t *testing.T) {
	t.Setenv("REFFRAMES_HOME", t.TempDir())

	body := `
ephemeris:
  kernel: /krnls/de430.bin
  cache: false
  truncation: 30s
output:
  horizon_dir: /data/horizon
log:
  level: debug
  format: json
`
	cfg, err := Load(writeConfig(t, body))
	require.NoError(t, err)

	assert.False(t, cfg.Ephemeris.Cache)
	assert.Equal(t, 30*time.Second, cfg.CacheTruncation())
	assert.Equal(t, "/data/horizon", cfg.Output.HorizonDir)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadRejectsBadFormat(t *testing.T) {
	t.Setenv("REFFRAMES_HOME", t.TempDir())

	_, err := Load(writeConfig(t, "log:\n  format: xml\n"))
	assert.Error(t, err)
}

func TestLoadRejectsBadTruncation(t *testing.T) {
	t.Setenv("REFFRAMES_HOME", t.TempDir())

	_, err := Load(writeConfig(t, "ephemeris:\n  truncation: soon\n"))
	assert.Error(t, err)
}

func TestKernelEnvExpansion(t *testing.T) {
	t.Setenv("REFFRAMES_HOME", t.TempDir())
	t.Setenv("KRNL_ROOT", "/srv/kernels")

	cfg, err := Load(writeConfig(t, "ephemeris:\n  kernel: ${KRNL_ROOT}/de430.bin\n"))
	require.NoError(t, err)
	assert.Equal(t, "/srv/kernels/de430.bin", cfg.Ephemeris.Kernel)
}
