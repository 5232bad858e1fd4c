package health

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astrodyn-tools/refframes/internal/core/config"
	"github.com/astrodyn-tools/refframes/internal/core/logger"
)

func TestDoctorWithoutKernel(t *testing.T) {
	t.Setenv("REFFRAMES_HOME", t.TempDir())

	cfg := &config.Config{}
	cfg.Ephemeris.Cache = true

	results := NewDoctor(cfg, logger.Discard()).Run(time.Now())
	require.Len(t, results, 3)

	byName := map[string]Result{}
	for _, r := range results {
		byName[r.Name] = r
	}

	assert.Equal(t, StatusFail, byName["ephemeris kernel"].Status)
	assert.Equal(t, StatusOK, byName["state cache"].Status)
	assert.Equal(t, "not yet created", byName["state cache"].Detail)
	assert.Equal(t, StatusWarn, byName["horizon output"].Status)

	assert.False(t, Healthy(results))
}

func TestDoctorRejectsCorruptKernel(t *testing.T) {
	t.Setenv("REFFRAMES_HOME", t.TempDir())

	bogus := filepath.Join(t.TempDir(), "not-a-kernel.430")
	require.NoError(t, os.WriteFile(bogus, []byte("definitely not ephemeris data"), 0640))

	cfg := &config.Config{}
	cfg.Ephemeris.Kernel = bogus

	results := NewDoctor(cfg, logger.Discard()).Run(time.Now())
	assert.Equal(t, StatusFail, results[0].Status)
	assert.False(t, Healthy(results))
}

func TestDoctorCacheDisabled(t *testing.T) {
	t.Setenv("REFFRAMES_HOME", t.TempDir())

	cfg := &config.Config{}
	results := NewDoctor(cfg, logger.Discard()).Run(time.Now())

	var cache Result
	for _, r := range results {
		if r.Name == "state cache" {
			cache = r
		}
	}
	assert.Equal(t, StatusOK, cache.Status)
	assert.Equal(t, "disabled", cache.Detail)
}

func TestDoctorCreatesOutputDir(t *testing.T) {
	t.Setenv("REFFRAMES_HOME", t.TempDir())

	dir := filepath.Join(t.TempDir(), "horizon", "csv")
	cfg := &config.Config{}
	cfg.Output.HorizonDir = dir

	results := NewDoctor(cfg, logger.Discard()).Run(time.Now())

	var out Result
	for _, r := range results {
		if r.Name == "horizon output" {
			out = r
		}
	}
	assert.Equal(t, StatusOK, out.Status)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
