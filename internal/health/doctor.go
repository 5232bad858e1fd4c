// Package health provides the environment probes behind `refframes doctor`.
package health

import (
	"fmt"
	"os"
	"time"

	"github.com/astrodyn-tools/refframes/internal/core/config"
	"github.com/astrodyn-tools/refframes/internal/core/logger"
	"github.com/astrodyn-tools/refframes/internal/ephemeris"
	"github.com/astrodyn-tools/refframes/internal/timeutil"
)

// Status is the outcome of a single probe.
type Status string

const (
	StatusOK   Status = "ok"
	StatusWarn Status = "warn"
	StatusFail Status = "fail"
)

// Result is one probe's outcome.
type Result struct {
	Name   string
	Status Status
	Detail string
}

// Doctor runs the environment probes against a loaded configuration.
type Doctor struct {
	cfg *config.Config
	log *logger.Logger
}

// NewDoctor constructs a Doctor.
func NewDoctor(cfg *config.Config, log *logger.Logger) *Doctor {
	return &Doctor{cfg: cfg, log: log}
}

// Run executes every probe and returns their results in display order.
func (d *Doctor) Run(now time.Time) []Result {
	results := []Result{
		d.checkKernel(now),
		d.checkCache(),
		d.checkOutputDir(),
	}
	for _, r := range results {
		d.log.Debug("doctor probe", "name", r.Name, "status", string(r.Status), "detail", r.Detail)
	}
	return results
}

// Healthy reports whether no probe failed.
func Healthy(results []Result) bool {
	for _, r := range results {
		if r.Status == StatusFail {
			return false
		}
	}
	return true
}

// checkKernel opens the configured DE kernel and verifies it covers the
// current epoch.
func (d *Doctor) checkKernel(now time.Time) Result {
	if d.cfg.Ephemeris.Kernel == "" {
		return Result{
			Name:   "ephemeris kernel",
			Status: StatusFail,
			Detail: "ephemeris.kernel is not set; point it at a binary JPL DE file",
		}
	}

	k, err := ephemeris.OpenKernel(d.cfg.Ephemeris.Kernel)
	if err != nil {
		return Result{Name: "ephemeris kernel", Status: StatusFail, Detail: err.Error()}
	}
	defer k.Close()

	start, end := k.Coverage()
	detail := fmt.Sprintf("DE%d, JD %.2f – %.2f", k.DENumber(), start, end)

	jd := timeutil.JDTDB(now)
	if jd < start || jd > end {
		return Result{
			Name:   "ephemeris kernel",
			Status: StatusWarn,
			Detail: detail + fmt.Sprintf(" (current epoch JD %.2f outside coverage)", jd),
		}
	}
	return Result{Name: "ephemeris kernel", Status: StatusOK, Detail: detail}
}

// checkCache opens the state cache and reports its size.
func (d *Doctor) checkCache() Result {
	if !d.cfg.Ephemeris.Cache {
		return Result{Name: "state cache", Status: StatusOK, Detail: "disabled"}
	}

	path := config.CachePath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Result{Name: "state cache", Status: StatusOK, Detail: "not yet created"}
	}

	cache, err := ephemeris.NewCachedSource(nil, path)
	if err != nil {
		return Result{Name: "state cache", Status: StatusFail, Detail: err.Error()}
	}
	defer cache.Close()

	n, err := cache.Len()
	if err != nil {
		return Result{Name: "state cache", Status: StatusFail, Detail: err.Error()}
	}
	return Result{
		Name:   "state cache",
		Status: StatusOK,
		Detail: fmt.Sprintf("%d cached states", n),
	}
}

// checkOutputDir verifies the horizon output directory is usable.
func (d *Doctor) checkOutputDir() Result {
	dir := d.cfg.Output.HorizonDir
	if dir == "" {
		return Result{
			Name:   "horizon output",
			Status: StatusWarn,
			Detail: "output.horizon_dir not set; CSV files land in the current directory",
		}
	}

	if err := os.MkdirAll(dir, 0750); err != nil {
		return Result{Name: "horizon output", Status: StatusFail, Detail: err.Error()}
	}

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return Result{Name: "horizon output", Status: StatusFail, Detail: dir + " is not a directory"}
	}
	return Result{Name: "horizon output", Status: StatusOK, Detail: dir}
}
