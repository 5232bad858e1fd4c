// Package horizon sweeps a planet's heliocentric ephemeris over a calendar
// year and writes one CSV file per planet-year, the format the mission
// propagator loads as its ephemeris cache.
package horizon

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/astrodyn-tools/refframes/internal/core/logger"
	"github.com/astrodyn-tools/refframes/internal/ephemeris"
	"github.com/astrodyn-tools/refframes/internal/frames"
	"github.com/astrodyn-tools/refframes/internal/timeutil"
	"github.com/astrodyn-tools/refframes/pkg/errs"
)

// Options configures a sweep.
type Options struct {
	Planet string
	Start  time.Time
	End    time.Time // inclusive; must share Start's calendar year
	Step   time.Duration
	Dir    string // output directory

	// OnMonth, if set, is called once when the sweep enters each month.
	OnMonth func(month time.Month)
}

// ParseResolution parses a step like "1d", "15m", or "30s".
func ParseResolution(s string) (time.Duration, error) {
	if len(s) < 2 {
		return 0, errs.Newf(errs.ErrResolution, "horizon.resolution",
			"resolution %q too short", s)
	}

	unit := s[len(s)-1]
	n, err := strconv.Atoi(s[:len(s)-1])
	if err != nil || n <= 0 {
		return 0, errs.Newf(errs.ErrResolution, "horizon.resolution",
			"invalid resolution count in %q", s)
	}

	switch unit {
	case 'd':
		return time.Duration(n) * 24 * time.Hour, nil
	case 'm':
		return time.Duration(n) * time.Minute, nil
	case 's':
		return time.Duration(n) * time.Second, nil
	default:
		return 0, errs.Newf(errs.ErrResolution, "horizon.resolution",
			"unknown unit %q", string(unit)).
			WithAdvice("use d (days), m (minutes) or s (seconds)")
	}
}

// Generator produces horizon CSV files from an ephemeris source.
type Generator struct {
	src ephemeris.Source
	log *logger.Logger
}

// NewGenerator constructs a Generator.
func NewGenerator(src ephemeris.Source, log *logger.Logger) *Generator {
	return &Generator{src: src, log: log}
}

// Run sweeps the configured range and writes <planet>-<year>.csv.
// Returns the output path and the number of rows written.
func (g *Generator) Run(opts Options) (string, int, error) {
	if opts.Start.Year() != opts.End.Year() {
		return "", 0, errs.Newf(errs.ErrEpochSpan, "horizon.run",
			"must generate year by year: start %d, end %d",
			opts.Start.Year(), opts.End.Year())
	}
	if opts.End.Before(opts.Start) {
		return "", 0, errs.Newf(errs.ErrEpochSpan, "horizon.run", "end precedes start")
	}
	if opts.Step <= 0 {
		return "", 0, errs.Newf(errs.ErrResolution, "horizon.run", "step must be positive")
	}

	body, err := ephemeris.ResolveBody(opts.Planet)
	if err != nil {
		return "", 0, err
	}

	if err := os.MkdirAll(opts.Dir, 0750); err != nil {
		return "", 0, errs.Wrap(err, errs.ErrOutput, "horizon.mkdir").WithResource(opts.Dir)
	}
	path := filepath.Join(opts.Dir, fmt.Sprintf("%s-%d.csv", opts.Planet, opts.Start.Year()))
	f, err := os.Create(path)
	if err != nil {
		return "", 0, errs.Wrap(err, errs.ErrOutput, "horizon.create").WithResource(path)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	toEclip := frames.Transform(frames.J2000, frames.EclipJ2000, timeutil.JDTDB(opts.Start))

	// The sweep runs through end-of-day on the end date.
	stop := opts.End.Add(24 * time.Hour)

	rows := 0
	prevMonth := time.Month(0)
	for at := opts.Start; !at.After(stop); at = at.Add(opts.Step) {
		if at.Month() != prevMonth {
			prevMonth = at.Month()
			g.log.Info("generating month", "planet", body.Name, "month", int(prevMonth))
			if opts.OnMonth != nil {
				opts.OnMonth(prevMonth)
			}
		}

		jd := timeutil.JDTDB(at)
		st, err := g.src.StateKm(jd, body, ephemeris.Sun)
		if err != nil {
			return "", rows, err
		}
		st = frames.Apply(toEclip, st)

		record := make([]string, 0, 8)
		record = append(record,
			strconv.FormatFloat(jd, 'f', -1, 64),
			formatEpoch(at),
		)
		for _, c := range st {
			record = append(record, strconv.FormatFloat(c, 'f', -1, 64))
		}
		if err := w.Write(record); err != nil {
			return "", rows, errs.Wrap(err, errs.ErrOutput, "horizon.write").WithResource(path)
		}
		rows++
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", rows, errs.Wrap(err, errs.ErrOutput, "horizon.flush").WithResource(path)
	}
	return path, rows, nil
}

// formatEpoch writes the unpadded timestamp layout the downstream CSV
// loader expects ("2016-3-1T0:0:0.0").
func formatEpoch(t time.Time) string {
	return fmt.Sprintf("%d-%d-%dT%d:%d:%d.%d",
		t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), t.Second(),
		t.Nanosecond()/1000)
}
