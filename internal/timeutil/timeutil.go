// Package timeutil converts between epoch strings, UTC instants, and the
// TDB julian dates the ephemeris kernel is indexed by.
package timeutil

import (
	"time"

	"github.com/soniakeys/meeus/julian"

	"github.com/astrodyn-tools/refframes/pkg/errs"
)

// J2000 is the julian date of the J2000 reference epoch (2000-01-01T12:00:00 TDB).
const J2000 = 2451545.0

// SecondsPerDay is the number of seconds in a julian day.
const SecondsPerDay = 86400.0

// ttMinusTAI is the constant offset between Terrestrial Time and TAI, in seconds.
const ttMinusTAI = 32.184

// epochLayouts are the accepted epoch string formats, tried in order.
// ANSIC matches what the original mission tooling passed on the command line.
var epochLayouts = []string{
	time.ANSIC,
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-1-2T15:4:5.999999",
	"2006-1-2T15:4:5",
	"2006-1-2 15:4:5",
	"2006-01-02",
}

// leapSeconds lists TAI−UTC at each effective UTC date, most recent first.
// Mirrors the naif0012.tls kernel contents.
var leapSeconds = []struct {
	since time.Time
	tai   float64
}{
	{time.Date(2017, 1, 1, 0, 0, 0, 0, time.UTC), 37},
	{time.Date(2015, 7, 1, 0, 0, 0, 0, time.UTC), 36},
	{time.Date(2012, 7, 1, 0, 0, 0, 0, time.UTC), 35},
	{time.Date(2009, 1, 1, 0, 0, 0, 0, time.UTC), 34},
	{time.Date(2006, 1, 1, 0, 0, 0, 0, time.UTC), 33},
	{time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC), 32},
	{time.Date(1997, 7, 1, 0, 0, 0, 0, time.UTC), 31},
	{time.Date(1996, 1, 1, 0, 0, 0, 0, time.UTC), 30},
	{time.Date(1994, 7, 1, 0, 0, 0, 0, time.UTC), 29},
	{time.Date(1993, 7, 1, 0, 0, 0, 0, time.UTC), 28},
	{time.Date(1992, 7, 1, 0, 0, 0, 0, time.UTC), 27},
	{time.Date(1991, 1, 1, 0, 0, 0, 0, time.UTC), 26},
	{time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC), 25},
	{time.Date(1988, 1, 1, 0, 0, 0, 0, time.UTC), 24},
	{time.Date(1985, 7, 1, 0, 0, 0, 0, time.UTC), 23},
	{time.Date(1983, 7, 1, 0, 0, 0, 0, time.UTC), 22},
	{time.Date(1982, 7, 1, 0, 0, 0, 0, time.UTC), 21},
	{time.Date(1981, 7, 1, 0, 0, 0, 0, time.UTC), 20},
	{time.Date(1980, 1, 1, 0, 0, 0, 0, time.UTC), 19},
	{time.Date(1972, 1, 1, 0, 0, 0, 0, time.UTC), 10},
}

// ParseEpoch parses an epoch string in any of the accepted layouts, as UTC.
func ParseEpoch(s string) (time.Time, error) {
	for _, layout := range epochLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, errs.Newf(errs.ErrEpochParse, "timeutil.parse",
		"unrecognized epoch %q", s).
		WithAdvice("use an ISO date time, e.g. 2016-03-24T20:41:48")
}

// TAIMinusUTC returns the accumulated leap seconds at the given UTC instant.
func TAIMinusUTC(t time.Time) float64 {
	for _, ls := range leapSeconds {
		if !t.Before(ls.since) {
			return ls.tai
		}
	}
	return 0
}

// DeltaT returns TT−UTC in seconds at the given instant.
// TDB is treated as TT: the periodic TDB−TT terms stay under 2 ms,
// far below the tolerances of these utilities.
func DeltaT(t time.Time) float64 {
	return ttMinusTAI + TAIMinusUTC(t)
}

// JDUTC returns the julian date of the given instant on the UTC scale.
func JDUTC(t time.Time) float64 {
	return julian.TimeToJD(t.UTC())
}

// JDTDB returns the julian date of the given instant on the TDB scale,
// which is what DE kernels are indexed by.
func JDTDB(t time.Time) float64 {
	return JDUTC(t) + DeltaT(t)/SecondsPerDay
}

// ETSeconds returns TDB seconds past J2000 for the given instant.
func ETSeconds(t time.Time) float64 {
	return (JDTDB(t) - J2000) * SecondsPerDay
}
