package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEpochLayouts(t *testing.T) {
	want := time.Date(2016, 3, 24, 20, 41, 48, 0, time.UTC)

	cases := []string{
		"2016-03-24T20:41:48",
		"2016-03-24 20:41:48",
		"2016-3-24T20:41:48",
		"Thu Mar 24 20:41:48 2016",
		"2016-03-24T20:41:48Z",
	}
	for _, in := range cases {
		got, err := ParseEpoch(in)
		require.NoError(t, err, in)
		assert.True(t, got.Equal(want), "%s parsed to %s", in, got)
	}
}

func TestParseEpochDateOnly(t *testing.T) {
	got, err := ParseEpoch("2015-06-20")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2015, 6, 20, 0, 0, 0, 0, time.UTC), got)
}

func TestParseEpochRejectsGarbage(t *testing.T) {
	_, err := ParseEpoch("next tuesday")
	assert.Error(t, err)
}

func TestJDUTCAtJ2000(t *testing.T) {
	// 2000-01-01T12:00:00 UTC is JD 2451545.0 on the UTC scale.
	jd := JDUTC(time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC))
	assert.InDelta(t, 2451545.0, jd, 1e-9)
}

func TestLeapSecondTable(t *testing.T) {
	assert.Equal(t, 37.0, TAIMinusUTC(time.Date(2018, 10, 2, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 36.0, TAIMinusUTC(time.Date(2016, 3, 24, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 32.0, TAIMinusUTC(time.Date(2003, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 10.0, TAIMinusUTC(time.Date(1972, 6, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 0.0, TAIMinusUTC(time.Date(1960, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestJDTDBLeadsUTC(t *testing.T) {
	// TDB runs ahead of UTC by 32.184s + leap seconds (68.184s in 2016).
	at := time.Date(2016, 3, 24, 20, 41, 48, 0, time.UTC)
	diff := (JDTDB(at) - JDUTC(at)) * SecondsPerDay
	assert.InDelta(t, 68.184, diff, 1e-6)
}

func TestETSecondsRoundNumbers(t *testing.T) {
	// One julian day after J2000 (on the TDB scale) is 86400 ET seconds.
	at := time.Date(2000, 1, 2, 12, 0, 0, 0, time.UTC)
	et := ETSeconds(at)
	assert.InDelta(t, 86400.0+DeltaT(at), et, 1e-6)
}
