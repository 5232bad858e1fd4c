package ephemeris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astrodyn-tools/refframes/pkg/errs"
)

func TestParseState(t *testing.T) {
	st, err := ParseState("[-996776.12, -39776.10, 25123.28, -0.511, -0.691, -0.342]")
	require.NoError(t, err)
	assert.InDelta(t, -996776.12, st[0], 1e-9)
	assert.InDelta(t, -0.342, st[5], 1e-9)

	// Brackets and whitespace are optional.
	st, err = ParseState("1, 2,3 ,4,5, 6")
	require.NoError(t, err)
	assert.Equal(t, State{1, 2, 3, 4, 5, 6}, st)
}

func TestParseStateRoundTrip(t *testing.T) {
	in := State{17278277.79, 232608811.57, 4449867.58, -23.24, 3.85, 0.65}
	out, err := ParseState(in.String())
	require.NoError(t, err)
	for i := range in {
		assert.InDelta(t, in[i], out[i], 1e-9)
	}
}

func TestKernelRejectsEpochOutsideCoverage(t *testing.T) {
	// DE430 coverage, without a real kernel file behind it.
	k := &Kernel{path: "/data/de430.bin", startJD: 2287184.5, endJD: 2688976.5}

	mars, err := ResolveBody("Mars")
	require.NoError(t, err)

	for _, jd := range []float64{2287184.4, 2688976.6} {
		_, err := k.StateKm(jd, mars, Sun)
		require.Error(t, err)
		assert.True(t, errs.IsCode(err, errs.ErrKernelRange))
		assert.Contains(t, err.Error(), "outside kernel coverage [2287184.50, 2688976.50]")
	}
}

func TestParseStateRejects(t *testing.T) {
	for _, in := range []string{
		"[1, 2, 3]",
		"[1, 2, 3, 4, 5, 6, 7]",
		"[1, 2, three, 4, 5, 6]",
		"",
	} {
		_, err := ParseState(in)
		require.Error(t, err, in)
		assert.True(t, errs.IsCode(err, errs.ErrStateVector), in)
	}
}
