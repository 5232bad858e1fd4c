package frames

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astrodyn-tools/refframes/internal/ephemeris"
)

// fixedSource returns a constant offset between any two distinct bodies,
// antisymmetric in its arguments like a real ephemeris.
type fixedSource struct {
	offset ephemeris.State
}

func (s *fixedSource) StateKm(jdTDB float64, target, center ephemeris.Body) (ephemeris.State, error) {
	if target == center {
		return ephemeris.State{}, nil
	}
	if target.Name < center.Name {
		return s.offset, nil
	}
	return s.offset.Neg(), nil
}

// The epochs of the original regression suite.
var chgEpochs = []string{
	"2016-03-24T20:41:48",
	"2016-04-14T20:50:23",
	"2016-05-12T18:00:15",
	"2018-10-02T22:21:40",
}

func mustEpoch(t *testing.T, s string) time.Time {
	t.Helper()
	at, err := time.Parse("2006-01-02T15:04:05", s)
	require.NoError(t, err)
	return at.UTC()
}

func TestChgFrameIsReversible(t *testing.T) {
	// Converting to another frame and back must reproduce the input:
	// position to ~1 m, velocity to ~1e-6 km/s.
	src := &fixedSource{offset: ephemeris.State{
		-148030923.95, -12123548.95, 302492.18, 2.659, -29.849, -0.354,
	}}

	state := ephemeris.State{
		-996776.1190926583, -39776.102324992695, 25123.28168731782,
		-0.5114606889356655, -0.6914491357021403, -0.34254913653144525,
	}

	from, err := Parse("IAU_Earth")
	require.NoError(t, err)
	to, err := Parse("EclipJ2000")
	require.NoError(t, err)

	for _, es := range chgEpochs {
		epoch := mustEpoch(t, es)

		out, err := ChgFrame(state, from, to, epoch, src)
		require.NoError(t, err)

		back, err := ChgFrame(out, to, from, epoch, src)
		require.NoError(t, err)

		for i := 0; i < 3; i++ {
			assert.InDelta(t, state[i], back[i], 1e-3, "%s R[%d]", es, i)
			assert.InDelta(t, state[i+3], back[i+3], 1e-6, "%s V[%d]", es, i)
		}
	}
}

func TestChgFrameInertialPairSkipsOffset(t *testing.T) {
	// Both frames are Sun-centered: pure rotation, the source must not be consulted.
	src := &fixedSource{offset: ephemeris.State{1e12, 1e12, 1e12, 1e6, 1e6, 1e6}}

	state := ephemeris.State{-2.99012933e5, -1.34647706e5, -2.28182460e4,
		-8.13323827e-2, -5.15291913e-1, -9.05957422e-2}

	epoch := mustEpoch(t, chgEpochs[0])

	out, err := ChgFrame(state, J2000, EclipJ2000, epoch, src)
	require.NoError(t, err)

	back, err := ChgFrame(out, EclipJ2000, J2000, epoch, src)
	require.NoError(t, err)

	for i := 0; i < 6; i++ {
		assert.InDelta(t, state[i], back[i], 1e-9)
	}

	// Magnitudes survive a pure rotation.
	var rin, rout float64
	for i := 0; i < 3; i++ {
		rin += state[i] * state[i]
		rout += out[i] * out[i]
	}
	assert.InDelta(t, rin, rout, 1e-3)
}

func TestChgFrameAppliesOriginOffset(t *testing.T) {
	// Zero input state in a body-fixed frame lands exactly on the
	// body's position in the destination frame.
	offset := ephemeris.State{17278277.79, 232608811.57, 4449867.58, -23.24, 3.85, 0.65}
	src := &fixedSource{offset: offset}

	from, err := Parse("IAU_Venus")
	require.NoError(t, err)

	epoch := mustEpoch(t, chgEpochs[0])
	out, err := ChgFrame(ephemeris.State{}, from, J2000, epoch, src)
	require.NoError(t, err)

	// Destination is J2000, so the offset is applied unrotated.
	want, err := src.StateKm(0, from.Center(), J2000.Center())
	require.NoError(t, err)
	for i := 0; i < 6; i++ {
		assert.InDelta(t, want[i], out[i], 1e-9)
	}
}
