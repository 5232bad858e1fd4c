package frames

import (
	"time"

	"github.com/astrodyn-tools/refframes/internal/ephemeris"
	"github.com/astrodyn-tools/refframes/internal/timeutil"
)

// ChgFrame converts a state vector between two frames at the given epoch:
// a 6×6 rotation followed by an origin offset whenever the frames are
// centered on different bodies. The offset is the geometric state of the
// source center relative to the destination center, expressed in the
// destination frame.
func ChgFrame(st ephemeris.State, from, to Frame, epoch time.Time, src ephemeris.Source) (ephemeris.State, error) {
	jd := timeutil.JDTDB(epoch)

	rotated := Apply(Transform(from, to, jd), st)

	if from.Center() == to.Center() {
		return rotated, nil
	}

	// Origin offset in J2000, then into the destination frame.
	origin, err := src.StateKm(jd, from.Center(), to.Center())
	if err != nil {
		return ephemeris.State{}, err
	}
	originInTo := Apply(Transform(J2000, to, jd), origin)

	return rotated.Add(originInTo), nil
}
