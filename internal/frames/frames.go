// Package frames implements the reference frames the CLI converts between:
// the inertial J2000 and ECLIPJ2000 frames and the rotating IAU_* body-fixed
// frames, with 6×6 state transformations between any pair.
package frames

import (
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/astrodyn-tools/refframes/internal/ephemeris"
	"github.com/astrodyn-tools/refframes/pkg/errs"
)

// obliquityJ2000 is the mean obliquity of the ecliptic at J2000 in radians
// (84381.448 arcsec), the angle SPICE uses to define ECLIPJ2000.
const obliquityJ2000 = 84381.448 / 3600.0 * deg2rad

// Frame is a reference frame with a center body.
// Inertial frames are Sun-centered as used by these utilities; IAU frames
// are centered on the body they rotate with.
type Frame struct {
	Name   string // canonical name, e.g. "IAU_EARTH"
	center ephemeris.Body
	model  *iauModel // nil for inertial frames
}

// The two inertial frames.
var (
	J2000      = Frame{Name: "J2000", center: ephemeris.Sun}
	EclipJ2000 = Frame{Name: "ECLIPJ2000", center: ephemeris.Sun}
)

// Parse resolves a case-insensitive frame name.
func Parse(name string) (Frame, error) {
	canon := strings.ToUpper(strings.TrimSpace(name))
	switch canon {
	case "J2000":
		return J2000, nil
	case "ECLIPJ2000":
		return EclipJ2000, nil
	}

	if rest, ok := strings.CutPrefix(canon, "IAU_"); ok {
		body, err := ephemeris.ResolveBody(rest)
		if err != nil {
			return Frame{}, errs.Newf(errs.ErrFrameBody, "frames.parse",
				"unknown body in frame %q", name)
		}
		model, ok := iauModels[strings.ToLower(rest)]
		if !ok {
			return Frame{}, errs.Newf(errs.ErrFrameBody, "frames.parse",
				"no orientation model for %q", name).
				WithAdvice("IAU frames are available for the Sun and the nine planets")
		}
		return Frame{Name: "IAU_" + rest, center: body, model: model}, nil
	}

	return Frame{}, errs.Newf(errs.ErrFrameUnknown, "frames.parse",
		"unrecognized frame %q", name).
		WithAdvice("expected J2000, ECLIPJ2000, or IAU_<body>")
}

// Center returns the frame's center body.
func (f Frame) Center() ephemeris.Body { return f.center }

// IsBodyFixed reports whether the frame rotates with a body.
func (f Frame) IsBodyFixed() bool { return f.model != nil }

// fromJ2000 returns the rotation (and its derivative) taking J2000
// equatorial coordinates into this frame at the given epoch.
func (f Frame) fromJ2000(jdTDB float64) (r, rdot *mat.Dense) {
	switch {
	case f.model != nil:
		return f.model.dcmFromJ2000(jdTDB)
	case f.Name == "ECLIPJ2000":
		return R1(obliquityJ2000), zero3()
	default:
		return identity3(), zero3()
	}
}

// Transform returns the 6×6 state transformation from one frame to another
// at a TDB julian date, the equivalent of a direction cosine matrix extended
// with the frame rate so velocities transform correctly.
func Transform(from, to Frame, jdTDB float64) *mat.Dense {
	sFrom := stateXform(from.fromJ2000(jdTDB))
	sTo := stateXform(to.fromJ2000(jdTDB))

	var out mat.Dense
	out.Mul(sTo, invStateXform(sFrom))
	return mat.DenseCopyOf(&out)
}

// Apply multiplies a 6×6 state transformation into a state vector.
func Apply(m *mat.Dense, st ephemeris.State) ephemeris.State {
	var out ephemeris.State
	for i := 0; i < 6; i++ {
		sum := 0.0
		for j := 0; j < 6; j++ {
			sum += m.At(i, j) * st[j]
		}
		out[i] = sum
	}
	return out
}
