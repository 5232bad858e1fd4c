// IAU pole and prime-meridian models for the body-fixed IAU_* frames.
// Constants follow the pck00010.tpc planetary constants kernel; Jupiter and
// Neptune carry only the leading periodic term the kernel lists.
package frames

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

const deg2rad = math.Pi / 180

// julianCentury is the number of days in a julian century.
const julianCentury = 36525.0

// iauModel holds a body's pole right ascension, declination, and prime
// meridian polynomials. Angles in degrees; rates per julian century (pole)
// and per day (prime meridian).
type iauModel struct {
	ra0, ra1   float64
	dec0, dec1 float64
	w0, w1     float64
	// periodic adds the body's periodic corrections, if any.
	// T in julian centuries past J2000 TDB. Returns degrees.
	periodic func(T float64) (dra, ddec, dw float64)
}

// iauModels indexes the supported bodies by lower-case name.
// The Moon's orientation needs the full lunar libration series and is
// deliberately absent; kernels carry it as numeric data, not polynomials.
var iauModels = map[string]*iauModel{
	"sun":     {ra0: 286.13, dec0: 63.87, w0: 84.176, w1: 14.1844000},
	"mercury": {ra0: 281.0097, ra1: -0.0328, dec0: 61.4143, dec1: -0.0049, w0: 329.5469, w1: 6.1385025},
	"venus":   {ra0: 272.76, dec0: 67.16, w0: 160.20, w1: -1.4813688},
	"earth":   {ra0: 0.00, ra1: -0.641, dec0: 90.00, dec1: -0.557, w0: 190.147, w1: 360.9856235},
	"mars":    {ra0: 317.68143, ra1: -0.1061, dec0: 52.88650, dec1: -0.0609, w0: 176.630, w1: 350.89198226},
	"jupiter": {ra0: 268.056595, ra1: -0.006499, dec0: 64.495303, dec1: 0.002413, w0: 284.95, w1: 870.5360000},
	"saturn":  {ra0: 40.589, ra1: -0.036, dec0: 83.537, dec1: -0.004, w0: 38.90, w1: 810.7939024},
	"uranus":  {ra0: 257.311, dec0: -15.175, w0: 203.81, w1: -501.1600928},
	"neptune": {
		ra0: 299.36, dec0: 43.46, w0: 253.18, w1: 536.3128492,
		periodic: func(T float64) (float64, float64, float64) {
			n := (357.85 + 52.316*T) * deg2rad
			return 0.70 * math.Sin(n), -0.51 * math.Cos(n), -0.48 * math.Sin(n)
		},
	},
	"pluto": {ra0: 132.993, dec0: -6.163, w0: 302.695, w1: 56.3625225},
}

// angles evaluates the model at a TDB julian date. Returns the pole right
// ascension, declination, and prime meridian angle in radians, plus the
// prime meridian rate in rad/s.
func (m *iauModel) angles(jdTDB float64) (ra, dec, w, wdot float64) {
	d := jdTDB - 2451545.0
	T := d / julianCentury

	raDeg := m.ra0 + m.ra1*T
	decDeg := m.dec0 + m.dec1*T
	wDeg := m.w0 + m.w1*d
	if m.periodic != nil {
		dra, ddec, dw := m.periodic(T)
		raDeg += dra
		decDeg += ddec
		wDeg += dw
	}

	ra = raDeg * deg2rad
	dec = decDeg * deg2rad
	w = math.Mod(wDeg*deg2rad, 2*math.Pi)
	wdot = m.w1 * deg2rad / 86400.0
	return ra, dec, w, wdot
}

// dcmFromJ2000 builds the rotation from the J2000 equatorial frame into the
// body-fixed frame, with its time derivative. The 3-1-3 sequence is
// R3(W)·R1(π/2−δ)·R3(π/2+α); only the prime meridian angle moves fast
// enough to matter for the derivative.
func (m *iauModel) dcmFromJ2000(jdTDB float64) (r, rdot *mat.Dense) {
	ra, dec, w, wdot := m.angles(jdTDB)

	θ1 := math.Pi/2 + ra
	θ2 := math.Pi/2 - dec

	r = R3R1R3(θ1, θ2, w)

	// Ṙ = Ẇ · dR3(W)/dW · R1(θ2) · R3(θ1)
	var inner, d mat.Dense
	inner.Mul(R1(θ2), R3(θ1))
	d.Mul(dR3(w), &inner)
	d.Scale(wdot, &d)
	rdot = mat.DenseCopyOf(&d)
	return r, rdot
}
