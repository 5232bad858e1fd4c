package frames

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/astrodyn-tools/refframes/internal/ephemeris"
)

func TestParseCanonicalNames(t *testing.T) {
	cases := map[string]string{
		"j2000":      "J2000",
		"EclipJ2000": "ECLIPJ2000",
		"ECLIPJ2000": "ECLIPJ2000",
		"IAU_Earth":  "IAU_EARTH",
		"iau_mars":   "IAU_MARS",
	}
	for in, want := range cases {
		f, err := Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, f.Name)
	}
}

func TestParseCenters(t *testing.T) {
	f, err := Parse("IAU_Mars")
	require.NoError(t, err)
	assert.Equal(t, "Mars Barycenter", f.Center().Name)
	assert.True(t, f.IsBodyFixed())

	j, err := Parse("J2000")
	require.NoError(t, err)
	assert.Equal(t, "Sun", j.Center().Name)
	assert.False(t, j.IsBodyFixed())
}

func TestParseRejects(t *testing.T) {
	_, err := Parse("B1950")
	assert.Error(t, err)

	_, err = Parse("IAU_Krypton")
	assert.Error(t, err)

	// The Moon has no polynomial orientation model.
	_, err = Parse("IAU_Moon")
	assert.Error(t, err)
}

func TestRotationsAreOrthonormal(t *testing.T) {
	jd := 2457472.3623611112 // 2016-03-24T20:41:48

	for _, name := range []string{"IAU_EARTH", "IAU_MARS", "IAU_JUPITER", "IAU_NEPTUNE", "ECLIPJ2000"} {
		f, err := Parse(name)
		require.NoError(t, err)

		r, _ := f.fromJ2000(jd)
		var prod mat.Dense
		prod.Mul(r, r.T())
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				want := 0.0
				if i == j {
					want = 1.0
				}
				assert.InDelta(t, want, prod.At(i, j), 1e-12, "%s [%d][%d]", name, i, j)
			}
		}
	}
}

func TestTransformRoundTripIsIdentity(t *testing.T) {
	jd := 2457472.3623611112

	from, err := Parse("IAU_Earth")
	require.NoError(t, err)
	to, err := Parse("EclipJ2000")
	require.NoError(t, err)

	var prod mat.Dense
	prod.Mul(Transform(to, from, jd), Transform(from, to, jd))
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			assert.InDelta(t, want, prod.At(i, j), 1e-12, "[%d][%d]", i, j)
		}
	}
}

func TestEclipticObliquity(t *testing.T) {
	// The +Y equatorial axis maps to (0, cos ε, −sin ε) in the ecliptic frame.
	st := frames6(0, 1, 0)
	got := Apply(Transform(J2000, EclipJ2000, 2451545.0), st)

	eps := 84381.448 / 3600.0 * math.Pi / 180
	assert.InDelta(t, 0.0, got[0], 1e-12)
	assert.InDelta(t, math.Cos(eps), got[1], 1e-12)
	assert.InDelta(t, -math.Sin(eps), got[2], 1e-12)
}

func TestBodyFixedVelocityPicksUpRotationRate(t *testing.T) {
	// A point at rest on Earth's equator moves at ω·R ≈ 0.4651 km/s in J2000.
	iau, err := Parse("IAU_Earth")
	require.NoError(t, err)

	const r = 6378.1363
	st := frames6(r, 0, 0)
	got := Apply(Transform(iau, J2000, 2457472.3623611112), st)

	speed := math.Sqrt(got[3]*got[3] + got[4]*got[4] + got[5]*got[5])
	const earthRate = 360.9856235 * math.Pi / 180 / 86400
	assert.InDelta(t, earthRate*r, speed, 1e-4)

	// Position magnitude is preserved by the rotation.
	rm := math.Sqrt(got[0]*got[0] + got[1]*got[1] + got[2]*got[2])
	assert.InDelta(t, r, rm, 1e-9)
}

func TestInertialTransformHasZeroRateBlock(t *testing.T) {
	m := Transform(J2000, EclipJ2000, 2457472.0)
	for i := 3; i < 6; i++ {
		for j := 0; j < 3; j++ {
			assert.InDelta(t, 0.0, m.At(i, j), 1e-15)
		}
	}
}

// frames6 builds a position-only state.
func frames6(x, y, z float64) ephemeris.State {
	return ephemeris.State{x, y, z, 0, 0, 0}
}
