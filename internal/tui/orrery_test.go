package tui

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/astrodyn-tools/refframes/internal/ephemeris"
)

func TestScaleRadiusStaysNormalized(t *testing.T) {
	for _, mode := range []scaleMode{scaleLog, scaleInner, scaleOuter} {
		for _, r := range []float64{0, 0.38, 1, 5.2, 9.5, 30, 49} {
			got := scaleRadius(r, mode)
			assert.GreaterOrEqual(t, got, 0.0, "%s r=%v", mode, r)
			assert.LessOrEqual(t, got, 1.0, "%s r=%v", mode, r)
		}
	}
}

func TestScaleRadiusIsMonotonic(t *testing.T) {
	for _, mode := range []scaleMode{scaleLog, scaleOuter} {
		prev := -1.0
		for r := 0.0; r < 45; r += 0.5 {
			got := scaleRadius(r, mode)
			assert.GreaterOrEqual(t, got, prev, "%s r=%v", mode, r)
			prev = got
		}
	}
}

func TestProjectEclipticAngles(t *testing.T) {
	// 1 AU on +X: zero longitude, zero latitude, unit distance.
	st := ephemeris.State{ephemeris.AU, 0, 0, 0, 0, 0}
	pt := projectEcliptic(st, scaleInner)

	assert.InDelta(t, 0.0, pt.lonDeg, 1e-9)
	assert.InDelta(t, 0.0, pt.latDeg, 1e-9)
	assert.InDelta(t, 1.0, pt.rAU, 1e-9)
	assert.InDelta(t, 0.2, pt.x, 1e-9) // 1 AU / 5 AU linear scale
	assert.InDelta(t, 0.0, pt.y, 1e-9)

	// -Y maps to 270° longitude.
	st = ephemeris.State{0, -ephemeris.AU, 0, 0, 0, 0}
	pt = projectEcliptic(st, scaleInner)
	assert.InDelta(t, 270.0, pt.lonDeg, 1e-9)
	assert.True(t, pt.y < 0)
}

func TestProjectEclipticLatitude(t *testing.T) {
	// 45° out of the plane.
	d := ephemeris.AU / math.Sqrt2
	st := ephemeris.State{d, 0, d, 0, 0, 0}
	pt := projectEcliptic(st, scaleLog)
	assert.InDelta(t, 45.0, pt.latDeg, 1e-9)
}

func TestRenderPlotPlacesSunAndPlanets(t *testing.T) {
	styles := newStyles()
	bodies := []plotBody{
		{name: "Earth", glyph: "⊕", pt: plotPoint{x: 0.5, y: 0}},
	}

	out := renderPlot(bodies, 21, 11, -1, styles)
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 11)

	assert.Contains(t, out, "☉")
	assert.Contains(t, out, "⊕")

	// Sun sits on the middle row; Earth shares it at +x.
	assert.Contains(t, lines[5], "☉")
	assert.Contains(t, lines[5], "⊕")
}

func TestRenderPlotClampsTinyWindows(t *testing.T) {
	assert.Equal(t, "", renderPlot(nil, 2, 2, -1, newStyles()))
}
