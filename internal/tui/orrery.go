// Top-down ecliptic projection and character-grid plotting for the orrery.
package tui

import (
	"math"
	"strings"

	"github.com/astrodyn-tools/refframes/internal/ephemeris"
)

// scaleMode selects how radial distances map to screen space.
type scaleMode int

const (
	// scaleLog fits the whole solar system: r_display = log10(r_AU + 1).
	scaleLog scaleMode = iota
	// scaleInner is linear over 0–5 AU, outer planets clamp to the edge.
	scaleInner
	// scaleOuter gives the inner system half the radius, log beyond 5 AU.
	scaleOuter

	scaleModeCount
)

func (m scaleMode) String() string {
	switch m {
	case scaleInner:
		return "inner"
	case scaleOuter:
		return "outer"
	default:
		return "log"
	}
}

// maxLogRadius normalizes the log scale so Pluto's aphelion (~49 AU) sits at
// the plot edge.
var maxLogRadius = math.Log10(50 + 1)

// scaleRadius maps a heliocentric distance in AU onto [0, 1].
func scaleRadius(rAU float64, mode scaleMode) float64 {
	switch mode {
	case scaleInner:
		if rAU > 5 {
			return 1
		}
		return rAU / 5
	case scaleOuter:
		if rAU <= 5 {
			return rAU / 5 * 0.5
		}
		return math.Min(1, 0.5+math.Log10(rAU/5+1)*0.5)
	default:
		return math.Min(1, math.Log10(rAU+1)/maxLogRadius)
	}
}

// plotPoint is a projected planet position: x right toward the vernal
// equinox, y up, both normalized to [-1, 1].
type plotPoint struct {
	x, y   float64
	rAU    float64 // true heliocentric distance
	latDeg float64 // ecliptic latitude
	lonDeg float64 // ecliptic longitude
}

// projectEcliptic projects a heliocentric ecliptic state onto the plot plane.
func projectEcliptic(st ephemeris.State, mode scaleMode) plotPoint {
	xAU := st[0] / ephemeris.AU
	yAU := st[1] / ephemeris.AU
	zAU := st[2] / ephemeris.AU

	rPlane := math.Hypot(xAU, yAU)
	r3 := math.Sqrt(xAU*xAU + yAU*yAU + zAU*zAU)

	angle := math.Atan2(yAU, xAU)
	rd := scaleRadius(rPlane, mode)

	lon := angle * 180 / math.Pi
	if lon < 0 {
		lon += 360
	}
	lat := 0.0
	if r3 > 0 {
		lat = math.Asin(zAU/r3) * 180 / math.Pi
	}

	return plotPoint{
		x:      rd * math.Cos(angle),
		y:      rd * math.Sin(angle),
		rAU:    r3,
		latDeg: lat,
		lonDeg: lon,
	}
}

// plotBody pairs a planet with its projected position.
type plotBody struct {
	name  string
	glyph string
	pt    plotPoint
}

// planetGlyphs maps canonical planet names to their astronomical symbols.
var planetGlyphs = map[string]string{
	"Mercury": "☿",
	"Venus":   "♀",
	"Earth":   "⊕",
	"Mars":    "♂",
	"Jupiter": "♃",
	"Saturn":  "♄",
	"Uranus":  "⛢",
	"Neptune": "♆",
	"Pluto":   "♇",
}

// renderPlot draws the bodies onto a w×h character grid with the Sun at the
// center. The highlighted body is drawn in the accent style.
func renderPlot(bodies []plotBody, w, h, selected int, styles Styles) string {
	if w < 5 || h < 5 {
		return ""
	}

	grid := make([][]string, h)
	for i := range grid {
		grid[i] = make([]string, w)
		for j := range grid[i] {
			grid[i][j] = " "
		}
	}

	cx, cy := w/2, h/2
	grid[cy][cx] = styles.Sun.Render("☉")

	for i, b := range bodies {
		col := cx + int(math.Round(b.pt.x*float64(w/2-1)))
		row := cy - int(math.Round(b.pt.y*float64(h/2-1)))
		if col < 0 || col >= w || row < 0 || row >= h {
			continue
		}
		if row == cy && col == cx {
			continue // never overwrite the Sun
		}
		style := styles.Planet
		if i == selected {
			style = styles.BodySel
		}
		grid[row][col] = style.Render(b.glyph)
	}

	lines := make([]string, h)
	for i, r := range grid {
		lines[i] = strings.Join(r, "")
	}
	return strings.Join(lines, "\n")
}
