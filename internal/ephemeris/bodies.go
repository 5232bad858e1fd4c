// Body table and name resolution for the DE kernel.
package ephemeris

import (
	"strings"

	"github.com/mshafiee/jpl"

	"github.com/astrodyn-tools/refframes/pkg/errs"
)

// Body identifies a celestial body backed by a DE kernel slot.
type Body struct {
	Name string            // canonical display name, e.g. "Mars Barycenter"
	slot jpl.CelestialBody // DE kernel slot
}

// Slot returns the underlying DE kernel slot.
func (b Body) Slot() jpl.CelestialBody { return b.slot }

// Sun is the center used for all heliocentric lookups.
var Sun = Body{Name: "Sun", slot: jpl.Sun}

// Moon is Earth's moon.
var Moon = Body{Name: "Moon", slot: jpl.Moon}

// barycenterBodies is the fixed list of planets whose DE kernel entry is the
// planetary-system barycenter, per the DE430/431 release notes. Their
// canonical name carries the Barycenter suffix; the kernel slot is unchanged
// because the planetary slots for these bodies hold the barycenter series.
var barycenterBodies = map[string]bool{
	"mars":    true,
	"jupiter": true,
	"saturn":  true,
	"uranus":  true,
	"neptune": true,
	"pluto":   true,
}

var bodySlots = map[string]jpl.CelestialBody{
	"mercury": jpl.Mercury,
	"venus":   jpl.Venus,
	"earth":   jpl.Earth,
	"mars":    jpl.Mars,
	"jupiter": jpl.Jupiter,
	"saturn":  jpl.Saturn,
	"uranus":  jpl.Uranus,
	"neptune": jpl.Neptune,
	"pluto":   jpl.Pluto,
	"moon":    jpl.Moon,
	"sun":     jpl.Sun,
}

// ResolveBody maps a case-insensitive body name onto its kernel slot,
// substituting the barycenter name for the bodies in the fixed list.
// "mArS", "Mars Barycenter", and "mars_barycenter" all resolve identically.
func ResolveBody(name string) (Body, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.ReplaceAll(key, "_", " ")
	key = strings.TrimSuffix(key, " barycenter")

	slot, ok := bodySlots[key]
	if !ok {
		return Body{}, errs.Newf(errs.ErrBodyUnknown, "ephemeris.resolve",
			"undefined body %q", name).
			WithAdvice("known bodies: Mercury through Pluto, Moon, Sun")
	}

	canonical := strings.ToUpper(key[:1]) + key[1:]
	if barycenterBodies[key] {
		canonical += " Barycenter"
	}
	return Body{Name: canonical, slot: slot}, nil
}
