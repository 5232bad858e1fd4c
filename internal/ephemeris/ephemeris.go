// Package ephemeris wraps the JPL DE kernel reader behind a small Source
// interface. All states are geometric (no aberration), in km and km/s,
// in the J2000 equatorial frame the kernels are distributed in.
package ephemeris

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/mshafiee/jpl"

	"github.com/astrodyn-tools/refframes/pkg/errs"
)

// AU is one astronomical unit in kilometers.
const AU = 149597870.7

// State is a six-component state vector: position in km, velocity in km/s.
type State [6]float64

// R returns the position components.
func (s State) R() [3]float64 { return [3]float64{s[0], s[1], s[2]} }

// V returns the velocity components.
func (s State) V() [3]float64 { return [3]float64{s[3], s[4], s[5]} }

// Add returns the component-wise sum of two states.
func (s State) Add(o State) State {
	var out State
	for i := range s {
		out[i] = s[i] + o[i]
	}
	return out
}

// Neg returns the component-wise negation.
func (s State) Neg() State {
	var out State
	for i := range s {
		out[i] = -s[i]
	}
	return out
}

// String prints the state as a bracketed component list, the output format
// the downstream mission tooling parses.
func (s State) String() string {
	return fmt.Sprintf("[%.12f, %.12f, %.12f, %.12f, %.12f, %.12f]",
		s[0], s[1], s[2], s[3], s[4], s[5])
}

// ParseState parses a bracketed six-component state string, the format
// String produces: "[x, y, z, vx, vy, vz]". Brackets are optional.
func ParseState(s string) (State, error) {
	trimmed := strings.TrimSpace(s)
	trimmed = strings.TrimPrefix(trimmed, "[")
	trimmed = strings.TrimSuffix(trimmed, "]")

	parts := strings.Split(trimmed, ",")
	if len(parts) != 6 {
		return State{}, errs.Newf(errs.ErrStateVector, "ephemeris.parsestate",
			"expected 6 components, got %d", len(parts)).
			WithAdvice("pass the state as [x, y, z, vx, vy, vz] in km and km/s")
	}

	var st State
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return State{}, errs.Newf(errs.ErrStateVector, "ephemeris.parsestate",
				"component %d: %q is not a number", i, strings.TrimSpace(p))
		}
		st[i] = v
	}
	return st, nil
}

// Source yields body-relative state vectors at a TDB julian date.
type Source interface {
	// StateKm returns the state of target relative to center, J2000 equatorial, km and km/s.
	StateKm(jdTDB float64, target, center Body) (State, error)
}

// ─────────────────────────────────────────────────────────────────────────────
// DE kernel
// ─────────────────────────────────────────────────────────────────────────────

// Kernel is a Source backed by a binary JPL DE ephemeris file.
// Lookups share the reader's interpolation buffers, so they are serialized.
type Kernel struct {
	mu      sync.Mutex
	js      *jpl.JPL
	path    string
	startJD float64
	endJD   float64
	denum   int32
}

// OpenKernel opens the DE kernel at path and switches it to km output.
func OpenKernel(path string) (*Kernel, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.Wrap(err, errs.ErrKernelOpen, "ephemeris.open").
			WithResource(path).
			WithAdvice("set ephemeris.kernel to a binary JPL DE file (e.g. linux_p1550p2650.430)")
	}

	js, ss, err := jpl.NewJPL(f)
	if err != nil {
		f.Close()
		return nil, errs.Wrap(err, errs.ErrKernelOpen, "ephemeris.read").WithResource(path)
	}
	js.DoKm = true

	return &Kernel{
		js:      js,
		path:    path,
		startJD: ss[0],
		endJD:   ss[1],
		denum:   js.GetDenum(),
	}, nil
}

// Coverage returns the kernel's valid julian date range.
func (k *Kernel) Coverage() (startJD, endJD float64) {
	return k.startJD, k.endJD
}

// DENumber returns the kernel's DE series number (e.g. 430).
func (k *Kernel) DENumber() int32 { return k.denum }

// Path returns the kernel file path.
func (k *Kernel) Path() string { return k.path }

// StateKm implements Source.
func (k *Kernel) StateKm(jdTDB float64, target, center Body) (State, error) {
	if jdTDB < k.startJD || jdTDB > k.endJD {
		return State{}, errs.Newf(errs.ErrKernelRange, "ephemeris.lookup",
			"epoch JD %.6f outside kernel coverage [%.2f, %.2f]", jdTDB, k.startJD, k.endJD).
			WithResource(k.path)
	}

	k.mu.Lock()
	rrd, err := k.js.EphemerisLookup(jdTDB, target.slot, center.slot)
	k.mu.Unlock()
	if err != nil {
		return State{}, errs.Wrap(err, errs.ErrLookupFailed, "ephemeris.lookup").
			WithResource(target.Name)
	}

	var st State
	copy(st[:], rrd)
	return st, nil
}

// Close releases the kernel file.
func (k *Kernel) Close() error {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.js.JplFile.Close()
}

// HelioState returns the heliocentric state of the named planet, applying the
// barycenter name substitution before the lookup.
func HelioState(src Source, planet string, jdTDB float64) (Body, State, error) {
	body, err := ResolveBody(planet)
	if err != nil {
		return Body{}, State{}, err
	}
	st, err := src.StateKm(jdTDB, body, Sun)
	if err != nil {
		return Body{}, State{}, err
	}
	return body, st, nil
}
