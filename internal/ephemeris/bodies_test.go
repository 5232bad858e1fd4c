package ephemeris

import (
	"testing"

	"github.com/mshafiee/jpl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveBodyCaseInsensitive(t *testing.T) {
	// Mars specifically, because the kernel uses the barycenter name for it.
	b, err := ResolveBody("mArS")
	require.NoError(t, err)
	assert.Equal(t, "Mars Barycenter", b.Name)
	assert.Equal(t, jpl.Mars, b.Slot())
}

func TestResolveBodyBarycenterList(t *testing.T) {
	for _, name := range []string{"mars", "jupiter", "saturn", "uranus", "neptune", "pluto"} {
		b, err := ResolveBody(name)
		require.NoError(t, err, name)
		assert.Contains(t, b.Name, "Barycenter", name)
	}
}

func TestResolveBodyInnerPlanetsKeepTheirName(t *testing.T) {
	for _, name := range []string{"Mercury", "Venus", "Earth"} {
		b, err := ResolveBody(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, b.Name)
	}
}

func TestResolveBodyBarycenterAliases(t *testing.T) {
	for _, alias := range []string{"Mars Barycenter", "mars_barycenter", "MARS BARYCENTER"} {
		b, err := ResolveBody(alias)
		require.NoError(t, err, alias)
		assert.Equal(t, "Mars Barycenter", b.Name)
		assert.Equal(t, jpl.Mars, b.Slot())
	}
}

func TestResolveBodyUnknown(t *testing.T) {
	_, err := ResolveBody("Krypton")
	assert.Error(t, err)
}

func TestStateHelpers(t *testing.T) {
	s := State{1, 2, 3, 4, 5, 6}
	assert.Equal(t, [3]float64{1, 2, 3}, s.R())
	assert.Equal(t, [3]float64{4, 5, 6}, s.V())
	assert.Equal(t, State{2, 4, 6, 8, 10, 12}, s.Add(s))
	assert.Equal(t, State{-1, -2, -3, -4, -5, -6}, s.Neg())
}
