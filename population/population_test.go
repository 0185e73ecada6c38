package population_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/katalvlaran/epidemic/population"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// Construction Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects non-positive sizes and
// out-of-range infected fractions before creating any state.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name     string
		n        int
		fraction float64
		err      error
	}{
		{"ZeroSize", 0, 0.1, population.ErrNonPositiveSize},
		{"NegativeSize", -5, 0.1, population.ErrNonPositiveSize},
		{"FractionBelowZero", 10, -0.01, population.ErrFractionRange},
		{"FractionAboveOne", 10, 1.01, population.ErrFractionRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pop, err := population.New(tc.n, tc.fraction, rand.New(rand.NewSource(1)))
			assert.Nil(t, pop, "no population may be created on invalid input")
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%d, %v) error = %v; want %v", tc.n, tc.fraction, err, tc.err)
			}
		})
	}
}

// TestNew_AgentInvariants checks IDs, trait bounds, and the zeroed
// infection counter across a freshly drawn population.
func TestNew_AgentInvariants(t *testing.T) {
	const n = 500
	pop, err := population.New(n, 0.2, rand.New(rand.NewSource(7)))
	require.NoError(t, err, "valid input must not error")
	require.Len(t, pop, n, "population holds exactly n agents")

	for i, a := range pop {
		assert.Equal(t, i+1, a.ID, "IDs are 1-based and ordered")
		assert.GreaterOrEqual(t, a.ImmunePower, population.TraitMin, "immune power lower bound")
		assert.Less(t, a.ImmunePower, population.TraitMax, "immune power upper bound")
		assert.GreaterOrEqual(t, a.ContagionPower, population.TraitMin, "contagion power lower bound")
		assert.Less(t, a.ContagionPower, population.TraitMax, "contagion power upper bound")
		assert.Zero(t, a.DaysInfected, "nobody has served infection days yet")
		assert.NotEqual(t, population.Recovered, a.Status, "nobody starts Recovered")
	}
}

// TestNew_FractionExtremes verifies the two degenerate initial draws:
// fraction 0 yields no infections, fraction 1 infects everyone.
func TestNew_FractionExtremes(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	pop, err := population.New(100, 0, rng)
	require.NoError(t, err)
	s, i, r := pop.Counts()
	assert.Equal(t, 100, s, "fraction 0: all susceptible")
	assert.Zero(t, i)
	assert.Zero(t, r)

	pop, err = population.New(100, 1, rng)
	require.NoError(t, err)
	s, i, r = pop.Counts()
	assert.Zero(t, s)
	assert.Equal(t, 100, i, "fraction 1: all infected")
	assert.Zero(t, r)
}

// TestNew_Deterministic ensures two equally seeded draws produce
// identical populations, agent for agent.
func TestNew_Deterministic(t *testing.T) {
	popA, err := population.New(300, 0.15, rand.New(rand.NewSource(99)))
	require.NoError(t, err)
	popB, err := population.New(300, 0.15, rand.New(rand.NewSource(99)))
	require.NoError(t, err)

	assert.Equal(t, popA, popB, "equal seeds must yield identical populations")
}

//----------------------------------------------------------------------------//
// Counts and Clone Tests
//----------------------------------------------------------------------------//

// TestCounts_SumsToLen checks the conservation invariant on a mixed
// handcrafted population.
func TestCounts_SumsToLen(t *testing.T) {
	pop := population.Population{
		{ID: 1, Status: population.Susceptible},
		{ID: 2, Status: population.Infected, DaysInfected: 2},
		{ID: 3, Status: population.Recovered, DaysInfected: 7},
		{ID: 4, Status: population.Infected, DaysInfected: 1},
	}

	s, i, r := pop.Counts()
	assert.Equal(t, 1, s)
	assert.Equal(t, 2, i)
	assert.Equal(t, 1, r)
	assert.Equal(t, pop.Len(), s+i+r, "counts must sum to the population size")
}

// TestClone_Independent verifies that mutating a clone leaves the
// original untouched, and vice versa.
func TestClone_Independent(t *testing.T) {
	pop, err := population.New(50, 0.5, rand.New(rand.NewSource(3)))
	require.NoError(t, err)

	snap := pop.Clone()
	require.Equal(t, pop, snap, "a fresh clone matches the original")

	snap[0].Status = population.Recovered
	snap[0].DaysInfected = 42
	assert.NotEqual(t, pop[0], snap[0], "clone mutation must not leak back")

	assert.Nil(t, population.Population(nil).Clone(), "cloning nil stays nil")
}

// TestStatus_String covers the Stringer, including the out-of-range case.
func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Susceptible", population.Susceptible.String())
	assert.Equal(t, "Infected", population.Infected.String())
	assert.Equal(t, "Recovered", population.Recovered.String())
	assert.Equal(t, "Unknown", population.Status(42).String())
}
