package population

import (
	"math/rand"
	"time"
)

// New — Population construction
//
// Description:
//
//	New draws a fresh population of n agents. Each agent independently
//	starts Infected with probability infectedFraction, otherwise
//	Susceptible (nobody starts Recovered). ImmunePower and
//	ContagionPower are drawn independently and uniformly from
//	[TraitMin, TraitMax]; DaysInfected starts at 0 for everyone.
//
// Randomness:
//
//	All draws come from rng, in a single sequential stream: for agent
//	1, then agent 2, … — one status draw followed by two trait draws
//	per agent. Two calls with equally seeded rngs produce identical
//	populations. A nil rng falls back to a time-seeded stream, which
//	is convenient for demos but unsuitable for reproducible runs.
//
// Complexity: O(n) time, O(n) memory.
//
// Errors:
//   - ErrNonPositiveSize — n ≤ 0.
//   - ErrFractionRange   — infectedFraction outside [0, 1].
func New(n int, infectedFraction float64, rng *rand.Rand) (Population, error) {
	if n <= 0 {
		return nil, ErrNonPositiveSize
	}
	if infectedFraction < 0 || infectedFraction > 1 {
		return nil, ErrFractionRange
	}
	rng = rngOrDefault(rng)

	pop := make(Population, n)
	for i := range pop {
		status := Susceptible
		if rng.Float64() < infectedFraction {
			status = Infected
		}
		pop[i] = Agent{
			ID:             i + 1,
			Status:         status,
			ImmunePower:    uniformTrait(rng),
			ContagionPower: uniformTrait(rng),
		}
	}

	return pop, nil
}

// Len returns the number of agents.
func (p Population) Len() int { return len(p) }

// Counts returns the number of agents currently in each compartment.
// The three counts always sum to Len().
func (p Population) Counts() (susceptible, infected, recovered int) {
	for i := range p {
		switch p[i].Status {
		case Susceptible:
			susceptible++
		case Infected:
			infected++
		case Recovered:
			recovered++
		}
	}

	return susceptible, infected, recovered
}

// Clone returns a deep copy of the population. Use it to snapshot state
// for inspection while the original remains owned by a running engine.
func (p Population) Clone() Population {
	if p == nil {
		return nil
	}
	out := make(Population, len(p))
	copy(out, p)

	return out
}

// uniformTrait draws one trait value uniformly from [TraitMin, TraitMax].
func uniformTrait(rng *rand.Rand) float64 {
	return TraitMin + rng.Float64()*(TraitMax-TraitMin)
}

// rngOrDefault substitutes a time-seeded stream when the caller passed nil.
func rngOrDefault(rng *rand.Rand) *rand.Rand {
	if rng != nil {
		return rng
	}

	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
