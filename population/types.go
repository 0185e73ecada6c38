// Package population defines core types, trait bounds, and sentinel
// errors for the population subpackage of github.com/katalvlaran/epidemic.
package population

import "errors"

// Sentinel errors for population construction.
var (
	// ErrNonPositiveSize indicates a requested population size ≤ 0.
	ErrNonPositiveSize = errors.New("population: size must be a positive integer")
	// ErrFractionRange indicates an initial infected fraction outside [0, 1].
	ErrFractionRange = errors.New("population: infected fraction must lie in [0, 1]")
)

// Status is an agent's health compartment. The declaration order is also
// the only legal transition order: Susceptible → Infected → Recovered.
// Recovered is absorbing; no agent ever re-enters an earlier status.
type Status int

const (
	// Susceptible agents have never been infected and may become Infected.
	Susceptible Status = iota
	// Infected agents transmit to contacts and progress toward recovery.
	Infected
	// Recovered agents are permanently out of the epidemic.
	Recovered
)

// String implements fmt.Stringer for log lines and test output.
func (s Status) String() string {
	switch s {
	case Susceptible:
		return "Susceptible"
	case Infected:
		return "Infected"
	case Recovered:
		return "Recovered"
	default:
		return "Unknown"
	}
}

// Trait bounds: ImmunePower and ContagionPower are drawn uniformly from
// [TraitMin, TraitMax] at construction and never change afterwards.
const (
	TraitMin = 5.0
	TraitMax = 85.0
)

// Agent is one simulated individual.
//
// Fields:
//   - ID             — 1-based, unique, stable for the run; used only to
//     index into the population, never reused.
//   - Status         — current health compartment (see Status).
//   - ImmunePower    — personal resistance score in [TraitMin, TraitMax].
//     It enters the transmission roll additively, so a higher value
//     raises this agent's chance of infection when exposed.
//   - ContagionPower — transmission score in [TraitMin, TraitMax]; a
//     higher value makes this agent a more effective source.
//   - DaysInfected   — number of completed days spent Infected. Stays 0
//     while Susceptible, increments once per day while Infected, and
//     freezes once the agent recovers.
type Agent struct {
	ID             int
	Status         Status
	ImmunePower    float64
	ContagionPower float64
	DaysInfected   int
}

// Population is an ordered, fixed-size collection of agents; index i
// holds the agent with ID i+1. It is created once per run and mutated
// in place by exactly one writer (the simulation engine).
type Population []Agent
