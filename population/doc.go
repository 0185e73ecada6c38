// Package population models the individuals an epidemic runs through:
// a fixed, ordered collection of agents, each carrying a health status,
// two immutable personal traits, and an infection-day counter.
//
// 🚀 What is population?
//
//	The state half of the epidemic module. It knows nothing about
//	transmission rules or time — it only answers two questions:
//	  • what does one agent look like? (Agent, Status)
//	  • how is a fresh population of N agents drawn? (New)
//
// ✨ Key features:
//   - explicit, injectable randomness: New takes a *rand.Rand, so tests
//     and parallel parameter sweeps stay fully reproducible
//   - uniform personal traits in [TraitMin, TraitMax], fixed for life
//   - Counts() aggregation used by the engine to build its daily log
//   - Clone() snapshots for safe post-run inspection
//
// ⚙️ Usage:
//
//	rng := rand.New(rand.NewSource(42))
//	pop, err := population.New(1000, 0.05, rng)
//	if err != nil {
//	  // ErrNonPositiveSize or ErrFractionRange
//	}
//	s, i, r := pop.Counts()
//
// The simulation engine lives in the sibling package sir; it mutates a
// Population in place, one day at a time.
package population
