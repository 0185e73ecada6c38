// Package sir advances a population through a discrete-day SIR epidemic
// and records the resulting Susceptible/Infected/Recovered curve.
//
// 🚀 What is sir?
//
//	The engine half of the epidemic module. Given a Population (see the
//	sibling package population) and a handful of knobs, it applies the
//	daily update rule for a fixed number of days:
//	  1. infected agents progress toward recovery (exact day threshold);
//	  2. every agent samples random contacts, with replacement, from the
//	     whole population;
//	  3. a susceptible agent exposed to an infected contact rolls d100
//	     against the pair's combined traits and may become Infected.
//	After each day one Record of aggregate counts is appended to the Log.
//
// ⚠️ Update semantics:
//
//	Agents update sequentially in ascending ID order, and a mutation made
//	earlier in a day is visible to every later agent the same day. This
//	asynchronous rule is deliberate and load-bearing: it produces
//	different trajectories than a snapshot-then-apply (synchronous) rule
//	and must not be "fixed" by parallelizing the inner loop.
//
// ⚙️ Usage:
//
//	cfg := sir.Config{
//	  PopulationSize:   1000,
//	  InfectedFraction: 0.02,
//	  Options:          sir.DefaultOptions(),
//	}
//	log, err := sir.Run(cfg, rand.New(rand.NewSource(42)))
//	if err != nil {
//	  // invalid configuration; nothing was simulated
//	}
//	day, peak := log.PeakInfected()
//
// Reproducibility:
//
//   - one injectable *rand.Rand drives every draw of a run;
//   - equal seeds + equal configuration ⇒ byte-identical Logs;
//   - parallel parameter sweeps must give each run its own Population
//     and its own *rand.Rand — runs never share mutable state.
//
// See examples in example_test.go and runnable demos under examples/.
package sir
