package sir

import (
	"math/rand"
	"time"

	"github.com/katalvlaran/epidemic/population"
)

// Run — full simulation from configuration
//
// Description:
//
//	Run validates cfg, draws a fresh population of cfg.PopulationSize
//	agents (each starting Infected with probability
//	cfg.InfectedFraction), and advances it through cfg.Days daily ticks
//	via Simulate. The same rng stream drives the initial status draws,
//	the trait draws, every contact sample, and every infection roll, so
//	a fixed seed reproduces the run exactly.
//
// Errors:
//   - population.ErrNonPositiveSize, population.ErrFractionRange — bad
//     population parameters.
//   - ErrNonPositiveDays, ErrNegativeContacts, ErrNonPositiveRecovery —
//     bad engine options.
//
// All validation happens before any state is created; on error the
// returned Log is nil.
func Run(cfg Config, rng *rand.Rand) (Log, error) {
	if err := cfg.Options.validate(); err != nil {
		return nil, err
	}
	rng = rngOrDefault(rng)

	pop, err := population.New(cfg.PopulationSize, cfg.InfectedFraction, rng)
	if err != nil {
		return nil, err
	}

	return Simulate(pop, cfg.Options, rng)
}

// Simulate — the daily update loop
//
// Description:
//
//	Simulate advances pop through exactly opts.Days ticks, mutating it
//	in place, and returns one Record of aggregate counts per day. The
//	engine is the population's only writer for the duration of the
//	call; callers wanting mid-run inspection should work on a Clone.
//
// Algorithm Outline (one day):
//
//	For each agent a in ascending ID order:
//	  1. if a is Infected, increment a.DaysInfected;
//	  2. if a.DaysInfected now equals opts.RecoveryThreshold exactly,
//	     a becomes Recovered — on precisely the day the counter first
//	     reaches the threshold, never before or after;
//	  3. draw opts.ContactsPerDay agent indices uniformly at random
//	     with replacement from the whole population (a itself may be
//	     drawn; a self-encounter consumes the slot and does nothing);
//	  4. for each sampled contact c: if a is still Susceptible at this
//	     moment and c is Infected, roll a uniform integer in [1, 100];
//	     a becomes Infected iff
//	         roll < (a.ImmunePower + c.ContagionPower) / 2.
//	After all agents are processed, append the day's counts to the Log.
//
// The traversal is sequential and asynchronous: status changes made by
// step 2 or step 4 are visible to all later agents within the same day,
// and to later contacts within the same agent's sample. An agent
// infected today has passed its own steps 1–2 already, so its
// DaysInfected first increments tomorrow.
//
// The loop always runs all opts.Days ticks — a burned-out epidemic
// keeps logging flat tails, and a fully susceptible population logs
// zeros for Infected throughout.
//
// Complexity: O(Days · N · ContactsPerDay) time, O(Days) extra memory.
//
// Errors:
//   - ErrNonPositiveDays, ErrNegativeContacts, ErrNonPositiveRecovery —
//     invalid opts; pop is untouched.
func Simulate(pop population.Population, opts Options, rng *rand.Rand) (Log, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	rng = rngOrDefault(rng)

	log := make(Log, 0, opts.Days)
	for day := 1; day <= opts.Days; day++ {
		tick(pop, opts, rng)

		s, i, r := pop.Counts()
		log = append(log, Record{Day: day, Susceptible: s, Infected: i, Recovered: r})
	}

	return log, nil
}

// tick applies one day of recovery progression and transmission to pop,
// in ascending ID order.
func tick(pop population.Population, opts Options, rng *rand.Rand) {
	n := len(pop)
	if n == 0 {
		return
	}
	for i := range pop {
		a := &pop[i]

		// Recovery progression, then exact-equality threshold check.
		if a.Status == population.Infected {
			a.DaysInfected++
			if a.DaysInfected == opts.RecoveryThreshold {
				a.Status = population.Recovered
			}
		}

		// Fixed-size contact sample, with replacement, self included.
		for k := 0; k < opts.ContactsPerDay; k++ {
			c := &pop[rng.Intn(n)]
			if a.Status != population.Susceptible || c.Status != population.Infected {
				continue
			}
			roll := rng.Intn(100) + 1 // uniform in [1, 100]
			if float64(roll) < (a.ImmunePower+c.ContagionPower)/2 {
				a.Status = population.Infected
			}
		}
	}
}

// validate reports the first invalid engine option, if any.
func (o Options) validate() error {
	if o.Days <= 0 {
		return ErrNonPositiveDays
	}
	if o.ContactsPerDay < 0 {
		return ErrNegativeContacts
	}
	if o.RecoveryThreshold <= 0 {
		return ErrNonPositiveRecovery
	}

	return nil
}

// rngOrDefault substitutes a time-seeded stream when the caller passed nil.
func rngOrDefault(rng *rand.Rand) *rand.Rand {
	if rng != nil {
		return rng
	}

	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
