// Package sir defines options, configuration, the Time-Series Log, and
// sentinel errors for the sir subpackage of github.com/katalvlaran/epidemic.
package sir

import "errors"

// Sentinel errors for engine configuration. All are reported before any
// simulation state is created or mutated.
var (
	// ErrNonPositiveDays indicates a run length ≤ 0 days.
	ErrNonPositiveDays = errors.New("sir: days must be a positive integer")
	// ErrNegativeContacts indicates a negative per-agent daily contact count.
	ErrNegativeContacts = errors.New("sir: contacts per day must be non-negative")
	// ErrNonPositiveRecovery indicates a recovery threshold ≤ 0 days.
	ErrNonPositiveRecovery = errors.New("sir: recovery threshold must be a positive integer")
)

// Options holds the engine knobs that are independent of how the
// population itself is drawn.
//
// Fields:
//   - Days              — number of daily ticks to run; the loop always
//     runs to completion even if the epidemic burns out early.
//   - ContactsPerDay    — size of each agent's daily contact sample,
//     drawn uniformly with replacement from the whole population
//     (self-draws are allowed and are transmission no-ops).
//   - RecoveryThreshold — an infected agent becomes Recovered on the
//     exact day its DaysInfected counter reaches this value.
type Options struct {
	Days              int
	ContactsPerDay    int
	RecoveryThreshold int
}

// DefaultOptions returns Options with conventional settings:
// 120 days, 3 contacts per agent per day, recovery after 7 days.
func DefaultOptions() Options {
	return Options{
		Days:              120,
		ContactsPerDay:    3,
		RecoveryThreshold: 7,
	}
}

// Config is the full input contract of a run: how to draw the population
// plus the engine Options.
type Config struct {
	// PopulationSize is the number of agents N; must be positive.
	PopulationSize int
	// InfectedFraction is each agent's independent probability of
	// starting Infected; must lie in [0, 1].
	InfectedFraction float64

	Options
}

// Record is one day's aggregate counts. The three counts are always
// non-negative and sum to the population size.
type Record struct {
	Day         int
	Susceptible int
	Infected    int
	Recovered   int
}

// Log is the Time-Series Log of a run: one Record per simulated day,
// appended in order, immutable once the run completes.
type Log []Record

// Final returns the last record of the log, or the zero Record for an
// empty log.
func (l Log) Final() Record {
	if len(l) == 0 {
		return Record{}
	}

	return l[len(l)-1]
}

// PeakInfected returns the day with the highest infected count and that
// count. Ties resolve to the earliest day; an empty log yields (0, 0).
func (l Log) PeakInfected() (day, count int) {
	for _, rec := range l {
		if rec.Infected > count {
			day, count = rec.Day, rec.Infected
		}
	}

	return day, count
}
