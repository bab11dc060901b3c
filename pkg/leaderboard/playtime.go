package leaderboard

import (
	"time"

	"lolladder/pkg/config"
)

const hoursPerWeek = 24 * 7

// Clock provides time to the playtime estimate.
type Clock interface {
	Now() time.Time
}

// SystemClock returns the current wall-clock time.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }

// Weeks returns how many weeks the playtime is averaged over.
// The fixed value is used unless elapsed weeks are enabled and the reference date is in the past.
func Weeks(cfg config.PlaytimeConfiguration, clock Clock) float64 {
	if !cfg.Elapsed {
		return cfg.FixedWeeks
	}

	elapsed := clock.Now().Sub(cfg.ReferenceDate).Hours() / hoursPerWeek
	if elapsed <= 0 {
		return cfg.FixedWeeks
	}
	return elapsed
}
