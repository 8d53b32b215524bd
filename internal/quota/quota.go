// Package quota implements the free-tier daily expense limit.
//
// The same Decide function backs both the read-only pre-check and the
// insertion path, so the two can never disagree.
package quota

import (
	"time"

	"github.com/mmynk/splitledger/internal/models"
)

// DefaultDailyLimit is the number of expenses a free user may add per calendar day.
const DefaultDailyLimit = 3

// Decision is the outcome of a quota check.
type Decision int

const (
	// NewDay means no expense was added today yet; the counter restarts at 1.
	NewDay Decision = iota
	// SameDay means another expense fits in today's quota (or the user is premium).
	SameDay
	// Exceeded means a free user has hit the limit for today.
	Exceeded
)

func (d Decision) String() string {
	switch d {
	case NewDay:
		return "new_day"
	case SameDay:
		return "same_day"
	case Exceeded:
		return "exceeded"
	default:
		return "unknown"
	}
}

// Allowed reports whether the decision admits a new expense.
func (d Decision) Allowed() bool {
	return d != Exceeded
}

// Gate applies the daily limit to the settings counters.
type Gate struct {
	Limit int
}

// NewGate returns a gate with the given limit. Non-positive limits fall back
// to DefaultDailyLimit.
func NewGate(limit int) Gate {
	if limit <= 0 {
		limit = DefaultDailyLimit
	}
	return Gate{Limit: limit}
}

// Today returns the calendar-day key for t in t's location.
func Today(t time.Time) string {
	return t.Format(models.DateLayout)
}

// Decide classifies adding one expense on day today given the current settings.
func (g Gate) Decide(settings models.AppSettings, today string) Decision {
	if settings.LastExpenseDate != today {
		return NewDay
	}
	if !settings.IsPremium && settings.DailyExpenseCount >= g.Limit {
		return Exceeded
	}
	return SameDay
}

// Allow reports whether an expense may be added on day today. It never mutates.
func (g Gate) Allow(settings models.AppSettings, today string) bool {
	return g.Decide(settings, today).Allowed()
}

// Record returns the settings after counting one expense on day today along
// with the decision taken. When the decision is Exceeded the settings are
// returned unchanged.
func (g Gate) Record(settings models.AppSettings, today string) (models.AppSettings, Decision) {
	d := g.Decide(settings, today)
	switch d {
	case NewDay:
		settings.DailyExpenseCount = 1
		settings.LastExpenseDate = today
	case SameDay:
		settings.DailyExpenseCount++
	}
	return settings, d
}
