package progression

import (
	"math"
	"time"
)

// Calculator computes all reward and vitality formulas. Every method is a
// total function over its documented input domain; out-of-domain input
// (negative XP, NaN multipliers) is a caller bug, not a runtime error case.
type Calculator struct {
	config Config
}

func NewCalculator(config Config) *Calculator {
	return &Calculator{config: config}
}

func (c *Calculator) Config() Config {
	return c.config
}

// XPGain returns the XP reward for one completed action: the configured base
// for the kind, scaled by the boost multiplier active at the given time,
// floored to an integer.
func (c *Calculator) XPGain(kind ActionKind, boost Boost, now time.Time) int {
	base := float64(c.config.BaseXP(kind))
	return int(math.Floor(base * boost.Active(now)))
}

// CoinGain derives the coin reward from an XP delta.
func (c *Calculator) CoinGain(xp int) int {
	return int(math.Floor(float64(xp) * c.config.CoinsPerXP))
}

// Vitality computes the 0-100 vitality score from the trailing-30-day XP sum,
// today's completion counts and the number of active days in the consistency
// window. The score is bonus-only: missed-habit and overdue penalties are
// applied by the daily close job on the server side, never here.
func (c *Calculator) Vitality(xp30d int, today DayStats, activeDays int) int {
	cfg := c.config

	score := xp30d * 100 / cfg.MonthlyTargetXP
	if score > 100 {
		score = 100
	}

	score += today.Goals * cfg.GoalBonus

	activity := today.Total() * cfg.ActivityBonusPerEvent
	if activity > cfg.ActivityBonusCap {
		activity = cfg.ActivityBonusCap
	}
	score += activity

	score += today.Habits * cfg.HabitBonus
	score += today.Tasks * cfg.TaskBonus

	score += productivityBonus(today.Total())

	if activeDays > cfg.ConsistencyDays {
		activeDays = cfg.ConsistencyDays
	}
	score += int(math.Round(float64(cfg.ConsistencyBonusMax) * float64(activeDays) / float64(cfg.ConsistencyDays)))

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// productivityBonus is tiered, not cumulative: the highest threshold met wins.
func productivityBonus(completions int) int {
	switch {
	case completions >= 8:
		return 40
	case completions >= 5:
		return 25
	case completions >= 3:
		return 15
	}
	return 0
}
