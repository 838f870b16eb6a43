package progression

import "fmt"

// Config is the balance table for all reward and vitality formulas. It is
// decoded once from the [game] section of the config file and validated at
// startup; the formulas never consult anything mutable.
type Config struct {
	HabitXP   int `toml:"habit_xp"`
	TaskXP    int `toml:"task_xp"`
	GoalXP    int `toml:"goal_xp"`
	DefaultXP int `toml:"default_xp"`

	CoinsPerXP float64 `toml:"coins_per_xp"`

	// MonthlyTargetXP is the trailing-30-day XP total that maps to a full
	// vitality base score.
	MonthlyTargetXP int `toml:"monthly_target_xp"`

	GoalBonus  int `toml:"goal_bonus"`
	HabitBonus int `toml:"habit_bonus"`
	TaskBonus  int `toml:"task_bonus"`

	ActivityBonusPerEvent int `toml:"activity_bonus_per_event"`
	ActivityBonusCap      int `toml:"activity_bonus_cap"`

	ConsistencyBonusMax int `toml:"consistency_bonus_max"`
	ConsistencyDays     int `toml:"consistency_days"`
}

func DefaultConfig() Config {
	return Config{
		HabitXP:               10,
		TaskXP:                15,
		GoalXP:                50,
		DefaultXP:             10,
		CoinsPerXP:            0.5,
		MonthlyTargetXP:       1000,
		GoalBonus:             25,
		HabitBonus:            8,
		TaskBonus:             10,
		ActivityBonusPerEvent: 5,
		ActivityBonusCap:      40,
		ConsistencyBonusMax:   35,
		ConsistencyDays:       7,
	}
}

func (c Config) Validate() error {
	if c.HabitXP <= 0 || c.TaskXP <= 0 || c.GoalXP <= 0 || c.DefaultXP <= 0 {
		return fmt.Errorf("game: base rewards must be positive")
	}
	if c.CoinsPerXP < 0 {
		return fmt.Errorf("game: coins_per_xp must not be negative, got %v", c.CoinsPerXP)
	}
	if c.MonthlyTargetXP <= 0 {
		return fmt.Errorf("game: monthly_target_xp must be positive, got %d", c.MonthlyTargetXP)
	}
	if c.ConsistencyDays <= 0 {
		return fmt.Errorf("game: consistency_days must be positive, got %d", c.ConsistencyDays)
	}
	return nil
}

// BaseXP returns the configured base reward for an action kind. Unknown kinds
// fall back to the default reward instead of failing.
func (c Config) BaseXP(kind ActionKind) int {
	switch kind {
	case KindHabit:
		return c.HabitXP
	case KindTask:
		return c.TaskXP
	case KindGoal:
		return c.GoalXP
	}
	return c.DefaultXP
}
