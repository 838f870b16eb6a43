package progression

import (
	"testing"
	"time"
)

func TestCalculator_XPGain(t *testing.T) {
	calc := NewCalculator(DefaultConfig())
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		kind  ActionKind
		boost Boost
		want  int
	}{
		{name: "habit base", kind: KindHabit, want: 10},
		{name: "task base", kind: KindTask, want: 15},
		{name: "goal base", kind: KindGoal, want: 50},
		{name: "unknown kind falls back to default", kind: ActionKind("meditate"), want: 10},
		{
			name:  "active boost scales and floors",
			kind:  KindTask,
			boost: Boost{Multiplier: 1.5, ExpiresAt: now.Add(time.Hour)},
			want:  22, // floor(15 * 1.5)
		},
		{
			name:  "expired boost is inert",
			kind:  KindTask,
			boost: Boost{Multiplier: 2, ExpiresAt: now.Add(-time.Second)},
			want:  15,
		},
		{
			name:  "multiplier at or below one is inert",
			kind:  KindHabit,
			boost: Boost{Multiplier: 0.5, ExpiresAt: now.Add(time.Hour)},
			want:  10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := calc.XPGain(tt.kind, tt.boost, now); got != tt.want {
				t.Errorf("XPGain() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCalculator_CoinGain(t *testing.T) {
	calc := NewCalculator(DefaultConfig())

	tests := []struct {
		xp   int
		want int
	}{
		{xp: 10, want: 5},
		{xp: 15, want: 7}, // floor(7.5)
		{xp: 50, want: 25},
		{xp: 0, want: 0},
	}

	for _, tt := range tests {
		if got := calc.CoinGain(tt.xp); got != tt.want {
			t.Errorf("CoinGain(%d) = %d, want %d", tt.xp, got, tt.want)
		}
	}
}

func TestCalculator_Vitality(t *testing.T) {
	calc := NewCalculator(DefaultConfig())

	tests := []struct {
		name       string
		xp30d      int
		today      DayStats
		activeDays int
		want       int
	}{
		{name: "empty account", want: 0},
		{
			name:  "base only, half target",
			xp30d: 500,
			want:  50,
		},
		{
			name:  "base saturates at full target",
			xp30d: 5000,
			want:  100,
		},
		{
			// base 10 + habit 8 + activity 5 + consistency 5
			name:       "one habit on one active day",
			xp30d:      100,
			today:      DayStats{Habits: 1},
			activeDays: 1,
			want:       28,
		},
		{
			// base 10 + goal 25 + activity 5 + consistency 5
			name:       "goal bonus",
			xp30d:      100,
			today:      DayStats{Goals: 1},
			activeDays: 1,
			want:       45,
		},
		{
			// 3 completions trip the lowest productivity tier:
			// base 0 + habits 16 + task 10 + activity 15 + tier 15 + consistency 5
			name:       "productivity tier three",
			today:      DayStats{Habits: 2, Tasks: 1},
			activeDays: 1,
			want:       61,
		},
		{
			name:       "score clamps at 100",
			xp30d:      1000,
			today:      DayStats{Habits: 4, Tasks: 4, Goals: 2},
			activeDays: 7,
			want:       100,
		},
		{
			name:       "active days beyond window do not overshoot",
			activeDays: 30,
			want:       35,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := calc.Vitality(tt.xp30d, tt.today, tt.activeDays); got != tt.want {
				t.Errorf("Vitality() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestProductivityBonusTiersOverride(t *testing.T) {
	tests := []struct {
		completions int
		want        int
	}{
		{0, 0},
		{2, 0},
		{3, 15},
		{4, 15},
		{5, 25},
		{7, 25},
		{8, 40},
		{20, 40},
	}

	for _, tt := range tests {
		if got := productivityBonus(tt.completions); got != tt.want {
			t.Errorf("productivityBonus(%d) = %d, want %d", tt.completions, got, tt.want)
		}
	}
}
