package migration

import (
	"testing"
	"time"
)

func TestConvertUser(t *testing.T) {
	m := &Migrator{}

	lu := LegacyUser{
		UserID:   "u1",
		XP:       4200.7,
		Coins:    150.2,
		Vitality: 120, // legacy bug: stored scores could overshoot
		Attributes: LegacyAttributes{
			Strength:     80,
			Intelligence: 10,
		},
		UpdatedAt: 1767225600000, // 2026-01-01T00:00:00Z
	}

	state := m.convertUser(lu)

	if state.XP != 4200 || state.Coins != 150 {
		t.Errorf("converted totals = (%d, %d), want trunc (4200, 150)", state.XP, state.Coins)
	}
	if state.Vitality != 100 {
		t.Errorf("Vitality = %d, want clamp to 100", state.Vitality)
	}
	if state.RankTier != "God" {
		t.Errorf("RankTier = %q, want God recomputed from XP", state.RankTier)
	}
	if state.Aspect != "str" {
		t.Errorf("Aspect = %q, want str recomputed from attributes", state.Aspect)
	}
	if state.Version != 0 {
		t.Errorf("Version = %d, legacy rows must carry 0", state.Version)
	}
	if state.UpdatedAt.Year() != 2026 {
		t.Errorf("UpdatedAt = %v, want converted epoch millis", state.UpdatedAt)
	}
}

func TestConvertUserExpiredBoostDropped(t *testing.T) {
	m := &Migrator{}

	lu := LegacyUser{
		UserID: "u1",
		Boost:  &LegacyBoost{Multiplier: 2, ExpiresAt: 1000}, // long expired
	}

	state := m.convertUser(lu)
	if state.BoostMultiplier != 1 {
		t.Errorf("BoostMultiplier = %v, want expired boost dropped", state.BoostMultiplier)
	}
	if !state.BoostExpiresAt.IsZero() {
		t.Errorf("BoostExpiresAt = %v, want zero", state.BoostExpiresAt)
	}
}

func TestConvertUserActiveBoostKept(t *testing.T) {
	m := &Migrator{}
	future := float64(time.Now().Add(time.Hour).UnixMilli())

	lu := LegacyUser{
		UserID: "u1",
		Boost:  &LegacyBoost{Multiplier: 1.5, ExpiresAt: future},
	}

	state := m.convertUser(lu)
	if state.BoostMultiplier != 1.5 {
		t.Errorf("BoostMultiplier = %v, want 1.5", state.BoostMultiplier)
	}
}

func TestConvertEvent(t *testing.T) {
	m := &Migrator{}

	event := m.convertEvent(LegacyHistoryEvent{
		UserID:   "u1",
		T:        1767225600000,
		Kind:     " Habit ",
		XP:       10,
		Coins:    5,
		Tags:     []string{" gym ", "", "\x00junk"},
		Category: "fitness",
	})

	if event == nil {
		t.Fatal("convertEvent returned nil for a valid event")
	}
	if event.Kind != "habit" {
		t.Errorf("Kind = %q, want normalized habit", event.Kind)
	}
	if len(event.Tags) != 2 {
		t.Errorf("Tags = %v, want empty entries dropped", event.Tags)
	}
}

func TestConvertEventUnknownKindSkipped(t *testing.T) {
	m := &Migrator{}
	if event := m.convertEvent(LegacyHistoryEvent{UserID: "u1", Kind: "meditate"}); event != nil {
		t.Errorf("convertEvent = %+v, want nil for unknown kind", event)
	}
}

func TestLegacyTime(t *testing.T) {
	if !legacyTime(0).IsZero() {
		t.Error("legacyTime(0) is not zero")
	}
	if !legacyTime(-5).IsZero() {
		t.Error("legacyTime(-5) is not zero")
	}
	got := legacyTime(1767225600000)
	want := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("legacyTime() = %v, want %v", got, want)
	}
}

func TestCleanseString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "  plain  ", want: "plain"},
		{in: "nul\x00byte", want: "nulbyte"},
		{in: "Saúde", want: "Saúde"},
		{in: "bad\xffutf8", want: "badutf8"},
	}
	for _, tt := range tests {
		if got := cleanseString(tt.in); got != tt.want {
			t.Errorf("cleanseString(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
