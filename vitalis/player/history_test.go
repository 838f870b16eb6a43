package player

import (
	"testing"
	"time"

	"github.com/vitalisapp/vitalis/vitalis/progression"
)

func eventAt(t time.Time, kind progression.ActionKind, xp int) Event {
	return Event{Timestamp: t.UnixMilli(), Kind: kind, XPDelta: xp}
}

func TestHistory_XPWithin(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	window := 30 * 24 * time.Hour

	h := NewHistory()
	h.Append(eventAt(now.Add(-31*24*time.Hour), progression.KindTask, 100)) // outside
	h.Append(eventAt(now.Add(-10*24*time.Hour), progression.KindHabit, 10))
	h.Append(eventAt(now.Add(-time.Hour), progression.KindGoal, 50))

	if got := h.XPWithin(now, window); got != 60 {
		t.Errorf("XPWithin() = %d, want 60", got)
	}
}

func TestHistory_XPWithinOrderIndependent(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	window := 30 * 24 * time.Hour

	forward := NewHistory()
	backward := NewHistory()
	events := []Event{
		eventAt(now.Add(-20*24*time.Hour), progression.KindTask, 15),
		eventAt(now.Add(-5*24*time.Hour), progression.KindHabit, 10),
		eventAt(now.Add(-40*24*time.Hour), progression.KindGoal, 50),
	}
	for _, e := range events {
		forward.Append(e)
	}
	for i := len(events) - 1; i >= 0; i-- {
		backward.Append(events[i])
	}

	if forward.XPWithin(now, window) != backward.XPWithin(now, window) {
		t.Errorf("XPWithin() depends on insertion order: %d vs %d",
			forward.XPWithin(now, window), backward.XPWithin(now, window))
	}
}

func TestHistory_DayStats(t *testing.T) {
	now := time.Date(2026, 3, 15, 22, 0, 0, 0, time.UTC)

	h := NewHistory()
	h.Append(eventAt(now.Add(-2*time.Hour), progression.KindHabit, 10))
	h.Append(eventAt(now.Add(-5*time.Hour), progression.KindHabit, 10))
	h.Append(eventAt(now.Add(-time.Hour), progression.KindTask, 15))
	h.Append(eventAt(now.Add(-25*time.Hour), progression.KindGoal, 50)) // yesterday

	got := h.DayStats(now)
	want := progression.DayStats{Habits: 2, Tasks: 1, Goals: 0}
	if got != want {
		t.Errorf("DayStats() = %+v, want %+v", got, want)
	}
}

func TestHistory_ActiveDays(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	h := NewHistory()
	h.Append(eventAt(now.Add(-2*time.Hour), progression.KindHabit, 10))     // today
	h.Append(eventAt(now.Add(-26*time.Hour), progression.KindTask, 15))     // yesterday
	h.Append(eventAt(now.Add(-27*time.Hour), progression.KindHabit, 10))    // yesterday again
	h.Append(eventAt(now.Add(-6*24*time.Hour), progression.KindGoal, 50))   // edge of window
	h.Append(eventAt(now.Add(-10*24*time.Hour), progression.KindHabit, 10)) // outside

	if got := h.ActiveDays(now, 7); got != 3 {
		t.Errorf("ActiveDays() = %d, want 3", got)
	}
	if got := h.ActiveDays(now, 0); got != 0 {
		t.Errorf("ActiveDays(0) = %d, want 0", got)
	}
}

func TestHistory_EventsFrom(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	h := NewHistory()
	for i := 0; i < 5; i++ {
		h.Append(eventAt(now.Add(time.Duration(i)*time.Minute), progression.KindHabit, 10))
	}

	if got := len(h.EventsFrom(3)); got != 2 {
		t.Errorf("EventsFrom(3) returned %d events, want 2", got)
	}
	if got := h.EventsFrom(5); got != nil {
		t.Errorf("EventsFrom(len) = %v, want nil", got)
	}
	if got := len(h.EventsFrom(-1)); got != 5 {
		t.Errorf("EventsFrom(-1) returned %d events, want 5", got)
	}
}
