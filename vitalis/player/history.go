package player

import (
	"time"

	"github.com/vitalisapp/vitalis/vitalis/progression"
)

// Event is one immutable record of an XP-granting action. Created exactly
// once when an action completes, appended to the history log and never
// mutated; only a full state reset removes events.
type Event struct {
	Timestamp int64                  `json:"timestamp"` // epoch milliseconds
	Kind      progression.ActionKind `json:"kind"`
	XPDelta   int                    `json:"xp_delta"`
	CoinDelta int                    `json:"coin_delta"`
	Tags      []string               `json:"tags"` // first tag is the display name
	Category  string                 `json:"category,omitempty"`
}

// History is the append-only ordered log of action events. Not safe for
// concurrent use; the owning Store serializes access.
type History struct {
	events []Event
}

func NewHistory() *History {
	return &History{}
}

func (h *History) Append(e Event) {
	h.events = append(h.events, e)
}

func (h *History) Len() int {
	return len(h.events)
}

// Events returns a copy of the log in append order.
func (h *History) Events() []Event {
	out := make([]Event, len(h.events))
	copy(out, h.events)
	return out
}

// EventsFrom returns a copy of the events at index i and later.
func (h *History) EventsFrom(i int) []Event {
	if i < 0 {
		i = 0
	}
	if i >= len(h.events) {
		return nil
	}
	out := make([]Event, len(h.events)-i)
	copy(out, h.events[i:])
	return out
}

// Replace swaps the whole log for remotely loaded events. Used only by
// reconciliation and reset.
func (h *History) Replace(events []Event) {
	h.events = make([]Event, len(events))
	copy(h.events, events)
}

// XPWithin sums XP deltas for events inside the trailing window ending at
// now. Independent of insertion order.
func (h *History) XPWithin(now time.Time, window time.Duration) int {
	cutoff := now.Add(-window).UnixMilli()
	sum := 0
	for _, e := range h.events {
		if e.Timestamp >= cutoff {
			sum += e.XPDelta
		}
	}
	return sum
}

// DayStats counts completions per kind on the same calendar day as now.
func (h *History) DayStats(now time.Time) progression.DayStats {
	var stats progression.DayStats
	y, m, d := now.Date()
	for _, e := range h.events {
		t := time.UnixMilli(e.Timestamp).In(now.Location())
		ey, em, ed := t.Date()
		if ey != y || em != m || ed != d {
			continue
		}
		switch e.Kind {
		case progression.KindHabit:
			stats.Habits++
		case progression.KindTask:
			stats.Tasks++
		case progression.KindGoal:
			stats.Goals++
		}
	}
	return stats
}

// ActiveDays counts how many of the last n calendar days, today included,
// have at least one event.
func (h *History) ActiveDays(now time.Time, n int) int {
	if n <= 0 {
		return 0
	}
	seen := make(map[string]bool, n)
	first := now.AddDate(0, 0, -(n - 1))
	fy, fm, fd := first.Date()
	firstDay := time.Date(fy, fm, fd, 0, 0, 0, 0, now.Location())

	for _, e := range h.events {
		t := time.UnixMilli(e.Timestamp).In(now.Location())
		if t.Before(firstDay) || t.After(now) {
			continue
		}
		seen[t.Format("2006-01-02")] = true
	}
	return len(seen)
}
