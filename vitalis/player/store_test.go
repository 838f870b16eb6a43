package player

import (
	"testing"
	"time"

	"github.com/vitalisapp/vitalis/vitalis/category"
	"github.com/vitalisapp/vitalis/vitalis/progression"
)

type cacheRecorder struct {
	entries []CacheEntry
}

func (c *cacheRecorder) WriteAggregate(e CacheEntry) {
	c.entries = append(c.entries, e)
}

func newTestStore(t *testing.T, now time.Time) (*Store, *cacheRecorder, *int) {
	t.Helper()
	cache := &cacheRecorder{}
	notifies := 0
	store := NewStore("u1",
		progression.NewCalculator(progression.DefaultConfig()),
		category.NewResolver(),
		cache,
		func() { notifies++ })
	store.SetClock(func() time.Time { return now })
	return store, cache, &notifies
}

func TestStore_GrantAction(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	store, cache, notifies := newTestStore(t, now)

	store.GrantAction(progression.KindHabit, []string{"gym"}, "")

	state := store.State()
	if state.XP != 10 {
		t.Errorf("XP = %d, want 10", state.XP)
	}
	if state.Coins != 5 {
		t.Errorf("Coins = %d, want 5", state.Coins)
	}
	if state.Attributes.Str != 10 {
		t.Errorf("Attributes.Str = %d, want 10", state.Attributes.Str)
	}
	if state.Version != 1 {
		t.Errorf("Version = %d, want 1", state.Version)
	}
	if state.Rank.Tier != progression.TierBronze || state.Rank.Index != 0 {
		t.Errorf("Rank = %+v, want Bronze index 0", state.Rank)
	}
	// base 1 + habit 8 + activity 5 + consistency 5
	if state.Vitality != 19 {
		t.Errorf("Vitality = %d, want 19", state.Vitality)
	}

	events := store.Events()
	if len(events) != 1 {
		t.Fatalf("history length = %d, want 1", len(events))
	}
	if events[0].Category != "fitness" {
		t.Errorf("event category = %q, want fitness (resolved from gym tag)", events[0].Category)
	}
	if *notifies != 1 {
		t.Errorf("notify called %d times, want 1", *notifies)
	}
	if len(cache.entries) == 0 {
		t.Fatal("cache write missing")
	}
	last := cache.entries[len(cache.entries)-1]
	if last.XP != 10 || last.Version != 1 {
		t.Errorf("cache entry = %+v, want XP 10 Version 1", last)
	}
}

func TestStore_GrantActionExplicitCategoryWins(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	store, _, _ := newTestStore(t, now)

	store.GrantAction(progression.KindTask, []string{"gym"}, "Trabalho")

	events := store.Events()
	if events[0].Category != "trabalho" {
		t.Errorf("event category = %q, want trabalho", events[0].Category)
	}
}

func TestStore_Spend(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	store, _, _ := newTestStore(t, now)
	store.GrantAction(progression.KindGoal, nil, "") // 50 xp, 25 coins

	if !store.Spend(20) {
		t.Fatal("Spend(20) = false, want true")
	}
	if got := store.State().Coins; got != 5 {
		t.Errorf("Coins = %d, want 5", got)
	}
	if store.Spend(6) {
		t.Error("Spend(6) succeeded with balance 5")
	}
	if store.Spend(-1) {
		t.Error("Spend(-1) succeeded")
	}
	if got := store.State().Coins; got != 5 {
		t.Errorf("Coins after failed spends = %d, want 5", got)
	}
}

func TestStore_ActivateBoost(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	store, _, _ := newTestStore(t, now)

	store.ActivateBoost(2, now.Add(time.Hour))
	store.GrantAction(progression.KindHabit, nil, "")

	if got := store.State().XP; got != 20 {
		t.Errorf("boosted XP = %d, want 20", got)
	}

	// Ignored: a multiplier at or below 1 is meaningless.
	before := store.State().Version
	store.ActivateBoost(1, now.Add(time.Hour))
	if store.State().Version != before {
		t.Error("ActivateBoost(1) bumped the version")
	}
}

func TestStore_Reset(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	store, _, _ := newTestStore(t, now)
	store.GrantAction(progression.KindHabit, nil, "")
	store.GrantAction(progression.KindTask, nil, "")

	store.Reset()

	state := store.State()
	if state.XP != 0 || state.Coins != 0 || state.Vitality != 0 {
		t.Errorf("state after reset = %+v, want zeroed", state)
	}
	if state.Version != 3 {
		t.Errorf("Version = %d, want 3 (reset is a mutation, not a rollback)", state.Version)
	}
	if store.HistoryLen() != 0 {
		t.Errorf("history length = %d, want 0", store.HistoryLen())
	}
}

func TestStore_Reconcile(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	window := 12 * time.Second

	remoteEvents := []Event{
		{Timestamp: now.Add(-time.Hour).UnixMilli(), Kind: progression.KindGoal, XPDelta: 50, CoinDelta: 25},
	}

	t.Run("higher remote version wins", func(t *testing.T) {
		store, _, _ := newTestStore(t, now)
		store.GrantAction(progression.KindHabit, nil, "") // local version 1

		outcome := store.Reconcile(RemoteAggregate{
			XP:         4200,
			Coins:      100,
			Vitality:   73,
			Attributes: progression.Attributes{Int: 40},
			Version:    5,
			UpdatedAt:  now.Add(-time.Minute),
		}, remoteEvents, window)

		if outcome != OutcomeRemoteApplied {
			t.Fatalf("outcome = %v, want OutcomeRemoteApplied", outcome)
		}
		state := store.State()
		if state.XP != 4200 || state.Version != 5 {
			t.Errorf("state = %+v, want remote values", state)
		}
		if state.Rank.Tier != progression.TierGod {
			t.Errorf("Rank.Tier = %q, want God (recomputed from adopted XP)", state.Rank.Tier)
		}
		if state.Aspect != progression.AspectIntellect {
			t.Errorf("Aspect = %q, want int (recomputed from adopted attributes)", state.Aspect)
		}
		if state.Vitality != 73 {
			t.Errorf("Vitality = %d, want 73 adopted verbatim", state.Vitality)
		}
		if store.HistoryLen() != len(remoteEvents) {
			t.Errorf("history length = %d, want %d", store.HistoryLen(), len(remoteEvents))
		}
	})

	t.Run("higher local version is kept", func(t *testing.T) {
		store, _, _ := newTestStore(t, now)
		store.GrantAction(progression.KindHabit, nil, "")
		store.GrantAction(progression.KindTask, nil, "") // local version 2

		outcome := store.Reconcile(RemoteAggregate{XP: 999, Version: 1}, remoteEvents, window)

		if outcome != OutcomeLocalKept {
			t.Fatalf("outcome = %v, want OutcomeLocalKept", outcome)
		}
		if got := store.State().XP; got != 25 {
			t.Errorf("XP = %d, local state was overwritten", got)
		}
	})

	t.Run("equal nonzero versions defer to remote", func(t *testing.T) {
		store, _, _ := newTestStore(t, now)
		store.GrantAction(progression.KindHabit, nil, "") // local version 1

		outcome := store.Reconcile(RemoteAggregate{XP: 77, Version: 1}, remoteEvents, window)
		if outcome != OutcomeRemoteApplied {
			t.Fatalf("outcome = %v, want OutcomeRemoteApplied", outcome)
		}
	})

	t.Run("versionless local write inside protection window survives", func(t *testing.T) {
		store, _, _ := newTestStore(t, now)
		store.Hydrate(CacheEntry{XP: 30, Version: 0, LastUpdated: now.Add(-5 * time.Second)})

		outcome := store.Reconcile(RemoteAggregate{
			XP:        10,
			Version:   0,
			UpdatedAt: now.Add(-time.Hour),
		}, nil, window)

		if outcome != OutcomeLocalKept {
			t.Fatalf("outcome = %v, want OutcomeLocalKept", outcome)
		}
		if got := store.State().XP; got != 30 {
			t.Errorf("XP = %d, want 30", got)
		}
	})

	t.Run("versionless local write outside protection window yields", func(t *testing.T) {
		store, _, _ := newTestStore(t, now)
		store.Hydrate(CacheEntry{XP: 30, Version: 0, LastUpdated: now.Add(-time.Minute)})

		outcome := store.Reconcile(RemoteAggregate{
			XP:        10,
			Version:   0,
			UpdatedAt: now.Add(-time.Hour),
		}, nil, window)

		if outcome != OutcomeRemoteApplied {
			t.Fatalf("outcome = %v, want OutcomeRemoteApplied", outcome)
		}
		if got := store.State().XP; got != 10 {
			t.Errorf("XP = %d, want 10", got)
		}
	})

	t.Run("fresh store adopts remote", func(t *testing.T) {
		store, _, _ := newTestStore(t, now)

		outcome := store.Reconcile(RemoteAggregate{XP: 10, Version: 0, UpdatedAt: now.Add(-time.Hour)}, nil, window)
		if outcome != OutcomeRemoteApplied {
			t.Fatalf("outcome = %v, want OutcomeRemoteApplied", outcome)
		}
	})
}

func TestStore_Hydrate(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	store, _, notifies := newTestStore(t, now)

	store.Hydrate(CacheEntry{XP: 4200, Coins: 10, Vitality: 55, Version: 7, LastUpdated: now.Add(-time.Minute)})

	state := store.State()
	if state.XP != 4200 || state.Version != 7 {
		t.Errorf("state = %+v, want hydrated values", state)
	}
	if state.Rank.Tier != progression.TierGod {
		t.Errorf("Rank.Tier = %q, want God recomputed from hydrated XP", state.Rank.Tier)
	}
	if *notifies != 0 {
		t.Error("Hydrate marked the store dirty")
	}
}

func TestStore_Restore(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	store, _, notifies := newTestStore(t, now)

	store.GrantAction(progression.KindHabit, nil, "")

	snapshot := State{
		XP:         4300,
		Coins:      80,
		Vitality:   61,
		Attributes: progression.Attributes{Int: 120, Str: 10},
		Version:    9,
	}
	events := []Event{
		{Timestamp: now.Add(-48 * time.Hour).UnixMilli(), Kind: progression.KindTask, XPDelta: 15},
		{Timestamp: now.Add(-24 * time.Hour).UnixMilli(), Kind: progression.KindGoal, XPDelta: 50},
	}
	store.Restore(snapshot, events)

	state := store.State()
	if state.XP != 4300 || state.Coins != 80 {
		t.Errorf("state = %+v, want restored totals", state)
	}
	if state.Rank.Tier != progression.TierGod {
		t.Errorf("Rank.Tier = %q, want God recomputed", state.Rank.Tier)
	}
	if state.Aspect != progression.AspectIntellect {
		t.Errorf("Aspect = %q, want recomputed from restored attributes", state.Aspect)
	}
	if state.Version != 10 {
		t.Errorf("Version = %d, want snapshot version plus the restore bump", state.Version)
	}
	if store.HistoryLen() != 2 {
		t.Errorf("HistoryLen = %d, want snapshot history", store.HistoryLen())
	}
	if *notifies != 2 {
		t.Errorf("notifies = %d, want restore to mark the store dirty", *notifies)
	}
}
