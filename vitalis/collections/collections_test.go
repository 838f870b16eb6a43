package collections

import (
	"testing"
	"time"

	"github.com/vitalisapp/vitalis/vitalis/category"
	"github.com/vitalisapp/vitalis/vitalis/database/models"
	"github.com/vitalisapp/vitalis/vitalis/player"
	"github.com/vitalisapp/vitalis/vitalis/progression"
)

var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func testPlayer(t *testing.T) *player.Store {
	t.Helper()
	store := player.NewStore("u1",
		progression.NewCalculator(progression.DefaultConfig()),
		category.NewResolver(),
		nil, nil)
	store.SetClock(func() time.Time { return testNow })
	return store
}

func TestTaskStore_Complete(t *testing.T) {
	p := testPlayer(t)
	notifies := 0
	tasks := NewTaskStore("u1", p, func() { notifies++ })
	tasks.SetClock(func() time.Time { return testNow })

	tasks.Upsert(&models.Task{ItemID: "t1", Title: "File taxes", Tags: []string{"money"}})

	if !tasks.Complete("t1") {
		t.Fatal("Complete(t1) = false")
	}
	if got := p.State().XP; got != 15 {
		t.Errorf("XP = %d, want 15", got)
	}
	if tasks.Complete("t1") {
		t.Error("completing twice scored twice")
	}
	if tasks.Complete("missing") {
		t.Error("Complete(missing) = true")
	}
	if got := p.State().XP; got != 15 {
		t.Errorf("XP after duplicate completes = %d, want 15", got)
	}
	if notifies != 2 { // upsert + complete
		t.Errorf("notify called %d times, want 2", notifies)
	}
}

func TestHabitStore_CheckInStreak(t *testing.T) {
	p := testPlayer(t)
	habits := NewHabitStore("u1", p, nil)
	now := testNow
	habits.SetClock(func() time.Time { return now })

	habits.Upsert(&models.Habit{ItemID: "h1", Title: "Morning run", Tags: []string{"run"}})

	if !habits.CheckIn("h1") {
		t.Fatal("first CheckIn = false")
	}
	if habits.CheckIn("h1") {
		t.Error("same-day CheckIn succeeded twice")
	}
	habit, _ := habits.Get("h1")
	if habit.Streak != 1 {
		t.Errorf("Streak = %d, want 1", habit.Streak)
	}

	// Next day extends the streak.
	now = now.AddDate(0, 0, 1)
	if !habits.CheckIn("h1") {
		t.Fatal("next-day CheckIn = false")
	}
	habit, _ = habits.Get("h1")
	if habit.Streak != 2 {
		t.Errorf("Streak = %d, want 2", habit.Streak)
	}

	// A missed day restarts it.
	now = now.AddDate(0, 0, 3)
	if !habits.CheckIn("h1") {
		t.Fatal("CheckIn after gap = false")
	}
	habit, _ = habits.Get("h1")
	if habit.Streak != 1 {
		t.Errorf("Streak after gap = %d, want 1", habit.Streak)
	}

	// Tag "run" feeds strength with each check-in's XP.
	if got := p.State().Attributes.Str; got != 30 {
		t.Errorf("Attributes.Str = %d, want 30", got)
	}
}

func TestShopStore_Purchase(t *testing.T) {
	p := testPlayer(t)
	shop := NewShopStore("u1", p, nil)
	shop.SetClock(func() time.Time { return testNow })

	shop.Upsert(&models.ShopItem{ItemID: "coffee", Name: "Fancy coffee", Price: 20})

	if shop.Purchase("coffee") {
		t.Error("purchase succeeded with zero balance")
	}

	p.Credit(25)
	if !shop.Purchase("coffee") {
		t.Fatal("Purchase = false with sufficient balance")
	}
	if got := p.State().Coins; got != 5 {
		t.Errorf("Coins = %d, want 5", got)
	}
	item, _ := shop.Get("coffee")
	if item.Owned != 1 {
		t.Errorf("Owned = %d, want 1", item.Owned)
	}
	if shop.Purchase("missing") {
		t.Error("Purchase(missing) = true")
	}
}

func TestShopStore_PurchaseBoostActivates(t *testing.T) {
	p := testPlayer(t)
	shop := NewShopStore("u1", p, nil)
	shop.SetClock(func() time.Time { return testNow })

	shop.Upsert(&models.ShopItem{
		ItemID:          "double-xp",
		Name:            "Double XP hour",
		Price:           10,
		BoostMultiplier: 2,
		BoostMinutes:    60,
	})
	p.Credit(10)

	if !shop.Purchase("double-xp") {
		t.Fatal("boost purchase failed")
	}

	p.GrantAction(progression.KindHabit, nil, "")
	if got := p.State().XP; got != 20 {
		t.Errorf("XP with boost = %d, want 20", got)
	}
}

func TestStores_LoadDoesNotNotify(t *testing.T) {
	p := testPlayer(t)
	notifies := 0
	tasks := NewTaskStore("u1", p, func() { notifies++ })

	tasks.Load([]*models.Task{
		{ItemID: "t1", Title: "Water plants"},
		{ItemID: "t2", Title: "Read mail"},
	})

	if tasks.Len() != 2 {
		t.Errorf("Len() = %d after load, want 2", tasks.Len())
	}
	if notifies != 0 {
		t.Errorf("Load marked the collection dirty %d times", notifies)
	}
}

func TestSnapshotOrderStable(t *testing.T) {
	p := testPlayer(t)
	goals := NewGoalStore("u1", p, nil)

	goals.Upsert(&models.Goal{ItemID: "b"})
	goals.Upsert(&models.Goal{ItemID: "a"})
	goals.Upsert(&models.Goal{ItemID: "c"})

	snap := goals.Snapshot()
	if len(snap) != 3 {
		t.Fatalf("Snapshot() length = %d, want 3", len(snap))
	}
	if snap[0].ItemID != "a" || snap[1].ItemID != "b" || snap[2].ItemID != "c" {
		t.Errorf("Snapshot() order = [%s %s %s], want sorted by item id",
			snap[0].ItemID, snap[1].ItemID, snap[2].ItemID)
	}
}
