package collections

import (
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/vitalisapp/vitalis/vitalis/database/models"
	"github.com/vitalisapp/vitalis/vitalis/player"
)

// ShopStore holds the reward catalog. Purchases are the only coin sink;
// the spend check lives in the player store so a purchase can never drive
// the balance negative.
type ShopStore struct {
	mu     sync.Mutex
	userID string
	items  map[string]*models.ShopItem
	player *player.Store
	notify func()
	now    func() time.Time
}

func NewShopStore(userID string, p *player.Store, notify func()) *ShopStore {
	if notify == nil {
		notify = func() {}
	}
	return &ShopStore{
		userID: userID,
		items:  make(map[string]*models.ShopItem),
		player: p,
		notify: notify,
		now:    time.Now,
	}
}

// SetClock overrides the time source. Test hook.
func (s *ShopStore) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

func (s *ShopStore) Upsert(item *models.ShopItem) {
	s.mu.Lock()
	item.UserID = s.userID
	item.UpdatedAt = s.now()
	s.items[item.ItemID] = item
	s.mu.Unlock()
	s.notify()
}

// Purchase buys one unit of the item. Returns false for an unknown item or
// an insufficient balance. A boost item activates its XP multiplier
// immediately on purchase.
func (s *ShopStore) Purchase(itemID string) bool {
	s.mu.Lock()
	item, ok := s.items[itemID]
	if !ok {
		s.mu.Unlock()
		return false
	}
	price := item.Price
	s.mu.Unlock()

	if !s.player.Spend(price) {
		slog.Debug("Purchase rejected",
			slog.String("type", "state"),
			slog.String("user_id", s.userID),
			slog.String("item_id", itemID),
			slog.Int64("price", price))
		return false
	}

	s.mu.Lock()
	// The item may have been removed between the two critical sections;
	// re-check before mutating and refund if it is gone.
	item, ok = s.items[itemID]
	if !ok {
		s.mu.Unlock()
		s.player.Credit(price)
		return false
	}
	now := s.now()
	item.Owned++
	item.UpdatedAt = now
	boostMultiplier := item.BoostMultiplier
	boostMinutes := item.BoostMinutes
	s.mu.Unlock()

	if boostMultiplier > 1 && boostMinutes > 0 {
		s.player.ActivateBoost(boostMultiplier, now.Add(time.Duration(boostMinutes)*time.Minute))
	}
	s.notify()
	return true
}

func (s *ShopStore) Remove(itemID string) bool {
	s.mu.Lock()
	_, ok := s.items[itemID]
	delete(s.items, itemID)
	s.mu.Unlock()
	if ok {
		s.notify()
	}
	return ok
}

func (s *ShopStore) Get(itemID string) (*models.ShopItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.items[itemID]
	if !ok {
		return nil, false
	}
	copied := *item
	return &copied, true
}

func (s *ShopStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func (s *ShopStore) Snapshot() []*models.ShopItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*models.ShopItem, 0, len(s.items))
	for _, item := range s.items {
		copied := *item
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ItemID < out[j].ItemID })
	return out
}

func (s *ShopStore) Load(items []*models.ShopItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make(map[string]*models.ShopItem, len(items))
	for _, item := range items {
		copied := *item
		s.items[item.ItemID] = &copied
	}
}

func (s *ShopStore) Clear() {
	s.mu.Lock()
	s.items = make(map[string]*models.ShopItem)
	s.mu.Unlock()
	s.notify()
}
