package collections

import (
	"sort"
	"sync"
	"time"

	"github.com/vitalisapp/vitalis/vitalis/database/models"
	"github.com/vitalisapp/vitalis/vitalis/player"
	"github.com/vitalisapp/vitalis/vitalis/progression"
)

// HabitStore holds the user's recurring habits. A habit scores at most once
// per calendar day; the streak counts consecutive days with a check-in.
type HabitStore struct {
	mu     sync.Mutex
	userID string
	items  map[string]*models.Habit
	player *player.Store
	notify func()
	now    func() time.Time
}

func NewHabitStore(userID string, p *player.Store, notify func()) *HabitStore {
	if notify == nil {
		notify = func() {}
	}
	return &HabitStore{
		userID: userID,
		items:  make(map[string]*models.Habit),
		player: p,
		notify: notify,
		now:    time.Now,
	}
}

// SetClock overrides the time source. Test hook.
func (s *HabitStore) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

func (s *HabitStore) Upsert(habit *models.Habit) {
	s.mu.Lock()
	habit.UserID = s.userID
	habit.UpdatedAt = s.now()
	s.items[habit.ItemID] = habit
	s.mu.Unlock()
	s.notify()
}

// CheckIn records today's completion. Returns false for an unknown habit or
// one already checked in today. The streak extends when yesterday was also
// completed, otherwise restarts at 1.
func (s *HabitStore) CheckIn(itemID string) bool {
	s.mu.Lock()
	habit, ok := s.items[itemID]
	if !ok {
		s.mu.Unlock()
		return false
	}

	now := s.now()
	if sameDay(habit.LastDoneAt, now) {
		s.mu.Unlock()
		return false
	}
	if sameDay(habit.LastDoneAt, now.AddDate(0, 0, -1)) {
		habit.Streak++
	} else {
		habit.Streak = 1
	}
	habit.LastDoneAt = now
	habit.UpdatedAt = now
	tags := append([]string(nil), habit.Tags...)
	category := habit.Category
	s.mu.Unlock()

	s.player.GrantAction(progression.KindHabit, tags, category)
	s.notify()
	return true
}

func (s *HabitStore) Remove(itemID string) bool {
	s.mu.Lock()
	_, ok := s.items[itemID]
	delete(s.items, itemID)
	s.mu.Unlock()
	if ok {
		s.notify()
	}
	return ok
}

func (s *HabitStore) Get(itemID string) (*models.Habit, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	habit, ok := s.items[itemID]
	if !ok {
		return nil, false
	}
	copied := *habit
	return &copied, true
}

func (s *HabitStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func (s *HabitStore) Snapshot() []*models.Habit {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*models.Habit, 0, len(s.items))
	for _, habit := range s.items {
		copied := *habit
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ItemID < out[j].ItemID })
	return out
}

func (s *HabitStore) Load(habits []*models.Habit) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make(map[string]*models.Habit, len(habits))
	for _, habit := range habits {
		copied := *habit
		s.items[habit.ItemID] = &copied
	}
}

func (s *HabitStore) Clear() {
	s.mu.Lock()
	s.items = make(map[string]*models.Habit)
	s.mu.Unlock()
	s.notify()
}

func sameDay(a, b time.Time) bool {
	if a.IsZero() || b.IsZero() {
		return false
	}
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
