package collections

import (
	"sort"
	"sync"
	"time"

	"github.com/vitalisapp/vitalis/vitalis/database/models"
	"github.com/vitalisapp/vitalis/vitalis/player"
	"github.com/vitalisapp/vitalis/vitalis/progression"
)

// GoalStore holds the user's long-term goals. Completing one pays the largest
// base reward and feeds the goal bonus of the vitality formula for the day.
type GoalStore struct {
	mu     sync.Mutex
	userID string
	items  map[string]*models.Goal
	player *player.Store
	notify func()
	now    func() time.Time
}

func NewGoalStore(userID string, p *player.Store, notify func()) *GoalStore {
	if notify == nil {
		notify = func() {}
	}
	return &GoalStore{
		userID: userID,
		items:  make(map[string]*models.Goal),
		player: p,
		notify: notify,
		now:    time.Now,
	}
}

// SetClock overrides the time source. Test hook.
func (s *GoalStore) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

func (s *GoalStore) Upsert(goal *models.Goal) {
	s.mu.Lock()
	goal.UserID = s.userID
	goal.UpdatedAt = s.now()
	s.items[goal.ItemID] = goal
	s.mu.Unlock()
	s.notify()
}

// Complete marks the goal done and grants its reward. Returns false when the
// goal is unknown or already done.
func (s *GoalStore) Complete(itemID string) bool {
	s.mu.Lock()
	goal, ok := s.items[itemID]
	if !ok || goal.Done {
		s.mu.Unlock()
		return false
	}
	goal.Done = true
	goal.UpdatedAt = s.now()
	tags := append([]string(nil), goal.Tags...)
	category := goal.Category
	s.mu.Unlock()

	s.player.GrantAction(progression.KindGoal, tags, category)
	s.notify()
	return true
}

func (s *GoalStore) Remove(itemID string) bool {
	s.mu.Lock()
	_, ok := s.items[itemID]
	delete(s.items, itemID)
	s.mu.Unlock()
	if ok {
		s.notify()
	}
	return ok
}

func (s *GoalStore) Get(itemID string) (*models.Goal, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	goal, ok := s.items[itemID]
	if !ok {
		return nil, false
	}
	copied := *goal
	return &copied, true
}

func (s *GoalStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func (s *GoalStore) Snapshot() []*models.Goal {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*models.Goal, 0, len(s.items))
	for _, goal := range s.items {
		copied := *goal
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ItemID < out[j].ItemID })
	return out
}

func (s *GoalStore) Load(goals []*models.Goal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make(map[string]*models.Goal, len(goals))
	for _, goal := range goals {
		copied := *goal
		s.items[goal.ItemID] = &copied
	}
}

func (s *GoalStore) Clear() {
	s.mu.Lock()
	s.items = make(map[string]*models.Goal)
	s.mu.Unlock()
	s.notify()
}
