package collections

import (
	"sort"
	"sync"
	"time"

	"github.com/vitalisapp/vitalis/vitalis/database/models"
	"github.com/vitalisapp/vitalis/vitalis/player"
	"github.com/vitalisapp/vitalis/vitalis/progression"
)

// TaskStore holds the user's one-off tasks in memory. Completing a task is a
// scoring action; editing or removing one is not, but still marks the
// collection dirty so the remote copy converges.
type TaskStore struct {
	mu     sync.Mutex
	userID string
	items  map[string]*models.Task
	player *player.Store
	notify func()
	now    func() time.Time
}

func NewTaskStore(userID string, p *player.Store, notify func()) *TaskStore {
	if notify == nil {
		notify = func() {}
	}
	return &TaskStore{
		userID: userID,
		items:  make(map[string]*models.Task),
		player: p,
		notify: notify,
		now:    time.Now,
	}
}

// SetClock overrides the time source. Test hook.
func (s *TaskStore) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// Upsert adds or replaces a task by its item ID.
func (s *TaskStore) Upsert(task *models.Task) {
	s.mu.Lock()
	task.UserID = s.userID
	task.UpdatedAt = s.now()
	s.items[task.ItemID] = task
	s.mu.Unlock()
	s.notify()
}

// Complete marks the task done and grants its reward. Returns false when the
// task is unknown or already done; completing twice must not score twice.
func (s *TaskStore) Complete(itemID string) bool {
	s.mu.Lock()
	task, ok := s.items[itemID]
	if !ok || task.Done {
		s.mu.Unlock()
		return false
	}
	task.Done = true
	task.UpdatedAt = s.now()
	tags := append([]string(nil), task.Tags...)
	category := task.Category
	s.mu.Unlock()

	s.player.GrantAction(progression.KindTask, tags, category)
	s.notify()
	return true
}

func (s *TaskStore) Remove(itemID string) bool {
	s.mu.Lock()
	_, ok := s.items[itemID]
	delete(s.items, itemID)
	s.mu.Unlock()
	if ok {
		s.notify()
	}
	return ok
}

func (s *TaskStore) Get(itemID string) (*models.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	task, ok := s.items[itemID]
	if !ok {
		return nil, false
	}
	copied := *task
	return &copied, true
}

func (s *TaskStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Snapshot returns a stable-ordered copy for pushing.
func (s *TaskStore) Snapshot() []*models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*models.Task, 0, len(s.items))
	for _, task := range s.items {
		copied := *task
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ItemID < out[j].ItemID })
	return out
}

// Load replaces the in-memory set with rows pulled from the remote store.
// Does not mark the collection dirty.
func (s *TaskStore) Load(tasks []*models.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make(map[string]*models.Task, len(tasks))
	for _, task := range tasks {
		copied := *task
		s.items[task.ItemID] = &copied
	}
}

// Clear drops every task and marks the collection dirty. Used by the full
// account reset.
func (s *TaskStore) Clear() {
	s.mu.Lock()
	s.items = make(map[string]*models.Task)
	s.mu.Unlock()
	s.notify()
}
