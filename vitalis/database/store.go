package database

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vitalisapp/vitalis/vitalis/database/models"
	"github.com/vitalisapp/vitalis/vitalis/database/repositories"
)

// Store bundles the per-collection repositories into the single remote store
// surface the sync coordinator works against.
type Store struct {
	Player  repositories.PlayerRepository
	History repositories.HistoryRepository
	Tasks   repositories.TaskRepository
	Habits  repositories.HabitRepository
	Goals   repositories.GoalRepository
	Shop    repositories.ShopRepository
}

func NewStore(db *DB) *Store {
	bunDB := db.BunDB()
	return &Store{
		Player:  repositories.NewPlayerRepository(bunDB),
		History: repositories.NewHistoryRepository(bunDB),
		Tasks:   repositories.NewTaskRepository(bunDB),
		Habits:  repositories.NewHabitRepository(bunDB),
		Goals:   repositories.NewGoalRepository(bunDB),
		Shop:    repositories.NewShopRepository(bunDB),
	}
}

func (s *Store) GetAggregate(ctx context.Context, userID string) (*models.PlayerState, error) {
	state, err := s.Player.Get(ctx, userID)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return state, nil
}

func (s *Store) SaveAggregate(ctx context.Context, state *models.PlayerState) error {
	return s.Player.Upsert(ctx, state)
}

func (s *Store) ListHistory(ctx context.Context, userID string) ([]*models.ActionEvent, error) {
	return s.History.ListByUser(ctx, userID)
}

func (s *Store) AppendHistory(ctx context.Context, events []*models.ActionEvent) error {
	return s.History.AppendBatch(ctx, events)
}

func (s *Store) ListTasks(ctx context.Context, userID string) ([]*models.Task, error) {
	return s.Tasks.ListByUser(ctx, userID)
}

func (s *Store) SaveTasks(ctx context.Context, tasks []*models.Task) error {
	return s.Tasks.UpsertBatch(ctx, tasks)
}

func (s *Store) ListHabits(ctx context.Context, userID string) ([]*models.Habit, error) {
	return s.Habits.ListByUser(ctx, userID)
}

func (s *Store) SaveHabits(ctx context.Context, habits []*models.Habit) error {
	return s.Habits.UpsertBatch(ctx, habits)
}

func (s *Store) ListGoals(ctx context.Context, userID string) ([]*models.Goal, error) {
	return s.Goals.ListByUser(ctx, userID)
}

func (s *Store) SaveGoals(ctx context.Context, goals []*models.Goal) error {
	return s.Goals.UpsertBatch(ctx, goals)
}

func (s *Store) ListShopItems(ctx context.Context, userID string) ([]*models.ShopItem, error) {
	return s.Shop.ListByUser(ctx, userID)
}

func (s *Store) SaveShopItems(ctx context.Context, items []*models.ShopItem) error {
	return s.Shop.UpsertBatch(ctx, items)
}

// ResetUser wipes every collection for the user. The aggregate row goes
// last; the zeroed state is written back by the next push.
func (s *Store) ResetUser(ctx context.Context, userID string) error {
	steps := []struct {
		name string
		fn   func(context.Context, string) error
	}{
		{"action_events", s.History.DeleteByUser},
		{"tasks", s.Tasks.DeleteByUser},
		{"habits", s.Habits.DeleteByUser},
		{"goals", s.Goals.DeleteByUser},
		{"shop_items", s.Shop.DeleteByUser},
		{"player_states", s.Player.Delete},
	}
	for _, step := range steps {
		if err := step.fn(ctx, userID); err != nil {
			return fmt.Errorf("failed to reset %s: %w", step.name, err)
		}
	}
	slog.Info("User data reset",
		slog.String("type", "db"),
		slog.String("user_id", userID))
	return nil
}
