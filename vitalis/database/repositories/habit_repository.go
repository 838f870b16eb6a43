package repositories

import (
	"context"
	"time"

	"github.com/uptrace/bun"
	"github.com/vitalisapp/vitalis/vitalis/database/models"
)

type HabitRepository interface {
	ListByUser(ctx context.Context, userID string) ([]*models.Habit, error)
	UpsertBatch(ctx context.Context, habits []*models.Habit) error
	DeleteByUser(ctx context.Context, userID string) error
}

type habitRepository struct {
	*BaseRepository
}

func NewHabitRepository(db *bun.DB) HabitRepository {
	return &habitRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *habitRepository) ListByUser(ctx context.Context, userID string) ([]*models.Habit, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	var habits []*models.Habit
	err := r.DB().NewSelect().
		Model(&habits).
		Where("user_id = ?", userID).
		Order("item_id ASC").
		Scan(ctx)
	if err != nil {
		return nil, r.HandleErrorWithID("list", "habit", userID, err)
	}
	return habits, nil
}

func (r *habitRepository) UpsertBatch(ctx context.Context, habits []*models.Habit) error {
	if len(habits) == 0 {
		return nil
	}
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	now := time.Now()
	for _, h := range habits {
		h.UpdatedAt = now
	}

	_, err := r.DB().NewInsert().
		Model(&habits).
		On("CONFLICT (user_id, item_id) DO UPDATE").
		Set("title = EXCLUDED.title").
		Set("tags = EXCLUDED.tags").
		Set("category = EXCLUDED.category").
		Set("streak = EXCLUDED.streak").
		Set("last_done_at = EXCLUDED.last_done_at").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	return r.HandleError("upsert_batch", "habit", err)
}

func (r *habitRepository) DeleteByUser(ctx context.Context, userID string) error {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	_, err := r.DB().NewDelete().
		Model((*models.Habit)(nil)).
		Where("user_id = ?", userID).
		Exec(ctx)
	return r.HandleErrorWithID("delete_all", "habit", userID, err)
}
