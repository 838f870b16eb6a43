package repositories

import (
	"context"
	"time"

	"github.com/uptrace/bun"
	"github.com/vitalisapp/vitalis/vitalis/database/models"
)

type GoalRepository interface {
	ListByUser(ctx context.Context, userID string) ([]*models.Goal, error)
	UpsertBatch(ctx context.Context, goals []*models.Goal) error
	DeleteByUser(ctx context.Context, userID string) error
}

type goalRepository struct {
	*BaseRepository
}

func NewGoalRepository(db *bun.DB) GoalRepository {
	return &goalRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *goalRepository) ListByUser(ctx context.Context, userID string) ([]*models.Goal, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	var goals []*models.Goal
	err := r.DB().NewSelect().
		Model(&goals).
		Where("user_id = ?", userID).
		Order("item_id ASC").
		Scan(ctx)
	if err != nil {
		return nil, r.HandleErrorWithID("list", "goal", userID, err)
	}
	return goals, nil
}

func (r *goalRepository) UpsertBatch(ctx context.Context, goals []*models.Goal) error {
	if len(goals) == 0 {
		return nil
	}
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	now := time.Now()
	for _, g := range goals {
		g.UpdatedAt = now
	}

	_, err := r.DB().NewInsert().
		Model(&goals).
		On("CONFLICT (user_id, item_id) DO UPDATE").
		Set("title = EXCLUDED.title").
		Set("tags = EXCLUDED.tags").
		Set("category = EXCLUDED.category").
		Set("done = EXCLUDED.done").
		Set("target_at = EXCLUDED.target_at").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	return r.HandleError("upsert_batch", "goal", err)
}

func (r *goalRepository) DeleteByUser(ctx context.Context, userID string) error {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	_, err := r.DB().NewDelete().
		Model((*models.Goal)(nil)).
		Where("user_id = ?", userID).
		Exec(ctx)
	return r.HandleErrorWithID("delete_all", "goal", userID, err)
}
