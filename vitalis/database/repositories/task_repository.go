package repositories

import (
	"context"
	"time"

	"github.com/uptrace/bun"
	"github.com/vitalisapp/vitalis/vitalis/database/models"
)

type TaskRepository interface {
	ListByUser(ctx context.Context, userID string) ([]*models.Task, error)
	UpsertBatch(ctx context.Context, tasks []*models.Task) error
	DeleteByUser(ctx context.Context, userID string) error
}

type taskRepository struct {
	*BaseRepository
}

func NewTaskRepository(db *bun.DB) TaskRepository {
	return &taskRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *taskRepository) ListByUser(ctx context.Context, userID string) ([]*models.Task, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	var tasks []*models.Task
	err := r.DB().NewSelect().
		Model(&tasks).
		Where("user_id = ?", userID).
		Order("item_id ASC").
		Scan(ctx)
	if err != nil {
		return nil, r.HandleErrorWithID("list", "task", userID, err)
	}
	return tasks, nil
}

func (r *taskRepository) UpsertBatch(ctx context.Context, tasks []*models.Task) error {
	if len(tasks) == 0 {
		return nil
	}
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	now := time.Now()
	for _, t := range tasks {
		t.UpdatedAt = now
	}

	_, err := r.DB().NewInsert().
		Model(&tasks).
		On("CONFLICT (user_id, item_id) DO UPDATE").
		Set("title = EXCLUDED.title").
		Set("tags = EXCLUDED.tags").
		Set("category = EXCLUDED.category").
		Set("done = EXCLUDED.done").
		Set("due_at = EXCLUDED.due_at").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	return r.HandleError("upsert_batch", "task", err)
}

func (r *taskRepository) DeleteByUser(ctx context.Context, userID string) error {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	_, err := r.DB().NewDelete().
		Model((*models.Task)(nil)).
		Where("user_id = ?", userID).
		Exec(ctx)
	return r.HandleErrorWithID("delete_all", "task", userID, err)
}
