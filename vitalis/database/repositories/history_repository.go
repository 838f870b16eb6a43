package repositories

import (
	"context"

	"github.com/uptrace/bun"
	"github.com/vitalisapp/vitalis/vitalis/database/models"
)

type HistoryRepository interface {
	// ListByUser returns the full log in append order; callers filter by
	// time window.
	ListByUser(ctx context.Context, userID string) ([]*models.ActionEvent, error)
	AppendBatch(ctx context.Context, events []*models.ActionEvent) error
	DeleteByUser(ctx context.Context, userID string) error
}

type historyRepository struct {
	*BaseRepository
}

func NewHistoryRepository(db *bun.DB) HistoryRepository {
	return &historyRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *historyRepository) ListByUser(ctx context.Context, userID string) ([]*models.ActionEvent, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	var events []*models.ActionEvent
	err := r.DB().NewSelect().
		Model(&events).
		Where("user_id = ?", userID).
		Order("occurred_at ASC", "id ASC").
		Scan(ctx)
	if err != nil {
		return nil, r.HandleErrorWithID("list", "action_event", userID, err)
	}
	return events, nil
}

func (r *historyRepository) AppendBatch(ctx context.Context, events []*models.ActionEvent) error {
	if len(events) == 0 {
		return nil
	}
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	_, err := r.DB().NewInsert().Model(&events).Exec(ctx)
	return r.HandleError("append_batch", "action_event", err)
}

func (r *historyRepository) DeleteByUser(ctx context.Context, userID string) error {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	_, err := r.DB().NewDelete().
		Model((*models.ActionEvent)(nil)).
		Where("user_id = ?", userID).
		Exec(ctx)
	return r.HandleErrorWithID("delete", "action_event", userID, err)
}
