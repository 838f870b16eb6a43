package sync

import (
	"context"

	"github.com/vitalisapp/vitalis/vitalis/database/models"
)

//go:generate mockgen -source=remote.go -destination=mock/remote.go -package=mock

// RemoteStore is the persistence boundary of the sync coordinator. The
// production implementation lives in the database package; tests use the
// generated mock.
type RemoteStore interface {
	// GetAggregate returns nil without error when the user has no row yet.
	GetAggregate(ctx context.Context, userID string) (*models.PlayerState, error)
	SaveAggregate(ctx context.Context, state *models.PlayerState) error

	ListHistory(ctx context.Context, userID string) ([]*models.ActionEvent, error)
	AppendHistory(ctx context.Context, events []*models.ActionEvent) error

	ListTasks(ctx context.Context, userID string) ([]*models.Task, error)
	SaveTasks(ctx context.Context, tasks []*models.Task) error

	ListHabits(ctx context.Context, userID string) ([]*models.Habit, error)
	SaveHabits(ctx context.Context, habits []*models.Habit) error

	ListGoals(ctx context.Context, userID string) ([]*models.Goal, error)
	SaveGoals(ctx context.Context, goals []*models.Goal) error

	ListShopItems(ctx context.Context, userID string) ([]*models.ShopItem, error)
	SaveShopItems(ctx context.Context, items []*models.ShopItem) error

	ResetUser(ctx context.Context, userID string) error
}
