package repositories

import (
	"context"
	"time"

	"github.com/uptrace/bun"
	"github.com/vitalisapp/vitalis/vitalis/database/models"
)

type ShopRepository interface {
	ListByUser(ctx context.Context, userID string) ([]*models.ShopItem, error)
	UpsertBatch(ctx context.Context, items []*models.ShopItem) error
	DeleteByUser(ctx context.Context, userID string) error
}

type shopRepository struct {
	*BaseRepository
}

func NewShopRepository(db *bun.DB) ShopRepository {
	return &shopRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *shopRepository) ListByUser(ctx context.Context, userID string) ([]*models.ShopItem, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	var items []*models.ShopItem
	err := r.DB().NewSelect().
		Model(&items).
		Where("user_id = ?", userID).
		Order("item_id ASC").
		Scan(ctx)
	if err != nil {
		return nil, r.HandleErrorWithID("list", "shop_item", userID, err)
	}
	return items, nil
}

func (r *shopRepository) UpsertBatch(ctx context.Context, items []*models.ShopItem) error {
	if len(items) == 0 {
		return nil
	}
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	now := time.Now()
	for _, it := range items {
		it.UpdatedAt = now
	}

	_, err := r.DB().NewInsert().
		Model(&items).
		On("CONFLICT (user_id, item_id) DO UPDATE").
		Set("name = EXCLUDED.name").
		Set("price = EXCLUDED.price").
		Set("owned = EXCLUDED.owned").
		Set("boost_multiplier = EXCLUDED.boost_multiplier").
		Set("boost_minutes = EXCLUDED.boost_minutes").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	return r.HandleError("upsert_batch", "shop_item", err)
}

func (r *shopRepository) DeleteByUser(ctx context.Context, userID string) error {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	_, err := r.DB().NewDelete().
		Model((*models.ShopItem)(nil)).
		Where("user_id = ?", userID).
		Exec(ctx)
	return r.HandleErrorWithID("delete_all", "shop_item", userID, err)
}
