package repositories

import (
	"context"
	"time"

	"log/slog"

	"github.com/uptrace/bun"
	"github.com/vitalisapp/vitalis/vitalis/database/models"
)

type PlayerRepository interface {
	Get(ctx context.Context, userID string) (*models.PlayerState, error)
	// Upsert replaces the full aggregate row. No partial-field sync.
	Upsert(ctx context.Context, state *models.PlayerState) error
	Delete(ctx context.Context, userID string) error
}

type playerRepository struct {
	*BaseRepository
}

func NewPlayerRepository(db *bun.DB) PlayerRepository {
	return &playerRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *playerRepository) Get(ctx context.Context, userID string) (*models.PlayerState, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	state := new(models.PlayerState)
	err := r.DB().NewSelect().
		Model(state).
		Where("user_id = ?", userID).
		Scan(ctx)
	if err != nil {
		return nil, r.HandleErrorWithID("get", "player_state", userID, err)
	}
	return state, nil
}

func (r *playerRepository) Upsert(ctx context.Context, state *models.PlayerState) error {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	state.UpdatedAt = time.Now()
	_, err := r.DB().NewInsert().
		Model(state).
		On("CONFLICT (user_id) DO UPDATE").
		Set("xp = EXCLUDED.xp").
		Set("coins = EXCLUDED.coins").
		Set("vitality = EXCLUDED.vitality").
		Set("rank_index = EXCLUDED.rank_index").
		Set("rank_tier = EXCLUDED.rank_tier").
		Set("rank_division = EXCLUDED.rank_division").
		Set("attr_str = EXCLUDED.attr_str").
		Set("attr_int = EXCLUDED.attr_int").
		Set("attr_cre = EXCLUDED.attr_cre").
		Set("attr_soc = EXCLUDED.attr_soc").
		Set("aspect = EXCLUDED.aspect").
		Set("boost_multiplier = EXCLUDED.boost_multiplier").
		Set("boost_expires_at = EXCLUDED.boost_expires_at").
		Set("version = EXCLUDED.version").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		slog.Error("Failed to upsert player state",
			slog.String("type", "db"),
			slog.String("user_id", state.UserID),
			slog.Any("error", err))
		return r.HandleErrorWithID("upsert", "player_state", state.UserID, err)
	}
	return nil
}

func (r *playerRepository) Delete(ctx context.Context, userID string) error {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	_, err := r.DB().NewDelete().
		Model((*models.PlayerState)(nil)).
		Where("user_id = ?", userID).
		Exec(ctx)
	return r.HandleErrorWithID("delete", "player_state", userID, err)
}
