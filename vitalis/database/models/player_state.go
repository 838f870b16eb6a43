package models

import (
	"time"

	"github.com/uptrace/bun"
)

// PlayerState is the persisted gamification aggregate, one row per user.
// Pushes always replace the full row; xp_30d is derived client-side and
// never stored.
type PlayerState struct {
	bun.BaseModel `bun:"table:player_states,alias:ps"`

	UserID   string `bun:"user_id,pk"`
	XP       int64  `bun:"xp,notnull,default:0"`
	Coins    int64  `bun:"coins,notnull,default:0"`
	Vitality int    `bun:"vitality,notnull,default:0"`

	RankIndex    int    `bun:"rank_index,notnull,default:0"`
	RankTier     string `bun:"rank_tier,notnull,default:'Bronze'"`
	RankDivision int    `bun:"rank_division,notnull,default:1"`

	AttrStr int64  `bun:"attr_str,notnull,default:0"`
	AttrInt int64  `bun:"attr_int,notnull,default:0"`
	AttrCre int64  `bun:"attr_cre,notnull,default:0"`
	AttrSoc int64  `bun:"attr_soc,notnull,default:0"`
	Aspect  string `bun:"aspect,notnull,default:'balanced'"`

	BoostMultiplier float64   `bun:"boost_multiplier,notnull,default:1"`
	BoostExpiresAt  time.Time `bun:"boost_expires_at,nullzero"`

	// Version is the monotonic mutation counter used for reconciliation.
	// Rows migrated from the legacy store carry 0.
	Version   int64     `bun:"version,notnull,default:0"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:current_timestamp"`
}
