package models

import "github.com/uptrace/bun"

// ActionEvent is one append-only history row. Never updated; deleted only by
// a full state reset.
type ActionEvent struct {
	bun.BaseModel `bun:"table:action_events,alias:ae"`

	ID         int64    `bun:"id,pk,autoincrement"`
	UserID     string   `bun:"user_id,notnull"`
	OccurredAt int64    `bun:"occurred_at,notnull"` // epoch milliseconds
	Kind       string   `bun:"kind,notnull"`
	XPDelta    int      `bun:"xp_delta,notnull,default:0"`
	CoinDelta  int      `bun:"coin_delta,notnull,default:0"`
	Tags       []string `bun:"tags,type:jsonb"`
	Category   string   `bun:"category,nullzero"`
}
