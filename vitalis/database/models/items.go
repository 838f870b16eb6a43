package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Sibling collections. Each row is keyed by (user_id, item_id) and pushed as
// a full-row upsert; there is no cross-collection transaction.

type Task struct {
	bun.BaseModel `bun:"table:tasks,alias:t"`

	UserID    string    `bun:"user_id,pk"`
	ItemID    string    `bun:"item_id,pk"`
	Title     string    `bun:"title,notnull"`
	Tags      []string  `bun:"tags,type:jsonb"`
	Category  string    `bun:"category,nullzero"`
	Done      bool      `bun:"done,notnull,default:false"`
	DueAt     time.Time `bun:"due_at,nullzero"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:current_timestamp"`
}

type Habit struct {
	bun.BaseModel `bun:"table:habits,alias:h"`

	UserID     string    `bun:"user_id,pk"`
	ItemID     string    `bun:"item_id,pk"`
	Title      string    `bun:"title,notnull"`
	Tags       []string  `bun:"tags,type:jsonb"`
	Category   string    `bun:"category,nullzero"`
	Streak     int       `bun:"streak,notnull,default:0"`
	LastDoneAt time.Time `bun:"last_done_at,nullzero"`
	UpdatedAt  time.Time `bun:"updated_at,notnull,default:current_timestamp"`
}

type Goal struct {
	bun.BaseModel `bun:"table:goals,alias:g"`

	UserID    string    `bun:"user_id,pk"`
	ItemID    string    `bun:"item_id,pk"`
	Title     string    `bun:"title,notnull"`
	Tags      []string  `bun:"tags,type:jsonb"`
	Category  string    `bun:"category,nullzero"`
	Done      bool      `bun:"done,notnull,default:false"`
	TargetAt  time.Time `bun:"target_at,nullzero"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:current_timestamp"`
}

type ShopItem struct {
	bun.BaseModel `bun:"table:shop_items,alias:si"`

	UserID string `bun:"user_id,pk"`
	ItemID string `bun:"item_id,pk"`
	Name   string `bun:"name,notnull"`
	Price  int64  `bun:"price,notnull,default:0"`
	Owned  int    `bun:"owned,notnull,default:0"`
	// Boost items grant a temporary XP multiplier when used.
	BoostMultiplier float64   `bun:"boost_multiplier,notnull,default:1"`
	BoostMinutes    int       `bun:"boost_minutes,notnull,default:0"`
	UpdatedAt       time.Time `bun:"updated_at,notnull,default:current_timestamp"`
}
