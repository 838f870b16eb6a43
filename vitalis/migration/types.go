package migration

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Legacy documents as the first-generation app stored them. Numbers arrive as
// float64 because the legacy client wrote everything through JSON, and
// timestamps are epoch milliseconds from Date.now().

type LegacyAttributes struct {
	Strength     float64 `bson:"str"`
	Intelligence float64 `bson:"int"`
	Creativity   float64 `bson:"cre"`
	Social       float64 `bson:"soc"`
}

type LegacyBoost struct {
	Multiplier float64 `bson:"multiplier"`
	ExpiresAt  float64 `bson:"expiresAt"`
}

type LegacyUser struct {
	ID         primitive.ObjectID `bson:"_id"`
	UserID     string             `bson:"userId"`
	XP         float64            `bson:"xp"`
	Coins      float64            `bson:"coins"`
	Vitality   float64            `bson:"vitality"`
	Attributes LegacyAttributes   `bson:"attributes"`
	Boost      *LegacyBoost       `bson:"activeBoost"`
	UpdatedAt  float64            `bson:"lastUpdated"`
}

type LegacyHistoryEvent struct {
	ID       primitive.ObjectID `bson:"_id"`
	UserID   string             `bson:"userId"`
	T        float64            `bson:"t"`
	Kind     string             `bson:"kind"`
	XP       float64            `bson:"xp"`
	Coins    float64            `bson:"coins"`
	Tags     []string           `bson:"tags"`
	Category string             `bson:"category"`
}

type LegacyTask struct {
	ID       primitive.ObjectID `bson:"_id"`
	UserID   string             `bson:"userId"`
	ItemID   string             `bson:"id"`
	Title    string             `bson:"title"`
	Tags     []string           `bson:"tags"`
	Category string             `bson:"category"`
	Done     bool               `bson:"done"`
	DueAt    float64            `bson:"dueAt"`
}

type LegacyHabit struct {
	ID         primitive.ObjectID `bson:"_id"`
	UserID     string             `bson:"userId"`
	ItemID     string             `bson:"id"`
	Title      string             `bson:"title"`
	Tags       []string           `bson:"tags"`
	Category   string             `bson:"category"`
	Streak     float64            `bson:"streak"`
	LastDoneAt float64            `bson:"lastDone"`
}

type LegacyGoal struct {
	ID       primitive.ObjectID `bson:"_id"`
	UserID   string             `bson:"userId"`
	ItemID   string             `bson:"id"`
	Title    string             `bson:"title"`
	Tags     []string           `bson:"tags"`
	Category string             `bson:"category"`
	Done     bool               `bson:"done"`
	TargetAt float64            `bson:"targetAt"`
}

type LegacyShopItem struct {
	ID              primitive.ObjectID `bson:"_id"`
	UserID          string             `bson:"userId"`
	ItemID          string             `bson:"id"`
	Name            string             `bson:"name"`
	Price           float64            `bson:"price"`
	Owned           float64            `bson:"owned"`
	BoostMultiplier float64            `bson:"boostMultiplier"`
	BoostMinutes    float64            `bson:"boostMinutes"`
}

// MigrationStats tracks progress and issues across the whole import.
type MigrationStats struct {
	Tables         map[string]*TableStats `json:"tables"`
	StartTime      time.Time              `json:"start_time"`
	EndTime        time.Time              `json:"end_time"`
	TotalErrors    int                    `json:"total_errors"`
	TotalSkipped   int                    `json:"total_skipped"`
	TotalProcessed int                    `json:"total_processed"`
}

// TableStats tracks stats for one target table.
type TableStats struct {
	TableName      string          `json:"table_name"`
	Processed      int             `json:"processed"`
	Successful     int             `json:"successful"`
	Skipped        int             `json:"skipped"`
	Errors         int             `json:"errors"`
	SkippedRecords []SkippedRecord `json:"skipped_records"`
	ErrorRecords   []ErrorRecord   `json:"error_records"`
}

// SkippedRecord records why a document was skipped.
type SkippedRecord struct {
	Reason    string    `json:"reason"`
	Data      string    `json:"data"`
	Timestamp time.Time `json:"timestamp"`
}

// ErrorRecord records an import failure.
type ErrorRecord struct {
	Error     string    `json:"error"`
	Data      string    `json:"data"`
	Timestamp time.Time `json:"timestamp"`
}
