package migration

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/uptrace/bun"
	"github.com/vitalisapp/vitalis/vitalis/database/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Migrator imports a legacy Mongo database into the relational store. The
// import is idempotent; every insert is an upsert keyed the same way the live
// tables are, so re-running after a partial failure is safe.
type Migrator struct {
	pgDB      *bun.DB
	mongoDB   *mongo.Database
	batchSize int
	collNames map[string]string
	stats     MigrationStats
}

func NewMigrator(pgDB *bun.DB, client *mongo.Client, dbName string) *Migrator {
	return &Migrator{
		pgDB:      pgDB,
		mongoDB:   client.Database(dbName),
		batchSize: 500,
		collNames: map[string]string{
			"users":   "users",
			"history": "history",
			"tasks":   "tasks",
			"habits":  "habits",
			"goals":   "goals",
			"shop":    "shopItems",
		},
		stats: MigrationStats{Tables: make(map[string]*TableStats)},
	}
}

// SetBatchSize overrides the insert batch size.
func (m *Migrator) SetBatchSize(size int) {
	if size > 0 {
		m.batchSize = size
	}
}

// SetCollectionName overrides a legacy collection name for one kind.
func (m *Migrator) SetCollectionName(kind, name string) {
	if kind != "" && name != "" {
		m.collNames[kind] = name
	}
}

func (m *Migrator) coll(kind string) *mongo.Collection {
	return m.mongoDB.Collection(m.collNames[kind])
}

// Stats returns the accumulated import statistics.
func (m *Migrator) Stats() MigrationStats {
	return m.stats
}

// SaveStats writes the import report as JSON for offline inspection.
func (m *Migrator) SaveStats(path string) error {
	data, err := json.MarshalIndent(m.stats, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal stats: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write stats: %w", err)
	}
	return nil
}

// Connect dials the legacy Mongo deployment and verifies it is reachable.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to legacy store: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping legacy store: %w", err)
	}
	return client, nil
}

// MigrateAll runs every import step in dependency order. Player states go
// first so history rows always reference an existing user.
func (m *Migrator) MigrateAll(ctx context.Context) error {
	m.stats.StartTime = time.Now()
	slog.Info("Starting legacy import",
		slog.String("type", "db"),
		slog.String("database", m.mongoDB.Name()))

	steps := []struct {
		name    string
		migrate func(context.Context) error
	}{
		{"player_states", m.migrateUsers},
		{"action_events", m.migrateHistory},
		{"tasks", m.migrateTasks},
		{"habits", m.migrateHabits},
		{"goals", m.migrateGoals},
		{"shop_items", m.migrateShopItems},
	}

	for _, step := range steps {
		start := time.Now()
		if err := step.migrate(ctx); err != nil {
			m.stats.EndTime = time.Now()
			return fmt.Errorf("migrate %s: %w", step.name, err)
		}
		slog.Info("Import step finished",
			slog.String("type", "db"),
			slog.String("step", step.name),
			slog.Duration("took", time.Since(start)))
	}

	m.stats.EndTime = time.Now()
	for _, ts := range m.stats.Tables {
		m.stats.TotalProcessed += ts.Processed
		m.stats.TotalSkipped += ts.Skipped
		m.stats.TotalErrors += ts.Errors
	}
	slog.Info("Legacy import complete",
		slog.String("type", "db"),
		slog.Int("processed", m.stats.TotalProcessed),
		slog.Int("skipped", m.stats.TotalSkipped),
		slog.Int("errors", m.stats.TotalErrors),
		slog.Duration("took", m.stats.EndTime.Sub(m.stats.StartTime)))
	return nil
}

func (m *Migrator) tableStats(name string) *TableStats {
	ts, ok := m.stats.Tables[name]
	if !ok {
		ts = &TableStats{TableName: name}
		m.stats.Tables[name] = ts
	}
	return ts
}

func (m *Migrator) recordSkip(ts *TableStats, reason string, doc any) {
	ts.Skipped++
	data, _ := json.Marshal(doc)
	ts.SkippedRecords = append(ts.SkippedRecords, SkippedRecord{
		Reason:    reason,
		Data:      string(data),
		Timestamp: time.Now(),
	})
}

func (m *Migrator) recordError(ts *TableStats, err error, doc any) {
	ts.Errors++
	data, _ := json.Marshal(doc)
	ts.ErrorRecords = append(ts.ErrorRecords, ErrorRecord{
		Error:     err.Error(),
		Data:      string(data),
		Timestamp: time.Now(),
	})
}

func (m *Migrator) migrateUsers(ctx context.Context) error {
	ts := m.tableStats("player_states")
	cursor, err := m.coll("users").Find(ctx, bson.M{}, options.Find().SetBatchSize(int32(m.batchSize)))
	if err != nil {
		return fmt.Errorf("query legacy users: %w", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var lu LegacyUser
		if err := cursor.Decode(&lu); err != nil {
			m.recordError(ts, err, cursor.Current.String())
			continue
		}
		ts.Processed++
		if lu.UserID == "" {
			m.recordSkip(ts, "missing userId", lu)
			continue
		}

		state := m.convertUser(lu)
		_, err := m.pgDB.NewInsert().
			Model(state).
			On("CONFLICT (user_id) DO NOTHING").
			Exec(ctx)
		if err != nil {
			m.recordError(ts, err, lu)
			continue
		}
		ts.Successful++
	}
	return cursor.Err()
}

func (m *Migrator) migrateHistory(ctx context.Context) error {
	ts := m.tableStats("action_events")

	// Event rows have no natural key, so idempotence is per user: anyone who
	// already has history is skipped wholesale on a re-run.
	var seeded []string
	err := m.pgDB.NewSelect().
		Model((*models.ActionEvent)(nil)).
		ColumnExpr("DISTINCT user_id").
		Scan(ctx, &seeded)
	if err != nil {
		return fmt.Errorf("list seeded users: %w", err)
	}
	seededSet := make(map[string]struct{}, len(seeded))
	for _, id := range seeded {
		seededSet[id] = struct{}{}
	}

	opts := options.Find().
		SetBatchSize(int32(m.batchSize)).
		SetSort(bson.D{{Key: "t", Value: 1}})
	cursor, err := m.coll("history").Find(ctx, bson.M{}, opts)
	if err != nil {
		return fmt.Errorf("query legacy history: %w", err)
	}
	defer cursor.Close(ctx)

	batch := make([]*models.ActionEvent, 0, m.batchSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		_, err := m.pgDB.NewInsert().Model(&batch).Exec(ctx)
		if err != nil {
			return err
		}
		ts.Successful += len(batch)
		batch = batch[:0]
		return nil
	}

	for cursor.Next(ctx) {
		var le LegacyHistoryEvent
		if err := cursor.Decode(&le); err != nil {
			m.recordError(ts, err, cursor.Current.String())
			continue
		}
		ts.Processed++
		if le.UserID == "" {
			m.recordSkip(ts, "missing userId", le)
			continue
		}
		if _, ok := seededSet[le.UserID]; ok {
			m.recordSkip(ts, "user already has history", le)
			continue
		}
		event := m.convertEvent(le)
		if event == nil {
			m.recordSkip(ts, "unknown action kind", le)
			continue
		}
		batch = append(batch, event)
		if len(batch) >= m.batchSize {
			if err := flush(); err != nil {
				return fmt.Errorf("insert history batch: %w", err)
			}
		}
	}
	if err := flush(); err != nil {
		return fmt.Errorf("insert history batch: %w", err)
	}
	return cursor.Err()
}
