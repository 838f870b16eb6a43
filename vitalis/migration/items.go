package migration

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Item collection imports. All four follow the same shape: decode, convert,
// upsert on (user_id, item_id) without overwriting rows the live app already
// rewrote.

func (m *Migrator) migrateTasks(ctx context.Context) error {
	ts := m.tableStats("tasks")
	cursor, err := m.coll("tasks").Find(ctx, bson.M{}, options.Find().SetBatchSize(int32(m.batchSize)))
	if err != nil {
		return fmt.Errorf("query legacy tasks: %w", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var lt LegacyTask
		if err := cursor.Decode(&lt); err != nil {
			m.recordError(ts, err, cursor.Current.String())
			continue
		}
		ts.Processed++
		if lt.UserID == "" {
			m.recordSkip(ts, "missing userId", lt)
			continue
		}
		task := m.convertTask(lt)
		if task == nil {
			m.recordSkip(ts, "missing item id", lt)
			continue
		}
		if err := m.upsertItem(ctx, ts, task, lt); err != nil {
			continue
		}
	}
	return cursor.Err()
}

func (m *Migrator) migrateHabits(ctx context.Context) error {
	ts := m.tableStats("habits")
	cursor, err := m.coll("habits").Find(ctx, bson.M{}, options.Find().SetBatchSize(int32(m.batchSize)))
	if err != nil {
		return fmt.Errorf("query legacy habits: %w", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var lh LegacyHabit
		if err := cursor.Decode(&lh); err != nil {
			m.recordError(ts, err, cursor.Current.String())
			continue
		}
		ts.Processed++
		if lh.UserID == "" {
			m.recordSkip(ts, "missing userId", lh)
			continue
		}
		habit := m.convertHabit(lh)
		if habit == nil {
			m.recordSkip(ts, "missing item id", lh)
			continue
		}
		if err := m.upsertItem(ctx, ts, habit, lh); err != nil {
			continue
		}
	}
	return cursor.Err()
}

func (m *Migrator) migrateGoals(ctx context.Context) error {
	ts := m.tableStats("goals")
	cursor, err := m.coll("goals").Find(ctx, bson.M{}, options.Find().SetBatchSize(int32(m.batchSize)))
	if err != nil {
		return fmt.Errorf("query legacy goals: %w", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var lg LegacyGoal
		if err := cursor.Decode(&lg); err != nil {
			m.recordError(ts, err, cursor.Current.String())
			continue
		}
		ts.Processed++
		if lg.UserID == "" {
			m.recordSkip(ts, "missing userId", lg)
			continue
		}
		goal := m.convertGoal(lg)
		if goal == nil {
			m.recordSkip(ts, "missing item id", lg)
			continue
		}
		if err := m.upsertItem(ctx, ts, goal, lg); err != nil {
			continue
		}
	}
	return cursor.Err()
}

func (m *Migrator) migrateShopItems(ctx context.Context) error {
	ts := m.tableStats("shop_items")
	cursor, err := m.coll("shop").Find(ctx, bson.M{}, options.Find().SetBatchSize(int32(m.batchSize)))
	if err != nil {
		return fmt.Errorf("query legacy shop items: %w", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var ls LegacyShopItem
		if err := cursor.Decode(&ls); err != nil {
			m.recordError(ts, err, cursor.Current.String())
			continue
		}
		ts.Processed++
		if ls.UserID == "" {
			m.recordSkip(ts, "missing userId", ls)
			continue
		}
		item := m.convertShopItem(ls)
		if item == nil {
			m.recordSkip(ts, "missing item id", ls)
			continue
		}
		if err := m.upsertItem(ctx, ts, item, ls); err != nil {
			continue
		}
	}
	return cursor.Err()
}

// upsertItem inserts one converted row, leaving existing rows untouched, and
// records the outcome.
func (m *Migrator) upsertItem(ctx context.Context, ts *TableStats, model any, doc any) error {
	_, err := m.pgDB.NewInsert().
		Model(model).
		On("CONFLICT (user_id, item_id) DO NOTHING").
		Exec(ctx)
	if err != nil {
		m.recordError(ts, err, doc)
		return err
	}
	ts.Successful++
	return nil
}
