package vitalis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/vitalisapp/vitalis/vitalis/category"
	"github.com/vitalisapp/vitalis/vitalis/collections"
	"github.com/vitalisapp/vitalis/vitalis/database"
	"github.com/vitalisapp/vitalis/vitalis/database/models"
	"github.com/vitalisapp/vitalis/vitalis/player"
	"github.com/vitalisapp/vitalis/vitalis/progression"
	"github.com/vitalisapp/vitalis/vitalis/services"
	"github.com/vitalisapp/vitalis/vitalis/sync"
	"github.com/vitalisapp/vitalis/vitalis/utils"
)

// App wires one user session end to end: the local aggregate and sibling
// collections, the debounced sync coordinator over the relational store, the
// LRU snapshot cache and the optional archive uploader.
type App struct {
	Cfg     *Config
	Version string
	Commit  string
	UserID  string

	DB          *database.DB
	Remote      *database.Store
	Cache       *sync.AggregateCache
	Calculator  *progression.Calculator
	Categories  *category.Resolver
	Player      *player.Store
	Tasks       *collections.TaskStore
	Habits      *collections.HabitStore
	Goals       *collections.GoalStore
	Shop        *collections.ShopStore
	Coordinator *sync.Coordinator
	Archive     *services.ArchiveService
	Processes   *utils.BackgroundProcessManager

	aggregateSyncer *sync.AggregateSyncer
}

func New(cfg *Config, version, commit string) *App {
	return &App{
		Cfg:       cfg,
		Version:   version,
		Commit:    commit,
		Processes: utils.NewBackgroundProcessManager(),
	}
}

// ConnectDatabase opens the relational store and ensures the schema exists.
func ConnectDatabase(ctx context.Context, cfg *Config) (*database.DB, error) {
	db, err := database.New(ctx, database.Config{
		Host:         cfg.DB.Host,
		Port:         cfg.DB.Port,
		User:         cfg.DB.User,
		Password:     cfg.DB.Password,
		Database:     cfg.DB.Database,
		PoolSize:     cfg.DB.PoolSize,
		MaxIdleConns: cfg.DB.MaxIdleConns,
		MaxLifetime:  cfg.DB.MaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	// The pool is verified during construction; Ping also exercises the bun
	// connector the repositories run on.
	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("verify database: %w", err)
	}
	if err := db.InitializeSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}
	return db, nil
}

// Setup connects the database, builds every store for userID and performs
// the cold-start sequence: cache hydration first, then the remote pull.
// ctx outlives Setup; it is the base context of the sync coordinator.
func (a *App) Setup(ctx context.Context, userID string) error {
	a.UserID = userID

	connectCtx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()
	db, err := ConnectDatabase(connectCtx, a.Cfg)
	if err != nil {
		return err
	}
	a.DB = db

	a.Remote = database.NewStore(db)
	a.Cache = sync.NewAggregateCache(a.Cfg.Sync.CacheSize)
	a.Calculator = progression.NewCalculator(a.Cfg.Game)
	a.Categories = category.NewResolver()

	debounce := time.Duration(a.Cfg.Sync.DebounceMS) * time.Millisecond
	a.Coordinator = sync.NewCoordinator(ctx, userID, debounce)

	a.Player = player.NewStore(userID, a.Calculator, a.Categories,
		sync.UserCacheWriter{Cache: a.Cache, UserID: userID},
		func() { a.Coordinator.MarkDirty(sync.CollectionPlayer) })

	a.Tasks = collections.NewTaskStore(userID, a.Player,
		func() { a.Coordinator.MarkDirty(sync.CollectionTasks) })
	a.Habits = collections.NewHabitStore(userID, a.Player,
		func() { a.Coordinator.MarkDirty(sync.CollectionHabits) })
	a.Goals = collections.NewGoalStore(userID, a.Player,
		func() { a.Coordinator.MarkDirty(sync.CollectionGoals) })
	a.Shop = collections.NewShopStore(userID, a.Player,
		func() { a.Coordinator.MarkDirty(sync.CollectionShop) })

	protection := time.Duration(a.Cfg.Sync.ProtectionWindowSec) * time.Second
	a.aggregateSyncer = sync.NewAggregateSyncer(userID, a.Player, a.Remote, protection)
	a.Coordinator.Register(a.aggregateSyncer)
	a.Coordinator.Register(sync.FuncSyncer{
		Collection: sync.CollectionTasks,
		PushFunc:   func(ctx context.Context) error { return a.Remote.SaveTasks(ctx, a.Tasks.Snapshot()) },
		PullFunc: func(ctx context.Context) error {
			rows, err := a.Remote.ListTasks(ctx, userID)
			if err != nil {
				return err
			}
			a.Tasks.Load(rows)
			return nil
		},
	})
	a.Coordinator.Register(sync.FuncSyncer{
		Collection: sync.CollectionHabits,
		PushFunc:   func(ctx context.Context) error { return a.Remote.SaveHabits(ctx, a.Habits.Snapshot()) },
		PullFunc: func(ctx context.Context) error {
			rows, err := a.Remote.ListHabits(ctx, userID)
			if err != nil {
				return err
			}
			a.Habits.Load(rows)
			return nil
		},
	})
	a.Coordinator.Register(sync.FuncSyncer{
		Collection: sync.CollectionGoals,
		PushFunc:   func(ctx context.Context) error { return a.Remote.SaveGoals(ctx, a.Goals.Snapshot()) },
		PullFunc: func(ctx context.Context) error {
			rows, err := a.Remote.ListGoals(ctx, userID)
			if err != nil {
				return err
			}
			a.Goals.Load(rows)
			return nil
		},
	})
	a.Coordinator.Register(sync.FuncSyncer{
		Collection: sync.CollectionShop,
		PushFunc:   func(ctx context.Context) error { return a.Remote.SaveShopItems(ctx, a.Shop.Snapshot()) },
		PullFunc: func(ctx context.Context) error {
			rows, err := a.Remote.ListShopItems(ctx, userID)
			if err != nil {
				return err
			}
			a.Shop.Load(rows)
			return nil
		},
	})

	// Cached snapshot first so a restart mid-push starts from the freshest
	// local values, then the authoritative pull reconciles against remote.
	if entry, ok := a.Cache.Get(userID); ok {
		a.Player.Hydrate(entry)
		slog.Info("Hydrated aggregate from cache",
			slog.String("type", "state"),
			slog.String("user_id", userID),
			slog.Int64("version", entry.Version))
	}
	a.Coordinator.PullAll(ctx)

	if a.Cfg.Backup.Enabled {
		if err := a.setupArchive(); err != nil {
			return err
		}
	}

	slog.Info("Session ready",
		slog.String("type", "sys"),
		slog.String("user_id", userID),
		slog.String("version", a.Version),
		slog.String("commit", a.Commit))
	return nil
}

func (a *App) setupArchive() error {
	archive, err := services.NewArchiveService(
		a.Cfg.Backup.Key,
		a.Cfg.Backup.Secret,
		a.Cfg.Backup.Region,
		a.Cfg.Backup.Bucket,
		a.Cfg.Backup.Prefix,
	)
	if err != nil {
		return fmt.Errorf("setup archive: %w", err)
	}
	a.Archive = archive
	slog.Info("Archive service ready",
		slog.String("type", "sys"),
		slog.String("bucket", archive.GetBucket()),
		slog.String("region", archive.GetRegion()))

	interval := time.Duration(a.Cfg.Backup.IntervalMin) * time.Minute
	a.Processes.StartPeriodic("archive", "periodic account snapshot upload", interval, func(ctx context.Context) {
		if err := a.UploadSnapshot(ctx); err != nil {
			slog.Error("Snapshot upload failed",
				slog.String("type", "sys"),
				slog.String("user_id", a.UserID),
				slog.Any("error", err))
		}
	})
	return nil
}

// AccountSnapshot is the archived JSON shape: the full aggregate plus every
// collection, self-contained enough to rebuild an account.
type AccountSnapshot struct {
	UserID     string             `json:"user_id"`
	TakenAt    time.Time          `json:"taken_at"`
	State      player.State       `json:"state"`
	History    []player.Event     `json:"history"`
	Tasks      []*models.Task     `json:"tasks"`
	Habits     []*models.Habit    `json:"habits"`
	Goals      []*models.Goal     `json:"goals"`
	ShopItems  []*models.ShopItem `json:"shop_items"`
	AppVersion string             `json:"app_version"`
}

// UploadSnapshot archives the current account state and prunes old copies.
func (a *App) UploadSnapshot(ctx context.Context) error {
	if a.Archive == nil {
		return fmt.Errorf("archive service not configured")
	}
	snap := AccountSnapshot{
		UserID:     a.UserID,
		TakenAt:    time.Now().UTC(),
		State:      a.Player.State(),
		History:    a.Player.Events(),
		Tasks:      a.Tasks.Snapshot(),
		Habits:     a.Habits.Snapshot(),
		Goals:      a.Goals.Snapshot(),
		ShopItems:  a.Shop.Snapshot(),
		AppVersion: a.Version,
	}
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	key, err := a.Archive.Upload(ctx, a.UserID, payload)
	if err != nil {
		return err
	}
	slog.Info("Snapshot archived",
		slog.String("type", "sys"),
		slog.String("user_id", a.UserID),
		slog.String("key", key))
	return a.Archive.Prune(ctx, a.UserID, 10)
}

// RestoreSnapshot replaces the whole account with an archived snapshot and
// pushes the restored state out. An empty key restores the newest snapshot.
func (a *App) RestoreSnapshot(ctx context.Context, key string) error {
	if a.Archive == nil {
		return fmt.Errorf("archive service not configured")
	}
	var payload []byte
	var err error
	if key == "" {
		payload, err = a.Archive.Latest(ctx, a.UserID)
	} else {
		payload, err = a.Archive.Restore(ctx, key)
	}
	if err != nil {
		return err
	}
	if payload == nil {
		return fmt.Errorf("no snapshots archived for %s", a.UserID)
	}

	var snap AccountSnapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return fmt.Errorf("decode snapshot: %w", err)
	}
	if snap.UserID != a.UserID {
		return fmt.Errorf("snapshot belongs to %s, session is %s", snap.UserID, a.UserID)
	}

	// Remote rows are wiped first so the restored history does not append
	// onto whatever the account held before.
	if err := a.Remote.ResetUser(ctx, a.UserID); err != nil {
		return fmt.Errorf("clear remote rows: %w", err)
	}

	a.Player.Restore(snap.State, snap.History)
	a.aggregateSyncer.Rebase(0)
	a.Tasks.Load(snap.Tasks)
	a.Habits.Load(snap.Habits)
	a.Goals.Load(snap.Goals)
	a.Shop.Load(snap.ShopItems)

	a.Coordinator.PushAll(ctx)
	slog.Info("Account restored from snapshot",
		slog.String("type", "sys"),
		slog.String("user_id", a.UserID),
		slog.String("key", key))
	return nil
}

// ResetAccount wipes the local aggregate, all collections and the remote
// rows. The reset still flows through the coordinator so the zeroed state is
// what persists.
func (a *App) ResetAccount(ctx context.Context) error {
	a.Player.Reset()
	a.Tasks.Clear()
	a.Habits.Clear()
	a.Goals.Clear()
	a.Shop.Clear()
	a.Cache.Remove(a.UserID)

	if err := a.Remote.ResetUser(ctx, a.UserID); err != nil {
		return fmt.Errorf("reset remote rows: %w", err)
	}
	a.Coordinator.PushAll(ctx)
	return nil
}

// Shutdown flushes pending pushes and releases every resource. Safe to call
// with a partially constructed app.
func (a *App) Shutdown(ctx context.Context) {
	if a.Coordinator != nil {
		a.Coordinator.Flush(ctx)
		a.Coordinator.Stop()
	}
	if err := a.Processes.Shutdown(10 * time.Second); err != nil {
		slog.Warn("Background processes did not stop cleanly",
			slog.String("type", "sys"),
			slog.Any("error", err))
	}
	if a.DB != nil {
		a.DB.Close()
	}
	slog.Info("Session closed",
		slog.String("type", "sys"),
		slog.String("user_id", a.UserID))
}
