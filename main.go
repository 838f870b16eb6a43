package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vitalisapp/vitalis/vitalis"
	"github.com/vitalisapp/vitalis/vitalis/logger"
	"github.com/vitalisapp/vitalis/vitalis/migration"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	slog.SetDefault(slog.New(logger.NewHandler(slog.LevelInfo)))

	slog.Info("Starting Vitalis",
		slog.String("version", version),
		slog.String("commit", commit))

	path := flag.String("config", "config.toml", "path to config")
	userID := flag.String("user", "", "user id for this session")
	migrateLegacy := flag.Bool("migrate-legacy", false, "import the legacy Mongo store and exit")
	skipBackup := flag.Bool("skip-backup", false, "disable snapshot archival for this session")
	flag.Parse()

	cfg, err := vitalis.LoadConfig(*path)
	if err != nil {
		slog.Error("Failed to load configuration", slog.Any("error", err))
		os.Exit(-1)
	}
	slog.SetDefault(slog.New(logger.NewHandler(cfg.Log.Level)))
	slog.Info("Configuration loaded successfully")

	if *skipBackup {
		cfg.Backup.Enabled = false
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app := vitalis.New(cfg, version, commit)

	if *migrateLegacy {
		if err := runLegacyImport(ctx, cfg); err != nil {
			slog.Error("Legacy import failed", slog.Any("error", err))
			os.Exit(-1)
		}
		return
	}

	if *userID == "" {
		slog.Error("Missing required -user flag")
		os.Exit(-1)
	}

	if err := app.Setup(ctx, *userID); err != nil {
		slog.Error("Failed to set up session", slog.Any("error", err))
		os.Exit(-1)
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	slog.Info("Shutting down", slog.String("type", "sys"))
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	app.Shutdown(shutdownCtx)
}

// runLegacyImport connects both stores and copies every legacy document into
// the relational schema. Runs standalone; the sync session never starts.
func runLegacyImport(ctx context.Context, cfg *vitalis.Config) error {
	if cfg.Legacy.MongoURI == "" {
		slog.Error("legacy.mongo_uri is not configured")
		os.Exit(-1)
	}

	db, err := vitalis.ConnectDatabase(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	client, err := migration.Connect(ctx, cfg.Legacy.MongoURI)
	if err != nil {
		return err
	}
	defer func() { _ = client.Disconnect(ctx) }()

	m := migration.NewMigrator(db.BunDB(), client, cfg.Legacy.Database)
	if err := m.MigrateAll(ctx); err != nil {
		return err
	}
	if err := m.SaveStats("migration_stats.json"); err != nil {
		slog.Warn("Could not write migration report", slog.Any("error", err))
	}
	return nil
}
