package vitalis

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/vitalisapp/vitalis/vitalis/progression"
)

func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	cfg := DefaultConfig()
	if err = toml.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, err
	}
	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

type Config struct {
	Log    LogConfig          `toml:"log"`
	DB     DBConfig           `toml:"db"`
	Game   progression.Config `toml:"game"`
	Sync   SyncConfig         `toml:"sync"`
	Backup BackupConfig       `toml:"backup"`
	Legacy LegacyConfig       `toml:"legacy"`
}

type LogConfig struct {
	Level     slog.Level `toml:"level"`
	Format    string     `toml:"format"`
	AddSource bool       `toml:"add_source"`
}

type DBConfig struct {
	Host         string `toml:"host"`
	Port         int    `toml:"port"`
	User         string `toml:"user"`
	Password     string `toml:"password"`
	Database     string `toml:"database"`
	PoolSize     int    `toml:"pool_size"`
	MaxIdleConns int    `toml:"max_idle_conns"`
	MaxLifetime  int    `toml:"max_lifetime"`
}

type SyncConfig struct {
	// DebounceMS is how long a collection sits in the pending state after a
	// change before its push fires. A new change restarts the wait.
	DebounceMS int `toml:"debounce_ms"`
	// ProtectionWindowSec guards freshly written local values against stale
	// remote rows that predate the version column.
	ProtectionWindowSec int `toml:"protection_window_sec"`
	CacheSize           int `toml:"cache_size"`
}

type BackupConfig struct {
	Enabled     bool   `toml:"enabled"`
	Key         string `toml:"key"`
	Secret      string `toml:"secret"`
	Region      string `toml:"region"`
	Bucket      string `toml:"bucket"`
	Prefix      string `toml:"prefix"`
	IntervalMin int    `toml:"interval_min"`
}

type LegacyConfig struct {
	MongoURI string `toml:"mongo_uri"`
	Database string `toml:"database"`
}

func DefaultConfig() Config {
	return Config{
		Log: LogConfig{Level: slog.LevelInfo, Format: "text"},
		DB: DBConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "vitalis",
			Database: "vitalis",
			PoolSize: 10,
		},
		Game: progression.DefaultConfig(),
		Sync: SyncConfig{
			DebounceMS:          2000,
			ProtectionWindowSec: 12,
			CacheSize:           1024,
		},
		Backup: BackupConfig{
			Prefix:      "backups",
			IntervalMin: 60,
		},
	}
}

func (c *Config) Validate() error {
	if c.Sync.DebounceMS <= 0 {
		return fmt.Errorf("sync.debounce_ms must be positive, got %d", c.Sync.DebounceMS)
	}
	if c.Sync.ProtectionWindowSec < 0 {
		return fmt.Errorf("sync.protection_window_sec must not be negative, got %d", c.Sync.ProtectionWindowSec)
	}
	if c.Sync.CacheSize <= 0 {
		return fmt.Errorf("sync.cache_size must be positive, got %d", c.Sync.CacheSize)
	}
	if err := c.Game.Validate(); err != nil {
		return err
	}
	return nil
}
