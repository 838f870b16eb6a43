package vitalis

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
[db]
host = "db.internal"
port = 5433
user = "vitalis"
database = "vitalis_prod"

[sync]
debounce_ms = 1500
protection_window_sec = 10

[game]
habit_xp = 12
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.DB.Host != "db.internal" || cfg.DB.Port != 5433 {
		t.Errorf("DB config = %+v, want values from file", cfg.DB)
	}
	if cfg.Sync.DebounceMS != 1500 {
		t.Errorf("DebounceMS = %d, want 1500", cfg.Sync.DebounceMS)
	}
	if cfg.Game.HabitXP != 12 {
		t.Errorf("HabitXP = %d, want 12", cfg.Game.HabitXP)
	}
	// Untouched sections keep their defaults.
	if cfg.Sync.CacheSize != 1024 {
		t.Errorf("CacheSize = %d, want default 1024", cfg.Sync.CacheSize)
	}
	if cfg.Game.GoalXP != 50 {
		t.Errorf("GoalXP = %d, want default 50", cfg.Game.GoalXP)
	}
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "zero debounce", content: "[sync]\ndebounce_ms = 0\n"},
		{name: "negative protection window", content: "[sync]\nprotection_window_sec = -1\n"},
		{name: "zero cache", content: "[sync]\ncache_size = 0\n"},
		{name: "zero monthly target", content: "[game]\nmonthly_target_xp = 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfig(writeConfig(t, tt.content)); err == nil {
				t.Error("LoadConfig() accepted invalid config")
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("LoadConfig() succeeded on missing file")
	}
}
