package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func withConfigHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv(EnvBackend, "")
	t.Setenv(EnvDataPath, "")
	return dir
}

func TestLoadDefaultsWhenMissing(t *testing.T) {
	withConfigHome(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
	if Exists() {
		t.Error("Exists() = true before Save")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	withConfigHome(t)

	cfg := DefaultConfig()
	cfg.General.ProjectionMonths = 6
	cfg.Storage.Backend = "sqlite"
	cfg.Forecast.AssumedMonthlySavings = 50000
	cfg.Appearance.Theme = "tokyo-night"
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after Save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != cfg {
		t.Errorf("Load() = %+v, want %+v", got, cfg)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	withConfigHome(t)
	if err := Save(DefaultConfig()); err != nil {
		t.Fatal(err)
	}

	t.Setenv(EnvBackend, "SQLite")
	t.Setenv(EnvDataPath, "/tmp/custom.db")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Storage.Backend != "sqlite" || cfg.Storage.Path != "/tmp/custom.db" {
		t.Errorf("storage = %+v", cfg.Storage)
	}
	if got := cfg.DataPath("savings.db"); got != "/tmp/custom.db" {
		t.Errorf("DataPath = %q", got)
	}
}

func TestEnvFile(t *testing.T) {
	withConfigHome(t)
	os.Unsetenv(EnvBackend)
	if err := os.MkdirAll(ConfigDir(), 0o750); err != nil {
		t.Fatal(err)
	}
	env := EnvBackend + "=sqlite\n"
	if err := os.WriteFile(filepath.Join(ConfigDir(), ".env"), []byte(env), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv(EnvBackend) })

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Storage.Backend != "sqlite" {
		t.Errorf("backend = %q, want sqlite from .env", cfg.Storage.Backend)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errSub string
	}{
		{"bad backend", func(c *Config) { c.Storage.Backend = "postgres" }, "storage backend"},
		{"zero months", func(c *Config) { c.General.ProjectionMonths = 0 }, "projection_months"},
		{"zero recent", func(c *Config) { c.General.RecentLimit = 0 }, "recent_limit"},
		{"negative savings", func(c *Config) { c.Forecast.AssumedMonthlySavings = -1 }, "assumed_monthly_savings"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.errSub) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.errSub)
			}
		})
	}
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("defaults invalid: %v", err)
	}
}

func TestDataPathDefault(t *testing.T) {
	dir := withConfigHome(t)
	cfg := DefaultConfig()
	want := filepath.Join(dir, "data", "savings", "savings.json")
	if got := cfg.DataPath("savings.json"); got != want {
		t.Errorf("DataPath = %q, want %q", got, want)
	}
}
