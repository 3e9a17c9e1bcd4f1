package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Simulation.Rounds != 5000 || cfg.Simulation.Seed != 42 {
		t.Errorf("expected rounds=5000 seed=42, got rounds=%d seed=%d", cfg.Simulation.Rounds, cfg.Simulation.Seed)
	}
	if cfg.Simulation.FineAmount != 1000 || cfg.Simulation.ProbBiasLow != 0.3 {
		t.Errorf("unexpected default params: %+v", cfg.Simulation.Params)
	}
	if cfg.Database.SQLitePath != "" {
		t.Errorf("expected recorder disabled by default, got %q", cfg.Database.SQLitePath)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
simulation:
  rounds: 200
  seed: 7
  fine_amount: 500
  prob_bias_high: 0.1
database:
  sqlite_path: data/runs.db
schedule:
  sweep_cron: "@hourly"
  sweep_runs: 3
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Simulation.Rounds != 200 || cfg.Simulation.Seed != 7 {
		t.Errorf("got rounds=%d seed=%d", cfg.Simulation.Rounds, cfg.Simulation.Seed)
	}
	if cfg.Simulation.FineAmount != 500 || cfg.Simulation.ProbBiasHigh != 0.1 {
		t.Errorf("file values not applied: %+v", cfg.Simulation.Params)
	}
	if cfg.Simulation.WagerAmount != 50 {
		t.Errorf("unset fields should keep defaults, wager=%v", cfg.Simulation.WagerAmount)
	}
	if cfg.Database.SQLitePath != "data/runs.db" || cfg.Schedule.SweepRuns != 3 {
		t.Errorf("unexpected database/schedule: %+v %+v", cfg.Database, cfg.Schedule)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("validate: %v", err)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("AUDITGAME_ROUNDS", "12")
	t.Setenv("AUDITGAME_SEED", "99")
	t.Setenv("SQLITE_PATH", "/tmp/x.db")
	t.Setenv("SWEEP_CRON", "*/5 * * * *")

	cfg, err := Load(writeConfig(t, "simulation:\n  rounds: 3\n"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Simulation.Rounds != 12 || cfg.Simulation.Seed != 99 {
		t.Errorf("env not applied: rounds=%d seed=%d", cfg.Simulation.Rounds, cfg.Simulation.Seed)
	}
	if cfg.Database.SQLitePath != "/tmp/x.db" || cfg.Schedule.SweepCron != "*/5 * * * *" {
		t.Errorf("env not applied: %+v %+v", cfg.Database, cfg.Schedule)
	}
}

func TestLoad_BadInput(t *testing.T) {
	if _, err := Load(writeConfig(t, "simulation: [")); err == nil {
		t.Error("expected parse error for malformed yaml")
	}
	t.Setenv("AUDITGAME_ROUNDS", "many")
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for non-numeric AUDITGAME_ROUNDS")
	}
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"negative rounds", func(c *Config) { c.Simulation.Rounds = -1 }},
		{"prob above one", func(c *Config) { c.Simulation.ProbBiasLow = 1.5 }},
		{"prob below zero", func(c *Config) { c.Simulation.ProbBiasHigh = -0.1 }},
		{"negative fine", func(c *Config) { c.Simulation.FineAmount = -1 }},
		{"negative check cost", func(c *Config) { c.Simulation.AuditorCheckCost = -5 }},
		{"zero sweep runs", func(c *Config) { c.Schedule.SweepRuns = 0 }},
		{"bad cron", func(c *Config) { c.Schedule.SweepCron = "every tuesday" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestValidate_ZeroRoundsAllowed(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	cfg.Simulation.Rounds = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("zero rounds is a valid empty run: %v", err)
	}
}
