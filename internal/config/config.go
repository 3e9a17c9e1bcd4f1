package config

import (
	"fmt"
	"os"
	"strconv"

	"AuditGame/internal/model"

	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Simulation struct {
		model.Params `yaml:",inline"`
		Seed         int64 `yaml:"seed"`
	} `yaml:"simulation"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Schedule struct {
		SweepCron string `yaml:"sweep_cron"`
		SweepRuns int    `yaml:"sweep_runs"`
	} `yaml:"schedule"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
// Fields left unset fall back to the baseline game economy.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	cfg.Simulation.Params = model.DefaultParams()
	cfg.Simulation.Rounds = 5000
	cfg.Simulation.Seed = 42

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("AUDITGAME_ROUNDS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("parse AUDITGAME_ROUNDS: %w", err)
		}
		cfg.Simulation.Rounds = n
	}
	if v := os.Getenv("AUDITGAME_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse AUDITGAME_SEED: %w", err)
		}
		cfg.Simulation.Seed = seed
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("SWEEP_CRON"); v != "" {
		cfg.Schedule.SweepCron = v
	}

	// Defaults
	if cfg.Schedule.SweepRuns == 0 {
		cfg.Schedule.SweepRuns = 10
	}

	return cfg, nil
}

// Validate checks that the simulation parameters describe a playable game.
func (c *Config) Validate() error {
	p := c.Simulation.Params
	if p.Rounds < 0 {
		return fmt.Errorf("simulation.rounds must not be negative")
	}
	probs := []struct {
		name string
		v    float64
	}{
		{"simulation.prob_bias_high", p.ProbBiasHigh},
		{"simulation.prob_bias_low", p.ProbBiasLow},
	}
	for _, pr := range probs {
		if pr.v < 0 || pr.v > 1 {
			return fmt.Errorf("%s must be within [0, 1], got %v", pr.name, pr.v)
		}
	}
	amounts := []struct {
		name string
		v    float64
	}{
		{"simulation.cost_high_safety", p.CostHighSafety},
		{"simulation.cost_low_safety", p.CostLowSafety},
		{"simulation.auditor_check_cost", p.AuditorCheckCost},
		{"simulation.wager_amount", p.WagerAmount},
		{"simulation.fine_amount", p.FineAmount},
	}
	for _, a := range amounts {
		if a.v < 0 {
			return fmt.Errorf("%s must not be negative, got %v", a.name, a.v)
		}
	}
	if c.Schedule.SweepRuns <= 0 {
		return fmt.Errorf("schedule.sweep_runs must be positive")
	}
	if c.Schedule.SweepCron != "" {
		if _, err := cron.ParseStandard(c.Schedule.SweepCron); err != nil {
			return fmt.Errorf("schedule.sweep_cron: %w", err)
		}
	}
	return nil
}
