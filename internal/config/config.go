// Package config loads run configuration from YAML with environment
// variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Company struct {
		Name        string `yaml:"name"`
		Strategy    string `yaml:"strategy"`
		Pricing     int    `yaml:"pricing"`
		Risk        int    `yaml:"risk"`
		Negotiation int    `yaml:"negotiation"`
	} `yaml:"company"`
	Simulation struct {
		MaxDays         int     `yaml:"max_days"`
		DailyFee        float64 `yaml:"daily_fee"`
		StartingBalance float64 `yaml:"starting_balance"`
		Seed            int64   `yaml:"seed"`
		DayPauseSeconds float64 `yaml:"day_pause_seconds"`
	} `yaml:"simulation"`
	Anthropic struct {
		APIKey string `yaml:"api_key"`
		Model  string `yaml:"model"`
	} `yaml:"anthropic"`
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides. A missing file is not an error; defaults apply.
func Load(path string) (*Config, error) {
	cfg := &Config{}

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
	if v := os.Getenv("ANTHROPIC_API_KEY"); v != "" {
		cfg.Anthropic.APIKey = v
	}
	if v := os.Getenv("VENDSIM_MODEL"); v != "" {
		cfg.Anthropic.Model = v
	}
	if v := os.Getenv("VENDSIM_COMPANY"); v != "" {
		cfg.Company.Name = v
	}
	if v := os.Getenv("VENDSIM_SEED"); v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Simulation.Seed = seed
		}
	}
	if v := os.Getenv("VENDSIM_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}

	applyDefaults(cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Company.Name == "" {
		cfg.Company.Name = "Your Company"
	}
	if cfg.Company.Strategy == "" {
		cfg.Company.Strategy = "Keep every product in stock and price for steady volume."
	}
	if cfg.Company.Pricing == 0 {
		cfg.Company.Pricing = 5
	}
	if cfg.Company.Risk == 0 {
		cfg.Company.Risk = 5
	}
	if cfg.Company.Negotiation == 0 {
		cfg.Company.Negotiation = 5
	}
	if cfg.Simulation.MaxDays == 0 {
		cfg.Simulation.MaxDays = 30
	}
	if cfg.Simulation.DailyFee == 0 {
		cfg.Simulation.DailyFee = 5.0
	}
	if cfg.Simulation.StartingBalance == 0 {
		cfg.Simulation.StartingBalance = 500.0
	}
	if cfg.Simulation.Seed == 0 {
		cfg.Simulation.Seed = 42
	}
	if cfg.Anthropic.Model == "" {
		cfg.Anthropic.Model = "claude-haiku-4-5"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8000
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/vendsim.db"
	}
}
