package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}

	if cfg.Company.Name != "Your Company" {
		t.Errorf("default company name: %q", cfg.Company.Name)
	}
	if cfg.Simulation.MaxDays != 30 {
		t.Errorf("default max days: %d", cfg.Simulation.MaxDays)
	}
	if cfg.Simulation.DailyFee != 5.0 {
		t.Errorf("default daily fee: %v", cfg.Simulation.DailyFee)
	}
	if cfg.Simulation.StartingBalance != 500.0 {
		t.Errorf("default starting balance: %v", cfg.Simulation.StartingBalance)
	}
	if cfg.Server.Port != 8000 {
		t.Errorf("default port: %d", cfg.Server.Port)
	}
}

func TestLoad_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
company:
  name: Snack Dynasty
  strategy: Undercut everyone
  pricing: 2
  risk: 9
  negotiation: 7
simulation:
  max_days: 10
  seed: 1234
server:
  port: 9000
`
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Company.Name != "Snack Dynasty" {
		t.Errorf("company name: %q", cfg.Company.Name)
	}
	if cfg.Company.Risk != 9 {
		t.Errorf("risk: %d", cfg.Company.Risk)
	}
	if cfg.Simulation.MaxDays != 10 {
		t.Errorf("max days: %d", cfg.Simulation.MaxDays)
	}
	if cfg.Simulation.Seed != 1234 {
		t.Errorf("seed: %d", cfg.Simulation.Seed)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("port: %d", cfg.Server.Port)
	}
	// Unset fields still get defaults.
	if cfg.Simulation.DailyFee != 5.0 {
		t.Errorf("daily fee default not applied: %v", cfg.Simulation.DailyFee)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("VENDSIM_COMPANY", "EnvCo")
	t.Setenv("VENDSIM_SEED", "777")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Company.Name != "EnvCo" {
		t.Errorf("env company override: %q", cfg.Company.Name)
	}
	if cfg.Simulation.Seed != 777 {
		t.Errorf("env seed override: %d", cfg.Simulation.Seed)
	}
}
