// Command vendsim runs the LLM-managed vending machine business
// simulation with its live dashboard.
package main

import (
	"context"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/talgya/vendsim/internal/agent"
	"github.com/talgya/vendsim/internal/api"
	"github.com/talgya/vendsim/internal/config"
	"github.com/talgya/vendsim/internal/llm"
	"github.com/talgya/vendsim/internal/persistence"
	"github.com/talgya/vendsim/internal/sim"
	"github.com/talgya/vendsim/internal/supplier"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	configPath := "config.yaml"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	persona := agent.Persona{
		CompanyName: cfg.Company.Name,
		Strategy:    cfg.Company.Strategy,
		Pricing:     cfg.Company.Pricing,
		Risk:        cfg.Company.Risk,
		Negotiation: cfg.Company.Negotiation,
	}
	if err := persona.Validate(); err != nil {
		slog.Error("invalid persona", "error", err)
		os.Exit(1)
	}

	// ── Database ──────────────────────────────────────────────────────
	os.MkdirAll(filepath.Dir(cfg.Database.SQLitePath), 0755)
	db, err := persistence.Open(cfg.Database.SQLitePath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	slog.Info("database opened", "path", cfg.Database.SQLitePath)

	runID := uuid.New()
	if err := db.CreateRun(runID, persona.CompanyName, cfg.Simulation.Seed, cfg.Simulation.MaxDays); err != nil {
		slog.Error("failed to register run", "error", err)
		os.Exit(1)
	}

	// ── Game State ────────────────────────────────────────────────────
	// One seeded generator per run: demand noise and delivery jitter
	// both draw from it, so a fixed seed reproduces the whole run.
	rng := rand.New(rand.NewSource(cfg.Simulation.Seed))
	state := sim.NewGameState(decimal.NewFromFloat(cfg.Simulation.StartingBalance), cfg.Simulation.MaxDays)
	events := sim.NewBroadcaster()

	negotiator := &supplier.Negotiator{Parser: supplier.NewParser(), RNG: rng}
	executor := &agent.Executor{Negotiator: negotiator}

	// ── Decider ───────────────────────────────────────────────────────
	var decider sim.Decider
	llmClient := llm.NewClient(cfg.Anthropic.APIKey, cfg.Anthropic.Model)
	if llmClient.Enabled() {
		slog.Info("LLM decider enabled", "model", cfg.Anthropic.Model)
		decider = &agent.LLMDecider{Client: llmClient, Persona: persona}
	} else {
		slog.Warn("ANTHROPIC_API_KEY not set — using deterministic heuristic decider")
		decider = &agent.HeuristicDecider{State: state}
	}

	// ── Observers ─────────────────────────────────────────────────────
	apiServer := &api.Server{
		Events:  events,
		RunID:   runID,
		Company: persona.CompanyName,
		MaxDays: cfg.Simulation.MaxDays,
		Port:    cfg.Server.Port,
	}
	apiServer.Start()

	// Activity events flow into the run history through a subscriber,
	// the same channel the dashboard uses.
	go recordActivity(db, runID, events)

	// ── Controller ────────────────────────────────────────────────────
	controller := &sim.Controller{
		State:     state,
		Decider:   decider,
		Executor:  executor,
		Events:    events,
		RNG:       rng,
		Company:   persona.CompanyName,
		DailyFee:  decimal.NewFromFloat(cfg.Simulation.DailyFee),
		Situation: agent.Situation,
		OnDayEnd: func(g *sim.GameState) {
			if err := db.SaveDay(runID, g); err != nil {
				slog.Error("daily save failed", "error", err)
			}
		},
		Pace: time.Duration(cfg.Simulation.DayPauseSeconds * float64(time.Second)),
	}

	ctx, cancel := context.WithCancel(context.Background())
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("received signal, shutting down", "signal", sig)
		cancel()
	}()

	slog.Info("simulation starting",
		"run", runID,
		"company", persona.CompanyName,
		"seed", cfg.Simulation.Seed,
		"max_days", cfg.Simulation.MaxDays,
		"dashboard", cfg.Server.Port,
	)

	outcome := controller.Run(ctx)

	finalBalance := state.Balance.Round(2).InexactFloat64()
	if err := db.FinishRun(runID, outcome.String(), finalBalance); err != nil {
		slog.Error("failed to finalize run", "error", err)
	}

	slog.Info("simulation finished",
		"outcome", outcome,
		"days", state.Day-1,
		"final_balance", "$"+humanize.CommafWithDigits(finalBalance, 2),
	)
}

// recordActivity persists activity events from the broadcaster.
func recordActivity(db *persistence.DB, runID uuid.UUID, events *sim.Broadcaster) {
	id, ch := events.Subscribe()
	defer events.Unsubscribe(id)

	for e := range ch {
		if e.Kind != sim.EventActivity {
			continue
		}
		if err := db.AppendActivity(runID, e.Day, e.Message, e.Style); err != nil {
			slog.Error("failed to record activity", "error", err)
		}
	}
}
