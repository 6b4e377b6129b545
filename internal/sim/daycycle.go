// Day-cycle controller — the state machine that drives a run one day at
// a time: fee, delivery, agent decision, customer demand, reporting.
package sim

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Outcome is the terminal state of a run.
type Outcome int

const (
	OutcomeComplete Outcome = iota
	OutcomeBankrupt
	OutcomeStopped
)

func (o Outcome) String() string {
	switch o {
	case OutcomeComplete:
		return "complete"
	case OutcomeBankrupt:
		return "bankrupt"
	case OutcomeStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// ToolCall is one structured action request from the deciding agent.
type ToolCall struct {
	Name string
	Args map[string]any
}

// Decider is the external decision step: given a situation summary it
// returns zero or more tool calls. Failures are reported as activity
// events and the day proceeds without agent actions.
type Decider interface {
	Decide(ctx context.Context, situation string) ([]ToolCall, error)
}

// ToolExecutor runs a single tool call against the game state and returns
// a human-readable result string. Tool failures (unknown product, unknown
// supplier, unaffordable order) come back as result text, never as errors
// that could halt the loop.
type ToolExecutor interface {
	Execute(g *GameState, call ToolCall) string
}

// Controller owns the game state and runs the daily cycle. It is the only
// writer of the state; everything it tells the outside world goes through
// the broadcaster.
type Controller struct {
	State    *GameState
	Decider  Decider
	Executor ToolExecutor
	Events   *Broadcaster
	RNG      *rand.Rand

	Company   string
	DailyFee  decimal.Decimal
	Situation func(g *GameState) string

	// OnDayEnd runs after each end-of-day snapshot (persistence hook).
	OnDayEnd func(g *GameState)

	// Pace inserts a delay between days so a live dashboard is watchable.
	// Zero runs days back to back.
	Pace time.Duration
}

// Run executes days 1..MaxDays and returns the terminal outcome. The
// context cancels cooperatively at the next day boundary; a day that has
// started always finishes its phases.
func (c *Controller) Run(ctx context.Context) Outcome {
	g := c.State

	c.Events.Publish(Event{Kind: EventInit, CompanyName: c.Company})
	c.publishState()
	c.activity("Simulation started!", "")

	for g.Day <= g.MaxDays {
		select {
		case <-ctx.Done():
			slog.Info("simulation stopped", "day", g.Day)
			return c.finish(OutcomeStopped)
		default:
		}

		c.activity(fmt.Sprintf("--- Day %d ---", g.Day), "")

		// Start-of-day: operating fee, then bankruptcy check before any
		// other phase runs.
		g.ApplyDelta(c.DailyFee.Neg())
		c.activity(fmt.Sprintf("Daily fee: -$%s", c.DailyFee.StringFixed(2)), "warning")

		if g.Balance.IsNegative() {
			c.activity("BANKRUPT! Game over.", "warning")
			slog.Warn("bankruptcy", "day", g.Day, "balance", g.Balance.StringFixed(2))
			return c.finish(OutcomeBankrupt)
		}

		// Delivery phase: orders land before today's demand is computed.
		for _, o := range g.AdvanceAndCollect() {
			c.activity(fmt.Sprintf("Delivered: %d %s", o.Quantity, o.Product), "restock")
		}

		// Decision phase.
		c.Events.Publish(Event{Kind: EventThinking, Show: true, Text: "Agent is deciding..."})
		c.runDecision(ctx)
		c.Events.Publish(Event{Kind: EventThinking, Show: false})

		// Demand phase.
		result := SimulateDay(g, c.RNG)
		for _, name := range ProductNames {
			if sold := result.Sales[name]; sold > 0 {
				c.activity(fmt.Sprintf("Sold %d %s ($%s each)",
					sold, name, g.Products[name].Price.StringFixed(2)), "sale")
			}
		}

		// Stock-out detection: flagged for reporting only.
		for _, name := range ProductNames {
			if g.Products[name].Stock == 0 {
				c.activity(fmt.Sprintf("Out of stock: %s!", name), "warning")
			}
		}

		// End-of-day bookkeeping.
		c.publishState()
		if c.OnDayEnd != nil {
			c.OnDayEnd(g)
		}

		slog.Info("day complete",
			"day", g.Day,
			"balance", g.Balance.StringFixed(2),
			"revenue", result.Revenue.StringFixed(2),
			"pending_orders", len(g.PendingOrders),
		)

		g.Day++

		if c.Pace > 0 {
			select {
			case <-time.After(c.Pace):
			case <-ctx.Done():
			}
		}
	}

	return c.finish(OutcomeComplete)
}

// runDecision asks the agent for actions and executes them synchronously.
func (c *Controller) runDecision(ctx context.Context) {
	g := c.State

	calls, err := c.Decider.Decide(ctx, c.Situation(g))
	if err != nil {
		msg := err.Error()
		if len(msg) > 50 {
			msg = msg[:50]
		}
		c.activity(fmt.Sprintf("Error: %s", msg), "warning")
		slog.Error("agent decision failed", "day", g.Day, "error", err)
		return
	}

	for _, call := range calls {
		result := c.Executor.Execute(g, call)
		style := ""
		if strings.Contains(strings.ToLower(result), "confirm") {
			style = "sale"
		}
		c.activity(fmt.Sprintf("%s: %s", call.Name, summarizeArgs(call.Args)), style)
		slog.Info("tool call", "day", g.Day, "tool", call.Name, "result", result)
	}
}

func (c *Controller) finish(outcome Outcome) Outcome {
	balance := c.State.Balance.Round(2).InexactFloat64()
	c.Events.Publish(Event{Kind: EventComplete, Balance: balance})
	return outcome
}

func (c *Controller) activity(message, style string) {
	c.Events.Publish(Event{
		Kind:    EventActivity,
		Day:     c.State.Day,
		Message: message,
		Style:   style,
	})
}

func (c *Controller) publishState() {
	snap := c.State.Snapshot()
	c.Events.Publish(Event{Kind: EventState, State: &snap})
}

// summarizeArgs renders tool arguments for the activity feed, truncated.
func summarizeArgs(args map[string]any) string {
	s := ""
	for _, key := range sortedKeys(args) {
		if s != "" {
			s += ", "
		}
		s += fmt.Sprintf("%s=%v", key, args[key])
	}
	if len(s) > 80 {
		s = s[:80]
	}
	return s
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
