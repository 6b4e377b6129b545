// Deciders — the LLM-backed decision step and a deterministic fallback
// used when no API key is configured (and by reproducibility tests).
package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/talgya/vendsim/internal/llm"
	"github.com/talgya/vendsim/internal/sim"
	"github.com/talgya/vendsim/internal/supplier"
)

const decisionMaxTokens = 1024

// LLMDecider asks Claude Haiku for the day's actions.
type LLMDecider struct {
	Client  *llm.Client
	Persona Persona
}

// Decide sends the situation briefing with the tool set and returns the
// model's tool calls.
func (d *LLMDecider) Decide(ctx context.Context, situation string) ([]sim.ToolCall, error) {
	uses, err := d.Client.CompleteWithTools(ctx, d.Persona.SystemPrompt(), situation, ToolSpecs(), decisionMaxTokens)
	if err != nil {
		return nil, fmt.Errorf("decision step: %w", err)
	}

	calls := make([]sim.ToolCall, 0, len(uses))
	for _, u := range uses {
		calls = append(calls, sim.ToolCall{Name: u.Name, Args: u.Input})
	}
	return calls, nil
}

// HeuristicDecider is a rule-based manager: restock anything running low
// from the fast reliable supplier, as long as the order is affordable.
// It is fully deterministic, which keeps seeded runs reproducible.
type HeuristicDecider struct {
	State *sim.GameState

	// ReorderAt and ReorderQty control the restock rule. Zero values
	// fall back to the defaults.
	ReorderAt  int
	ReorderQty int
}

const (
	defaultReorderAt  = 5
	defaultReorderQty = 25
	restockSupplier   = "QuickStock"
)

// Decide emails a restock order when any product is at or below the
// reorder point and the run can afford it.
func (d *HeuristicDecider) Decide(ctx context.Context, situation string) ([]sim.ToolCall, error) {
	reorderAt := d.ReorderAt
	if reorderAt == 0 {
		reorderAt = defaultReorderAt
	}
	qty := d.ReorderQty
	if qty == 0 {
		qty = defaultReorderQty
	}

	sup, err := supplier.Resolve(restockSupplier)
	if err != nil {
		return nil, err
	}

	var wanted []string
	total := decimal.Zero
	for _, name := range sim.ProductNames {
		if d.State.Products[name].Stock > reorderAt {
			continue
		}
		cost := sup.Prices[name].Mul(decimal.NewFromInt(int64(qty)))
		if total.Add(cost).GreaterThan(d.State.Balance) {
			continue
		}
		total = total.Add(cost)
		wanted = append(wanted, fmt.Sprintf("%d %s", qty, name))
	}

	if len(wanted) == 0 {
		return nil, nil
	}

	return []sim.ToolCall{{
		Name: "send_email",
		Args: map[string]any{
			"to":      restockSupplier,
			"subject": "Restock order",
			"body":    fmt.Sprintf("Please send %s.", strings.Join(wanted, " and ")),
		},
	}}, nil
}
