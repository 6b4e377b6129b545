// Tool specification set and the executor that applies tool calls.
package agent

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/talgya/vendsim/internal/llm"
	"github.com/talgya/vendsim/internal/sim"
	"github.com/talgya/vendsim/internal/supplier"
)

// ToolSpecs returns the fixed tool set offered to the agent each day.
func ToolSpecs() []llm.Tool {
	return []llm.Tool{
		{
			Name:        "send_email",
			Description: "Send an email to a supplier to negotiate or place an order. Include what products and quantities you want.",
			InputSchema: llm.Schema{
				Type: "object",
				Properties: map[string]llm.Property{
					"to":      {Type: "string", Description: "Supplier name (QuickStock, VendMart, or BulkBarn)"},
					"subject": {Type: "string", Description: "Email subject"},
					"body":    {Type: "string", Description: "Email body - include product names and quantities for orders"},
				},
				Required: []string{"to", "subject", "body"},
			},
		},
		{
			Name:        "set_price",
			Description: "Set the retail price for a product.",
			InputSchema: llm.Schema{
				Type: "object",
				Properties: map[string]llm.Property{
					"product": {Type: "string", Description: "Product name (Soda, Chips, or Candy)"},
					"price":   {Type: "number", Description: "New price in dollars"},
				},
				Required: []string{"product", "price"},
			},
		},
		{
			Name:        "check_inventory",
			Description: "Check current stock levels and prices.",
			InputSchema: llm.Schema{Type: "object", Properties: map[string]llm.Property{}},
		},
		{
			Name:        "check_balance",
			Description: "Check your current bank balance.",
			InputSchema: llm.Schema{Type: "object", Properties: map[string]llm.Property{}},
		},
		{
			Name:        "take_notes",
			Description: "Save notes for yourself about strategy or observations.",
			InputSchema: llm.Schema{
				Type: "object",
				Properties: map[string]llm.Property{
					"text": {Type: "string", Description: "Notes to save"},
				},
				Required: []string{"text"},
			},
		},
		{
			Name:        "view_sales_history",
			Description: "View yesterday's sales figures.",
			InputSchema: llm.Schema{Type: "object", Properties: map[string]llm.Property{}},
		},
	}
}

// Executor applies tool calls to the game state. Every failure is a
// result string back to the agent; nothing here crashes the day loop.
type Executor struct {
	Negotiator *supplier.Negotiator
}

// Execute runs a single tool call and returns the human-readable result.
func (e *Executor) Execute(g *sim.GameState, call sim.ToolCall) string {
	switch call.Name {
	case "send_email":
		return e.Negotiator.HandleEmail(g,
			stringArg(call.Args, "to"),
			stringArg(call.Args, "subject"),
			stringArg(call.Args, "body"),
		)

	case "set_price":
		product := stringArg(call.Args, "product")
		price := decimal.NewFromFloat(numberArg(call.Args, "price"))
		old, err := g.SetPrice(product, price)
		if err != nil {
			return err.Error()
		}
		return fmt.Sprintf("Price for %s changed from $%s to $%s",
			product, old.StringFixed(2), price.StringFixed(2))

	case "check_inventory":
		lines := []string{"Current inventory:"}
		for _, name := range sim.ProductNames {
			p := g.Products[name]
			lines = append(lines, fmt.Sprintf("  %s: %d units @ $%s", name, p.Stock, p.Price.StringFixed(2)))
		}
		return strings.Join(lines, "\n")

	case "check_balance":
		return fmt.Sprintf("Current balance: $%s", g.Balance.StringFixed(2))

	case "take_notes":
		g.AgentNotes = stringArg(call.Args, "text")
		return "Notes saved."

	case "view_sales_history":
		return fmt.Sprintf("Yesterday's sales: %s", formatSales(g.SalesToday))

	default:
		return fmt.Sprintf("Unknown tool: %s", call.Name)
	}
}

func stringArg(args map[string]any, key string) string {
	if v, ok := args[key].(string); ok {
		return v
	}
	return ""
}

func numberArg(args map[string]any, key string) float64 {
	switch v := args[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return 0
	}
}
