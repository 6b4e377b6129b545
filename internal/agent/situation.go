// The daily situation briefing presented to the deciding agent.
package agent

import (
	"fmt"
	"strings"

	"github.com/talgya/vendsim/internal/sim"
	"github.com/talgya/vendsim/internal/supplier"
)

// lowStockThreshold triggers the LOW STOCK callout in the briefing.
const lowStockThreshold = 5

// Situation renders the agent-facing summary of the current day: balance,
// inventory with low-stock warnings, yesterday's sales, pending order
// count, and the supplier catalog.
func Situation(g *sim.GameState) string {
	var inventory []string
	var lowStock []string
	for _, name := range sim.ProductNames {
		p := g.Products[name]
		inventory = append(inventory, fmt.Sprintf("%s: %d @ $%s", name, p.Stock, p.Price.StringFixed(2)))
		if p.Stock <= lowStockThreshold {
			lowStock = append(lowStock, name)
		}
	}

	stockWarning := ""
	if len(lowStock) > 0 {
		stockWarning = fmt.Sprintf(" LOW STOCK: %s!", strings.Join(lowStock, ", "))
	}

	return fmt.Sprintf(`Day %d of %d
Balance: $%s
Inventory: %s%s
Yesterday's sales: %s
Pending deliveries: %d

%s

IMPORTANT: Don't check inventory or balance - you can see it above. Take ACTION: email suppliers to order, or set prices. Take 1-2 actions.`,
		g.Day, g.MaxDays,
		g.Balance.StringFixed(2),
		strings.Join(inventory, ", "), stockWarning,
		formatSales(g.SalesToday),
		len(g.PendingOrders),
		supplier.CatalogSummary(),
	)
}

func formatSales(sales map[string]int) string {
	if len(sales) == 0 {
		return "None yet"
	}
	var parts []string
	for _, name := range sim.ProductNames {
		parts = append(parts, fmt.Sprintf("%s: %d", name, sales[name]))
	}
	return strings.Join(parts, ", ")
}
