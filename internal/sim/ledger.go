// Ledger accessors — balance and price mutation with the accessor
// invariants from the economic model.
package sim

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// UnknownProductError is returned for price or inventory operations on a
// name outside the fixed product set.
type UnknownProductError struct {
	Name string
}

func (e *UnknownProductError) Error() string {
	return fmt.Sprintf("unknown product: %s", e.Name)
}

// GetBalance returns the current cash balance.
func (g *GameState) GetBalance() decimal.Decimal {
	return g.Balance
}

// ApplyDelta adjusts the balance unconditionally. Affordability is the
// caller's responsibility; the balance may go negative transiently within
// a day and bankruptcy detection fires at the next day boundary.
func (g *GameState) ApplyDelta(amount decimal.Decimal) {
	g.Balance = g.Balance.Add(amount)
}

// SetPrice changes a product's retail price and returns the prior price
// for logging.
func (g *GameState) SetPrice(name string, price decimal.Decimal) (decimal.Decimal, error) {
	p, ok := g.Products[name]
	if !ok {
		return decimal.Zero, &UnknownProductError{Name: name}
	}
	old := p.Price
	p.Price = price
	return old, nil
}

// InventorySnapshot returns an immutable per-product view of stock,
// price, and wholesale cost.
func (g *GameState) InventorySnapshot() map[string]ProductSnapshot {
	out := make(map[string]ProductSnapshot, len(g.Products))
	for name, p := range g.Products {
		out[name] = ProductSnapshot{
			Stock:         p.Stock,
			Price:         p.Price.Round(2).InexactFloat64(),
			WholesaleCost: p.WholesaleCost.Round(2).InexactFloat64(),
		}
	}
	return out
}
