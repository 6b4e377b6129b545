// Customer demand — price-elastic daily purchases.
package sim

import (
	"math/rand"

	"github.com/shopspring/decimal"
)

// BaseDemand is the per-product customer appetite at the reference price.
var BaseDemand = map[string]int{
	"Soda":  20,
	"Chips": 15,
	"Candy": 18,
}

// DemandResult summarizes one day of customer purchases.
type DemandResult struct {
	Sales   map[string]int
	Revenue decimal.Decimal
}

// SimulateDay runs one day of customer purchases. Demand for each stocked
// product is base × 2.0/(price+0.5) × uniform(0.7, 1.3), truncated to an
// integer; sales are capped at available stock. Out-of-stock products are
// skipped entirely and draw no randomness, so a fixed seed reproduces the
// day exactly. SalesToday on the state is replaced, never merged.
func SimulateDay(g *GameState, rng *rand.Rand) DemandResult {
	sales := map[string]int{}
	revenue := decimal.Zero

	for _, name := range ProductNames {
		sales[name] = 0
		p := g.Products[name]
		if p.Stock <= 0 {
			continue
		}

		price := p.Price.InexactFloat64()
		priceFactor := 2.0 / (price + 0.5)
		noise := 0.7 + rng.Float64()*0.6
		demand := int(float64(BaseDemand[name]) * priceFactor * noise)

		sold := demand
		if sold > p.Stock {
			sold = p.Stock
		}
		p.Stock -= sold
		sales[name] = sold
		revenue = revenue.Add(p.Price.Mul(decimal.NewFromInt(int64(sold))))
	}

	g.Balance = g.Balance.Add(revenue)
	g.SalesToday = sales

	return DemandResult{Sales: sales, Revenue: revenue.Round(2)}
}
