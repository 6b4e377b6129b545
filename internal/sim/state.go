// Package sim holds the vending business game state and the day-cycle
// simulation that advances it: ledger accounting, supplier order transit,
// price-elastic customer demand, and the terminal conditions.
package sim

import (
	"github.com/shopspring/decimal"
)

// ProductNames is the fixed product set, in canonical order. All iteration
// over products follows this order so that seeded runs are reproducible.
var ProductNames = []string{"Soda", "Chips", "Candy"}

// Product is one vending machine slot: what we hold, what we charge,
// and what a unit cost us wholesale.
type Product struct {
	Name          string
	Stock         int
	Price         decimal.Decimal
	WholesaleCost decimal.Decimal
}

// Order is a supplier order that has been paid for but not yet delivered.
// It counts down one transit day per game day and credits stock on arrival.
type Order struct {
	Product       string          `json:"product"`
	Quantity      int             `json:"quantity"`
	Cost          decimal.Decimal `json:"cost"`
	DaysRemaining int             `json:"days_remaining"`
}

// EmailRecord is one entry in the append-only correspondence log.
type EmailRecord struct {
	Direction   string `json:"direction"` // "out" or "in"
	Counterpart string `json:"counterpart"`
	Subject     string `json:"subject"`
	Body        string `json:"body"`
}

// maxEmailBody caps stored email bodies for display.
const maxEmailBody = 200

// GameState is the aggregate root for one simulation run. The Controller
// is the only writer; every other component receives a reference.
type GameState struct {
	Day           int
	Balance       decimal.Decimal
	Products      map[string]*Product
	PendingOrders []*Order
	SalesToday    map[string]int
	Emails        []EmailRecord
	AgentNotes    string
	MaxDays       int
}

// NewGameState creates a run with the standard starting conditions:
// ten units of each product on the default retail prices.
func NewGameState(startingBalance decimal.Decimal, maxDays int) *GameState {
	return &GameState{
		Day:     1,
		Balance: startingBalance,
		Products: map[string]*Product{
			"Soda":  {Name: "Soda", Stock: 10, Price: dec("1.75"), WholesaleCost: dec("0.70")},
			"Chips": {Name: "Chips", Stock: 10, Price: dec("1.25"), WholesaleCost: dec("0.45")},
			"Candy": {Name: "Candy", Stock: 10, Price: dec("0.99"), WholesaleCost: dec("0.30")},
		},
		SalesToday: map[string]int{},
		MaxDays:    maxDays,
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// AppendEmail records an email in the log, truncating the body for display.
func (g *GameState) AppendEmail(rec EmailRecord) {
	if len(rec.Body) > maxEmailBody {
		rec.Body = rec.Body[:maxEmailBody]
	}
	g.Emails = append(g.Emails, rec)
}

// ProductSnapshot is the read-only per-product view exposed to observers.
type ProductSnapshot struct {
	Stock         int     `json:"stock"`
	Price         float64 `json:"price"`
	WholesaleCost float64 `json:"wholesale_cost"`
}

// Snapshot is the full observer-facing state record emitted at the end of
// each day. Money is rounded to cents.
type Snapshot struct {
	Day        int                        `json:"day"`
	Balance    float64                    `json:"balance"`
	Products   map[string]ProductSnapshot `json:"products"`
	SalesToday map[string]int             `json:"sales_today"`
	Emails     []EmailRecord              `json:"emails"`
	AgentNotes string                     `json:"agent_notes,omitempty"`
	MaxDays    int                        `json:"max_days"`
}

// Snapshot builds the observer view of the current state. Only the last
// ten emails are included.
func (g *GameState) Snapshot() Snapshot {
	products := make(map[string]ProductSnapshot, len(g.Products))
	for name, p := range g.Products {
		products[name] = ProductSnapshot{
			Stock:         p.Stock,
			Price:         p.Price.Round(2).InexactFloat64(),
			WholesaleCost: p.WholesaleCost.Round(2).InexactFloat64(),
		}
	}

	sales := make(map[string]int, len(g.SalesToday))
	for name, n := range g.SalesToday {
		sales[name] = n
	}

	emails := g.Emails
	if len(emails) > 10 {
		emails = emails[len(emails)-10:]
	}
	emailsCopy := make([]EmailRecord, len(emails))
	copy(emailsCopy, emails)

	return Snapshot{
		Day:        g.Day,
		Balance:    g.Balance.Round(2).InexactFloat64(),
		Products:   products,
		SalesToday: sales,
		Emails:     emailsCopy,
		AgentNotes: g.AgentNotes,
		MaxDays:    g.MaxDays,
	}
}
