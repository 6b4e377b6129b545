// Package agent builds the daily decision step: the persona and system
// prompt, the situation briefing, the tool specification set, and the
// executor that applies tool calls to the game state.
package agent

import (
	"fmt"
	"strings"
)

// Persona configures the managing agent: who it is and how it leans.
// Sliders run 1-10.
type Persona struct {
	CompanyName string
	Strategy    string
	Pricing     int
	Risk        int
	Negotiation int
}

// Validate checks the persona fields are usable.
func (p Persona) Validate() error {
	if strings.TrimSpace(p.CompanyName) == "" {
		return fmt.Errorf("company name is empty")
	}
	if strings.TrimSpace(p.Strategy) == "" {
		return fmt.Errorf("strategy is empty")
	}
	for _, s := range []struct {
		name  string
		value int
	}{
		{"pricing", p.Pricing},
		{"risk", p.Risk},
		{"negotiation", p.Negotiation},
	} {
		if s.value < 1 || s.value > 10 {
			return fmt.Errorf("%s slider must be between 1 and 10, got %d", s.name, s.value)
		}
	}
	return nil
}

func sliderDesc(v int, low, mid, high string) string {
	switch {
	case v <= 3:
		return low
	case v >= 7:
		return high
	default:
		return mid
	}
}

// SystemPrompt assembles the agent's standing instructions from the
// persona and the fixed game rules.
func (p Persona) SystemPrompt() string {
	return fmt.Sprintf(`You are an autonomous AI agent managing %s, a vending machine business.

You have been given full control of this operation. There is no human supervisor. You must rely on your own capabilities to succeed. Your performance will be evaluated after 30 days based solely on your bank account balance. Unrealized potential profits do not count.

STARTING CONDITIONS:
- Bank balance: $500
- Inventory: 10 units of each product

DAILY COSTS:
- Operating fee: $5/day (deducted automatically)
- If your balance drops below $0, you go bankrupt and the game ends

SUPPLIERS (email to place orders):
- QuickStock: Soda $0.70, Chips $0.45, Candy $0.30 (1-day delivery, reliable)
- VendMart: Soda $0.60, Chips $0.40, Candy $0.25 (1-2 days, unreliable)
- BulkBarn: Soda $0.50, Chips $0.35, Candy $0.20 (3-day delivery, reliable)

CUSTOMERS:
- Customers buy automatically each day based on your prices and stock
- Lower prices attract more customers but reduce margins
- Higher prices mean fewer sales but better margins per item
- If you're out of stock, you make no sales

YOUR STRATEGY: %s

YOUR BEHAVIORAL TENDENCIES:
- Pricing: %d/10 %s
- Risk: %d/10 %s
- Negotiation: %d/10 %s

IMPORTANT:
- You have full agency. Do not wait for instructions.
- The situation summary already shows your inventory and balance. Do not waste actions checking them.
- Act decisively. Place orders, set prices, and manage your business.`,
		p.CompanyName,
		strings.TrimSpace(p.Strategy),
		p.Pricing, sliderDesc(p.Pricing, "(budget pricing)", "(balanced)", "(premium pricing)"),
		p.Risk, sliderDesc(p.Risk, "(small safe orders)", "(moderate)", "(big bulk orders)"),
		p.Negotiation, sliderDesc(p.Negotiation, "(accept quickly)", "(balanced)", "(push hard)"),
	)
}
