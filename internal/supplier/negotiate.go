// Negotiation — interprets an order email against a supplier's catalog,
// validates affordability, and schedules prepaid deliveries.
package supplier

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/talgya/vendsim/internal/sim"
)

// UnaffordableError describes an order whose total exceeds the current
// balance. It is a rejection, not a failure: nothing mutates and the
// Error text is what the supplier writes back.
type UnaffordableError struct {
	Total   decimal.Decimal
	Balance decimal.Decimal
}

func (e *UnaffordableError) Error() string {
	return fmt.Sprintf("Your order totals $%s but your balance is only $%s. Please adjust your order.",
		e.Total.StringFixed(2), e.Balance.StringFixed(2))
}

// Negotiator handles supplier correspondence for one run. Delivery
// jitter for unreliable suppliers draws from the run's seeded generator.
type Negotiator struct {
	Parser QuantityParser
	RNG    *rand.Rand
}

// HandleEmail processes one outbound email: logs it, resolves the
// supplier, generates the reply (placing an order when the message reads
// like one), logs the reply, and returns the result for the agent.
func (n *Negotiator) HandleEmail(g *sim.GameState, to, subject, body string) string {
	g.AppendEmail(sim.EmailRecord{
		Direction:   "out",
		Counterpart: to,
		Subject:     subject,
		Body:        body,
	})

	sup, err := Resolve(to)
	if err != nil {
		return fmt.Sprintf("Unknown recipient: %s", to)
	}

	response := n.respond(g, sup, body)

	g.AppendEmail(sim.EmailRecord{
		Direction:   "in",
		Counterpart: sup.Name,
		Subject:     fmt.Sprintf("Re: %s", subject),
		Body:        response,
	})

	return fmt.Sprintf("Email sent to %s. They replied: %s", sup.Name, response)
}

// respond classifies the message and either confirms an order or returns
// the supplier's canned catalog reply.
func (n *Negotiator) respond(g *sim.GameState, sup *Supplier, body string) string {
	quantities := n.Parser.Quantities(body)

	// Order keywords with no parseable quantities fall through to the
	// informational reply rather than creating a zero-value order.
	if !IsOrderIntent(body) || len(quantities) == 0 {
		return cannedReply(sup)
	}

	total := decimal.Zero
	for _, name := range sim.ProductNames {
		qty, ok := quantities[name]
		if !ok {
			continue
		}
		total = total.Add(sup.Prices[name].Mul(decimal.NewFromInt(int64(qty))))
	}

	if total.GreaterThan(g.Balance) {
		rejection := &UnaffordableError{Total: total, Balance: g.Balance}
		return rejection.Error()
	}

	// One transit time per email: unreliable suppliers may add a day.
	deliveryDays := sup.DeliveryDays
	if !sup.Reliable {
		deliveryDays += n.RNG.Intn(2)
	}

	// Payment is up front; stock is credited only on delivery.
	var parts []string
	for _, name := range sim.ProductNames {
		qty, ok := quantities[name]
		if !ok {
			continue
		}
		cost := sup.Prices[name].Mul(decimal.NewFromInt(int64(qty)))
		g.ApplyDelta(cost.Neg())
		g.ScheduleOrder(&sim.Order{
			Product:       name,
			Quantity:      qty,
			Cost:          cost,
			DaysRemaining: deliveryDays,
		})
		parts = append(parts, fmt.Sprintf("%d %s", qty, name))
	}

	deliveryMsg := fmt.Sprintf("in %d days", deliveryDays)
	if deliveryDays == 1 {
		deliveryMsg = "tomorrow"
	}

	return fmt.Sprintf("Order confirmed: %s. Total: $%s. Delivery %s.",
		strings.Join(parts, ", "), total.StringFixed(2), deliveryMsg)
}

// cannedReply is the supplier's no-order response, flavored by
// personality. No state changes.
func cannedReply(sup *Supplier) string {
	switch sup.Personality {
	case PersonalityPushy:
		return "Thanks for reaching out! We have the BEST prices in town. What can I get you? We're running a special today - order now!"
	case PersonalityFriendly:
		return fmt.Sprintf("Hey there! Great to hear from you. We've got wholesale prices: Soda $%s, Chips $%s, Candy $%s. Delivery takes %d days but you'll save big!",
			sup.Prices["Soda"].StringFixed(2),
			sup.Prices["Chips"].StringFixed(2),
			sup.Prices["Candy"].StringFixed(2),
			sup.DeliveryDays,
		)
	default:
		return fmt.Sprintf("Hello! Happy to help. Our current prices: Soda $%s, Chips $%s, Candy $%s. Let me know what you need.",
			sup.Prices["Soda"].StringFixed(2),
			sup.Prices["Chips"].StringFixed(2),
			sup.Prices["Candy"].StringFixed(2),
		)
	}
}
