// Package supplier holds the wholesale supplier catalog and the
// negotiation step that interprets free-text order emails against it.
package supplier

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Personality controls the tone of a supplier's canned replies. Purely
// cosmetic; it never changes order handling.
type Personality string

const (
	PersonalityProfessional Personality = "professional"
	PersonalityPushy        Personality = "pushy"
	PersonalityFriendly     Personality = "friendly"
)

// Supplier is one wholesale counterpart: unit prices per product, how
// fast and how reliably they ship, and how they talk.
type Supplier struct {
	Name         string
	Prices       map[string]decimal.Decimal
	Reliable     bool
	DeliveryDays int
	Personality  Personality
}

// UnknownSupplierError is returned when an email recipient matches no
// catalog supplier.
type UnknownSupplierError struct {
	Recipient string
}

func (e *UnknownSupplierError) Error() string {
	return fmt.Sprintf("unknown recipient: %s", e.Recipient)
}

var catalog = []Supplier{
	{
		Name: "QuickStock",
		Prices: map[string]decimal.Decimal{
			"Soda":  dec("0.70"),
			"Chips": dec("0.45"),
			"Candy": dec("0.30"),
		},
		Reliable:     true,
		DeliveryDays: 1,
		Personality:  PersonalityProfessional,
	},
	{
		Name: "VendMart",
		Prices: map[string]decimal.Decimal{
			"Soda":  dec("0.60"),
			"Chips": dec("0.40"),
			"Candy": dec("0.25"),
		},
		Reliable:     false, // may ship a day late
		DeliveryDays: 1,
		Personality:  PersonalityPushy,
	},
	{
		Name: "BulkBarn",
		Prices: map[string]decimal.Decimal{
			"Soda":  dec("0.50"),
			"Chips": dec("0.35"),
			"Candy": dec("0.20"),
		},
		Reliable:     true, // slow but cheapest
		DeliveryDays: 3,
		Personality:  PersonalityFriendly,
	},
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Catalog returns the static supplier list in canonical order.
func Catalog() []Supplier {
	return catalog
}

// Resolve finds a supplier by case-insensitive substring match of its
// name against the email recipient.
func Resolve(recipient string) (*Supplier, error) {
	lower := strings.ToLower(recipient)
	for i := range catalog {
		if strings.Contains(lower, strings.ToLower(catalog[i].Name)) {
			return &catalog[i], nil
		}
	}
	return nil, &UnknownSupplierError{Recipient: recipient}
}

// CatalogSummary renders the supplier list for the agent's daily
// situation briefing.
func CatalogSummary() string {
	var b strings.Builder
	b.WriteString("Suppliers (email to order):\n")
	for _, s := range catalog {
		timing := fmt.Sprintf("%d-day delivery", s.DeliveryDays)
		if !s.Reliable {
			timing = fmt.Sprintf("%d-%d days", s.DeliveryDays, s.DeliveryDays+1)
		}
		fmt.Fprintf(&b, "- %s: Soda $%s, Chips $%s, Candy $%s (%s)\n",
			s.Name,
			s.Prices["Soda"].StringFixed(2),
			s.Prices["Chips"].StringFixed(2),
			s.Prices["Candy"].StringFixed(2),
			timing,
		)
	}
	return strings.TrimRight(b.String(), "\n")
}
