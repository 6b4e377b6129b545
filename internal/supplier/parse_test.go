package supplier

import (
	"testing"
)

func TestIsOrderIntent(t *testing.T) {
	tests := []struct {
		body string
		want bool
	}{
		{"I'd like to order 50 sodas", true},
		{"Please BUY now", true},
		{"We want to purchase chips", true},
		{"need restock", true},
		{"Send 20 candy please", true},
		{"What are your prices?", false},
		{"Hello there", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsOrderIntent(tt.body); got != tt.want {
			t.Errorf("IsOrderIntent(%q) = %v, want %v", tt.body, got, tt.want)
		}
	}
}

func TestQuantities(t *testing.T) {
	parser := NewParser()

	tests := []struct {
		name string
		body string
		want map[string]int
	}{
		{
			name: "number before product",
			body: "Please send 50 sodas",
			want: map[string]int{"Soda": 50},
		},
		{
			name: "number after product with colon",
			body: "soda: 20, chips: 15",
			want: map[string]int{"Soda": 20, "Chips": 15},
		},
		{
			name: "mixed case",
			body: "Order 30 SODA and 10 Candy",
			want: map[string]int{"Soda": 30, "Candy": 10},
		},
		{
			name: "all three products",
			body: "I want 20 soda, 15 chips and 18 candy",
			want: map[string]int{"Soda": 20, "Chips": 15, "Candy": 18},
		},
		{
			name: "no quantities",
			body: "I would like to order some soda",
			want: map[string]int{},
		},
		{
			name: "unknown product ignored",
			body: "40 gum and 5 chips",
			want: map[string]int{"Chips": 5},
		},
		{
			name: "empty body",
			body: "",
			want: map[string]int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parser.Quantities(tt.body)
			if len(got) != len(tt.want) {
				t.Fatalf("Quantities(%q) = %v, want %v", tt.body, got, tt.want)
			}
			for product, qty := range tt.want {
				if got[product] != qty {
					t.Errorf("Quantities(%q)[%s] = %d, want %d", tt.body, product, got[product], qty)
				}
			}
		})
	}
}

func TestQuantities_AbsentNotZero(t *testing.T) {
	parser := NewParser()

	got := parser.Quantities("order 50 soda")
	if _, present := got["Chips"]; present {
		t.Error("unmatched product should be absent, not zero")
	}
}
