package supplier

import (
	"errors"
	"strings"
	"testing"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		recipient string
		want      string
	}{
		{"QuickStock", "QuickStock"},
		{"quickstock", "QuickStock"},
		{"orders@vendmart.example", "VendMart"},
		{"BulkBarn Wholesale Dept", "BulkBarn"},
	}
	for _, tt := range tests {
		sup, err := Resolve(tt.recipient)
		if err != nil {
			t.Errorf("Resolve(%q) failed: %v", tt.recipient, err)
			continue
		}
		if sup.Name != tt.want {
			t.Errorf("Resolve(%q) = %s, want %s", tt.recipient, sup.Name, tt.want)
		}
	}
}

func TestResolve_Unknown(t *testing.T) {
	_, err := Resolve("Acme Corp")
	if err == nil {
		t.Fatal("expected error for unknown supplier")
	}
	var unknownErr *UnknownSupplierError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("expected UnknownSupplierError, got %T", err)
	}
	if unknownErr.Recipient != "Acme Corp" {
		t.Errorf("expected recipient in error, got %q", unknownErr.Recipient)
	}
}

func TestCatalogSummary(t *testing.T) {
	summary := CatalogSummary()

	for _, name := range []string{"QuickStock", "VendMart", "BulkBarn"} {
		if !strings.Contains(summary, name) {
			t.Errorf("summary missing supplier %s", name)
		}
	}
	if !strings.Contains(summary, "$0.70") {
		t.Error("summary missing QuickStock soda price")
	}
	if !strings.Contains(summary, "1-2 days") {
		t.Error("summary missing unreliable delivery range")
	}
	if !strings.Contains(summary, "3-day delivery") {
		t.Error("summary missing BulkBarn delivery time")
	}
}
