// Free-text order parsing. Kept behind a small interface so the regex
// extractor can be swapped for a stricter structured-output mechanism
// without touching order validation.
package supplier

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/talgya/vendsim/internal/sim"
)

// orderKeywords mark a message as an order attempt. Anything else is
// treated as an informational inquiry.
var orderKeywords = []string{"order", "buy", "purchase", "want", "need", "send"}

// IsOrderIntent reports whether the message body looks like an order
// attempt (case-insensitive keyword match).
func IsOrderIntent(body string) bool {
	lower := strings.ToLower(body)
	for _, kw := range orderKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// QuantityParser extracts per-product quantities from an email body.
// Products with no match are absent from the result, not zero.
type QuantityParser interface {
	Quantities(body string) map[string]int
}

// regexParser matches a number adjacent to a product name, in either
// order: "20 sodas" or "soda: 20".
type regexParser struct {
	patterns map[string][]*regexp.Regexp
}

// NewParser builds the default regex-based quantity parser.
func NewParser() QuantityParser {
	p := &regexParser{patterns: map[string][]*regexp.Regexp{}}
	for _, name := range sim.ProductNames {
		lower := strings.ToLower(name)
		p.patterns[name] = []*regexp.Regexp{
			regexp.MustCompile(fmt.Sprintf(`(\d+)\s*%s`, lower)),
			regexp.MustCompile(fmt.Sprintf(`%s[:\s]+(\d+)`, lower)),
		}
	}
	return p
}

func (p *regexParser) Quantities(body string) map[string]int {
	lower := strings.ToLower(body)
	quantities := map[string]int{}

	for _, name := range sim.ProductNames {
		for _, pattern := range p.patterns[name] {
			m := pattern.FindStringSubmatch(lower)
			if m == nil {
				continue
			}
			qty, err := strconv.Atoi(m[1])
			if err != nil || qty <= 0 {
				continue
			}
			quantities[name] = qty
			break
		}
	}

	return quantities
}
