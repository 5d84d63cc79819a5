package stockcsv

import (
	"strings"

	"github.com/shopspring/decimal"
)

// parsePrice parses a unit price cell. Warehouse sheets use plain decimals
// ("129.50") while distributor sheets use European formatting ("1.234,56").
func parsePrice(s string) (decimal.Decimal, error) {
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}

	return decimal.NewFromString(s)
}
