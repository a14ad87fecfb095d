package report

import (
	"fmt"

	"github.com/Rhymond/go-money"
)

// Percent formats score/max as a percentage with one decimal place.
// A non-positive max yields 0.0% rather than a division error.
func Percent(score, max float64) string {
	if max <= 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", score/max*100)
}

// Currency formats an amount with locale-aware thousands separation for
// the given ISO currency code.
func Currency(amount float64, code string) string {
	return money.NewFromFloat(amount, code).Display()
}
