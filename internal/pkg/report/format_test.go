package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercent(t *testing.T) {
	assert.Equal(t, "85.7%", Percent(85.7, 100))
	assert.Equal(t, "50.0%", Percent(30, 60))
	assert.Equal(t, "33.3%", Percent(1, 3))
	assert.Equal(t, "0.0%", Percent(10, 0))
	assert.Equal(t, "0.0%", Percent(10, -5))
}

func TestCurrency(t *testing.T) {
	assert.Equal(t, "$1,234,567.89", Currency(1234567.89, "USD"))
	assert.Contains(t, Currency(50000, "INR"), ",")
}
