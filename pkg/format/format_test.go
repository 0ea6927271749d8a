package format

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		amount float64
		code   string
		want   string
	}{
		{10_000_000, "INR", "₹1,00,00,000"},
		{500_000, "INR", "₹5,00,000"},
		{999, "INR", "₹999"},
		{1_234.5, "INR", "₹1,235"},
		{0, "INR", "₹0"},
		{-250_000, "INR", "-₹2,50,000"},
		{10_000_000, "USD", "$10,000,000"},
		{1_000, "usd", "$1,000"},
		{12_345, "CHF", "CHF 12,345"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Currency(tt.amount, tt.code), "Currency(%v, %q)", tt.amount, tt.code)
	}
}

func TestCurrency_Infinite(t *testing.T) {
	assert.Equal(t, "₹∞", Currency(math.Inf(1), "INR"))
}

func TestNumber(t *testing.T) {
	assert.Equal(t, "1,234,567", Number(1_234_567))
	assert.Equal(t, "9,004,166.67", Number(9_004_166.666666))
	assert.Equal(t, "0.5", Number(0.5))
	assert.Equal(t, "-1,000", Number(-1_000))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "10%", Percent(10))
	assert.Equal(t, "12.5%", Percent(12.5))
}

func TestMonths(t *testing.T) {
	assert.Equal(t, "0 months", Months(0))
	assert.Equal(t, "1 month", Months(1))
	assert.Equal(t, "11 months", Months(11))
	assert.Equal(t, "1 year", Months(12))
	assert.Equal(t, "1 year and 11 months", Months(23))
	assert.Equal(t, "2 years and 1 month", Months(25))
	assert.Equal(t, "5 years", Months(60))
}

func TestRunwayLabel(t *testing.T) {
	assert.Equal(t, "Infinite", RunwayLabel(0, true))
	assert.Equal(t, "1 year and 7 months", RunwayLabel(19, false))
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"", 0},
		{"  ", 0},
		{"10000000", 10_000_000},
		{"₹1,00,00,000", 10_000_000},
		{"$2,500.75", 2_500.75},
		{" 42 ", 42},
	}

	for _, tt := range tests {
		got, err := ParseAmount(tt.in)
		require.NoError(t, err, "ParseAmount(%q)", tt.in)
		assert.Equal(t, tt.want, got, "ParseAmount(%q)", tt.in)
	}
}

func TestParseAmount_Rejects(t *testing.T) {
	_, err := ParseAmount("-500")
	assert.ErrorIs(t, err, ErrNegativeAmount)

	_, err = ParseAmount("abc")
	assert.Error(t, err)

	_, err = ParseAmount("1.2.3")
	assert.Error(t, err)
}

func TestSupportedCurrency(t *testing.T) {
	assert.True(t, SupportedCurrency("INR"))
	assert.True(t, SupportedCurrency("usd"))
	assert.False(t, SupportedCurrency("XYZ"))
}
