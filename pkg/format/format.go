// Package format renders money, percentages and durations for reports and terminal output,
// and parses user-typed amounts.
package format

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency reports are rendered in unless configured otherwise.
const DefaultCurrency = "INR"

type currencyStyle struct {
	symbol string
	indian bool // lakh/crore digit grouping
}

var currencies = map[string]currencyStyle{
	"INR": {symbol: "₹", indian: true},
	"USD": {symbol: "$"},
	"EUR": {symbol: "€"},
	"GBP": {symbol: "£"},
}

// SupportedCurrency reports whether code has a known display style.
func SupportedCurrency(code string) bool {
	_, ok := currencies[strings.ToUpper(code)]
	return ok
}

// Currency rounds amount to whole units and formats it with the currency symbol,
// e.g. Currency(10000000, "INR") == "₹1,00,00,000".
func Currency(amount float64, code string) string {
	style, ok := currencies[strings.ToUpper(code)]
	if !ok {
		style = currencyStyle{symbol: strings.ToUpper(code) + " "}
	}

	if math.IsInf(amount, 0) || math.IsNaN(amount) {
		return style.symbol + "∞"
	}

	rounded := decimal.NewFromFloat(amount).Round(0)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}

	digits := rounded.String()
	if style.indian {
		return sign + style.symbol + groupIndian(digits)
	}
	return sign + style.symbol + groupThousands(digits)
}

// Number formats n with thousands separators and up to two decimals.
func Number(n float64) string {
	s := decimal.NewFromFloat(n).Round(2).StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}

	intPart, frac, _ := strings.Cut(s, ".")
	frac = strings.TrimRight(frac, "0")
	if frac == "" {
		return sign + groupThousands(intPart)
	}
	return sign + groupThousands(intPart) + "." + frac
}

// Percent formats an annual percentage value, e.g. Percent(12.5) == "12.5%".
func Percent(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64) + "%"
}

// Months renders a month count as years and months, e.g. 19 -> "1 year and 7 months".
func Months(months int) string {
	years := months / 12
	remaining := months % 12

	switch {
	case years == 0:
		return fmt.Sprintf("%d %s", remaining, plural(remaining, "month"))
	case remaining == 0:
		return fmt.Sprintf("%d %s", years, plural(years, "year"))
	default:
		return fmt.Sprintf("%d %s and %d %s", years, plural(years, "year"), remaining, plural(remaining, "month"))
	}
}

// RunwayLabel renders a runway, using "Infinite" for a company that does not burn cash.
func RunwayLabel(months int, infinite bool) string {
	if infinite {
		return "Infinite"
	}
	return Months(months)
}

var nonNumeric = regexp.MustCompile(`[^0-9.]`)

// ErrNegativeAmount is returned by ParseAmount for values with a leading minus sign.
var ErrNegativeAmount = errors.New("amount must not be negative")

// ParseAmount parses a user-typed amount. Currency symbols, separators and any other
// character that is not a digit or a dot are ignored; an empty value parses as 0.
func ParseAmount(s string) (float64, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, nil
	}
	if strings.HasPrefix(trimmed, "-") {
		return 0, ErrNegativeAmount
	}

	cleaned := nonNumeric.ReplaceAllString(trimmed, "")
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	return v, nil
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// groupIndian groups the last three digits, then every two: 10000000 -> 1,00,00,000.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	last3 := digits[len(digits)-3:]
	rest := digits[:len(digits)-3]

	var parts []string
	for len(rest) > 2 {
		parts = append([]string{rest[len(rest)-2:]}, parts...)
		rest = rest[:len(rest)-2]
	}
	if rest != "" {
		parts = append([]string{rest}, parts...)
	}
	return strings.Join(parts, ",") + "," + last3
}
