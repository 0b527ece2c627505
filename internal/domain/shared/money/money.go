// Package money holds fixed-point amounts in minor currency units.
package money

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/currency"
)

const DefaultCurrency = "usd"

var (
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrInvalidCurrency = errors.New("invalid currency")
)

// Money is an amount in minor units (cents) with a lower-case ISO-4217 code.
type Money struct {
	amountMinor int64
	currency    string
}

func NewMoney(amountMinor int64, cur string) Money {
	if cur == "" {
		cur = DefaultCurrency
	}
	return Money{amountMinor: amountMinor, currency: strings.ToLower(cur)}
}

// ParseDecimal parses a non-negative decimal string with at most two
// fractional digits ("99.99", "10", "0.5") into minor units.
func ParseDecimal(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	whole, frac, hasFrac := strings.Cut(s, ".")
	if whole == "" {
		whole = "0"
	}
	if hasFrac && (len(frac) == 0 || len(frac) > 2) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	for len(frac) < 2 {
		frac += "0"
	}

	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	f, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return w*100 + f, nil
}

// FormatMinor renders minor units as a two-decimal string: 9999 -> "99.99".
func FormatMinor(amountMinor int64) string {
	sign := ""
	if amountMinor < 0 {
		sign = "-"
		amountMinor = -amountMinor
	}
	return fmt.Sprintf("%s%d.%02d", sign, amountMinor/100, amountMinor%100)
}

// ValidateCurrency accepts any ISO-4217 code regardless of case.
func ValidateCurrency(cur string) error {
	if len(cur) != 3 {
		return fmt.Errorf("%w: %q", ErrInvalidCurrency, cur)
	}
	if _, err := currency.ParseISO(strings.ToUpper(cur)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidCurrency, cur)
	}
	return nil
}

func (m Money) AmountMinor() int64 {
	return m.amountMinor
}

func (m Money) Currency() string {
	return m.currency
}

// Decimal returns the amount as a two-decimal string.
func (m Money) Decimal() string {
	return FormatMinor(m.amountMinor)
}

func (m Money) Equals(other Money) bool {
	return m.amountMinor == other.amountMinor && m.currency == other.currency
}

func (m Money) IsNegative() bool {
	return m.amountMinor < 0
}

func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.Decimal(), strings.ToUpper(m.currency))
}
