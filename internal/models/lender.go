package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount is returned when an amount cannot be parsed as a decimal number.
var ErrInvalidAmount = errors.New("invalid amount")

// Lender is a party and the amount owed to it
type Lender struct {
	Name       string
	AmountOwed decimal.Decimal // sign is not constrained
}

// NewLender builds a Lender from a name and the textual form of the amount.
func NewLender(name, amount string) (Lender, error) {
	d, err := ParseAmount(amount)
	if err != nil {
		return Lender{}, err
	}
	return Lender{Name: name, AmountOwed: d}, nil
}

func (l Lender) String() string {
	return fmt.Sprintf("Lender: %s, Amount Owed: $%s", l.Name, FormatAmount(l.AmountOwed))
}

// ParseAmount parses s as a decimal number. Surrounding whitespace is ignored.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w %q: %v", ErrInvalidAmount, s, err)
	}
	return d, nil
}

// FormatAmount renders d keeping the scale it was parsed with, so "100.00"
// is not shortened to "100".
func FormatAmount(d decimal.Decimal) string {
	if exp := d.Exponent(); exp < 0 {
		return d.StringFixed(-exp)
	}
	return d.String()
}
