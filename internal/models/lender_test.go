package models

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"100.00", "100.00"},
		{"250.5", "250.5"},
		{"75", "75"},
		{" 12.50 ", "12.50"},
		{"-3.10", "-3.10"},
		{"0.000", "0.000"},
		{"1e2", "100"},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			d, err := ParseAmount(tc.in)
			if err != nil {
				t.Fatalf("ParseAmount(%q) failed: %v", tc.in, err)
			}
			if got := FormatAmount(d); got != tc.want {
				t.Errorf("FormatAmount(ParseAmount(%q)) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseAmountInvalid(t *testing.T) {
	for _, in := range []string{"", "abc", "12.5.3", "1,000", "$5"} {
		if _, err := ParseAmount(in); !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("ParseAmount(%q) error = %v, want ErrInvalidAmount", in, err)
		}
	}
}

func TestLenderString(t *testing.T) {
	l, err := NewLender("Alice", "100.00")
	if err != nil {
		t.Fatalf("NewLender failed: %v", err)
	}
	want := "Lender: Alice, Amount Owed: $100.00"
	if got := l.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	neg := Lender{Name: "Bob", AmountOwed: decimal.New(-5, 0)}
	if got, want := neg.String(), "Lender: Bob, Amount Owed: $-5"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestNewLenderKeepsNameVerbatim(t *testing.T) {
	l, err := NewLender("  spaced name ", "1")
	if err != nil {
		t.Fatalf("NewLender failed: %v", err)
	}
	if l.Name != "  spaced name " {
		t.Errorf("Name = %q, want it untouched", l.Name)
	}
}
