package zakat

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the reporting currency used when none is configured.
const DefaultCurrency = "PKR"

// RateTable maps currency codes to the multiplier converting one unit of
// that currency into the reporting currency. It is a plain immutable value:
// fetching and caching happen at the boundary, the valuation engine only
// ever receives a ready table.
type RateTable struct {
	Reporting string
	Rates     map[string]decimal.Decimal
	Symbols   map[string]string
}

// NewRateTable creates a table containing only the identity entry for the
// reporting currency.
func NewRateTable(reporting string) RateTable {
	if reporting == "" {
		reporting = DefaultCurrency
	}
	return RateTable{
		Reporting: reporting,
		Rates:     map[string]decimal.Decimal{reporting: decimal.NewFromInt(1)},
		Symbols:   map[string]string{},
	}
}

// Rate returns the reporting-currency multiplier for one unit of the given
// currency. A missing or empty currency resolves to 1, a tolerant default:
// an unknown rate must not corrupt the whole summary.
func (t RateTable) Rate(currency string) decimal.Decimal {
	if currency == "" || currency == t.Reporting {
		return decimal.NewFromInt(1)
	}
	if r, ok := t.Rates[currency]; ok {
		return r
	}
	return decimal.NewFromInt(1)
}

// DefaultRates returns the fixed fallback table used when the external rate
// source is unreachable.
func DefaultRates(reporting string) RateTable {
	t := NewRateTable(reporting)
	for c, r := range map[string]int64{
		"PKR": 1, "USD": 285, "EUR": 310, "GBP": 360, "SAR": 75,
		"AED": 78, "CAD": 210, "AUD": 180, "JPY": 2, "CHF": 320, "CNY": 40,
	} {
		if c == t.Reporting {
			continue
		}
		t.Rates[c] = decimal.NewFromInt(r)
	}
	t.Symbols = map[string]string{
		"PKR": "Pakistani Rupee",
		"USD": "United States Dollar",
		"EUR": "Euro",
		"GBP": "British Pound Sterling",
		"SAR": "Saudi Riyal",
		"AED": "United Arab Emirates Dirham",
		"CAD": "Canadian Dollar",
		"AUD": "Australian Dollar",
		"JPY": "Japanese Yen",
		"CHF": "Swiss Franc",
		"CNY": "Chinese Yuan",
	}
	return t
}

// ValidateCurrency checks that the code is a known ISO-like currency code.
func ValidateCurrency(code string) error {
	if code == "" {
		return fmt.Errorf("currency code is empty")
	}
	if money.GetCurrency(code) == nil {
		return fmt.Errorf("unknown currency code %q", code)
	}
	return nil
}
