package zakat

import "github.com/shopspring/decimal"

// PKR is a helper for test to create reporting-currency money from const
func PKR(v float64) Money { return M(v, "PKR") }

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// NO is a helper for test to create money from const with no currency set
func NO(v float64) Money { return M(v, "") }

// D is a helper for test to create a decimal from const
func D(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// testRates returns a fixed PKR-based table used across tests.
func testRates() RateTable {
	t := NewRateTable("PKR")
	t.Rates["USD"] = D(285)
	t.Rates["EUR"] = D(310)
	return t
}
