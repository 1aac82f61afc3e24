package zakat

import (
	"github.com/shopspring/decimal"
)

// DefaultZakatRate is the proportional obligation applied above the nisab.
var DefaultZakatRate = decimal.NewFromFloat(0.025)

// NisabSilverGrams is the silver-equivalent mass defining the nisab
// threshold: the obligation applies once net wealth reaches the value of
// this much pure silver.
var NisabSilverGrams = decimal.NewFromFloat(612.36)

// DefaultNisabPKR is the stale flat fallback used only when no live silver
// price is available.
var DefaultNisabPKR = decimal.NewFromInt(179689)

// NisabThreshold derives the minimum-wealth threshold from a live silver
// price per gram, falling back to the given fixed amount when no price is
// available.
func NisabThreshold(silverPricePerGram decimal.Decimal, fallback Money) Money {
	if silverPricePerGram.IsPositive() {
		return M(NisabSilverGrams.Mul(silverPricePerGram), fallback.Currency())
	}
	return fallback
}

// Summary is the derived valuation of an entry collection. It is a pure
// projection of its inputs and is never persisted.
type Summary struct {
	TotalAssets      Money
	TotalLiabilities Money
	NetZakatable     Money
	Nisab            Money
	AboveNisab       bool
	ObligationDue    Money
}

// Summarize folds the entries into totals and derives the obligation.
//
// The fold is commutative: the result does not depend on entry order. Net
// zakatable wealth is clamped at zero, and the threshold comparison is
// inclusive, so a net exactly at the nisab qualifies.
func Summarize(entries []Entry, rates RateTable, nisab Money, rate decimal.Decimal) Summary {
	zero := M(decimal.Zero, rates.Reporting)
	s := Summary{
		TotalAssets:      zero,
		TotalLiabilities: zero,
		Nisab:            nisab,
		ObligationDue:    zero,
	}

	for _, e := range entries {
		if e == nil {
			continue
		}
		v := e.Value(rates)
		if e.Kind() == Asset {
			s.TotalAssets = s.TotalAssets.Add(v)
		} else {
			s.TotalLiabilities = s.TotalLiabilities.Add(v)
		}
	}

	s.NetZakatable = s.TotalAssets.Sub(s.TotalLiabilities)
	if s.NetZakatable.IsNegative() {
		s.NetZakatable = zero
	}

	s.AboveNisab = s.NetZakatable.GreaterThanOrEqual(nisab)
	if s.AboveNisab {
		s.ObligationDue = s.NetZakatable.Mul(rate)
	}
	return s
}
