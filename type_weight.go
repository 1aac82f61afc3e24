package zakat

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Unit is the mass unit a metal weight is expressed in.
type Unit string

const (
	Gram Unit = "gram"
	Tola Unit = "tola"
)

// tolaInGrams is the fixed conversion factor for the traditional
// South Asian tola unit.
var tolaInGrams = decimal.NewFromFloat(11.664)

// ParseUnit parses a string into a Unit. The empty string defaults to Gram.
func ParseUnit(s string) (Unit, error) {
	switch Unit(s) {
	case Gram, "":
		return Gram, nil
	case Tola:
		return Tola, nil
	default:
		return "", fmt.Errorf("unknown weight unit: %q", s)
	}
}

// Weight represents a mass of precious metal in a given unit.
type Weight struct {
	value decimal.Decimal
	unit  Unit
}

func W[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T, unit Unit) Weight {
	if unit == "" {
		unit = Gram
	}
	return Weight{value: newDecimal(value), unit: unit}
}

func (w Weight) Unit() Unit              { return w.unit }
func (w Weight) Value() decimal.Decimal  { return w.value }
func (w Weight) IsZero() bool            { return w.value.IsZero() }
func (w Weight) IsPositive() bool        { return w.value.IsPositive() }
func (w Weight) Equal(o Weight) bool     { return w.value.Equal(o.value) && w.unit == o.unit }
func (w Weight) String() string          { return w.value.String() + " " + string(w.unit) }

// Grams returns the mass normalized to grams, the unit all purity and
// price arithmetic is done in.
func (w Weight) Grams() decimal.Decimal {
	if w.unit == Tola {
		return w.value.Mul(tolaInGrams)
	}
	return w.value
}
