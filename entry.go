package zakat

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind tells whether an entry adds to or subtracts from the zakatable base.
type Kind int

const (
	Asset Kind = iota
	Liability
)

func (k Kind) String() string {
	switch k {
	case Asset:
		return "Asset"
	case Liability:
		return "Liability"
	default:
		return "unknown"
	}
}

// Category is a typed string identifying the fixed wealth categories.
type Category string

// Categories recognized by the calculator. The category fully determines the
// entry's kind and its required fields.
const (
	Cash              Category = "cash"
	Gold              Category = "gold"
	Silver            Category = "silver"
	BusinessInventory Category = "inventory"
	Receivables       Category = "receivables"
	PersonalDebt      Category = "personal-debt"
	BusinessLoan      Category = "business-loan"
	OtherPayables     Category = "payables"
)

// CategorySequence is the order categories are cycled through when proposing
// a default for a new entry.
var CategorySequence = []Category{
	Cash, Gold, Silver, BusinessInventory, Receivables,
	PersonalDebt, BusinessLoan, OtherPayables,
}

// Kind returns the fixed kind for the category. The mapping is an invariant
// and is never user-editable independently of the category.
func (c Category) Kind() Kind {
	switch c {
	case PersonalDebt, BusinessLoan, OtherPayables:
		return Liability
	default:
		return Asset
	}
}

// IsMetal reports whether the category is valued by weight, karat and price.
func (c Category) IsMetal() bool { return c == Gold || c == Silver }

// String returns the category display name.
func (c Category) String() string {
	switch c {
	case Cash:
		return "Cash"
	case Gold:
		return "Gold"
	case Silver:
		return "Silver"
	case BusinessInventory:
		return "Business Inventory"
	case Receivables:
		return "Receivables"
	case PersonalDebt:
		return "Personal Debt"
	case BusinessLoan:
		return "Business Loan"
	case OtherPayables:
		return "Other Payables"
	default:
		return string(c)
	}
}

// ParseCategory parses a string into a Category. It accepts both the wire
// form ("personal-debt") and the display form ("Personal Debt").
func ParseCategory(s string) (Category, error) {
	for _, c := range CategorySequence {
		if s == string(c) || s == c.String() {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category: %q", s)
}

// NextCategory returns the category following 'last' in the fixed sequence,
// wrapping around. It backs the "propose the next card" heuristic.
func NextCategory(last Category) Category {
	for i, c := range CategorySequence {
		if c == last {
			return CategorySequence[(i+1)%len(CategorySequence)]
		}
	}
	return Cash
}

// Karat is the purity grade of a precious metal.
type Karat string

const (
	Karat24 Karat = "24K"
	Karat22 Karat = "22K"
	Karat21 Karat = "21K"
	Karat18 Karat = "18K"
)

var goldPurity = map[Karat]decimal.Decimal{
	Karat24: decimal.NewFromInt(1),
	Karat22: decimal.NewFromFloat(0.916),
	Karat21: decimal.NewFromFloat(0.875),
	Karat18: decimal.NewFromFloat(0.75),
}

var silverPurity = map[Karat]decimal.Decimal{
	Karat24: decimal.NewFromInt(1),
	Karat22: decimal.NewFromFloat(0.916),
	Karat21: decimal.NewFromFloat(0.875),
}

// Purity returns the pure-metal fraction for the karat grade of the given
// metal category. ok is false for an unset or unrecognized grade.
func (k Karat) Purity(metal Category) (m decimal.Decimal, ok bool) {
	switch metal {
	case Gold:
		m, ok = goldPurity[k]
	case Silver:
		m, ok = silverPurity[k]
	}
	return m, ok
}

// Entry is one line item of wealth or debt. The concrete type is determined
// by the category, so the mutual exclusion between monetary and metal fields
// is enforced by construction rather than by runtime field-presence checks.
type Entry interface {
	ID() string
	Category() Category
	Kind() Kind
	Notes() string
	// Value computes the entry's worth in the table's reporting currency.
	// It never fails: incomplete optional fields degrade to zero.
	Value(rates RateTable) Money
	Equal(Entry) bool
	// Validate checks the entry for correctness and applies quick fixes
	// where applicable (e.g., minting a missing id). It returns the
	// validated (and potentially modified) entry or an error.
	Validate() (Entry, error)
}

type baseEntry struct {
	Id   string   `json:"id"`
	Cat  Category `json:"category"`
	Memo string   `json:"notes,omitempty"`
}

func (e baseEntry) ID() string         { return e.Id }
func (e baseEntry) Category() Category { return e.Cat }
func (e baseEntry) Kind() Kind         { return e.Cat.Kind() }
func (e baseEntry) Notes() string      { return e.Memo }

// MarshalJSON implements the json.Marshaler interface for baseEntry.
func (e baseEntry) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("category", e.Cat)
	w.Append("id", e.Id)
	w.Optional("notes", e.Memo)
	return w.MarshalJSON()
}

// validate checks the base fields and mints an id when missing.
func (e *baseEntry) validate() error {
	if e.Id == "" {
		e.Id = uuid.NewString()
	}
	if _, err := ParseCategory(string(e.Cat)); err != nil {
		return err
	}
	return nil
}

// CashEntry is money held in some currency, converted into the reporting
// currency through the rate table.
type CashEntry struct {
	baseEntry
	Amount   decimal.Decimal
	Currency string // empty means the reporting currency
}

// NewCashEntry creates a cash entry. An empty currency means the reporting
// currency.
func NewCashEntry(amount decimal.Decimal, currency, notes string) CashEntry {
	return CashEntry{
		baseEntry: baseEntry{Id: uuid.NewString(), Cat: Cash, Memo: notes},
		Amount:    amount,
		Currency:  currency,
	}
}

func (e CashEntry) Value(rates RateTable) Money {
	return M(e.Amount.Mul(rates.Rate(e.Currency)), rates.Reporting)
}

func (e CashEntry) Equal(other Entry) bool {
	o, ok := other.(CashEntry)
	return ok && e.baseEntry == o.baseEntry && e.Amount.Equal(o.Amount) && e.Currency == o.Currency
}

func (e CashEntry) Validate() (Entry, error) {
	if err := e.baseEntry.validate(); err != nil {
		return e, err
	}
	if e.Cat != Cash {
		return e, fmt.Errorf("cash entry cannot have category %q", e.Cat)
	}
	if e.Amount.IsNegative() {
		return e, fmt.Errorf("cash amount must not be negative, got %s", e.Amount)
	}
	if e.Currency != "" {
		if err := ValidateCurrency(e.Currency); err != nil {
			return e, err
		}
	}
	return e, nil
}

// MarshalJSON implements the json.Marshaler interface for CashEntry.
func (e CashEntry) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(e.baseEntry)
	w.Append("amount", e.Amount)
	w.Optional("currency", e.Currency)
	return w.MarshalJSON()
}

// MetalEntry is a precious-metal holding valued by weight, purity grade and
// the spot price for pure metal. The monetary worth is always derived, never
// stored.
type MetalEntry struct {
	baseEntry
	Weight       Weight
	Karat        Karat
	PricePerGram decimal.Decimal // spot price for 24K-equivalent metal
}

// NewMetalEntry creates a gold or silver entry.
func NewMetalEntry(metal Category, weight Weight, karat Karat, pricePerGram decimal.Decimal, notes string) MetalEntry {
	return MetalEntry{
		baseEntry:    baseEntry{Id: uuid.NewString(), Cat: metal, Memo: notes},
		Weight:       weight,
		Karat:        karat,
		PricePerGram: pricePerGram,
	}
}

// Value computes weight-in-grams x price x purity. An incomplete entry
// (missing karat, weight or price) contributes nothing rather than aborting
// the aggregate calculation.
func (e MetalEntry) Value(rates RateTable) Money {
	purity, ok := e.Karat.Purity(e.Cat)
	if !ok || !e.Weight.IsPositive() || !e.PricePerGram.IsPositive() {
		return M(decimal.Zero, rates.Reporting)
	}
	return M(e.Weight.Grams().Mul(e.PricePerGram).Mul(purity), rates.Reporting)
}

func (e MetalEntry) Equal(other Entry) bool {
	o, ok := other.(MetalEntry)
	return ok && e.baseEntry == o.baseEntry && e.Weight.Equal(o.Weight) &&
		e.Karat == o.Karat && e.PricePerGram.Equal(o.PricePerGram)
}

func (e MetalEntry) Validate() (Entry, error) {
	if err := e.baseEntry.validate(); err != nil {
		return e, err
	}
	if !e.Cat.IsMetal() {
		return e, fmt.Errorf("metal entry cannot have category %q", e.Cat)
	}
	if e.Weight.Value().IsNegative() {
		return e, fmt.Errorf("metal weight must not be negative, got %s", e.Weight)
	}
	if e.PricePerGram.IsNegative() {
		return e, fmt.Errorf("metal price per gram must not be negative, got %s", e.PricePerGram)
	}
	if e.Karat != "" {
		if _, ok := e.Karat.Purity(e.Cat); !ok {
			return e, fmt.Errorf("unknown karat %q for %s", e.Karat, e.Cat)
		}
	}
	return e, nil
}

// MarshalJSON implements the json.Marshaler interface for MetalEntry.
func (e MetalEntry) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(e.baseEntry)
	w.Append("weight", e.Weight.Value())
	w.Append("unit", e.Weight.Unit())
	w.Optional("karat", e.Karat)
	w.Append("price", e.PricePerGram)
	return w.MarshalJSON()
}

// AmountEntry is any category taken at face value in the reporting currency:
// business inventory, receivables, and all liability categories.
type AmountEntry struct {
	baseEntry
	Amount decimal.Decimal
}

// NewAmountEntry creates a face-value entry for the given category.
func NewAmountEntry(category Category, amount decimal.Decimal, notes string) AmountEntry {
	return AmountEntry{
		baseEntry: baseEntry{Id: uuid.NewString(), Cat: category, Memo: notes},
		Amount:    amount,
	}
}

func (e AmountEntry) Value(rates RateTable) Money {
	return M(e.Amount, rates.Reporting)
}

func (e AmountEntry) Equal(other Entry) bool {
	o, ok := other.(AmountEntry)
	return ok && e.baseEntry == o.baseEntry && e.Amount.Equal(o.Amount)
}

func (e AmountEntry) Validate() (Entry, error) {
	if err := e.baseEntry.validate(); err != nil {
		return e, err
	}
	if e.Cat == Cash || e.Cat.IsMetal() {
		return e, fmt.Errorf("category %q requires a dedicated entry type", e.Cat)
	}
	if e.Amount.IsNegative() {
		return e, fmt.Errorf("amount must not be negative, got %s", e.Amount)
	}
	return e, nil
}

// MarshalJSON implements the json.Marshaler interface for AmountEntry.
func (e AmountEntry) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(e.baseEntry)
	w.Append("amount", e.Amount)
	return w.MarshalJSON()
}

// NewEntry creates a zero-valued entry of the right concrete type for the
// category, ready to be filled in field by field.
func NewEntry(category Category, notes string) (Entry, error) {
	switch {
	case category == Cash:
		return NewCashEntry(decimal.Zero, "", notes), nil
	case category.IsMetal():
		return NewMetalEntry(category, W(0, Gram), "", decimal.Zero, notes), nil
	default:
		if _, err := ParseCategory(string(category)); err != nil {
			return nil, err
		}
		return NewAmountEntry(category, decimal.Zero, notes), nil
	}
}

var errEmptyEntry = errors.New("entry is nil")
