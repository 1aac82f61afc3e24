package zakat

import (
	"fmt"
	"iter"

	"github.com/shopspring/decimal"
)

// Ledger is the single authoritative collection of entries.
//
// Entries keep their insertion order; the order has no effect on valuation,
// it only drives the category-cycling heuristic for new entries.
type Ledger struct {
	entries []Entry
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{entries: make([]Entry, 0)}
}

func (l *Ledger) Len() int { return len(l.entries) }

// Append validates and appends entries to this ledger.
func (l *Ledger) Append(entries ...Entry) error {
	for _, e := range entries {
		if e == nil {
			return errEmptyEntry
		}
		e, err := e.Validate()
		if err != nil {
			return fmt.Errorf("invalid %s entry: %w", e.Category(), err)
		}
		if l.index(e.ID()) >= 0 {
			return fmt.Errorf("duplicate entry id %q", e.ID())
		}
		l.entries = append(l.entries, e)
	}
	return nil
}

// Entry returns the entry with this id, or nil if unknown.
func (l *Ledger) Entry(id string) Entry {
	if i := l.index(id); i >= 0 {
		return l.entries[i]
	}
	return nil
}

// Delete removes the entry with this id. It reports whether an entry was
// actually removed.
func (l *Ledger) Delete(id string) bool {
	i := l.index(id)
	if i < 0 {
		return false
	}
	l.entries = append(l.entries[:i], l.entries[i+1:]...)
	return true
}

func (l *Ledger) index(id string) int {
	for i, e := range l.entries {
		if e.ID() == id {
			return i
		}
	}
	return -1
}

// Entries returns an iterator that yields each entry in insertion order.
func (l *Ledger) Entries() iter.Seq2[int, Entry] {
	return func(yield func(int, Entry) bool) {
		for i, e := range l.entries {
			if !yield(i, e) {
				return
			}
		}
	}
}

// All returns a copy of the entries slice, in insertion order.
func (l *Ledger) All() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// LastCategory returns the category of the most recently added entry.
func (l *Ledger) LastCategory() (Category, bool) {
	if len(l.entries) == 0 {
		return "", false
	}
	return l.entries[len(l.entries)-1].Category(), true
}

// Summarize computes the valuation summary for the current entries.
func (l *Ledger) Summarize(rates RateTable, nisab Money, rate decimal.Decimal) Summary {
	return Summarize(l.entries, rates, nisab, rate)
}

// UpdateField sets one field of the entry with this id from its string
// representation. Changing "category" across entry shapes rebuilds the entry,
// preserving id and notes; all other fields of the old shape are dropped.
func (l *Ledger) UpdateField(id, field, value string) error {
	i := l.index(id)
	if i < 0 {
		return fmt.Errorf("no entry with id %q", id)
	}
	updated, err := updateField(l.entries[i], field, value)
	if err != nil {
		return fmt.Errorf("cannot update %q of %s entry: %w", field, l.entries[i].Category(), err)
	}
	updated, err = updated.Validate()
	if err != nil {
		return err
	}
	l.entries[i] = updated
	return nil
}

func updateField(e Entry, field, value string) (Entry, error) {
	if field == "notes" {
		return withNotes(e, value), nil
	}
	if field == "category" {
		cat, err := ParseCategory(value)
		if err != nil {
			return nil, err
		}
		return withCategory(e, cat)
	}

	switch v := e.(type) {
	case CashEntry:
		switch field {
		case "amount":
			d, err := decimal.NewFromString(value)
			if err != nil {
				return nil, err
			}
			v.Amount = d
		case "currency":
			if value != "" {
				if err := ValidateCurrency(value); err != nil {
					return nil, err
				}
			}
			v.Currency = value
		default:
			return nil, fmt.Errorf("unknown field %q", field)
		}
		return v, nil

	case MetalEntry:
		switch field {
		case "weight":
			d, err := decimal.NewFromString(value)
			if err != nil {
				return nil, err
			}
			v.Weight = W(d, v.Weight.Unit())
		case "unit":
			u, err := ParseUnit(value)
			if err != nil {
				return nil, err
			}
			v.Weight = W(v.Weight.Value(), u)
		case "karat":
			v.Karat = Karat(value)
		case "price":
			d, err := decimal.NewFromString(value)
			if err != nil {
				return nil, err
			}
			v.PricePerGram = d
		default:
			return nil, fmt.Errorf("unknown field %q", field)
		}
		return v, nil

	case AmountEntry:
		switch field {
		case "amount":
			d, err := decimal.NewFromString(value)
			if err != nil {
				return nil, err
			}
			v.Amount = d
		default:
			return nil, fmt.Errorf("unknown field %q", field)
		}
		return v, nil
	}
	return nil, fmt.Errorf("unsupported entry type %T", e)
}

func withNotes(e Entry, notes string) Entry {
	switch v := e.(type) {
	case CashEntry:
		v.Memo = notes
		return v
	case MetalEntry:
		v.Memo = notes
		return v
	case AmountEntry:
		v.Memo = notes
		return v
	}
	return e
}

// withCategory moves an entry to another category. Within the same shape the
// fields survive; across shapes a fresh zero-valued entry is built.
func withCategory(e Entry, cat Category) (Entry, error) {
	switch v := e.(type) {
	case CashEntry:
		if cat == Cash {
			return v, nil
		}
	case MetalEntry:
		if cat.IsMetal() {
			v.Cat = cat
			return v, nil
		}
	case AmountEntry:
		if cat != Cash && !cat.IsMetal() {
			v.Cat = cat
			return v, nil
		}
	}
	fresh, err := NewEntry(cat, e.Notes())
	if err != nil {
		return nil, err
	}
	switch v := fresh.(type) {
	case CashEntry:
		v.Id = e.ID()
		return v, nil
	case MetalEntry:
		v.Id = e.ID()
		return v, nil
	case AmountEntry:
		v.Id = e.ID()
		return v, nil
	}
	return fresh, nil
}
