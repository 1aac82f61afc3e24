package zakat

import (
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// Rejection reasons for a proposed payment. These are the only errors the
// reconciler produces; the valuation engine itself never fails.
var (
	ErrNonPositiveAmount       = errors.New("payment amount must be positive")
	ErrExceedsRemainingBalance = errors.New("payment exceeds remaining balance")
)

// Disbursement is one recorded payment toward the obligation. Disbursements
// are created and deleted by explicit user action, never edited in place.
type Disbursement struct {
	Id     string
	Amount Money
	Date   Date
	Memo   string
}

// NewDisbursement creates a payment record dated on the given day.
func NewDisbursement(day Date, amount Money, notes string) Disbursement {
	if day.IsZero() {
		day = Today()
	}
	return Disbursement{Id: uuid.NewString(), Amount: amount, Date: day, Memo: notes}
}

func (d Disbursement) Equal(o Disbursement) bool {
	return d.Id == o.Id && d.Amount.Equal(o.Amount) && d.Date == o.Date && d.Memo == o.Memo
}

// MarshalJSON implements the json.Marshaler interface for Disbursement.
func (d Disbursement) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", d.Id)
	w.Append("date", d.Date)
	w.EmbedFrom(d.Amount)
	w.Optional("notes", d.Memo)
	return w.MarshalJSON()
}

// SortedByDateDesc returns a copy of the payments sorted most recent first,
// the order they are displayed in.
func SortedByDateDesc(ds []Disbursement) []Disbursement {
	out := make([]Disbursement, len(ds))
	copy(out, ds)
	sort.SliceStable(out, func(i, j int) bool {
		return out[j].Date.Before(out[i].Date)
	})
	return out
}

// FulfillmentStatus is the derived state of the obligation. It is always a
// pure function of the current entries and payments: there is no terminal
// lock, a settled obligation moves back to due if entries change.
type FulfillmentStatus int

const (
	// NotYetDue means net zakatable wealth is below the nisab.
	NotYetDue FulfillmentStatus = iota
	// Due means an obligation exists and is not fully paid.
	Due
	// Settled means cumulative payments cover the obligation.
	Settled
)

func (s FulfillmentStatus) String() string {
	switch s {
	case NotYetDue:
		return "not yet due"
	case Due:
		return "due"
	case Settled:
		return "settled"
	default:
		return "unknown"
	}
}

// Settlement reconciles the computed obligation against the payment ledger.
type Settlement struct {
	Obligation Money
	TotalPaid  Money
	// Remaining keeps the raw value; it goes negative on overpayment so a
	// fully- or over-settled state stays detectable.
	Remaining  Money
	AboveNisab bool
}

// Reconcile recomputes the running totals from the summary and the full list
// of recorded payments.
func Reconcile(s Summary, ds []Disbursement) Settlement {
	total := M(0, s.ObligationDue.Currency())
	for _, d := range ds {
		total = total.Add(d.Amount)
	}
	return Settlement{
		Obligation: s.ObligationDue,
		TotalPaid:  total,
		Remaining:  s.ObligationDue.Sub(total),
		AboveNisab: s.AboveNisab,
	}
}

// Outstanding is the remaining balance clamped at zero, for display.
func (s Settlement) Outstanding() Money {
	if s.Remaining.IsNegative() {
		return M(0, s.Remaining.Currency())
	}
	return s.Remaining
}

// Status derives the fulfillment state.
func (s Settlement) Status() FulfillmentStatus {
	if !s.AboveNisab {
		return NotYetDue
	}
	if s.Remaining.IsPositive() {
		return Due
	}
	return Settled
}

// ValidateNewPayment checks a proposed payment against the live remaining
// balance. It runs before persistence, is synchronous and has no side
// effects. Overpaying is rejected, never silently clamped.
func (s Settlement) ValidateNewPayment(amount Money) error {
	if !amount.IsPositive() {
		return fmt.Errorf("proposed payment of %s: %w", amount, ErrNonPositiveAmount)
	}
	if amount.GreaterThan(s.Remaining) {
		return fmt.Errorf("proposed payment of %s with %s remaining: %w", amount, s.Remaining, ErrExceedsRemainingBalance)
	}
	return nil
}
