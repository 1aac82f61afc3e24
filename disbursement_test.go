package zakat

import (
	"errors"
	"testing"
)

// dueSummary returns a summary with a 6250 PKR obligation.
func dueSummary() Summary {
	entries := []Entry{NewCashEntry(D(250000), "", "")}
	return Summarize(entries, testRates(), PKR(179689), DefaultZakatRate)
}

func TestReconcile_NoPayments(t *testing.T) {
	s := Reconcile(dueSummary(), nil)

	if !s.Obligation.Equal(PKR(6250)) {
		t.Errorf("Obligation = %v, want %v", s.Obligation, PKR(6250))
	}
	if !s.TotalPaid.IsZero() {
		t.Errorf("TotalPaid = %v, want zero", s.TotalPaid)
	}
	if !s.Remaining.Equal(PKR(6250)) {
		t.Errorf("Remaining = %v, want %v", s.Remaining, PKR(6250))
	}
	if got := s.Status(); got != Due {
		t.Errorf("Status() = %v, want %v", got, Due)
	}
}

func TestReconcile_ExactSettlement(t *testing.T) {
	ds := []Disbursement{NewDisbursement(MustParseDate("2026-3-1"), PKR(6250), "")}
	s := Reconcile(dueSummary(), ds)

	if !s.Remaining.IsZero() {
		t.Errorf("Remaining = %v, want zero", s.Remaining)
	}
	if got := s.Status(); got != Settled {
		t.Errorf("Status() = %v, want %v", got, Settled)
	}

	// Once settled, any further positive payment must be rejected.
	if err := s.ValidateNewPayment(PKR(1)); !errors.Is(err, ErrExceedsRemainingBalance) {
		t.Errorf("ValidateNewPayment(1) = %v, want ErrExceedsRemainingBalance", err)
	}
}

func TestValidateNewPayment(t *testing.T) {
	s := Reconcile(dueSummary(), []Disbursement{
		NewDisbursement(MustParseDate("2026-3-1"), PKR(1250), "first installment"),
	})
	// 5000 remaining.

	testCases := []struct {
		name    string
		amount  Money
		wantErr error
	}{
		{"zero", PKR(0), ErrNonPositiveAmount},
		{"negative", PKR(-100), ErrNonPositiveAmount},
		{"small", PKR(0.01), nil},
		{"partial", PKR(2500), nil},
		{"exact remaining", PKR(5000), nil},
		{"just over", PKR(5000.01), ErrExceedsRemainingBalance},
		{"way over", PKR(100000), ErrExceedsRemainingBalance},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := s.ValidateNewPayment(tc.amount)
			if tc.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateNewPayment(%v) = %v, want nil", tc.amount, err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("ValidateNewPayment(%v) = %v, want %v", tc.amount, err, tc.wantErr)
			}
		})
	}
}

// TestStatus_NotTerminal checks a settled obligation reopens when the entries
// change.
func TestStatus_NotTerminal(t *testing.T) {
	ds := []Disbursement{NewDisbursement(MustParseDate("2026-3-1"), PKR(6250), "")}

	if got := Reconcile(dueSummary(), ds).Status(); got != Settled {
		t.Fatalf("Status() = %v, want %v", got, Settled)
	}

	// A new asset raises the obligation above what was paid.
	entries := []Entry{NewCashEntry(D(500000), "", "")}
	grown := Summarize(entries, testRates(), PKR(179689), DefaultZakatRate)
	if got := Reconcile(grown, ds).Status(); got != Due {
		t.Errorf("Status() after growth = %v, want %v", got, Due)
	}
}

func TestStatus_BelowNisab(t *testing.T) {
	entries := []Entry{NewCashEntry(D(1000), "", "")}
	s := Summarize(entries, testRates(), PKR(179689), DefaultZakatRate)

	if got := Reconcile(s, nil).Status(); got != NotYetDue {
		t.Errorf("Status() = %v, want %v", got, NotYetDue)
	}
}

// TestOutstanding_ClampsOverpayment checks the displayed balance never goes
// negative even when historical payments exceed a shrunken obligation.
func TestOutstanding_ClampsOverpayment(t *testing.T) {
	ds := []Disbursement{NewDisbursement(MustParseDate("2026-3-1"), PKR(6250), "")}
	entries := []Entry{NewCashEntry(D(200000), "", "")}
	shrunk := Summarize(entries, testRates(), PKR(179689), DefaultZakatRate)
	// obligation is now 5000, but 6250 was already paid.

	s := Reconcile(shrunk, ds)
	if !s.Remaining.IsNegative() {
		t.Errorf("Remaining = %v, want negative", s.Remaining)
	}
	if !s.Outstanding().IsZero() {
		t.Errorf("Outstanding() = %v, want zero", s.Outstanding())
	}
	if got := s.Status(); got != Settled {
		t.Errorf("Status() = %v, want %v", got, Settled)
	}
}

func TestSortedByDateDesc(t *testing.T) {
	ds := []Disbursement{
		NewDisbursement(MustParseDate("2026-1-10"), PKR(100), "a"),
		NewDisbursement(MustParseDate("2026-3-1"), PKR(200), "b"),
		NewDisbursement(MustParseDate("2025-12-25"), PKR(300), "c"),
	}
	sorted := SortedByDateDesc(ds)

	want := []string{"b", "a", "c"}
	for i, memo := range want {
		if sorted[i].Memo != memo {
			t.Errorf("sorted[%d].Memo = %q, want %q", i, sorted[i].Memo, memo)
		}
	}
	// the input order is untouched
	if ds[0].Memo != "a" {
		t.Error("SortedByDateDesc modified its input")
	}
}
