package zakat

import (
	"math/rand"
	"testing"
)

// TestSummarize_CashOnly checks a single cash holding above the threshold.
func TestSummarize_CashOnly(t *testing.T) {
	entries := []Entry{NewCashEntry(D(250000), "", "savings")}

	s := Summarize(entries, testRates(), PKR(179689), DefaultZakatRate)

	if !s.TotalAssets.Equal(PKR(250000)) {
		t.Errorf("TotalAssets = %v, want %v", s.TotalAssets, PKR(250000))
	}
	if !s.NetZakatable.Equal(PKR(250000)) {
		t.Errorf("NetZakatable = %v, want %v", s.NetZakatable, PKR(250000))
	}
	if !s.AboveNisab {
		t.Error("AboveNisab = false, want true")
	}
	if !s.ObligationDue.Equal(PKR(6250)) {
		t.Errorf("ObligationDue = %v, want %v", s.ObligationDue, PKR(6250))
	}
}

// TestSummarize_GoldAndDebt checks metal valuation netted against a liability.
func TestSummarize_GoldAndDebt(t *testing.T) {
	entries := []Entry{
		NewMetalEntry(Gold, W(10, Gram), Karat24, D(28200), ""),
		NewAmountEntry(PersonalDebt, D(50000), "car loan"),
	}

	s := Summarize(entries, testRates(), PKR(179689), DefaultZakatRate)

	if !s.TotalAssets.Equal(PKR(282000)) {
		t.Errorf("TotalAssets = %v, want %v", s.TotalAssets, PKR(282000))
	}
	if !s.TotalLiabilities.Equal(PKR(50000)) {
		t.Errorf("TotalLiabilities = %v, want %v", s.TotalLiabilities, PKR(50000))
	}
	if !s.NetZakatable.Equal(PKR(232000)) {
		t.Errorf("NetZakatable = %v, want %v", s.NetZakatable, PKR(232000))
	}
	if !s.ObligationDue.Equal(PKR(5800)) {
		t.Errorf("ObligationDue = %v, want %v", s.ObligationDue, PKR(5800))
	}
}

// TestSummarize_ForeignCash checks currency conversion through the rate table.
func TestSummarize_ForeignCash(t *testing.T) {
	entries := []Entry{NewCashEntry(D(100), "USD", "")}

	s := Summarize(entries, testRates(), PKR(179689), DefaultZakatRate)

	if !s.TotalAssets.Equal(PKR(28500)) {
		t.Errorf("TotalAssets = %v, want %v", s.TotalAssets, PKR(28500))
	}
}

// TestSummarize_OrderInvariance checks that entry order never changes the
// summary.
func TestSummarize_OrderInvariance(t *testing.T) {
	entries := []Entry{
		NewCashEntry(D(100000), "", ""),
		NewCashEntry(D(500), "USD", ""),
		NewMetalEntry(Gold, W(5, Tola), Karat22, D(28200), ""),
		NewMetalEntry(Silver, W(200, Gram), Karat24, D(320), ""),
		NewAmountEntry(Receivables, D(30000), ""),
		NewAmountEntry(BusinessLoan, D(80000), ""),
		NewAmountEntry(OtherPayables, D(1500), ""),
	}
	want := Summarize(entries, testRates(), PKR(179689), DefaultZakatRate)

	r := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		shuffled := make([]Entry, len(entries))
		copy(shuffled, entries)
		r.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		got := Summarize(shuffled, testRates(), PKR(179689), DefaultZakatRate)
		if !got.TotalAssets.Equal(want.TotalAssets) ||
			!got.TotalLiabilities.Equal(want.TotalLiabilities) ||
			!got.ObligationDue.Equal(want.ObligationDue) {
			t.Fatalf("shuffle %d changed the summary: got %+v, want %+v", i, got, want)
		}
	}
}

// TestSummarize_NetNeverNegative checks clamping when liabilities dominate.
func TestSummarize_NetNeverNegative(t *testing.T) {
	entries := []Entry{
		NewCashEntry(D(1000), "", ""),
		NewAmountEntry(PersonalDebt, D(1000000), ""),
	}

	s := Summarize(entries, testRates(), PKR(179689), DefaultZakatRate)

	if s.NetZakatable.IsNegative() {
		t.Errorf("NetZakatable = %v, want non-negative", s.NetZakatable)
	}
	if !s.NetZakatable.IsZero() {
		t.Errorf("NetZakatable = %v, want zero", s.NetZakatable)
	}
	if s.AboveNisab {
		t.Error("AboveNisab = true, want false")
	}
	if !s.ObligationDue.IsZero() {
		t.Errorf("ObligationDue = %v, want zero", s.ObligationDue)
	}
}

// TestSummarize_InclusiveBoundary checks a net exactly at the threshold
// qualifies.
func TestSummarize_InclusiveBoundary(t *testing.T) {
	testCases := []struct {
		name           string
		amount         float64
		wantAbove      bool
		wantObligation Money
	}{
		{"just below", 179688, false, PKR(0)},
		{"exactly at", 179689, true, PKR(4492.225)},
		{"just above", 179690, true, PKR(4492.25)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			entries := []Entry{NewCashEntry(D(tc.amount), "", "")}
			s := Summarize(entries, testRates(), PKR(179689), DefaultZakatRate)
			if s.AboveNisab != tc.wantAbove {
				t.Errorf("AboveNisab = %v, want %v", s.AboveNisab, tc.wantAbove)
			}
			if !s.ObligationDue.Equal(tc.wantObligation) {
				t.Errorf("ObligationDue = %v, want %v", s.ObligationDue, tc.wantObligation)
			}
		})
	}
}

// TestMetalEntry_WeightLinearity checks doubling the weight doubles the value.
func TestMetalEntry_WeightLinearity(t *testing.T) {
	rates := testRates()
	single := NewMetalEntry(Gold, W(10, Gram), Karat22, D(28200), "")
	double := NewMetalEntry(Gold, W(20, Gram), Karat22, D(28200), "")

	if want := single.Value(rates).Mul(D(2)); !double.Value(rates).Equal(want) {
		t.Errorf("Value at double weight = %v, want %v", double.Value(rates), want)
	}
}

// TestMetalEntry_UnitRoundTrip checks grams and tolas agree through the
// conversion factor.
func TestMetalEntry_UnitRoundTrip(t *testing.T) {
	rates := testRates()
	inGrams := NewMetalEntry(Gold, W(11.664, Gram), Karat24, D(28200), "")
	inTolas := NewMetalEntry(Gold, W(1, Tola), Karat24, D(28200), "")

	if !inGrams.Value(rates).Equal(inTolas.Value(rates)) {
		t.Errorf("value in grams %v != value in tolas %v", inGrams.Value(rates), inTolas.Value(rates))
	}
}

// TestMetalEntry_IncompleteIsZero checks fail-soft valuation of partial
// entries.
func TestMetalEntry_IncompleteIsZero(t *testing.T) {
	rates := testRates()
	testCases := []struct {
		name  string
		entry MetalEntry
	}{
		{"no karat", NewMetalEntry(Gold, W(10, Gram), "", D(28200), "")},
		{"no weight", NewMetalEntry(Gold, W(0, Gram), Karat24, D(28200), "")},
		{"no price", NewMetalEntry(Gold, W(10, Gram), Karat24, D(0), "")},
		{"18K silver", NewMetalEntry(Silver, W(10, Gram), Karat18, D(320), "")},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if v := tc.entry.Value(rates); !v.IsZero() {
				t.Errorf("Value() = %v, want zero", v)
			}
		})
	}
}

// TestKaratPurity checks the fixed purity multipliers.
func TestKaratPurity(t *testing.T) {
	testCases := []struct {
		metal  Category
		karat  Karat
		want   float64
		wantOk bool
	}{
		{Gold, Karat24, 1, true},
		{Gold, Karat22, 0.916, true},
		{Gold, Karat21, 0.875, true},
		{Gold, Karat18, 0.75, true},
		{Silver, Karat24, 1, true},
		{Silver, Karat22, 0.916, true},
		{Silver, Karat21, 0.875, true},
		{Silver, Karat18, 0, false},
		{Gold, "", 0, false},
		{Cash, Karat24, 0, false},
	}
	for _, tc := range testCases {
		got, ok := tc.karat.Purity(tc.metal)
		if ok != tc.wantOk {
			t.Errorf("Purity(%s, %s) ok = %v, want %v", tc.karat, tc.metal, ok, tc.wantOk)
			continue
		}
		if ok && !got.Equal(D(tc.want)) {
			t.Errorf("Purity(%s, %s) = %v, want %v", tc.karat, tc.metal, got, tc.want)
		}
	}
}

// TestNisabThreshold checks derivation from the silver price with fallback.
func TestNisabThreshold(t *testing.T) {
	// 612.36 g x 320 PKR/g
	if got, want := NisabThreshold(D(320), PKR(179689)), PKR(195955.2); !got.Equal(want) {
		t.Errorf("NisabThreshold(320) = %v, want %v", got, want)
	}
	if got, want := NisabThreshold(D(0), PKR(179689)), PKR(179689); !got.Equal(want) {
		t.Errorf("NisabThreshold(0) = %v, want fallback %v", got, want)
	}
}
