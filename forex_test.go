package zakat

import (
	"testing"
	"time"
)

func TestJpathObject(t *testing.T) {
	jobj := map[string]any{
		"rates": map[string]any{"USD": 0.0035, "EUR": 0.0032},
	}

	rates, err := jpathObject(jobj, "$.rates")
	if err != nil {
		t.Fatalf("jpathObject() failed: %v", err)
	}
	if len(rates) != 2 {
		t.Errorf("got %d rates, want 2", len(rates))
	}
	if rates["USD"] != 0.0035 {
		t.Errorf("rates[USD] = %v, want 0.0035", rates["USD"])
	}

	if _, err := jpathObject(jobj, "$.symbols"); err == nil {
		t.Error("jpathObject() on a missing path succeeded, want error")
	}
	if _, err := jpathObject(map[string]any{"rates": "scalar"}, "$.rates"); err == nil {
		t.Error("jpathObject() on a non-object succeeded, want error")
	}
}

func TestFetchRates_NoKey(t *testing.T) {
	t.Setenv(forexAPIKeyEnv, "")
	*forexAPIFlag = ""

	table, err := FetchRates("PKR", time.Hour)
	if err == nil {
		t.Fatal("FetchRates() without a key succeeded, want error")
	}
	// even on failure the table is usable with the identity rate
	if !table.Rate("PKR").Equal(D(1)) {
		t.Errorf("Rate(PKR) = %v, want 1", table.Rate("PKR"))
	}
}

func TestFetchRatesOrDefault_FallsBack(t *testing.T) {
	t.Setenv(forexAPIKeyEnv, "")
	*forexAPIFlag = ""

	table := FetchRatesOrDefault("PKR", time.Hour)
	if !table.Rate("USD").IsPositive() {
		t.Errorf("fallback Rate(USD) = %v, want positive", table.Rate("USD"))
	}
	if table.Reporting != "PKR" {
		t.Errorf("Reporting = %q, want PKR", table.Reporting)
	}
}
