package zakat

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{"2026-03-01", NewDate(2026, time.March, 1), false},
		{"2026-3-1", NewDate(2026, time.March, 1), false},
		{"0d", Today(), false},
		{"not-a-date", Date{}, true},
		{"2026-13-01", Date{}, true},
	}
	for _, tc := range testCases {
		got, err := ParseDate(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseDate(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if !tc.wantErr && got != tc.want {
			t.Errorf("ParseDate(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseDate_Relative(t *testing.T) {
	if got, err := ParseDate("-1d"); err != nil || got != Today().Add(-1) {
		t.Errorf("ParseDate(-1d) = %v, %v, want %v", got, err, Today().Add(-1))
	}
	if got, err := ParseDate("+2w"); err != nil || got != Today().Add(14) {
		t.Errorf("ParseDate(+2w) = %v, %v, want %v", got, err, Today().Add(14))
	}
}

func TestDate_BeforeAfter(t *testing.T) {
	a := NewDate(2026, time.March, 1)
	b := NewDate(2026, time.March, 2)

	if !a.Before(b) || b.Before(a) {
		t.Error("Before() is inconsistent")
	}
	if !b.After(a) || a.After(b) {
		t.Error("After() is inconsistent")
	}
}

func TestDate_JSONRoundTrip(t *testing.T) {
	d := NewDate(2026, time.March, 1)
	data, err := d.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() failed: %v", err)
	}
	if string(data) != `"2026-03-01"` {
		t.Errorf("MarshalJSON() = %s, want \"2026-03-01\"", data)
	}

	var back Date
	if err := back.UnmarshalJSON(data); err != nil {
		t.Fatalf("UnmarshalJSON() failed: %v", err)
	}
	if back != d {
		t.Errorf("round trip = %v, want %v", back, d)
	}
}
