package stockdash

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-06-01")
	if err != nil {
		t.Fatalf("ParseDate failed: %v", err)
	}
	if d.Year() != 2024 || d.Month() != time.June || d.Day() != 1 {
		t.Errorf("got %s, want 2024-06-01", d)
	}

	// Single-digit month and day are tolerated on read.
	if _, err := ParseDate("2024-6-1"); err != nil {
		t.Errorf("ParseDate rejected single-digit fields: %v", err)
	}

	if _, err := ParseDate("June 1st"); err == nil {
		t.Error("ParseDate accepted garbage")
	}
}

func TestDateSub(t *testing.T) {
	testCases := []struct {
		a, b string
		want int
	}{
		{"2024-02-15", "2024-01-15", 31},
		{"2024-01-15", "2024-01-15", 0},
		{"2024-01-10", "2024-01-15", -5},
		{"2025-01-01", "2024-01-01", 366}, // leap year
	}
	for _, tc := range testCases {
		if got := day(t, tc.a).Sub(day(t, tc.b)); got != tc.want {
			t.Errorf("%s.Sub(%s) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestDateAdd(t *testing.T) {
	if got := day(t, "2024-02-27").Add(3); !got.Equal(day(t, "2024-03-01")) {
		t.Errorf("Add(3) = %s, want 2024-03-01", got)
	}
}

func TestDateJSON(t *testing.T) {
	d := day(t, "2024-06-01")
	data, err := d.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON failed: %v", err)
	}
	if string(data) != `"2024-06-01"` {
		t.Errorf("MarshalJSON = %s", data)
	}
	var back Date
	if err := back.UnmarshalJSON(data); err != nil {
		t.Fatalf("UnmarshalJSON failed: %v", err)
	}
	if !back.Equal(d) {
		t.Errorf("round trip got %s, want %s", back, d)
	}
}
