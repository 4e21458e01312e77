package stockdash

import "testing"

// day is a test shorthand for parsing ISO dates.
func day(t *testing.T, s string) Date {
	t.Helper()
	d, err := ParseDate(s)
	if err != nil {
		t.Fatalf("ParseDate(%q) failed: %v", s, err)
	}
	return d
}

// checkMoney fails the test when got is not exactly want.
func checkMoney(t *testing.T, name string, got, want Money) {
	t.Helper()
	if !got.Equal(want) {
		t.Errorf("%s = %s, want %s", name, got, want)
	}
}

// checkQuantity fails the test when got is not exactly want.
func checkQuantity(t *testing.T, name string, got, want Quantity) {
	t.Helper()
	if !got.Equal(want) {
		t.Errorf("%s = %s, want %s", name, got, want)
	}
}
