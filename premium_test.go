package stockdash

import (
	"testing"
	"time"
)

func TestBuildPremiumByMonth(t *testing.T) {
	jan := wheelPut(t) // premium 3.50, collateral 18000, opened 2024-01-15

	alsoJan := wheelPut(t)
	alsoJan.Premium = USD(2.00)
	alsoJan.Collateral = nil // derived: 180 × 1 × 100

	jun := wheelPut(t)
	jun.Opened = day(t, "2024-06-10")
	jun.Premium = USD(1.00)

	otherYear := wheelPut(t)
	otherYear.Opened = day(t, "2023-01-15")

	long := leapsCall(t) // long strategies never count

	months := BuildPremiumByMonth([]OptionPosition{jan, alsoJan, jun, otherYear, long}, 2024)

	if len(months) != 12 {
		t.Fatalf("got %d months, want 12", len(months))
	}
	for i, m := range months {
		if m.Month != time.Month(i+1) {
			t.Fatalf("month %d out of calendar order: %s", i, m.Month)
		}
	}

	checkMoney(t, "January premium", months[0].Premium, USD(550))       // (3.50 + 2.00) × 100
	checkMoney(t, "January collateral", months[0].Collateral, USD(36000)) // 18000 + 18000
	checkMoney(t, "June premium", months[5].Premium, USD(100))
	checkMoney(t, "February premium", months[1].Premium, USD(0)) // zero-filled
	checkMoney(t, "February collateral", months[1].Collateral, USD(0))
}
