package stockdash

import "time"

// MonthlyPremium is one month's short-strategy activity for the premium
// chart: total premium collected and total collateral committed, keyed by the
// month the positions opened.
type MonthlyPremium struct {
	Month      time.Month
	Premium    Money
	Collateral Money
}

// BuildPremiumByMonth buckets short-strategy premium and collateral into the
// twelve months of the given calendar year, keyed by opened date. The result
// always has twelve entries in calendar order, zero-filled for months with no
// activity. Long strategies and other years are ignored.
func BuildPremiumByMonth(options []OptionPosition, year int) []MonthlyPremium {
	months := make([]MonthlyPremium, 12)
	for i := range months {
		months[i] = MonthlyPremium{
			Month:      time.Month(i + 1),
			Premium:    USD(0),
			Collateral: USD(0),
		}
	}

	for i := range options {
		o := &options[i]
		if !IsShortStrategy(o.Strategy) || o.Opened.Year() != year {
			continue
		}
		m := &months[int(o.Opened.Month())-1]
		m.Premium = m.Premium.Add(o.GrossPremium())
		if collateral, ok := o.CollateralValue(); ok {
			m.Collateral = m.Collateral.Add(collateral)
		}
	}
	return months
}
