package stockdash

// Derived performance figures for option positions. These replace the
// pre-calculated store columns (profit, days_held, return_pct): everything is
// recomputed from the raw fields on every call so a corrected record is enough
// to fix the analytics.

// closePremium resolves the effective closing premium. Expired and Assigned
// positions without a recorded close premium closed worthless (or were
// exercised), so they resolve to zero; any other position without one has not
// closed and yields no value.
func (o *OptionPosition) closePremium() (Money, bool) {
	if o.ClosePremium != nil {
		return *o.ClosePremium, true
	}
	if o.Status == StatusExpired || o.Status == StatusAssigned {
		return USD(0), true
	}
	return Money{}, false
}

// Profit returns the realised profit of a closed position, net of commission.
//
// Short side: (premium − close_premium) × qty × 100 − commission × qty.
// Long side:  (close_premium − premium) × qty × 100 − commission × qty.
//
// The second return is false while the position is open (no close premium):
// callers must render that as "not applicable", never as zero.
func (o *OptionPosition) Profit() (Money, bool) {
	close, ok := o.closePremium()
	if !ok {
		return Money{}, false
	}
	var gross Money
	if IsLongStrategy(o.Strategy) {
		gross = close.Sub(o.Premium)
	} else {
		gross = o.Premium.Sub(close)
	}
	return gross.Mul(o.Qty).Mul(contracts).Sub(o.commissionCost()), true
}

// CollateralValue returns the capital backing a short position: the recorded
// collateral when the store has one, otherwise derived from the strikes.
// Spreads (outer strike present) risk |strike − outer| × qty × 100;
// cash-secured positions risk the full strike × qty × 100. Long positions
// carry no collateral.
func (o *OptionPosition) CollateralValue() (Money, bool) {
	if !IsShortStrategy(o.Strategy) {
		return Money{}, false
	}
	if o.Collateral != nil {
		return *o.Collateral, true
	}
	if o.OuterStrike != nil {
		return o.Strike.Sub(*o.OuterStrike).Abs().Mul(o.Qty).Mul(contracts), true
	}
	return o.Strike.Mul(o.Qty).Mul(contracts), true
}

// ReturnPct returns profit as a percentage of the position's capital basis:
// collateral for short positions, premium paid (× qty × 100) for long ones.
// The figure is a plain yield for the whole holding period, deliberately not
// annualised: short-dated positions produced absurd triple-digit annualised
// numbers that made the table unreadable.
func (o *OptionPosition) ReturnPct() (Percent, bool) {
	profit, ok := o.Profit()
	if !ok {
		return 0, false
	}
	var basis Money
	if IsShortStrategy(o.Strategy) {
		basis, ok = o.CollateralValue()
		if !ok {
			return 0, false
		}
	} else {
		basis = o.GrossPremium()
	}
	if !basis.IsPositive() {
		return 0, false
	}
	return profit.PercentOf(basis), true
}

// DaysHeld returns the whole days the position was (or has been) held: opened
// to close date, or opened to asOf while still open. Same-day open and close
// is 0; the result is never negative.
func (o *OptionPosition) DaysHeld(asOf Date) int {
	end := asOf
	if o.CloseDate != nil {
		end = *o.CloseDate
	}
	days := end.Sub(o.Opened)
	if days < 0 {
		return 0
	}
	return days
}

// OpenLongPnl marks an open bought option to market using intrinsic value
// only: (intrinsic − premium) × qty × 100, where intrinsic is
// max(0, price − strike) for a call and max(0, strike − price) for a put.
// It understates true P&L by the remaining extrinsic value, which is the
// conservative side to err on for a dashboard headline.
func (o *OptionPosition) OpenLongPnl(currentPrice Money) Money {
	var intrinsic Money
	if o.CallPut == Call {
		intrinsic = currentPrice.Sub(o.Strike)
	} else {
		intrinsic = o.Strike.Sub(currentPrice)
	}
	if intrinsic.IsNegative() {
		intrinsic = USD(0)
	}
	return intrinsic.Sub(o.Premium).Mul(o.Qty).Mul(contracts)
}

// OptionsStats aggregates headline figures across every option position.
type OptionsStats struct {
	TotalPnl        Money
	ShortPnl        Money
	LongPnl         Money
	TotalCommission Money
	WinRate         Percent
	ClosedCount     int
	AvgDaysHeld     float64
}

// ComputeOptionsStats computes the options dashboard headline.
//
// ShortPnl counts realised profit for closed short positions and the full
// credit received for still-open ones (the premium is banked up front).
// LongPnl counts realised profit for closed long positions, skips Assigned
// ones (their outcome lands in the stock ledger), and marks open ones to
// intrinsic value when prices has the underlying. Positions already carry
// commission inside Profit, so TotalPnl is the plain sum; TotalCommission is
// reported separately as an informational cost figure.
//
// WinRate is profitable closed positions over all closed positions, and
// AvgDaysHeld averages the holding period of closed positions with a close
// date; both are zero when nothing has closed.
func ComputeOptionsStats(options []OptionPosition, prices map[string]Money, asOf Date) OptionsStats {
	stats := OptionsStats{
		TotalPnl:        USD(0),
		ShortPnl:        USD(0),
		LongPnl:         USD(0),
		TotalCommission: USD(0),
	}

	wins, closedHeld, closedWithDate := 0, 0, 0
	for i := range options {
		o := &options[i]

		stats.TotalCommission = stats.TotalCommission.Add(o.commissionCost())

		profit, closed := o.Profit()
		switch {
		case IsShortStrategy(o.Strategy):
			if closed {
				stats.ShortPnl = stats.ShortPnl.Add(profit)
			} else {
				stats.ShortPnl = stats.ShortPnl.Add(o.GrossPremium())
			}
		case IsLongStrategy(o.Strategy) && o.Status != StatusAssigned:
			if closed {
				stats.LongPnl = stats.LongPnl.Add(profit)
			} else if price, ok := prices[o.Ticker]; ok {
				stats.LongPnl = stats.LongPnl.Add(o.OpenLongPnl(price))
			}
		}

		if o.Status.IsTerminal() {
			stats.ClosedCount++
			if closed && profit.IsPositive() {
				wins++
			}
			if o.CloseDate != nil {
				closedHeld += o.DaysHeld(asOf)
				closedWithDate++
			}
		}
	}

	stats.TotalPnl = stats.ShortPnl.Add(stats.LongPnl)
	if stats.ClosedCount > 0 {
		stats.WinRate = Percent(float64(wins) / float64(stats.ClosedCount) * 100)
	}
	if closedWithDate > 0 {
		stats.AvgDaysHeld = float64(closedHeld) / float64(closedWithDate)
	}
	return stats
}
