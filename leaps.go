package stockdash

// LeapsDisplayRow enriches one long-strategy option with decay analytics.
// Every metric is independently nullable: a missing live quote removes the
// price-derived figures but never blocks the rest.
type LeapsDisplayRow struct {
	Option            OptionPosition
	CurrentPrice      *Money
	CostBasis         Money
	CurrentPnl        *Money
	IntrinsicValue    *Money
	ExtrinsicValue    *Money
	DaysToExpiry      int
	ValueLostPerMonth *Money
	PremiumFeePct     *Percent
	Leverage          *Quantity
}

// ComputeLeapsDisplay computes the decay analytics of a long-strategy option
// against an optional live underlying price.
//
//   - CostBasis = premium × qty × 100 + commission × qty.
//   - IntrinsicValue = max(0, price − strike) × qty × 100 for a call, the
//     mirrored difference for a put; needs the live price.
//   - ExtrinsicValue = max(0, CostBasis − IntrinsicValue).
//   - CurrentPnl is the closed profit once the position closed; while open it
//     is IntrinsicValue − CostBasis, a lower bound since no live option quote
//     is available.
//   - DaysToExpiry counts from asOf (or the close date once closed) to
//     expiration and goes negative for an expired-but-unprocessed position;
//     callers display that as past-due, not clamped.
//   - ValueLostPerMonth = ExtrinsicValue / (max(DaysToExpiry, 1) / 30).
//   - PremiumFeePct = commission × qty / CostBasis × 100.
//   - Leverage = price / premium, the share exposure bought per premium unit.
func ComputeLeapsDisplay(o OptionPosition, currentPrice *Money, asOf Date) LeapsDisplayRow {
	row := LeapsDisplayRow{
		Option:       o,
		CurrentPrice: currentPrice,
		CostBasis:    o.GrossPremium().Add(o.commissionCost()),
	}

	if currentPrice != nil {
		var intrinsic Money
		if o.CallPut == Call {
			intrinsic = currentPrice.Sub(o.Strike)
		} else {
			intrinsic = o.Strike.Sub(*currentPrice)
		}
		if intrinsic.IsNegative() {
			intrinsic = USD(0)
		}
		intrinsic = intrinsic.Mul(o.Qty).Mul(contracts)
		row.IntrinsicValue = &intrinsic

		extrinsic := row.CostBasis.Sub(intrinsic)
		if extrinsic.IsNegative() {
			extrinsic = USD(0)
		}
		row.ExtrinsicValue = &extrinsic
	}

	if profit, ok := o.Profit(); ok {
		row.CurrentPnl = &profit
	} else if row.IntrinsicValue != nil {
		pnl := row.IntrinsicValue.Sub(row.CostBasis)
		row.CurrentPnl = &pnl
	}

	from := asOf
	if o.CloseDate != nil {
		from = *o.CloseDate
	}
	row.DaysToExpiry = o.Expiration.Sub(from)

	if row.ExtrinsicValue != nil {
		days := row.DaysToExpiry
		if days < 1 {
			days = 1
		}
		lost := row.ExtrinsicValue.Mul(Q(30)).Div(Q(days))
		row.ValueLostPerMonth = &lost
	}

	if o.Commission != nil && row.CostBasis.IsPositive() {
		pct := o.commissionCost().PercentOf(row.CostBasis)
		row.PremiumFeePct = &pct
	}

	if currentPrice != nil && o.Premium.IsPositive() {
		leverage := currentPrice.DivPrice(o.Premium)
		row.Leverage = &leverage
	}

	return row
}

// ComputeLeapsRows computes the decay table for every long-strategy option,
// looking up live prices by ticker. Input order is preserved.
func ComputeLeapsRows(options []OptionPosition, prices map[string]Money, asOf Date) []LeapsDisplayRow {
	var rows []LeapsDisplayRow
	for _, o := range options {
		if !IsLongStrategy(o.Strategy) {
			continue
		}
		var price *Money
		if p, ok := prices[o.Ticker]; ok {
			price = &p
		}
		rows = append(rows, ComputeLeapsDisplay(o, price, asOf))
	}
	return rows
}
