package stockdash

// Deposit is a cash deposit into the account. Amounts must already be in the
// engine's working currency; the boundary applies the forex rate before
// handing records over (see Money.In).
type Deposit struct {
	Amount Money
	Date   Date
}

// Dividend is a cash dividend received for a symbol.
type Dividend struct {
	Symbol string
	Amount Money
	Date   Date
}

// DashboardInput is the complete snapshot the dashboard headline is computed
// from. ChangePct carries each symbol's day change from the live quotes.
type DashboardInput struct {
	Portfolio    PortfolioResult
	Deposits     []Deposit
	Dividends    []Dividend
	Transactions []Transaction
	Options      []OptionPosition
	ChangePct    map[string]Percent
}

// DashboardSummary is the headline row of the dashboard.
type DashboardSummary struct {
	CashBalance    Money
	TotalDeposited Money
	OptionsPremium Money
	DayChange      Money
	DayChangePct   Percent
}

// ComputeCashBalance reconstructs the account's cash position from the full
// event history: deposits and dividends add cash, Buys spend it, Sells return
// it, sold options credit their premium (debited again when bought back), and
// bought options debit theirs (credited back on close). Transaction amounts
// are taken as absolute values because migrated Sell rows carry inconsistent
// signs. The balance can legitimately go negative on margin.
func ComputeCashBalance(deposits []Deposit, dividends []Dividend, txs []Transaction, options []OptionPosition) Money {
	cash := USD(0)
	for _, d := range deposits {
		cash = cash.Add(d.Amount)
	}
	for _, tx := range txs {
		if tx.Type == Buy {
			cash = cash.Sub(tx.Amount().Abs())
		} else {
			cash = cash.Add(tx.Amount().Abs())
		}
	}
	for _, d := range dividends {
		cash = cash.Add(d.Amount)
	}
	for i := range options {
		o := &options[i]
		open := o.GrossPremium()
		var close Money
		if o.ClosePremium != nil {
			close = o.ClosePremium.Mul(o.Qty).Mul(contracts)
		} else {
			close = USD(0)
		}
		if IsLongStrategy(o.Strategy) {
			cash = cash.Sub(open).Add(close)
		} else {
			cash = cash.Add(open).Sub(close)
		}
	}
	return cash
}

// ComputeDashboardPortfolio extends the stock portfolio into the holdings
// table the dashboard shows: open bought options appear as positions at cost
// basis (there is no free options pricing, so market value equals cost), a
// non-zero cash balance appears as a CASH row, and every weight is
// recomputed over the combined market value (positive cash included).
//
// Option cost flows into the market-value and cost totals; the cash row does
// not, it only widens the weight denominator.
func ComputeDashboardPortfolio(stocks PortfolioResult, options []OptionPosition, cash Money) PortfolioResult {
	result := PortfolioResult{
		Holdings: make([]PortfolioHolding, len(stocks.Holdings)),
		Totals:   stocks.Totals,
	}
	copy(result.Holdings, stocks.Holdings)

	stockBySymbol := make(map[string]*PortfolioHolding, len(stocks.Holdings))
	for i := range stocks.Holdings {
		stockBySymbol[stocks.Holdings[i].Symbol] = &stocks.Holdings[i]
	}

	for i := range options {
		o := &options[i]
		if o.Status != StatusOpen || !IsLongStrategy(o.Strategy) {
			continue
		}
		costBasis := o.GrossPremium()
		name := o.Ticker
		currentPrice := USD(0)
		if stock, ok := stockBySymbol[o.Ticker]; ok {
			if stock.Name != "" {
				name = stock.Name
			}
			currentPrice = stock.CurrentPrice
		}
		result.Holdings = append(result.Holdings, PortfolioHolding{
			Symbol:       o.Ticker,
			Name:         name + " (" + string(o.Strategy) + ")",
			Strategy:     string(o.Strategy),
			CurrentPrice: currentPrice,
			Kind:         OptionRow,
			Holding: Holding{
				Shares:        o.Qty,
				AvgCost:       o.Premium.Mul(contracts),
				TotalCost:     costBasis,
				MarketValue:   costBasis,
				UnrealisedPnl: USD(0),
				RealisedPnl:   USD(0),
			},
		})
		result.Totals.MarketValue = result.Totals.MarketValue.Add(costBasis)
		result.Totals.TotalCost = result.Totals.TotalCost.Add(costBasis)
	}

	if !cash.IsZero() {
		result.Holdings = append(result.Holdings, PortfolioHolding{
			Symbol:       "CASH",
			Name:         "Cash",
			CurrentPrice: cash,
			Kind:         CashRow,
			Holding: Holding{
				Shares:        Q(1),
				AvgCost:       cash,
				TotalCost:     cash,
				MarketValue:   cash,
				UnrealisedPnl: USD(0),
				RealisedPnl:   USD(0),
			},
		})
	}

	denominator := result.Totals.MarketValue
	if cash.IsPositive() {
		denominator = denominator.Add(cash)
	}
	for i := range result.Holdings {
		result.Holdings[i].Weight = 0
		if denominator.IsPositive() {
			result.Holdings[i].Weight = result.Holdings[i].MarketValue.PercentOf(denominator)
		}
	}

	return result
}

// ComputeDashboardSummary computes the headline figures: cash balance, total
// deposited, options P&L (realised profit for closed short positions, full
// credit for open ones), and the portfolio's day change. The day change
// percentage is taken against market value including positive cash, which is
// what the holdings table shows as the denominator for weights.
func ComputeDashboardSummary(in DashboardInput) DashboardSummary {
	s := DashboardSummary{
		CashBalance:    ComputeCashBalance(in.Deposits, in.Dividends, in.Transactions, in.Options),
		TotalDeposited: USD(0),
		OptionsPremium: USD(0),
		DayChange:      USD(0),
	}

	for _, d := range in.Deposits {
		s.TotalDeposited = s.TotalDeposited.Add(d.Amount)
	}

	for i := range in.Options {
		o := &in.Options[i]
		if !IsShortStrategy(o.Strategy) {
			continue
		}
		if profit, ok := o.Profit(); ok {
			s.OptionsPremium = s.OptionsPremium.Add(profit)
		} else {
			s.OptionsPremium = s.OptionsPremium.Add(o.GrossPremium())
		}
	}

	for _, h := range in.Portfolio.Holdings {
		// Option and cash rows have no quote of their own.
		if h.Kind != StockRow {
			continue
		}
		pct, ok := in.ChangePct[h.Symbol]
		if !ok {
			continue
		}
		s.DayChange = s.DayChange.Add(h.MarketValue.Mul(Q(float64(pct) / 100)))
	}

	denominator := in.Portfolio.Totals.MarketValue
	if s.CashBalance.IsPositive() {
		denominator = denominator.Add(s.CashBalance)
	}
	if denominator.IsPositive() {
		s.DayChangePct = s.DayChange.PercentOf(denominator)
	}
	return s
}
