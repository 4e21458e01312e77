package stockdash

import (
	"fmt"
	"sort"
)

// Holding is the live display view of one symbol's position, computed with the
// running weighted-average cost method. TotalCost is always Shares × AvgCost
// and UnrealisedPnl is always MarketValue − TotalCost.
type Holding struct {
	Shares        Quantity
	AvgCost       Money
	TotalCost     Money
	MarketValue   Money
	UnrealisedPnl Money
	RealisedPnl   Money
}

// ComputeHolding replays one symbol's transactions against a running
// weighted-average cost and values the result at currentPrice.
//
// A Buy recomputes the average; a Sell realises shares × (price − avgCost) and
// leaves the average unchanged (the average-cost method does not reprice on
// sale). A Sell exceeding the held quantity is clamped to what is available:
// records migrated from other brokers can miss the originating Buy (e.g.
// transfers in), and the dashboard tolerates the gap instead of failing.
//
// ComputeHolding is stateless: it starts from scratch on every call and never
// mutates its inputs.
func ComputeHolding(txs []Transaction, currentPrice Money) (Holding, error) {
	if currentPrice.IsNegative() {
		return Holding{}, fmt.Errorf("current price must not be negative, got %s", currentPrice)
	}
	for _, tx := range txs {
		if err := tx.Validate(); err != nil {
			return Holding{}, err
		}
	}

	var shares Quantity
	avgCost := USD(0)
	realised := USD(0)

	for _, tx := range sortedForReplay(txs) {
		switch tx.Type {
		case Buy:
			total := avgCost.Mul(shares).Add(tx.Amount())
			shares = shares.Add(tx.Shares)
			avgCost = total.Div(shares)
		case Sell:
			sold := tx.Shares.Min(shares)
			if sold.IsZero() {
				continue
			}
			realised = realised.Add(tx.Price.Sub(avgCost).Mul(sold))
			shares = shares.Sub(sold)
			if shares.IsZero() {
				avgCost = USD(0)
			}
		}
	}

	totalCost := avgCost.Mul(shares)
	marketValue := currentPrice.Mul(shares)
	return Holding{
		Shares:        shares,
		AvgCost:       avgCost,
		TotalCost:     totalCost,
		MarketValue:   marketValue,
		UnrealisedPnl: marketValue.Sub(totalCost),
		RealisedPnl:   realised,
	}, nil
}

// SymbolInput bundles everything ComputePortfolio needs for one symbol.
type SymbolInput struct {
	Transactions []Transaction
	CurrentPrice Money
	Name         string
	Sector       string
	Strategy     string
}

// HoldingKind distinguishes the synthetic dashboard rows from stock
// positions. Only stock rows take part in the day-change computation.
type HoldingKind string

const (
	StockRow  HoldingKind = "" // default
	OptionRow HoldingKind = "Option"
	CashRow   HoldingKind = "Cash"
)

// PortfolioHolding is a Holding enriched with symbol metadata and its weight
// in the portfolio's total market value.
type PortfolioHolding struct {
	Symbol       string
	Name         string
	Sector       string
	Strategy     string
	CurrentPrice Money
	Weight       Percent
	Kind         HoldingKind
	Holding
}

// PortfolioTotals sums market value, cost and P&L across all holdings.
type PortfolioTotals struct {
	MarketValue   Money
	TotalCost     Money
	UnrealisedPnl Money
	RealisedPnl   Money
}

// PortfolioResult is the portfolio-level aggregate of per-symbol holdings.
type PortfolioResult struct {
	Holdings []PortfolioHolding
	Totals   PortfolioTotals
}

// ComputePortfolio computes each symbol's holding, portfolio totals, and each
// holding's weight as a percentage of the total market value. Holdings are
// returned in symbol order for deterministic display.
func ComputePortfolio(inputs map[string]SymbolInput) (PortfolioResult, error) {
	result := PortfolioResult{
		Totals: PortfolioTotals{
			MarketValue:   USD(0),
			TotalCost:     USD(0),
			UnrealisedPnl: USD(0),
			RealisedPnl:   USD(0),
		},
	}

	symbols := make([]string, 0, len(inputs))
	for symbol := range inputs {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)

	for _, symbol := range symbols {
		in := inputs[symbol]
		h, err := ComputeHolding(in.Transactions, in.CurrentPrice)
		if err != nil {
			return PortfolioResult{}, fmt.Errorf("computing holding for %s: %w", symbol, err)
		}
		result.Holdings = append(result.Holdings, PortfolioHolding{
			Symbol:       symbol,
			Name:         in.Name,
			Sector:       in.Sector,
			Strategy:     in.Strategy,
			CurrentPrice: in.CurrentPrice,
			Holding:      h,
		})
		result.Totals.MarketValue = result.Totals.MarketValue.Add(h.MarketValue)
		result.Totals.TotalCost = result.Totals.TotalCost.Add(h.TotalCost)
		result.Totals.UnrealisedPnl = result.Totals.UnrealisedPnl.Add(h.UnrealisedPnl)
		result.Totals.RealisedPnl = result.Totals.RealisedPnl.Add(h.RealisedPnl)
	}

	for i := range result.Holdings {
		if result.Totals.MarketValue.IsPositive() {
			result.Holdings[i].Weight = result.Holdings[i].MarketValue.PercentOf(result.Totals.MarketValue)
		}
	}

	return result, nil
}
