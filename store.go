package stockdash

import (
	"context"
	"fmt"

	"stockdash/nocodb"
)

// Store wraps the record-store client and produces validated engine
// snapshots. The engine itself never performs I/O; a Snapshot is the complete
// set of inputs gathered up front for one round of computation.
type Store struct {
	DB *nocodb.Client
}

// Snapshot is everything one dashboard render needs, already validated and
// converted into engine types.
type Snapshot struct {
	Symbols              []nocodb.SymbolRecord
	TransactionsBySymbol map[string][]Transaction
	Options              []OptionPosition
	Deposits             []Deposit
	Dividends            []Dividend
	Settings             map[string]string
	USDPerGBP            Quantity
}

// FetchSnapshot pulls every table and converts the rows. The forex rate is
// fetched once and applied to the GBP-denominated deposits so everything
// downstream is in the engine's working currency.
func (s *Store) FetchSnapshot(ctx context.Context) (*Snapshot, error) {
	symbols, err := nocodb.GetAll[nocodb.SymbolRecord](ctx, s.DB, nocodb.TableSymbols, nocodb.ListParams{})
	if err != nil {
		return nil, fmt.Errorf("fetching symbols: %w", err)
	}
	txRecords, err := nocodb.GetAll[nocodb.TransactionRecord](ctx, s.DB, nocodb.TableTransactions, nocodb.ListParams{Sort: "date"})
	if err != nil {
		return nil, fmt.Errorf("fetching transactions: %w", err)
	}
	optRecords, err := nocodb.GetAll[nocodb.OptionRecord](ctx, s.DB, nocodb.TableOptions, nocodb.ListParams{Sort: "opened"})
	if err != nil {
		return nil, fmt.Errorf("fetching options: %w", err)
	}
	depRecords, err := nocodb.GetAll[nocodb.DepositRecord](ctx, s.DB, nocodb.TableDeposits, nocodb.ListParams{})
	if err != nil {
		return nil, fmt.Errorf("fetching deposits: %w", err)
	}
	divRecords, err := nocodb.GetAll[nocodb.DividendRecord](ctx, s.DB, nocodb.TableDividends, nocodb.ListParams{})
	if err != nil {
		return nil, fmt.Errorf("fetching dividends: %w", err)
	}
	setRecords, err := nocodb.GetAll[nocodb.SettingRecord](ctx, s.DB, nocodb.TableSettings, nocodb.ListParams{})
	if err != nil {
		return nil, fmt.Errorf("fetching settings: %w", err)
	}

	snap := &Snapshot{
		Symbols:  symbols,
		Settings: make(map[string]string, len(setRecords)),
	}
	for _, rec := range setRecords {
		snap.Settings[rec.Key] = rec.Value
	}

	rate, err := ForexUSDPerGBP()
	if err != nil {
		// Fall back to the rate stored by the last sync.
		stored, ok := snap.Settings[nocodb.SettingUSDGBPRate]
		if !ok {
			return nil, err
		}
		rate, err = ParseQuantity(stored)
		if err != nil {
			return nil, fmt.Errorf("stored %s setting is invalid: %w", nocodb.SettingUSDGBPRate, err)
		}
	}
	snap.USDPerGBP = rate

	snap.TransactionsBySymbol, err = ConvertTransactions(txRecords)
	if err != nil {
		return nil, err
	}
	snap.Options, err = ConvertOptions(optRecords)
	if err != nil {
		return nil, err
	}
	for _, rec := range depRecords {
		d, err := ConvertDeposit(rec, rate)
		if err != nil {
			return nil, err
		}
		snap.Deposits = append(snap.Deposits, d)
	}
	for _, rec := range divRecords {
		d, err := ConvertDividend(rec)
		if err != nil {
			return nil, err
		}
		snap.Dividends = append(snap.Dividends, d)
	}
	return snap, nil
}

// PricePoint is one stored daily close for a symbol.
type PricePoint struct {
	Date  Date
	Close Money
}

// FetchPriceHistory returns the daily closes stored by the sync job for one
// symbol, oldest first. Price history is not part of the snapshot: only the
// per-symbol page reads it, so it is fetched on demand.
func (s *Store) FetchPriceHistory(ctx context.Context, symbol string) ([]PricePoint, error) {
	records, err := nocodb.GetAll[nocodb.PriceHistoryRecord](ctx, s.DB, nocodb.TablePriceHistory, nocodb.ListParams{
		Where: "(symbol,eq," + symbol + ")",
		Sort:  "date",
	})
	if err != nil {
		return nil, fmt.Errorf("fetching price history for %s: %w", symbol, err)
	}
	points := make([]PricePoint, 0, len(records))
	for _, rec := range records {
		p, err := ConvertPricePoint(rec)
		if err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, nil
}

// Prices returns the last synced price per symbol. Symbols never synced are
// absent, and the analytics degrade to null-valued fields for them.
func (snap *Snapshot) Prices() map[string]Money {
	prices := make(map[string]Money)
	for _, rec := range snap.Symbols {
		if rec.CurrentPrice != nil {
			prices[rec.Symbol] = USD(*rec.CurrentPrice)
		}
	}
	return prices
}

// ChangePct returns the day change percentage per symbol where known.
func (snap *Snapshot) ChangePct() map[string]Percent {
	change := make(map[string]Percent)
	for _, rec := range snap.Symbols {
		if rec.ChangePct != nil {
			change[rec.Symbol] = Percent(*rec.ChangePct)
		}
	}
	return change
}

// Portfolio assembles the symbol inputs and computes the holdings table.
// Symbols without a transaction history are skipped; a missing price values
// the position at zero market value rather than failing the whole table.
func (snap *Snapshot) Portfolio() (PortfolioResult, error) {
	prices := snap.Prices()
	// A symbol never synced is valued at zero, in the working currency.
	price := func(symbol string) Money {
		if p, ok := prices[symbol]; ok {
			return p
		}
		return USD(0)
	}
	inputs := make(map[string]SymbolInput, len(snap.Symbols))
	for _, rec := range snap.Symbols {
		txs := snap.TransactionsBySymbol[rec.Symbol]
		if len(txs) == 0 {
			continue
		}
		in := SymbolInput{
			Transactions: txs,
			CurrentPrice: price(rec.Symbol),
			Name:         rec.Name,
		}
		if rec.Sector != nil {
			in.Sector = *rec.Sector
		}
		if rec.Strategy != nil {
			in.Strategy = *rec.Strategy
		}
		inputs[rec.Symbol] = in
	}
	// Transactions for symbols missing from the symbols table still count.
	for symbol, txs := range snap.TransactionsBySymbol {
		if _, ok := inputs[symbol]; !ok {
			inputs[symbol] = SymbolInput{Transactions: txs, CurrentPrice: price(symbol)}
		}
	}
	return ComputePortfolio(inputs)
}

// DashboardPortfolio is the holdings table as the dashboard shows it: stock
// positions plus open bought options at cost and the cash balance, weights
// over the combined value.
func (snap *Snapshot) DashboardPortfolio() (PortfolioResult, error) {
	stocks, err := snap.Portfolio()
	if err != nil {
		return PortfolioResult{}, err
	}
	cash := ComputeCashBalance(snap.Deposits, snap.Dividends, snap.allTransactions(), snap.Options)
	return ComputeDashboardPortfolio(stocks, snap.Options, cash), nil
}

func (snap *Snapshot) allTransactions() []Transaction {
	var txs []Transaction
	for _, symbolTxs := range snap.TransactionsBySymbol {
		txs = append(txs, symbolTxs...)
	}
	return txs
}

// Dashboard computes the headline summary for the snapshot. The summary's
// day-change denominator is the dashboard portfolio's market value, which
// includes open bought options at cost.
func (snap *Snapshot) Dashboard() (DashboardSummary, error) {
	portfolio, err := snap.DashboardPortfolio()
	if err != nil {
		return DashboardSummary{}, err
	}
	return ComputeDashboardSummary(DashboardInput{
		Portfolio:    portfolio,
		Deposits:     snap.Deposits,
		Dividends:    snap.Dividends,
		Transactions: snap.allTransactions(),
		Options:      snap.Options,
		ChangePct:    snap.ChangePct(),
	}), nil
}
