package stockdash

import (
	"fmt"
	"time"

	"stockdash/nocodb"
)

// This file is the single validation step between the record store's raw rows
// and the engine's strict types. Every numeric field goes through the decimal
// constructors here; nothing downstream touches float64 again.

// ConvertTransaction validates one raw transaction row. The stored amount
// column is ignored: migrated rows carry inconsistent signs, and the engine
// derives the amount from shares × price.
func ConvertTransaction(rec nocodb.TransactionRecord) (Transaction, error) {
	txType, err := ParseTxType(rec.Type)
	if err != nil {
		return Transaction{}, fmt.Errorf("transaction %d (%s): %w", rec.Id, rec.Symbol, err)
	}
	date, err := ParseDate(rec.Date)
	if err != nil {
		return Transaction{}, fmt.Errorf("transaction %d (%s): %w", rec.Id, rec.Symbol, err)
	}
	tx := Transaction{
		Symbol: rec.Symbol,
		Type:   txType,
		Shares: Q(rec.Shares),
		Price:  USD(rec.Price),
		Date:   date,
	}
	if err := tx.Validate(); err != nil {
		return Transaction{}, fmt.Errorf("transaction %d: %w", rec.Id, err)
	}
	return tx, nil
}

// ConvertTransactions validates a batch and groups it by symbol, the shape
// the cost-basis engine consumes.
func ConvertTransactions(recs []nocodb.TransactionRecord) (map[string][]Transaction, error) {
	bySymbol := make(map[string][]Transaction)
	for _, rec := range recs {
		tx, err := ConvertTransaction(rec)
		if err != nil {
			return nil, err
		}
		bySymbol[tx.Symbol] = append(bySymbol[tx.Symbol], tx)
	}
	return bySymbol, nil
}

// ConvertOption validates one raw option row.
func ConvertOption(rec nocodb.OptionRecord) (OptionPosition, error) {
	strategy, err := ParseStrategyType(rec.StrategyType)
	if err != nil {
		return OptionPosition{}, fmt.Errorf("option %d (%s): %w", rec.Id, rec.Ticker, err)
	}
	opened, err := ParseDate(rec.Opened)
	if err != nil {
		return OptionPosition{}, fmt.Errorf("option %d (%s): opened: %w", rec.Id, rec.Ticker, err)
	}
	expiration, err := ParseDate(rec.Expiration)
	if err != nil {
		return OptionPosition{}, fmt.Errorf("option %d (%s): expiration: %w", rec.Id, rec.Ticker, err)
	}

	o := OptionPosition{
		Ticker:     rec.Ticker,
		Strategy:   strategy,
		CallPut:    CallPut(rec.CallPut),
		Qty:        Q(rec.Qty),
		Strike:     USD(rec.Strike),
		Premium:    USD(rec.Premium),
		Opened:     opened,
		Expiration: expiration,
		Status:     OptionStatus(rec.Status),
		Delta:      rec.Delta,
		IVPct:      rec.IVPct,
	}
	if rec.Moneyness != nil {
		o.Moneyness = *rec.Moneyness
	}
	if rec.Platform != nil {
		o.Platform = *rec.Platform
	}
	if rec.CloseDate != nil {
		d, err := ParseDate(*rec.CloseDate)
		if err != nil {
			return OptionPosition{}, fmt.Errorf("option %d (%s): close date: %w", rec.Id, rec.Ticker, err)
		}
		o.CloseDate = &d
	}
	if rec.ClosePremium != nil {
		m := USD(*rec.ClosePremium)
		o.ClosePremium = &m
	}
	if rec.Collateral != nil {
		m := USD(*rec.Collateral)
		o.Collateral = &m
	}
	if rec.Commission != nil {
		m := USD(*rec.Commission)
		o.Commission = &m
	}
	if rec.OuterStrike != nil {
		m := USD(*rec.OuterStrike)
		o.OuterStrike = &m
	}

	if err := o.Validate(); err != nil {
		return OptionPosition{}, fmt.Errorf("option %d: %w", rec.Id, err)
	}
	return o, nil
}

// ConvertOptions validates a batch of raw option rows.
func ConvertOptions(recs []nocodb.OptionRecord) ([]OptionPosition, error) {
	options := make([]OptionPosition, 0, len(recs))
	for _, rec := range recs {
		o, err := ConvertOption(rec)
		if err != nil {
			return nil, err
		}
		options = append(options, o)
	}
	return options, nil
}

// ConvertDeposit validates one raw deposit row. Deposits are stored in the
// account's funding currency (GBP) keyed by month; usdRate is the USD per GBP
// rate applied so the engine sees its working currency only.
func ConvertDeposit(rec nocodb.DepositRecord, usdRate Quantity) (Deposit, error) {
	month, err := parseMonth(rec.Month)
	if err != nil {
		return Deposit{}, fmt.Errorf("deposit %d: %w", rec.Id, err)
	}
	gbp := M(rec.Amount, "GBP")
	return Deposit{Amount: gbp.In("USD", usdRate), Date: month}, nil
}

// ConvertDividend validates one raw dividend row.
func ConvertDividend(rec nocodb.DividendRecord) (Dividend, error) {
	date, err := ParseDate(rec.Date)
	if err != nil {
		return Dividend{}, fmt.Errorf("dividend %d (%s): %w", rec.Id, rec.Symbol, err)
	}
	return Dividend{Symbol: rec.Symbol, Amount: USD(rec.Amount), Date: date}, nil
}

// ConvertPricePoint validates one stored daily close.
func ConvertPricePoint(rec nocodb.PriceHistoryRecord) (PricePoint, error) {
	date, err := ParseDate(rec.Date)
	if err != nil {
		return PricePoint{}, fmt.Errorf("price history %d (%s): %w", rec.Id, rec.Symbol, err)
	}
	if rec.ClosePrice < 0 {
		return PricePoint{}, fmt.Errorf("price history %d (%s): close must not be negative, got %v", rec.Id, rec.Symbol, rec.ClosePrice)
	}
	return PricePoint{Date: date, Close: USD(rec.ClosePrice)}, nil
}

// parseMonth reads a "YYYY-MM" month key as the first day of that month.
func parseMonth(s string) (Date, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid month %q, want format 2006-01: %w", s, err)
	}
	return NewDate(t.Year(), t.Month(), 1), nil
}
