package stockdash

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"stockdash/nocodb"
)

// This file contains the sync job that refreshes the symbols table with
// latest prices.

// SyncPrices fetches a live quote for every tracked symbol and writes the
// result back to the record store. Symbols the provider does not answer for
// are left untouched and reported in the joined error; a partial sync is
// better than none.
func (s *Store) SyncPrices(ctx context.Context) error {
	apiKey := fmpApiKey()
	if apiKey == "" {
		return errors.New("FMP API key is not set. Use -fmp-api-key flag or FMP_API_KEY environment variable")
	}

	records, err := nocodb.GetAll[nocodb.SymbolRecord](ctx, s.DB, nocodb.TableSymbols, nocodb.ListParams{})
	if err != nil {
		return fmt.Errorf("fetching symbols: %w", err)
	}
	if len(records) == 0 {
		return nil
	}

	symbols := make([]string, 0, len(records))
	idBySymbol := make(map[string]int, len(records))
	for _, rec := range records {
		symbols = append(symbols, rec.Symbol)
		idBySymbol[rec.Symbol] = rec.Id
	}

	quotes, err := fmpBatchQuotes(apiKey, symbols)
	if err != nil {
		return fmt.Errorf("fetching quotes: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	patches := make([]nocodb.PricePatch, 0, len(quotes))
	quoted := make(map[string]bool, len(quotes))
	for _, q := range quotes {
		id, ok := idBySymbol[q.Symbol]
		if !ok {
			log.Printf("quote for untracked symbol %q ignored", q.Symbol)
			continue
		}
		quoted[q.Symbol] = true
		q := q
		patches = append(patches, nocodb.PricePatch{
			Id:              id,
			CurrentPrice:    &q.Price,
			PreviousClose:   &q.PreviousClose,
			ChangePct:       &q.ChangesPct,
			DayHigh:         &q.DayHigh,
			DayLow:          &q.DayLow,
			YearHigh:        &q.YearHigh,
			YearLow:         &q.YearLow,
			MarketCap:       &q.MarketCap,
			PERatio:         &q.PE,
			EPS:             &q.EPS,
			LastPriceUpdate: &now,
		})
	}

	if err := nocodb.Patch(ctx, s.DB, nocodb.TableSymbols, patches); err != nil {
		return fmt.Errorf("writing prices back: %w", err)
	}
	log.Printf("synced %d/%d symbol prices", len(patches), len(records))

	today := Today().String()
	history := make([]nocodb.PriceHistoryInsert, 0, len(quotes))
	for _, q := range quotes {
		if !quoted[q.Symbol] {
			continue
		}
		history = append(history, nocodb.PriceHistoryInsert{
			Symbol:     q.Symbol,
			Date:       today,
			ClosePrice: q.Price,
		})
	}
	if err := nocodb.Create(ctx, s.DB, nocodb.TablePriceHistory, history); err != nil {
		return fmt.Errorf("appending price history: %w", err)
	}

	var errs error
	if err := s.syncRate(ctx); err != nil {
		errs = errors.Join(errs, err)
	}
	for _, symbol := range symbols {
		if !quoted[symbol] {
			errs = errors.Join(errs, fmt.Errorf("no quote returned for %q", symbol))
		}
	}
	return errs
}

// syncRate refreshes the stored USD per GBP exchange rate setting, creating
// the row on first sync.
func (s *Store) syncRate(ctx context.Context) error {
	rate, err := ForexUSDPerGBP()
	if err != nil {
		return fmt.Errorf("fetching exchange rate: %w", err)
	}

	settings, err := nocodb.GetAll[nocodb.SettingRecord](ctx, s.DB, nocodb.TableSettings, nocodb.ListParams{})
	if err != nil {
		return fmt.Errorf("fetching settings: %w", err)
	}
	for _, rec := range settings {
		if rec.Key != nocodb.SettingUSDGBPRate {
			continue
		}
		patch := []nocodb.SettingPatch{{Id: rec.Id, Value: rate.String()}}
		return nocodb.Patch(ctx, s.DB, nocodb.TableSettings, patch)
	}
	insert := []nocodb.SettingInsert{{Key: nocodb.SettingUSDGBPRate, Value: rate.String()}}
	return nocodb.Create(ctx, s.DB, nocodb.TableSettings, insert)
}
