package stockdash

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

// This file contains functions to access the Financial Modeling Prep API,
// the primary quote and forex provider.

const fmp_api_key = "FMP_API_KEY"

var fmpApiFlag = flag.String("fmp-api-key", "", "FMP API key to use for fetching quotes from financialmodelingprep.com.\n If missing it will read for the environment variable \""+fmp_api_key+"\". You can get one at https://site.financialmodelingprep.com/")

func fmpApiKey() string {
	// If the flag is not set, we try to read it from the environment variable.
	if *fmpApiFlag == "" {
		*fmpApiFlag = os.Getenv(fmp_api_key)
	}
	return *fmpApiFlag
}

// fmpBatchSize caps symbols per quote request to keep URLs short.
const fmpBatchSize = 30

// FMPQuote is one symbol's live quote.
type FMPQuote struct {
	Symbol        string  `json:"symbol"`
	Price         float64 `json:"price"`
	PreviousClose float64 `json:"previousClose"`
	ChangesPct    float64 `json:"changesPercentage"`
	DayHigh       float64 `json:"dayHigh"`
	DayLow        float64 `json:"dayLow"`
	YearHigh      float64 `json:"yearHigh"`
	YearLow       float64 `json:"yearLow"`
	MarketCap     float64 `json:"marketCap"`
	PE            float64 `json:"pe"`
	EPS           float64 `json:"eps"`
}

// fmpBatchQuotes fetches live quotes for the given symbols, in sequential
// batches of fmpBatchSize to respect URL lengths and rate limits.
func fmpBatchQuotes(apiKey string, symbols []string) ([]FMPQuote, error) {
	// https://financialmodelingprep.com/api/v3/quote/AAPL,MSFT?apikey=...
	// [
	//   {
	//     "symbol": "AAPL",
	//     "price": 227.55,
	//     "changesPercentage": 1.24,
	//     "previousClose": 224.76,
	//     ...
	//   },

	var quotes []FMPQuote
	for i := 0; i < len(symbols); i += fmpBatchSize {
		end := i + fmpBatchSize
		if end > len(symbols) {
			end = len(symbols)
		}
		addr := fmt.Sprintf("https://financialmodelingprep.com/api/v3/quote/%s?apikey=%s",
			strings.Join(symbols[i:end], ","), apiKey)

		batch := make([]FMPQuote, 0)
		if err := jwget(daily(), addr, &batch); err != nil {
			return nil, fmt.Errorf("fmp quotes batch %d: %w", i/fmpBatchSize, err)
		}
		quotes = append(quotes, batch...)
	}
	return quotes, nil
}

// fmpForexRate fetches the live rate for a currency pair like "USDGBP".
// The endpoint answers a one-element list.
func fmpForexRate(apiKey, pair string) (float64, error) {
	addr := fmt.Sprintf("https://financialmodelingprep.com/api/v3/fx/%s?apikey=%s", pair, apiKey)

	type Info struct {
		Bid float64 `json:"bid"`
		Ask float64 `json:"ask"`
	}
	content := make([]Info, 0)
	if err := jwget(daily(), addr, &content); err != nil {
		return 0, fmt.Errorf("fmp forex %s: %w", pair, err)
	}
	if len(content) == 0 {
		return 0, fmt.Errorf("fmp forex: no data returned for pair %s", pair)
	}
	mid := (content[0].Bid + content[0].Ask) / 2
	if mid == 0 {
		return 0, fmt.Errorf("fmp forex: empty rate for pair %s", pair)
	}
	return mid, nil
}
