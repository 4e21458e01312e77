package stockdash

import (
	"fmt"
	"math"
	"net/http"

	"github.com/PaesslerAG/jsonpath"
)

/*
	{
	    "info": {
	        "isin": "LS000IGBP...",
	        "chartType": "mini",
	        ...
	    },
	    "series": {
	        "intraday": {
	            "data": [[1719244800000, 1.2643], ...]
	        }
	    }
	}
*/

// lsExchangeLatestGBPperUSD scrapes the latest USD/GBP tick from the
// Lang & Schwarz chart endpoint. It is the fallback when the FMP forex
// endpoint is unavailable (free tier outages are common).
func lsExchangeLatestGBPperUSD() (float64, error) {
	addr := "https://www.ls-tc.de/_rpc/json/instrument/chart/dataForInstrument?instrumentId=87943&series=intraday&type=mini"
	var jobj any
	err := jwget(new(http.Client), addr, &jobj)
	if err != nil {
		return math.NaN(), fmt.Errorf("error in wget %q: %w", "USD/GBP", err)
	}
	path := "$.series.intraday.data[-1:][1]"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return math.NaN(), fmt.Errorf("error parsing %q: %q %w", "USD/GBP", path, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1 answer, or a single answer:
	// by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	val, ok := jval.(float64)
	if !ok {
		return math.NaN(), fmt.Errorf("error parsing %q: %q %s %v", "USD/GBP", path, "not a float", jval)
	}
	return val, nil
}

// ForexUSDPerGBP returns the USD per GBP rate, trying FMP first and falling
// back to the chart scrape. FMP quotes the pair as GBP per USD, so both
// sources are inverted into the engine's convention.
func ForexUSDPerGBP() (Quantity, error) {
	if key := fmpApiKey(); key != "" {
		rate, err := fmpForexRate(key, "USDGBP")
		if err == nil && rate > 0 {
			return Q(1).Div(Q(rate)), nil
		}
	}
	rate, err := lsExchangeLatestGBPperUSD()
	if err != nil {
		return Quantity{}, fmt.Errorf("no forex source available for USD/GBP: %w", err)
	}
	if rate <= 0 || math.IsNaN(rate) {
		return Quantity{}, fmt.Errorf("invalid USD/GBP rate %v", rate)
	}
	return Q(1).Div(Q(rate)), nil
}
