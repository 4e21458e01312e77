package nocodb

// Raw table rows, exactly as the store returns them: floats and strings, with
// pointers for nullable columns. Conversion into strict engine types happens
// in one validation step on the caller's side, never ad hoc.

// The logical table names of the portfolio base.
const (
	TableSymbols      = "symbols"
	TableTransactions = "transactions"
	TableOptions      = "options"
	TableDeposits     = "deposits"
	TableDividends    = "dividends"
	TableSettings     = "settings"
	TablePriceHistory = "price_history"
)

// SettingUSDGBPRate is the settings key holding the last synced USD per GBP
// exchange rate.
const SettingUSDGBPRate = "usd_gbp_rate"

// SymbolRecord is a tracked ticker with its last synced market data.
type SymbolRecord struct {
	Id              int      `json:"Id"`
	Symbol          string   `json:"symbol"`
	Name            string   `json:"name"`
	Sector          *string  `json:"sector"`
	Strategy        *string  `json:"strategy"`
	Currency        *string  `json:"currency"`
	CurrentPrice    *float64 `json:"current_price"`
	PreviousClose   *float64 `json:"previous_close"`
	ChangePct       *float64 `json:"change_pct"`
	DayHigh         *float64 `json:"day_high"`
	DayLow          *float64 `json:"day_low"`
	YearHigh        *float64 `json:"year_high"`
	YearLow         *float64 `json:"year_low"`
	MarketCap       *float64 `json:"market_cap"`
	PERatio         *float64 `json:"pe_ratio"`
	EPS             *float64 `json:"eps"`
	DividendYield   *float64 `json:"dividend_yield"`
	LastPriceUpdate *string  `json:"last_price_update"`
}

// TransactionRecord is one buy or sell of a stock.
type TransactionRecord struct {
	Id       int     `json:"Id"`
	Symbol   string  `json:"symbol"`
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	Price    float64 `json:"price"`
	Shares   float64 `json:"shares"`
	Amount   float64 `json:"amount"`
	Date     string  `json:"date"`
	Platform string  `json:"platform"`
}

// OptionRecord is one option contract row.
type OptionRecord struct {
	Id           int      `json:"Id"`
	Ticker       string   `json:"ticker"`
	Opened       string   `json:"opened"`
	StrategyType string   `json:"strategy_type"`
	CallPut      string   `json:"call_put"`
	BuySell      string   `json:"buy_sell"`
	Expiration   string   `json:"expiration"`
	Strike       float64  `json:"strike"`
	Delta        *float64 `json:"delta"`
	IVPct        *float64 `json:"iv_pct"`
	Moneyness    *string  `json:"moneyness"`
	Qty          float64  `json:"qty"`
	Premium      float64  `json:"premium"`
	Collateral   *float64 `json:"collateral"`
	Status       string   `json:"status"`
	CloseDate    *string  `json:"close_date"`
	ClosePremium *float64 `json:"close_premium"`
	OuterStrike  *float64 `json:"outer_strike"`
	Commission   *float64 `json:"commission"`
	Platform     *string  `json:"platform"`
	Notes        *string  `json:"notes"`
}

// DepositRecord is one capital deposit, in the account's funding currency.
type DepositRecord struct {
	Id       int     `json:"Id"`
	Month    string  `json:"month"`
	Amount   float64 `json:"amount"`
	Platform string  `json:"platform"`
}

// DividendRecord is one dividend payment.
type DividendRecord struct {
	Id       int     `json:"Id"`
	Symbol   string  `json:"symbol"`
	Amount   float64 `json:"amount"`
	Date     string  `json:"date"`
	Platform string  `json:"platform"`
}

// PriceHistoryRecord is one daily close.
type PriceHistoryRecord struct {
	Id         int      `json:"Id"`
	Symbol     string   `json:"symbol"`
	Date       string   `json:"date"`
	ClosePrice float64  `json:"close_price"`
	Volume     *float64 `json:"volume"`
}

// SettingRecord is one key-value configuration row.
type SettingRecord struct {
	Id          int     `json:"Id"`
	Key         string  `json:"key"`
	Value       string  `json:"value"`
	Description *string `json:"description"`
}

// PriceHistoryInsert is the append-only shape of the daily close log.
type PriceHistoryInsert struct {
	Symbol     string  `json:"symbol"`
	Date       string  `json:"date"`
	ClosePrice float64 `json:"close_price"`
}

// SettingPatch updates one configuration value.
type SettingPatch struct {
	Id    int    `json:"Id"`
	Value string `json:"value"`
}

// SettingInsert creates a configuration row that does not exist yet.
type SettingInsert struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// PricePatch is the writeback shape of the price sync job.
type PricePatch struct {
	Id              int      `json:"Id"`
	CurrentPrice    *float64 `json:"current_price,omitempty"`
	PreviousClose   *float64 `json:"previous_close,omitempty"`
	ChangePct       *float64 `json:"change_pct,omitempty"`
	DayHigh         *float64 `json:"day_high,omitempty"`
	DayLow          *float64 `json:"day_low,omitempty"`
	YearHigh        *float64 `json:"year_high,omitempty"`
	YearLow         *float64 `json:"year_low,omitempty"`
	MarketCap       *float64 `json:"market_cap,omitempty"`
	PERatio         *float64 `json:"pe_ratio,omitempty"`
	EPS             *float64 `json:"eps,omitempty"`
	LastPriceUpdate *string  `json:"last_price_update,omitempty"`
}
