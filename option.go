package stockdash

import "fmt"

// contracts is the standard option contract multiplier: one contract covers
// 100 shares of the underlying.
var contracts = Q(100)

// CallPut is the option right.
type CallPut string

const (
	Call CallPut = "Call"
	Put  CallPut = "Put"
)

// OptionStatus is the lifecycle state of an option position. It is set by the
// ingestion process; the engine only reads it.
type OptionStatus string

const (
	StatusOpen     OptionStatus = "Open"
	StatusClosed   OptionStatus = "Closed"
	StatusExpired  OptionStatus = "Expired"
	StatusRolled   OptionStatus = "Rolled"
	StatusAssigned OptionStatus = "Assigned"
)

// IsTerminal reports whether the position's lifecycle has ended.
func (s OptionStatus) IsTerminal() bool {
	switch s {
	case StatusClosed, StatusExpired, StatusRolled, StatusAssigned:
		return true
	}
	return false
}

// StrategyType tags an option position with the trading strategy it belongs
// to. The tag decides which analytics path handles the position.
type StrategyType string

const (
	Wheel  StrategyType = "Wheel"
	Collar StrategyType = "Collar"
	Spread StrategyType = "Spread"
	VPCS   StrategyType = "VPCS"
	PMCC   StrategyType = "PMCC"
	LEAPS  StrategyType = "LEAPS"
	Bet    StrategyType = "BET"
	Hedge  StrategyType = "Hedge"
)

// ParseStrategyType parses a strategy tag from the record store.
func ParseStrategyType(s string) (StrategyType, error) {
	switch t := StrategyType(s); t {
	case Wheel, Collar, Spread, VPCS, PMCC, LEAPS, Bet, Hedge:
		return t, nil
	default:
		return "", fmt.Errorf("unknown strategy type: %q", s)
	}
}

// IsShortStrategy reports whether the strategy collects premium (sell side).
func IsShortStrategy(s StrategyType) bool {
	switch s {
	case Wheel, Collar, Spread, VPCS, PMCC:
		return true
	}
	return false
}

// IsLongStrategy reports whether the strategy pays premium for long-dated
// directional or hedging exposure (buy side).
func IsLongStrategy(s StrategyType) bool {
	switch s {
	case LEAPS, Bet, Hedge:
		return true
	}
	return false
}

// OptionPosition is one immutable option trade record. Premium and
// ClosePremium are per-contract per-share values; Commission is per contract.
// Pointer fields are absent when the record store has no value for them;
// closed-looking rows can legitimately miss CloseDate/ClosePremium, and the
// engine degrades to null-valued analytics rather than failing on them.
type OptionPosition struct {
	Ticker       string
	Strategy     StrategyType
	CallPut      CallPut
	Qty          Quantity
	Strike       Money
	Premium      Money
	Opened       Date
	Expiration   Date
	Status       OptionStatus
	CloseDate    *Date
	ClosePremium *Money
	Collateral   *Money
	Commission   *Money
	Delta        *float64
	IVPct        *float64
	OuterStrike  *Money
	Moneyness    string
	Platform     string
}

// Validate fails fast on inputs the analytics must never accept.
func (o *OptionPosition) Validate() error {
	if o.Ticker == "" {
		return fmt.Errorf("option has no ticker")
	}
	if o.CallPut != Call && o.CallPut != Put {
		return fmt.Errorf("option %s: unknown right %q", o.Ticker, o.CallPut)
	}
	if !o.Qty.IsPositive() {
		return fmt.Errorf("option %s opened %s: qty must be positive, got %s", o.Ticker, o.Opened, o.Qty)
	}
	if o.Strike.IsNegative() {
		return fmt.Errorf("option %s opened %s: strike must not be negative", o.Ticker, o.Opened)
	}
	if o.Premium.IsNegative() {
		return fmt.Errorf("option %s opened %s: premium must not be negative", o.Ticker, o.Opened)
	}
	if o.Opened.IsZero() {
		return fmt.Errorf("option %s: missing opened date", o.Ticker)
	}
	switch o.Status {
	case StatusOpen, StatusClosed, StatusExpired, StatusRolled, StatusAssigned:
	default:
		return fmt.Errorf("option %s opened %s: unknown status %q", o.Ticker, o.Opened, o.Status)
	}
	return nil
}

// GrossPremium returns the total premium exchanged at open:
// premium × qty × 100.
func (o *OptionPosition) GrossPremium() Money {
	return o.Premium.Mul(o.Qty).Mul(contracts)
}

// commissionCost returns the total commission for the position, or zero when
// no commission is recorded. The absolute value handles either sign
// convention found in migrated rows.
func (o *OptionPosition) commissionCost() Money {
	if o.Commission == nil {
		return USD(0)
	}
	return o.Commission.Abs().Mul(o.Qty)
}
