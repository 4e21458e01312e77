package stockdash

import "github.com/shopspring/decimal"

// ToDisplay converts an exact decimal to a display number rounded
// half-away-from-zero at the given number of decimal places. It is the single
// point where exact values become floats: intermediate computation never
// rounds, only the value handed to a caller does. ToDisplay is idempotent at a
// fixed precision.
func ToDisplay(value decimal.Decimal, places int32) float64 {
	return value.Round(places).InexactFloat64()
}
