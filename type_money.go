package stockdash

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents an exact monetary value in a single currency. All engine
// values are USD; the reporting currency is applied at the display boundary by
// multiplying by a supplied forex rate (see In).
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// USD is shorthand for M(value, "USD"), the engine's working currency.
func USD[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Money {
	return M(value, money.USD)
}

// currency returns the money's currency, never nil.
func (m Money) currency() money.Currency {
	return *money.New(0, m.cur).Currency()
}

// String returns the formatted representation of the money value, using the
// currency's own grapheme and fraction rules (e.g. "$1,234.50").
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.Round(0).IntPart())
}

func (m Money) Currency() string                { return m.cur }
func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool           { return m.value.LessThan(n.value) }
func (m Money) LessThanOrEqual(n Money) bool    { return m.value.LessThanOrEqual(n.value) }
func (m Money) GreaterThan(n Money) bool        { return m.value.GreaterThan(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }
func (m Money) Neg() Money                      { return Money{value: m.value.Neg(), cur: m.cur} }
func (m Money) Abs() Money                      { return Money{value: m.value.Abs(), cur: m.cur} }
func (m Money) Mul(q Quantity) Money            { return Money{value: m.value.Mul(q.value), cur: m.cur} }
func (m Money) Div(q Quantity) Money            { return Money{value: m.value.Div(q.value), cur: m.cur} }

// DivPrice returns how many units priced at n one m buys.
func (m Money) DivPrice(n Money) Quantity { return Quantity{value: m.value.Div(n.value)} }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// makes the "" currency totally weak.
func cur(a, b Money) string {
	if a.cur == "" {
		return b.cur
	}
	if b.cur == "" {
		return a.cur
	}
	if a.cur != b.cur {
		panic("currency mismatch " + a.cur + "!=" + b.cur)
	}
	return a.cur
}

// In converts m into another currency by multiplying by the supplied rate
// (units of target currency per unit of m's currency). This is the only
// currency conversion the dashboard performs; rate policy is the caller's.
func (m Money) In(currency string, rate Quantity) Money {
	if m.cur == currency {
		return m
	}
	return Money{value: m.value.Mul(rate.value), cur: currency}
}

// Display converts the money to a display-rounded float64 at 2 decimal places.
func (m Money) Display() float64 { return ToDisplay(m.value, 2) }

// SignedString returns the string representation of the money value with a sign.
// 0 is represented as "-".
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

// PercentOf returns m as a percentage of total.
func (m Money) PercentOf(total Money) Percent {
	return Percent(m.value.Div(total.value).Mul(newDecimal(100)).InexactFloat64())
}

func (m Money) MarshalJSON() ([]byte, error) {
	return m.value.Round(int32(m.currency().Fraction)).MarshalJSON()
}
