package stockroom

import "github.com/shopspring/decimal"

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}

// Price is an exact decimal amount: a unit price, or a valuation obtained
// by multiplying a unit price by a stock level. It carries no currency,
// the persisted format is a bare number.
type Price struct {
	value decimal.Decimal
}

func P[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Price {
	return Price{value: newDecimal(value)}
}

func (p Price) Equal(q Price) bool    { return p.value.Equal(q.value) }
func (p Price) LessThan(q Price) bool { return p.value.LessThan(q.value) }
func (p Price) IsNegative() bool      { return p.value.IsNegative() }
func (p Price) IsZero() bool          { return p.value.IsZero() }
func (p Price) Add(q Price) Price     { return Price{value: p.value.Add(q.value)} }
func (p Price) Mul(n int) Price       { return Price{value: p.value.Mul(decimal.NewFromInt(int64(n)))} }
func (p Price) String() string        { return p.value.String() }

// Deprecated: AsFloat should no longer be used, the purpose is to keep the calculation exact.
func (p Price) AsFloat() float64 { return p.value.InexactFloat64() }

// In returns the price as a displayable monetary value in the given currency.
func (p Price) In(currency string) Money { return M(p.value, currency) }

// MarshalJSON implements the json.Marshaler interface for Price.
func (p Price) MarshalJSON() ([]byte, error) {
	return p.value.MarshalJSON()
}

func (p *Price) UnmarshalJSON(decimalBytes []byte) error {
	return p.value.UnmarshalJSON(decimalBytes)
}
