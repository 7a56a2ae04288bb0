package domain

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// maxAmount bounds amounts to what a NUMERIC(10,2) column stores.
var maxAmount = decimal.New(1, 8)

// Money is an amount in minor currency units (cents). It is rendered in JSON
// as a decimal string with two fraction digits, e.g. "265.00".
type Money int64

func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, Invalid(fmt.Sprintf("invalid amount %q", s))
	}
	if !d.Equal(d.Round(2)) {
		return 0, Invalid(fmt.Sprintf("amount %q has more than two decimals", s))
	}
	if d.Abs().GreaterThanOrEqual(maxAmount) {
		return 0, Invalid(fmt.Sprintf("amount %q is out of range", s))
	}
	return Money(d.Shift(2).IntPart()), nil
}

func (m Money) Add(o Money) Money {
	return m + o
}

func (m Money) MinorUnits() int64 {
	return int64(m)
}

func (m Money) String() string {
	return decimal.New(int64(m), -2).StringFixed(2)
}

func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON accepts both "12.50" and 12.50.
func (m *Money) UnmarshalJSON(data []byte) error {
	raw := string(data)
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		raw = s
	}
	parsed, err := ParseMoney(raw)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
