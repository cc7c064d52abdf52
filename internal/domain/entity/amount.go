package entity

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Amount is a money value. Legacy documents and clients send prices and
// totals either as numbers or as numeric strings; Amount is the one place
// where both forms are coerced, and anything non-numeric is rejected.
type Amount float64

func ParseAmount(raw string) (Amount, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("amount %q is not numeric: %w", raw, err)
	}
	return Amount(d.InexactFloat64()), nil
}

func (a Amount) Float64() float64 {
	return float64(a)
}

func (a Amount) Decimal() decimal.Decimal {
	return decimal.NewFromFloat(float64(a))
}

// MinorUnits converts to the smallest currency unit (cents), rounding half
// away from zero.
func (a Amount) MinorUnits() int64 {
	return a.Decimal().Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*a = 0
		return nil
	}

	parsed, err := ParseAmount(strings.Trim(s, `"`))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

func (a *Amount) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	v := bson.RawValue{Type: t, Value: data}

	switch t {
	case bsontype.Double:
		*a = Amount(v.Double())
	case bsontype.Int32:
		*a = Amount(v.Int32())
	case bsontype.Int64:
		*a = Amount(v.Int64())
	case bsontype.Decimal128:
		parsed, err := ParseAmount(v.Decimal128().String())
		if err != nil {
			return err
		}
		*a = parsed
	case bsontype.String:
		parsed, err := ParseAmount(v.StringValue())
		if err != nil {
			return err
		}
		*a = parsed
	case bsontype.Null, bsontype.Undefined:
		*a = 0
	default:
		return fmt.Errorf("cannot decode %s into Amount", t)
	}
	return nil
}
