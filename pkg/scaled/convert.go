package scaled

import (
	"encoding/json"
	"math/big"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// New constructs a Value from a heterogeneous source, normalized at the given
// scale (DefaultScale when omitted):
//
//   - Value: rescaled to the requested scale.
//   - *big.Int: taken verbatim as the magnitude, assumed already scaled.
//   - string: parsed as a decimal number (grouping commas allowed), scaled
//     and rounded to the nearest whole magnitude.
//   - numeric and decimal.Decimal sources: scaled and rounded likewise.
//
// A nil source fails with ErrNilSource.
func New(src interface{}, scale ...int) (Value, error) {
	sc := pickScale(scale)

	switch d := src.(type) {
	case nil:
		return Value{}, ErrNilSource
	case Value:
		return d.Rescale(sc), nil
	case *big.Int:
		if d == nil {
			return Value{}, ErrNilSource
		}
		return NewFromBigInt(d, sc), nil
	case decimal.Decimal:
		return NewFromDecimal(d, sc), nil
	case string:
		return NewFromString(d, sc)
	case float64:
		return NewFromFloat(d, sc), nil
	case float32:
		return NewFromFloat(float64(d), sc), nil
	case int:
		return NewFromInt(int64(d), sc), nil
	case int32:
		return NewFromInt(int64(d), sc), nil
	case int64:
		return NewFromInt(d, sc), nil
	case uint64:
		return NewFromDecimal(decimal.NewFromUint64(d), sc), nil
	default:
		return Value{}, errors.Errorf("scaled: unsupported type: %T %v", d, d)
	}
}

// NewFromString parses a decimal-formatted string, stripping grouping commas
// first. The parsed number is multiplied by 10^scale and rounded to the
// nearest whole magnitude.
func NewFromString(input string, scale ...int) (Value, error) {
	sc := pickScale(scale)

	input = strings.ReplaceAll(input, ",", "")
	d, err := decimal.NewFromString(input)
	if err != nil {
		return Value{}, errors.Wrapf(err, "scaled: parse %q", input)
	}

	return NewFromDecimal(d, sc), nil
}

// MustNewFromString is like NewFromString but panics on a malformed input.
func MustNewFromString(input string, scale ...int) Value {
	v, err := NewFromString(input, scale...)
	if err != nil {
		panic(err)
	}
	return v
}

// NewFromFloat converts a float, rounding to the nearest whole magnitude at
// the given scale.
func NewFromFloat(val float64, scale ...int) Value {
	return NewFromDecimal(decimal.NewFromFloat(val), pickScale(scale))
}

// NewFromInt converts an integer amount. The integer is a plain numeric
// source: it is multiplied by 10^scale. Use NewFromBigInt for magnitudes that
// are already scaled.
func NewFromInt(val int64, scale ...int) Value {
	return NewFromDecimal(decimal.NewFromInt(val), pickScale(scale))
}

// NewFromBigInt takes the integer verbatim as the magnitude at the given
// scale, sign included. This is the only already-scaled construction path.
func NewFromBigInt(num *big.Int, scale ...int) Value {
	return Value{num: new(big.Int).Set(num), scale: pickScale(scale)}
}

// NewFromDecimal converts an arbitrary-precision decimal, rounding to the
// nearest whole magnitude at the given scale.
func NewFromDecimal(d decimal.Decimal, scale ...int) Value {
	sc := pickScale(scale)
	return Value{num: d.Shift(int32(sc)).Round(0).BigInt(), scale: sc}
}

// MarshalJSON encodes the value as a decimal string so that amounts survive
// JSON round-trips without floating-point damage.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

// UnmarshalJSON accepts a JSON number or a decimal string, normalized at
// DefaultScale.
func (v *Value) UnmarshalJSON(data []byte) error {
	var a interface{}
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}

	switch d := a.(type) {
	case nil:
		return ErrNilSource

	case float64:
		*v = NewFromFloat(d)

	case string:
		nv, err := NewFromString(d)
		if err != nil {
			return err
		}
		*v = nv

	default:
		return errors.Errorf("scaled: unsupported type: %T %v", d, d)
	}

	return nil
}

// MarshalYAML encodes the value as a decimal string.
func (v Value) MarshalYAML() (interface{}, error) {
	return v.String(), nil
}

// UnmarshalYAML accepts an integer, a float or a decimal string, normalized
// at DefaultScale.
func (v *Value) UnmarshalYAML(unmarshal func(a interface{}) error) (err error) {
	var i int64
	if err = unmarshal(&i); err == nil {
		*v = NewFromInt(i)
		return nil
	}

	var f float64
	if err = unmarshal(&f); err == nil {
		*v = NewFromFloat(f)
		return nil
	}

	var s string
	if err = unmarshal(&s); err == nil {
		nv, err2 := NewFromString(s)
		if err2 != nil {
			return err2
		}
		*v = nv
		return nil
	}

	return err
}
