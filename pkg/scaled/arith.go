package scaled

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// Binary operators align the operand to the receiver's scale first, so the
// result is always expressed at the receiver's scale. Integer division
// truncates toward zero; dividing by a zero value panics, straight from
// big.Int division.

// Add returns v + v2 at v's scale.
func (v Value) Add(v2 Value) Value {
	o := v2.Rescale(v.scale)
	return Value{num: new(big.Int).Add(v.mag(), o.mag()), scale: v.scale}
}

// Sub returns v - v2 at v's scale.
func (v Value) Sub(v2 Value) Value {
	o := v2.Rescale(v.scale)
	return Value{num: new(big.Int).Sub(v.mag(), o.mag()), scale: v.scale}
}

// Mul returns v * v2 at v's scale, truncating toward zero.
func (v Value) Mul(v2 Value) Value {
	o := v2.Rescale(v.scale)
	num := new(big.Int).Mul(v.mag(), o.mag())
	num.Quo(num, v.Unit())
	return Value{num: num, scale: v.scale}
}

// Div returns v / v2 at v's scale, truncating toward zero.
func (v Value) Div(v2 Value) Value {
	o := v2.Rescale(v.scale)
	num := new(big.Int).Mul(v.mag(), v.Unit())
	num.Quo(num, o.mag())
	return Value{num: num, scale: v.scale}
}

// Neg returns -v.
func (v Value) Neg() Value {
	return Value{num: new(big.Int).Neg(v.mag()), scale: v.scale}
}

// Abs returns |v|.
func (v Value) Abs() Value {
	return Value{num: new(big.Int).Abs(v.mag()), scale: v.scale}
}

// Inv returns 1 / v at v's scale, truncating toward zero.
func (v Value) Inv() Value {
	u := v.Unit()
	num := new(big.Int).Mul(u, u)
	num.Quo(num, v.mag())
	return Value{num: num, scale: v.scale}
}

// Pow raises v to the integer power n, computed through the decimal facility
// and re-expressed at v's scale. A negative exponent is the power of the
// truncated inverse, so Pow(-n) == Inv().Pow(n).
func (v Value) Pow(n int64) Value {
	if n < 0 {
		return v.Inv().Pow(-n)
	}
	d := v.Decimal().Pow(decimal.NewFromInt(n))
	return NewFromDecimal(d, v.scale)
}
