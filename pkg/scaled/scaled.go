// Package scaled implements exact fixed-point decimal arithmetic for token
// and currency amounts following the "wei" convention: an amount is an
// arbitrary-precision integer magnitude scaled by a fixed power of ten,
// 18 decimal places by default.
//
//	value = magnitude / 10^scale
//
// Values are immutable; every operation returns a new Value. All arithmetic
// is exact integer arithmetic, and the result of a binary operation is always
// expressed at the receiver's scale. Narrowing the scale truncates toward
// zero.
package scaled

import (
	"math/big"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// DefaultScale is the number of implied decimal digits used when no explicit
// scale is given. 18 matches the wei convention.
const DefaultScale = 18

// ErrNilSource is returned when a value is constructed from a nil source.
var ErrNilSource = errors.New("scaled: cannot construct a value from a nil source")

// ErrNegativeValue is returned by SortableHex for negative magnitudes, which
// have no order-preserving fixed-width encoding.
var ErrNegativeValue = errors.New("scaled: negative value has no sortable hex encoding")

// Value is an immutable fixed-point decimal amount: an arbitrary-precision
// signed integer magnitude together with the number of decimal digits it
// implicitly represents. The zero Value is 0 at scale 0.
type Value struct {
	num   *big.Int
	scale int
}

var (
	Zero = NewFromInt(0)
	One  = NewFromInt(1)
)

var bigZero = new(big.Int)

// mag returns the magnitude for reading. It is never mutated.
func (v Value) mag() *big.Int {
	if v.num == nil {
		return bigZero
	}
	return v.num
}

// Scale returns the number of implied decimal digits.
func (v Value) Scale() int {
	return v.scale
}

// Unit returns 10^scale, the divisor that converts the magnitude to its true
// decimal value. It is recomputed on every call, never cached.
func (v Value) Unit() *big.Int {
	return pow10(v.scale)
}

// Sign returns -1, 0 or 1 depending on the sign of the magnitude.
func (v Value) Sign() int {
	return v.mag().Sign()
}

// IsZero reports whether the value is exactly zero.
func (v Value) IsZero() bool {
	return v.Sign() == 0
}

// Rescale re-expresses the value at newScale. Rescaling to the current scale
// is a no-op and returns the receiver. Narrowing the scale truncates the
// trailing digits toward zero; the numeric value is otherwise preserved.
func (v Value) Rescale(newScale int) Value {
	if newScale == v.scale {
		return v
	}

	num := new(big.Int).Mul(v.mag(), pow10(newScale))
	num.Quo(num, pow10(v.scale))
	return Value{num: num, scale: newScale}
}

// pow10 computes 10^scale through the decimal facility.
func pow10(scale int) *big.Int {
	if scale < 0 {
		panic(errors.Errorf("scaled: negative scale %d", scale))
	}
	return decimal.New(1, int32(scale)).BigInt()
}

func pickScale(scale []int) int {
	if len(scale) == 0 {
		return DefaultScale
	}
	if scale[0] < 0 {
		panic(errors.Errorf("scaled: negative scale %d", scale[0]))
	}
	return scale[0]
}
