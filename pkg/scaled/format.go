package scaled

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// sortableHexWidth is the fixed magnitude width of a sortable hex string.
const sortableHexWidth = 32

// String renders the value at its full scale with trailing zeros trimmed, so
// a whole amount prints without a decimal point.
func (v Value) String() string {
	return v.Decimal().String()
}

// FormatString renders the value with exactly prec decimal places, rounding
// half away from zero. A negative prec rounds to the left of the decimal
// point.
func (v Value) FormatString(prec int) string {
	return v.Decimal().StringFixed(int32(prec))
}

// RawString renders the bare magnitude in base 10.
func (v Value) RawString() string {
	return v.mag().String()
}

// BigInt returns a copy of the raw magnitude.
func (v Value) BigInt() *big.Int {
	return new(big.Int).Set(v.mag())
}

// Decimal returns the value as an arbitrary-precision decimal. The
// conversion is exact.
func (v Value) Decimal() decimal.Decimal {
	return decimal.NewFromBigInt(v.mag(), -int32(v.scale))
}

// RawDecimal returns the bare magnitude as an arbitrary-precision decimal.
func (v Value) RawDecimal() decimal.Decimal {
	return decimal.NewFromBigInt(v.mag(), 0)
}

// Float64 returns the nearest floating-point approximation of the value.
// The result is best effort, not exact.
func (v Value) Float64() float64 {
	f, _ := v.Decimal().Float64()
	return f
}

// RawFloat64 returns the nearest floating-point approximation of the bare
// magnitude.
func (v Value) RawFloat64() float64 {
	f, _ := v.RawDecimal().Float64()
	return f
}

// SortableHex renders the magnitude as a fixed-width, left-padded hex string
// whose lexicographic order matches the numeric order of non-negative
// values. Negative values are rejected with ErrNegativeValue rather than
// encoded ambiguously.
func (v Value) SortableHex() (string, error) {
	if v.Sign() < 0 {
		return "", ErrNegativeValue
	}

	b := v.mag().Bytes()
	if len(b) > sortableHexWidth {
		return "", errors.Errorf("scaled: magnitude overflows %d bytes", sortableHexWidth)
	}

	return hexutil.Encode(common.LeftPadBytes(b, sortableHexWidth)), nil
}

// NumIntDigits returns the number of digits of the integer part, ignoring
// the sign. Zero counts as one digit.
func (v Value) NumIntDigits() int {
	ip := new(big.Int).Quo(v.mag(), v.Unit())
	ip.Abs(ip)
	return len(ip.String())
}

// NumFractionalDigits returns the number of significant fractional digits,
// ignoring trailing zeros.
func (v Value) NumFractionalDigits() int {
	s := v.String()
	idx := strings.IndexByte(s, '.')
	if idx < 0 {
		return 0
	}
	return len(s) - idx - 1
}
