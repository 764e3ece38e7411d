package scaled

type Tester func(value Value) bool

func PositiveTester(value Value) bool {
	return value.Sign() > 0
}

func NegativeTester(value Value) bool {
	return value.Sign() < 0
}

// DustTester reports amounts whose absolute value is below threshold,
// e.g. residual wei left over from truncating division.
func DustTester(threshold Value) Tester {
	return func(value Value) bool {
		return value.Abs().Lt(threshold)
	}
}

func Filter(values []Value, f Tester) (slice []Value) {
	for _, v := range values {
		if f(v) {
			slice = append(slice, v)
		}
	}
	return slice
}
