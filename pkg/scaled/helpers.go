package scaled

// Sum adds all values at the first value's scale. An empty call returns Zero.
func Sum(values ...Value) Value {
	if len(values) == 0 {
		return Zero
	}

	s := values[0]
	for _, value := range values[1:] {
		s = s.Add(value)
	}
	return s
}

// Avg sums all values and divides by their count at the first value's scale,
// truncating toward zero. An empty call returns Zero.
func Avg(values ...Value) Value {
	if len(values) == 0 {
		return Zero
	}

	s := Sum(values...)
	return s.Div(NewFromInt(int64(len(values)), s.scale))
}

// Min returns the smallest value, keeping the first candidate on ties. An
// empty call returns Zero.
func Min(values ...Value) Value {
	if len(values) == 0 {
		return Zero
	}

	m := values[0]
	for _, value := range values[1:] {
		if value.Lt(m) {
			m = value
		}
	}
	return m
}

// Max returns the largest value, keeping the first candidate on ties. An
// empty call returns Zero.
func Max(values ...Value) Value {
	if len(values) == 0 {
		return Zero
	}

	m := values[0]
	for _, value := range values[1:] {
		if value.Gt(m) {
			m = value
		}
	}
	return m
}
