package scaled

// Reducer folds the accumulated value with the next one.
type Reducer func(prev, curr Value) Value

// Reduce folds values with the reducer. The optional argument seeds the
// accumulator; without it the first value does.
func Reduce(values []Value, reducer Reducer, a ...Value) Value {
	var acc Value
	if len(a) > 0 {
		acc = a[0]
	} else {
		if len(values) == 0 {
			return Zero
		}
		acc, values = values[0], values[1:]
	}

	for _, value := range values {
		acc = reducer(acc, value)
	}
	return acc
}

type Slice []Value

func (s Slice) Reduce(reducer Reducer, a ...Value) Value {
	return Reduce(s, reducer, a...)
}

func (s Slice) Sum() Value {
	return Sum(s...)
}

func (s Slice) Avg() Value {
	return Avg(s...)
}

func (s Slice) Min() Value {
	return Min(s...)
}

func (s Slice) Max() Value {
	return Max(s...)
}

// Defaults to ascending sort
func (s Slice) Len() int           { return len(s) }
func (s Slice) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }
func (s Slice) Less(i, j int) bool { return s[i].Compare(s[j]) < 0 }

type Ascending []Value

func (s Ascending) Len() int           { return len(s) }
func (s Ascending) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }
func (s Ascending) Less(i, j int) bool { return s[i].Compare(s[j]) < 0 }

type Descending []Value

func (s Descending) Len() int           { return len(s) }
func (s Descending) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }
func (s Descending) Less(i, j int) bool { return s[i].Compare(s[j]) > 0 }
