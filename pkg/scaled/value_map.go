package scaled

// ValueMap maps names (symbols, asset codes) to amounts. Element-wise
// operations require both maps to carry exactly the same keys and panic
// otherwise.
type ValueMap map[string]Value

func (m ValueMap) Eq(n ValueMap) bool {
	if len(m) != len(n) {
		return false
	}

	for k, v := range m {
		nv, ok := n[k]
		if !ok || !v.Eq(nv) {
			return false
		}
	}
	return true
}

func (m ValueMap) pair(n ValueMap, op func(a, b Value) Value) ValueMap {
	if len(m) != len(n) {
		panic("unequal keys")
	}

	o := ValueMap{}
	for k, v := range m {
		nv, ok := n[k]
		if !ok {
			panic("unequal keys")
		}
		o[k] = op(v, nv)
	}
	return o
}

func (m ValueMap) Add(n ValueMap) ValueMap {
	return m.pair(n, Value.Add)
}

func (m ValueMap) Sub(n ValueMap) ValueMap {
	return m.pair(n, Value.Sub)
}

func (m ValueMap) Mul(n ValueMap) ValueMap {
	return m.pair(n, Value.Mul)
}

func (m ValueMap) Div(n ValueMap) ValueMap {
	return m.pair(n, Value.Div)
}

func (m ValueMap) scalar(x Value, op func(a, b Value) Value) ValueMap {
	o := ValueMap{}
	for k, v := range m {
		o[k] = op(v, x)
	}
	return o
}

func (m ValueMap) AddScalar(x Value) ValueMap {
	return m.scalar(x, Value.Add)
}

func (m ValueMap) SubScalar(x Value) ValueMap {
	return m.scalar(x, Value.Sub)
}

func (m ValueMap) MulScalar(x Value) ValueMap {
	return m.scalar(x, Value.Mul)
}

func (m ValueMap) DivScalar(x Value) ValueMap {
	return m.scalar(x, Value.Div)
}

func (m ValueMap) Sum() Value {
	s := Zero
	for _, v := range m {
		s = s.Add(v)
	}
	return s
}

// Normalize scales the map so its values sum to one. A zero-sum map panics on
// the division.
func (m ValueMap) Normalize() ValueMap {
	s := m.Sum()
	return m.DivScalar(s)
}
