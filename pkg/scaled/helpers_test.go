package scaled

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMin(t *testing.T) {
	got := Min(MustNewFromString("5"), MustNewFromString("3"), MustNewFromString("9"))
	assert.Equal(t, "3", got.String())
}

func TestMax(t *testing.T) {
	got := Max(MustNewFromString("5"), MustNewFromString("3"), MustNewFromString("9"))
	assert.Equal(t, "9", got.String())
}

func TestMinMax_tiesKeepFirst(t *testing.T) {
	a := MustNewFromString("3", 6)
	b := MustNewFromString("3", 18)

	assert.Equal(t, 6, Min(a, b).Scale())
	assert.Equal(t, 6, Max(a, b).Scale())
}

func TestMinMax_empty(t *testing.T) {
	assert.True(t, Min().IsZero())
	assert.True(t, Max().IsZero())
}

func TestSum(t *testing.T) {
	s := Sum(MustNewFromString("1.5"), MustNewFromString("2.5"), MustNewFromString("-1"))
	assert.Equal(t, "3", s.String())
	assert.True(t, Sum().IsZero())
}

func TestAvg(t *testing.T) {
	avg := Avg(MustNewFromString("1"), MustNewFromString("2"))
	assert.Equal(t, "1.5", avg.String())

	t.Run("truncates toward zero", func(t *testing.T) {
		avg := Avg(MustNewFromString("1", 0), MustNewFromString("2", 0))
		assert.Equal(t, "1", avg.String())
	})

	t.Run("bounded by min and max", func(t *testing.T) {
		values := []Value{
			MustNewFromString("5"),
			MustNewFromString("-3"),
			MustNewFromString("9.25"),
		}

		avg := Avg(values...)
		assert.True(t, Min(values...).Lte(avg))
		assert.True(t, Max(values...).Gte(avg))
	})
}

func TestFilter(t *testing.T) {
	values := []Value{
		MustNewFromString("-1"),
		Zero,
		MustNewFromString("2"),
		MustNewFromString("-3"),
	}

	pos := Filter(values, PositiveTester)
	assert.Len(t, pos, 1)
	assert.Equal(t, "2", pos[0].String())

	neg := Filter(values, NegativeTester)
	assert.Len(t, neg, 2)
}

func TestDustTester(t *testing.T) {
	values := []Value{
		MustNewFromString("0.000000000000000009"),
		MustNewFromString("-0.000000000000000001"),
		MustNewFromString("1"),
	}

	dust := Filter(values, DustTester(MustNewFromString("0.00000000000000001")))
	assert.Len(t, dust, 2)
}

func TestSliceAggregates(t *testing.T) {
	s := Slice{
		MustNewFromString("1"),
		MustNewFromString("2"),
		MustNewFromString("3"),
	}

	assert.Equal(t, "6", s.Sum().String())
	assert.Equal(t, "2", s.Avg().String())
	assert.Equal(t, "1", s.Min().String())
	assert.Equal(t, "3", s.Max().String())
}

func TestReduce(t *testing.T) {
	values := []Value{
		MustNewFromString("1"),
		MustNewFromString("2"),
		MustNewFromString("3"),
	}

	sum := Reduce(values, Value.Add)
	assert.Equal(t, "6", sum.String())

	seeded := Slice(values).Reduce(Value.Add, MustNewFromString("10"))
	assert.Equal(t, "16", seeded.String())

	assert.True(t, Reduce(nil, Value.Add).IsZero())
}

func TestSliceSort(t *testing.T) {
	values := Slice{
		MustNewFromString("3"),
		MustNewFromString("1"),
		MustNewFromString("2"),
	}

	sort.Sort(values)
	assert.Equal(t, "1", values[0].String())
	assert.Equal(t, "3", values[2].String())

	sort.Sort(Descending(values))
	assert.Equal(t, "3", values[0].String())
	assert.Equal(t, "1", values[2].String())
}
