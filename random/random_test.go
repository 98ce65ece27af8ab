package random

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixed replays a list of values.
type fixed struct {
	vals []float32
	n    int
}

func (f *fixed) Next() float32 {
	v := f.vals[f.n%len(f.vals)]
	f.n++
	return v
}

func newSource(t *testing.T) Source {
	g, err := NewUniversalSeed(170)
	require.NoError(t, err)
	return g
}

func TestIntn(t *testing.T) {
	assert.Equal(t, 0, Intn(&fixed{vals: []float32{0}}, 10))
	assert.Equal(t, 6, Intn(&fixed{vals: []float32{0.68753344}}, 10))
	assert.Equal(t, 9, Intn(&fixed{vals: []float32{0.9999999}}, 10))
	assert.Panics(t, func() { Intn(&fixed{vals: []float32{0}}, 0) })

	src := newSource(t)
	counts := make([]int, 4)
	for n := 0; n < 40000; n++ {
		counts[Intn(src, 4)]++
	}
	for i, c := range counts {
		assert.InDelta(t, 10000, c, 500, "bucket %d", i)
	}
}

func TestGetRandomValues(t *testing.T) {
	src := newSource(t)
	numbers := []int{1, 2, 3, 4, 5, 6, 7, 8}

	got := GetRandomValues(src, numbers, 3)
	assert.Len(t, got, 3)
	seen := map[int]bool{}
	for _, v := range got {
		assert.Contains(t, numbers, v)
		assert.False(t, seen[v], "duplicate %d", v)
		seen[v] = true
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, numbers)

	all := GetRandomValues(src, numbers, 20)
	assert.Equal(t, numbers, all)

	all64 := GetRandomValuesInt64(src, []int64{9, 8, 7}, 2)
	assert.Len(t, all64, 2)
	assert.NotEqual(t, all64[0], all64[1])
}

func TestGetRandomNumber(t *testing.T) {
	src := newSource(t)

	t.Run("constant", func(t *testing.T) {
		v, err := GetRandomNumber(src, "12", 1)
		require.NoError(t, err)
		assert.Equal(t, []int{12}, v)
	})
	t.Run("range", func(t *testing.T) {
		for n := 0; n < 200; n++ {
			v, err := GetRandomNumber(src, "2~10", 1)
			require.NoError(t, err)
			require.Len(t, v, 1)
			assert.True(t, v[0] >= 2 && v[0] <= 10, "%d", v[0])
		}
	})
	t.Run("enum", func(t *testing.T) {
		v, err := GetRandomNumber(src, "1,2,4", 2)
		require.NoError(t, err)
		assert.Len(t, v, 2)
		assert.NotEqual(t, v[0], v[1])
	})
	t.Run("weighted", func(t *testing.T) {
		v, err := GetRandomNumber(src, "1:20,1~4:30,4:500", 3)
		require.NoError(t, err)
		assert.Len(t, v, 3)
	})
	t.Run("zero weight never drawn", func(t *testing.T) {
		for n := 0; n < 100; n++ {
			v, err := GetRandomNumber(src, "7:0,8:10", 1)
			require.NoError(t, err)
			assert.Equal(t, []int{8}, v)
		}
	})
	t.Run("bad", func(t *testing.T) {
		for _, args := range []string{"x", "1~y", ":5", "1:a", "1:2,3", "10~2", "1:-1"} {
			_, err := GetRandomNumber(src, args, 1)
			assert.Error(t, err, args)
		}
	})
}

func TestGetRandomNumbers(t *testing.T) {
	src := newSource(t)
	v, err := GetRandomNumbers(src, "2~10:40#10:20,10~45:30,40~80:500##5")
	require.NoError(t, err)
	require.Len(t, v, 3)
	assert.True(t, v[0] >= 2 && v[0] <= 10)
	assert.True(t, v[1] >= 10 && v[1] <= 80)
	assert.Equal(t, 5, v[2])

	_, err = GetRandomNumbers(src, "1#oops")
	assert.Error(t, err)
}

func TestGetRandomNumber_Reproducible(t *testing.T) {
	a, _ := NewUniversalSeed(424242)
	b, _ := NewUniversalSeed(424242)
	for n := 0; n < 50; n++ {
		va, err := GetRandomNumber(a, "1~100:5,200~300:5", 2)
		require.NoError(t, err)
		vb, _ := GetRandomNumber(b, "1~100:5,200~300:5", 2)
		require.Equal(t, va, vb)
	}
}

func TestGetRandomItems(t *testing.T) {
	src := newSource(t)
	items := []RandItem{
		{ItemID: 1, Num: 1, Weight: 10},
		{ItemID: 2, Num: 1, Weight: 0},
		{ItemID: 3, Num: 5, Weight: 30},
	}
	got := GetRandomItems(src, items, 3)
	require.Len(t, got, 2)
	ids := []int{int(got[0].ItemID), int(got[1].ItemID)}
	sort.Ints(ids)
	assert.Equal(t, []int{1, 3}, ids)
	assert.Equal(t, int32(2), items[1].ItemID)
}

type weighted []int

func (w weighted) Len() int         { return len(w) }
func (w weighted) Weight(i int) int { return w[i] }
func (w weighted) SubValue(indexs []int) interface{} {
	out := make([]int, 0, len(indexs))
	for _, i := range indexs {
		out = append(out, i)
	}
	return out
}

func TestGetRandomWeight(t *testing.T) {
	src := newSource(t)
	got := GetRandomWeight(src, weighted{5, 0, 5, 5}, 4).([]int)
	sort.Ints(got)
	assert.Equal(t, []int{0, 2, 3}, got)

	hits := make([]int, 2)
	for n := 0; n < 10000; n++ {
		idx := GetRandomWeight(src, weighted{1, 3}, 1).([]int)
		hits[idx[0]]++
	}
	assert.InDelta(t, 7500, hits[1], 300)
}
