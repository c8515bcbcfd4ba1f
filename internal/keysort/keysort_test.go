package keysort_test

import (
	"math"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"treeflat/internal/keysort"
)

func TestSortAnyWithinGroups(t *testing.T) {
	tests := []struct {
		name string
		in   []any
		want []any
	}{
		{"ints", []any{3, 1, 2}, []any{1, 2, 3}},
		{"strings", []any{"b", "a", "c"}, []any{"a", "b", "c"}},
		{"bools", []any{true, false}, []any{false, true}},
		{"floats", []any{2.5, -1.0, 0.0}, []any{-1.0, 0.0, 2.5}},
		{"uints", []any{uint(9), uint(1)}, []any{uint(1), uint(9)}},
		{"mixed int widths", []any{int64(3), int8(1), 2}, []any{int8(1), 2, int64(3)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keysort.SortAny(tt.in)
			assert.Equal(t, tt.want, tt.in)
		})
	}
}

func TestSortAnyFloatNaN(t *testing.T) {
	in := []any{1.5, math.NaN(), 0.5, math.NaN()}
	keysort.SortAny(in)

	// NaN keys collect at the front of the float group, in a stable order.
	assert.True(t, math.IsNaN(in[0].(float64)))
	assert.True(t, math.IsNaN(in[1].(float64)))
	assert.Equal(t, 0.5, in[2])
	assert.Equal(t, 1.5, in[3])
}

func TestLessNaNIsTotal(t *testing.T) {
	nan := reflect.ValueOf(math.NaN())
	one := reflect.ValueOf(1.0)

	assert.True(t, keysort.Less(nan, one))
	assert.False(t, keysort.Less(one, nan))
	assert.False(t, keysort.Less(nan, nan))
}

func TestSortAnyAcrossGroups(t *testing.T) {
	in := []any{"s", 1.5, uint(7), 2, true}
	keysort.SortAny(in)
	assert.Equal(t, []any{true, 2, uint(7), 1.5, "s"}, in)
}

func TestSortAnyOtherKindsFallBackToPrinting(t *testing.T) {
	type pair struct{ A, B int }
	in := []any{pair{2, 0}, pair{1, 9}, pair{1, 2}}
	keysort.SortAny(in)
	assert.Equal(t, []any{pair{1, 2}, pair{1, 9}, pair{2, 0}}, in)
}

func TestSortReflectValues(t *testing.T) {
	m := map[string]int{"c": 3, "a": 1, "b": 2}
	keys := reflect.ValueOf(m).MapKeys()
	keysort.Sort(keys)

	got := make([]string, len(keys))
	for i, k := range keys {
		got[i] = k.String()
	}
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestLessIsIrreflexive(t *testing.T) {
	for _, v := range []any{1, "a", true, 1.5, uint(2)} {
		rv := reflect.ValueOf(v)
		assert.False(t, keysort.Less(rv, rv), "%v must not order before itself", v)
	}
}
