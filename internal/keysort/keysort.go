// Package keysort provides a deterministic total order over heterogeneous map
// keys, so that mapping nodes flatten in the same order on every run.
package keysort

import (
	"fmt"
	"math"
	"reflect"
	"sort"
)

// Sort orders keys in place by the deterministic key order.
func Sort(keys []reflect.Value) {
	sort.SliceStable(keys, func(i, j int) bool {
		return Less(keys[i], keys[j])
	})
}

// SortAny orders untyped keys in place by the deterministic key order.
func SortAny(keys []any) {
	sort.SliceStable(keys, func(i, j int) bool {
		return Less(reflect.ValueOf(keys[i]), reflect.ValueOf(keys[j]))
	})
}

// Less reports whether a orders before b. Keys are ranked by kind group
// first (bool < signed < unsigned < float < string < everything else), then
// compared within the group. Keys outside the ordered groups fall back to
// their printed representation, which is stable even if not meaningful.
func Less(a, b reflect.Value) bool {
	a, b = indirect(a), indirect(b)

	ra, rb := rank(a), rank(b)
	if ra != rb {
		return ra < rb
	}

	switch ra {
	case rankBool:
		return !a.Bool() && b.Bool()
	case rankInt:
		return a.Int() < b.Int()
	case rankUint:
		return a.Uint() < b.Uint()
	case rankFloat:
		// NaN sorts first within the float group; a bare < would not give a
		// strict weak order over NaN and the sort result would be unstable.
		af, bf := a.Float(), b.Float()
		if math.IsNaN(af) {
			return !math.IsNaN(bf)
		}
		if math.IsNaN(bf) {
			return false
		}
		return af < bf
	case rankString:
		return a.String() < b.String()
	default:
		return fmt.Sprint(a) < fmt.Sprint(b)
	}
}

const (
	rankBool = iota
	rankInt
	rankUint
	rankFloat
	rankString
	rankOther
)

func indirect(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Interface && !v.IsNil() {
		v = v.Elem()
	}
	return v
}

func rank(v reflect.Value) int {
	switch v.Kind() {
	case reflect.Bool:
		return rankBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rankInt
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rankUint
	case reflect.Float32, reflect.Float64:
		return rankFloat
	case reflect.String:
		return rankString
	default:
		return rankOther
	}
}
