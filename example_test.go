package treeflat_test

import (
	"fmt"

	"treeflat"
)

func ExampleFlatten() {
	tree := map[string]any{
		"a": 1,
		"b": []any{2, 3},
	}

	leaves, spec, err := treeflat.Flatten(tree)
	if err != nil {
		panic(err)
	}
	fmt.Println(leaves)
	fmt.Println(spec)
	// Output:
	// [1 2 3]
	// TreeSpec({a: *, b: [*, *]})
}

func ExampleUnflatten() {
	leaves, spec, err := treeflat.Flatten([]any{1, nil, []any{2}})
	if err != nil {
		panic(err)
	}
	fmt.Println(leaves)

	out, err := treeflat.Unflatten(spec, []any{10, 20})
	if err != nil {
		panic(err)
	}
	fmt.Println(out)
	// Output:
	// [1 2]
	// [10 <nil> [20]]
}

func ExampleRuntime_RegisterNode() {
	rt := treeflat.NewRuntime()

	type pair struct{ left, right any }
	flatten := func(v any) ([]any, any, []any, error) {
		p := v.(pair)
		return []any{p.left, p.right}, nil, []any{"left", "right"}, nil
	}
	unflatten := func(_ any, children []any) (any, error) {
		return pair{left: children[0], right: children[1]}, nil
	}
	if err := rt.RegisterNode(pair{}, flatten, unflatten, nil); err != nil {
		panic(err)
	}

	leaves, spec, err := rt.Flatten(pair{left: 1, right: []any{2, 3}})
	if err != nil {
		panic(err)
	}
	fmt.Println(leaves)
	fmt.Println(spec.Kind())
	// Output:
	// [1 2 3]
	// KindCustom
}
