package treeflat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"treeflat"
	"treeflat/container"
)

func structureOf(t *testing.T, rt *treeflat.Runtime, v any, opts ...treeflat.Option) *treeflat.TreeSpec {
	t.Helper()
	spec, err := rt.Structure(v, opts...)
	require.NoError(t, err)
	return spec
}

func TestTreeSpecString(t *testing.T) {
	rt := treeflat.NewRuntime()

	om := container.NewOrderedMap[string, any]()
	om.Set("k", 1)

	tests := []struct {
		name string
		v    any
		want string
	}{
		{"leaf", 1, "TreeSpec(*)"},
		{"nil marker", nil, "TreeSpec(nil)"},
		{"list", []any{1, 2}, "TreeSpec([*, *])"},
		{"fixed sequence", [2]int{1, 2}, "TreeSpec((*, *))"},
		{"mapping", map[string]any{"b": 2, "a": 1}, "TreeSpec({a: *, b: *})"},
		{"ordered mapping", om, "TreeSpec(OrderedMap({k: *}))"},
		{"named record", point{}, "TreeSpec(point(X=*, Y=*))"},
		{"record sequence", timeSpec{1, 2}, "TreeSpec(timeSpec(Seconds=*, Nanos=*))"},
		{"bounded deque", container.NewBoundedDeque[any](4, 1), "TreeSpec(Deque([*], maxlen=4))"},
		{"nested", map[string]any{"a": 1, "b": []any{2, nil}}, "TreeSpec({a: *, b: [*, nil]})"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, structureOf(t, rt, tt.v).String())
		})
	}
}

func TestTreeSpecStringFlags(t *testing.T) {
	rt := treeflat.NewRuntime()
	mustRegister(rt, wrapped{}, treeflat.WithNamespace("ns"))

	spec := structureOf(t, rt, []any{nil}, treeflat.WithNoneIsLeaf(true))
	assert.Equal(t, "TreeSpec([*], NoneIsLeaf)", spec.String())

	spec = structureOf(t, rt, wrapped{first: 1, second: 2}, treeflat.WithNamespace("ns"))
	assert.Contains(t, spec.String(), `namespace="ns"`)
	assert.Contains(t, spec.String(), "Custom[")
}

func TestTreeSpecEqual(t *testing.T) {
	rt := treeflat.NewRuntime()

	a := structureOf(t, rt, map[string]any{"x": 1, "y": []any{2}})
	b := structureOf(t, rt, map[string]any{"x": 9, "y": []any{8}})
	assert.True(t, a.Equal(b), "leaf values must not affect structure")

	// Different keys are different structures.
	c := structureOf(t, rt, map[string]any{"x": 1, "z": []any{2}})
	assert.False(t, a.Equal(c))

	// Different container types are different structures.
	d := structureOf(t, rt, map[string]any{"x": 1, "y": [1]any{2}})
	assert.False(t, a.Equal(d))

	// The nil-marker mode is part of the structure.
	e := structureOf(t, rt, map[string]any{"x": 1, "y": []any{2}}, treeflat.WithNoneIsLeaf(true))
	assert.False(t, a.Equal(e))

	assert.True(t, a.Equal(a))
	assert.False(t, a.Equal(nil))
}

func TestTreeSpecAccessors(t *testing.T) {
	rt := treeflat.NewRuntime()

	spec := structureOf(t, rt, []any{1, map[string]any{"k": 2}, nil})
	assert.Equal(t, treeflat.KindList, spec.Kind())
	assert.Equal(t, 3, spec.NumChildren())
	assert.Equal(t, 2, spec.NumLeaves())
	assert.Equal(t, 5, spec.NumNodes())
	assert.False(t, spec.IsLeaf())
	assert.NotNil(t, spec.Type())

	leaf := structureOf(t, rt, "x")
	assert.True(t, leaf.IsLeaf())
	assert.Equal(t, 1, leaf.NumLeaves())
	assert.Equal(t, 0, leaf.NumChildren())
	assert.Nil(t, leaf.Type())
}
