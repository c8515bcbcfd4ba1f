package container_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"treeflat/container"
)

func TestDefaultMapGetMaterializes(t *testing.T) {
	m := container.NewDefaultMap[string, []int](func() []int { return []int{} })

	got := m.Get("missing")
	assert.Equal(t, []int{}, got)

	// The default was inserted, not just returned.
	v, ok := m.Lookup("missing")
	assert.True(t, ok)
	assert.Equal(t, []int{}, v)
	assert.Equal(t, []any{"missing"}, m.Keys())
}

func TestDefaultMapNilFactory(t *testing.T) {
	m := container.NewDefaultMap[string, int](nil)

	assert.Equal(t, 0, m.Get("missing"))

	// Without a factory nothing is materialized.
	_, ok := m.Lookup("missing")
	assert.False(t, ok)
	assert.Equal(t, 0, m.Len())
}

func TestDefaultMapLookupDoesNotMaterialize(t *testing.T) {
	m := container.NewDefaultMap[string, int](func() int { return 7 })

	_, ok := m.Lookup("missing")
	assert.False(t, ok)
	assert.Equal(t, 0, m.Len())
}

func TestDefaultMapFactoryAccessors(t *testing.T) {
	m := container.NewDefaultMap[string, int](nil)
	assert.Nil(t, m.DefaultFactory())

	require.NoError(t, m.SetDefaultFactory(func() int { return 9 }))
	assert.NotNil(t, m.DefaultFactory())
	assert.Equal(t, 9, m.Get("x"))

	// Wrong factory shape is rejected.
	err := m.SetDefaultFactory(func() string { return "" })
	assert.Error(t, err)

	require.NoError(t, m.SetDefaultFactory(nil))
	assert.Nil(t, m.DefaultFactory())
}

func TestDefaultMapDeleteAndOrder(t *testing.T) {
	m := container.NewDefaultMap[int, string](nil)
	m.Set(3, "c")
	m.Set(1, "a")
	m.Set(2, "b")

	assert.Equal(t, []any{3, 1, 2}, m.Keys())
	assert.True(t, m.Delete(1))
	assert.False(t, m.Delete(1))
	assert.Equal(t, []any{3, 2}, m.Keys())
}

func TestDefaultMapStoreTypeChecks(t *testing.T) {
	m := container.NewDefaultMap[string, int](nil)

	assert.NoError(t, m.Store("a", 1))
	assert.Error(t, m.Store(1.5, 1))
	assert.Error(t, m.Store("b", "nope"))

	v, ok := m.Load("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
}
