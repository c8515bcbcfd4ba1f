package container_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"treeflat/container"
)

func TestDequePushPop(t *testing.T) {
	d := container.NewDeque[int]()

	d.PushBack(2)
	d.PushBack(3)
	d.PushFront(1)
	assert.Equal(t, 3, d.Len())
	assert.Equal(t, []any{1, 2, 3}, d.Values())

	v, ok := d.PopFront()
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	v, ok = d.PopBack()
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	assert.Equal(t, 1, d.Len())
	assert.Equal(t, 2, d.At(0))
}

func TestDequePopEmpty(t *testing.T) {
	d := container.NewDeque[string]()

	_, ok := d.PopFront()
	assert.False(t, ok)
	_, ok = d.PopBack()
	assert.False(t, ok)
}

func TestDequeBoundedEviction(t *testing.T) {
	d := container.NewBoundedDeque[int](3, 1, 2, 3)

	// A full deque evicts from the opposite end.
	d.PushBack(4)
	assert.Equal(t, []any{2, 3, 4}, d.Values())

	d.PushFront(1)
	assert.Equal(t, []any{1, 2, 3}, d.Values())
}

func TestDequeBoundedConstructorKeepsTail(t *testing.T) {
	d := container.NewBoundedDeque[int](2, 1, 2, 3, 4)
	assert.Equal(t, []any{3, 4}, d.Values())
	assert.Equal(t, 2, d.MaxLen())
}

func TestDequeSetMaxLenTruncates(t *testing.T) {
	d := container.NewDeque[int](1, 2, 3, 4)
	assert.Equal(t, 0, d.MaxLen())

	// Shrinking keeps the back of the deque.
	d.SetMaxLen(2)
	assert.Equal(t, []any{3, 4}, d.Values())

	// Lifting the bound keeps the elements.
	d.SetMaxLen(0)
	d.PushBack(5)
	assert.Equal(t, []any{3, 4, 5}, d.Values())
}

func TestDequeAppendTypeCheck(t *testing.T) {
	d := container.NewDeque[int]()

	assert.NoError(t, d.Append(1))
	assert.Error(t, d.Append("nope"))
	assert.Equal(t, []any{1}, d.Values())
}

func TestDequeZeroValue(t *testing.T) {
	var d container.Deque[int]

	assert.Equal(t, 0, d.Len())
	d.PushBack(1)
	assert.Equal(t, 1, d.Len())
}
