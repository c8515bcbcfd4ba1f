package container

import "fmt"

// Deque is an ordered sequence optimized for insertion and removal at both
// ends. A positive MaxLen bounds the length: pushes on a full deque evict
// from the opposite end. A non-positive MaxLen means unbounded, so the zero
// value is an unbounded empty deque.
type Deque[T any] struct {
	items  []T
	maxLen int
}

// NewDeque returns an unbounded deque holding items.
func NewDeque[T any](items ...T) *Deque[T] {
	d := &Deque[T]{}
	d.items = append(d.items, items...)
	return d
}

// NewBoundedDeque returns a deque bounded to maxLen, pre-filled with items.
// When items exceed the bound, only the trailing maxLen are kept.
func NewBoundedDeque[T any](maxLen int, items ...T) *Deque[T] {
	d := &Deque[T]{maxLen: maxLen}
	for _, v := range items {
		d.PushBack(v)
	}
	return d
}

// PushBack appends v, evicting the front element when full.
func (d *Deque[T]) PushBack(v T) {
	if d.maxLen > 0 && len(d.items) >= d.maxLen {
		d.items = d.items[1:]
	}
	d.items = append(d.items, v)
}

// PushFront prepends v, evicting the back element when full.
func (d *Deque[T]) PushFront(v T) {
	if d.maxLen > 0 && len(d.items) >= d.maxLen {
		d.items = d.items[:len(d.items)-1]
	}
	d.items = append([]T{v}, d.items...)
}

// PopBack removes and returns the last element.
func (d *Deque[T]) PopBack() (T, bool) {
	if len(d.items) == 0 {
		var zero T
		return zero, false
	}
	v := d.items[len(d.items)-1]
	d.items = d.items[:len(d.items)-1]
	return v, true
}

// PopFront removes and returns the first element.
func (d *Deque[T]) PopFront() (T, bool) {
	if len(d.items) == 0 {
		var zero T
		return zero, false
	}
	v := d.items[0]
	d.items = d.items[1:]
	return v, true
}

// At returns the element at index i in front-to-back order.
func (d *Deque[T]) At(i int) T { return d.items[i] }

func (d *Deque[T]) Len() int { return len(d.items) }

// Values returns the elements in front-to-back order.
func (d *Deque[T]) Values() []any {
	values := make([]any, len(d.items))
	for i, v := range d.items {
		values[i] = v
	}
	return values
}

func (d *Deque[T]) Append(v any) error {
	t, ok := v.(T)
	if !ok && v != nil {
		return fmt.Errorf("deque element %T is not assignable to %T", v, *new(T))
	}
	d.PushBack(t)
	return nil
}

// MaxLen returns the capacity bound; non-positive means unbounded.
func (d *Deque[T]) MaxLen() int { return d.maxLen }

func (d *Deque[T]) SetMaxLen(n int) {
	d.maxLen = n
	if n > 0 && len(d.items) > n {
		d.items = d.items[len(d.items)-n:]
	}
}
