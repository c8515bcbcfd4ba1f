package container

import "fmt"

// OrderedMap is a key→value store that preserves insertion order. The zero
// value is ready to use.
type OrderedMap[K comparable, V any] struct {
	keys   []K
	values map[K]V
}

// NewOrderedMap returns an empty OrderedMap.
func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{}
}

// Get returns the value stored under key.
func (m *OrderedMap[K, V]) Get(key K) (V, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Set stores value under key. A first insert appends the key to the order;
// overwriting an existing key keeps its original position.
func (m *OrderedMap[K, V]) Set(key K, value V) {
	if m.values == nil {
		m.values = make(map[K]V)
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Delete removes key and reports whether it was present.
func (m *OrderedMap[K, V]) Delete(key K) bool {
	if _, ok := m.values[key]; !ok {
		return false
	}
	delete(m.values, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
	return true
}

func (m *OrderedMap[K, V]) Len() int { return len(m.keys) }

// Keys returns the keys in insertion order.
func (m *OrderedMap[K, V]) Keys() []any {
	keys := make([]any, len(m.keys))
	for i, k := range m.keys {
		keys[i] = k
	}
	return keys
}

func (m *OrderedMap[K, V]) Load(key any) (any, bool) {
	k, ok := key.(K)
	if !ok {
		return nil, false
	}
	return m.Get(k)
}

func (m *OrderedMap[K, V]) Store(key, value any) error {
	k, ok := key.(K)
	if !ok {
		return fmt.Errorf("ordered map key %T is not assignable to %T", key, *new(K))
	}
	v, ok := value.(V)
	if !ok && value != nil {
		return fmt.Errorf("ordered map value %T is not assignable to %T", value, *new(V))
	}
	m.Set(k, v)
	return nil
}

// PreservesOrder marks the insertion-order contract.
func (m *OrderedMap[K, V]) PreservesOrder() {}
