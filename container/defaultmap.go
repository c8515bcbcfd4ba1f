package container

import "fmt"

// DefaultMap is a key→value store carrying a default-value factory: Get on a
// missing key materializes the entry from the factory. Iteration order is
// insertion order, but unlike OrderedMap that order is not part of the type's
// contract.
type DefaultMap[K comparable, V any] struct {
	keys    []K
	values  map[K]V
	factory func() V
}

// NewDefaultMap returns an empty DefaultMap with the given factory. A nil
// factory makes Get behave like a plain map lookup returning the zero value.
func NewDefaultMap[K comparable, V any](factory func() V) *DefaultMap[K, V] {
	return &DefaultMap[K, V]{factory: factory}
}

// Get returns the value stored under key, inserting a factory-made value on a
// miss when a factory is set.
func (m *DefaultMap[K, V]) Get(key K) V {
	if v, ok := m.values[key]; ok {
		return v
	}
	var v V
	if m.factory != nil {
		v = m.factory()
		m.Set(key, v)
	}
	return v
}

// Lookup returns the value stored under key without materializing a default.
func (m *DefaultMap[K, V]) Lookup(key K) (V, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Set stores value under key, appending the key to the iteration order on a
// first insert.
func (m *DefaultMap[K, V]) Set(key K, value V) {
	if m.values == nil {
		m.values = make(map[K]V)
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Delete removes key and reports whether it was present.
func (m *DefaultMap[K, V]) Delete(key K) bool {
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

func (m *DefaultMap[K, V]) Len() int { return len(m.keys) }

// Keys returns the keys in insertion order.
func (m *DefaultMap[K, V]) Keys() []any {
	keys := make([]any, len(m.keys))
	for i, k := range m.keys {
		keys[i] = k
	}
	return keys
}

func (m *DefaultMap[K, V]) Load(key any) (any, bool) {
	k, ok := key.(K)
	if !ok {
		return nil, false
	}
	return m.Lookup(k)
}

func (m *DefaultMap[K, V]) Store(key, value any) error {
	k, ok := key.(K)
	if !ok {
		return fmt.Errorf("default map key %T is not assignable to %T", key, *new(K))
	}
	v, ok := value.(V)
	if !ok && value != nil {
		return fmt.Errorf("default map value %T is not assignable to %T", value, *new(V))
	}
	m.Set(k, v)
	return nil
}

// DefaultFactory returns the typed factory function, or nil when unset.
func (m *DefaultMap[K, V]) DefaultFactory() any {
	if m.factory == nil {
		return nil
	}
	return m.factory
}

// SetDefaultFactory installs fn as the factory. A nil fn clears it; any other
// value must be a func() V.
func (m *DefaultMap[K, V]) SetDefaultFactory(fn any) error {
	if fn == nil {
		m.factory = nil
		return nil
	}
	f, ok := fn.(func() V)
	if !ok {
		return fmt.Errorf("default factory %T is not a func() %T", fn, *new(V))
	}
	m.factory = f
	return nil
}
