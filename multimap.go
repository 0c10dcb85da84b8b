package parset

import (
	"sync"

	"golang.org/x/exp/maps"
)

// Multimap maps keys to collections of values. A key may be associated with equal values
// more than once; every call to Put adds one association.
// All methods of Multimap are safe for concurrent use.
type Multimap[K comparable, V any] struct {
	mu      sync.Mutex
	buckets map[K][]V
	size    int
}

// NewMultimap returns an empty multimap.
func NewMultimap[K comparable, V any]() *Multimap[K, V] {
	return &Multimap[K, V]{
		buckets: map[K][]V{},
	}
}

// Put associates value with key.
func (m *Multimap[K, V]) Put(key K, value V) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.buckets[key] = append(m.buckets[key], value)
	m.size++
}

// Get returns a copy of the values associated with key, in undefined order.
// It returns nil if key has no values.
func (m *Multimap[K, V]) Get(key K) []V {
	m.mu.Lock()
	defer m.mu.Unlock()

	values, ok := m.buckets[key]
	if !ok {
		return nil
	}

	return append([]V(nil), values...)
}

// ContainsKey returns true if key has at least one value.
func (m *Multimap[K, V]) ContainsKey(key K) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.buckets[key]
	return ok
}

// Keys returns the keys that have at least one value, in undefined order.
func (m *Multimap[K, V]) Keys() []K {
	m.mu.Lock()
	defer m.mu.Unlock()

	return maps.Keys(m.buckets)
}

// Len returns the total number of key/value associations.
func (m *Multimap[K, V]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.size
}

// KeyLen returns the number of keys that have at least one value.
func (m *Multimap[K, V]) KeyLen() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.buckets)
}

// ForEachPair calls fn for each key/value association.
// fn must not call methods of m.
func (m *Multimap[K, V]) ForEachPair(fn func(key K, value V)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for key, values := range m.buckets {
		for _, value := range values {
			fn(key, value)
		}
	}
}

// Map returns a copy of m as a map from keys to values.
func (m *Multimap[K, V]) Map() map[K][]V {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := make(map[K][]V, len(m.buckets))
	for key, values := range m.buckets {
		result[key] = append([]V(nil), values...)
	}

	return result
}
