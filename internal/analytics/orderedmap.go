package analytics

// orderedMap remembers the order in which keys were first inserted.
type orderedMap[K comparable, V any] struct {
	keys   []K
	values map[K]V
}

func newOrderedMap[K comparable, V any]() *orderedMap[K, V] {
	return &orderedMap[K, V]{
		values: make(map[K]V),
	}
}

// GetOrInit returns the value under key, creating it with init on first use.
func (m *orderedMap[K, V]) GetOrInit(key K, init func() V) V {
	if v, ok := m.values[key]; ok {
		return v
	}
	v := init()
	m.keys = append(m.keys, key)
	m.values[key] = v
	return v
}

func (m *orderedMap[K, V]) Len() int {
	return len(m.keys)
}

// Values in insertion order.
func (m *orderedMap[K, V]) Values() []V {
	values := make([]V, 0, len(m.keys))
	for _, k := range m.keys {
		values = append(values, m.values[k])
	}
	return values
}

func (m *orderedMap[K, V]) Map() map[K]V {
	out := make(map[K]V, len(m.values))
	for k, v := range m.values {
		out[k] = v
	}
	return out
}
