package domain

// Entry is a single key/value pair of an OrderedMap.
type Entry[V any] struct {
	Key   string
	Value V
}

// OrderedMap is a string-keyed map that iterates in insertion order.
// Trait parameter bags (shader parameters, constraints, texture maps) use it
// so printed output follows the order values were declared in.
//
// The zero value is an empty map ready to use. A nil *OrderedMap reads as empty.
type OrderedMap[V any] struct {
	entries []Entry[V]
	index   map[string]int
}

// NewOrderedMap builds a map from entries. A repeated key overwrites the value
// but keeps the position of its first occurrence.
func NewOrderedMap[V any](entries ...Entry[V]) *OrderedMap[V] {
	m := &OrderedMap[V]{}
	for _, e := range entries {
		m.Set(e.Key, e.Value)
	}
	return m
}

// Set inserts or updates key. Updates keep the existing position.
func (m *OrderedMap[V]) Set(key string, value V) {
	if m.index == nil {
		m.index = make(map[string]int)
	}
	if i, ok := m.index[key]; ok {
		m.entries[i].Value = value
		return
	}
	m.index[key] = len(m.entries)
	m.entries = append(m.entries, Entry[V]{Key: key, Value: value})
}

// Get returns the value for key and whether it exists.
func (m *OrderedMap[V]) Get(key string) (V, bool) {
	var zero V
	if m == nil || m.index == nil {
		return zero, false
	}
	i, ok := m.index[key]
	if !ok {
		return zero, false
	}
	return m.entries[i].Value, true
}

// Delete removes key, preserving the relative order of the remaining entries.
func (m *OrderedMap[V]) Delete(key string) {
	if m == nil || m.index == nil {
		return
	}
	i, ok := m.index[key]
	if !ok {
		return
	}
	m.entries = append(m.entries[:i], m.entries[i+1:]...)
	delete(m.index, key)
	for j := i; j < len(m.entries); j++ {
		m.index[m.entries[j].Key] = j
	}
}

func (m *OrderedMap[V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// Keys returns the keys in insertion order.
func (m *OrderedMap[V]) Keys() []string {
	if m == nil {
		return []string{}
	}
	out := make([]string, 0, len(m.entries))
	for _, e := range m.entries {
		out = append(out, e.Key)
	}
	return out
}

// Entries returns a copy of the entries in insertion order.
func (m *OrderedMap[V]) Entries() []Entry[V] {
	if m == nil {
		return []Entry[V]{}
	}
	out := make([]Entry[V], len(m.entries))
	copy(out, m.entries)
	return out
}

// AsRecord exposes the map as a Record so formatters can render it like any
// other field mapping.
func (m *OrderedMap[V]) AsRecord() Record {
	if m == nil {
		return Record{}
	}
	out := make(Record, 0, len(m.entries))
	for _, e := range m.entries {
		out = append(out, Field{Name: e.Key, Value: e.Value})
	}
	return out
}
