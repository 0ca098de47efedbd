package types

import (
	"iter"
	"slices"
	"strings"
)

// FieldMap is an ordered multimap of tag records keyed by raw identifier.
//
// Identifier comparison is case-insensitive ("artist" and "ARTIST" are the
// same key) but the first-seen spelling is preserved, so identifiers written
// back out match what was read in. Insertion order is preserved both across
// keys and within a key, which keeps serialization deterministic and keeps
// multi-valued fields (comments, cover art) in their original order.
//
// A record with an empty identifier and an empty value is never stored.
//
// The zero FieldMap is ready to use.
type FieldMap struct {
	order  []string           // canonical keys in first-insertion order
	names  map[string]string  // canonical key -> first-seen spelling
	values map[string][]Value // canonical key -> values in insertion order
}

// canonicalKey folds an identifier for case-insensitive comparison.
func canonicalKey(id string) string {
	return strings.ToUpper(id)
}

// Add appends a value under the given identifier.
//
// Returns false without storing anything when both the identifier and the
// value are empty.
func (m *FieldMap) Add(id string, v Value) bool {
	if id == "" && v.IsEmpty() {
		return false
	}

	key := canonicalKey(id)
	if m.values == nil {
		m.names = make(map[string]string)
		m.values = make(map[string][]Value)
	}
	if _, ok := m.values[key]; !ok {
		m.order = append(m.order, key)
		m.names[key] = id
	}
	m.values[key] = append(m.values[key], v)
	return true
}

// Set replaces all values stored under the identifier with a single value.
//
// Setting an empty value removes the key entirely.
func (m *FieldMap) Set(id string, v Value) bool {
	if v.IsEmpty() {
		m.Delete(id)
		return true
	}

	key := canonicalKey(id)
	if m.values != nil {
		if _, ok := m.values[key]; ok {
			m.values[key] = []Value{v}
			return true
		}
	}
	return m.Add(id, v)
}

// Get returns a copy of all values stored under the identifier.
func (m *FieldMap) Get(id string) []Value {
	if m.values == nil {
		return nil
	}
	values := m.values[canonicalKey(id)]
	if values == nil {
		return nil
	}
	return slices.Clone(values)
}

// First returns the first value stored under the identifier, or the empty
// Value when the identifier is absent.
func (m *FieldMap) First(id string) Value {
	if m.values == nil {
		return Value{}
	}
	values := m.values[canonicalKey(id)]
	if len(values) == 0 {
		return Value{}
	}
	return values[0]
}

// Delete removes all values stored under the identifier.
func (m *FieldMap) Delete(id string) {
	if m.values == nil {
		return
	}
	key := canonicalKey(id)
	if _, ok := m.values[key]; !ok {
		return
	}
	delete(m.values, key)
	delete(m.names, key)
	if i := slices.Index(m.order, key); i >= 0 {
		m.order = slices.Delete(m.order, i, i+1)
	}
}

// Len returns the total number of stored records across all identifiers.
func (m *FieldMap) Len() int {
	total := 0
	for _, values := range m.values {
		total += len(values)
	}
	return total
}

// All returns an iterator over (identifier, value) pairs in insertion order.
//
// The identifier yielded is the first-seen spelling. Multi-valued keys yield
// one pair per stored value.
//
// Example:
//
//	for id, value := range fields.All() {
//		fmt.Printf("%s=%s\n", id, value)
//	}
func (m *FieldMap) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, key := range m.order {
			name := m.names[key]
			for _, v := range m.values[key] {
				if !yield(name, v) {
					return
				}
			}
		}
	}
}

// Identifiers returns the stored identifiers (first-seen spelling) in
// insertion order.
func (m *FieldMap) Identifiers() []string {
	ids := make([]string, 0, len(m.order))
	for _, key := range m.order {
		ids = append(ids, m.names[key])
	}
	return ids
}

// Clear removes every record.
func (m *FieldMap) Clear() {
	m.order = nil
	m.names = nil
	m.values = nil
}
