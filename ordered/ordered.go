// Package ordered provides the insertion-ordered, string-keyed map that backs every variable set.
//
// Generated stylesheets list declarations in the order the defaults and legacy themes define them,
// and the palette keeps seed colors ahead of discovered ones, so plain Go maps are not enough.
package ordered

import (
	"encoding/json"
	"reflect"

	"github.com/invopop/jsonschema"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Map is an insertion-ordered map from string keys to V. Overwriting a key keeps its position.
type Map[V any] struct {
	pairs *orderedmap.OrderedMap[string, V]
}

// New returns an empty map.
func New[V any]() *Map[V] {
	return &Map[V]{pairs: orderedmap.New[string, V]()}
}

// Get returns the value stored under key.
func (m *Map[V]) Get(key string) (V, bool) {
	return m.pairs.Get(key)
}

// Has reports whether key is present.
func (m *Map[V]) Has(key string) bool {
	_, ok := m.pairs.Get(key)
	return ok
}

// Set stores value under key, appending new keys at the end.
func (m *Map[V]) Set(key string, value V) {
	m.pairs.Set(key, value)
}

// SetIfAbsent stores value only if key is not present yet and reports whether it did.
func (m *Map[V]) SetIfAbsent(key string, value V) bool {
	if m.Has(key) {
		return false
	}
	m.pairs.Set(key, value)
	return true
}

// Len returns the number of entries.
func (m *Map[V]) Len() int {
	return m.pairs.Len()
}

// Keys returns the keys in insertion order.
func (m *Map[V]) Keys() []string {
	keys := make([]string, 0, m.pairs.Len())
	for pair := m.pairs.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Each calls fn for every entry in insertion order.
func (m *Map[V]) Each(fn func(key string, value V)) {
	for pair := m.pairs.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Key, pair.Value)
	}
}

// Clone returns a shallow copy with the same order.
func (m *Map[V]) Clone() *Map[V] {
	clone := New[V]()
	m.Each(clone.Set)
	return clone
}

// MarshalJSON encodes the map as a JSON object in insertion order.
func (m *Map[V]) MarshalJSON() ([]byte, error) {
	return m.pairs.MarshalJSON()
}

// UnmarshalJSON decodes a JSON object, keeping the document order.
func (m *Map[V]) UnmarshalJSON(data []byte) error {
	if m.pairs == nil {
		m.pairs = orderedmap.New[string, V]()
	}
	return json.Unmarshal(data, m.pairs)
}

// JSONSchema describes the map as an object whose values all share the schema of V.
func (Map[V]) JSONSchema() *jsonschema.Schema {
	reflector := &jsonschema.Reflector{DoNotReference: true, Anonymous: true}
	values := reflector.ReflectFromType(reflect.TypeOf((*V)(nil)).Elem())
	values.Version = ""

	return &jsonschema.Schema{
		Type:                 "object",
		AdditionalProperties: values,
	}
}
