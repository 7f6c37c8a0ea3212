package textconv

import (
	"fmt"
	"reflect"
	"sort"
)

// SortedMap is a key ordered mapping produced for sorted map targets,
// keys are kept in ascending order, later duplicate keys overwrite in place.
type SortedMap struct {
	keys   []any
	values map[any]any
	less   func(a, b any) bool
}

func newSortedMap(less func(a, b any) bool) *SortedMap {
	return &SortedMap{values: map[any]any{}, less: less}
}

// Len returns the number of entries
func (m *SortedMap) Len() int {
	return len(m.keys)
}

// Keys returns keys in ascending order
func (m *SortedMap) Keys() []any {
	return m.keys
}

// Get returns the value stored under key
func (m *SortedMap) Get(key any) (any, bool) {
	value, ok := m.values[key]
	return value, ok
}

// Put inserts or overwrites the value stored under key
func (m *SortedMap) Put(key, value any) {
	if _, ok := m.values[key]; !ok {
		at := sort.Search(len(m.keys), func(i int) bool {
			return m.less(key, m.keys[i])
		})
		m.keys = append(m.keys, nil)
		copy(m.keys[at+1:], m.keys[at:])
		m.keys[at] = key
	}
	m.values[key] = value
}

// Range iterates entries in ascending key order until fn returns false
func (m *SortedMap) Range(fn func(key, value any) bool) {
	for _, key := range m.keys {
		if !fn(key, m.values[key]) {
			return
		}
	}
}

// lessOf builds a comparison for types with a total ordering, only string,
// integer and float kinds are ordered.
func lessOf(rType reflect.Type) (func(a, b any) bool, error) {
	switch rType.Kind() {
	case reflect.String:
		return func(a, b any) bool {
			return reflect.ValueOf(a).String() < reflect.ValueOf(b).String()
		}, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return func(a, b any) bool {
			return reflect.ValueOf(a).Int() < reflect.ValueOf(b).Int()
		}, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return func(a, b any) bool {
			return reflect.ValueOf(a).Uint() < reflect.ValueOf(b).Uint()
		}, nil
	case reflect.Float32, reflect.Float64:
		return func(a, b any) bool {
			return reflect.ValueOf(a).Float() < reflect.ValueOf(b).Float()
		}, nil
	}
	return nil, fmt.Errorf("%w: %s has no ordering", ErrUnsupportedType, rType)
}
