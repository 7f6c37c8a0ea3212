package textconv

import (
	"reflect"
)

var stringType = reflect.TypeOf("")

// Kind discriminates the shape of a target type descriptor.
type Kind int

const (
	//KindScalar single non container type
	KindScalar = Kind(iota)
	//KindList insertion ordered sequence
	KindList
	//KindSet unordered unique elements
	KindSet
	//KindSortedSet unique elements in ascending order
	KindSortedSet
	//KindMap hash ordered key/value mapping
	KindMap
	//KindSortedMap key ordered mapping
	KindSortedMap
)

// Type describes a conversion target: either a scalar type or a container
// shape parameterized with scalar element types. Absent element types
// default to string.
type Type struct {
	kind  Kind
	rType reflect.Type
	key   reflect.Type
	elem  reflect.Type
}

// Kind returns descriptor shape
func (t *Type) Kind() Kind {
	return t.kind
}

// Elem returns element type for container shapes, value type for mappings
func (t *Type) Elem() reflect.Type {
	return t.elem
}

// Key returns key type for mapping shapes
func (t *Type) Key() reflect.Type {
	return t.key
}

func (t *Type) String() string {
	switch t.kind {
	case KindList:
		return "List[" + t.elem.String() + "]"
	case KindSet:
		return "Set[" + t.elem.String() + "]"
	case KindSortedSet:
		return "SortedSet[" + t.elem.String() + "]"
	case KindMap:
		return "Map[" + t.key.String() + "," + t.elem.String() + "]"
	case KindSortedMap:
		return "SortedMap[" + t.key.String() + "," + t.elem.String() + "]"
	}
	if t.rType == nil {
		return "<nil>"
	}
	return t.rType.String()
}

// Scalar returns a scalar descriptor for rType
func Scalar(rType reflect.Type) *Type {
	return &Type{kind: KindScalar, rType: rType}
}

// ScalarFor returns a scalar descriptor for T
func ScalarFor[T any]() *Type {
	return Scalar(typeFor[T]())
}

// ListOf returns a list descriptor, nil elem defaults to string
func ListOf(elem reflect.Type) *Type {
	return &Type{kind: KindList, elem: orString(elem)}
}

// SetOf returns a set descriptor, nil elem defaults to string
func SetOf(elem reflect.Type) *Type {
	return &Type{kind: KindSet, elem: orString(elem)}
}

// SortedSetOf returns a sorted set descriptor, nil elem defaults to string
func SortedSetOf(elem reflect.Type) *Type {
	return &Type{kind: KindSortedSet, elem: orString(elem)}
}

// MapOf returns a mapping descriptor, nil key or value defaults to string
func MapOf(key, value reflect.Type) *Type {
	return &Type{kind: KindMap, key: orString(key), elem: orString(value)}
}

// SortedMapOf returns a key ordered mapping descriptor, nil key or value defaults to string
func SortedMapOf(key, value reflect.Type) *Type {
	return &Type{kind: KindSortedMap, key: orString(key), elem: orString(value)}
}

// TypeOf bridges a native Go type to a descriptor: slices map to lists,
// maps to mappings, anything else is treated as a scalar.
func TypeOf(rType reflect.Type) *Type {
	switch rType.Kind() {
	case reflect.Slice:
		return ListOf(rType.Elem())
	case reflect.Map:
		return MapOf(rType.Key(), rType.Elem())
	}
	return Scalar(rType)
}

func orString(rType reflect.Type) reflect.Type {
	if rType == nil {
		return stringType
	}
	return rType
}

func typeFor[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

func isNumeric(rType reflect.Type) bool {
	switch rType.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
