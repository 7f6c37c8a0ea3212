package textconv

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/magiconair/properties"
	"github.com/structy/textconv/editor"
)

var emptyStructType = reflect.TypeOf(struct{}{})

// Converter is the conversion entry point. It is stateless per call and safe
// for concurrent use provided the strategy registries are populated before
// first use and never mutated afterwards.
type Converter struct {
	editors    *editor.Registry
	timeLayout string
}

// New creates a converter with the provided options
func New(options ...Option) *Converter {
	ret := &Converter{editors: editor.Default}
	Options(options).Apply(ret)
	return ret
}

var defaultConverter = New()

// Convert converts value to target using the default converter, name is used
// only in diagnostics.
func Convert(value any, target *Type, name string) (any, error) {
	return defaultConverter.Convert(value, target, name)
}

// As converts value to T using the default converter.
func As[T any](value any, name string) (T, error) {
	var zero T
	converted, err := Convert(value, TypeOf(typeFor[T]()), name)
	if err != nil {
		return zero, err
	}
	if converted == nil {
		return zero, nil
	}
	ret, ok := converted.(T)
	if !ok {
		return zero, fmt.Errorf("%w: expected type '%s' for '%s', found '%s'", ErrTypeMismatch, typeFor[T](), name, reflect.TypeOf(converted))
	}
	return ret, nil
}

// Convert converts value to target. Scalar targets run the strategy chain,
// container targets parse text and convert each element recursively; the
// first element failure aborts the whole conversion.
func (c *Converter) Convert(value any, target *Type, name string) (any, error) {
	if target == nil {
		return nil, fmt.Errorf("%w: <nil>", ErrUnsupportedType)
	}
	switch target.kind {
	case KindScalar:
		if err := ensureScalar(target); err != nil {
			return nil, err
		}
		return c.convertScalar(value, target.rType, name)
	case KindList, KindSet, KindSortedSet:
		text, ok, err := textOf(value, target, name)
		if err != nil || !ok {
			return nil, err
		}
		return c.convertCollection(text, target, name)
	case KindMap, KindSortedMap:
		text, ok, err := textOf(value, target, name)
		if err != nil || !ok {
			return nil, err
		}
		return c.convertMapping(text, target, name)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, target)
}

// textOf extracts the textual payload for a container target, nil input
// converts to nil regardless of the container shape.
func textOf(value any, target *Type, name string) (string, bool, error) {
	if value == nil {
		return "", false, nil
	}
	text, ok := value.(string)
	if !ok {
		return "", false, fmt.Errorf("%w: expected type '%s' for '%s', found '%s'", ErrTypeMismatch, target, name, reflect.TypeOf(value))
	}
	return text, true, nil
}

func ensureScalar(target *Type) error {
	if target.rType == nil {
		return fmt.Errorf("%w: %s", ErrUnsupportedType, target)
	}
	switch target.rType.Kind() {
	case reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return fmt.Errorf("%w: %s", ErrUnsupportedType, target)
	}
	return nil
}

func (c *Converter) convertCollection(text string, target *Type, name string) (any, error) {
	tokens := splitElements(text)
	switch target.kind {
	case KindList:
		slice := reflect.MakeSlice(reflect.SliceOf(target.elem), 0, len(tokens))
		for _, token := range tokens {
			item, err := c.convertScalar(token, target.elem, name)
			if err != nil {
				return nil, err
			}
			slice = reflect.Append(slice, reflect.ValueOf(item))
		}
		return slice.Interface(), nil
	case KindSet:
		if !target.elem.Comparable() {
			return nil, fmt.Errorf("%w: %s element is not comparable", ErrUnsupportedType, target)
		}
		set := reflect.MakeMapWithSize(reflect.MapOf(target.elem, emptyStructType), len(tokens))
		for _, token := range tokens {
			item, err := c.convertScalar(token, target.elem, name)
			if err != nil {
				return nil, err
			}
			set.SetMapIndex(reflect.ValueOf(item), reflect.ValueOf(struct{}{}))
		}
		return set.Interface(), nil
	case KindSortedSet:
		less, err := lessOf(target.elem)
		if err != nil {
			return nil, err
		}
		seen := make(map[any]struct{}, len(tokens))
		items := make([]any, 0, len(tokens))
		for _, token := range tokens {
			item, err := c.convertScalar(token, target.elem, name)
			if err != nil {
				return nil, err
			}
			if _, ok := seen[item]; ok {
				continue
			}
			seen[item] = struct{}{}
			items = append(items, item)
		}
		sort.Slice(items, func(i, j int) bool {
			return less(items[i], items[j])
		})
		slice := reflect.MakeSlice(reflect.SliceOf(target.elem), 0, len(items))
		for _, item := range items {
			slice = reflect.Append(slice, reflect.ValueOf(item))
		}
		return slice.Interface(), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, target)
}

func (c *Converter) convertMapping(text string, target *Type, name string) (any, error) {
	loader := &properties.Loader{Encoding: properties.UTF8, DisableExpansion: true}
	props, err := loader.LoadBytes([]byte(text))
	if err != nil {
		return nil, constructionError(text, target, err)
	}
	if target.kind == KindSortedMap {
		less, err := lessOf(target.key)
		if err != nil {
			return nil, err
		}
		ret := newSortedMap(less)
		for _, rawKey := range props.Keys() {
			rawValue, _ := props.Get(rawKey)
			key, err := c.convertScalar(rawKey, target.key, name)
			if err != nil {
				return nil, err
			}
			value, err := c.convertScalar(rawValue, target.elem, name)
			if err != nil {
				return nil, err
			}
			ret.Put(key, value)
		}
		return ret, nil
	}
	if !target.key.Comparable() {
		return nil, fmt.Errorf("%w: %s key is not comparable", ErrUnsupportedType, target)
	}
	ret := reflect.MakeMapWithSize(reflect.MapOf(target.key, target.elem), props.Len())
	for _, rawKey := range props.Keys() {
		rawValue, _ := props.Get(rawKey)
		key, err := c.convertScalar(rawKey, target.key, name)
		if err != nil {
			return nil, err
		}
		value, err := c.convertScalar(rawValue, target.elem, name)
		if err != nil {
			return nil, err
		}
		ret.SetMapIndex(reflect.ValueOf(key), reflect.ValueOf(value))
	}
	return ret.Interface(), nil
}
