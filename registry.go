package textconv

import (
	"errors"
	"reflect"
	"strings"
	"sync"
)

// Process wide strategy registries, populated during initialisation and
// treated as read only afterwards.
var (
	enums     sync.Map //map[reflect.Type]map[string]any
	factories sync.Map //map[reflect.Type]func(string) (any, error)
)

// RegisterEnum registers the named constants of T, making T convertible by
// name with upper and lower cased fallbacks.
func RegisterEnum[T comparable](constants map[string]T) {
	named := make(map[string]any, len(constants))
	for name, value := range constants {
		named[name] = value
	}
	enums.Store(typeFor[T](), named)
}

// RegisterFactory registers a text factory for T, the analogue of a static
// single string argument factory method.
func RegisterFactory[T any](factory func(text string) (T, error)) {
	factories.Store(typeFor[T](), func(text string) (any, error) {
		return factory(text)
	})
}

func lookupEnum(target reflect.Type) (map[string]any, bool) {
	value, ok := enums.Load(target)
	if !ok {
		return nil, false
	}
	return value.(map[string]any), true
}

func lookupFactory(target reflect.Type) (func(string) (any, error), bool) {
	value, ok := factories.Load(target)
	if !ok {
		return nil, false
	}
	return value.(func(string) (any, error)), true
}

// enumValue resolves text against registered constants: exact match first,
// then upper cased, then lower cased; a miss on all three is a hard failure.
func enumValue(constants map[string]any, text string, target reflect.Type) (any, error) {
	if value, ok := constants[text]; ok {
		return value, nil
	}
	if value, ok := constants[strings.ToUpper(text)]; ok {
		return value, nil
	}
	if value, ok := constants[strings.ToLower(text)]; ok {
		return value, nil
	}
	return nil, constructionError(text, target, errors.New("unknown constant"))
}
