// Package editor provides a process wide registry of per type text editors,
// stateful handlers that parse text into a value of their target type.
// Populate the registry during initialisation and treat it as read only
// afterwards; the conversion engine only ever reads it.
package editor

import (
	"reflect"
	"sync"
)

// Editor parses text into a value of its target type.
type Editor interface {
	//SetText parses text, retaining the resulting value
	SetText(text string) error
	//Value returns the most recently parsed value
	Value() any
}

// Provider creates a fresh editor instance.
type Provider func() Editor

// Registry maps a target type to an editor provider.
type Registry struct {
	providers sync.Map //map[reflect.Type]Provider
}

// Register registers provider for target
func (r *Registry) Register(target reflect.Type, provider Provider) {
	r.providers.Store(target, provider)
}

// Lookup returns a fresh editor for target, or nil when none is registered
func (r *Registry) Lookup(target reflect.Type) Editor {
	value, ok := r.providers.Load(target)
	if !ok {
		return nil
	}
	return value.(Provider)()
}

// Default is the process wide registry.
var Default = &Registry{}

// Register registers provider for target with the default registry
func Register(target reflect.Type, provider Provider) {
	Default.Register(target, provider)
}

// RegisterFor registers provider for T with the default registry
func RegisterFor[T any](provider Provider) {
	Default.Register(reflect.TypeOf((*T)(nil)).Elem(), provider)
}

// Lookup returns a fresh editor for target from the default registry
func Lookup(target reflect.Type) Editor {
	return Default.Lookup(target)
}
