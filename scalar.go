package textconv

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/structy/textconv/editor"
)

var textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()

var timeType = reflect.TypeOf(time.Time{})

// convertScalar converts value to a scalar target. Non textual values pass
// through when already assignable, or when both sides are numeric kinds (the
// original value is returned unchanged, no widening or narrowing). Textual
// values run the strategy chain: enum lookup, text constructor, registered
// factory, then registered editor.
func (c *Converter) convertScalar(value any, target reflect.Type, name string) (any, error) {
	if value == nil {
		if target.Kind() == reflect.Bool {
			return reflect.Zero(target).Interface(), nil
		}
		return nil, nil
	}
	actual := reflect.TypeOf(value)
	if actual.AssignableTo(target) {
		return value, nil
	}
	if isNumeric(actual) && isNumeric(target) {
		return value, nil
	}
	text, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("%w: expected type '%s' for '%s', found '%s'", ErrTypeMismatch, target, name, actual)
	}
	return c.fromText(text, target, name)
}

func (c *Converter) fromText(text string, target reflect.Type, name string) (any, error) {
	if constants, ok := lookupEnum(target); ok {
		return enumValue(constants, text, target)
	}
	// a configured layout redefines the time text form, which would otherwise
	// be fixed by time.Time's own unmarshaler
	if c.timeLayout != "" && target == timeType {
		ed := editor.NewTimeEditor(c.timeLayout)
		if err := ed.SetText(text); err != nil {
			return nil, constructionError(text, target, err)
		}
		return ed.Value(), nil
	}
	if unmarshaler, ok := newTextUnmarshaler(target); ok {
		if err := unmarshaler.UnmarshalText([]byte(text)); err != nil {
			return nil, constructionError(text, target, err)
		}
		return reflect.ValueOf(unmarshaler).Elem().Interface(), nil
	}
	if parsed, ok, err := parseKind(text, target); ok {
		if err != nil {
			return nil, constructionError(text, target, err)
		}
		return parsed, nil
	}
	if factory, ok := lookupFactory(target); ok {
		parsed, err := factory(text)
		if err != nil {
			return nil, constructionError(text, target, err)
		}
		return parsed, nil
	}
	// construction strategies win over a registered editor, the editor is
	// consulted only when none of them applies
	if ed := c.editors.Lookup(target); ed != nil {
		if err := ed.SetText(text); err != nil {
			return nil, constructionError(text, target, err)
		}
		return ed.Value(), nil
	}
	return nil, fmt.Errorf("%w for type %s, field name %s", ErrNoStrategy, target, name)
}

// newTextUnmarshaler treats encoding.TextUnmarshaler as the target's own text
// constructor.
func newTextUnmarshaler(target reflect.Type) (encoding.TextUnmarshaler, bool) {
	if reflect.PointerTo(target).Implements(textUnmarshalerType) {
		return reflect.New(target).Interface().(encoding.TextUnmarshaler), true
	}
	return nil, false
}

// parseKind parses predeclared scalar kinds via strconv. Named types choose
// their own text form, so only unnamed targets qualify; a parse error on a
// qualifying target is a hard failure, not a fall through.
func parseKind(text string, target reflect.Type) (any, bool, error) {
	if target.PkgPath() != "" {
		return nil, false, nil
	}
	switch target.Kind() {
	case reflect.String:
		return text, true, nil
	case reflect.Bool:
		parsed, err := strconv.ParseBool(text)
		if err != nil {
			return nil, true, err
		}
		return parsed, true, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		parsed, err := strconv.ParseInt(text, 10, target.Bits())
		if err != nil {
			return nil, true, err
		}
		ret := reflect.New(target).Elem()
		ret.SetInt(parsed)
		return ret.Interface(), true, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		parsed, err := strconv.ParseUint(text, 10, target.Bits())
		if err != nil {
			return nil, true, err
		}
		ret := reflect.New(target).Elem()
		ret.SetUint(parsed)
		return ret.Interface(), true, nil
	case reflect.Float32, reflect.Float64:
		parsed, err := strconv.ParseFloat(text, target.Bits())
		if err != nil {
			return nil, true, err
		}
		ret := reflect.New(target).Elem()
		ret.SetFloat(parsed)
		return ret.Interface(), true, nil
	}
	return nil, false, nil
}
