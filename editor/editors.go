package editor

import (
	"net/url"
	"reflect"
	"time"
)

// defaultTimeLayouts are tried in order by TimeEditor when none are supplied.
var defaultTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// DurationEditor parses time.Duration text forms such as "1h30m".
type DurationEditor struct {
	value time.Duration
}

// SetText parses text as a duration
func (e *DurationEditor) SetText(text string) error {
	value, err := time.ParseDuration(text)
	if err != nil {
		return err
	}
	e.value = value
	return nil
}

// Value returns the parsed duration
func (e *DurationEditor) Value() any {
	return e.value
}

// TimeEditor parses timestamps trying each configured layout in order.
type TimeEditor struct {
	layouts []string
	value   time.Time
}

// NewTimeEditor returns a time editor, no layouts selects the default set
func NewTimeEditor(layouts ...string) *TimeEditor {
	if len(layouts) == 0 {
		layouts = defaultTimeLayouts
	}
	return &TimeEditor{layouts: layouts}
}

// SetText parses text trying each layout in order
func (e *TimeEditor) SetText(text string) error {
	var err error
	for _, layout := range e.layouts {
		var value time.Time
		if value, err = time.Parse(layout, text); err == nil {
			e.value = value
			return nil
		}
	}
	return err
}

// Value returns the parsed time
func (e *TimeEditor) Value() any {
	return e.value
}

// URLEditor parses absolute and relative URL text.
type URLEditor struct {
	value *url.URL
}

// SetText parses text as a URL
func (e *URLEditor) SetText(text string) error {
	value, err := url.Parse(text)
	if err != nil {
		return err
	}
	e.value = value
	return nil
}

// Value returns the parsed *url.URL
func (e *URLEditor) Value() any {
	return e.value
}

// RegisterDefaults registers the stock editors with registry.
func RegisterDefaults(registry *Registry) {
	registry.Register(reflect.TypeOf(time.Duration(0)), func() Editor { return &DurationEditor{} })
	registry.Register(reflect.TypeOf(time.Time{}), func() Editor { return NewTimeEditor() })
	registry.Register(reflect.TypeOf(&url.URL{}), func() Editor { return &URLEditor{} })
}
