package editor

import (
	"net/url"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingEditor struct {
	value string
}

func (e *countingEditor) SetText(text string) error {
	e.value = text
	return nil
}

func (e *countingEditor) Value() any {
	return e.value
}

func TestRegistryLookup(t *testing.T) {
	registry := &Registry{}
	target := reflect.TypeOf(countingEditor{})

	assert.Nil(t, registry.Lookup(target))

	registry.Register(target, func() Editor { return &countingEditor{} })

	first := registry.Lookup(target)
	second := registry.Lookup(target)
	if first == nil || second == nil {
		t.Fatalf("Expected editors, got %v, %v", first, second)
	}
	// each lookup yields a fresh stateful instance
	assert.Nil(t, first.SetText("one"))
	assert.Nil(t, second.SetText("two"))
	assert.Equal(t, "one", first.Value())
	assert.Equal(t, "two", second.Value())
}

func TestDurationEditor(t *testing.T) {
	testCases := []struct {
		name     string
		text     string
		expected time.Duration
		wantErr  bool
	}{
		{"minutes", "90m", 90 * time.Minute, false},
		{"composite", "1h30m", 90 * time.Minute, false},
		{"invalid", "soon", 0, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ed := &DurationEditor{}
			err := ed.SetText(tc.text)
			if tc.wantErr {
				assert.NotNil(t, err)
				return
			}
			if err != nil {
				t.Fatalf("SetText error: %v", err)
			}
			assert.Equal(t, tc.expected, ed.Value())
		})
	}
}

func TestTimeEditor(t *testing.T) {
	expected := time.Date(2023, 1, 15, 12, 30, 45, 0, time.UTC)
	testCases := []struct {
		name string
		text string
	}{
		{"RFC3339", "2023-01-15T12:30:45Z"},
		{"no zone", "2023-01-15T12:30:45"},
		{"space separated", "2023-01-15 12:30:45"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ed := NewTimeEditor()
			if err := ed.SetText(tc.text); err != nil {
				t.Fatalf("SetText error: %v", err)
			}
			assert.True(t, expected.Equal(ed.Value().(time.Time)))
		})
	}

	ed := NewTimeEditor("2006-01-02")
	assert.Nil(t, ed.SetText("2023-01-15"))
	assert.NotNil(t, ed.SetText("15/01/2023"))
}

func TestURLEditor(t *testing.T) {
	ed := &URLEditor{}
	if err := ed.SetText("https://example.com/path?q=1"); err != nil {
		t.Fatalf("SetText error: %v", err)
	}
	parsed := ed.Value().(*url.URL)
	assert.Equal(t, "example.com", parsed.Host)
	assert.NotNil(t, ed.SetText("://missing-scheme"))
}

func TestRegisterDefaults(t *testing.T) {
	registry := &Registry{}
	RegisterDefaults(registry)

	assert.NotNil(t, registry.Lookup(reflect.TypeOf(time.Duration(0))))
	assert.NotNil(t, registry.Lookup(reflect.TypeOf(time.Time{})))
	assert.NotNil(t, registry.Lookup(reflect.TypeOf(&url.URL{})))
}
