package textconv

import "github.com/structy/textconv/editor"

//Option converter option
type Option func(c *Converter)

//Options represents converter options
type Options []Option

//Apply applies options
func (o Options) Apply(c *Converter) {
	if len(o) == 0 {
		return
	}
	for _, opt := range o {
		opt(c)
	}
}

//WithEditors overrides the editor registry consulted as the fallback strategy
func WithEditors(registry *editor.Registry) Option {
	return func(c *Converter) {
		c.editors = registry
	}
}

//WithTimeLayout sets the layout used for time targets, overriding the default text forms
func WithTimeLayout(layout string) Option {
	return func(c *Converter) {
		c.timeLayout = layout
	}
}
