package vardump

import (
	"errors"
	"fmt"
	"html"
	"io"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat   = errors.New("unsupported format")
	ErrInvalidAccessorKind = errors.New("invalid accessor kind")
	ErrNotMapping          = errors.New("document is not a mapping")
	ErrAliasCycle          = errors.New("alias cycle")
	ErrInvalidParam        = errors.New("invalid parameter")
)

// Format represents an output format.
type Format string

const (
	HTML Format = "html"
	Text Format = "text"
)

var formats = []Format{HTML, Text}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format string.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Write renders every variable in vars and writes the result to w.
func Write(w io.Writer, vars *Vars, opts ...Option) error {
	_, err := io.WriteString(w, Dump(vars, opts...))
	return err
}

// Dump renders every variable in vars and returns the result.
//
// In the HTML format the per-variable trees are wrapped in a styled
// <pre> container; the Text format returns the bare tree. An empty store
// renders a "no variables" placeholder instead of an empty container.
func Dump(vars *Vars, opts ...Option) string {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	o.normalize()

	r := newRenderer(o)
	if vars == nil || vars.Len() == 0 {
		r.line(0, "no variables")
	} else {
		for name, value := range vars.All() {
			r.render(name, value, parentCollection, 0)
		}
	}
	if o.Format == Text {
		return r.String()
	}

	var b strings.Builder
	b.WriteString(`<pre style="`)
	b.WriteString(html.EscapeString(o.Style))
	b.WriteString("\">\n")
	b.WriteString(r.String())
	b.WriteString("</pre>\n")
	return b.String()
}

// DumpValue renders a single named value without the enclosing container.
// The name is treated as a root variable, so the first line carries the
// $name accessor form.
func DumpValue(name string, value any, opts ...Option) string {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	o.normalize()

	r := newRenderer(o)
	r.render(name, value, parentCollection, 0)
	return r.String()
}
