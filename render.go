package vardump

import (
	"fmt"
	"html"
	"reflect"
	"runtime"
	"sort"
	"strconv"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// renderer accumulates one walk's output. Each walk owns its renderer, so
// concurrent dumps over the same store never share state.
type renderer struct {
	b        strings.Builder
	maxDepth int
	indent   string
	sep      string
	esc      func(string) string
}

func newRenderer(o *Options) *renderer {
	r := &renderer{maxDepth: o.MaxDepth}
	switch o.Format {
	case Text:
		r.indent = "   "
		r.sep = "\n"
		r.esc = func(s string) string { return s }
	default:
		r.indent = "&nbsp;&nbsp;&nbsp;"
		r.sep = "<br>\n"
		r.esc = html.EscapeString
	}
	return r
}

func (r *renderer) String() string { return r.b.String() }

// line emits one output line at the given depth.
func (r *renderer) line(depth int, s string) {
	for range depth {
		r.b.WriteString(r.indent)
	}
	r.b.WriteString(s)
	r.b.WriteString(r.sep)
}

// render walks value and emits one line (or nested block) per node. Keys are
// escaped before the accessor is built so the path punctuation stays intact
// while key content cannot inject markup.
func (r *renderer) render(key string, value any, parent parentKind, depth int) {
	acc := buildAccessor(parent, r.esc(key), depth)
	if depth > r.maxDepth {
		r.line(depth, acc+" (max depth reached)")
		return
	}
	rv, k := classify(value)
	switch k {
	case kindComposite:
		r.renderComposite(acc, rv, depth)
	case kindCollection:
		r.renderCollection(acc, rv, depth)
	case kindCallable:
		r.renderCallable(acc, rv, depth)
	default:
		r.line(depth, fmt.Sprintf("%s (%s) = %s", acc, r.esc(typeLabel(rv)), r.esc(leafText(rv))))
	}
}

func (r *renderer) renderComposite(acc string, rv reflect.Value, depth int) {
	t := rv.Type()
	name := t.Name()
	if name == "" {
		name = t.String()
	}
	head := fmt.Sprintf("%s (object: %s) = {", acc, r.esc(name))

	var fields []int
	for i := range t.NumField() {
		if t.Field(i).IsExported() {
			fields = append(fields, i)
		}
	}
	if len(fields) == 0 {
		r.line(depth, head+"}")
		return
	}
	r.line(depth, head)
	for _, i := range fields {
		r.render(t.Field(i).Name, rv.Field(i).Interface(), parentComposite, depth+1)
	}
	r.line(depth, "}")
}

func (r *renderer) renderCollection(acc string, rv reflect.Value, depth int) {
	head := acc + " (array) = ["
	switch rv.Kind() {
	case reflect.Pointer:
		// Recognized by classify: *orderedmap.OrderedMap[string, any].
		om := rv.Interface().(*orderedmap.OrderedMap[string, any])
		if om.Len() == 0 {
			r.line(depth, head+"]")
			return
		}
		r.line(depth, head)
		for pair := om.Oldest(); pair != nil; pair = pair.Next() {
			r.render(pair.Key, pair.Value, parentCollection, depth+1)
		}
		r.line(depth, "]")
	case reflect.Map:
		// Builtin maps have no iteration order; sort entries so repeated
		// dumps of the same store are byte-identical. Keys are compared by
		// their textual form, with the value text breaking ties so distinct
		// keys that stringify identically still render deterministically.
		type entry struct {
			key   string
			value any
		}
		entries := make([]entry, 0, rv.Len())
		it := rv.MapRange()
		for it.Next() {
			entries = append(entries, entry{
				key:   fmt.Sprintf("%v", it.Key().Interface()),
				value: it.Value().Interface(),
			})
		}
		if len(entries) == 0 {
			r.line(depth, head+"]")
			return
		}
		sort.Slice(entries, func(i, j int) bool {
			if entries[i].key != entries[j].key {
				return entries[i].key < entries[j].key
			}
			return fmt.Sprint(entries[i].value) < fmt.Sprint(entries[j].value)
		})
		r.line(depth, head)
		for _, e := range entries {
			r.render(e.key, e.value, parentCollection, depth+1)
		}
		r.line(depth, "]")
	default: // slice or array
		n := rv.Len()
		if n == 0 {
			r.line(depth, head+"]")
			return
		}
		r.line(depth, head)
		for i := range n {
			r.render(strconv.Itoa(i), rv.Index(i).Interface(), parentCollection, depth+1)
		}
		r.line(depth, "]")
	}
}

func (r *renderer) renderCallable(acc string, rv reflect.Value, depth int) {
	label, text := callableInfo(rv)
	r.line(depth, fmt.Sprintf("%s (%s) = %s", acc, label, r.esc(text)))
}

// callableInfo classifies a func value as a function, method, or closure
// from its runtime symbol name. Method values carry a -fm suffix; function
// literals contain a .funcN segment.
func callableInfo(rv reflect.Value) (label, text string) {
	fn := runtime.FuncForPC(rv.Pointer())
	if fn == nil {
		return "closure", rv.Type().String()
	}
	name := fn.Name()
	switch {
	case strings.HasSuffix(name, "-fm"):
		return "method", strings.TrimSuffix(name, "-fm")
	case strings.Contains(name, ".func"):
		return "closure", rv.Type().String()
	default:
		return "function", name
	}
}

// typeLabel names a leaf value's type for the annotation.
func typeLabel(rv reflect.Value) string {
	if !rv.IsValid() {
		return "null"
	}
	switch rv.Kind() {
	case reflect.Bool:
		return "bool"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return "int"
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "uint"
	case reflect.Float32, reflect.Float64:
		return "float"
	case reflect.Complex64, reflect.Complex128:
		return "complex"
	case reflect.String:
		return "string"
	case reflect.Chan, reflect.UnsafePointer, reflect.Uintptr:
		return "resource"
	default:
		return rv.Type().String()
	}
}

// leafText renders a leaf value to its textual form.
func leafText(rv reflect.Value) string {
	if !rv.IsValid() {
		return "null"
	}
	switch rv.Kind() {
	case reflect.Bool:
		if rv.Bool() {
			return "true"
		}
		return "false"
	case reflect.Chan:
		return "resource(" + rv.Type().String() + ")"
	case reflect.UnsafePointer:
		return "resource(unsafe.Pointer)"
	case reflect.Uintptr:
		return "resource(uintptr)"
	default:
		return fmt.Sprintf("%v", rv.Interface())
	}
}
