package vardump

import (
	"reflect"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// kind is the closed classification of a value for rendering. Every value
// falls into exactly one kind; the renderer switches exhaustively over it.
type kind int

const (
	kindLeaf kind = iota
	kindComposite
	kindCollection
	kindCallable
)

// classify resolves v to the value actually rendered and its kind. Pointers
// and interfaces are followed; nil resolves to an invalid reflect.Value and
// renders as null. Ordered maps are recognized before reflection so their
// insertion order survives the walk.
func classify(v any) (reflect.Value, kind) {
	if om, ok := v.(*orderedmap.OrderedMap[string, any]); ok {
		if om == nil {
			return reflect.Value{}, kindLeaf
		}
		return reflect.ValueOf(om), kindCollection
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return reflect.Value{}, kindLeaf
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return rv, kindLeaf
	}
	switch rv.Kind() {
	case reflect.Struct:
		return rv, kindComposite
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv, kindCollection
	case reflect.Func:
		if rv.IsNil() {
			return reflect.Value{}, kindLeaf
		}
		return rv, kindCallable
	default:
		return rv, kindLeaf
	}
}
