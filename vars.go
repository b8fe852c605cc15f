package vardump

import (
	"iter"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Vars is an insertion-ordered mapping of variable names to values. It plays
// the role of a template engine's variable store: dumps walk it in the order
// names were first set, and the store is what the assign parameter writes
// back into.
type Vars struct {
	om *orderedmap.OrderedMap[string, any]
}

// NewVars returns an empty store.
func NewVars() *Vars {
	return &Vars{om: orderedmap.New[string, any]()}
}

// Set stores value under name and returns the store for chaining. A name
// that already exists keeps its original position.
func (v *Vars) Set(name string, value any) *Vars {
	v.om.Set(name, value)
	return v
}

// Get returns the value stored under name.
func (v *Vars) Get(name string) (any, bool) {
	return v.om.Get(name)
}

// Len returns the number of stored variables.
func (v *Vars) Len() int {
	return v.om.Len()
}

// All iterates name/value pairs in insertion order.
func (v *Vars) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for pair := v.om.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}
