package vardump

import (
	"strings"
	"unicode"
)

// parentKind tells the accessor builder which syntax reaches a child key.
type parentKind int

const (
	parentRoot parentKind = iota // valid only at depth 0
	parentComposite
	parentCollection
)

// buildAccessor returns the path fragment identifying key under a parent of
// the given kind. Depth 0 always produces the root-variable form $key.
// Composite members use ->key. Collection elements use [n] for integer
// indices, ['k'] for keys containing whitespace, and .k otherwise.
//
// A kind outside the enumeration panics with ErrInvalidAccessorKind: the
// renderer classifies every parent exhaustively, so reaching the panic means
// a defect in the caller, not bad input.
func buildAccessor(parent parentKind, key string, depth int) string {
	if depth == 0 {
		return "$" + key
	}
	switch parent {
	case parentComposite:
		return "->" + key
	case parentCollection:
		switch {
		case isIndex(key):
			return "[" + key + "]"
		case strings.ContainsFunc(key, unicode.IsSpace):
			return "['" + key + "']"
		default:
			return "." + key
		}
	default:
		panic(ErrInvalidAccessorKind)
	}
}

// isIndex reports whether key is a valid non-negative integer index.
func isIndex(key string) bool {
	if key == "" {
		return false
	}
	for _, r := range key {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
