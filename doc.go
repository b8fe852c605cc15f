// Package vardump renders named runtime values as a human-readable tree.
//
// Given a variable store (an insertion-ordered mapping of names to
// arbitrary values), the package walks each value recursively and emits one
// line per node showing its accessor path, a type annotation, and its value:
//
//	$user (object: User) = {
//	   ->Name (string) = Ada
//	   ->Tags (array) = [
//	      [0] (string) = admin
//	      ['home town'] (string) = London
//	   ]
//	}
//
// The central entry points are [Write] and [Dump], which accept a [Vars]
// store and functional options. [DumpValue] renders a single named value
// without the enclosing container.
//
// # Accessor Paths
//
// Each line starts with the path expression that reaches the node from its
// root variable: $name for a top-level variable, ->Member for a composite
// member, [n] for an integer index, ['a b'] for a collection key containing
// whitespace, and .key for any other collection key.
//
// # Classification
//
// Values are classified into exactly one of four kinds. Structs (and
// pointers to structs) are composites and expand their exported fields in
// declaration order. Slices, arrays, maps, and ordered maps are collections.
// Funcs are callables, summarized as function, method, or closure without
// recursion. Everything else is a leaf: booleans render as true/false, nil
// as null, channels and unsafe pointers as resource(kind), and other
// scalars in their default textual form.
//
// Recursion stops at the configured maximum depth; deeper branches render a
// single "(max depth reached)" line. The bound is purely depth-based and
// does not detect reference cycles, so a cyclic structure renders as a
// bounded repeating tree.
//
// # Formats
//
// The HTML format (default) wraps the tree in a styled <pre> container,
// separates lines with <br>, indents with a three-character non-breaking
// spacer per depth level, and HTML-escapes every interpolated string:
// keys, type names, values, and the container style. The Text format emits
// the same tree with plain newlines and spaces.
//
// # Configuration
//
// Dumps are configured with functional options:
//
//	vardump.Dump(vars,
//	    vardump.WithMaxDepth(3),
//	    vardump.WithFormat(vardump.Text),
//	)
//
// Out-of-range depths are clamped to [MinMaxDepth, MaxMaxDepth] and an
// empty style falls back to [DefaultStyle] before the walk starts.
//
// # Variable Stores
//
// [NewVars] builds a store by hand; [ParseDocument] decodes a YAML or JSON
// document into one, preserving mapping key order end to end. Rendering the
// same store twice with the same configuration yields byte-identical
// output: builtin map keys are sorted, and ordered maps keep insertion
// order.
//
// # Template Integration
//
// [Register] (or [Vars.FuncMap]) installs a dump function on an
// html/template, bound to a store:
//
//	t := template.New("page")
//	vardump.Register(t, vars)
//	t, _ = t.Parse(`{{dump "max_depth=5"}}`)
//
// The assign parameter redirects the rendered fragment into the store
// under a variable name instead of producing output.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrUnsupportedFormat] — unknown format string
//   - [ErrNotMapping] — document root is not a mapping
//   - [ErrAliasCycle] — a YAML alias expands through its own anchor
//   - [ErrInvalidParam] — malformed template parameter
//   - [ErrInvalidAccessorKind] — accessor builder contract violation (panic)
package vardump
