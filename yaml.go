package vardump

import (
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

// ParseDocument decodes a YAML (or JSON) document into a variable store.
// The document must be a mapping; each top-level entry becomes one named
// variable. Decoding goes through the yaml.Node API so mapping order is
// preserved all the way down: nested mappings become ordered maps rather
// than Go's unordered builtin map.
func ParseDocument(data []byte) (*Vars, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	node := &root
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return NewVars(), nil
		}
		node = node.Content[0]
	}
	if node.Kind == 0 {
		// Empty input parses to a zero node.
		return NewVars(), nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: got %s", ErrNotMapping, nodeKindName(node.Kind))
	}
	vars := NewVars()
	active := make(map[*yaml.Node]bool)
	for i := 0; i+1 < len(node.Content); i += 2 {
		value, err := nodeValue(node.Content[i+1], active)
		if err != nil {
			return nil, err
		}
		vars.Set(node.Content[i].Value, value)
	}
	return vars, nil
}

// nodeValue converts a node to its Go value. active holds the anchor nodes
// currently being expanded, so an alias that re-enters its own anchor is
// reported as an error instead of recursing forever.
func nodeValue(n *yaml.Node, active map[*yaml.Node]bool) (any, error) {
	switch n.Kind {
	case yaml.MappingNode:
		om := orderedmap.New[string, any]()
		for i := 0; i+1 < len(n.Content); i += 2 {
			v, err := nodeValue(n.Content[i+1], active)
			if err != nil {
				return nil, err
			}
			om.Set(n.Content[i].Value, v)
		}
		return om, nil
	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := nodeValue(c, active)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case yaml.AliasNode:
		if active[n.Alias] {
			return nil, fmt.Errorf("%w: anchor %q expands through itself", ErrAliasCycle, n.Value)
		}
		active[n.Alias] = true
		v, err := nodeValue(n.Alias, active)
		delete(active, n.Alias)
		return v, err
	default:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil
	}
}

func nodeKindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.AliasNode:
		return "alias"
	default:
		return "scalar"
	}
}
