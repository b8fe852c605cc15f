package vardump

import (
	"fmt"
	"html/template"
	"strconv"
	"strings"
)

// FuncName is the name under which Register installs the dump function.
const FuncName = "dump"

// Register installs the dump function on t, bound to the given store.
func Register(t *template.Template, vars *Vars) *template.Template {
	return t.Funcs(vars.FuncMap())
}

// FuncMap returns a template.FuncMap exposing the store's dump function.
//
// The function accepts key=value parameter strings:
//
//	{{dump}}
//	{{dump "max_depth=3" "style=color: #600"}}
//	{{dump "format=text" "assign=report"}}
//
// Recognized parameters are max_depth (clamped to [MinMaxDepth,
// MaxMaxDepth]), style, format (html or text), and assign. With assign the
// rendered text is stored back into the variable store under the given name
// and the function produces no output.
func (v *Vars) FuncMap() template.FuncMap {
	return template.FuncMap{
		FuncName: func(params ...string) (template.HTML, error) {
			opts, assign, err := parseParams(params)
			if err != nil {
				return "", err
			}
			out := Dump(v, opts...)
			if assign != "" {
				v.Set(assign, out)
				return "", nil
			}
			return template.HTML(out), nil
		},
	}
}

// parseParams converts host-side key=value strings into options. Unknown
// keys and unparsable values are rejected here; out-of-range values are
// clamped by normalization, so the renderer never sees invalid
// configuration.
func parseParams(params []string) (opts []Option, assign string, err error) {
	for _, p := range params {
		key, val, ok := strings.Cut(p, "=")
		if !ok {
			return nil, "", fmt.Errorf("%w: %q is not key=value", ErrInvalidParam, p)
		}
		switch key {
		case "max_depth":
			n, convErr := strconv.Atoi(val)
			if convErr != nil {
				return nil, "", fmt.Errorf("%w: max_depth %q", ErrInvalidParam, val)
			}
			opts = append(opts, WithMaxDepth(n))
		case "style":
			opts = append(opts, WithStyle(val))
		case "format":
			f, parseErr := ParseFormat(val)
			if parseErr != nil {
				return nil, "", parseErr
			}
			opts = append(opts, WithFormat(f))
		case "assign":
			assign = val
		default:
			return nil, "", fmt.Errorf("%w: unknown key %q", ErrInvalidParam, key)
		}
	}
	return opts, assign, nil
}
