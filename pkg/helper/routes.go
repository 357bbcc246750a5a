package helper

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// DefaultRoutes mirrors a conventional resource layout for articles.
func DefaultRoutes() map[string]string {
	return map[string]string{
		"root":         "/",
		"articles":     "/articles",
		"new_article":  "/articles/new",
		"article":      "/articles/{id}",
		"edit_article": "/articles/{id}/edit",
	}
}

// Param is implemented by values that know their own URL parameter.
type Param interface {
	ToParam() string
}

// Route is a named URL pattern. Placeholders use the {name} syntax.
type Route struct {
	Name    string
	Pattern string
	params  []string
}

// Params lists the placeholder names in order of appearance.
func (r Route) Params() []string {
	return append([]string(nil), r.params...)
}

// RouteTable resolves symbolic route names to paths.
type RouteTable struct {
	routes map[string]Route
}

// NewRouteTable validates every pattern and builds an immutable table.
func NewRouteTable(patterns map[string]string) (*RouteTable, error) {
	t := &RouteTable{routes: make(map[string]Route, len(patterns))}
	for name, pattern := range patterns {
		if name == "" {
			return nil, fmt.Errorf("route with empty name")
		}
		if !strings.HasPrefix(pattern, "/") {
			return nil, fmt.Errorf("route %s: pattern %q must start with /", name, pattern)
		}
		params, err := parsePattern(pattern)
		if err != nil {
			return nil, fmt.Errorf("route %s: %w", name, err)
		}
		t.routes[name] = Route{Name: name, Pattern: pattern, params: params}
	}
	return t, nil
}

// Lookup returns the named route. A trailing "_path" is ignored.
func (t *RouteTable) Lookup(name string) (Route, bool) {
	if t == nil {
		return Route{}, false
	}
	r, ok := t.routes[strings.TrimSuffix(name, "_path")]
	return r, ok
}

// Path builds the path for the named route.
// Params fill placeholders positionally; a single map fills them by name.
// Values implementing Param contribute their ToParam result.
func (t *RouteTable) Path(name string, params ...any) (string, error) {
	route, ok := t.Lookup(name)
	if !ok {
		return "", &UnknownOperationError{Name: name}
	}

	values, err := route.bind(params)
	if err != nil {
		return "", fmt.Errorf("route %s: %w", route.Name, err)
	}

	segments := strings.Split(route.Pattern, "/")
	for i, seg := range segments {
		if key, ok := placeholder(seg); ok {
			segments[i] = url.PathEscape(values[key])
		}
	}
	return strings.Join(segments, "/"), nil
}

// Routes returns every route sorted by name.
func (t *RouteTable) Routes() []Route {
	out := make([]Route, 0, len(t.routes))
	for _, r := range t.routes {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (r Route) bind(params []any) (map[string]string, error) {
	values := make(map[string]string, len(r.params))

	if len(params) == 1 {
		switch named := params[0].(type) {
		case map[string]string:
			for _, p := range r.params {
				v, ok := named[p]
				if !ok {
					return nil, fmt.Errorf("missing parameter %q", p)
				}
				values[p] = v
			}
			return values, nil
		case map[string]any:
			for _, p := range r.params {
				v, ok := named[p]
				if !ok {
					return nil, fmt.Errorf("missing parameter %q", p)
				}
				values[p] = paramString(v)
			}
			return values, nil
		}
	}

	if len(params) != len(r.params) {
		return nil, fmt.Errorf("expected %d parameters, got %d", len(r.params), len(params))
	}
	for i, p := range r.params {
		v := paramString(params[i])
		if v == "" {
			return nil, fmt.Errorf("parameter %q is empty", p)
		}
		values[p] = v
	}
	return values, nil
}

func paramString(v any) string {
	switch p := v.(type) {
	case Param:
		return p.ToParam()
	case string:
		return p
	default:
		return fmt.Sprint(p)
	}
}

func parsePattern(pattern string) ([]string, error) {
	var params []string
	seen := make(map[string]bool)
	for _, seg := range strings.Split(pattern, "/") {
		if strings.ContainsAny(seg, "{}") {
			key, ok := placeholder(seg)
			if !ok || key == "" {
				return nil, fmt.Errorf("malformed segment %q", seg)
			}
			if seen[key] {
				return nil, fmt.Errorf("duplicate parameter %q", key)
			}
			seen[key] = true
			params = append(params, key)
		}
	}
	return params, nil
}

func placeholder(seg string) (string, bool) {
	if len(seg) < 2 || seg[0] != '{' || seg[len(seg)-1] != '}' {
		return "", false
	}
	key := seg[1 : len(seg)-1]
	if strings.ContainsAny(key, "{}") {
		return "", false
	}
	return key, true
}
