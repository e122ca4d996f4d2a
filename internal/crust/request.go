package crust

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// BuiltRequest is the structured description of the HTTP request an endpoint
// call would issue. It is derived purely from an Endpoint and a validated
// parameter map; identical input always yields an identical value.
type BuiltRequest struct {
	Tool   string
	Method string
	Path   string
	Query  url.Values
	Body   map[string]any
}

// URL renders the full request URL against a base URL. Query encoding is
// sorted by key, so the result is stable for identical input.
func (r *BuiltRequest) URL(baseURL string) string {
	u := strings.TrimRight(baseURL, "/") + r.Path
	if len(r.Query) > 0 {
		u += "?" + r.Query.Encode()
	}
	return u
}

// Build constructs a BuiltRequest from an endpoint descriptor and a
// normalized parameter map (the output of Validate). Parameters are placed
// per the schema: path segments substituted with escaping, query values
// encoded, body values carried through unchanged. Filter-typed parameters
// are folded into the upstream {filters: [...]} list in declaration order.
func Build(ep *Endpoint, params map[string]any) (*BuiltRequest, error) {
	path := ep.Path
	query := url.Values{}
	body := map[string]any{}
	var filters []map[string]any

	for _, p := range ep.Params {
		v, ok := params[p.Name]
		if !ok {
			continue
		}
		name := p.Name
		if p.WireName != "" {
			name = p.WireName
		}

		switch p.In {
		case InPath:
			path = strings.ReplaceAll(path, "{"+p.Name+"}", url.PathEscape(stringify(v)))

		case InQuery:
			if b, isBool := v.(bool); isBool {
				// Boolean query flags render only when set.
				if b {
					query.Set(name, "true")
				}
				continue
			}
			if arr, isArr := v.([]string); isArr {
				if p.JoinComma {
					query.Set(name, strings.Join(arr, ","))
				} else {
					for _, it := range arr {
						query.Add(name, it)
					}
				}
				continue
			}
			if s := stringify(v); s != "" {
				query.Set(name, s)
			}

		case InBody:
			if p.FilterType != "" {
				if b, isBool := v.(bool); isBool {
					// Boolean filters carry no value; false means absent.
					if b {
						filters = append(filters, map[string]any{
							"filter_type": p.FilterType,
						})
					}
					continue
				}
				filters = append(filters, map[string]any{
					"filter_type": p.FilterType,
					"type":        "in",
					"value":       wrapList(v),
				})
				continue
			}
			body[name] = v
		}
	}

	if len(filters) > 0 {
		body["filters"] = filters
	}
	if i := strings.IndexByte(path, '{'); i >= 0 {
		return nil, fmt.Errorf("endpoint %q: unresolved path parameter in %q", ep.Name, path)
	}
	if len(body) == 0 {
		body = nil
	}

	return &BuiltRequest{
		Tool:   ep.Name,
		Method: strings.ToUpper(ep.Method),
		Path:   path,
		Query:  query,
		Body:   body,
	}, nil
}

// stringify renders a normalized scalar value for path or query use.
// Arrays and booleans are handled by their placement branches in Build.
func stringify(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return formatNumber(val)
	case bool:
		return strconv.FormatBool(val)
	}
	return fmt.Sprint(v)
}

// formatNumber renders a float64 without a trailing ".0" for whole values,
// matching JSON number formatting.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// wrapList ensures a filter value is a list, as the search endpoints expect.
func wrapList(v any) any {
	if arr, ok := v.([]string); ok {
		return arr
	}
	return []any{v}
}
