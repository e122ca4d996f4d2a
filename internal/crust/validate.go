package crust

import (
	"fmt"
	"strings"
)

// Validate checks a raw tool input against the endpoint's parameter schema
// and returns a normalized parameter map: strings trimmed, numbers coerced to
// float64, defaults applied. Unknown keys are ignored. The first violation is
// returned as a *ValidationError naming the field and constraint; nothing is
// ever built from a partially valid input.
func Validate(ep *Endpoint, input map[string]any) (map[string]any, error) {
	normalized := make(map[string]any, len(ep.Params))

	for _, p := range ep.Params {
		raw, present := input[p.Name]
		if !present || raw == nil {
			if p.Default != nil {
				normalized[p.Name] = p.Default
			} else if p.Required {
				return nil, &ValidationError{Field: p.Name, Constraint: "required parameter is missing"}
			}
			continue
		}

		val, err := checkParam(p, raw)
		if err != nil {
			return nil, err
		}
		if val != nil {
			normalized[p.Name] = val
		}
	}

	if len(ep.RequireOneOf) > 0 {
		found := false
		for _, n := range ep.RequireOneOf {
			v, ok := normalized[n]
			if !ok {
				continue
			}
			// A false boolean filter is a no-op, not a provided filter.
			if b, isBool := v.(bool); isBool && !b {
				continue
			}
			found = true
			break
		}
		if !found {
			return nil, &ValidationError{
				Field:      "filters",
				Constraint: fmt.Sprintf("at least one of %s must be provided", strings.Join(ep.RequireOneOf, ", ")),
			}
		}
	}

	return normalized, nil
}

// checkParam validates and normalizes a single present value.
// Returns nil (no error) for optional values that normalize to nothing.
func checkParam(p Param, raw any) (any, error) {
	switch p.Type {
	case TypeString:
		s, ok := raw.(string)
		if !ok {
			return nil, &ValidationError{Field: p.Name, Constraint: "must be a string"}
		}
		s = strings.TrimSpace(s)
		if s == "" {
			if p.Required {
				return nil, &ValidationError{Field: p.Name, Constraint: "must be a non-empty string"}
			}
			return nil, nil
		}
		if p.MaxLen > 0 && len([]rune(s)) > p.MaxLen {
			return nil, &ValidationError{Field: p.Name, Constraint: fmt.Sprintf("must be at most %d characters", p.MaxLen)}
		}
		if len(p.Enum) > 0 && !contains(p.Enum, s) {
			return nil, &ValidationError{Field: p.Name, Constraint: fmt.Sprintf("must be one of: %s", strings.Join(p.Enum, ", "))}
		}
		if p.RequireURL && !hasHTTPScheme(s) {
			return nil, &ValidationError{Field: p.Name, Constraint: "must include an http:// or https:// scheme"}
		}
		return s, nil

	case TypeNumber:
		f, ok := toFloat(raw)
		if !ok {
			return nil, &ValidationError{Field: p.Name, Constraint: "must be a number"}
		}
		if p.MinSet && f < p.Min {
			return nil, &ValidationError{Field: p.Name, Constraint: fmt.Sprintf("must be at least %s", formatNumber(p.Min))}
		}
		return f, nil

	case TypeBoolean:
		b, ok := raw.(bool)
		if !ok {
			return nil, &ValidationError{Field: p.Name, Constraint: "must be a boolean"}
		}
		return b, nil

	case TypeArray:
		items, ok := toStringSlice(raw)
		if !ok {
			return nil, &ValidationError{Field: p.Name, Constraint: "must be an array of strings"}
		}
		trimmed := make([]string, 0, len(items))
		for _, it := range items {
			it = strings.TrimSpace(it)
			if it == "" {
				return nil, &ValidationError{Field: p.Name, Constraint: "must not contain empty values"}
			}
			if len(p.Enum) > 0 && !contains(p.Enum, it) {
				return nil, &ValidationError{Field: p.Name, Constraint: fmt.Sprintf("each value must be one of: %s", strings.Join(p.Enum, ", "))}
			}
			if p.RequireURL && !hasHTTPScheme(it) {
				return nil, &ValidationError{Field: p.Name, Constraint: "each value must include an http:// or https:// scheme"}
			}
			trimmed = append(trimmed, it)
		}
		if p.MinItems > 0 && len(trimmed) < p.MinItems {
			return nil, &ValidationError{Field: p.Name, Constraint: fmt.Sprintf("must contain at least %d item(s)", p.MinItems)}
		}
		if p.MaxItems > 0 && len(trimmed) > p.MaxItems {
			return nil, &ValidationError{Field: p.Name, Constraint: fmt.Sprintf("must contain at most %d item(s)", p.MaxItems)}
		}
		if len(trimmed) == 0 && !p.Required {
			return nil, nil
		}
		return trimmed, nil
	}

	return nil, &ValidationError{Field: p.Name, Constraint: fmt.Sprintf("unsupported parameter type %q", p.Type)}
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func hasHTTPScheme(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// toFloat coerces the numeric representations seen from JSON decoding and
// direct Go callers to float64.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

// toStringSlice accepts []string or []any-of-strings (the shape mcp-go
// delivers for JSON arrays).
func toStringSlice(v any) ([]string, bool) {
	switch arr := v.(type) {
	case []string:
		return arr, true
	case []any:
		out := make([]string, 0, len(arr))
		for _, it := range arr {
			s, ok := it.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	}
	return nil, false
}
