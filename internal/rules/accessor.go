// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rules

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Accessor is any recipe representation the engine can evaluate. Field
// returns the value stored under a snake_case field name and whether the
// field is present. types.Recipe and types.Record both implement it.
type Accessor interface {
	Field(name string) (any, bool)
}

// Text returns a text field. A missing field yields "" and true, matching
// the empty-string default for text fields. A present value that is not
// text yields false.
func Text(r Accessor, name string) (string, bool) {
	v, ok := r.Field(name)
	if !ok {
		return "", true
	}
	switch s := v.(type) {
	case string:
		return s, true
	case []string:
		return strings.Join(s, ","), true
	case []any:
		parts := make([]string, 0, len(s))
		for _, p := range s {
			str, ok := p.(string)
			if !ok {
				return "", false
			}
			parts = append(parts, str)
		}
		return strings.Join(parts, ","), true
	case fmt.Stringer:
		return s.String(), true
	}
	return "", false
}

// Number returns a numeric field, coercing text. A missing field yields 0.
// A nil, non-numeric or NaN value fails the coercion.
func Number(r Accessor, name string) (float64, bool) {
	v, ok := r.Field(name)
	if !ok {
		return 0, true
	}
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case int32:
		f = float64(n)
	case uint:
		f = float64(n)
	case uint64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) {
		return 0, false
	}
	return f, true
}
