// Package validation provides lightweight field validation helpers.
// Handlers collect violations into a map keyed by field name and surface it
// as the details of a validation_failed response.
package validation

import "strings"

type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

// First returns one violation as "field: reason", picking the given fields
// in order so callers control which failure wins. Used where a single
// blocking message is wanted.
func (v Violations) First(fields ...string) string {
	for _, f := range fields {
		if reason, ok := v[f]; ok {
			return f + ": " + reason
		}
	}
	for f, reason := range v {
		return f + ": " + reason
	}
	return ""
}

// Basic validators
func Required(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v[field] = "required"
	}
}

func NonZeroFloat(field string, val float64, v Violations) {
	if val == 0 {
		v[field] = "required"
	}
}

func NonNegativeFloat(field string, val float64, v Violations) {
	if val < 0 {
		v[field] = "must_not_be_negative"
	}
}

func Email(field, value string, v Violations) {
	value = strings.TrimSpace(value)
	if value == "" {
		v[field] = "required"
		return
	}
	at := strings.Index(value, "@")
	if at <= 0 || at == len(value)-1 || !strings.Contains(value[at:], ".") {
		v[field] = "invalid_email"
	}
}
