// Package apperr defines the error taxonomy the HTTP layer maps onto status
// codes: per-field validation errors, business-rule conflicts, and missing
// entities. Anything outside these types is treated as an infrastructure
// failure.
package apperr

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Validation carries per-field messages for a rejected create/update.
// Uniqueness conflicts are reported here as field-level errors, not as a
// generic failure.
type Validation struct {
	Fields map[string]string
}

func NewValidation() *Validation {
	return &Validation{Fields: map[string]string{}}
}

func (v *Validation) Add(field, message string) {
	v.Fields[field] = message
}

func (v *Validation) HasErrors() bool {
	return len(v.Fields) > 0
}

func (v *Validation) Error() string {
	fields := make([]string, 0, len(v.Fields))
	for f := range v.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f + ": " + v.Fields[f]
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Rule is a business-rule refusal, e.g. deleting a category that still has
// items. Distinct from validation: the input was well-formed, the operation
// is just not allowed right now.
type Rule struct {
	Message string
}

func (r *Rule) Error() string {
	return r.Message
}

// NotFound signals an operation on a missing id.
type NotFound struct {
	Entity string
	ID     string
}

func (n *NotFound) Error() string {
	return fmt.Sprintf("%s %s not found", n.Entity, n.ID)
}

func AsValidation(err error) (*Validation, bool) {
	var v *Validation
	ok := errors.As(err, &v)
	return v, ok
}

func AsRule(err error) (*Rule, bool) {
	var r *Rule
	ok := errors.As(err, &r)
	return r, ok
}

func AsNotFound(err error) (*NotFound, bool) {
	var n *NotFound
	ok := errors.As(err, &n)
	return n, ok
}
