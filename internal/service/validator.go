// Package service holds the intake pipeline: validation, persistence, file
// handling and support notifications. Handlers in internal/controller only
// translate between HTTP and these calls.
package service

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"landing_backend/internal/apperr"
)

// Fields is a submitted form with trimmed values.
type Fields map[string]string

// ValidationError lists every rejected field with a short reason.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	msgs := make([]string, 0, len(names))
	for _, name := range names {
		msgs = append(msgs, fmt.Sprintf("%s %s", name, e.Fields[name]))
	}
	return strings.Join(msgs, "; ")
}

// Validator checks field maps against go-playground/validator tags.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate trims every value named in rules and checks it against its tag. Keys
// not named in rules are passed through trimmed.
func (v *Validator) Validate(fields map[string]string, rules map[string]string) (Fields, error) {
	out, verr := v.check(fields, rules)
	if verr != nil {
		return nil, apperr.Validation.Wrap(verr)
	}
	return out, nil
}

func (v *Validator) check(fields map[string]string, rules map[string]string) (Fields, *ValidationError) {
	out := make(Fields, len(fields))
	for key, val := range fields {
		out[key] = strings.TrimSpace(val)
	}

	data := make(map[string]interface{}, len(rules))
	tags := make(map[string]interface{}, len(rules))
	for key, tag := range rules {
		data[key] = out[key]
		tags[key] = tag
	}

	failed := v.validate.ValidateMap(data, tags)
	if len(failed) == 0 {
		return out, nil
	}

	verr := &ValidationError{Fields: make(map[string]string, len(failed))}
	for key, err := range failed {
		verr.Fields[key] = reason(err)
	}
	return out, verr
}

// requireKeys is Validate with a plain "required" rule for each key.
func (v *Validator) requireKeys(fields map[string]string, keys ...string) (Fields, error) {
	rules := make(map[string]string, len(keys))
	for _, key := range keys {
		rules[key] = "required"
	}
	return v.Validate(fields, rules)
}

func reason(err interface{}) string {
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok || len(fieldErrs) == 0 {
		return "is invalid"
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	default:
		return fmt.Sprintf("failed on '%s'", fe.Tag())
	}
}
