package models

import (
	"errors"
	"sort"
	"strings"
)

// ValidationErrors collects field scoped validation messages so a response
// can report every invalid field in a single round trip.
type ValidationErrors map[string][]string

func NewValidationErrors() ValidationErrors {
	return make(ValidationErrors)
}

func (v ValidationErrors) Add(field, message string) {
	v[field] = append(v[field], message)
}

func (v ValidationErrors) Any() bool {
	return len(v) > 0
}

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return "validation failed: " + strings.Join(fields, ", ")
}

// AsValidationErrors unwraps err into a ValidationErrors map if it is one.
func AsValidationErrors(err error) (ValidationErrors, bool) {
	var verr ValidationErrors
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
