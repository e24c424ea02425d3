package rulekit

import (
	json "github.com/goccy/go-json"
)

// Result accumulates the errors of one validation call. It is owned by a
// single call and is not safe for concurrent mutation.
type Result struct {
	errors []*Error
}

// NewResult returns an empty (valid) Result.
func NewResult() *Result { return &Result{} }

// IsValid reports whether no errors were recorded.
func (r *Result) IsValid() bool { return r == nil || len(r.errors) == 0 }

// Errors returns the errors in insertion order.
func (r *Result) Errors() []*Error {
	if r == nil {
		return nil
	}
	return append([]*Error(nil), r.errors...)
}

// AddError records an error whose template is translated and formatted by the
// top-level Validator call.
func (r *Result) AddError(template string, params map[string]any, valuePath ...any) *Result {
	r.errors = append(r.errors, NewError(template, params, valuePath...))
	return r
}

// AddErrorWithoutPostProcessing records an error whose message is final and
// must not be translated or formatted again.
func (r *Result) AddErrorWithoutPostProcessing(message string, params map[string]any, valuePath ...any) *Result {
	e := NewError(message, params, valuePath...)
	e.message, e.final = message, true
	r.errors = append(r.errors, e)
	return r
}

// AddErrors appends all errors of other, prefixing their paths with prefix.
func (r *Result) AddErrors(other *Result, prefix ...any) *Result {
	if other == nil {
		return r
	}
	p := normalizePath(prefix)
	for _, e := range other.errors {
		r.errors = append(r.errors, e.withPrefix(p))
	}
	return r
}

// ErrorMessages returns every message in insertion order.
func (r *Result) ErrorMessages() []string {
	out := make([]string, 0, len(r.errors))
	for _, e := range r.errors {
		out = append(out, e.Message())
	}
	return out
}

// ErrorMessagesIndexedByPath groups messages by rendered value path. An
// empty sep selects DefaultPathSeparator.
func (r *Result) ErrorMessagesIndexedByPath(sep string) map[string][]string {
	out := map[string][]string{}
	for _, e := range r.errors {
		k := e.Path(sep)
		out[k] = append(out[k], e.Message())
	}
	return out
}

// FirstErrorMessagesIndexedByPath keeps only the first message per path.
func (r *Result) FirstErrorMessagesIndexedByPath(sep string) map[string]string {
	out := map[string]string{}
	for _, e := range r.errors {
		k := e.Path(sep)
		if _, ok := out[k]; !ok {
			out[k] = e.Message()
		}
	}
	return out
}

// ErrorMessagesIndexedByProperty groups messages by the first path segment.
// Errors without a path are stored under the empty key.
func (r *Result) ErrorMessagesIndexedByProperty() map[string][]string {
	out := map[string][]string{}
	for _, e := range r.errors {
		k := firstSegment(e)
		out[k] = append(out[k], e.Message())
	}
	return out
}

// FirstErrorMessagesIndexedByProperty keeps only the first message per
// top-level property.
func (r *Result) FirstErrorMessagesIndexedByProperty() map[string]string {
	out := map[string]string{}
	for _, e := range r.errors {
		k := firstSegment(e)
		if _, ok := out[k]; !ok {
			out[k] = e.Message()
		}
	}
	return out
}

// IsPropertyValid reports whether no error targets property.
func (r *Result) IsPropertyValid(property string) bool {
	return len(r.PropertyErrors(property)) == 0
}

// PropertyErrors returns the errors whose first path segment is property.
func (r *Result) PropertyErrors(property string) []*Error {
	var out []*Error
	for _, e := range r.errors {
		if len(e.path) > 0 && firstSegment(e) == property {
			out = append(out, e)
		}
	}
	return out
}

// PropertyErrorMessages returns the messages of PropertyErrors.
func (r *Result) PropertyErrorMessages(property string) []string {
	var out []string
	for _, e := range r.PropertyErrors(property) {
		out = append(out, e.Message())
	}
	return out
}

// PropertyErrorMessagesIndexedByPath groups a property's messages by the path
// below the property.
func (r *Result) PropertyErrorMessagesIndexedByPath(property, sep string) map[string][]string {
	out := map[string][]string{}
	for _, e := range r.PropertyErrors(property) {
		k := FormatPath(e.path[1:], sep)
		out[k] = append(out[k], e.Message())
	}
	return out
}

// CommonErrorMessages returns messages of errors that target the validated
// value itself (empty path).
func (r *Result) CommonErrorMessages() []string {
	var out []string
	for _, e := range r.errors {
		if len(e.path) == 0 {
			out = append(out, e.Message())
		}
	}
	return out
}

// Equal reports whether both results hold structurally equal errors in the
// same order.
func (r *Result) Equal(o *Result) bool {
	a, b := r.Errors(), o.Errors()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// Err returns nil for a valid Result and a *ValidationError otherwise.
func (r *Result) Err() error {
	if r.IsValid() {
		return nil
	}
	return &ValidationError{Result: r}
}

// MarshalJSON encodes the path-indexed view.
func (r *Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.ErrorMessagesIndexedByPath(DefaultPathSeparator))
}

func firstSegment(e *Error) string {
	if len(e.path) == 0 {
		return ""
	}
	return segmentString(e.path[0])
}
