package rulekit

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/reoring/rulekit/i18n"
)

// Error is a single validation failure: a message template, the parameters
// substituted into it and the path of the offending value.
type Error struct {
	template string
	params   map[string]any
	path     []any // string | int segments
	message  string
	final    bool // message already translated and formatted
}

// NewError builds an Error. Path segments must be strings or ints.
func NewError(template string, params map[string]any, valuePath ...any) *Error {
	return &Error{template: template, params: params, path: normalizePath(valuePath)}
}

// Template returns the untranslated message template.
func (e *Error) Template() string { return e.template }

// Params returns the template parameters.
func (e *Error) Params() map[string]any { return e.params }

// ValuePath returns a copy of the path segments.
func (e *Error) ValuePath() []any { return append([]any(nil), e.path...) }

// Path renders the value path with sep, escaping segments that contain it.
func (e *Error) Path(sep string) string { return FormatPath(e.path, sep) }

// Message returns the final message. Errors produced by a top-level
// Validator call are translated and formatted; raw errors are formatted with
// the default formatter.
func (e *Error) Message() string {
	if e.final {
		return e.message
	}
	return i18n.DefaultFormatter.Format(e.template, e.params, i18n.DefaultLocale)
}

// Equal reports structural equality: template, params and path.
func (e *Error) Equal(o *Error) bool {
	if e == nil || o == nil {
		return e == o
	}
	return e.template == o.template &&
		reflect.DeepEqual(e.params, o.params) &&
		reflect.DeepEqual(e.path, o.path) &&
		e.Message() == o.Message()
}

func (e *Error) withPrefix(prefix []any) *Error {
	if len(prefix) == 0 {
		return e
	}
	cp := *e
	cp.path = make([]any, 0, len(prefix)+len(e.path))
	cp.path = append(cp.path, prefix...)
	cp.path = append(cp.path, e.path...)
	return &cp
}

func normalizePath(segs []any) []any {
	if len(segs) == 0 {
		return nil
	}
	out := make([]any, 0, len(segs))
	for _, s := range segs {
		switch v := s.(type) {
		case string, int:
			out = append(out, v)
		case int64:
			out = append(out, int(v))
		default:
			out = append(out, fmt.Sprint(v))
		}
	}
	return out
}

// ValidationError wraps an invalid Result so it can travel as an error.
type ValidationError struct {
	Result *Result
}

// Error summarizes the first few failures.
func (e *ValidationError) Error() string {
	if e == nil || e.Result == nil || e.Result.IsValid() {
		return "validation failed"
	}
	const maxShown = 3
	errs := e.Result.Errors()
	b := &strings.Builder{}
	b.WriteString("validation failed: ")
	lim := min(len(errs), maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		if p := errs[i].Path(DefaultPathSeparator); p != "" {
			fmt.Fprintf(b, "%s: ", p)
		}
		b.WriteString(errs[i].Message())
	}
	if n := len(errs); n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AsValidationError extracts a ValidationError from err using errors.As.
func AsValidationError(err error) (*ValidationError, bool) {
	if err == nil {
		return nil, false
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// Programmer errors. They are never produced by bad input data.
var (
	ErrUnexpectedRule = errors.New("rulekit: unexpected rule type")
	ErrInvalidConfig  = errors.New("rulekit: invalid rule configuration")
)

// UnexpectedRuleError reports a handler invoked with a rule it cannot handle.
type UnexpectedRuleError struct {
	Expected string
	Got      string
}

func (e *UnexpectedRuleError) Error() string {
	return fmt.Sprintf("rulekit: expected rule %s, got %s", e.Expected, e.Got)
}

func (e *UnexpectedRuleError) Unwrap() error { return ErrUnexpectedRule }

// NewUnexpectedRuleError builds an UnexpectedRuleError from the expected rule
// value (any instance of the type) and the rule actually received.
func NewUnexpectedRuleError(expected any, got Rule) error {
	return &UnexpectedRuleError{Expected: TypeName(expected), Got: TypeName(got)}
}

// ConfigError reports a malformed rule configuration.
type ConfigError struct {
	Rule   string
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Rule == "" {
		return "rulekit: invalid configuration: " + e.Reason
	}
	return fmt.Sprintf("rulekit: invalid %s configuration: %s", e.Rule, e.Reason)
}

func (e *ConfigError) Unwrap() error { return ErrInvalidConfig }

// NewConfigError formats a ConfigError for the named rule.
func NewConfigError(rule, format string, args ...any) error {
	return &ConfigError{Rule: rule, Reason: fmt.Sprintf(format, args...)}
}

// TypeName returns a short, human-readable type name used in {type}
// message parameters.
func TypeName(v any) string {
	if v == nil {
		return "nil"
	}
	return reflect.TypeOf(v).String()
}
