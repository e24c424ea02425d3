package rulekit

import (
	"sort"
)

// Rule is an immutable description of a constraint. Concrete rules are plain
// struct values; their handler does the actual checking.
type Rule interface {
	Handler() RuleHandler
}

// NamedRule exposes a stable, snake_case rule name. It is used by
// MapHandlerResolver overrides and by ruleconf.
type NamedRule interface {
	Rule
	Name() string
}

// RuleHandler checks a value against a rule. Validation failures are returned
// in the Result; a non-nil error signals a programmer error (for example a
// handler invoked with a rule of the wrong type).
type RuleHandler interface {
	Validate(value any, rule Rule, ctx *ValidationContext) (*Result, error)
}

// RuleHandlerFunc adapts a function to RuleHandler.
type RuleHandlerFunc func(value any, rule Rule, ctx *ValidationContext) (*Result, error)

// Validate calls f.
func (f RuleHandlerFunc) Validate(value any, rule Rule, ctx *ValidationContext) (*Result, error) {
	return f(value, rule, ctx)
}

// WhenFunc decides at validation time whether a rule applies.
type WhenFunc func(value any, ctx *ValidationContext) bool

// SkipOnEmptyRule is implemented by rules that may be skipped for empty
// values. A nil condition means "use the validator default".
type SkipOnEmptyRule interface {
	Rule
	SkipOnEmptyCondition() EmptyCondition
}

// SkipOnErrorRule is implemented by rules that may be skipped when an earlier
// rule for the same value already failed.
type SkipOnErrorRule interface {
	Rule
	ShouldSkipOnError() bool
}

// WhenRule is implemented by rules carrying a conditional.
type WhenRule interface {
	Rule
	WhenCondition() WhenFunc
}

// RulesProvider is implemented by data objects that declare their own rules.
// Validator.Validate uses them when called with nil rules; rules.Nested uses
// them when configured without rules.
type RulesProvider interface {
	Rules() RuleSet
}

// PropertyLabelsProvider is implemented by data objects that supply display
// labels for their properties ({property} and {Property} placeholders).
type PropertyLabelsProvider interface {
	PropertyLabels() map[string]string
}

// PostValidationHook is implemented by data objects that want to observe the
// final Result of a top-level validation.
type PostValidationHook interface {
	ProcessValidationResult(res *Result)
}

// RuleSet maps property names to the rules applied to them. The empty key
// targets the validated value itself.
type RuleSet map[string][]Rule

// Keys returns the keys in processing order: the empty key first, then the
// remaining keys in ascending order.
func (rs RuleSet) Keys() []string {
	keys := make([]string, 0, len(rs))
	for k := range rs {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i] == "" {
			return keys[j] != ""
		}
		if keys[j] == "" {
			return false
		}
		return keys[i] < keys[j]
	})
	return keys
}

// RuleName returns the name of a NamedRule, or the Go type name otherwise.
func RuleName(r Rule) string {
	if nr, ok := r.(NamedRule); ok {
		return nr.Name()
	}
	return TypeName(r)
}
