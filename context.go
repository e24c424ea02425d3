package rulekit

import (
	"log/slog"
	"unicode"
	"unicode/utf8"
)

// defaultValueLabel labels the validated value when no property is set.
const defaultValueLabel = "value"

// ValidationContext is created per top-level Validate call and threaded
// through handlers. Composite handlers use it to recurse.
type ValidationContext struct {
	validator       *Validator
	rawData         any
	dataSet         DataSet
	property        string
	labels          PropertyTranslator
	previousErrored bool
	params          map[string]any
}

// Validate validates data against rules with the same validator. The returned
// Result is raw: messages are formatted once by the top-level call.
func (c *ValidationContext) Validate(data any, rules RuleSet) (*Result, error) {
	return c.validator.validateData(data, rules, c)
}

// ValidateValue validates value as a whole (labelled "value").
func (c *ValidationContext) ValidateValue(value any, rules ...Rule) (*Result, error) {
	return c.Validate(value, RuleSet{"": rules})
}

// ValidateRules runs rules against value as if they were declared for the
// current property. Skip-on-error state starts fresh.
func (c *ValidationContext) ValidateRules(value any, rules []Rule) (*Result, error) {
	cc := *c
	cc.previousErrored = false
	return c.validator.validateRules(value, rules, &cc)
}

// RawData returns the data passed to the top-level Validate call.
func (c *ValidationContext) RawData() any { return c.rawData }

// DataSet returns the data set that owns the value under validation.
func (c *ValidationContext) DataSet() DataSet { return c.dataSet }

// Property returns the name of the property under validation; empty when the
// whole value is validated.
func (c *ValidationContext) Property() string { return c.property }

// IsPropertyMissing reports whether the property is absent from the data set.
func (c *ValidationContext) IsPropertyMissing() bool {
	if c.property == "" || c.dataSet == nil {
		return false
	}
	return !c.dataSet.HasProperty(c.property)
}

// IsPreviousRulesErrored reports whether an earlier rule for the same value
// failed.
func (c *ValidationContext) IsPreviousRulesErrored() bool { return c.previousErrored }

// TranslatedProperty returns the display label of the current property.
func (c *ValidationContext) TranslatedProperty() string {
	if c.property == "" {
		return defaultValueLabel
	}
	return c.PropertyLabel(c.property)
}

// CapitalizedTranslatedProperty is TranslatedProperty with an upper-case
// first letter.
func (c *ValidationContext) CapitalizedTranslatedProperty() string {
	return upperFirst(c.TranslatedProperty())
}

// PropertyLabel returns the display label for any property of the current
// data set.
func (c *ValidationContext) PropertyLabel(name string) string {
	if c.labels != nil {
		if l, ok := c.labels.TranslateProperty(name); ok {
			return l
		}
	}
	return name
}

// Parameter returns a free-form parameter shared across the whole call.
func (c *ValidationContext) Parameter(key string) (any, bool) {
	v, ok := c.params[key]
	return v, ok
}

// SetParameter stores a free-form parameter shared across the whole call.
func (c *ValidationContext) SetParameter(key string, value any) {
	c.params[key] = value
}

// ParameterOf returns the parameter stored under key when it holds a T.
func ParameterOf[T any](c *ValidationContext, key string) (T, bool) {
	v, ok := c.params[key].(T)
	return v, ok
}

// Locale returns the locale messages will be rendered in.
func (c *ValidationContext) Locale() string { return c.validator.locale }

// Logger returns the validator's logger.
func (c *ValidationContext) Logger() *slog.Logger { return c.validator.logger }

// ErrorParams builds message parameters: property and Property plus the
// given key/value pairs.
func (c *ValidationContext) ErrorParams(kv ...any) map[string]any {
	m := make(map[string]any, 2+len(kv)/2)
	m["property"] = c.TranslatedProperty()
	m["Property"] = c.CapitalizedTranslatedProperty()
	for i := 0; i+1 < len(kv); i += 2 {
		if k, ok := kv[i].(string); ok {
			m[k] = kv[i+1]
		}
	}
	return m
}

func upperFirst(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[n:]
}
