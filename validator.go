package rulekit

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/reoring/rulekit/i18n"
)

// Validator runs rule sets against data. It holds only configuration and is
// safe for concurrent use; every call owns its Result and context.
type Validator struct {
	translator         i18n.Translator
	formatter          i18n.Formatter
	locale             string
	defaultSkipOnEmpty EmptyCondition
	propertyTranslator PropertyTranslator
	resolver           HandlerResolver
	logger             *slog.Logger
	params             map[string]any
}

// Option configures a Validator.
type Option func(*Validator)

// WithTranslator sets the message translator (identity by default).
func WithTranslator(t i18n.Translator) Option {
	return func(v *Validator) {
		if t != nil {
			v.translator = t
		}
	}
}

// WithFormatter replaces the placeholder formatter.
func WithFormatter(f i18n.Formatter) Option {
	return func(v *Validator) {
		if f != nil {
			v.formatter = f
		}
	}
}

// WithLocale sets the locale used to translate and format messages.
func WithLocale(locale string) Option {
	return func(v *Validator) {
		if locale != "" {
			v.locale = locale
		}
	}
}

// WithDefaultSkipOnEmpty sets the emptiness predicate used by rules that do
// not configure their own. By default such rules never skip.
func WithDefaultSkipOnEmpty(c EmptyCondition) Option {
	return func(v *Validator) { v.defaultSkipOnEmpty = c }
}

// WithPropertyTranslator adds a fallback label source consulted after the
// data's own labels.
func WithPropertyTranslator(t PropertyTranslator) Option {
	return func(v *Validator) { v.propertyTranslator = t }
}

// WithHandlerResolver replaces how rules are mapped to handlers.
func WithHandlerResolver(r HandlerResolver) Option {
	return func(v *Validator) {
		if r != nil {
			v.resolver = r
		}
	}
}

// WithLogger sets the logger. The default logger discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(v *Validator) {
		if l != nil {
			v.logger = l
		}
	}
}

// WithParameter seeds a parameter visible to every handler through
// ValidationContext.Parameter and ParameterOf, for example a repository used
// by a Callback rule.
func WithParameter(key string, value any) Option {
	return func(v *Validator) {
		if v.params == nil {
			v.params = map[string]any{}
		}
		v.params[key] = value
	}
}

// NewValidator builds a Validator.
func NewValidator(opts ...Option) *Validator {
	v := &Validator{
		translator: i18n.IdentityTranslator{},
		formatter:  i18n.DefaultFormatter,
		locale:     i18n.DefaultLocale,
		resolver:   DefaultHandlerResolver{},
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// WithLocale returns a copy of v rendering messages in locale.
func (v *Validator) WithLocale(locale string) *Validator {
	cp := *v
	WithLocale(locale)(&cp)
	return &cp
}

// Validate validates data against rules. With nil rules, data implementing
// RulesProvider supplies its own. The error is non-nil only for programmer
// errors; validation failures are reported in the Result.
func (v *Validator) Validate(data any, rules RuleSet) (*Result, error) {
	root := &ValidationContext{
		validator: v,
		rawData:   data,
		dataSet:   NormalizeDataSet(data),
		params:    make(map[string]any, len(v.params)),
	}
	for k, p := range v.params {
		root.params[k] = p
	}
	res, err := v.validateData(data, rules, root)
	if err != nil {
		return nil, err
	}
	res = v.postProcess(res)
	if hook, ok := data.(PostValidationHook); ok {
		hook.ProcessValidationResult(res)
	}
	return res, nil
}

// ValidateValue validates value as a whole against rules.
func (v *Validator) ValidateValue(value any, rules ...Rule) (*Result, error) {
	return v.Validate(value, RuleSet{"": rules})
}

func (v *Validator) validateData(data any, rules RuleSet, parent *ValidationContext) (*Result, error) {
	ds := NormalizeDataSet(data)
	if rules == nil {
		if rp, ok := data.(RulesProvider); ok {
			rules = rp.Rules()
		} else if rp, ok := ds.(RulesProvider); ok {
			rules = rp.Rules()
		}
	}
	labels := chainPropertyTranslator{}
	if lp, ok := ds.(PropertyLabelsProvider); ok {
		labels = append(labels, MapPropertyTranslator(lp.PropertyLabels()))
	} else if lp, ok := data.(PropertyLabelsProvider); ok {
		labels = append(labels, MapPropertyTranslator(lp.PropertyLabels()))
	}
	if v.propertyTranslator != nil {
		labels = append(labels, v.propertyTranslator)
	}

	result := NewResult()
	for _, key := range rules.Keys() {
		ctx := &ValidationContext{
			validator: v,
			rawData:   parent.rawData,
			dataSet:   ds,
			property:  key,
			labels:    labels,
			params:    parent.params,
		}
		var value any
		if key == "" {
			value = ds.Data()
		} else {
			value = ds.PropertyValue(key)
		}
		res, err := v.validateRules(value, rules[key], ctx)
		if err != nil {
			return nil, err
		}
		if key == "" {
			result.AddErrors(res)
		} else {
			result.AddErrors(res, key)
		}
	}
	return result, nil
}

func (v *Validator) validateRules(value any, rules []Rule, ctx *ValidationContext) (*Result, error) {
	result := NewResult()
	for _, rule := range rules {
		if rule == nil {
			return nil, NewConfigError("", "nil rule for property %q", ctx.property)
		}
		ctx.previousErrored = !result.IsValid()
		if v.skip(value, rule, ctx) {
			continue
		}
		h, err := v.resolver.Resolve(rule)
		if err != nil {
			return nil, err
		}
		if _, own := v.resolver.(DefaultHandlerResolver); !own && v.logger.Enabled(context.Background(), slog.LevelDebug) && !sameHandler(h, rule.Handler()) {
			v.logger.Debug("handler overridden", "rule", RuleName(rule), "property", ctx.property, "handler", fmt.Sprintf("%T", h))
		}
		res, err := h.Validate(value, rule, ctx)
		if err != nil {
			return nil, err
		}
		result.AddErrors(res)
	}
	return result, nil
}

func (v *Validator) skip(value any, rule Rule, ctx *ValidationContext) bool {
	if r, ok := rule.(SkipOnEmptyRule); ok {
		cond := r.SkipOnEmptyCondition()
		if cond == nil {
			cond = v.defaultSkipOnEmpty
		}
		if cond != nil && cond(value, ctx.IsPropertyMissing()) {
			v.logger.Debug("rule skipped", "rule", RuleName(rule), "property", ctx.property, "reason", "empty")
			return true
		}
	}
	if r, ok := rule.(SkipOnErrorRule); ok && r.ShouldSkipOnError() && ctx.previousErrored {
		v.logger.Debug("rule skipped", "rule", RuleName(rule), "property", ctx.property, "reason", "previous error")
		return true
	}
	if r, ok := rule.(WhenRule); ok {
		if when := r.WhenCondition(); when != nil && !when(value, ctx) {
			v.logger.Debug("rule skipped", "rule", RuleName(rule), "property", ctx.property, "reason", "when")
			return true
		}
	}
	return false
}

// postProcess translates and formats every error that is not final yet.
func (v *Validator) postProcess(res *Result) *Result {
	out := NewResult()
	for _, e := range res.errors {
		if !e.final {
			cp := *e
			cp.message = v.formatter.Format(v.translator.Translate(e.template, v.locale), e.params, v.locale)
			cp.final = true
			e = &cp
		}
		out.errors = append(out.errors, e)
	}
	return out
}
