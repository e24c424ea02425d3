package rules

import "github.com/reoring/rulekit"

// Composite groups Rules so they share one set of skip conditions. The inner
// rules run against the same value and property.
type Composite struct {
	Rules []rulekit.Rule

	Conditions
}

// StopOnError runs Rules in order and returns the errors of the first rule
// that fails.
type StopOnError struct {
	Rules []rulekit.Rule

	Conditions
}

// Lazy resolves its rules at validation time, which allows recursive rule
// definitions.
type Lazy struct {
	Resolve func() []rulekit.Rule

	Conditions
}

func (Composite) Name() string                 { return "composite" }
func (Composite) Handler() rulekit.RuleHandler { return compositeHandler{} }

func (StopOnError) Name() string                 { return "stop_on_error" }
func (StopOnError) Handler() rulekit.RuleHandler { return stopOnErrorHandler{} }

func (Lazy) Name() string                 { return "lazy" }
func (Lazy) Handler() rulekit.RuleHandler { return lazyHandler{} }

type compositeHandler struct{}

func (compositeHandler) Validate(value any, rule rulekit.Rule, ctx *rulekit.ValidationContext) (*rulekit.Result, error) {
	r, err := ruleAs[Composite](rule)
	if err != nil {
		return nil, err
	}
	return ctx.ValidateRules(value, r.Rules)
}

type stopOnErrorHandler struct{}

func (stopOnErrorHandler) Validate(value any, rule rulekit.Rule, ctx *rulekit.ValidationContext) (*rulekit.Result, error) {
	r, err := ruleAs[StopOnError](rule)
	if err != nil {
		return nil, err
	}
	for _, inner := range r.Rules {
		res, err := ctx.ValidateRules(value, []rulekit.Rule{inner})
		if err != nil {
			return nil, err
		}
		if !res.IsValid() {
			return res, nil
		}
	}
	return rulekit.NewResult(), nil
}

type lazyHandler struct{}

func (lazyHandler) Validate(value any, rule rulekit.Rule, ctx *rulekit.ValidationContext) (*rulekit.Result, error) {
	r, err := ruleAs[Lazy](rule)
	if err != nil {
		return nil, err
	}
	if r.Resolve == nil {
		return nil, rulekit.NewConfigError(r.Name(), "resolve func is required")
	}
	return ctx.ValidateRules(value, r.Resolve())
}
