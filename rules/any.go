package rules

import "github.com/reoring/rulekit"

// AnyRule passes when at least one of Rules passes. The inner errors are
// discarded; a single error is reported instead.
type AnyRule struct {
	Rules []rulekit.Rule

	Message string

	Conditions
}

// Any is the former name of AnyRule.
//
// Deprecated: use AnyRule.
type Any = AnyRule

// OneOf passes when exactly one of Rules passes.
type OneOf struct {
	Rules []rulekit.Rule

	Message string

	Conditions
}

const (
	anyRuleMessage = "At least one of the inner rules must pass the validation."
	oneOfMessage   = "Exactly one of the inner rules must pass the validation."
)

func (AnyRule) Name() string                 { return "any" }
func (AnyRule) Handler() rulekit.RuleHandler { return anyRuleHandler{} }

func (OneOf) Name() string                 { return "one_of" }
func (OneOf) Handler() rulekit.RuleHandler { return oneOfHandler{} }

type anyRuleHandler struct{}

func (anyRuleHandler) Validate(value any, rule rulekit.Rule, ctx *rulekit.ValidationContext) (*rulekit.Result, error) {
	r, err := ruleAs[AnyRule](rule)
	if err != nil {
		return nil, err
	}
	if len(r.Rules) == 0 {
		return nil, rulekit.NewConfigError(r.Name(), "at least one inner rule is required")
	}
	for _, inner := range r.Rules {
		res, err := ctx.ValidateRules(value, []rulekit.Rule{inner})
		if err != nil {
			return nil, err
		}
		if res.IsValid() {
			return res, nil
		}
	}
	return rulekit.NewResult().AddError(msg(r.Message, anyRuleMessage), ctx.ErrorParams("count", len(r.Rules))), nil
}

type oneOfHandler struct{}

func (oneOfHandler) Validate(value any, rule rulekit.Rule, ctx *rulekit.ValidationContext) (*rulekit.Result, error) {
	r, err := ruleAs[OneOf](rule)
	if err != nil {
		return nil, err
	}
	if len(r.Rules) == 0 {
		return nil, rulekit.NewConfigError(r.Name(), "at least one inner rule is required")
	}
	passed := 0
	for _, inner := range r.Rules {
		res, err := ctx.ValidateRules(value, []rulekit.Rule{inner})
		if err != nil {
			return nil, err
		}
		if res.IsValid() {
			passed++
		}
	}
	res := rulekit.NewResult()
	if passed != 1 {
		res.AddError(msg(r.Message, oneOfMessage), ctx.ErrorParams("count", len(r.Rules), "passed", passed))
	}
	return res, nil
}
