package rules

import (
	"github.com/reoring/rulekit"
	"github.com/reoring/rulekit/i18n"
)

// BooleanValue checks that a value equals TrueValue or FalseValue. Without
// Strict the comparison is loose: true matches "1" and false matches "0".
type BooleanValue struct {
	// TrueValue defaults to "1", FalseValue to "0".
	TrueValue, FalseValue any
	Strict                bool

	Message               string
	IncorrectInputMessage string

	Conditions
}

// TrueValue checks that a value equals Value ("1" by default), for example
// an accepted terms checkbox.
type TrueValue struct {
	Value  any
	Strict bool

	Message               string
	IncorrectInputMessage string

	Conditions
}

const (
	booleanMessage               = `{Property} must be either "{true}" or "{false}".`
	booleanIncorrectInputMessage = "The allowed types for {property} are integer, float, string and boolean. {type} given."
	trueValueMessage             = `{Property} must be "{true}".`
)

func (BooleanValue) Name() string                 { return "boolean_value" }
func (BooleanValue) Handler() rulekit.RuleHandler { return booleanHandler{} }

func (TrueValue) Name() string                 { return "true_value" }
func (TrueValue) Handler() rulekit.RuleHandler { return trueValueHandler{} }

type booleanHandler struct{}

func (booleanHandler) Validate(value any, rule rulekit.Rule, ctx *rulekit.ValidationContext) (*rulekit.Result, error) {
	r, err := ruleAs[BooleanValue](rule)
	if err != nil {
		return nil, err
	}
	tv, fv := orDefault(r.TrueValue, "1"), orDefault(r.FalseValue, "0")
	res := rulekit.NewResult()
	if value == nil || !isScalar(value) {
		return res.AddError(msg(r.IncorrectInputMessage, booleanIncorrectInputMessage), ctx.ErrorParams("type", rulekit.TypeName(value))), nil
	}
	if !matchesValue(value, tv, r.Strict) && !matchesValue(value, fv, r.Strict) {
		res.AddError(msg(r.Message, booleanMessage), ctx.ErrorParams(
			"true", i18n.Stringify(tv),
			"false", i18n.Stringify(fv),
			"value", value,
		))
	}
	return res, nil
}

type trueValueHandler struct{}

func (trueValueHandler) Validate(value any, rule rulekit.Rule, ctx *rulekit.ValidationContext) (*rulekit.Result, error) {
	r, err := ruleAs[TrueValue](rule)
	if err != nil {
		return nil, err
	}
	tv := orDefault(r.Value, "1")
	res := rulekit.NewResult()
	if value == nil || !isScalar(value) {
		return res.AddError(msg(r.IncorrectInputMessage, booleanIncorrectInputMessage), ctx.ErrorParams("type", rulekit.TypeName(value))), nil
	}
	if !matchesValue(value, tv, r.Strict) {
		res.AddError(msg(r.Message, trueValueMessage), ctx.ErrorParams("true", i18n.Stringify(tv), "value", value))
	}
	return res, nil
}

func orDefault(v, def any) any {
	if v == nil {
		return def
	}
	return v
}

func matchesValue(value, want any, strict bool) bool {
	if strict {
		return strictEqual(value, want)
	}
	return scalarString(value) == scalarString(want)
}
