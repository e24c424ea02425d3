package rules

import "github.com/reoring/rulekit"

// StringValue checks that a value is a string.
type StringValue struct {
	Message string

	Conditions
}

const stringValueMessage = "{Property} must be a string."

func (StringValue) Name() string                 { return "string_value" }
func (StringValue) Handler() rulekit.RuleHandler { return stringValueHandler{} }

type stringValueHandler struct{}

func (stringValueHandler) Validate(value any, rule rulekit.Rule, ctx *rulekit.ValidationContext) (*rulekit.Result, error) {
	r, err := ruleAs[StringValue](rule)
	if err != nil {
		return nil, err
	}
	res := rulekit.NewResult()
	if _, ok := stringOf(value); !ok {
		res.AddError(msg(r.Message, stringValueMessage), ctx.ErrorParams("type", rulekit.TypeName(value)))
	}
	return res, nil
}
