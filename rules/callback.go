package rules

import "github.com/reoring/rulekit"

// CallbackFunc validates value. Returning a nil Result means valid.
type CallbackFunc func(value any, ctx *rulekit.ValidationContext) (*rulekit.Result, error)

// Callback delegates validation to Func.
type Callback struct {
	Func CallbackFunc

	Conditions
}

func (Callback) Name() string                 { return "callback" }
func (Callback) Handler() rulekit.RuleHandler { return callbackHandler{} }

type callbackHandler struct{}

func (callbackHandler) Validate(value any, rule rulekit.Rule, ctx *rulekit.ValidationContext) (*rulekit.Result, error) {
	r, err := ruleAs[Callback](rule)
	if err != nil {
		return nil, err
	}
	if r.Func == nil {
		return nil, rulekit.NewConfigError(r.Name(), "func is required")
	}
	res, err := r.Func(value, ctx)
	if err != nil {
		return nil, err
	}
	if res == nil {
		res = rulekit.NewResult()
	}
	return res, nil
}
