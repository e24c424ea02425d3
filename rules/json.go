package rules

import (
	"github.com/reoring/rulekit"
	"github.com/valyala/fastjson"
)

// Json checks that a string (or byte slice) holds well-formed JSON.
type Json struct {
	Message               string
	IncorrectInputMessage string

	Conditions
}

const (
	jsonMessage               = "{Property} is not a valid JSON."
	jsonIncorrectInputMessage = "{Property} must be a string. {type} given."
)

func (Json) Name() string                 { return "json" }
func (Json) Handler() rulekit.RuleHandler { return jsonHandler{} }

type jsonHandler struct{}

func (jsonHandler) Validate(value any, rule rulekit.Rule, ctx *rulekit.ValidationContext) (*rulekit.Result, error) {
	r, err := ruleAs[Json](rule)
	if err != nil {
		return nil, err
	}
	res := rulekit.NewResult()
	var verr error
	switch v := scalarOf(value).(type) {
	case string:
		verr = fastjson.Validate(v)
	case []byte:
		verr = fastjson.ValidateBytes(v)
	default:
		return res.AddError(msg(r.IncorrectInputMessage, jsonIncorrectInputMessage), ctx.ErrorParams("type", rulekit.TypeName(value))), nil
	}
	if verr != nil {
		ctx.Logger().Debug("invalid json", "property", ctx.Property(), "error", verr)
		res.AddError(msg(r.Message, jsonMessage), ctx.ErrorParams())
	}
	return res, nil
}
