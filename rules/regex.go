package rules

import (
	"regexp"

	"github.com/reoring/rulekit"
)

// Regex checks a string against Pattern. With Not the string must not match.
type Regex struct {
	Pattern *regexp.Regexp
	Not     bool

	Message               string
	IncorrectInputMessage string

	Conditions
}

const (
	regexMessage               = "{Property} is invalid."
	regexIncorrectInputMessage = "{Property} must be a string. {type} given."
)

func (Regex) Name() string                 { return "regex" }
func (Regex) Handler() rulekit.RuleHandler { return regexHandler{} }

type regexHandler struct{}

func (regexHandler) Validate(value any, rule rulekit.Rule, ctx *rulekit.ValidationContext) (*rulekit.Result, error) {
	r, err := ruleAs[Regex](rule)
	if err != nil {
		return nil, err
	}
	if r.Pattern == nil {
		return nil, rulekit.NewConfigError(r.Name(), "pattern is required")
	}
	res := rulekit.NewResult()
	s, ok := stringOf(value)
	if !ok {
		return res.AddError(msg(r.IncorrectInputMessage, regexIncorrectInputMessage), ctx.ErrorParams("type", rulekit.TypeName(value))), nil
	}
	if r.Pattern.MatchString(s) == r.Not {
		res.AddError(msg(r.Message, regexMessage), ctx.ErrorParams("value", s))
	}
	return res, nil
}
