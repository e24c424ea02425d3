package rules

import (
	"github.com/google/uuid"
	"github.com/reoring/rulekit"
)

// Uuid checks that a string is a UUID in the canonical 8-4-4-4-12 form.
type Uuid struct {
	Message               string
	IncorrectInputMessage string

	Conditions
}

const (
	uuidMessage               = "{Property} must be a valid UUID."
	uuidIncorrectInputMessage = "{Property} must be a string. {type} given."

	uuidLength = 36
)

func (Uuid) Name() string                 { return "uuid" }
func (Uuid) Handler() rulekit.RuleHandler { return uuidHandler{} }

type uuidHandler struct{}

func (uuidHandler) Validate(value any, rule rulekit.Rule, ctx *rulekit.ValidationContext) (*rulekit.Result, error) {
	r, err := ruleAs[Uuid](rule)
	if err != nil {
		return nil, err
	}
	res := rulekit.NewResult()
	s, ok := stringOf(value)
	if !ok {
		return res.AddError(msg(r.IncorrectInputMessage, uuidIncorrectInputMessage), ctx.ErrorParams("type", rulekit.TypeName(value))), nil
	}
	// uuid.Parse also accepts urn: and braced forms; only the canonical
	// layout has 36 characters.
	if len(s) != uuidLength {
		return res.AddError(msg(r.Message, uuidMessage), ctx.ErrorParams("value", s)), nil
	}
	if _, err := uuid.Parse(s); err != nil {
		res.AddError(msg(r.Message, uuidMessage), ctx.ErrorParams("value", s))
	}
	return res, nil
}
