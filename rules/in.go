package rules

import (
	"reflect"

	"github.com/reoring/rulekit"
)

// In checks that a value is one of Values. Not inverts the check.
type In struct {
	Values []any
	// Strict requires identical Go types; otherwise "1" equals 1.
	Strict bool
	Not    bool

	Message string

	Conditions
}

// InRange is the former name of In.
//
// Deprecated: use In.
type InRange = In

// Subset checks that every item of a slice or array is one of Values.
type Subset struct {
	Values []any
	Strict bool

	Message               string
	IncorrectInputMessage string

	Conditions
}

const (
	inMessage                   = "{Property} is not in the list of acceptable values."
	subsetMessage               = "{Property} is not a subset of acceptable values."
	subsetIncorrectInputMessage = "{Property} must be a slice or an array. {type} given."
)

func (In) Name() string                 { return "in" }
func (In) Handler() rulekit.RuleHandler { return inHandler{} }

func (Subset) Name() string                 { return "subset" }
func (Subset) Handler() rulekit.RuleHandler { return subsetHandler{} }

type inHandler struct{}

func (inHandler) Validate(value any, rule rulekit.Rule, ctx *rulekit.ValidationContext) (*rulekit.Result, error) {
	r, err := ruleAs[In](rule)
	if err != nil {
		return nil, err
	}
	res := rulekit.NewResult()
	if contains(r.Values, value, r.Strict) == r.Not {
		res.AddError(msg(r.Message, inMessage), ctx.ErrorParams("value", value))
	}
	return res, nil
}

type subsetHandler struct{}

func (subsetHandler) Validate(value any, rule rulekit.Rule, ctx *rulekit.ValidationContext) (*rulekit.Result, error) {
	r, err := ruleAs[Subset](rule)
	if err != nil {
		return nil, err
	}
	res := rulekit.NewResult()
	rv := rulekit.Indirect(reflect.ValueOf(value))
	if !rv.IsValid() || rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return res.AddError(msg(r.IncorrectInputMessage, subsetIncorrectInputMessage), ctx.ErrorParams("type", rulekit.TypeName(value))), nil
	}
	for i := 0; i < rv.Len(); i++ {
		if !contains(r.Values, rv.Index(i).Interface(), r.Strict) {
			return res.AddError(msg(r.Message, subsetMessage), ctx.ErrorParams()), nil
		}
	}
	return res, nil
}
