package rules

import "github.com/reoring/rulekit"

// FilledAtLeast checks that at least Min of the listed properties of a map or
// struct value are filled. Properties may be dotted paths.
type FilledAtLeast struct {
	Properties []string
	// Min defaults to 1.
	Min int
	// IsEmpty decides whether a property is filled. Defaults to WhenEmpty.
	IsEmpty rulekit.EmptyCondition

	Message               string
	IncorrectInputMessage string

	Conditions
}

// AtLeast is the former name of FilledAtLeast.
//
// Deprecated: use FilledAtLeast.
type AtLeast = FilledAtLeast

// FilledOnlyOneOf checks that exactly one of the listed properties is filled.
type FilledOnlyOneOf struct {
	Properties []string
	IsEmpty    rulekit.EmptyCondition

	Message               string
	IncorrectInputMessage string

	Conditions
}

const (
	filledAtLeastMessage   = "At least {min, number} {min, plural, one{property} other{properties}} from this list must be filled for {property}: {properties}."
	filledOnlyOneOfMessage = "Exactly 1 property from this list must be filled for {property}: {properties}."
	filledIncorrectInput   = "{Property} must be a map or an object. {type} given."
)

func (FilledAtLeast) Name() string                 { return "filled_at_least" }
func (FilledAtLeast) Handler() rulekit.RuleHandler { return filledAtLeastHandler{} }

func (FilledOnlyOneOf) Name() string                 { return "filled_only_one_of" }
func (FilledOnlyOneOf) Handler() rulekit.RuleHandler { return filledOnlyOneOfHandler{} }

type filledAtLeastHandler struct{}

func (filledAtLeastHandler) Validate(value any, rule rulekit.Rule, ctx *rulekit.ValidationContext) (*rulekit.Result, error) {
	r, err := ruleAs[FilledAtLeast](rule)
	if err != nil {
		return nil, err
	}
	least := r.Min
	if least == 0 {
		least = 1
	}
	switch {
	case len(r.Properties) == 0:
		return nil, rulekit.NewConfigError(r.Name(), "properties are required")
	case least < 0 || least > len(r.Properties):
		return nil, rulekit.NewConfigError(r.Name(), "min %d must be between 1 and %d", least, len(r.Properties))
	}
	res := rulekit.NewResult()
	if !rulekit.IsObjectLike(value) {
		return res.AddError(msg(r.IncorrectInputMessage, filledIncorrectInput), ctx.ErrorParams("type", rulekit.TypeName(value))), nil
	}
	if countFilled(value, r.Properties, r.IsEmpty) < least {
		res.AddError(msg(r.Message, filledAtLeastMessage), ctx.ErrorParams("min", least, "properties", quotedList(r.Properties)))
	}
	return res, nil
}

type filledOnlyOneOfHandler struct{}

func (filledOnlyOneOfHandler) Validate(value any, rule rulekit.Rule, ctx *rulekit.ValidationContext) (*rulekit.Result, error) {
	r, err := ruleAs[FilledOnlyOneOf](rule)
	if err != nil {
		return nil, err
	}
	if len(r.Properties) == 0 {
		return nil, rulekit.NewConfigError(r.Name(), "properties are required")
	}
	res := rulekit.NewResult()
	if !rulekit.IsObjectLike(value) {
		return res.AddError(msg(r.IncorrectInputMessage, filledIncorrectInput), ctx.ErrorParams("type", rulekit.TypeName(value))), nil
	}
	if countFilled(value, r.Properties, r.IsEmpty) != 1 {
		res.AddError(msg(r.Message, filledOnlyOneOfMessage), ctx.ErrorParams("properties", quotedList(r.Properties)))
	}
	return res, nil
}

func countFilled(value any, properties []string, isEmpty rulekit.EmptyCondition) int {
	if isEmpty == nil {
		isEmpty = rulekit.WhenEmpty
	}
	filled := 0
	for _, p := range properties {
		v, ok := rulekit.ValueByPath(value, rulekit.ParsePath(p, rulekit.DefaultPathSeparator))
		if !isEmpty(v, !ok) {
			filled++
		}
	}
	return filled
}
