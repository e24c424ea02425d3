package rules

import "github.com/reoring/rulekit"

// Number checks that a value is numeric and optionally within [Min, Max].
// Integers, floats and numeric strings are accepted.
type Number struct {
	Min, Max *float64
	// IntegerOnly rejects values with a fractional part.
	IntegerOnly bool

	IncorrectInputMessage string
	NotNumberMessage      string
	LessThanMinMessage    string
	GreaterThanMaxMessage string

	Conditions
}

// Integer returns a Number rule accepting integers only.
func Integer() Number { return Number{IntegerOnly: true} }

const (
	numberIncorrectInputMessage = "The allowed types for {property} are integer, float and string. {type} given."
	numberNotNumberMessage      = "{Property} must be a number."
	numberNotIntegerMessage     = "{Property} must be an integer."
	numberLessThanMinMessage    = "{Property} must be no less than {min}."
	numberGreaterThanMaxMessage = "{Property} must be no greater than {max}."
)

func (Number) Name() string                 { return "number" }
func (Number) Handler() rulekit.RuleHandler { return numberHandler{} }

type numberHandler struct{}

func (numberHandler) Validate(value any, rule rulekit.Rule, ctx *rulekit.ValidationContext) (*rulekit.Result, error) {
	r, err := ruleAs[Number](rule)
	if err != nil {
		return nil, err
	}
	if r.Min != nil && r.Max != nil && *r.Min > *r.Max {
		return nil, rulekit.NewConfigError(r.Name(), "min %v is greater than max %v", *r.Min, *r.Max)
	}
	res := rulekit.NewResult()
	n := parseNumber(value)
	switch {
	case !n.typeOK:
		res.AddError(msg(r.IncorrectInputMessage, numberIncorrectInputMessage), ctx.ErrorParams("type", rulekit.TypeName(value)))
	case !n.isNumeric || r.IntegerOnly && !n.isInt:
		def := numberNotNumberMessage
		if r.IntegerOnly {
			def = numberNotIntegerMessage
		}
		res.AddError(msg(r.NotNumberMessage, def), ctx.ErrorParams("value", value))
	case r.Min != nil && n.value < *r.Min:
		res.AddError(msg(r.LessThanMinMessage, numberLessThanMinMessage), ctx.ErrorParams("min", *r.Min, "value", value))
	case r.Max != nil && n.value > *r.Max:
		res.AddError(msg(r.GreaterThanMaxMessage, numberGreaterThanMaxMessage), ctx.ErrorParams("max", *r.Max, "value", value))
	}
	return res, nil
}
