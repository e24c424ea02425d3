package rules

import (
	"unicode/utf8"

	"github.com/reoring/rulekit"
)

// Length checks the number of characters (runes) of a string. Zero bounds
// are unset; Exactly cannot be combined with Min or Max.
type Length struct {
	Min, Max, Exactly int

	IncorrectInputMessage string
	LessThanMinMessage    string
	GreaterThanMaxMessage string
	NotExactlyMessage     string

	Conditions
}

// HasLength is the former name of Length.
//
// Deprecated: use Length.
type HasLength = Length

const (
	lengthIncorrectInputMessage = "{Property} must be a string. {type} given."
	lengthLessThanMinMessage    = "{Property} must contain at least {min, number} {min, plural, one{character} other{characters}}."
	lengthGreaterThanMaxMessage = "{Property} must contain at most {max, number} {max, plural, one{character} other{characters}}."
	lengthNotExactlyMessage     = "{Property} must contain exactly {exactly, number} {exactly, plural, one{character} other{characters}}."
)

func (Length) Name() string                 { return "length" }
func (Length) Handler() rulekit.RuleHandler { return lengthHandler{} }

type lengthHandler struct{}

func (lengthHandler) Validate(value any, rule rulekit.Rule, ctx *rulekit.ValidationContext) (*rulekit.Result, error) {
	r, err := ruleAs[Length](rule)
	if err != nil {
		return nil, err
	}
	b := bounds{min: r.Min, max: r.Max, exactly: r.Exactly}
	if err := b.check(r.Name()); err != nil {
		return nil, err
	}
	res := rulekit.NewResult()
	s, ok := stringOf(value)
	if !ok {
		return res.AddError(msg(r.IncorrectInputMessage, lengthIncorrectInputMessage), ctx.ErrorParams("type", rulekit.TypeName(value))), nil
	}
	b.apply(res, ctx, utf8.RuneCountInString(s), boundMessages{
		lessThanMin:    msg(r.LessThanMinMessage, lengthLessThanMinMessage),
		greaterThanMax: msg(r.GreaterThanMaxMessage, lengthGreaterThanMaxMessage),
		notExactly:     msg(r.NotExactlyMessage, lengthNotExactlyMessage),
	})
	return res, nil
}

// bounds is the Min/Max/Exactly triple shared by Length and Count.
type bounds struct {
	min, max, exactly int
}

type boundMessages struct {
	lessThanMin, greaterThanMax, notExactly string
}

func (b bounds) check(rule string) error {
	switch {
	case b.min < 0 || b.max < 0 || b.exactly < 0:
		return rulekit.NewConfigError(rule, "bounds must not be negative")
	case b.min == 0 && b.max == 0 && b.exactly == 0:
		return rulekit.NewConfigError(rule, "one of min, max or exactly must be set")
	case b.exactly != 0 && (b.min != 0 || b.max != 0):
		return rulekit.NewConfigError(rule, "exactly cannot be combined with min or max")
	case b.max != 0 && b.min > b.max:
		return rulekit.NewConfigError(rule, "min %d is greater than max %d", b.min, b.max)
	}
	return nil
}

func (b bounds) apply(res *rulekit.Result, ctx *rulekit.ValidationContext, n int, m boundMessages) {
	switch {
	case b.exactly != 0 && n != b.exactly:
		res.AddError(m.notExactly, ctx.ErrorParams("exactly", b.exactly, "number", n))
	case b.min != 0 && n < b.min:
		res.AddError(m.lessThanMin, ctx.ErrorParams("min", b.min, "number", n))
	case b.max != 0 && n > b.max:
		res.AddError(m.greaterThanMax, ctx.ErrorParams("max", b.max, "number", n))
	}
}
