package rules

import (
	"reflect"

	"github.com/reoring/rulekit"
)

// Counter is implemented by collection types that are neither slices nor maps.
type Counter interface {
	Len() int
}

// Count checks the number of items of a slice, array, map or Counter. Zero
// bounds are unset; Exactly cannot be combined with Min or Max.
type Count struct {
	Min, Max, Exactly int

	IncorrectInputMessage string
	LessThanMinMessage    string
	GreaterThanMaxMessage string
	NotExactlyMessage     string

	Conditions
}

const (
	countIncorrectInputMessage = "{Property} must be a slice, an array or a map. {type} given."
	countLessThanMinMessage    = "{Property} must contain at least {min, number} {min, plural, one{item} other{items}}."
	countGreaterThanMaxMessage = "{Property} must contain at most {max, number} {max, plural, one{item} other{items}}."
	countNotExactlyMessage     = "{Property} must contain exactly {exactly, number} {exactly, plural, one{item} other{items}}."
)

func (Count) Name() string                 { return "count" }
func (Count) Handler() rulekit.RuleHandler { return countHandler{} }

type countHandler struct{}

func (countHandler) Validate(value any, rule rulekit.Rule, ctx *rulekit.ValidationContext) (*rulekit.Result, error) {
	r, err := ruleAs[Count](rule)
	if err != nil {
		return nil, err
	}
	b := bounds{min: r.Min, max: r.Max, exactly: r.Exactly}
	if err := b.check(r.Name()); err != nil {
		return nil, err
	}
	res := rulekit.NewResult()
	n, ok := itemCount(value)
	if !ok {
		return res.AddError(msg(r.IncorrectInputMessage, countIncorrectInputMessage), ctx.ErrorParams("type", rulekit.TypeName(value))), nil
	}
	b.apply(res, ctx, n, boundMessages{
		lessThanMin:    msg(r.LessThanMinMessage, countLessThanMinMessage),
		greaterThanMax: msg(r.GreaterThanMaxMessage, countGreaterThanMaxMessage),
		notExactly:     msg(r.NotExactlyMessage, countNotExactlyMessage),
	})
	return res, nil
}

func itemCount(v any) (int, bool) {
	if c, ok := v.(Counter); ok {
		return c.Len(), true
	}
	rv := rulekit.Indirect(reflect.ValueOf(v))
	if !rv.IsValid() {
		return 0, false
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len(), true
	default:
		return 0, false
	}
}
