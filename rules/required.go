package rules

import "github.com/reoring/rulekit"

// Required checks that a value is passed and not empty.
//
// Required is never skipped for empty values; it has no SkipOnEmpty setting.
type Required struct {
	// EmptyCondition decides emptiness. Defaults to WhenEmptyTrimmed, so
	// whitespace-only strings are blank.
	EmptyCondition rulekit.EmptyCondition

	Message          string // "{Property} cannot be blank."
	NotPassedMessage string // "{Property} not passed."

	SkipOnError bool
	When        rulekit.WhenFunc
}

const (
	requiredMessage          = "{Property} cannot be blank."
	requiredNotPassedMessage = "{Property} not passed."
)

func (Required) Name() string                      { return "required" }
func (Required) Handler() rulekit.RuleHandler      { return requiredHandler{} }
func (r Required) ShouldSkipOnError() bool         { return r.SkipOnError }
func (r Required) WhenCondition() rulekit.WhenFunc { return r.When }

type requiredHandler struct{}

func (requiredHandler) Validate(value any, rule rulekit.Rule, ctx *rulekit.ValidationContext) (*rulekit.Result, error) {
	r, err := ruleAs[Required](rule)
	if err != nil {
		return nil, err
	}
	res := rulekit.NewResult()
	if ctx.IsPropertyMissing() {
		return res.AddError(msg(r.NotPassedMessage, requiredNotPassedMessage), ctx.ErrorParams()), nil
	}
	empty := r.EmptyCondition
	if empty == nil {
		empty = rulekit.WhenEmptyTrimmed
	}
	if empty(value, false) {
		res.AddError(msg(r.Message, requiredMessage), ctx.ErrorParams())
	}
	return res, nil
}
