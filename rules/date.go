package rules

import (
	"time"

	"github.com/reoring/rulekit"
)

// Date checks that a value is a date: a time.Time, or a string in Format
// ("2006-01-02" by default) parsed in Location (UTC by default). Zero Min and
// Max are unset.
type Date struct {
	Format   string
	Location *time.Location
	Min, Max time.Time

	IncorrectInputMessage string
	TooEarlyMessage       string
	TooLateMessage        string

	Conditions
}

// DateTime is Date with the default format "2006-01-02 15:04:05".
type DateTime Date

// Time checks a time of day; the default format is "15:04:05". Min and Max
// compare by clock time only.
type Time Date

const (
	dateIncorrectInputMessage     = "{Property} must be a date."
	dateTimeIncorrectInputMessage = "{Property} must be a date and time."
	timeIncorrectInputMessage     = "{Property} must be a time."
	dateTooEarlyMessage           = "{Property} must be no earlier than {limit}."
	dateTooLateMessage            = "{Property} must be no later than {limit}."
)

type dateKind int

const (
	kindDate dateKind = iota
	kindDateTime
	kindTime
)

func (Date) Name() string                 { return "date" }
func (Date) Handler() rulekit.RuleHandler { return dateHandler{kind: kindDate} }

func (DateTime) Name() string                 { return "date_time" }
func (DateTime) Handler() rulekit.RuleHandler { return dateHandler{kind: kindDateTime} }

func (Time) Name() string                 { return "time" }
func (Time) Handler() rulekit.RuleHandler { return dateHandler{kind: kindTime} }

type dateHandler struct {
	kind dateKind
}

func (h dateHandler) config(rule rulekit.Rule) (Date, error) {
	switch h.kind {
	case kindDateTime:
		r, err := ruleAs[DateTime](rule)
		return Date(r), err
	case kindTime:
		r, err := ruleAs[Time](rule)
		return Date(r), err
	default:
		return ruleAs[Date](rule)
	}
}

func (h dateHandler) defaults() (layout, incorrect string) {
	switch h.kind {
	case kindDateTime:
		return time.DateTime, dateTimeIncorrectInputMessage
	case kindTime:
		return time.TimeOnly, timeIncorrectInputMessage
	default:
		return time.DateOnly, dateIncorrectInputMessage
	}
}

func (h dateHandler) Validate(value any, rule rulekit.Rule, ctx *rulekit.ValidationContext) (*rulekit.Result, error) {
	r, err := h.config(rule)
	if err != nil {
		return nil, err
	}
	layout, incorrect := h.defaults()
	if r.Format != "" {
		layout = r.Format
	}
	loc := r.Location
	if loc == nil {
		loc = time.UTC
	}
	if !r.Min.IsZero() && !r.Max.IsZero() && h.order(r.Min, r.Max) > 0 {
		return nil, rulekit.NewConfigError(rulekit.RuleName(rule), "min is later than max")
	}

	res := rulekit.NewResult()
	var t time.Time
	switch v := scalarOf(value).(type) {
	case time.Time:
		t = v
	case *time.Time:
		if v == nil {
			return res.AddError(msg(r.IncorrectInputMessage, incorrect), ctx.ErrorParams("value", value)), nil
		}
		t = *v
	case string:
		t, err = time.ParseInLocation(layout, v, loc)
		if err != nil {
			return res.AddError(msg(r.IncorrectInputMessage, incorrect), ctx.ErrorParams("value", v)), nil
		}
	default:
		return res.AddError(msg(r.IncorrectInputMessage, incorrect), ctx.ErrorParams("value", value)), nil
	}
	switch {
	case !r.Min.IsZero() && h.order(t, r.Min) < 0:
		res.AddError(msg(r.TooEarlyMessage, dateTooEarlyMessage), ctx.ErrorParams("limit", r.Min.Format(layout), "value", value))
	case !r.Max.IsZero() && h.order(t, r.Max) > 0:
		res.AddError(msg(r.TooLateMessage, dateTooLateMessage), ctx.ErrorParams("limit", r.Max.Format(layout), "value", value))
	}
	return res, nil
}

func (h dateHandler) order(a, b time.Time) int {
	if h.kind == kindTime {
		return clockSeconds(a) - clockSeconds(b)
	}
	return a.Compare(b)
}

func clockSeconds(t time.Time) int {
	h, m, s := t.Clock()
	return h*3600 + m*60 + s
}
