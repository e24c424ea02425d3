package ruleconf

import (
	"regexp"
	"time"

	"github.com/reoring/rulekit"
	"github.com/reoring/rulekit/rules"
)

var builtins = map[string]Builder{
	"required":        buildRequired,
	"number":          buildNumber,
	"integer":         buildInteger,
	"length":          buildLength,
	"has_length":      buildLength,
	"count":           buildCount,
	"regex":           buildRegex,
	"email":           buildEmail,
	"url":             buildUrl,
	"ip":              buildIp,
	"json":            buildJson,
	"uuid":            buildUuid,
	"string_value":    buildStringValue,
	"boolean_value":   buildBooleanValue,
	"true_value":      buildTrueValue,
	"in":              buildIn,
	"in_range":        buildIn,
	"subset":          buildSubset,
	"unique_iterable": buildUnique,
	"unique":          buildUnique,

	"compare":               buildCompare(""),
	"equal":                 buildCompare(rules.OpEqual),
	"not_equal":             buildCompare(rules.OpNotEqual),
	"greater_than":          buildCompare(rules.OpGreater),
	"greater_than_or_equal": buildCompare(rules.OpGreaterOrEqual),
	"less_than":             buildCompare(rules.OpLess),
	"less_than_or_equal":    buildCompare(rules.OpLessOrEqual),

	"date":      buildDate(time.DateOnly, func(d rules.Date) rulekit.Rule { return d }),
	"date_time": buildDate(time.DateTime, func(d rules.Date) rulekit.Rule { return rules.DateTime(d) }),
	"time":      buildDate(time.TimeOnly, func(d rules.Date) rulekit.Rule { return rules.Time(d) }),

	"each":               buildEach,
	"nested":             buildNested,
	"composite":          buildComposite,
	"stop_on_error":      buildStopOnError,
	"any":                buildAny,
	"one_of":             buildOneOf,
	"filled_at_least":    buildFilledAtLeast,
	"at_least":           buildFilledAtLeast,
	"filled_only_one_of": buildFilledOnlyOneOf,
}

func buildRequired(p *Params) (rulekit.Rule, error) {
	return rules.Required{
		EmptyCondition:   p.EmptyCondition("empty_condition"),
		Message:          p.String("message"),
		NotPassedMessage: p.String("not_passed_message"),
		SkipOnError:      p.Bool("skip_on_error"),
	}, nil
}

func buildNumber(p *Params) (rulekit.Rule, error) {
	return rules.Number{
		Min:                   p.Float("min"),
		Max:                   p.Float("max"),
		IntegerOnly:           p.Bool("integer_only"),
		IncorrectInputMessage: p.String("incorrect_input_message"),
		NotNumberMessage:      p.String("not_number_message"),
		LessThanMinMessage:    p.String("less_than_min_message"),
		GreaterThanMaxMessage: p.String("greater_than_max_message"),
		Conditions:            p.Conditions(),
	}, nil
}

func buildInteger(p *Params) (rulekit.Rule, error) {
	r, err := buildNumber(p)
	if err != nil {
		return nil, err
	}
	n := r.(rules.Number)
	n.IntegerOnly = true
	return n, nil
}

func buildLength(p *Params) (rulekit.Rule, error) {
	return rules.Length{
		Min:                   p.Int("min"),
		Max:                   p.Int("max"),
		Exactly:               p.Int("exactly"),
		IncorrectInputMessage: p.String("incorrect_input_message"),
		LessThanMinMessage:    p.String("less_than_min_message"),
		GreaterThanMaxMessage: p.String("greater_than_max_message"),
		NotExactlyMessage:     p.String("not_exactly_message"),
		Conditions:            p.Conditions(),
	}, nil
}

func buildCount(p *Params) (rulekit.Rule, error) {
	return rules.Count{
		Min:                   p.Int("min"),
		Max:                   p.Int("max"),
		Exactly:               p.Int("exactly"),
		IncorrectInputMessage: p.String("incorrect_input_message"),
		LessThanMinMessage:    p.String("less_than_min_message"),
		GreaterThanMaxMessage: p.String("greater_than_max_message"),
		NotExactlyMessage:     p.String("not_exactly_message"),
		Conditions:            p.Conditions(),
	}, nil
}

func buildRegex(p *Params) (rulekit.Rule, error) {
	pattern := p.String("pattern")
	if pattern == "" {
		p.Failf("parameter %q is required", "pattern")
		return nil, p.Err()
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		p.Failf("parameter %q: %v", "pattern", err)
		return nil, p.Err()
	}
	return rules.Regex{
		Pattern:               re,
		Not:                   p.Bool("not"),
		Message:               p.String("message"),
		IncorrectInputMessage: p.String("incorrect_input_message"),
		Conditions:            p.Conditions(),
	}, nil
}

func buildEmail(p *Params) (rulekit.Rule, error) {
	return rules.Email{
		AllowName:             p.Bool("allow_name"),
		EnableIDN:             p.Bool("enable_idn"),
		Message:               p.String("message"),
		IncorrectInputMessage: p.String("incorrect_input_message"),
		Conditions:            p.Conditions(),
	}, nil
}

func buildUrl(p *Params) (rulekit.Rule, error) {
	return rules.Url{
		ValidSchemes:          p.Strings("valid_schemes"),
		EnableIDN:             p.Bool("enable_idn"),
		Message:               p.String("message"),
		IncorrectInputMessage: p.String("incorrect_input_message"),
		Conditions:            p.Conditions(),
	}, nil
}

func buildIp(p *Params) (rulekit.Rule, error) {
	return rules.Ip{
		DisallowIPv4:          p.Bool("disallow_ipv4"),
		DisallowIPv6:          p.Bool("disallow_ipv6"),
		AllowSubnet:           p.Bool("allow_subnet"),
		RequireSubnet:         p.Bool("require_subnet"),
		AllowNegation:         p.Bool("allow_negation"),
		Ranges:                p.Strings("ranges"),
		IncorrectInputMessage: p.String("incorrect_input_message"),
		Message:               p.String("message"),
		IPv4NotAllowedMessage: p.String("ipv4_not_allowed_message"),
		IPv6NotAllowedMessage: p.String("ipv6_not_allowed_message"),
		WrongCidrMessage:      p.String("wrong_cidr_message"),
		NoSubnetMessage:       p.String("no_subnet_message"),
		HasSubnetMessage:      p.String("has_subnet_message"),
		NotInRangeMessage:     p.String("not_in_range_message"),
		Conditions:            p.Conditions(),
	}, nil
}

func buildJson(p *Params) (rulekit.Rule, error) {
	return rules.Json{
		Message:               p.String("message"),
		IncorrectInputMessage: p.String("incorrect_input_message"),
		Conditions:            p.Conditions(),
	}, nil
}

func buildUuid(p *Params) (rulekit.Rule, error) {
	return rules.Uuid{
		Message:               p.String("message"),
		IncorrectInputMessage: p.String("incorrect_input_message"),
		Conditions:            p.Conditions(),
	}, nil
}

func buildStringValue(p *Params) (rulekit.Rule, error) {
	return rules.StringValue{Message: p.String("message"), Conditions: p.Conditions()}, nil
}

func buildBooleanValue(p *Params) (rulekit.Rule, error) {
	r := rules.BooleanValue{
		Strict:                p.Bool("strict"),
		Message:               p.String("message"),
		IncorrectInputMessage: p.String("incorrect_input_message"),
		Conditions:            p.Conditions(),
	}
	r.TrueValue, _ = p.Value("true_value")
	r.FalseValue, _ = p.Value("false_value")
	return r, nil
}

func buildTrueValue(p *Params) (rulekit.Rule, error) {
	r := rules.TrueValue{
		Strict:                p.Bool("strict"),
		Message:               p.String("message"),
		IncorrectInputMessage: p.String("incorrect_input_message"),
		Conditions:            p.Conditions(),
	}
	r.Value, _ = p.Value("value")
	return r, nil
}

func buildIn(p *Params) (rulekit.Rule, error) {
	return rules.In{
		Values:     p.List("values"),
		Strict:     p.Bool("strict"),
		Not:        p.Bool("not"),
		Message:    p.String("message"),
		Conditions: p.Conditions(),
	}, nil
}

func buildSubset(p *Params) (rulekit.Rule, error) {
	return rules.Subset{
		Values:                p.List("values"),
		Strict:                p.Bool("strict"),
		Message:               p.String("message"),
		IncorrectInputMessage: p.String("incorrect_input_message"),
		Conditions:            p.Conditions(),
	}, nil
}

func buildUnique(p *Params) (rulekit.Rule, error) {
	return rules.UniqueIterable{
		Message:                   p.String("message"),
		IncorrectInputMessage:     p.String("incorrect_input_message"),
		IncorrectItemValueMessage: p.String("incorrect_item_value_message"),
		DifferentTypesMessage:     p.String("different_types_message"),
		Conditions:                p.Conditions(),
	}, nil
}

// buildCompare reads a Compare rule. A non-empty op fixes the operator.
func buildCompare(op rules.Operator) Builder {
	return func(p *Params) (rulekit.Rule, error) {
		r := rules.Compare{
			TargetProperty:              p.String("target_property"),
			Operator:                    op,
			Type:                        rules.CompareType(p.String("type")),
			Message:                     p.String("message"),
			IncorrectInputMessage:       p.String("incorrect_input_message"),
			IncorrectDataSetTypeMessage: p.String("incorrect_data_set_type_message"),
			Conditions:                  p.Conditions(),
		}
		r.TargetValue, _ = p.Value("target_value")
		if op == "" {
			r.Operator = rules.Operator(p.String("operator"))
		}
		return r, nil
	}
}

// buildDate reads the date rules. min and max use the rule's own format.
func buildDate(layout string, wrap func(rules.Date) rulekit.Rule) Builder {
	return func(p *Params) (rulekit.Rule, error) {
		d := rules.Date{
			Format:                p.String("format"),
			IncorrectInputMessage: p.String("incorrect_input_message"),
			TooEarlyMessage:       p.String("too_early_message"),
			TooLateMessage:        p.String("too_late_message"),
			Conditions:            p.Conditions(),
		}
		layout := layout
		if d.Format != "" {
			layout = d.Format
		}
		d.Location = time.UTC
		if tz := p.String("timezone"); tz != "" {
			loc, err := time.LoadLocation(tz)
			if err != nil {
				p.Failf("parameter %q: %v", "timezone", err)
				return nil, p.Err()
			}
			d.Location = loc
		}
		for _, bound := range []struct {
			key string
			dst *time.Time
		}{{"min", &d.Min}, {"max", &d.Max}} {
			key, dst := bound.key, bound.dst
			s := p.String(key)
			if s == "" {
				continue
			}
			t, err := time.ParseInLocation(layout, s, d.Location)
			if err != nil {
				p.Failf("parameter %q: %v", key, err)
				return nil, p.Err()
			}
			*dst = t
		}
		return wrap(d), nil
	}
}

func buildEach(p *Params) (rulekit.Rule, error) {
	return rules.Each{
		Rules:                    p.Rules("rules"),
		IncorrectInputMessage:    p.String("incorrect_input_message"),
		IncorrectInputKeyMessage: p.String("incorrect_input_key_message"),
		Conditions:               p.Conditions(),
	}, nil
}

func buildNested(p *Params) (rulekit.Rule, error) {
	return rules.Nested{
		Rules:                      p.RuleSet("rules"),
		AllowMissingPropertyPath:   p.Bool("allow_missing_property_path"),
		DisableEachShortcut:        p.Bool("disable_each_shortcut"),
		NoPropertyPathMessage:      p.String("no_property_path_message"),
		IncorrectInputMessage:      p.String("incorrect_input_message"),
		NoRulesWithNoObjectMessage: p.String("no_rules_with_no_object_message"),
		Conditions:                 p.Conditions(),
	}, nil
}

func buildComposite(p *Params) (rulekit.Rule, error) {
	return rules.Composite{Rules: p.Rules("rules"), Conditions: p.Conditions()}, nil
}

func buildStopOnError(p *Params) (rulekit.Rule, error) {
	return rules.StopOnError{Rules: p.Rules("rules"), Conditions: p.Conditions()}, nil
}

func buildAny(p *Params) (rulekit.Rule, error) {
	return rules.AnyRule{Rules: p.Rules("rules"), Message: p.String("message"), Conditions: p.Conditions()}, nil
}

func buildOneOf(p *Params) (rulekit.Rule, error) {
	return rules.OneOf{Rules: p.Rules("rules"), Message: p.String("message"), Conditions: p.Conditions()}, nil
}

func buildFilledAtLeast(p *Params) (rulekit.Rule, error) {
	return rules.FilledAtLeast{
		Properties:            p.Strings("properties"),
		Min:                   p.Int("min"),
		IsEmpty:               p.EmptyCondition("is_empty"),
		Message:               p.String("message"),
		IncorrectInputMessage: p.String("incorrect_input_message"),
		Conditions:            p.Conditions(),
	}, nil
}

func buildFilledOnlyOneOf(p *Params) (rulekit.Rule, error) {
	return rules.FilledOnlyOneOf{
		Properties:            p.Strings("properties"),
		IsEmpty:               p.EmptyCondition("is_empty"),
		Message:               p.String("message"),
		IncorrectInputMessage: p.String("incorrect_input_message"),
		Conditions:            p.Conditions(),
	}, nil
}
