// Package rules provides the built-in validation rules.
//
// Rules are plain struct values configured with struct literals; the zero
// value of every optional field selects the default. Each rule carries its
// handler, so a rulekit.Validator needs no registration:
//
//	res, err := rulekit.NewValidator().Validate(post, rulekit.RuleSet{
//		"title":  {rules.Required{}, rules.Length{Max: 120}},
//		"author": {rules.Nested{Rules: rulekit.RuleSet{
//			"age": {rules.Number{Min: rules.Float(18)}},
//		}}},
//		"tags":   {rules.Each{Rules: []rulekit.Rule{rules.StringValue{}}}},
//	})
//
// Message fields override the default English templates. Templates use
// {placeholder} substitution and the plural/number forms understood by
// i18n.MessageFormatter.
//
// Handlers return an error only for programmer errors: a malformed rule
// (rulekit.ErrInvalidConfig) or a rule of the wrong type
// (rulekit.ErrUnexpectedRule).
package rules
