// Package rulekit validates values and object properties against declarative
// rules.
//
// A Rule is an immutable value describing a constraint (see the rules
// package for the built-in set). Each rule knows its RuleHandler, which checks
// a value and reports failures as data in a Result. Composite rules such as
// Nested, Each or Composite recurse into child rules through the
// ValidationContext and prefix child errors with the traversed path.
//
// Design policy:
//   - Validation failures are data (Result/Error), never Go errors.
//   - Programmer errors (wrong rule type for a handler, malformed rule
//     configuration) are returned as Go errors and abort the call.
//   - Keep the contracts in the root package; concrete rules live under rules/,
//     messages and formatting under i18n/, YAML rule sets under ruleconf/.
//
// Typical usage:
//
//	v := rulekit.NewValidator()
//	res, err := v.Validate(data, rulekit.RuleSet{
//	    "name": {rules.Required{}, rules.Length{Max: 50}},
//	    "age":  {rules.Number{Min: rules.Float(18)}},
//	})
//	if err != nil {
//	    // misconfigured rules
//	}
//	if !res.IsValid() {
//	    fmt.Println(res.ErrorMessagesIndexedByPath("."))
//	}
package rulekit
