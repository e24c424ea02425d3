package rulekit

import "reflect"

// HandlerResolver picks the handler that executes a rule.
type HandlerResolver interface {
	Resolve(rule Rule) (RuleHandler, error)
}

// DefaultHandlerResolver returns the rule's own handler.
type DefaultHandlerResolver struct{}

func (DefaultHandlerResolver) Resolve(rule Rule) (RuleHandler, error) {
	h := rule.Handler()
	if h == nil {
		return nil, NewConfigError(RuleName(rule), "rule has no handler")
	}
	return h, nil
}

// MapHandlerResolver overrides handlers by rule name (see NamedRule). Rules
// without an override use their own handler.
type MapHandlerResolver map[string]RuleHandler

func (m MapHandlerResolver) Resolve(rule Rule) (RuleHandler, error) {
	if h, ok := m[RuleName(rule)]; ok && h != nil {
		return h, nil
	}
	return DefaultHandlerResolver{}.Resolve(rule)
}

// sameHandler reports whether a and b are the same handler. Function
// handlers compare by code pointer.
func sameHandler(a, b RuleHandler) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	switch {
	case ta != tb:
		return false
	case ta == nil:
		return true
	case ta.Kind() == reflect.Func:
		return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
	case ta.Comparable():
		return a == b
	}
	return true
}
