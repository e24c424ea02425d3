package ruleconf

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/reoring/rulekit"
	"github.com/reoring/rulekit/rules"
)

// Params gives a Builder typed access to the parameters of one rule entry.
// Accessors record the first problem they meet; Err reports it together with
// any parameter the builder never read.
type Params struct {
	rule string
	path string
	reg  *Registry
	m    map[string]any
	used map[string]bool
	err  error
}

func newParams(reg *Registry, rule, path string, m map[string]any) *Params {
	if m == nil {
		m = map[string]any{}
	}
	return &Params{rule: rule, path: path, reg: reg, m: m, used: map[string]bool{}}
}

// Rule is the name of the rule being built.
func (p *Params) Rule() string { return p.rule }

// Has reports whether key is set.
func (p *Params) Has(key string) bool {
	_, ok := p.m[key]
	return ok
}

// Value returns the raw decoded value of key.
func (p *Params) Value(key string) (any, bool) {
	v, ok := p.m[key]
	if ok {
		p.used[key] = true
	}
	return v, ok
}

// Failf records a configuration problem.
func (p *Params) Failf(format string, args ...any) {
	if p.err == nil {
		p.err = rulekit.NewConfigError(p.rule, "%s: %s", p.path, fmt.Sprintf(format, args...))
	}
}

func (p *Params) typeError(key, want string, got any) {
	p.Failf("parameter %q must be %s, got %s", key, want, rulekit.TypeName(got))
}

// String returns a string parameter, or "" when unset.
func (p *Params) String(key string) string {
	v, ok := p.Value(key)
	if !ok || v == nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		p.typeError(key, "a string", v)
	}
	return s
}

// Bool returns a boolean parameter, or false when unset.
func (p *Params) Bool(key string) bool {
	v, ok := p.Value(key)
	if !ok || v == nil {
		return false
	}
	b, ok := v.(bool)
	if !ok {
		p.typeError(key, "a boolean", v)
	}
	return b
}

// Int returns an integer parameter, or 0 when unset.
func (p *Params) Int(key string) int {
	v, ok := p.Value(key)
	if !ok || v == nil {
		return 0
	}
	switch x := v.(type) {
	case int64:
		return int(x)
	case int:
		return x
	case float64:
		if x == math.Trunc(x) {
			return int(x)
		}
	}
	p.typeError(key, "an integer", v)
	return 0
}

// Float returns a numeric parameter, or nil when unset.
func (p *Params) Float(key string) *float64 {
	v, ok := p.Value(key)
	if !ok || v == nil {
		return nil
	}
	switch x := v.(type) {
	case int64:
		return rules.Float(float64(x))
	case int:
		return rules.Float(float64(x))
	case float64:
		return rules.Float(x)
	}
	p.typeError(key, "a number", v)
	return nil
}

// List returns a sequence parameter.
func (p *Params) List(key string) []any {
	v, ok := p.Value(key)
	if !ok || v == nil {
		return nil
	}
	l, ok := v.([]any)
	if !ok {
		p.typeError(key, "a list", v)
	}
	return l
}

// Strings returns a sequence of strings.
func (p *Params) Strings(key string) []string {
	l := p.List(key)
	if l == nil {
		return nil
	}
	out := make([]string, 0, len(l))
	for _, item := range l {
		s, ok := item.(string)
		if !ok {
			p.typeError(key, "a list of strings", item)
			return nil
		}
		out = append(out, s)
	}
	return out
}

// Rules builds the rule list held by key.
func (p *Params) Rules(key string) []rulekit.Rule {
	v, ok := p.Value(key)
	if !ok || p.err != nil {
		return nil
	}
	rs, err := p.reg.buildList(v, p.path+"."+p.rule)
	if err != nil && p.err == nil {
		p.err = err
	}
	return rs
}

// RuleSet builds the property to rules mapping held by key.
func (p *Params) RuleSet(key string) rulekit.RuleSet {
	v, ok := p.Value(key)
	if !ok || p.err != nil {
		return nil
	}
	rs, err := p.reg.buildRuleSet(v, p.path+"."+p.rule)
	if err != nil && p.err == nil {
		p.err = err
	}
	return rs
}

// EmptyCondition reads an emptiness predicate: empty, trimmed, null, missing
// or never. true means empty; false and unset mean nil.
func (p *Params) EmptyCondition(key string) rulekit.EmptyCondition {
	v, ok := p.Value(key)
	if !ok || v == nil {
		return nil
	}
	switch x := v.(type) {
	case bool:
		if x {
			return rulekit.WhenEmpty
		}
		return nil
	case string:
		if c, ok := emptyConditions[strings.ToLower(x)]; ok {
			return c
		}
		p.Failf("parameter %q: unknown empty condition %q", key, x)
		return nil
	}
	p.typeError(key, "a string or a boolean", v)
	return nil
}

var emptyConditions = map[string]rulekit.EmptyCondition{
	"empty":   rulekit.WhenEmpty,
	"trimmed": rulekit.WhenEmptyTrimmed,
	"null":    rulekit.WhenNull,
	"missing": rulekit.WhenMissing,
	"never":   rulekit.NeverEmpty,
}

// Conditions reads skip_on_empty and skip_on_error.
func (p *Params) Conditions() rules.Conditions {
	return rules.Conditions{
		SkipOnEmpty: p.EmptyCondition("skip_on_empty"),
		SkipOnError: p.Bool("skip_on_error"),
	}
}

// Err returns the first recorded problem, or an error naming the parameters
// the builder did not consume.
func (p *Params) Err() error {
	if p.err != nil {
		return p.err
	}
	var unknown []string
	for k := range p.m {
		if !p.used[k] {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return rulekit.NewConfigError(p.rule, "%s: unknown parameters %s", p.path, strings.Join(unknown, ", "))
	}
	return nil
}
