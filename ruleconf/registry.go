// Package ruleconf compiles declarative rule sets into rulekit.RuleSet
// values.
//
// A rule set document maps property names to lists of rule entries. An entry
// is either a bare rule name or a single-key mapping from the rule name to
// its parameters:
//
//	title:
//	  - required
//	  - length: {max: 120, skip_on_empty: trimmed}
//	author:
//	  - nested:
//	      rules:
//	        age: [{number: {min: 18}}]
//	tags:
//	  - each: {rules: [string_value]}
//
// Documents are YAML (duplicate keys rejected) or JSON.
package ruleconf

import (
	"fmt"
	"sort"
	"sync"

	"github.com/reoring/rulekit"
	"github.com/reoring/rulekit/source"
)

// Builder creates a rule from its parameters. It may return p.Err().
type Builder func(p *Params) (rulekit.Rule, error)

// Registry maps rule names to builders. It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	builders map[string]Builder
}

// NewRegistry returns a registry holding every built-in rule.
func NewRegistry() *Registry {
	r := &Registry{builders: make(map[string]Builder, len(builtins))}
	for name, b := range builtins {
		r.builders[name] = b
	}
	return r
}

// Default is the registry used by the package-level functions.
var Default = NewRegistry()

// Register adds or replaces the builder for name.
func (r *Registry) Register(name string, b Builder) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.builders[name] = b
}

// Names lists the registered rule names in order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.builders))
	for n := range r.builders {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) builder(name string) (Builder, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.builders[name]
	return b, ok
}

// Load decodes a YAML or JSON rule set document.
func (r *Registry) Load(data []byte) (rulekit.RuleSet, error) {
	doc, err := source.Decode(data, source.DetectFormat("", data))
	if err != nil {
		return nil, fmt.Errorf("ruleconf: %w", err)
	}
	return r.Compile(doc)
}

// LoadFile reads and compiles the rule set stored at path.
func (r *Registry) LoadFile(path string) (rulekit.RuleSet, error) {
	doc, err := source.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ruleconf: %w", err)
	}
	return r.Compile(doc)
}

// Compile builds a rule set from an already decoded document.
func (r *Registry) Compile(doc any) (rulekit.RuleSet, error) {
	if doc == nil {
		return rulekit.RuleSet{}, nil
	}
	return r.buildRuleSet(doc, "")
}

// Build builds a single entry.
func (r *Registry) Build(entry any) (rulekit.Rule, error) {
	return r.buildEntry(entry, "")
}

func (r *Registry) buildRuleSet(v any, path string) (rulekit.RuleSet, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, rulekit.NewConfigError("", "%s: rule set must be a mapping, got %s", orRoot(path), rulekit.TypeName(v))
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	rs := make(rulekit.RuleSet, len(m))
	for _, k := range keys {
		list, err := r.buildList(m[k], join(path, k))
		if err != nil {
			return nil, err
		}
		rs[k] = list
	}
	return rs, nil
}

func (r *Registry) buildList(v any, path string) ([]rulekit.Rule, error) {
	var entries []any
	switch x := v.(type) {
	case nil:
		return nil, nil
	case []any:
		entries = x
	default:
		entries = []any{x}
	}
	out := make([]rulekit.Rule, 0, len(entries))
	for i, e := range entries {
		rule, err := r.buildEntry(e, fmt.Sprintf("%s[%d]", orRoot(path), i))
		if err != nil {
			return nil, err
		}
		out = append(out, rule)
	}
	return out, nil
}

func (r *Registry) buildEntry(e any, path string) (rulekit.Rule, error) {
	var (
		name   string
		params map[string]any
	)
	switch x := e.(type) {
	case string:
		name = x
	case map[string]any:
		if len(x) != 1 {
			return nil, rulekit.NewConfigError("", "%s: rule entry must have exactly one key, got %d", orRoot(path), len(x))
		}
		for k, v := range x {
			name = k
			switch pv := v.(type) {
			case nil:
			case map[string]any:
				params = pv
			default:
				return nil, rulekit.NewConfigError(k, "%s: parameters must be a mapping, got %s", orRoot(path), rulekit.TypeName(v))
			}
		}
	default:
		return nil, rulekit.NewConfigError("", "%s: rule entry must be a name or a mapping, got %s", orRoot(path), rulekit.TypeName(e))
	}
	b, ok := r.builder(name)
	if !ok {
		return nil, rulekit.NewConfigError(name, "%s: unknown rule", orRoot(path))
	}
	p := newParams(r, name, orRoot(path), params)
	rule, err := b(p)
	if err != nil {
		return nil, err
	}
	if err := p.Err(); err != nil {
		return nil, err
	}
	return rule, nil
}

func join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func orRoot(path string) string {
	if path == "" {
		return "$"
	}
	return path
}

// Load compiles a rule set document with the Default registry.
func Load(data []byte) (rulekit.RuleSet, error) { return Default.Load(data) }

// LoadFile compiles a rule set file with the Default registry.
func LoadFile(path string) (rulekit.RuleSet, error) { return Default.LoadFile(path) }
