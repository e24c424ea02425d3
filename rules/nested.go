package rules

import (
	"reflect"
	"sort"

	"github.com/reoring/rulekit"
)

// Nested validates properties of a map or struct value. Keys of Rules are
// property paths joined with "." (escape a literal dot as `\.`); errors are
// reported under the full path. A "*" segment applies the remaining path to
// every item of the collection before it, as Each does.
//
// With nil Rules the value must be a struct; rules are taken from its
// RulesProvider implementation, if any.
type Nested struct {
	Rules rulekit.RuleSet
	// AllowMissingPropertyPath validates paths that do not exist in the value
	// as nil instead of reporting NoPropertyPathMessage.
	AllowMissingPropertyPath bool
	// DisableEachShortcut treats "*" as a literal key.
	DisableEachShortcut bool

	NoPropertyPathMessage      string
	IncorrectInputMessage      string
	NoRulesWithNoObjectMessage string

	Conditions
}

const (
	nestedNoPropertyPathMessage = `Property "{path}" is not found.`
	nestedIncorrectInputMessage = "{Property} must be a map or an object. {type} given."
	nestedNoRulesMessage        = "Nested rule without rules requires {property} to be an object. {type} given."

	eachShortcut = "*"
)

func (Nested) Name() string                 { return "nested" }
func (Nested) Handler() rulekit.RuleHandler { return nestedHandler{} }

type nestedHandler struct{}

func (nestedHandler) Validate(value any, rule rulekit.Rule, ctx *rulekit.ValidationContext) (*rulekit.Result, error) {
	r, err := ruleAs[Nested](rule)
	if err != nil {
		return nil, err
	}
	res := rulekit.NewResult()
	if r.Rules == nil {
		rv := rulekit.Indirect(reflect.ValueOf(value))
		if !rv.IsValid() || rv.Kind() != reflect.Struct {
			return res.AddError(msg(r.NoRulesWithNoObjectMessage, nestedNoRulesMessage), ctx.ErrorParams("type", rulekit.TypeName(value))), nil
		}
		if _, ok := value.(rulekit.RulesProvider); !ok {
			return res, nil
		}
		return ctx.Validate(value, nil)
	}
	if !hasProperties(value) {
		return res.AddError(msg(r.IncorrectInputMessage, nestedIncorrectInputMessage), ctx.ErrorParams("type", rulekit.TypeName(value))), nil
	}

	for _, e := range r.entries() {
		if len(e.path) == 0 {
			sub, err := ctx.Validate(value, rulekit.RuleSet{"": e.rules})
			if err != nil {
				return nil, err
			}
			res.AddErrors(sub)
			continue
		}
		if !r.AllowMissingPropertyPath {
			if _, ok := rulekit.ValueByPath(value, e.path); !ok {
				res.AddError(msg(r.NoPropertyPathMessage, nestedNoPropertyPathMessage), ctx.ErrorParams("path", e.key), toAny(e.path)...)
				continue
			}
		}
		parent, last := e.path[:len(e.path)-1], e.path[len(e.path)-1]
		container := value
		if len(parent) > 0 {
			container, _ = rulekit.ValueByPath(value, parent)
		}
		sub, err := ctx.Validate(container, rulekit.RuleSet{last: e.rules})
		if err != nil {
			return nil, err
		}
		res.AddErrors(sub, toAny(parent)...)
	}
	return res, nil
}

type nestedEntry struct {
	key   string
	path  []string
	rules []rulekit.Rule
}

// entries splits rule keys into paths and folds "*" keys into Each rules,
// grouped by the path before the first "*".
func (r Nested) entries() []nestedEntry {
	byKey := map[string][]rulekit.Rule{}
	groups := map[string]rulekit.RuleSet{}
	for key, rules := range r.Rules {
		path := rulekit.ParsePath(key, rulekit.DefaultPathSeparator)
		star := -1
		if !r.DisableEachShortcut {
			for i, seg := range path {
				if seg == eachShortcut {
					star = i
					break
				}
			}
		}
		if star < 0 {
			byKey[key] = append(byKey[key], rules...)
			continue
		}
		prefix := rulekit.FormatPath(toAny(path[:star]), rulekit.DefaultPathSeparator)
		rest := rulekit.FormatPath(toAny(path[star+1:]), rulekit.DefaultPathSeparator)
		if groups[prefix] == nil {
			groups[prefix] = rulekit.RuleSet{}
		}
		groups[prefix][rest] = append(groups[prefix][rest], rules...)
	}
	for _, prefix := range sortedRuleSetKeys(groups) {
		sub := groups[prefix]
		var each []rulekit.Rule
		if direct, ok := sub[""]; ok {
			each = append(each, direct...)
			delete(sub, "")
		}
		if len(sub) > 0 {
			each = append(each, Nested{
				Rules:                    sub,
				AllowMissingPropertyPath: r.AllowMissingPropertyPath,
				NoPropertyPathMessage:    r.NoPropertyPathMessage,
				IncorrectInputMessage:    r.IncorrectInputMessage,
			})
		}
		byKey[prefix] = append(byKey[prefix], Each{Rules: each})
	}

	keys := make([]string, 0, len(byKey))
	for k := range byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]nestedEntry, 0, len(keys))
	for _, k := range keys {
		out = append(out, nestedEntry{key: k, path: rulekit.ParsePath(k, rulekit.DefaultPathSeparator), rules: byKey[k]})
	}
	return out
}

// hasProperties reports whether value can be navigated by property path:
// maps, structs, and slices or arrays (by index).
func hasProperties(value any) bool {
	if rulekit.IsObjectLike(value) {
		return true
	}
	rv := rulekit.Indirect(reflect.ValueOf(value))
	return rv.IsValid() && (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array)
}

func sortedRuleSetKeys(m map[string]rulekit.RuleSet) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
