package rules

import (
	"reflect"
	"sort"

	"github.com/reoring/rulekit"
)

// Each applies Rules to every item of a slice, array or map. Errors are
// prefixed with the item index or map key. Map keys must be strings or
// integers and are visited in ascending order.
type Each struct {
	Rules []rulekit.Rule

	IncorrectInputMessage    string
	IncorrectInputKeyMessage string

	Conditions
}

const (
	eachIncorrectInputMessage    = "{Property} must be a slice, an array or a map. {type} given."
	eachIncorrectInputKeyMessage = "Every map key of {property} must be an integer or a string. {type} given."
)

func (Each) Name() string                 { return "each" }
func (Each) Handler() rulekit.RuleHandler { return eachHandler{} }

type eachHandler struct{}

func (eachHandler) Validate(value any, rule rulekit.Rule, ctx *rulekit.ValidationContext) (*rulekit.Result, error) {
	r, err := ruleAs[Each](rule)
	if err != nil {
		return nil, err
	}
	res := rulekit.NewResult()
	rv := rulekit.Indirect(reflect.ValueOf(value))
	if !rv.IsValid() {
		return res.AddError(msg(r.IncorrectInputMessage, eachIncorrectInputMessage), ctx.ErrorParams("type", rulekit.TypeName(value))), nil
	}
	item := func(v any, seg any) error {
		sub, err := ctx.Validate(v, rulekit.RuleSet{"": r.Rules})
		if err != nil {
			return err
		}
		res.AddErrors(sub, seg)
		return nil
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			if err := item(rv.Index(i).Interface(), i); err != nil {
				return nil, err
			}
		}
	case reflect.Map:
		keys, ok := sortedKeys(rv)
		if !ok {
			return res.AddError(msg(r.IncorrectInputKeyMessage, eachIncorrectInputKeyMessage), ctx.ErrorParams("type", rv.Type().Key().String())), nil
		}
		for _, k := range keys {
			if err := item(rv.MapIndex(k.value).Interface(), k.seg); err != nil {
				return nil, err
			}
		}
	default:
		res.AddError(msg(r.IncorrectInputMessage, eachIncorrectInputMessage), ctx.ErrorParams("type", rulekit.TypeName(value)))
	}
	return res, nil
}

type mapKey struct {
	value reflect.Value
	seg   any // string or int
}

func sortedKeys(m reflect.Value) ([]mapKey, bool) {
	keys := make([]mapKey, 0, m.Len())
	switch m.Type().Key().Kind() {
	case reflect.String:
		for _, k := range m.MapKeys() {
			keys = append(keys, mapKey{value: k, seg: k.String()})
		}
		sort.Slice(keys, func(i, j int) bool { return keys[i].seg.(string) < keys[j].seg.(string) })
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		for _, k := range m.MapKeys() {
			keys = append(keys, mapKey{value: k, seg: int(k.Int())})
		}
		sort.Slice(keys, func(i, j int) bool { return keys[i].seg.(int) < keys[j].seg.(int) })
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		for _, k := range m.MapKeys() {
			keys = append(keys, mapKey{value: k, seg: int(k.Uint())})
		}
		sort.Slice(keys, func(i, j int) bool { return keys[i].seg.(int) < keys[j].seg.(int) })
	default:
		return nil, false
	}
	return keys, true
}
