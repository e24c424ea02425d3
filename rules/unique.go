package rules

import (
	"fmt"
	"math"
	"reflect"
	"time"

	"github.com/reoring/rulekit"
)

// UniqueIterable checks that the items of a slice, array or map are unique.
// Items must be scalars, fmt.Stringer or time.Time, all of the same kind.
// Stringers compare by their string form.
type UniqueIterable struct {
	Message                   string
	IncorrectInputMessage     string
	IncorrectItemValueMessage string
	DifferentTypesMessage     string

	Conditions
}

// Unique is the former name of UniqueIterable.
//
// Deprecated: use UniqueIterable.
type Unique = UniqueIterable

const (
	uniqueMessage                   = "Every iterable's item of {property} must be unique."
	uniqueIncorrectInputMessage     = "{Property} must be array or iterable. {type} given."
	uniqueIncorrectItemValueMessage = "The allowed types for item values of {property} are integer, float, string, boolean, Stringer and time.Time. {type} given."
	uniqueDifferentTypesMessage     = "All iterable items of {property} must have the same type."
)

func (UniqueIterable) Name() string                 { return "unique_iterable" }
func (UniqueIterable) Handler() rulekit.RuleHandler { return uniqueHandler{} }

type uniqueHandler struct{}

func (uniqueHandler) Validate(value any, rule rulekit.Rule, ctx *rulekit.ValidationContext) (*rulekit.Result, error) {
	r, err := ruleAs[UniqueIterable](rule)
	if err != nil {
		return nil, err
	}
	res := rulekit.NewResult()
	items, ok := iterableItems(value)
	if !ok {
		return res.AddError(msg(r.IncorrectInputMessage, uniqueIncorrectInputMessage), ctx.ErrorParams("type", rulekit.TypeName(value))), nil
	}
	var (
		kind string
		seen = make(map[any]struct{}, len(items))
	)
	for _, item := range items {
		k, key, ok := uniqueKey(item)
		if !ok {
			return res.AddError(msg(r.IncorrectItemValueMessage, uniqueIncorrectItemValueMessage), ctx.ErrorParams("type", rulekit.TypeName(item))), nil
		}
		if kind == "" {
			kind = k
		} else if kind != k {
			return res.AddError(msg(r.DifferentTypesMessage, uniqueDifferentTypesMessage), ctx.ErrorParams()), nil
		}
		if _, dup := seen[key]; dup {
			return res.AddError(msg(r.Message, uniqueMessage), ctx.ErrorParams()), nil
		}
		seen[key] = struct{}{}
	}
	return res, nil
}

func iterableItems(v any) ([]any, bool) {
	rv := rulekit.Indirect(reflect.ValueOf(v))
	if !rv.IsValid() {
		return nil, false
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out, true
	case reflect.Map:
		keys, ok := sortedKeys(rv)
		if !ok {
			keys = nil
			for _, k := range rv.MapKeys() {
				keys = append(keys, mapKey{value: k})
			}
		}
		out := make([]any, 0, len(keys))
		for _, k := range keys {
			out = append(out, rv.MapIndex(k.value).Interface())
		}
		return out, true
	default:
		return nil, false
	}
}

// uniqueKey classifies an item and returns a comparable key for it. Integers
// and floats are distinct kinds, so 1 and 1.0 do not collide.
func uniqueKey(v any) (kind string, key any, ok bool) {
	switch x := v.(type) {
	case time.Time:
		return "time", x.UnixNano(), true
	case fmt.Stringer:
		return "string", x.String(), true
	}
	switch x := scalarOf(v).(type) {
	case int, int8, int16, int32, int64:
		return "integer", reflect.ValueOf(x).Int(), true
	case uint, uint8, uint16, uint32, uint64, uintptr:
		u := reflect.ValueOf(x).Uint()
		if u <= math.MaxInt64 {
			return "integer", int64(u), true
		}
		return "integer", u, true
	case float32:
		return "float", float64(x), true
	case float64:
		return "float", x, true
	case string:
		return "string", x, true
	case bool:
		return "boolean", x, true
	default:
		return "", nil, false
	}
}
