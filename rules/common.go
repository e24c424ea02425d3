package rules

import (
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/reoring/rulekit"
)

// Conditions holds the skip settings shared by most rules. Embed it in a rule
// to make the rule honor skip-on-empty, skip-on-error and when.
type Conditions struct {
	// SkipOnEmpty skips the rule when it reports the value as empty. Nil
	// defers to the validator default.
	SkipOnEmpty rulekit.EmptyCondition
	// SkipOnError skips the rule when an earlier rule for the same value
	// failed.
	SkipOnError bool
	// When skips the rule when it returns false.
	When rulekit.WhenFunc
}

func (c Conditions) SkipOnEmptyCondition() rulekit.EmptyCondition { return c.SkipOnEmpty }
func (c Conditions) ShouldSkipOnError() bool                      { return c.SkipOnError }
func (c Conditions) WhenCondition() rulekit.WhenFunc              { return c.When }

// Float returns a pointer to v, for optional numeric bounds.
func Float(v float64) *float64 { return &v }

// ruleAs converts the rule passed to a handler into the concrete rule type,
// accepting both values and non-nil pointers.
func ruleAs[T rulekit.Rule](rule rulekit.Rule) (T, error) {
	if r, ok := rule.(T); ok {
		return r, nil
	}
	if p, ok := any(rule).(*T); ok && p != nil {
		return *p, nil
	}
	var zero T
	return zero, rulekit.NewUnexpectedRuleError(zero, rule)
}

// msg picks a custom message template over the default one.
func msg(custom, def string) string {
	if custom != "" {
		return custom
	}
	return def
}

var (
	integerPattern = regexp.MustCompile(`^\s*[+-]?\d+\s*$`)
	numberPattern  = regexp.MustCompile(`^\s*[-+]?\d*\.?\d+(?:[eE][-+]?\d+)?\s*$`)
)

// number describes how a value reads as a number.
type number struct {
	value     float64
	isInt     bool
	typeOK    bool // integer, float or string
	isNumeric bool
}

func parseNumber(v any) number {
	switch x := scalarOf(v).(type) {
	case int, int8, int16, int32, int64:
		f := float64(reflect.ValueOf(x).Int())
		return number{value: f, isInt: true, typeOK: true, isNumeric: true}
	case uint, uint8, uint16, uint32, uint64, uintptr:
		f := float64(reflect.ValueOf(x).Uint())
		return number{value: f, isInt: true, typeOK: true, isNumeric: true}
	case float32:
		return floatNumber(float64(x))
	case float64:
		return floatNumber(x)
	case string:
		n := number{typeOK: true}
		if !numberPattern.MatchString(x) {
			return n
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return n
		}
		n.value, n.isNumeric = f, true
		n.isInt = integerPattern.MatchString(x)
		return n
	default:
		return number{}
	}
}

func floatNumber(f float64) number {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return number{typeOK: true}
	}
	return number{value: f, typeOK: true, isNumeric: true, isInt: f == math.Trunc(f)}
}

// isScalar reports whether v is nil, a bool, a number or a string.
func isScalar(v any) bool {
	switch scalarOf(v).(type) {
	case nil, bool, string,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64:
		return true
	default:
		return false
	}
}

// scalarString renders scalars the way loose comparisons see them: booleans
// are "1" and "0", nil is "".
func scalarString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case bool:
		if x {
			return "1"
		}
		return "0"
	case string:
		return x
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case time.Time:
		return x.Format(time.RFC3339Nano)
	case fmt.Stringer:
		return x.String()
	default:
		if s := scalarOf(x); reflect.TypeOf(s) != reflect.TypeOf(x) {
			return scalarString(s)
		}
		return fmt.Sprint(x)
	}
}

// scalarOf converts a value of a named scalar type, such as
// type Status string, to its underlying built-in type. Anything else is
// returned unchanged.
func scalarOf(v any) any {
	switch v.(type) {
	case nil, bool, string,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64:
		return v
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint()
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	}
	return v
}

// stringOf returns v as a string when its underlying type is string.
func stringOf(v any) (string, bool) {
	s, ok := scalarOf(v).(string)
	return s, ok
}

// looseEqual compares two values without regard to their Go types: numbers
// compare numerically, everything else by scalar rendering.
func looseEqual(a, b any) bool {
	if isScalar(a) && isScalar(b) {
		na, nb := parseNumber(a), parseNumber(b)
		if na.isNumeric && nb.isNumeric {
			return na.value == nb.value
		}
		return scalarString(a) == scalarString(b)
	}
	return reflect.DeepEqual(a, b)
}

func strictEqual(a, b any) bool {
	return reflect.TypeOf(a) == reflect.TypeOf(b) && reflect.DeepEqual(a, b)
}

func contains(haystack []any, needle any, strict bool) bool {
	for _, v := range haystack {
		if strict && strictEqual(v, needle) || !strict && looseEqual(v, needle) {
			return true
		}
	}
	return false
}

// quotedList renders names as "a", "b".
func quotedList(names []string) string {
	q := make([]string, len(names))
	for i, n := range names {
		q[i] = strconv.Quote(n)
	}
	return strings.Join(q, ", ")
}

func toAny(segs []string) []any {
	out := make([]any, len(segs))
	for i, s := range segs {
		out[i] = s
	}
	return out
}
