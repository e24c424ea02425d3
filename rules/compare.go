package rules

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/reoring/rulekit"
	"github.com/reoring/rulekit/i18n"
)

// Operator is a Compare operator.
type Operator string

const (
	OpEqual          Operator = "=="
	OpStrictEqual    Operator = "==="
	OpNotEqual       Operator = "!="
	OpStrictNotEqual Operator = "!=="
	OpGreater        Operator = ">"
	OpGreaterOrEqual Operator = ">="
	OpLess           Operator = "<"
	OpLessOrEqual    Operator = "<="
)

// CompareType selects how operands are compared.
type CompareType string

const (
	// CompareNumber compares operands as numbers (the default).
	CompareNumber CompareType = "number"
	// CompareString compares operands as strings.
	CompareString CompareType = "string"
	// CompareOriginal compares operands as they are: numbers numerically,
	// times chronologically, strings lexically.
	CompareOriginal CompareType = "original"
)

// Compare checks a value against TargetValue or against the value of
// TargetProperty in the same data set.
type Compare struct {
	TargetValue    any
	TargetProperty string
	// Operator defaults to OpEqual.
	Operator Operator
	// Type defaults to CompareNumber.
	Type CompareType

	Message                     string
	IncorrectInputMessage       string
	IncorrectDataSetTypeMessage string

	Conditions
}

// Equal compares with ==.
func Equal(target any) Compare { return Compare{TargetValue: target, Operator: OpEqual} }

// NotEqual compares with !=.
func NotEqual(target any) Compare { return Compare{TargetValue: target, Operator: OpNotEqual} }

// GreaterThan compares with >.
func GreaterThan(target any) Compare { return Compare{TargetValue: target, Operator: OpGreater} }

// GreaterThanOrEqual compares with >=.
func GreaterThanOrEqual(target any) Compare {
	return Compare{TargetValue: target, Operator: OpGreaterOrEqual}
}

// LessThan compares with <.
func LessThan(target any) Compare { return Compare{TargetValue: target, Operator: OpLess} }

// LessThanOrEqual compares with <=.
func LessThanOrEqual(target any) Compare {
	return Compare{TargetValue: target, Operator: OpLessOrEqual}
}

const (
	compareIncorrectInputMessage   = "The allowed types for {property} are integer, float, string, boolean, nil, Stringer and time.Time. {type} given."
	compareIncorrectDataSetMessage = "The allowed types for {targetProperty} are integer, float, string, boolean, nil, Stringer and time.Time. {type} given."
)

var compareMessages = map[Operator]string{
	OpEqual:          `{Property} must be equal to "{targetValueOrProperty}".`,
	OpStrictEqual:    `{Property} must be equal to "{targetValueOrProperty}".`,
	OpNotEqual:       `{Property} must not be equal to "{targetValueOrProperty}".`,
	OpStrictNotEqual: `{Property} must not be equal to "{targetValueOrProperty}".`,
	OpGreater:        `{Property} must be greater than "{targetValueOrProperty}".`,
	OpGreaterOrEqual: `{Property} must be greater than or equal to "{targetValueOrProperty}".`,
	OpLess:           `{Property} must be less than "{targetValueOrProperty}".`,
	OpLessOrEqual:    `{Property} must be less than or equal to "{targetValueOrProperty}".`,
}

func (Compare) Name() string                 { return "compare" }
func (Compare) Handler() rulekit.RuleHandler { return compareHandler{} }

type compareHandler struct{}

func (compareHandler) Validate(value any, rule rulekit.Rule, ctx *rulekit.ValidationContext) (*rulekit.Result, error) {
	r, err := ruleAs[Compare](rule)
	if err != nil {
		return nil, err
	}
	op := r.Operator
	if op == "" {
		op = OpEqual
	}
	def, ok := compareMessages[op]
	if !ok {
		return nil, rulekit.NewConfigError(r.Name(), "unknown operator %q", op)
	}
	typ := r.Type
	switch typ {
	case "":
		typ = CompareNumber
	case CompareNumber, CompareString, CompareOriginal:
	default:
		return nil, rulekit.NewConfigError(r.Name(), "unknown type %q", typ)
	}

	res := rulekit.NewResult()
	if !isCompareOperand(value) {
		return res.AddError(msg(r.IncorrectInputMessage, compareIncorrectInputMessage), ctx.ErrorParams("type", rulekit.TypeName(value))), nil
	}
	target := r.TargetValue
	targetOrProperty := i18n.Stringify(r.TargetValue)
	var targetLabel string
	if r.TargetProperty != "" {
		target = propertyValue(ctx.DataSet(), r.TargetProperty)
		targetLabel = ctx.PropertyLabel(r.TargetProperty)
		targetOrProperty = targetLabel
		if !isCompareOperand(target) {
			return res.AddError(msg(r.IncorrectDataSetTypeMessage, compareIncorrectDataSetMessage), ctx.ErrorParams(
				"targetProperty", targetLabel,
				"type", rulekit.TypeName(target),
			)), nil
		}
	}
	if !compareValues(op, typ, value, target) {
		params := ctx.ErrorParams(
			"targetValue", r.TargetValue,
			"targetProperty", targetLabel,
			"targetValueOrProperty", targetOrProperty,
			"value", value,
		)
		if r.TargetProperty != "" {
			params["targetPropertyValue"] = target
		}
		res.AddError(msg(r.Message, def), params)
	}
	return res, nil
}

// propertyValue reads a possibly dotted property from the data set.
func propertyValue(ds rulekit.DataSet, name string) any {
	if ds == nil {
		return nil
	}
	if ds.HasProperty(name) {
		return ds.PropertyValue(name)
	}
	v, _ := rulekit.ValueByPath(ds, rulekit.ParsePath(name, rulekit.DefaultPathSeparator))
	return v
}

func isCompareOperand(v any) bool {
	switch v.(type) {
	case time.Time, fmt.Stringer:
		return true
	default:
		return isScalar(v)
	}
}

func compareValues(op Operator, typ CompareType, a, b any) bool {
	switch op {
	case OpStrictEqual:
		return reflect.TypeOf(a) == reflect.TypeOf(b) && orderOf(typ, a, b) == 0
	case OpStrictNotEqual:
		return reflect.TypeOf(a) != reflect.TypeOf(b) || orderOf(typ, a, b) != 0
	}
	c := orderOf(typ, a, b)
	switch op {
	case OpEqual:
		return c == 0
	case OpNotEqual:
		return c != 0
	case OpGreater:
		return c == 1
	case OpGreaterOrEqual:
		return c == 1 || c == 0
	case OpLess:
		return c == -1
	case OpLessOrEqual:
		return c == -1 || c == 0
	}
	return false
}

// incomparable is returned by orderOf when operands have no common order.
const incomparable = 2

// orderOf returns -1, 0 or 1, or incomparable.
func orderOf(typ CompareType, a, b any) int {
	switch typ {
	case CompareString:
		return strings.Compare(compareString(a), compareString(b))
	case CompareNumber:
		na, nb := compareNumber(a), compareNumber(b)
		if na.isNumeric && nb.isNumeric {
			return cmpFloat(na.value, nb.value)
		}
		return strings.Compare(compareString(a), compareString(b))
	}
	ta, aTime := a.(time.Time)
	tb, bTime := b.(time.Time)
	if aTime && bTime {
		return ta.Compare(tb)
	}
	na, nb := parseNumber(a), parseNumber(b)
	sa, aStr := stringOf(a)
	sb, bStr := stringOf(b)
	if na.isNumeric && nb.isNumeric && !aStr && !bStr {
		return cmpFloat(na.value, nb.value)
	}
	if aStr && bStr {
		return strings.Compare(sa, sb)
	}
	if reflect.DeepEqual(a, b) {
		return 0
	}
	return incomparable
}

func compareNumber(v any) number {
	switch x := v.(type) {
	case nil:
		return number{typeOK: true, isNumeric: true}
	case bool:
		if x {
			return number{value: 1, typeOK: true, isNumeric: true, isInt: true}
		}
		return number{typeOK: true, isNumeric: true, isInt: true}
	case time.Time:
		return number{value: float64(x.UnixNano()), typeOK: true, isNumeric: true, isInt: true}
	case fmt.Stringer:
		return parseNumber(x.String())
	default:
		if b, ok := scalarOf(v).(bool); ok {
			return compareNumber(b)
		}
		return parseNumber(v)
	}
}

func compareString(v any) string {
	if t, ok := v.(time.Time); ok {
		return t.Format(time.RFC3339Nano)
	}
	return scalarString(v)
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
