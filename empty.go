package rulekit

import (
	"reflect"
	"strings"
)

// EmptyCondition decides whether a value counts as empty. missing is true
// when the property does not exist in the data set at all.
type EmptyCondition func(value any, missing bool) bool

// WhenEmpty treats missing properties, nil, "" and empty slices/maps as empty.
func WhenEmpty(value any, missing bool) bool {
	return missing || isEmptyValue(value, false)
}

// WhenEmptyTrimmed is WhenEmpty that also treats whitespace-only strings as
// empty.
func WhenEmptyTrimmed(value any, missing bool) bool {
	return missing || isEmptyValue(value, true)
}

// WhenNull treats only missing properties and nil as empty.
func WhenNull(value any, missing bool) bool {
	if missing || value == nil {
		return true
	}
	return !Indirect(reflect.ValueOf(value)).IsValid()
}

// WhenMissing treats only missing properties as empty.
func WhenMissing(_ any, missing bool) bool { return missing }

// NeverEmpty never reports a value as empty.
func NeverEmpty(any, bool) bool { return false }

func isEmptyValue(value any, trim bool) bool {
	rv := Indirect(reflect.ValueOf(value))
	if !rv.IsValid() {
		return true
	}
	switch rv.Kind() {
	case reflect.String:
		s := rv.String()
		if trim {
			s = strings.TrimSpace(s)
		}
		return s == ""
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() == 0
	default:
		return false
	}
}
