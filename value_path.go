package rulekit

import (
	"reflect"
	"strconv"
)

// ValueByPath navigates data (struct, map, slice, array or DataSet) along the
// given segments. Struct fields are matched by their resolved key (see
// ResolveStructKey). It reports false when a segment cannot be resolved.
func ValueByPath(data any, path []string) (any, bool) {
	cur := data
	for _, seg := range path {
		v, ok := lookupSegment(cur, seg)
		if !ok {
			return nil, false
		}
		cur = v
	}
	return cur, true
}

func lookupSegment(data any, seg string) (any, bool) {
	if ds, ok := data.(DataSet); ok {
		if !ds.HasProperty(seg) {
			return nil, false
		}
		return ds.PropertyValue(seg), true
	}
	if m, ok := data.(map[string]any); ok {
		v, ok := m[seg]
		return v, ok
	}
	cur := Indirect(reflect.ValueOf(data))
	if !cur.IsValid() {
		return nil, false
	}
	switch cur.Kind() {
	case reflect.Struct:
		idx, ok := structFields(cur.Type()).index[seg]
		if !ok {
			return nil, false
		}
		f, err := cur.FieldByIndexErr(idx)
		if err != nil || !f.CanInterface() {
			return nil, true
		}
		return f.Interface(), true
	case reflect.Map:
		key, ok := mapKey(cur.Type().Key(), seg)
		if !ok {
			return nil, false
		}
		mv := cur.MapIndex(key)
		if !mv.IsValid() {
			return nil, false
		}
		return mv.Interface(), true
	case reflect.Slice, reflect.Array:
		i, err := strconv.Atoi(seg)
		if err != nil || i < 0 || i >= cur.Len() {
			return nil, false
		}
		return cur.Index(i).Interface(), true
	default:
		return nil, false
	}
}

func mapKey(kt reflect.Type, seg string) (reflect.Value, bool) {
	switch kt.Kind() {
	case reflect.String:
		return reflect.ValueOf(seg).Convert(kt), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(seg, 10, 64)
		if err != nil {
			return reflect.Value{}, false
		}
		return reflect.ValueOf(n).Convert(kt), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(seg, 10, 64)
		if err != nil {
			return reflect.Value{}, false
		}
		return reflect.ValueOf(n).Convert(kt), true
	default:
		return reflect.Value{}, false
	}
}

// Indirect follows pointers and interfaces until it reaches a concrete value.
// A nil pointer yields the zero reflect.Value.
func Indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

// IsObjectLike reports whether v is a struct or a map (or a non-nil pointer to
// one), the shapes that have named properties.
func IsObjectLike(v any) bool {
	if _, ok := v.(DataSet); ok {
		return true
	}
	rv := Indirect(reflect.ValueOf(v))
	return rv.IsValid() && (rv.Kind() == reflect.Struct || rv.Kind() == reflect.Map)
}
