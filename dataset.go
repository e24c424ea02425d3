package rulekit

import (
	"reflect"
	"strings"
	"sync"
)

// DataSet gives property access to the data under validation.
type DataSet interface {
	// PropertyValue returns the value of the named property, or nil when it
	// does not exist.
	PropertyValue(name string) any
	// HasProperty reports whether the property exists.
	HasProperty(name string) bool
	// Data returns the underlying data.
	Data() any
}

// NormalizeDataSet wraps data in the DataSet matching its shape.
func NormalizeDataSet(data any) DataSet {
	switch d := data.(type) {
	case DataSet:
		return d
	case map[string]any:
		return MapDataSet(d)
	case nil:
		return SingleValueDataSet{}
	}
	rv := Indirect(reflect.ValueOf(data))
	if !rv.IsValid() {
		return SingleValueDataSet{value: data}
	}
	switch rv.Kind() {
	case reflect.Struct:
		return &ObjectDataSet{object: data, rv: rv}
	case reflect.Map, reflect.Slice, reflect.Array:
		return collectionDataSet{data: data}
	default:
		return SingleValueDataSet{value: data}
	}
}

// MapDataSet is a DataSet over a JSON-like map.
type MapDataSet map[string]any

func (m MapDataSet) PropertyValue(name string) any { return m[name] }

func (m MapDataSet) HasProperty(name string) bool {
	_, ok := m[name]
	return ok
}

func (m MapDataSet) Data() any { return map[string]any(m) }

// SingleValueDataSet wraps a scalar; it has no properties.
type SingleValueDataSet struct {
	value any
}

// NewSingleValueDataSet wraps v.
func NewSingleValueDataSet(v any) SingleValueDataSet { return SingleValueDataSet{value: v} }

func (SingleValueDataSet) PropertyValue(string) any { return nil }
func (SingleValueDataSet) HasProperty(string) bool  { return false }
func (s SingleValueDataSet) Data() any              { return s.value }

// collectionDataSet covers maps with non-any values and slices/arrays
// (numeric property names).
type collectionDataSet struct {
	data any
}

func (c collectionDataSet) PropertyValue(name string) any {
	v, _ := lookupSegment(c.data, name)
	return v
}

func (c collectionDataSet) HasProperty(name string) bool {
	_, ok := lookupSegment(c.data, name)
	return ok
}

func (c collectionDataSet) Data() any { return c.data }

// ObjectDataSet exposes the exported fields of a struct. Field keys resolve
// as `rulekit:"name=..."` > `json:"..."` > field name; "-" hides a field.
// A `rulekit:"label=..."` tag supplies the display label.
type ObjectDataSet struct {
	object any
	rv     reflect.Value
}

// NewObjectDataSet wraps a struct or a pointer to one.
func NewObjectDataSet(object any) *ObjectDataSet {
	return &ObjectDataSet{object: object, rv: Indirect(reflect.ValueOf(object))}
}

func (o *ObjectDataSet) PropertyValue(name string) any {
	if !o.rv.IsValid() {
		return nil
	}
	idx, ok := structFields(o.rv.Type()).index[name]
	if !ok {
		return nil
	}
	f, err := o.rv.FieldByIndexErr(idx)
	if err != nil || !f.CanInterface() {
		return nil
	}
	return f.Interface()
}

func (o *ObjectDataSet) HasProperty(name string) bool {
	if !o.rv.IsValid() {
		return false
	}
	_, ok := structFields(o.rv.Type()).index[name]
	return ok
}

func (o *ObjectDataSet) Data() any { return o.object }

// Rules forwards to the wrapped object when it implements RulesProvider.
func (o *ObjectDataSet) Rules() RuleSet {
	if rp, ok := o.object.(RulesProvider); ok {
		return rp.Rules()
	}
	return nil
}

// PropertyLabels merges tag labels with the object's PropertyLabelsProvider;
// provider entries win.
func (o *ObjectDataSet) PropertyLabels() map[string]string {
	out := map[string]string{}
	if o.rv.IsValid() {
		for k, v := range structFields(o.rv.Type()).labels {
			out[k] = v
		}
	}
	if lp, ok := o.object.(PropertyLabelsProvider); ok {
		for k, v := range lp.PropertyLabels() {
			out[k] = v
		}
	}
	return out
}

// ResolveStructKey resolves a struct field's external key.
// Priority: rulekit:"name=..." > json tag name > field name; "-" disables the field.
func ResolveStructKey(sf reflect.StructField) string {
	if name, ok := tagOption(sf.Tag.Get("rulekit"), "name"); ok {
		return name
	}
	if jt := sf.Tag.Get("json"); jt != "" {
		if jt == "-" {
			return "-"
		}
		if i := strings.IndexByte(jt, ','); i >= 0 {
			if i == 0 {
				return sf.Name
			}
			return jt[:i]
		}
		return jt
	}
	return sf.Name
}

func tagOption(tag, key string) (string, bool) {
	if tag == "" {
		return "", false
	}
	for _, p := range strings.Split(tag, ",") {
		p = strings.TrimSpace(p)
		if v, ok := strings.CutPrefix(p, key+"="); ok {
			return v, true
		}
	}
	return "", false
}

type fieldInfo struct {
	index  map[string][]int
	labels map[string]string
}

var fieldCache sync.Map // reflect.Type -> *fieldInfo

func structFields(t reflect.Type) *fieldInfo {
	if fi, ok := fieldCache.Load(t); ok {
		return fi.(*fieldInfo)
	}
	fi := &fieldInfo{index: map[string][]int{}, labels: map[string]string{}}
	for _, sf := range reflect.VisibleFields(t) {
		if !sf.IsExported() || sf.Anonymous {
			continue
		}
		name := ResolveStructKey(sf)
		if name == "" || name == "-" {
			continue
		}
		if _, dup := fi.index[name]; dup {
			continue
		}
		fi.index[name] = sf.Index
		if label, ok := tagOption(sf.Tag.Get("rulekit"), "label"); ok {
			fi.labels[name] = label
		}
	}
	actual, _ := fieldCache.LoadOrStore(t, fi)
	return actual.(*fieldInfo)
}
