package rulekit_test

import (
	"testing"

	"github.com/reoring/rulekit"
	"github.com/stretchr/testify/assert"
)

type address struct {
	Street string `json:"street,omitempty" rulekit:"label=Street address"`
	City   string `rulekit:"name=town"`
	Zip    string `json:",omitempty"`
	hidden string
}

type withEmbedded struct {
	*address
	Country string `json:"country"`
}

func TestNormalizeDataSet(t *testing.T) {
	assert.IsType(t, rulekit.MapDataSet{}, rulekit.NormalizeDataSet(map[string]any{}))
	assert.IsType(t, &rulekit.ObjectDataSet{}, rulekit.NormalizeDataSet(address{}))
	assert.IsType(t, &rulekit.ObjectDataSet{}, rulekit.NormalizeDataSet(&address{}))
	assert.IsType(t, rulekit.SingleValueDataSet{}, rulekit.NormalizeDataSet(42))
	assert.IsType(t, rulekit.SingleValueDataSet{}, rulekit.NormalizeDataSet(nil))

	ds := rulekit.MapDataSet{"a": nil}
	assert.Equal(t, ds, rulekit.NormalizeDataSet(ds))
	assert.True(t, ds.HasProperty("a"))
	assert.False(t, ds.HasProperty("b"))
}

func TestObjectDataSet_Properties(t *testing.T) {
	ds := rulekit.NewObjectDataSet(&address{Street: "Main", City: "Springfield", Zip: "1", hidden: "h"})

	assert.True(t, ds.HasProperty("street"))
	assert.Equal(t, "Main", ds.PropertyValue("street"))
	assert.True(t, ds.HasProperty("town"))
	assert.Equal(t, "Springfield", ds.PropertyValue("town"))
	assert.True(t, ds.HasProperty("Zip"))
	assert.False(t, ds.HasProperty("City"))
	assert.False(t, ds.HasProperty("hidden"))
	assert.Nil(t, ds.PropertyValue("missing"))
	assert.Equal(t, map[string]string{"street": "Street address"}, ds.PropertyLabels())
}

func TestObjectDataSet_NilEmbeddedPointer(t *testing.T) {
	ds := rulekit.NewObjectDataSet(withEmbedded{Country: "JP"})
	assert.Equal(t, "JP", ds.PropertyValue("country"))
	assert.True(t, ds.HasProperty("street"))
	assert.Nil(t, ds.PropertyValue("street"))
}

func TestEmptyConditions(t *testing.T) {
	var nilPtr *address
	tests := []struct {
		name    string
		value   any
		missing bool
		empty   bool
		trimmed bool
		null    bool
	}{
		{"missing", nil, true, true, true, true},
		{"nil", nil, false, true, true, true},
		{"nil pointer", nilPtr, false, true, true, true},
		{"empty string", "", false, true, true, false},
		{"spaces", "  ", false, false, true, false},
		{"empty slice", []int{}, false, true, true, false},
		{"zero", 0, false, false, false, false},
		{"false", false, false, false, false, false},
		{"text", "x", false, false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.empty, rulekit.WhenEmpty(tt.value, tt.missing))
			assert.Equal(t, tt.trimmed, rulekit.WhenEmptyTrimmed(tt.value, tt.missing))
			assert.Equal(t, tt.null, rulekit.WhenNull(tt.value, tt.missing))
			assert.Equal(t, tt.missing, rulekit.WhenMissing(tt.value, tt.missing))
			assert.False(t, rulekit.NeverEmpty(tt.value, tt.missing))
		})
	}
}
