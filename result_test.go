package rulekit_test

import (
	"testing"

	"github.com/reoring/rulekit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() *rulekit.Result {
	res := rulekit.NewResult()
	res.AddError("{Property} is wrong.", map[string]any{"Property": "Value"})
	res.AddError("bad name", nil, "name")
	res.AddError("bad street", nil, "address", "street")
	res.AddError("bad item", nil, "items", 2)
	res.AddError("worse name", nil, "name")
	return res
}

func TestResult_Views(t *testing.T) {
	res := sampleResult()
	require.False(t, res.IsValid())

	assert.Equal(t, []string{"Value is wrong.", "bad name", "bad street", "bad item", "worse name"}, res.ErrorMessages())
	assert.Equal(t, map[string][]string{
		"":               {"Value is wrong."},
		"name":           {"bad name", "worse name"},
		"address.street": {"bad street"},
		"items.2":        {"bad item"},
	}, res.ErrorMessagesIndexedByPath("."))
	assert.Equal(t, map[string]string{
		"":               "Value is wrong.",
		"name":           "bad name",
		"address.street": "bad street",
		"items.2":        "bad item",
	}, res.FirstErrorMessagesIndexedByPath(""))
	assert.Equal(t, map[string][]string{
		"":        {"Value is wrong."},
		"name":    {"bad name", "worse name"},
		"address": {"bad street"},
		"items":   {"bad item"},
	}, res.ErrorMessagesIndexedByProperty())
	assert.Equal(t, "bad name", res.FirstErrorMessagesIndexedByProperty()["name"])
	assert.Equal(t, []string{"Value is wrong."}, res.CommonErrorMessages())

	assert.False(t, res.IsPropertyValid("name"))
	assert.True(t, res.IsPropertyValid("email"))
	assert.Equal(t, []string{"bad street"}, res.PropertyErrorMessages("address"))
	assert.Equal(t, map[string][]string{"street": {"bad street"}}, res.PropertyErrorMessagesIndexedByPath("address", "."))
}

func TestResult_AddErrorsPrefixesPaths(t *testing.T) {
	inner := rulekit.NewResult().AddError("x", nil, "b").AddError("y", nil)
	outer := rulekit.NewResult().AddErrors(inner, "a", 1)

	errs := outer.Errors()
	require.Len(t, errs, 2)
	assert.Equal(t, []any{"a", 1, "b"}, errs[0].ValuePath())
	assert.Equal(t, []any{"a", 1}, errs[1].ValuePath())
	assert.Equal(t, []any{"b"}, inner.Errors()[0].ValuePath(), "inner result must not change")
}

func TestResult_PathEscaping(t *testing.T) {
	res := rulekit.NewResult().AddError("dotted", nil, "a.b", "c")
	assert.Equal(t, map[string][]string{`a\.b.c`: {"dotted"}}, res.ErrorMessagesIndexedByPath("."))
	assert.Equal(t, map[string][]string{"a.b/c": {"dotted"}}, res.ErrorMessagesIndexedByPath("/"))
}

func TestResult_ErrAndJSON(t *testing.T) {
	assert.NoError(t, rulekit.NewResult().Err())

	res := rulekit.NewResult().AddError("bad", nil, "name")
	err := res.Err()
	require.Error(t, err)
	ve, ok := rulekit.AsValidationError(err)
	require.True(t, ok)
	assert.Same(t, res, ve.Result)
	assert.Equal(t, "validation failed: name: bad", err.Error())

	b, err := res.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":["bad"]}`, string(b))
}

func TestResult_WithoutPostProcessing(t *testing.T) {
	res := rulekit.NewResult().AddErrorWithoutPostProcessing("{kept} as is", map[string]any{"kept": "x"})
	assert.Equal(t, []string{"{kept} as is"}, res.ErrorMessages())
}

func TestResult_EqualNil(t *testing.T) {
	var none *rulekit.Result
	assert.True(t, none.Equal(nil))
	assert.True(t, none.Equal(rulekit.NewResult()))
	assert.True(t, rulekit.NewResult().Equal(none))
	assert.False(t, none.Equal(sampleResult()))
	assert.False(t, sampleResult().Equal(none))
	assert.True(t, sampleResult().Equal(sampleResult()))
}
