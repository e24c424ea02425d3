package rulekit_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/reoring/rulekit"
	"github.com/reoring/rulekit/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// check is a minimal rule for exercising the validator: it fails when the
// value equals bad.
type check struct {
	bad         any
	skipOnEmpty rulekit.EmptyCondition
	skipOnError bool
	when        rulekit.WhenFunc
	calls       *int
}

func (check) Name() string { return "check" }

func (c check) Handler() rulekit.RuleHandler {
	return rulekit.RuleHandlerFunc(func(value any, _ rulekit.Rule, ctx *rulekit.ValidationContext) (*rulekit.Result, error) {
		if c.calls != nil {
			*c.calls++
		}
		res := rulekit.NewResult()
		if value == c.bad {
			res.AddError("{Property} is bad.", ctx.ErrorParams("value", value))
		}
		return res, nil
	})
}

func (c check) SkipOnEmptyCondition() rulekit.EmptyCondition { return c.skipOnEmpty }
func (c check) ShouldSkipOnError() bool                      { return c.skipOnError }
func (c check) WhenCondition() rulekit.WhenFunc              { return c.when }

func TestValidator_MapData(t *testing.T) {
	v := rulekit.NewValidator()
	res, err := v.Validate(map[string]any{"name": "x", "age": 3}, rulekit.RuleSet{
		"name": {check{bad: "x"}},
		"age":  {check{bad: 4}},
	})
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{"name": {"Name is bad."}}, res.ErrorMessagesIndexedByPath("."))
}

func TestValidator_WholeValueUsesValueLabel(t *testing.T) {
	res, err := rulekit.NewValidator().ValidateValue("x", check{bad: "x"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Value is bad."}, res.ErrorMessages())
	assert.Equal(t, []string{"Value is bad."}, res.CommonErrorMessages())
}

func TestValidator_KeysProcessedInOrder(t *testing.T) {
	res, err := rulekit.NewValidator().Validate(map[string]any{"b": 1, "a": 1}, rulekit.RuleSet{
		"b": {check{bad: 1}},
		"a": {check{bad: 1}},
		"":  {check{bad: nil}},
	})
	require.NoError(t, err)
	var paths []string
	for _, e := range res.Errors() {
		paths = append(paths, e.Path("."))
	}
	assert.Equal(t, []string{"a", "b"}, paths)
}

func TestValidator_SkipOnEmpty(t *testing.T) {
	data := map[string]any{"blank": "", "nil": nil}
	rules := rulekit.RuleSet{
		"blank":   {check{bad: ""}},
		"nil":     {check{bad: nil}},
		"missing": {check{bad: nil}},
	}

	res, err := rulekit.NewValidator().Validate(data, rules)
	require.NoError(t, err)
	assert.Len(t, res.Errors(), 3, "no rule is skipped by default")

	res, err = rulekit.NewValidator(rulekit.WithDefaultSkipOnEmpty(rulekit.WhenEmpty)).Validate(data, rules)
	require.NoError(t, err)
	assert.True(t, res.IsValid())

	res, err = rulekit.NewValidator(rulekit.WithDefaultSkipOnEmpty(rulekit.WhenMissing)).Validate(data, rules)
	require.NoError(t, err)
	assert.Equal(t, []string{"Blank is bad.", "Nil is bad."}, res.ErrorMessages())

	res, err = rulekit.NewValidator().Validate(data, rulekit.RuleSet{
		"blank": {check{bad: "", skipOnEmpty: rulekit.WhenNull}},
		"nil":   {check{bad: nil, skipOnEmpty: rulekit.WhenNull}},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Blank is bad."}, res.ErrorMessages())
}

func TestValidator_SkipOnErrorAndWhen(t *testing.T) {
	calls := 0
	res, err := rulekit.NewValidator().ValidateValue("x",
		check{bad: "x"},
		check{bad: "x", skipOnError: true, calls: &calls},
		check{bad: "x", when: func(any, *rulekit.ValidationContext) bool { return false }, calls: &calls},
		check{bad: "x", when: func(v any, _ *rulekit.ValidationContext) bool { return v == "x" }},
	)
	require.NoError(t, err)
	assert.Equal(t, 0, calls)
	assert.Len(t, res.Errors(), 2)
}

type signup struct {
	Login    string `json:"login" rulekit:"label=User name"`
	Password string `json:"password"`
	Secret   string `json:"-"`

	processed *rulekit.Result
}

func (s *signup) Rules() rulekit.RuleSet {
	return rulekit.RuleSet{
		"login":    {check{bad: ""}},
		"password": {check{bad: "123"}},
	}
}

func (s *signup) PropertyLabels() map[string]string {
	return map[string]string{"password": "Passphrase"}
}

func (s *signup) ProcessValidationResult(res *rulekit.Result) { s.processed = res }

func TestValidator_ObjectProviders(t *testing.T) {
	s := &signup{Password: "123"}
	res, err := rulekit.NewValidator().Validate(s, nil)
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{
		"login":    {"User name is bad."},
		"password": {"Passphrase is bad."},
	}, res.ErrorMessagesIndexedByPath("."))
	assert.Same(t, res, s.processed)
}

func TestValidator_PropertyTranslatorFallback(t *testing.T) {
	v := rulekit.NewValidator(rulekit.WithPropertyTranslator(rulekit.MapPropertyTranslator{"zip": "postal code"}))
	res, err := v.Validate(map[string]any{"zip": "x"}, rulekit.RuleSet{"zip": {check{bad: "x"}}})
	require.NoError(t, err)
	assert.Equal(t, []string{"Postal code is bad."}, res.ErrorMessages())
}

func TestValidator_Translation(t *testing.T) {
	catalog := i18n.NewCatalog()
	require.NoError(t, catalog.Add("ja", map[string]string{"{Property} is bad.": "{Property}が不正です。"}))
	v := rulekit.NewValidator(rulekit.WithTranslator(catalog))

	res, err := v.Validate(map[string]any{"name": "x"}, rulekit.RuleSet{"name": {check{bad: "x"}}})
	require.NoError(t, err)
	assert.Equal(t, []string{"Name is bad."}, res.ErrorMessages())

	res, err = v.WithLocale("ja").Validate(map[string]any{"name": "x"}, rulekit.RuleSet{"name": {check{bad: "x"}}})
	require.NoError(t, err)
	assert.Equal(t, []string{"Nameが不正です。"}, res.ErrorMessages())
	assert.Equal(t, "{Property} is bad.", res.Errors()[0].Template())
}

func TestValidator_ProgrammerErrors(t *testing.T) {
	_, err := rulekit.NewValidator().Validate(map[string]any{}, rulekit.RuleSet{"a": {nil}})
	assert.ErrorIs(t, err, rulekit.ErrInvalidConfig)

	failing := rulekit.MapHandlerResolver{
		"check": rulekit.RuleHandlerFunc(func(any, rulekit.Rule, *rulekit.ValidationContext) (*rulekit.Result, error) {
			return nil, rulekit.NewUnexpectedRuleError(struct{}{}, check{})
		}),
	}
	_, err = rulekit.NewValidator(rulekit.WithHandlerResolver(failing)).ValidateValue(1, check{})
	assert.ErrorIs(t, err, rulekit.ErrUnexpectedRule)
	var ure *rulekit.UnexpectedRuleError
	require.True(t, errors.As(err, &ure))
	assert.Equal(t, "rulekit_test.check", ure.Got)
}

func TestValidator_LogsSkips(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	_, err := rulekit.NewValidator(rulekit.WithLogger(logger)).ValidateValue("", check{skipOnEmpty: rulekit.WhenEmpty})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "rule skipped")
	assert.Contains(t, buf.String(), "reason=empty")

	buf.Reset()
	override := rulekit.MapHandlerResolver{
		"check": rulekit.RuleHandlerFunc(func(any, rulekit.Rule, *rulekit.ValidationContext) (*rulekit.Result, error) {
			return rulekit.NewResult(), nil
		}),
	}
	res, err := rulekit.NewValidator(rulekit.WithLogger(logger), rulekit.WithHandlerResolver(override)).ValidateValue(1, check{bad: 1})
	require.NoError(t, err)
	assert.True(t, res.IsValid())
	assert.Contains(t, buf.String(), "handler overridden")
	assert.Contains(t, buf.String(), "rule=check")

	// A map without an entry for the rule falls back to its own handler.
	buf.Reset()
	res, err = rulekit.NewValidator(rulekit.WithLogger(logger), rulekit.WithHandlerResolver(rulekit.MapHandlerResolver{})).ValidateValue(1, check{bad: 1})
	require.NoError(t, err)
	assert.False(t, res.IsValid())
	assert.NotContains(t, buf.String(), "handler overridden")
}

func TestValidator_Idempotent(t *testing.T) {
	v := rulekit.NewValidator()
	rules := rulekit.RuleSet{"a": {check{bad: 1}}, "b": {check{bad: 2}}}
	data := map[string]any{"a": 1, "b": 2}
	r1, err := v.Validate(data, rules)
	require.NoError(t, err)
	r2, err := v.Validate(data, rules)
	require.NoError(t, err)
	assert.True(t, r1.Equal(r2))
}

type takenNames map[string]bool

func TestValidator_Parameters(t *testing.T) {
	unique := rulekit.RuleHandlerFunc(func(value any, _ rulekit.Rule, ctx *rulekit.ValidationContext) (*rulekit.Result, error) {
		res := rulekit.NewResult()
		taken, ok := rulekit.ParameterOf[takenNames](ctx, "taken")
		if !ok {
			return nil, errors.New("taken names not provided")
		}
		if s, _ := value.(string); taken[s] {
			res.AddError("{Property} is already taken.", ctx.ErrorParams())
		}
		return res, nil
	})
	rule := handlerRule{h: unique}

	v := rulekit.NewValidator(rulekit.WithParameter("taken", takenNames{"root": true}))
	res, err := v.Validate(map[string]any{"login": "root"}, rulekit.RuleSet{"login": {rule}})
	require.NoError(t, err)
	assert.Equal(t, []string{"Login is already taken."}, res.ErrorMessages())

	_, err = rulekit.NewValidator().Validate(map[string]any{"login": "root"}, rulekit.RuleSet{"login": {rule}})
	assert.Error(t, err)
}

type handlerRule struct{ h rulekit.RuleHandler }

func (r handlerRule) Handler() rulekit.RuleHandler { return r.h }
