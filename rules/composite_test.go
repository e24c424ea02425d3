package rules_test

import (
	"testing"

	"github.com/reoring/rulekit"
	"github.com/reoring/rulekit/i18n"
	"github.com/reoring/rulekit/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNested_ReportsFullPath(t *testing.T) {
	data := map[string]any{
		"author": map[string]any{"name": "Dmitry", "age": 18},
	}
	res, err := rulekit.NewValidator().Validate(data, rulekit.RuleSet{
		"author": {rules.Nested{Rules: rulekit.RuleSet{
			"name": {rules.Length{Min: 8}},
			"age":  {rules.Number{Min: rules.Float(20)}},
		}}},
	})
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{
		"author.age":  {"Age must be no less than 20."},
		"author.name": {"Name must contain at least 8 characters."},
	}, res.ErrorMessagesIndexedByPath("."))
	assert.Equal(t, []any{"author", "age"}, res.Errors()[0].ValuePath())
}

func TestNested_DottedPaths(t *testing.T) {
	data := map[string]any{"author": map[string]any{"age": 18}}
	res := validateValue(t, data, rules.Nested{Rules: rulekit.RuleSet{
		"author.age":   {rules.Number{Min: rules.Float(20)}},
		"author.email": {rules.Required{}},
	}})
	assert.Equal(t, map[string][]string{
		"author.age":   {"Age must be no less than 20."},
		"author.email": {`Property "author.email" is not found.`},
	}, res.ErrorMessagesIndexedByPath("."))
	assert.Equal(t, []any{"author", "email"}, res.Errors()[1].ValuePath())

	res = validateValue(t, data, rules.Nested{
		AllowMissingPropertyPath: true,
		Rules:                    rulekit.RuleSet{"author.email": {rules.Required{}}},
	})
	assert.Equal(t, map[string][]string{
		"author.email": {"Email not passed."},
	}, res.ErrorMessagesIndexedByPath("."))
}

func TestNested_MissingParent(t *testing.T) {
	type author struct {
		Age int `json:"age"`
	}
	type post struct {
		Author *author `json:"author"`
	}
	rs := rulekit.RuleSet{"author.age": {rules.Number{Min: rules.Float(20)}}}

	res := validateValue(t, post{}, rules.Nested{Rules: rs})
	assert.Equal(t, []string{`Property "author.age" is not found.`}, res.ErrorMessages())

	res = validateValue(t, post{}, rules.Nested{Rules: rs, NoPropertyPathMessage: "{path} is missing"})
	assert.Equal(t, []string{"author.age is missing"}, res.ErrorMessages())

	res = validateValue(t, post{Author: &author{Age: 30}}, rules.Nested{Rules: rs})
	assert.True(t, res.IsValid(), res.ErrorMessages())
}

func TestNested_Struct(t *testing.T) {
	type author struct {
		Name string `json:"name" rulekit:"label=Author name"`
	}
	type post struct {
		Title  string  `json:"title"`
		Author *author `json:"author"`
	}
	res := validateValue(t, post{Author: &author{}}, rules.Nested{Rules: rulekit.RuleSet{
		"title":       {rules.Required{}},
		"author.name": {rules.Required{}},
	}})
	assert.Equal(t, map[string][]string{
		"author.name": {"Author name cannot be blank."},
		"title":       {"Title cannot be blank."},
	}, res.ErrorMessagesIndexedByPath("."))
}

func TestNested_EachShortcut(t *testing.T) {
	data := map[string]any{
		"charts": []any{
			map[string]any{"points": []any{
				map[string]any{"x": 1, "y": 2},
				map[string]any{"x": -1, "y": 3},
			}},
		},
	}
	res := validateValue(t, data, rules.Nested{Rules: rulekit.RuleSet{
		"charts.*.points.*.x": {rules.Number{Min: rules.Float(0)}},
		"charts.*.points":     {rules.Count{Max: 5}},
	}})
	assert.Equal(t, map[string][]string{
		"charts.0.points.1.x": {"X must be no less than 0."},
	}, res.ErrorMessagesIndexedByPath("."))

	res = validateValue(t, []any{map[string]any{"id": ""}}, rules.Nested{Rules: rulekit.RuleSet{
		"*.id": {rules.Required{}},
	}})
	assert.Equal(t, map[string][]string{"0.id": {"Id cannot be blank."}}, res.ErrorMessagesIndexedByPath("."))
}

type profile struct {
	Nick string `json:"nick"`
}

func (profile) Rules() rulekit.RuleSet {
	return rulekit.RuleSet{"nick": {rules.Required{}}}
}

func TestNested_RulesFromProvider(t *testing.T) {
	res := validateValue(t, profile{}, rules.Nested{})
	assert.Equal(t, map[string][]string{"nick": {"Nick cannot be blank."}}, res.ErrorMessagesIndexedByPath("."))

	res = validateValue(t, map[string]any{}, rules.Nested{})
	assert.Equal(t, []string{"Nested rule without rules requires value to be an object. map[string]interface {} given."}, res.ErrorMessages())
}

func TestNested_RejectsScalars(t *testing.T) {
	res := validateValue(t, 5, rules.Nested{Rules: rulekit.RuleSet{"a": {rules.Required{}}}})
	assert.Equal(t, []string{"Value must be a map or an object. int given."}, res.ErrorMessages())
}

func TestEach(t *testing.T) {
	res := validateValue(t, []int{10, 20, 30}, rules.Each{Rules: []rulekit.Rule{rules.Number{Max: rules.Float(13)}}})
	require.Len(t, res.Errors(), 2)
	assert.Equal(t, []any{1}, res.Errors()[0].ValuePath())
	assert.Equal(t, []any{2}, res.Errors()[1].ValuePath())
	assert.Equal(t, map[string][]string{
		"1": {"Value must be no greater than 13."},
		"2": {"Value must be no greater than 13."},
	}, res.ErrorMessagesIndexedByPath("."))

	res = validateValue(t, map[string]int{"b": 20, "a": 1}, rules.Each{Rules: []rulekit.Rule{rules.Number{Max: rules.Float(13)}}})
	assert.Equal(t, map[string][]string{"b": {"Value must be no greater than 13."}}, res.ErrorMessagesIndexedByPath("."))

	res = validateValue(t, 5, rules.Each{Rules: []rulekit.Rule{rules.Required{}}})
	assert.Equal(t, []string{"Value must be a slice, an array or a map. int given."}, res.ErrorMessages())

	res = validateValue(t, map[bool]int{true: 1}, rules.Each{Rules: []rulekit.Rule{rules.Required{}}})
	assert.Equal(t, []string{"Every map key of value must be an integer or a string. bool given."}, res.ErrorMessages())
}

func TestEach_UnderProperty(t *testing.T) {
	res, err := rulekit.NewValidator().Validate(map[string]any{"tags": []any{"go", 1}}, rulekit.RuleSet{
		"tags": {rules.Each{Rules: []rulekit.Rule{rules.StringValue{}}}},
	})
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{"tags.1": {"Value must be a string."}}, res.ErrorMessagesIndexedByPath("."))
}

func TestComposite(t *testing.T) {
	r := rules.Composite{
		Rules:      []rulekit.Rule{rules.Number{}, rules.Length{Max: 2}},
		Conditions: rules.Conditions{SkipOnEmpty: rulekit.WhenEmpty},
	}
	assert.True(t, validateValue(t, "", r).IsValid())
	assert.Equal(t, []string{"Value must be a number.", "Value must contain at most 2 characters."}, validateValue(t, "abc", r).ErrorMessages())
}

func TestStopOnError(t *testing.T) {
	r := rules.StopOnError{Rules: []rulekit.Rule{rules.Length{Min: 5}, rules.Number{}}}
	assert.Equal(t, []string{"Value must contain at least 5 characters."}, validateValue(t, "ab", r).ErrorMessages())
	assert.Equal(t, []string{"Value must be a number."}, validateValue(t, "abcdef", r).ErrorMessages())
	assert.True(t, validateValue(t, "123456", r).IsValid())
}

func TestLazy_Recursive(t *testing.T) {
	var node func() []rulekit.Rule
	node = func() []rulekit.Rule {
		return []rulekit.Rule{rules.Nested{AllowMissingPropertyPath: true, Rules: rulekit.RuleSet{
			"name": {rules.Required{}},
			"children": {rules.Each{
				Rules:      []rulekit.Rule{rules.Lazy{Resolve: node}},
				Conditions: rules.Conditions{SkipOnEmpty: rulekit.WhenEmpty},
			}},
		}}}
	}
	tree := map[string]any{
		"name": "root",
		"children": []any{
			map[string]any{"name": "a", "children": []any{map[string]any{"name": ""}}},
			map[string]any{"name": "b"},
		},
	}
	res := validateValue(t, tree, rules.Lazy{Resolve: node})
	assert.Equal(t, map[string][]string{
		"children.0.children.0.name": {"Name cannot be blank."},
	}, res.ErrorMessagesIndexedByPath("."))

	_, err := rulekit.NewValidator().ValidateValue(1, rules.Lazy{})
	assert.ErrorIs(t, err, rulekit.ErrInvalidConfig)
}

func TestAnyRule(t *testing.T) {
	r := rules.AnyRule{Rules: []rulekit.Rule{rules.Email{}, rules.Uuid{}}}
	assert.True(t, validateValue(t, "a@example.com", r).IsValid())
	assert.True(t, validateValue(t, "f47ac10b-58cc-4372-a567-0e02b2c3d479", r).IsValid())
	assert.Equal(t, []string{"At least one of the inner rules must pass the validation."}, validateValue(t, "x", r).ErrorMessages())
	assert.True(t, validateValue(t, 1, rules.Any{Rules: []rulekit.Rule{rules.Number{}}}).IsValid())

	_, err := rulekit.NewValidator().ValidateValue(1, rules.AnyRule{})
	assert.ErrorIs(t, err, rulekit.ErrInvalidConfig)
}

func TestOneOf(t *testing.T) {
	r := rules.OneOf{Rules: []rulekit.Rule{rules.Number{}, rules.Length{Max: 3}}}
	assert.True(t, validateValue(t, "abc", r).IsValid())
	msg := []string{"Exactly one of the inner rules must pass the validation."}
	assert.Equal(t, msg, validateValue(t, "12", r).ErrorMessages())
	assert.Equal(t, msg, validateValue(t, "abcdef", r).ErrorMessages())
}

func TestFilledAtLeast(t *testing.T) {
	data := map[string]any{"a": 1, "b": nil}
	res := validateValue(t, data, rules.FilledAtLeast{Properties: []string{"a", "b"}, Min: 2})
	assert.Equal(t, []string{`At least 2 properties from this list must be filled for value: "a", "b".`}, res.ErrorMessages())

	assert.True(t, validateValue(t, data, rules.FilledAtLeast{Properties: []string{"a", "b"}}).IsValid())
	assert.True(t, validateValue(t, data, rules.AtLeast{Properties: []string{"a", "b"}, Min: 1}).IsValid())

	res = validateValue(t, map[string]any{}, rules.FilledAtLeast{Properties: []string{"a"}})
	assert.Equal(t, []string{`At least 1 property from this list must be filled for value: "a".`}, res.ErrorMessages())

	contact := map[string]any{"contact": map[string]any{"phone": "1"}}
	assert.True(t, validateValue(t, contact, rules.FilledAtLeast{Properties: []string{"contact.email", "contact.phone"}}).IsValid())

	res = validateValue(t, "x", rules.FilledAtLeast{Properties: []string{"a"}})
	assert.Equal(t, []string{"Value must be a map or an object. string given."}, res.ErrorMessages())

	_, err := rulekit.NewValidator().ValidateValue(data, rules.FilledAtLeast{Properties: []string{"a", "b"}, Min: 3})
	assert.ErrorIs(t, err, rulekit.ErrInvalidConfig)
}

func TestFilledOnlyOneOf(t *testing.T) {
	r := rules.FilledOnlyOneOf{Properties: []string{"a", "b"}}
	msg := []string{`Exactly 1 property from this list must be filled for value: "a", "b".`}
	assert.True(t, validateValue(t, map[string]any{"a": 1}, r).IsValid())
	assert.Equal(t, msg, validateValue(t, map[string]any{"a": 1, "b": 2}, r).ErrorMessages())
	assert.Equal(t, msg, validateValue(t, map[string]any{}, r).ErrorMessages())
}

type label string

func (l label) String() string { return string(l) }

func TestUniqueIterable(t *testing.T) {
	r := rules.UniqueIterable{}
	runCases(t, []ruleCase{
		{"unique", r, []int{1, 2, 3}, nil},
		{"duplicate", r, []int{1, 2, 1, 3}, []string{"Every iterable's item of value must be unique."}},
		{"mixed types", r, []any{1, "2", 3}, []string{"All iterable items of value must have the same type."}},
		{"stringer and string", r, []any{label("a"), "a"}, []string{"Every iterable's item of value must be unique."}},
		{"map values", r, map[string]int{"a": 1, "b": 1}, []string{"Every iterable's item of value must be unique."}},
		{"bad item", r, []any{[]int{1}}, []string{"The allowed types for item values of value are integer, float, string, boolean, Stringer and time.Time. []int given."}},
		{"not iterable", r, 5, []string{"Value must be array or iterable. int given."}},
		{"alias", rules.Unique{}, []string{"a", "a"}, []string{"Every iterable's item of value must be unique."}},
		{"named strings", r, []status{"draft", "published"}, nil},
		{"named ints duplicate", r, []level{1, 1}, []string{"Every iterable's item of value must be unique."}},
		{"named and builtin", r, []any{status("a"), "a"}, []string{"Every iterable's item of value must be unique."}},
	})
}

func TestValidation_Idempotent(t *testing.T) {
	v := rulekit.NewValidator()
	rs := rulekit.RuleSet{
		"items": {rules.Each{Rules: []rulekit.Rule{rules.Nested{Rules: rulekit.RuleSet{
			"qty": {rules.Number{Min: rules.Float(1)}},
		}}}}},
	}
	data := map[string]any{"items": []any{map[string]any{"qty": 0}, map[string]any{"qty": 2}}}
	r1, err := v.Validate(data, rs)
	require.NoError(t, err)
	r2, err := v.Validate(data, rs)
	require.NoError(t, err)
	assert.True(t, r1.Equal(r2))
	assert.Equal(t, map[string][]string{"items.0.qty": {"Qty must be no less than 1."}}, r1.ErrorMessagesIndexedByPath("."))
}

func TestJapaneseMessages(t *testing.T) {
	v := rulekit.NewValidator(
		rulekit.WithTranslator(i18n.DefaultCatalog()),
		rulekit.WithLocale("ja"),
		rulekit.WithPropertyTranslator(rulekit.MapPropertyTranslator{"name": "名前", "tags": "タグ"}),
	)
	res, err := v.Validate(map[string]any{"name": "ab", "tags": []string{"x", "x"}}, rulekit.RuleSet{
		"name":  {rules.Length{Min: 3}},
		"tags":  {rules.UniqueIterable{}},
		"email": {rules.Required{}},
	})
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{
		"email": {"Emailが渡されていません。"},
		"name":  {"名前は3文字以上でなければなりません。"},
		"tags":  {"タグの要素は一意でなければなりません。"},
	}, res.ErrorMessagesIndexedByPath("."))
}
