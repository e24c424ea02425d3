package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessageFormatter_Placeholders(t *testing.T) {
	f := MessageFormatter{}
	tests := []struct {
		name   string
		msg    string
		params map[string]any
		want   string
	}{
		{"plain", "{Property} cannot be blank.", map[string]any{"Property": "Name"}, "Name cannot be blank."},
		{"missing param kept", "{Property} is {unknown}.", map[string]any{"Property": "Age"}, "Age is {unknown}."},
		{"no placeholders", "nothing to do", nil, "nothing to do"},
		{"number", "{n, number}", map[string]any{"n": 1000}, "1,000"},
		{"float param", "no less than {min}.", map[string]any{"min": float64(18)}, "no less than 18."},
		{
			"plural one",
			"at least {min, number} {min, plural, one{character} other{characters}}",
			map[string]any{"min": 1},
			"at least 1 character",
		},
		{
			"plural other",
			"at least {min, number} {min, plural, one{character} other{characters}}",
			map[string]any{"min": 3},
			"at least 3 characters",
		},
		{"plural exact", "{n, plural, =0{none} one{# item} other{# items}}", map[string]any{"n": 0}, "none"},
		{"plural hash", "{n, plural, =0{none} one{# item} other{# items}}", map[string]any{"n": 5}, "5 items"},
		{"select", "{g, select, a{alpha} other{fallback}}", map[string]any{"g": "z"}, "fallback"},
		{"unbalanced", "broken {Property", map[string]any{"Property": "x"}, "broken {Property"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Format(tt.msg, tt.params, "en"))
		})
	}
}

func TestMessageFormatter_JapanesePluralUsesOther(t *testing.T) {
	got := MessageFormatter{}.Format("{n, plural, one{one} other{other}}", map[string]any{"n": 1}, "ja")
	assert.Equal(t, "other", got)
}

func TestStringify(t *testing.T) {
	assert.Equal(t, "", Stringify(nil))
	assert.Equal(t, "true", Stringify(true))
	assert.Equal(t, "1.5", Stringify(1.5))
	assert.Equal(t, "a, b", Stringify([]string{"a", "b"}))
	assert.Equal(t, "42", Stringify(42))
}
