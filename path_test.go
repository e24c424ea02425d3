package rulekit_test

import (
	"testing"

	"github.com/reoring/rulekit"
	"github.com/stretchr/testify/assert"
)

func TestPath_FormatAndParseRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		path []any
		sep  string
		want string
	}{
		{"simple", []any{"a", "b"}, ".", "a.b"},
		{"index", []any{"items", 0, "name"}, ".", "items.0.name"},
		{"escaped separator", []any{"a.b", "c"}, ".", `a\.b.c`},
		{"escaped backslash", []any{`a\b`}, ".", `a\\b`},
		{"custom separator", []any{"a.b", "c"}, "/", "a.b/c"},
		{"empty", nil, ".", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rulekit.FormatPath(tt.path, tt.sep)
			assert.Equal(t, tt.want, got)

			var segs []string
			for _, p := range tt.path {
				switch v := p.(type) {
				case string:
					segs = append(segs, v)
				case int:
					segs = append(segs, rulekit.FormatPath([]any{v}, tt.sep))
				}
			}
			assert.Equal(t, segs, rulekit.ParsePath(got, tt.sep))
		})
	}
}

func TestValueByPath(t *testing.T) {
	type author struct {
		Name string `json:"name"`
		Age  int    `rulekit:"name=years"`
	}
	type post struct {
		Author *author
		Tags   []string
		Meta   map[string]any
	}
	p := post{
		Author: &author{Name: "Ann", Age: 30},
		Tags:   []string{"go", "yaml"},
		Meta:   map[string]any{"views": 10},
	}

	v, ok := rulekit.ValueByPath(p, []string{"Author", "name"})
	assert.True(t, ok)
	assert.Equal(t, "Ann", v)

	v, ok = rulekit.ValueByPath(p, []string{"Author", "years"})
	assert.True(t, ok)
	assert.Equal(t, 30, v)

	v, ok = rulekit.ValueByPath(p, []string{"Tags", "1"})
	assert.True(t, ok)
	assert.Equal(t, "yaml", v)

	v, ok = rulekit.ValueByPath(p, []string{"Meta", "views"})
	assert.True(t, ok)
	assert.Equal(t, 10, v)

	_, ok = rulekit.ValueByPath(p, []string{"Tags", "5"})
	assert.False(t, ok)
	_, ok = rulekit.ValueByPath(p, []string{"Author", "Age"})
	assert.False(t, ok, "renamed field is not reachable by its Go name")
	_, ok = rulekit.ValueByPath(post{}, []string{"Author", "name"})
	assert.False(t, ok, "nil pointer")
}
