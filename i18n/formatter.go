package i18n

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultLocale is used when no locale is configured.
const DefaultLocale = "en"

// Formatter substitutes parameters into a message template.
type Formatter interface {
	Format(msg string, params map[string]any, locale string) string
}

// DefaultFormatter is the formatter used when none is configured.
var DefaultFormatter Formatter = MessageFormatter{}

// MessageFormatter understands a subset of ICU message syntax:
//
//	{name}                              plain substitution
//	{name, number}                      locale-aware decimal
//	{name, plural, =0{..} one{..} other{..}}  plural branches, # is the number
//	{name, select, a{..} other{..}}     select on the string value
//
// Placeholders without a matching parameter are kept verbatim.
type MessageFormatter struct{}

func (f MessageFormatter) Format(msg string, params map[string]any, locale string) string {
	if !strings.ContainsRune(msg, '{') {
		return msg
	}
	return f.format(msg, params, parseTag(locale), "", false)
}

func (f MessageFormatter) format(msg string, params map[string]any, tag language.Tag, hash string, inPlural bool) string {
	var b strings.Builder
	for i := 0; i < len(msg); {
		c := msg[i]
		switch {
		case c == '#' && inPlural:
			b.WriteString(hash)
			i++
		case c == '{':
			end := matchBrace(msg, i)
			if end < 0 {
				b.WriteString(msg[i:])
				return b.String()
			}
			b.WriteString(f.placeholder(msg[i:end+1], msg[i+1:end], params, tag))
			i = end + 1
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String()
}

func (f MessageFormatter) placeholder(raw, body string, params map[string]any, tag language.Tag) string {
	name, rest, _ := strings.Cut(body, ",")
	val, ok := params[strings.TrimSpace(name)]
	if !ok {
		return raw
	}
	kind, style, _ := strings.Cut(rest, ",")
	switch strings.TrimSpace(kind) {
	case "number":
		return formatNumber(val, tag)
	case "plural":
		return f.plural(val, style, params, tag)
	case "select":
		return f.selectBranch(val, style, params, tag)
	default:
		return Stringify(val)
	}
}

func (f MessageFormatter) plural(val any, style string, params map[string]any, tag language.Tag) string {
	n, ok := toFloat(val)
	if !ok {
		return Stringify(val)
	}
	branches := parseBranches(style)
	hash := formatNumber(val, tag)
	for _, br := range branches {
		if exact, ok := strings.CutPrefix(br.key, "="); ok {
			if e, err := strconv.ParseFloat(exact, 64); err == nil && e == n {
				return f.format(br.text, params, tag, hash, true)
			}
		}
	}
	cat := pluralCategory(n, tag)
	for _, want := range []string{cat, "other"} {
		for _, br := range branches {
			if br.key == want {
				return f.format(br.text, params, tag, hash, true)
			}
		}
	}
	return hash
}

func (f MessageFormatter) selectBranch(val any, style string, params map[string]any, tag language.Tag) string {
	key := Stringify(val)
	branches := parseBranches(style)
	for _, want := range []string{key, "other"} {
		for _, br := range branches {
			if br.key == want {
				return f.format(br.text, params, tag, "", false)
			}
		}
	}
	return key
}

type branch struct {
	key  string
	text string
}

func parseBranches(style string) []branch {
	var out []branch
	for i := 0; i < len(style); {
		for i < len(style) && style[i] == ' ' {
			i++
		}
		start := i
		for i < len(style) && style[i] != '{' && style[i] != ' ' {
			i++
		}
		key := style[start:i]
		for i < len(style) && style[i] == ' ' {
			i++
		}
		if i >= len(style) || style[i] != '{' {
			break
		}
		end := matchBrace(style, i)
		if end < 0 {
			break
		}
		out = append(out, branch{key: key, text: style[i+1 : end]})
		i = end + 1
	}
	return out
}

// matchBrace returns the index of the brace closing the one at open, or -1.
func matchBrace(s string, open int) int {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func pluralCategory(n float64, tag language.Tag) string {
	if n != math.Trunc(n) || math.IsInf(n, 0) || math.Abs(n) > math.MaxInt32 {
		return "other"
	}
	i := int(math.Abs(n))
	switch plural.Cardinal.MatchPlural(tag, i, 0, 0, 0, 0) {
	case plural.Zero:
		return "zero"
	case plural.One:
		return "one"
	case plural.Two:
		return "two"
	case plural.Few:
		return "few"
	case plural.Many:
		return "many"
	default:
		return "other"
	}
}

func formatNumber(val any, tag language.Tag) string {
	if _, ok := toFloat(val); !ok {
		return Stringify(val)
	}
	if s, ok := val.(string); ok {
		val, _ = strconv.ParseFloat(strings.TrimSpace(s), 64)
	}
	return message.NewPrinter(tag).Sprint(number.Decimal(val))
}

func parseTag(locale string) language.Tag {
	if locale == "" {
		return language.English
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return language.English
	}
	return tag
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// Stringify renders a parameter value for substitution.
func Stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case time.Time:
		return x.Format(time.RFC3339)
	case []string:
		return strings.Join(x, ", ")
	case fmt.Stringer:
		return x.String()
	case error:
		return x.Error()
	default:
		return fmt.Sprint(x)
	}
}
