package rulekit

import (
	"strconv"
	"strings"
)

// DefaultPathSeparator joins value path segments in rendered paths and
// splits dotted property paths in rules.Nested.
const DefaultPathSeparator = "."

// EscapePathSegment escapes '\' and sep inside a single segment so that the
// rendered path can be split back unambiguously.
func EscapePathSegment(seg, sep string) string {
	if sep == "" {
		sep = DefaultPathSeparator
	}
	seg = strings.ReplaceAll(seg, `\`, `\\`)
	return strings.ReplaceAll(seg, sep, `\`+sep)
}

// FormatPath renders path segments joined by sep. An empty path renders as
// the empty string.
func FormatPath(path []any, sep string) string {
	if sep == "" {
		sep = DefaultPathSeparator
	}
	if len(path) == 0 {
		return ""
	}
	parts := make([]string, len(path))
	for i, p := range path {
		parts[i] = EscapePathSegment(segmentString(p), sep)
	}
	return strings.Join(parts, sep)
}

// ParsePath splits a rendered path on unescaped separators and unescapes each
// segment.
func ParsePath(path, sep string) []string {
	if sep == "" {
		sep = DefaultPathSeparator
	}
	if path == "" {
		return nil
	}
	var (
		out []string
		cur strings.Builder
	)
	for i := 0; i < len(path); {
		switch {
		case path[i] == '\\' && i+1 < len(path):
			rest := path[i+1:]
			switch {
			case strings.HasPrefix(rest, sep):
				cur.WriteString(sep)
				i += 1 + len(sep)
			default:
				cur.WriteByte(path[i+1])
				i += 2
			}
		case strings.HasPrefix(path[i:], sep):
			out = append(out, cur.String())
			cur.Reset()
			i += len(sep)
		default:
			cur.WriteByte(path[i])
			i++
		}
	}
	return append(out, cur.String())
}

func segmentString(seg any) string {
	switch v := seg.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	default:
		return ""
	}
}
