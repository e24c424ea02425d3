// Package source decodes JSON and YAML documents into JSON-like Go values
// (map[string]any, []any, string, int64, float64, bool, nil) suitable for
// validation. Both decoders reject duplicate object keys.
package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Format identifies a document encoding.
type Format int

const (
	FormatUnknown Format = iota
	FormatJSON
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// ErrUnknownFormat is returned when a format cannot be determined.
var ErrUnknownFormat = errors.New("source: unknown document format")

// ParseFormat maps a name such as "json", "yaml" or "yml" to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return FormatUnknown, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// DetectFormat guesses the format from the file extension, falling back to
// the first non-blank byte of data: '{' or '[' means JSON, anything else YAML.
func DetectFormat(path string, data []byte) Format {
	if ext := filepath.Ext(path); ext != "" {
		if f, err := ParseFormat(ext); err == nil {
			return f
		}
	}
	trimmed := bytes.TrimLeft(data, " \t\r\n\ufeff")
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return FormatJSON
	}
	return FormatYAML
}

// Decode decodes a single document in the given format.
func Decode(data []byte, f Format) (any, error) {
	switch f {
	case FormatJSON:
		return DecodeJSON(data)
	case FormatYAML:
		return DecodeYAML(data)
	default:
		return nil, ErrUnknownFormat
	}
}

// ReadFile reads and decodes the file at path, detecting its format. The
// path "-" reads standard input.
func ReadFile(path string) (any, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}
	v, err := Decode(data, DetectFormat(path, data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}
