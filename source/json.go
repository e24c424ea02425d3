package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	j "github.com/goccy/go-json"
)

// DuplicateJSONKeyError reports an object key that occurs twice.
type DuplicateJSONKeyError struct {
	Key string
	// Path locates the object holding the key, as JSON Pointer.
	Path string
}

func (e *DuplicateJSONKeyError) Error() string {
	return fmt.Sprintf("duplicate JSON key %q in object at %q", e.Key, e.Path)
}

// DecodeJSON decodes exactly one JSON value. Integers that fit become int64,
// other numbers float64. Trailing data is an error.
func DecodeJSON(data []byte) (any, error) {
	return NewJSONDecoder(bytes.NewReader(data)).Decode()
}

// JSONDecoder walks a go-json token stream and builds values while checking
// object keys for duplicates.
type JSONDecoder struct {
	dec *j.Decoder
}

// NewJSONDecoder wraps r.
func NewJSONDecoder(r io.Reader) *JSONDecoder {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	return &JSONDecoder{dec: dec}
}

// Decode reads the single value held by the stream.
func (d *JSONDecoder) Decode() (any, error) {
	v, err := d.value(nil)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	if _, err := d.dec.Token(); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, err
		}
		return nil, errors.New("source: unexpected data after top-level JSON value")
	}
	return v, nil
}

func (d *JSONDecoder) value(path []string) (any, error) {
	tok, err := d.dec.Token()
	if err != nil {
		return nil, err
	}
	switch v := tok.(type) {
	case j.Delim:
		switch v {
		case '{':
			return d.object(path)
		case '[':
			return d.array(path)
		}
		return nil, fmt.Errorf("source: unexpected delimiter %q", rune(v))
	case j.Number:
		return number(string(v)), nil
	case float64:
		return v, nil
	case string, bool, nil:
		return v, nil
	}
	return nil, fmt.Errorf("source: unexpected token %T", tok)
}

func (d *JSONDecoder) object(path []string) (any, error) {
	m := map[string]any{}
	for d.dec.More() {
		tok, err := d.dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("source: object key must be a string, got %T", tok)
		}
		if _, dup := m[key]; dup {
			return nil, &DuplicateJSONKeyError{Key: key, Path: pointer(path)}
		}
		v, err := d.value(append(path, key))
		if err != nil {
			return nil, err
		}
		m[key] = v
	}
	if _, err := d.dec.Token(); err != nil {
		return nil, err
	}
	return m, nil
}

func (d *JSONDecoder) array(path []string) (any, error) {
	arr := []any{}
	for d.dec.More() {
		v, err := d.value(append(path, strconv.Itoa(len(arr))))
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}
	if _, err := d.dec.Token(); err != nil {
		return nil, err
	}
	return arr, nil
}

func number(s string) any {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return s
	}
	return f
}

// pointer renders path as RFC 6901 JSON Pointer.
func pointer(path []string) string {
	if len(path) == 0 {
		return "/"
	}
	var b strings.Builder
	r := strings.NewReplacer("~", "~0", "/", "~1")
	for _, p := range path {
		b.WriteByte('/')
		b.WriteString(r.Replace(p))
	}
	return b.String()
}
