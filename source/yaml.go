package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DuplicateKeyError reports a duplicate YAML mapping key with the positions
// of both occurrences.
type DuplicateKeyError struct {
	Key       string
	FirstLine int
	FirstCol  int
	Line      int
	Col       int
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate YAML key %q at %d:%d (first at %d:%d)", e.Key, e.Line, e.Col, e.FirstLine, e.FirstCol)
}

// DecodeYAML decodes the first document of data. An empty input yields nil.
func DecodeYAML(data []byte) (any, error) {
	v, err := NewYAMLReader(bytes.NewReader(data)).Next()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	return v, err
}

// DecodeYAMLNode converts an already parsed node.
func DecodeYAMLNode(n *yaml.Node) (any, error) { return new(nodeDecoder).value(n, 0) }

// YAMLReader decodes a multi-document YAML stream through yaml.Node so that
// duplicate keys are reported with positions.
type YAMLReader struct {
	dec *yaml.Decoder
}

// NewYAMLReader wraps r.
func NewYAMLReader(r io.Reader) *YAMLReader {
	return &YAMLReader{dec: yaml.NewDecoder(r)}
}

// Next returns the next document, or io.EOF when the stream is exhausted.
func (s *YAMLReader) Next() (any, error) {
	var root yaml.Node
	if err := s.dec.Decode(&root); err != nil {
		return nil, err
	}
	return new(nodeDecoder).value(&root, 0)
}

// ReadAll reads every remaining document.
func (s *YAMLReader) ReadAll() ([]any, error) {
	var out []any
	for {
		v, err := s.Next()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
}

// ErrAliasExpansion is returned when aliases expand past maxAliasNodes.
var ErrAliasExpansion = errors.New("source: YAML alias expansion exceeds limit")

const (
	// maxAliasDepth bounds how deeply aliases nest.
	maxAliasDepth = 64
	// maxAliasNodes bounds the nodes produced through aliases in one document.
	maxAliasNodes = 100_000
)

type nodeDecoder struct {
	expanded int
}

func (d *nodeDecoder) value(n *yaml.Node, depth int) (any, error) {
	if depth > 0 {
		d.expanded++
		if d.expanded > maxAliasNodes {
			return nil, fmt.Errorf("%w (%d nodes) at %d:%d", ErrAliasExpansion, maxAliasNodes, n.Line, n.Column)
		}
	}
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return d.value(n.Content[0], depth)
	case yaml.AliasNode:
		if depth >= maxAliasDepth || n.Alias == nil {
			return nil, fmt.Errorf("source: alias %q at %d:%d nests too deeply", n.Value, n.Line, n.Column)
		}
		return d.value(n.Alias, depth+1)
	case yaml.MappingNode:
		m := make(map[string]any, len(n.Content)/2)
		first := make(map[string][2]int, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, v := n.Content[i], n.Content[i+1]
			if k.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("source: mapping key at %d:%d must be a scalar", k.Line, k.Column)
			}
			if pos, dup := first[k.Value]; dup {
				return nil, &DuplicateKeyError{Key: k.Value, FirstLine: pos[0], FirstCol: pos[1], Line: k.Line, Col: k.Column}
			}
			first[k.Value] = [2]int{k.Line, k.Column}
			val, err := d.value(v, depth)
			if err != nil {
				return nil, err
			}
			m[k.Value] = val
		}
		return m, nil
	case yaml.SequenceNode:
		arr := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := d.value(c, depth)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		return arr, nil
	case yaml.ScalarNode:
		return scalarValue(n), nil
	}
	return nil, nil
}

func scalarValue(n *yaml.Node) any {
	switch n.ShortTag() {
	case "!!null":
		return nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err == nil {
			return b
		}
	case "!!int":
		if i, err := strconv.ParseInt(n.Value, 0, 64); err == nil {
			return i
		}
		var i int64
		if err := n.Decode(&i); err == nil {
			return i
		}
	case "!!float":
		var f float64
		if err := n.Decode(&f); err == nil {
			return f
		}
	}
	return n.Value
}
