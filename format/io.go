package format

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/quanta-format/go-quanta/encode"
	"github.com/quanta-format/go-quanta/ir"
	"github.com/quanta-format/go-quanta/parse"
)

// Read decodes a document in format f. Quanta text is parsed as a
// document; JSON and YAML hold the node form written by Write.
func Read(f Format, d []byte) (*ir.Node, error) {
	switch f {
	case QuantaFormat:
		return parse.Parse(d)
	case JSONFormat:
	case YAMLFormat:
		var v any
		if err := yaml.Unmarshal(d, &v); err != nil {
			return nil, fmt.Errorf("decoding yaml: %w", err)
		}
		j, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("converting yaml: %w", err)
		}
		d = j
	default:
		return nil, fmt.Errorf("%w: %d", ErrBadFormat, int(f))
	}
	n := ir.Null()
	if err := json.Unmarshal(d, n); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", f, err)
	}
	return n, nil
}

// Write encodes the document node in format f. Encode options apply to
// quanta text only.
func Write(f Format, node *ir.Node, w io.Writer, opts ...encode.EncodeOption) error {
	switch f {
	case QuantaFormat:
		opts = append([]encode.EncodeOption{encode.Document()}, opts...)
		return encode.Encode(node, w, opts...)
	case JSONFormat:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(node)
	case YAMLFormat:
		j, err := json.Marshal(node)
		if err != nil {
			return err
		}
		dec := json.NewDecoder(bytes.NewReader(j))
		dec.UseNumber()
		var v any
		if err := dec.Decode(&v); err != nil {
			return err
		}
		d, err := yaml.Marshal(numbers(v))
		if err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		_, err = w.Write(d)
		return err
	}
	return fmt.Errorf("%w: %d", ErrBadFormat, int(f))
}

// numbers replaces the json.Number values in v with int64 or float64,
// so that integers stay integers in YAML.
func numbers(v any) any {
	switch x := v.(type) {
	case map[string]any:
		for k, e := range x {
			x[k] = numbers(e)
		}
	case []any:
		for i, e := range x {
			x[i] = numbers(e)
		}
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return i
		}
		f, _ := x.Float64()
		return f
	}
	return v
}
