// Package export writes a composed pipeline as an order-preserving JSON or
// YAML document shaped as {stage: {role: {field: value}}}.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/satishgoda/OpenAssetIO/internal/domain"
	"github.com/satishgoda/OpenAssetIO/internal/infra/reprfmt"
	"github.com/satishgoda/OpenAssetIO/internal/ports"
)

// JSON writes p as indented JSON. Object keys keep declaration order.
func JSON(w io.Writer, p *domain.Pipeline) error {
	raw, err := marshalPipeline(p)
	if err != nil {
		return err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "  "); err != nil {
		return &domain.OpError{Op: "export.json", Kind: domain.KindExecution, Err: err}
	}
	out.WriteByte('\n')
	_, err = w.Write(out.Bytes())
	return err
}

// Document returns p decoded into generic JSON values (map[string]any,
// []any, float64, string, bool, nil), suitable for JSONPath evaluation.
func Document(p *domain.Pipeline) (any, error) {
	raw, err := marshalPipeline(p)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &domain.OpError{Op: "export.document", Kind: domain.KindExecution, Err: err}
	}
	return doc, nil
}

// Documents serves Document through ports.DocumentExporter.
type Documents struct{}

var _ ports.DocumentExporter = Documents{}

func NewDocuments() Documents { return Documents{} }

func (Documents) Document(p *domain.Pipeline) (any, error) { return Document(p) }

func marshalPipeline(p *domain.Pipeline) ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	for i, spec := range p.Specifications() {
		if i > 0 {
			b.WriteByte(',')
		}
		writeJSONString(&b, string(spec.Stage()))
		b.WriteByte(':')
		b.WriteByte('{')
		for j, role := range spec.Roles() {
			if j > 0 {
				b.WriteByte(',')
			}
			writeJSONString(&b, role.Name)
			b.WriteByte(':')
			if err := writeJSONRecord(&b, role.Trait.Fields()); err != nil {
				return nil, &domain.OpError{
					Op:   "export.json",
					Kind: domain.KindExecution,
					Err:  fmt.Errorf("%s.%s: %w", spec.Stage(), role.Name, err),
				}
			}
		}
		b.WriteByte('}')
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

func writeJSONRecord(b *bytes.Buffer, r domain.Record) error {
	b.WriteByte('{')
	for i, f := range r {
		if i > 0 {
			b.WriteByte(',')
		}
		writeJSONString(b, f.Name)
		b.WriteByte(':')
		if err := writeJSONValue(b, f.Value); err != nil {
			return fmt.Errorf("field %s: %w", f.Name, err)
		}
	}
	b.WriteByte('}')
	return nil
}

func writeJSONValue(b *bytes.Buffer, v any) error {
	v = emptyList(v)
	switch t := v.(type) {
	case domain.Record:
		return writeJSONRecord(b, t)
	case []domain.Record:
		b.WriteByte('[')
		for i, r := range t {
			if i > 0 {
				b.WriteByte(',')
			}
			if err := writeJSONRecord(b, r); err != nil {
				return err
			}
		}
		b.WriteByte(']')
		return nil
	case domain.Recorder:
		return writeJSONRecord(b, t.AsRecord())
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return fmt.Errorf("float %v has no JSON form", t)
		}
	case nil, bool, int, int64, string, []string:
	default:
		return fmt.Errorf("unsupported value type %T", v)
	}

	enc, err := json.Marshal(v)
	if err != nil {
		return err
	}
	b.Write(enc)
	return nil
}

func writeJSONString(b *bytes.Buffer, s string) {
	enc, _ := json.Marshal(s)
	b.Write(enc)
}

// YAML writes p as a YAML document. Mapping keys keep declaration order.
func YAML(w io.Writer, p *domain.Pipeline) error {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, spec := range p.Specifications() {
		roles := &yaml.Node{Kind: yaml.MappingNode}
		for _, role := range spec.Roles() {
			n, err := yamlRecord(role.Trait.Fields())
			if err != nil {
				return &domain.OpError{
					Op:   "export.yaml",
					Kind: domain.KindExecution,
					Err:  fmt.Errorf("%s.%s: %w", spec.Stage(), role.Name, err),
				}
			}
			roles.Content = append(roles.Content, keyNode(role.Name), n)
		}
		root.Content = append(root.Content, keyNode(string(spec.Stage())), roles)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return &domain.OpError{Op: "export.yaml", Kind: domain.KindExecution, Err: err}
	}
	return enc.Close()
}

func keyNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func yamlRecord(r domain.Record) (*yaml.Node, error) {
	m := &yaml.Node{Kind: yaml.MappingNode}
	for _, f := range r {
		v, err := yamlValue(f.Value)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Name, err)
		}
		m.Content = append(m.Content, keyNode(f.Name), v)
	}
	return m, nil
}

func yamlValue(v any) (*yaml.Node, error) {
	v = emptyList(v)
	switch t := v.(type) {
	case domain.Record:
		return yamlRecord(t)
	case []domain.Record:
		seq := &yaml.Node{Kind: yaml.SequenceNode}
		for _, r := range t {
			n, err := yamlRecord(r)
			if err != nil {
				return nil, err
			}
			seq.Content = append(seq.Content, n)
		}
		return seq, nil
	case domain.Recorder:
		return yamlRecord(t.AsRecord())
	case float64:
		// Keep the decimal point so 1.0 reads back as a float.
		switch {
		case math.IsNaN(t):
			return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: ".nan"}, nil
		case math.IsInf(t, 1):
			return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: ".inf"}, nil
		case math.IsInf(t, -1):
			return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: "-.inf"}, nil
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: reprfmt.Float(t)}, nil
	case nil, bool, int, int64, string, []string:
		n := &yaml.Node{}
		if err := n.Encode(v); err != nil {
			return nil, err
		}
		return n, nil
	default:
		return nil, fmt.Errorf("unsupported value type %T", v)
	}
}

// emptyList maps nil lists to empty ones, matching the report's [].
func emptyList(v any) any {
	switch t := v.(type) {
	case []string:
		if t == nil {
			return []string{}
		}
	case []domain.Record:
		if t == nil {
			return []domain.Record{}
		}
	}
	return v
}
