package fs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/inikit/pkg/core"
)

// Serializer converts a whole Document to and from another file format.
// Section and item order is kept in both directions.
type Serializer interface {
	// Parse reads from r and returns a Document.
	Parse(r io.Reader) (*core.Document, error)
	// Serialize converts the Document to bytes.
	Serialize(doc *core.Document) ([]byte, error)
}

// DefaultSerializers returns the standard set of serializers keyed by format name.
func DefaultSerializers() map[string]Serializer {
	return map[string]Serializer{
		"ini":  INISerializer{},
		"yaml": YAMLSerializer{},
		"yml":  YAMLSerializer{},
		"json": JSONSerializer{},
	}
}

// Formats returns the sorted format names of DefaultSerializers.
func Formats() []string {
	names := make([]string, 0, 4)
	for name := range DefaultSerializers() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// --- INI Serializer ---

// INISerializer renders a Document as a fresh file, with no previous layout.
type INISerializer struct{}

func (INISerializer) Parse(r io.Reader) (*core.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Decode(ParseLayout(data)), nil
}

func (INISerializer) Serialize(doc *core.Document) ([]byte, error) {
	return Reconcile(nil, doc).Bytes(), nil
}

// --- YAML Serializer ---

// YAMLSerializer maps sections to top-level keys and items to string scalars.
type YAMLSerializer struct{}

func (YAMLSerializer) Parse(r io.Reader) (*core.Document, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		if err == io.EOF {
			return core.NewDocument(), nil
		}
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}

	doc := core.NewDocument()
	if len(root.Content) == 0 {
		return doc, nil
	}
	top := root.Content[0]
	if top.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("invalid yaml: line %d: expected a mapping of sections", top.Line)
	}
	for i := 0; i+1 < len(top.Content); i += 2 {
		name, body := top.Content[i], top.Content[i+1]
		if err := doc.AddSection(name.Value); err != nil {
			return nil, fmt.Errorf("line %d: %w", name.Line, err)
		}
		if body.Tag == "!!null" {
			continue
		}
		if body.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("invalid yaml: line %d: section %q is not a mapping", body.Line, name.Value)
		}
		for j := 0; j+1 < len(body.Content); j += 2 {
			key, val := body.Content[j], body.Content[j+1]
			if val.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("invalid yaml: line %d: item %q is not a scalar", val.Line, key.Value)
			}
			value := val.Value
			if val.Tag == "!!null" {
				value = ""
			}
			if err := doc.Set(name.Value, key.Value, value); err != nil {
				return nil, fmt.Errorf("line %d: %w", key.Line, err)
			}
		}
	}
	return doc, nil
}

func (YAMLSerializer) Serialize(doc *core.Document) ([]byte, error) {
	top := &yaml.Node{Kind: yaml.MappingNode}
	for _, name := range doc.Sections() {
		body := &yaml.Node{Kind: yaml.MappingNode}
		for _, key := range doc.Items(name) {
			v, _ := doc.Get(name, key)
			body.Content = append(body.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v},
			)
		}
		top.Content = append(top.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name},
			body,
		)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{top}}); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// --- JSON Serializer ---

// JSONSerializer maps sections to objects of string values.
// Maps lose order in encoding/json, so both directions walk tokens by hand.
type JSONSerializer struct{}

func (JSONSerializer) Parse(r io.Reader) (*core.Document, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	doc := core.NewDocument()
	if err := expectDelim(dec, '{'); err != nil {
		if err == io.EOF {
			return doc, nil
		}
		return nil, err
	}
	for dec.More() {
		name, err := stringToken(dec)
		if err != nil {
			return nil, err
		}
		if err := doc.AddSection(name); err != nil {
			return nil, err
		}
		if err := expectDelim(dec, '{'); err != nil {
			return nil, fmt.Errorf("section %q: %w", name, err)
		}
		for dec.More() {
			key, err := stringToken(dec)
			if err != nil {
				return nil, err
			}
			tok, err := dec.Token()
			if err != nil {
				return nil, fmt.Errorf("invalid json: %w", err)
			}
			var value string
			switch v := tok.(type) {
			case string:
				value = v
			case json.Number:
				value = v.String()
			case bool:
				value = strconv.FormatBool(v)
			case nil:
				value = ""
			default:
				return nil, fmt.Errorf("invalid json: item %q in section %q is not a scalar", key, name)
			}
			if err := doc.Set(name, key, value); err != nil {
				return nil, err
			}
		}
		if err := expectDelim(dec, '}'); err != nil {
			return nil, err
		}
	}
	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	return doc, nil
}

func (JSONSerializer) Serialize(doc *core.Document) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range doc.Sections() {
		if i > 0 {
			buf.WriteByte(',')
		}
		writeJSONString(&buf, name)
		buf.WriteString(":{")
		for j, key := range doc.Items(name) {
			if j > 0 {
				buf.WriteByte(',')
			}
			v, _ := doc.Get(name, key)
			writeJSONString(&buf, key)
			buf.WriteByte(':')
			writeJSONString(&buf, v)
		}
		buf.WriteByte('}')
	}
	buf.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", "  "); err != nil {
		return nil, err
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

func writeJSONString(buf *bytes.Buffer, s string) {
	b, _ := json.Marshal(s)
	buf.Write(b)
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		if err == io.EOF {
			return err
		}
		return fmt.Errorf("invalid json: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("invalid json: expected %q, got %v", want, tok)
	}
	return nil
}

func stringToken(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", fmt.Errorf("invalid json: %w", err)
	}
	s, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("invalid json: expected a key, got %v", tok)
	}
	return s, nil
}
