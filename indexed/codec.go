package indexed

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

var (
	// ErrDecode is returned when the input is not a JSON object or a YAML
	// mapping.
	ErrDecode = errors.New("input is not a mapping")

	// ErrNilMap is returned when decoding into a nil map.
	ErrNilMap = errors.New("nil destination map")
)

// MarshalJSON encodes the map as a JSON object whose members appear in the
// map's iteration order. Standard encoding/json would sort the keys; this
// keeps the order the backend defines. A nil map encodes as null.
func MarshalJSON[K ~string, V any](m Map[K, V]) ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}

	var buf bytes.Buffer

	buf.WriteByte('{')

	first := true

	for key, value := range m.Seq() {
		if !first {
			buf.WriteByte(',')
		}

		first = false

		keyData, err := json.Marshal(string(key))
		if err != nil {
			return nil, fmt.Errorf("failed to encode key %q: %w", string(key), err)
		}

		buf.Write(keyData)
		buf.WriteByte(':')

		valueData, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("failed to encode value for key %q: %w", string(key), err)
		}

		buf.Write(valueData)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object into the map, setting each member in
// document order. Existing entries are kept; members whose keys are already
// present are updated in place. A JSON null leaves the map untouched.
// Decoding stops at the first error; members set before the failure remain
// in the map.
func UnmarshalJSON[K ~string, V any](data []byte, m Map[K, V]) error {
	if m == nil {
		return ErrNilMap
	}

	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}

	if tok == nil {
		return nil
	}

	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected a JSON object, got %v: %w", tok, ErrDecode)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("failed to parse JSON key: %w", err)
		}

		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("expected a string key, got %v: %w", keyTok, ErrDecode)
		}

		var value V

		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("failed to decode value for key %q: %w", key, err)
		}

		m.Set(K(key), value)
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}

	return nil
}

// MarshalYAML encodes the map as a YAML mapping whose entries appear in the
// map's iteration order.
func MarshalYAML[K ~string, V any](m Map[K, V]) ([]byte, error) {
	if m == nil {
		return yaml.Marshal(nil)
	}

	node := &yaml.Node{Kind: yaml.MappingNode}

	for key, value := range m.Seq() {
		keyNode := &yaml.Node{}
		if err := keyNode.Encode(string(key)); err != nil {
			return nil, fmt.Errorf("failed to encode key %q: %w", string(key), err)
		}

		valueNode := &yaml.Node{}
		if err := valueNode.Encode(value); err != nil {
			return nil, fmt.Errorf("failed to encode value for key %q: %w", string(key), err)
		}

		node.Content = append(node.Content, keyNode, valueNode)
	}

	out, err := yaml.Marshal(node)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal YAML: %w", err)
	}

	return out, nil
}

// UnmarshalYAML decodes a YAML mapping into the map, setting each entry in
// document order. An empty document leaves the map untouched. Decoding stops
// at the first error; entries set before the failure remain in the map.
func UnmarshalYAML[K ~string, V any](data []byte, m Map[K, V]) error {
	if m == nil {
		return ErrNilMap
	}

	var doc yaml.Node

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	if len(doc.Content) == 0 {
		return nil
	}

	root := doc.Content[0]
	if root.Kind == yaml.ScalarNode && root.Tag == "!!null" {
		return nil
	}

	if root.Kind != yaml.MappingNode {
		return fmt.Errorf("expected a YAML mapping, got %s: %w", root.Tag, ErrDecode)
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valueNode := root.Content[i], root.Content[i+1]

		var key string
		if err := keyNode.Decode(&key); err != nil {
			return fmt.Errorf("failed to decode YAML key: %w", err)
		}

		var value V
		if err := valueNode.Decode(&value); err != nil {
			return fmt.Errorf("failed to decode value for key %q: %w", key, err)
		}

		m.Set(K(key), value)
	}

	return nil
}
