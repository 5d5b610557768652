// ABOUTME: YAML adapter so ULID fields appear as plain scalars in yaml.v3 documents.
// ABOUTME: Mirrors the text codec; bad scalars surface the same invalid-format error.
package ulid

import "gopkg.in/yaml.v3"

// MarshalYAML implements yaml.Marshaler, emitting the canonical text form.
func (id ULID) MarshalYAML() (any, error) {
	return id.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. The node must hold a scalar
// that Parse accepts.
func (id *ULID) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	return id.UnmarshalText([]byte(s))
}
