package mat

import (
	"gopkg.in/yaml.v3"
)

// MarshalYAML encodes the matrix as a sequence of rows.
func (m Square[A]) MarshalYAML() (interface{}, error) {
	var node yaml.Node
	if err := node.Encode(m.Rows()); err != nil {
		return nil, err
	}
	for _, row := range node.Content {
		row.Style = yaml.FlowStyle
	}
	return &node, nil
}

// UnmarshalYAML decodes a sequence of rows. The table must be N×N.
func (m *Square[A]) UnmarshalYAML(value *yaml.Node) error {
	var rows Values
	if err := value.Decode(&rows); err != nil {
		return err
	}
	dec, err := New[A](rows)
	if err != nil {
		return err
	}
	*m = dec
	return nil
}
