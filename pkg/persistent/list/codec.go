package list

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

var (
	_ json.Marshaler   = List[int]{}
	_ json.Unmarshaler = (*List[int])(nil)
	_ yaml.Marshaler   = List[int]{}
	_ yaml.Unmarshaler = (*List[int])(nil)
)

type marshalError struct {
	index int
	cause error
}

func (err *marshalError) Error() string {
	return fmt.Sprintf("element %d: %s", err.index, err.cause)
}

func (err *marshalError) Unwrap() error { return err.cause }

// MarshalJSON encodes the list as a JSON array. An empty list is encoded as
// [].
func (l List[T]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	index := 0
	for c := l.first; c != nil; c = c.rest {
		if index > 0 {
			buf.WriteByte(',')
		}
		elemBytes, err := json.Marshal(c.head)
		if err != nil {
			return nil, &marshalError{index, err}
		}
		buf.Write(elemBytes)
		index++
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON array into the list, replacing the list value
// held by l. Lists that share structure with the old value are not affected.
// A JSON null decodes into an empty list.
func (l *List[T]) UnmarshalJSON(data []byte) error {
	var elems []T
	if err := json.Unmarshal(data, &elems); err != nil {
		return err
	}
	*l = FromSlice(elems)
	return nil
}

// MarshalYAML encodes the list as a YAML sequence.
func (l List[T]) MarshalYAML() (any, error) {
	return l.ToSlice(), nil
}

// UnmarshalYAML decodes a YAML sequence into the list, replacing the list
// value held by l. A YAML null decodes into an empty list.
func (l *List[T]) UnmarshalYAML(node *yaml.Node) error {
	switch {
	case node.Kind == yaml.ScalarNode && node.Tag == "!!null":
		*l = List[T]{}
		return nil
	case node.Kind != yaml.SequenceNode:
		return fmt.Errorf("line %d: cannot decode %s into a list", node.Line, describeNode(node))
	}
	var elems []T
	if err := node.Decode(&elems); err != nil {
		return err
	}
	*l = FromSlice(elems)
	return nil
}

func describeNode(node *yaml.Node) string {
	switch node.Kind {
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar " + node.Tag
	default:
		return "node"
	}
}
