package model

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DirectoryFile is the on-disk shape of a seed or dump document.
type DirectoryFile struct {
	Businesses []Business `yaml:"businesses"`
}

// DecodeDirectory parses a directory document.
// Records are returned in document order; IDs are not validated here.
func DecodeDirectory(data []byte) ([]Business, error) {
	var df DirectoryFile
	if err := yaml.Unmarshal(data, &df); err != nil {
		return nil, fmt.Errorf("failed to parse directory document: %w", err)
	}
	return df.Businesses, nil
}

// EncodeDirectory renders records as a directory document.
// Record order is preserved.
// Absent optional fields are omitted.
// Multi-line descriptions use block scalar style.
func EncodeDirectory(records []Business) ([]byte, error) {
	doc := &yaml.Node{Kind: yaml.MappingNode}

	seq := &yaml.Node{Kind: yaml.SequenceNode}
	for i := range records {
		seq.Content = append(seq.Content, buildBusinessNode(&records[i]))
	}
	doc.Content = append(doc.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: "businesses"},
		seq,
	)

	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode directory: %w", err)
	}
	return data, nil
}

// EncodeInput renders a single input as a YAML mapping, used as the
// editable template for interactive adds.
func EncodeInput(in *BusinessInput) ([]byte, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	addInputFields(node, in)
	data, err := yaml.Marshal(node)
	if err != nil {
		return nil, fmt.Errorf("failed to encode business: %w", err)
	}
	return data, nil
}

// DecodeInput parses a single input mapping produced by EncodeInput.
func DecodeInput(data []byte) (BusinessInput, error) {
	var in BusinessInput
	if err := yaml.Unmarshal(data, &in); err != nil {
		return BusinessInput{}, fmt.Errorf("invalid YAML: %w", err)
	}
	return in, nil
}

// buildBusinessNode creates a yaml.Node for a Business.
func buildBusinessNode(b *Business) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode}
	addIntField(node, "id", b.ID)
	in := b.Input()
	addInputFields(node, &in)
	return node
}

func addInputFields(node *yaml.Node, in *BusinessInput) {
	addStringField(node, "name", in.Name)
	addStringField(node, "category", string(in.Category))
	addStringField(node, "location", in.Location)
	addMultilineStringField(node, "description", in.Description)
	if in.Phone != nil {
		addStringField(node, "phone", *in.Phone)
	}
	if in.Website != nil {
		addStringField(node, "website", *in.Website)
	}
}

// Helper functions for building yaml.Node

func addStringField(node *yaml.Node, key, value string) {
	node.Content = append(node.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: key},
		&yaml.Node{Kind: yaml.ScalarNode, Value: value, Tag: "!!str"},
	)
}

func addIntField(node *yaml.Node, key string, value int) {
	node.Content = append(node.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: key},
		&yaml.Node{Kind: yaml.ScalarNode, Value: strconv.Itoa(value), Tag: "!!int"},
	)
}

func addMultilineStringField(node *yaml.Node, key, value string) {
	// Use literal block scalar style for multi-line strings
	var style yaml.Style
	if strings.Contains(value, "\n") {
		style = yaml.LiteralStyle
	}
	node.Content = append(node.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: key},
		&yaml.Node{Kind: yaml.ScalarNode, Value: value, Tag: "!!str", Style: style},
	)
}

// UnmarshalYAML accepts category names case-insensitively. Unknown names are
// kept verbatim so the store can report them as invalid input.
func (c *Category) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	if parsed, err := ParseCategory(s); err == nil {
		*c = parsed
		return nil
	}
	*c = Category(s)
	return nil
}
