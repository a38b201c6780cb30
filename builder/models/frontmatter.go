package models

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// FrontMatter is the metadata block of a source file with its keys kept
// in document order.
type FrontMatter struct {
	keys   []string
	values map[string]interface{}
}

func NewFrontMatter() *FrontMatter {
	return &FrontMatter{values: make(map[string]interface{})}
}

// DecodeFrontMatter decodes a YAML mapping. An empty block yields an
// empty FrontMatter.
func DecodeFrontMatter(data []byte) (*FrontMatter, error) {
	fm := NewFrontMatter()

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return fm, nil
	}

	root := doc.Content[0]
	if root.Kind == yaml.ScalarNode && root.Tag == "!!null" {
		return fm, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("front matter must be a mapping, got %s", nodeKind(root))
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		var key string
		if err := root.Content[i].Decode(&key); err != nil {
			return nil, fmt.Errorf("line %d: %w", root.Content[i].Line, err)
		}
		var value interface{}
		if err := root.Content[i+1].Decode(&value); err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}
		fm.Set(key, value)
	}
	return fm, nil
}

func nodeKind(n *yaml.Node) string {
	switch n.Kind {
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "document"
	}
}

// Set stores a value, keeping the original position of an existing key.
func (f *FrontMatter) Set(key string, value interface{}) {
	if _, ok := f.values[key]; !ok {
		f.keys = append(f.keys, key)
	}
	f.values[key] = value
}

func (f *FrontMatter) Get(key string) (interface{}, bool) {
	v, ok := f.values[key]
	return v, ok
}

func (f *FrontMatter) Has(key string) bool {
	_, ok := f.values[key]
	return ok
}

// String returns the value of key rendered as text; missing and null
// values give "".
func (f *FrontMatter) String(key string) string {
	v, ok := f.values[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Strings reads a list value. A YAML sequence and a comma-separated
// string are both accepted; blank items are dropped.
func (f *FrontMatter) Strings(key string) []string {
	v, ok := f.values[key]
	if !ok || v == nil {
		return nil
	}

	var out []string
	switch val := v.(type) {
	case []interface{}:
		for _, item := range val {
			if item == nil {
				continue
			}
			if s := strings.TrimSpace(fmt.Sprint(item)); s != "" {
				out = append(out, s)
			}
		}
	case []string:
		for _, s := range val {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	default:
		for _, s := range strings.Split(fmt.Sprint(val), ",") {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

func (f *FrontMatter) Keys() []string {
	keys := make([]string, len(f.keys))
	copy(keys, f.keys)
	return keys
}

func (f *FrontMatter) Len() int { return len(f.keys) }

// Map returns a copy of the values for use in template contexts.
func (f *FrontMatter) Map() map[string]interface{} {
	m := make(map[string]interface{}, len(f.values))
	for k, v := range f.values {
		m[k] = v
	}
	return m
}
