// Package modsfile reads modifier documents written in YAML or JSON.
//
// Key order in the document is kept, so
//
//	size: lg
//	open: true
//
// renders as Block_size_lg Block_open. Nested mappings (such as props and
// state sections) become nested propmods.Mods with their order kept as well.
package modsfile

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/pthm/propmods"
)

// ErrNotMapping is returned when the document root is not a mapping.
var ErrNotMapping = errors.New("modsfile: document is not a mapping")

// Parse decodes a YAML or JSON document into ordered modifiers. An empty
// document yields no modifiers.
func Parse(data []byte) (propmods.Mods, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("modsfile: %w", err)
	}

	node := &doc
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return nil, nil
		}
		node = node.Content[0]
	}
	if node.Kind == 0 {
		return nil, nil
	}

	return decodeMapping(node)
}

// Read is Parse for a reader.
func Read(r io.Reader) (propmods.Mods, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("modsfile: %w", err)
	}
	return Parse(data)
}

func decodeMapping(n *yaml.Node) (propmods.Mods, error) {
	if n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w (line %d)", ErrNotMapping, n.Line)
	}

	mods := make(propmods.Mods, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]
		if val.Kind == yaml.AliasNode && val.Alias != nil {
			val = val.Alias
		}

		var value any
		if val.Kind == yaml.MappingNode {
			nested, err := decodeMapping(val)
			if err != nil {
				return nil, err
			}
			value = nested
		} else if err := val.Decode(&value); err != nil {
			return nil, fmt.Errorf("modsfile: %q (line %d): %w", key.Value, key.Line, err)
		}

		mods = append(mods, propmods.Modifier{Key: key.Value, Value: value})
	}

	return mods, nil
}
