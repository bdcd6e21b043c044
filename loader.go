package colordefs

import (
	"errors"
	"fmt"
	"gopkg.in/yaml.v3"
	"io"
	"math"
	"os"
)

const (
	rgbField = "rgb"
	mergeTag = "!!merge"
)

// maxExactFloat is the largest float channel accepted without losing integer precision.
const maxExactFloat = 1 << 53

// LoadFile reads the color document at filename.
func LoadFile(filename string) (*ColorTable, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer f.Close()

	t, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return t, nil
}

// Load parses a YAML or JSON mapping of color name to an object holding an rgb triple.
// Entry order of the document is kept.
func Load(r io.Reader) (*ColorTable, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}

	var doc yaml.Node
	if err = yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrParse)
	}

	root := resolve(doc.Content[0])
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: line %d: top level is not a mapping", ErrSchema, root.Line)
	}

	t := &ColorTable{index: make(map[string]int, len(root.Content)/2)}
	for i := 0; i+1 < len(root.Content); i += 2 {
		key := resolve(root.Content[i])
		if key.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: line %d: color name is not a scalar", ErrSchema, key.Line)
		}
		if isMerge(key) {
			return nil, fmt.Errorf("%w: line %d: merge keys are not supported between colors", ErrSchema, key.Line)
		}

		rgb, err := entryRGB(key.Value, resolve(root.Content[i+1]))
		if err != nil {
			return nil, err
		}

		if err = t.add(ColorEntry{Name: key.Value, RGB: rgb}); err != nil {
			return nil, fmt.Errorf("line %d: %w", key.Line, err)
		}
	}
	return t, nil
}

func entryRGB(name string, n *yaml.Node) ([3]int, error) {
	var rgb [3]int
	if n.Kind != yaml.MappingNode {
		return rgb, fmt.Errorf("%w: color %q (line %d): not a mapping", ErrSchema, name, n.Line)
	}

	seq, err := field(n, rgbField)
	if err != nil {
		return rgb, fmt.Errorf("color %q: %w", name, err)
	}
	if seq == nil {
		return rgb, fmt.Errorf("%w: color %q (line %d): missing %s", ErrSchema, name, n.Line, rgbField)
	}
	if seq.Kind != yaml.SequenceNode {
		return rgb, fmt.Errorf("%w: color %q (line %d): %s is not a sequence", ErrSchema, name, seq.Line, rgbField)
	}
	if len(seq.Content) != len(rgb) {
		return rgb, fmt.Errorf("%w: color %q (line %d): %s has %d values, want %d",
			ErrSchema, name, seq.Line, rgbField, len(seq.Content), len(rgb))
	}

	for i, c := range seq.Content {
		v, err := channel(resolve(c))
		if err != nil {
			return rgb, fmt.Errorf("%w: color %q (line %d): channel %d: %v", ErrSchema, name, c.Line, i, err)
		}
		rgb[i] = v
	}
	return rgb, nil
}

// channel accepts integers and floats without a fractional part.
func channel(n *yaml.Node) (int, error) {
	if n.Kind != yaml.ScalarNode {
		return 0, errors.New("not a number")
	}
	switch n.ShortTag() {
	case "!!int":
		var v int
		if err := n.Decode(&v); err != nil {
			return 0, err
		}
		return v, nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return 0, err
		}
		if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || math.Abs(f) > maxExactFloat {
			return 0, fmt.Errorf("%q is not an integer", n.Value)
		}
		return int(f), nil
	}
	return 0, fmt.Errorf("%q is not a number", n.Value)
}

// field looks key up in mapping n, following << merges. Keys written in n win over
// merged ones, and earlier merge sources win over later ones. A key written twice
// in the same mapping is an error.
func field(n *yaml.Node, key string) (*yaml.Node, error) {
	var (
		found  *yaml.Node
		merges []*yaml.Node
		seen   = make(map[string]int, len(n.Content)/2)
	)
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := resolve(n.Content[i]), resolve(n.Content[i+1])
		if k.Kind != yaml.ScalarNode {
			continue
		}
		if isMerge(k) {
			switch v.Kind {
			case yaml.MappingNode:
				merges = append(merges, v)
			case yaml.SequenceNode:
				for _, m := range v.Content {
					if m = resolve(m); m.Kind != yaml.MappingNode {
						return nil, fmt.Errorf("%w: line %d: merge source is not a mapping", ErrParse, m.Line)
					}
					merges = append(merges, m)
				}
			default:
				return nil, fmt.Errorf("%w: line %d: merge source is not a mapping", ErrParse, v.Line)
			}
			continue
		}
		if line, ok := seen[k.Value]; ok {
			return nil, fmt.Errorf("%w: line %d: key %q already defined at line %d", ErrParse, k.Line, k.Value, line)
		}
		seen[k.Value] = k.Line
		if k.Value == key {
			found = v
		}
	}
	if found != nil {
		return found, nil
	}

	for _, m := range merges {
		v, err := field(m, key)
		if err != nil || v != nil {
			return v, err
		}
	}
	return nil, nil
}

func isMerge(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.Value == "<<" && n.ShortTag() == mergeTag
}

func resolve(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}
