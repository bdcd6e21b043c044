package colordefs

import (
	"fmt"
	"github.com/brandquad/colordefs/colorutils"
)

// ColorEntry is a named RGB triple as written in the color document.
type ColorEntry struct {
	Name string
	RGB  [3]int
}

func (e ColorEntry) IsDigital() bool {
	return colorutils.IsDigital(e.RGB)
}

func (e ColorEntry) Hex() string {
	return colorutils.Hex(e.RGB)
}

// ColorTable keeps entries in document order, keys are unique.
type ColorTable struct {
	entries []ColorEntry
	index   map[string]int
}

func NewColorTable(entries ...ColorEntry) (*ColorTable, error) {
	t := &ColorTable{index: make(map[string]int, len(entries))}
	for _, e := range entries {
		if err := t.add(e); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (t *ColorTable) add(e ColorEntry) error {
	if t.index == nil {
		t.index = make(map[string]int)
	}
	if _, ok := t.index[e.Name]; ok {
		return fmt.Errorf("%w: duplicate color %q", ErrParse, e.Name)
	}
	t.index[e.Name] = len(t.entries)
	t.entries = append(t.entries, e)
	return nil
}

func (t *ColorTable) Len() int {
	return len(t.entries)
}

// Entries returns a copy of the entries in document order.
func (t *ColorTable) Entries() []ColorEntry {
	out := make([]ColorEntry, len(t.entries))
	copy(out, t.entries)
	return out
}

func (t *ColorTable) Get(name string) (ColorEntry, bool) {
	i, ok := t.index[name]
	if !ok {
		return ColorEntry{}, false
	}
	return t.entries[i], true
}
