package nomenclature

import (
	"iter"
	"slices"
)

// Entry is one row of a catalog. Entries are handed out by value, so a caller
// that edits its copy never touches the catalog.
type Entry struct {
	Code        string `json:"code" yaml:"code" toml:"code"`
	Name        string `json:"name" yaml:"name" toml:"name"`
	Description string `json:"description" yaml:"description" toml:"description"`
}

// Table is a read-only string projection of a catalog (code→name,
// name→code, code→description). Iteration follows catalog order.
type Table struct {
	keys   []string
	values map[string]string
}

func newTable(capacity int) *Table {
	return &Table{
		keys:   make([]string, 0, capacity),
		values: make(map[string]string, capacity),
	}
}

// set records key→value; a repeated key keeps its first position and takes
// the last value.
func (t *Table) set(key, value string) {
	if _, ok := t.values[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.values[key] = value
}

// Get returns the value stored under key.
func (t *Table) Get(key string) (string, bool) {
	v, ok := t.values[key]
	return v, ok
}

// Len returns the number of keys.
func (t *Table) Len() int {
	return len(t.keys)
}

// Keys returns a fresh copy of the keys in catalog order.
func (t *Table) Keys() []string {
	return slices.Clone(t.keys)
}

// All iterates key/value pairs in catalog order.
func (t *Table) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, k := range t.keys {
			if !yield(k, t.values[k]) {
				return
			}
		}
	}
}

// Map returns a fresh copy of the table as a plain map.
func (t *Table) Map() map[string]string {
	out := make(map[string]string, len(t.values))
	for k, v := range t.values {
		out[k] = v
	}
	return out
}

// CodeList is the read-only ordered list of codes in a catalog.
type CodeList struct {
	codes []string
}

// Len returns the number of codes.
func (l *CodeList) Len() int {
	return len(l.codes)
}

// At returns the i-th code. It panics if i is out of range, like a slice index.
func (l *CodeList) At(i int) string {
	return l.codes[i]
}

// All iterates codes with their position.
func (l *CodeList) All() iter.Seq2[int, string] {
	return slices.All(l.codes)
}

// Slice returns a fresh copy of the codes.
func (l *CodeList) Slice() []string {
	return slices.Clone(l.codes)
}

// EntryList is the read-only ordered sequence of entries in a catalog.
type EntryList struct {
	entries []Entry
}

// Len returns the number of entries.
func (l *EntryList) Len() int {
	return len(l.entries)
}

// At returns a copy of the i-th entry. It panics if i is out of range.
func (l *EntryList) At(i int) Entry {
	return l.entries[i]
}

// All iterates entries with their position. Yielded entries are copies.
func (l *EntryList) All() iter.Seq2[int, Entry] {
	return slices.All(l.entries)
}

// Slice returns a fresh copy of the entries, e.g. for marshalling.
func (l *EntryList) Slice() []Entry {
	return slices.Clone(l.entries)
}
