package nomenclature

import "slices"

// Index holds every lookup structure derived from one catalog. It is built
// once and never changes afterwards; all accessors return either copies or
// read-only views, so it can be shared between goroutines without locking.
type Index struct {
	nameToCode   *Table
	codeToName   *Table
	descriptions *Table
	codes        *CodeList
	byCode       map[string]Entry
	byName       map[string]Entry
	entries      *EntryList
}

// BuildIndex derives all projections of catalog in a single pass.
//
// The catalog is copied, so later changes to the caller's slice are not seen.
// Duplicate codes or names are not rejected: the last entry wins in the
// keyed projections while the ordered list keeps every row.
func BuildIndex(catalog []Entry) *Index {
	n := len(catalog)
	idx := &Index{
		nameToCode:   newTable(n),
		codeToName:   newTable(n),
		descriptions: newTable(n),
		codes:        &CodeList{codes: make([]string, 0, n)},
		byCode:       make(map[string]Entry, n),
		byName:       make(map[string]Entry, n),
		entries:      &EntryList{entries: slices.Clone(catalog)},
	}

	for _, e := range idx.entries.entries {
		idx.nameToCode.set(e.Name, e.Code)
		idx.codeToName.set(e.Code, e.Name)
		idx.descriptions.set(e.Code, e.Description)
		idx.codes.codes = append(idx.codes.codes, e.Code)
		idx.byCode[e.Code] = e
		idx.byName[e.Name] = e
	}

	return idx
}

// Lookup returns the entry with the given code. Matching is exact and
// case-sensitive.
func (idx *Index) Lookup(code string) (Entry, bool) {
	e, ok := idx.byCode[code]
	return e, ok
}

// LookupName returns the entry with the given name. Matching is exact and
// case-sensitive.
func (idx *Index) LookupName(name string) (Entry, bool) {
	e, ok := idx.byName[name]
	return e, ok
}

// Contains reports whether code belongs to the catalog.
func (idx *Index) Contains(code string) bool {
	_, ok := idx.byCode[code]
	return ok
}

// Len returns the number of catalog rows.
func (idx *Index) Len() int {
	return idx.entries.Len()
}

// Entries returns the ordered catalog. The same *EntryList is returned on
// every call.
func (idx *Index) Entries() *EntryList {
	return idx.entries
}

// Codes returns the ordered code list.
func (idx *Index) Codes() *CodeList {
	return idx.codes
}

// NameToCode returns the name→code table.
func (idx *Index) NameToCode() *Table {
	return idx.nameToCode
}

// CodeToName returns the code→name table.
func (idx *Index) CodeToName() *Table {
	return idx.codeToName
}

// Descriptions returns the code→description table.
func (idx *Index) Descriptions() *Table {
	return idx.descriptions
}
