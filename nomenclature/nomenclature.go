// Package nomenclature defines the annotation codes and emphasizers used to
// mark noteworthy passages while reading, e.g. "KC" for a key concept or "!"
// for something surprising.
//
// Two catalogs exist: annotations and emphasizers. Their code spaces are
// disjoint. Each catalog is indexed once, on first use, and the index is
// immutable for the life of the process.
package nomenclature

import (
	"sync"

	"github.com/teranos/can/logger"
)

var (
	annotationIndex = sync.OnceValue(func() *Index {
		return buildCatalogIndex("annotation", annotationCatalog)
	})
	emphasizerIndex = sync.OnceValue(func() *Index {
		return buildCatalogIndex("emphasizer", emphasizerCatalog)
	})
)

func buildCatalogIndex(kind string, catalog []Entry) *Index {
	idx := BuildIndex(catalog)
	logger.ComponentLogger("nomenclature").Debugw("Catalog indexed",
		logger.FieldCatalog, kind,
		logger.FieldCount, idx.Len())
	return idx
}

// Annotations returns the annotation catalog index.
func Annotations() *Index {
	return annotationIndex()
}

// Emphasizers returns the emphasizer catalog index.
func Emphasizers() *Index {
	return emphasizerIndex()
}

// GetAnnotation returns the annotation with the given code.
func GetAnnotation(code string) (Entry, bool) {
	return annotationIndex().Lookup(code)
}

// GetAnnotationByName returns the annotation with the given name, e.g. "KeyConcept".
func GetAnnotationByName(name string) (Entry, bool) {
	return annotationIndex().LookupName(name)
}

// AllAnnotations returns every annotation in catalog order. Repeated calls
// return the identical list.
func AllAnnotations() *EntryList {
	return annotationIndex().Entries()
}

// IsValidCode reports whether value is an annotation code.
func IsValidCode(value string) bool {
	return annotationIndex().Contains(value)
}

// GetEmphasizer returns the emphasizer with the given code.
func GetEmphasizer(code string) (Entry, bool) {
	return emphasizerIndex().Lookup(code)
}

// GetEmphasizerByName returns the emphasizer with the given name, e.g. "StrongLike".
func GetEmphasizerByName(name string) (Entry, bool) {
	return emphasizerIndex().LookupName(name)
}

// AllEmphasizers returns every emphasizer in catalog order. Repeated calls
// return the identical list.
func AllEmphasizers() *EntryList {
	return emphasizerIndex().Entries()
}

// IsValidEmphasizerCode reports whether value is an emphasizer code.
func IsValidEmphasizerCode(value string) bool {
	return emphasizerIndex().Contains(value)
}
