package logger

import (
	"go.uber.org/zap"
)

// Standard field names for consistent structured logging.
// Use these constants instead of raw strings to ensure consistency.
const (
	// Components
	FieldComponent = "component"
	FieldCommand   = "command"

	// Catalog
	FieldCatalog    = "catalog"
	FieldCode       = "code"
	FieldName       = "name"
	FieldEmphasizer = "emphasizer"

	// Annotator
	FieldPage   = "page"
	FieldNoteID = "note_id"

	// Rendering and search
	FieldMedium = "medium"
	FieldQuery  = "query"
	FieldLimit  = "limit"

	// Counts
	FieldCount = "count"

	// Config
	FieldFile   = "file"
	FieldFormat = "format"

	// Errors
	FieldError = "error"
)

// ComponentLogger returns a named logger for a specific component.
//
// Example:
//
//	type Annotator struct {
//	    logger *zap.SugaredLogger
//	}
//
//	func New() *Annotator {
//	    return &Annotator{logger: logger.ComponentLogger("annotator")}
//	}
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}

// ChildLogger creates a child logger with additional context.
func ChildLogger(parent *zap.SugaredLogger, keysAndValues ...interface{}) *zap.SugaredLogger {
	return parent.With(keysAndValues...)
}

// WithCode returns a logger that tags every entry with an annotation code.
func WithCode(l *zap.SugaredLogger, code string) *zap.SugaredLogger {
	return l.With(FieldCode, code)
}
