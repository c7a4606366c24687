// Package annotator collects per-page reading annotations, validating every
// code and emphasizer against the nomenclature catalogs.
//
// An Annotator is owned by one goroutine; it is not safe for concurrent use.
package annotator

import (
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/teranos/can/errors"
	"github.com/teranos/can/logger"
	"github.com/teranos/can/nomenclature"
	"github.com/teranos/can/render"
)

// Note is one annotation placed on a page.
type Note struct {
	ID          string `json:"id" yaml:"id" toml:"id"`
	Page        string `json:"page" yaml:"page" toml:"page"`
	Code        string `json:"code" yaml:"code" toml:"code"`
	Emphasizer  string `json:"emphasizer,omitempty" yaml:"emphasizer,omitempty" toml:"emphasizer,omitempty"`
	Occurrences int    `json:"occurrences,omitempty" yaml:"occurrences,omitempty" toml:"occurrences,omitempty"`
	Text        string `json:"text,omitempty" yaml:"text,omitempty" toml:"text,omitempty"`
}

// Detail is a note resolved against the catalogs.
type Detail struct {
	Note       Note                `json:"note" yaml:"note" toml:"note"`
	Annotation nomenclature.Entry  `json:"annotation" yaml:"annotation" toml:"annotation"`
	Emphasizer *nomenclature.Entry `json:"emphasizer,omitempty" yaml:"emphasizer,omitempty" toml:"emphasizer,omitempty"`
	Rendered   render.Formatted    `json:"rendered" yaml:"rendered" toml:"rendered"`
}

// AddOption customizes a note passed to Add.
type AddOption func(*Note)

// WithEmphasizer attaches an emphasizer code such as "+" or "*".
func WithEmphasizer(code string) AddOption {
	return func(n *Note) { n.Emphasizer = code }
}

// WithOccurrences records how many times the annotation applies.
func WithOccurrences(count int) AddOption {
	return func(n *Note) { n.Occurrences = count }
}

// WithNote attaches free text.
func WithNote(text string) AddOption {
	return func(n *Note) { n.Text = text }
}

// Annotator holds notes grouped by page, in insertion order.
type Annotator struct {
	pages  []string
	notes  map[string][]Note
	logger *zap.SugaredLogger
}

// New creates an empty Annotator.
func New() *Annotator {
	return &Annotator{
		notes:  make(map[string][]Note),
		logger: logger.ComponentLogger("annotator"),
	}
}

// Add validates code and the options, then records a note on page.
func (a *Annotator) Add(page, code string, opts ...AddOption) (Note, error) {
	n := Note{Page: strings.TrimSpace(page), Code: code}
	for _, opt := range opts {
		opt(&n)
	}

	err := Validate(n)
	if n.Page == "" {
		err = errors.WithHint(errors.NewInvalidRequestError("page is empty"),
			"pass a page number or label such as '42' or 'iv'")
	}
	if err != nil {
		a.logger.Debugw("Annotation rejected",
			logger.FieldPage, n.Page,
			logger.FieldCode, n.Code,
			logger.FieldError, err)
		return Note{}, err
	}

	n.ID = uuid.New().String()
	if _, seen := a.notes[n.Page]; !seen {
		a.pages = append(a.pages, n.Page)
	}
	a.notes[n.Page] = append(a.notes[n.Page], n)

	a.logger.Debugw("Annotation added",
		logger.FieldNoteID, n.ID,
		logger.FieldPage, n.Page,
		logger.FieldCode, n.Code,
		logger.FieldEmphasizer, n.Emphasizer)
	return n, nil
}

// AddCombined records a note written in shorthand, e.g. "+KC" or "Q".
func (a *Annotator) AddCombined(page, combined, text string) (Note, error) {
	return a.addCombined(page, combined, WithNote(text))
}

func (a *Annotator) addCombined(page, combined string, opts ...AddOption) (Note, error) {
	c, err := ParseCombined(combined)
	if err != nil {
		return Note{}, err
	}
	return a.Add(page, c.Annotation, append([]AddOption{WithEmphasizer(c.Emphasizer)}, opts...)...)
}

// ParseCombined is nomenclature.ParseCombined with an error explaining why
// s was rejected.
func ParseCombined(s string) (nomenclature.Combined, error) {
	if c, ok := nomenclature.ParseCombined(s); ok {
		return c, nil
	}
	emph, rest := splitEmphasizers(s)
	if len(emph) > 1 {
		return nomenclature.Combined{}, multipleEmphasizers(emph)
	}
	if len(emph) == 1 {
		return nomenclature.Combined{}, unknownCode(rest)
	}
	return nomenclature.Combined{}, unknownCode(s)
}

// Page returns the notes on page resolved against the catalogs, or nil when
// the page has none.
func (a *Annotator) Page(page string) []Detail {
	notes := a.notes[strings.TrimSpace(page)]
	if len(notes) == 0 {
		return nil
	}

	details := make([]Detail, 0, len(notes))
	for _, n := range notes {
		details = append(details, Resolve(n))
	}
	return details
}

// Pages returns annotated pages in the order they were first annotated.
func (a *Annotator) Pages() []string {
	out := make([]string, len(a.pages))
	copy(out, a.pages)
	return out
}

// Notes returns every note, page by page.
func (a *Annotator) Notes() []Note {
	var out []Note
	for _, p := range a.pages {
		out = append(out, a.notes[p]...)
	}
	return out
}

// Len returns the number of notes.
func (a *Annotator) Len() int {
	n := 0
	for _, notes := range a.notes {
		n += len(notes)
	}
	return n
}

// Resolve looks up the catalog entries for n and renders it. Unknown codes
// resolve to zero entries.
func Resolve(n Note) Detail {
	d := Detail{
		Note: n,
		Rendered: render.Annotation(render.Options{
			Code:        n.Code,
			Emphasizer:  n.Emphasizer,
			Occurrences: n.Occurrences,
			Note:        n.Text,
		}),
	}
	d.Annotation, _ = nomenclature.GetAnnotation(n.Code)
	if e, ok := nomenclature.GetEmphasizer(n.Emphasizer); ok {
		d.Emphasizer = &e
	}
	return d
}

// Validate checks the code, emphasizer and occurrence count of n. At most one
// emphasizer is allowed.
func Validate(n Note) error {
	if !nomenclature.IsValidCode(n.Code) {
		return unknownCode(n.Code)
	}
	if n.Occurrences < 0 {
		return errors.NewInvalidRequestError("occurrences must not be negative, got %d", n.Occurrences)
	}
	if n.Emphasizer == "" || nomenclature.IsValidEmphasizerCode(n.Emphasizer) {
		return nil
	}
	if emph, rest := splitEmphasizers(n.Emphasizer); rest == "" && len(emph) > 1 {
		return multipleEmphasizers(emph)
	}
	return errors.WithHint(
		errors.Wrapf(errors.ErrUnknownEmphasizer, "emphasizer %q", n.Emphasizer),
		"run 'can emphasizers' to see valid emphasizers")
}

// splitEmphasizers peels leading emphasizer codes off s.
func splitEmphasizers(s string) (emph []string, rest string) {
	for len(s) > 0 && nomenclature.IsValidEmphasizerCode(s[:1]) {
		emph = append(emph, s[:1])
		s = s[1:]
	}
	return emph, s
}

func unknownCode(code string) error {
	return errors.WithHint(
		errors.Wrapf(errors.ErrUnknownCode, "code %q", code),
		"run 'can list' to see valid codes")
}

func multipleEmphasizers(emph []string) error {
	return errors.WithHintf(
		errors.Wrapf(errors.ErrMultipleEmphasizers, "got %q", strings.Join(emph, "")),
		"keep the strongest one, e.g. %q", emph[0])
}
