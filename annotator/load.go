package annotator

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/teranos/can/errors"
)

// Record is one note as written in a YAML notes file. Code accepts the
// shorthand form with a leading emphasizer, e.g. "+KC".
type Record struct {
	Page  string `yaml:"page"`
	Code  string `yaml:"code"`
	Note  string `yaml:"note,omitempty"`
	Count int    `yaml:"count,omitempty"`
}

// LoadYAML reads a YAML list of records into a new Annotator. The first
// invalid record stops the load; its position is included in the error.
func LoadYAML(r io.Reader) (*Annotator, error) {
	var records []Record
	if err := yaml.NewDecoder(r).Decode(&records); err != nil && err != io.EOF {
		return nil, errors.WithHint(
			errors.Wrap(err, "failed to decode notes"),
			"expected a YAML list of {page, code, note, count}")
	}

	a := New()
	for i, rec := range records {
		if _, err := a.addCombined(rec.Page, rec.Code, WithNote(rec.Note), WithOccurrences(rec.Count)); err != nil {
			return nil, errors.Wrapf(err, "record %d (page %q)", i+1, rec.Page)
		}
	}
	return a, nil
}
