package nomenclature

// Combined is an annotation code with an optional leading emphasizer, as
// written in shorthand like "+KC" or "*C".
type Combined struct {
	Emphasizer string `json:"emphasizer,omitempty" yaml:"emphasizer,omitempty" toml:"emphasizer,omitempty"`
	Annotation string `json:"annotation" yaml:"annotation" toml:"annotation"`
}

// String renders the shorthand form, emphasizer first.
func (c Combined) String() string {
	return c.Emphasizer + c.Annotation
}

// ParseCombined splits s into an optional emphasizer and an annotation code.
// It reports false when s is not exactly one annotation code, optionally
// preceded by one emphasizer.
func ParseCombined(s string) (Combined, bool) {
	if s == "" {
		return Combined{}, false
	}

	if first := s[:1]; IsValidEmphasizerCode(first) {
		if rest := s[1:]; IsValidCode(rest) {
			return Combined{Emphasizer: first, Annotation: rest}, true
		}
		return Combined{}, false
	}

	if IsValidCode(s) {
		return Combined{Annotation: s}, true
	}
	return Combined{}, false
}
