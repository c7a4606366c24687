package nomenclature

// Emphasizer codes. An emphasizer is appended to an annotation to mark a
// strong sentiment; at most one may be attached to any annotation.
const (
	StrongLike    = "+"
	StrongDislike = "-"
	Critical      = "*"
)

// emphasizerCatalog shares no codes with annotationCatalog, which is what
// lets ParseCombined split "+KC" without ambiguity.
var emphasizerCatalog = []Entry{
	{StrongLike, "StrongLike", "I really like this"},
	{StrongDislike, "StrongDislike", "I really don't like this"},
	{Critical, "Critical", "This is really important"},
}

// EmphasizerGuidance describes when and how emphasizers should be used.
type EmphasizerGuidance struct {
	Purpose        string `json:"purpose" yaml:"purpose" toml:"purpose"`
	Recommendation string `json:"recommendation" yaml:"recommendation" toml:"recommendation"`
	Note           string `json:"note" yaml:"note" toml:"note"`
}

// EmphasizerInfo is returned by value; callers cannot alter the shared text.
func EmphasizerInfo() EmphasizerGuidance {
	return EmphasizerGuidance{
		Purpose: "Emphasizers are entirely optional, but exist primarily because annotation codes are often meant to " +
			"communicate something only noteworthy. This means there is a gap that can be solved by adding an " +
			"emphasizer to eliminate the necessity for verbose comments.",
		Recommendation: "The primary recommendation is that you only use one emphasizer per annotation code. " +
			"You may change it later if needed.",
		Note: "Emphasizers should be used sparingly - only when you really want to emphasize something. Use them to " +
			"communicate a 'strong' dislike, 'strong' like, or 'strong' belief that something is important.",
	}
}
