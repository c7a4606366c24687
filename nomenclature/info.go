package nomenclature

// Version is the nomenclature revision in MAJOR.MINOR.PATCH form. It changes
// whenever a code is added, renamed, or re-described.
const Version = "1.0.0"

// Disclaimer text that applications may show next to annotations.
const (
	DisclaimerFull = "These annotations are for indicating 'noteworthy' content, not necessarily good or bad " +
		"or likeable content. Sometimes the desire is to note something because it's weird or otherwise " +
		"important to remember."
	DisclaimerShort = "Noteworthy, not necessarily good or bad"
)
