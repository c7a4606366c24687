package logger

// Output controls what categories of information are shown at each verbosity level.
//
// Unlike log levels (which filter by severity), output categories control
// WHAT types of information are displayed regardless of severity.
//
//	0 (default) - results, errors with hints
//	1 (-v)      - + config source, catalog sizes
//	2 (-vv)     - + debug logs (lookups, index construction)
//	3 (-vvv)    - + raw data dumps

// OutputCategory defines a category of output that can be enabled/disabled
type OutputCategory int

const (
	OutputResults OutputCategory = iota // Command results
	OutputErrors                        // Errors with hints

	OutputConfig       // Which config file was used
	OutputCatalogStats // Catalog sizes, nomenclature version

	OutputDataDump // Full data structure contents
)

var categoryLevels = map[OutputCategory]int{
	OutputResults:      VerbosityUser,
	OutputErrors:       VerbosityUser,
	OutputConfig:       VerbosityInfo,
	OutputCatalogStats: VerbosityInfo,
	OutputDataDump:     VerbosityAll,
}

// ShouldOutput returns true if the given category should be shown at the given verbosity
func ShouldOutput(verbosity int, category OutputCategory) bool {
	minLevel, ok := categoryLevels[category]
	if !ok {
		return verbosity >= VerbosityAll
	}
	return verbosity >= minLevel
}
