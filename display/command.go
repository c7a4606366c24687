// Package display decides how CLI results are printed and encodes them as
// JSON, YAML or TOML.
package display

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/teranos/can/am"
	"github.com/teranos/can/errors"
)

// CallerEnv names the variable a wrapping script sets to "script" to get
// compact JSON by default.
const CallerEnv = "CAN_CALLER"

// IsScriptedCaller reports whether can runs under a script that asked for
// machine-readable output.
func IsScriptedCaller() bool {
	return strings.EqualFold(os.Getenv(CallerEnv), "script")
}

// ShouldOutputJSON determines if a command should output JSON based on flags and caller detection
func ShouldOutputJSON(cmd *cobra.Command) bool {
	if cmd == nil {
		return IsScriptedCaller()
	}

	// Check if --json flag was explicitly set
	if cmd.Flags().Changed("json") {
		jsonFlag, _ := cmd.Flags().GetBool("json")
		return jsonFlag
	}

	// Check global --json flag
	if globalFlag, _ := cmd.Root().PersistentFlags().GetBool("json"); globalFlag {
		return true
	}

	return IsScriptedCaller()
}

// ResolveFormat picks the output format for cmd: --json wins, then a
// --format flag, then the configured default.
func ResolveFormat(cmd *cobra.Command, configured string) (string, error) {
	if ShouldOutputJSON(cmd) {
		return am.FormatJSON, nil
	}

	format := configured
	if cmd != nil {
		if f := cmd.Flags().Lookup("format"); f != nil && f.Changed {
			format = f.Value.String()
		}
	}
	if format == "" {
		return am.DefaultFormat, nil
	}

	for _, known := range am.Formats {
		if format == known {
			return format, nil
		}
	}
	return "", errors.WithHintf(
		errors.NewInvalidRequestError("unknown output format %q", format),
		"use one of %s", strings.Join(am.Formats, ", "))
}

// Output writes v to w in a structured format
func Output(w io.Writer, format string, v interface{}) error {
	data, err := Marshal(format, v)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return errors.Wrap(err, "failed to write output")
	}
	if len(data) > 0 && data[len(data)-1] != '\n' {
		_, err = fmt.Fprintln(w)
	}
	return err
}
