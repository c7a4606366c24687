package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/can/am"
	"github.com/teranos/can/display"
	"github.com/teranos/can/errors"
	"github.com/teranos/can/logger"
	"github.com/teranos/can/nomenclature"
)

// ShowCmd looks up one annotation or emphasizer
var ShowCmd = &cobra.Command{
	Use:   "show <code|name>",
	Short: "Show one annotation or emphasizer",
	Long: `Look up an annotation or emphasizer by exact code or name. Lookups are
case-sensitive.

Examples:
  can show KC            # By code
  can show KeyConcept    # By name
  can show '*'           # An emphasizer`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

type shownEntry struct {
	Kind  string             `json:"kind" yaml:"kind" toml:"kind"`
	Entry nomenclature.Entry `json:"entry" yaml:"entry" toml:"entry"`
}

func init() {
	addFormatFlag(ShowCmd)
}

// lookup resolves value against both catalogs, codes before names.
func lookup(value string) (shownEntry, bool) {
	lookups := []struct {
		kind string
		fn   func(string) (nomenclature.Entry, bool)
	}{
		{"annotation", nomenclature.GetAnnotation},
		{"annotation", nomenclature.GetAnnotationByName},
		{"emphasizer", nomenclature.GetEmphasizer},
		{"emphasizer", nomenclature.GetEmphasizerByName},
	}
	for _, l := range lookups {
		if e, ok := l.fn(value); ok {
			logger.ComponentLogger("show").Debugw("Lookup hit",
				logger.FieldCode, e.Code,
				logger.FieldName, e.Name,
				logger.FieldCatalog, l.kind)
			return shownEntry{Kind: l.kind, Entry: e}, true
		}
	}
	return shownEntry{}, false
}

func runShow(cmd *cobra.Command, args []string) error {
	shown, ok := lookup(args[0])
	if !ok {
		logger.WithCode(logger.ComponentLogger("show"), args[0]).Debugw("Lookup missed")
		return errors.WithHint(
			errors.NewNotFoundError("no annotation or emphasizer %q", args[0]),
			"codes and names are case-sensitive; try 'can search "+args[0]+"'")
	}

	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	if format != am.FormatTable {
		return display.Output(cmd.OutOrStdout(), format, shown)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%s (%s)\n", shown.Entry.Name, shown.Kind)
	fmt.Fprintf(w, "  Code:        %s\n", shown.Entry.Code)
	fmt.Fprintf(w, "  Description: %s\n", shown.Entry.Description)
	return nil
}
