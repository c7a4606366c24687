package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/can/am"
	"github.com/teranos/can/annotator"
	"github.com/teranos/can/display"
)

// ParseCmd splits shorthand like "+KC" into its parts
var ParseCmd = &cobra.Command{
	Use:   "parse <combined>",
	Short: "Split an emphasized code such as +KC",
	Long: `Split shorthand into an optional emphasizer and an annotation code.

Examples:
  can parse +KC    # StrongLike + KeyConcept
  can parse Q      # QuoteWorthy, no emphasizer`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	addFormatFlag(ParseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	c, err := annotator.ParseCombined(args[0])
	if err != nil {
		return err
	}
	d := annotator.Resolve(annotator.Note{Code: c.Annotation, Emphasizer: c.Emphasizer})

	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	if format != am.FormatTable {
		return display.Output(cmd.OutOrStdout(), format, d)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Annotation: %s (%s) %s\n", d.Annotation.Code, d.Annotation.Name, d.Annotation.Description)
	if d.Emphasizer != nil {
		fmt.Fprintf(w, "Emphasizer: %s (%s) %s\n", d.Emphasizer.Code, d.Emphasizer.Name, d.Emphasizer.Description)
	}
	return nil
}
