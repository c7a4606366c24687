package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/can/am"
	"github.com/teranos/can/annotator"
	"github.com/teranos/can/display"
	"github.com/teranos/can/errors"
	"github.com/teranos/can/logger"
	"github.com/teranos/can/render"
)

// FormatCmd renders an annotation in the ASCII or graphical medium
var FormatCmd = &cobra.Command{
	Use:   "format <code|+code>",
	Short: "Render an annotation for writing in a margin",
	Long: `Render an annotation code with optional emphasizer, occurrence count and note.

ASCII output looks like "[5] (KC)* central thesis". The graphical medium
prints the parts that surround a drawn circle instead.

Examples:
  can format KC                                # (KC)
  can format +Q --note "Beautiful quote"       # (Q)+ Beautiful quote
  can format KC -e '*' -c 5 -n "thesis"        # [5] (KC)* thesis
  can format KC --medium graphical             # Parts for a drawn circle`,
	Args: cobra.ExactArgs(1),
	RunE: runFormat,
}

func init() {
	FormatCmd.Flags().StringP("emphasizer", "e", "", "Emphasizer code: +, - or *")
	FormatCmd.Flags().IntP("count", "c", 0, "Occurrences (0 hides the count)")
	FormatCmd.Flags().StringP("note", "n", "", "Note text")
	FormatCmd.Flags().StringP("medium", "m", "", "Medium: ascii or graphical (default from config)")
	addFormatFlag(FormatCmd)
}

func runFormat(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	c, err := annotator.ParseCombined(args[0])
	if err != nil {
		return err
	}

	emphasizer, _ := cmd.Flags().GetString("emphasizer")
	if c.Emphasizer != "" && emphasizer != "" {
		return errors.WithHint(
			errors.Wrapf(errors.ErrMultipleEmphasizers, "%q already carries %q", args[0], c.Emphasizer),
			"drop --emphasizer or the leading emphasizer")
	}
	if emphasizer == "" {
		emphasizer = c.Emphasizer
	}

	count, _ := cmd.Flags().GetInt("count")
	text, _ := cmd.Flags().GetString("note")
	n := annotator.Note{Code: c.Annotation, Emphasizer: emphasizer, Occurrences: count, Text: text}
	if err := annotator.Validate(n); err != nil {
		return err
	}

	mediumName := cfg.GetMedium()
	if m, _ := cmd.Flags().GetString("medium"); m != "" {
		mediumName = m
	}
	medium, err := render.ParseMedium(mediumName)
	if err != nil {
		return err
	}

	formatted := annotator.Resolve(n).Rendered
	log := logger.ChildLogger(logger.Logger, logger.FieldCommand, cmd.Name())
	log.Debugw("Formatted annotation",
		logger.FieldCode, n.Code,
		logger.FieldEmphasizer, n.Emphasizer,
		logger.FieldMedium, medium)

	format, err := display.ResolveFormat(cmd, cfg.Output.Format)
	if err != nil {
		return err
	}
	if format != am.FormatTable {
		return display.Output(cmd.OutOrStdout(), format, formatted.Pick(medium))
	}

	w := cmd.OutOrStdout()
	if medium == render.MediumASCII {
		fmt.Fprintln(w, formatted.ASCII.Annotation)
		return nil
	}
	g := formatted.Graphical
	fmt.Fprintf(w, "Circle:   %s\n", g.CircleContent)
	fmt.Fprintf(w, "TopLeft:  %s\n", g.TopLeft)
	fmt.Fprintf(w, "Right:    %s\n", g.Right)
	fmt.Fprintf(w, "Note:     %s\n", g.Note)
	return nil
}
