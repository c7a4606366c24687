package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/can/am"
	"github.com/teranos/can/annotator"
	"github.com/teranos/can/display"
	"github.com/teranos/can/errors"
	"github.com/teranos/can/logger"
)

// ExportCmd turns a YAML notes file into Markdown or structured output
var ExportCmd = &cobra.Command{
	Use:   "export <notes.yaml>",
	Short: "Export a YAML notes file as Markdown",
	Long: `Read reading notes from a YAML file and export them.

The file is a list of records:

  - page: "42"
    code: "+KC"
    note: central thesis
    count: 2

Table output is Markdown grouped by page. With --group the notes are grouped
by emphasizer instead (structured formats only print the chosen grouping).

Examples:
  can export notes.yaml > notes.md
  can export notes.yaml --group --format yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	ExportCmd.Flags().Bool("group", false, "Group notes by emphasizer")
	addFormatFlag(ExportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return errors.Wrapf(err, "failed to open %s", args[0])
	}
	defer f.Close()

	a, err := annotator.LoadYAML(f)
	if err != nil {
		return errors.Wrapf(err, "failed to load %s", args[0])
	}
	if a.Len() == 0 {
		logger.Warnw("Notes file has no records", logger.FieldFile, args[0])
	}
	logger.Debugw("Notes loaded",
		logger.FieldFile, args[0],
		logger.FieldCount, a.Len())

	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	group, _ := cmd.Flags().GetBool("group")

	w := cmd.OutOrStdout()
	switch {
	case format != am.FormatTable && group:
		return display.Output(w, format, a.GroupByEmphasis())
	case format != am.FormatTable:
		notes := a.Notes()
		if notes == nil {
			notes = []annotator.Note{}
		}
		return display.Output(w, format, notes)
	case group:
		g := a.GroupByEmphasis()
		for _, section := range []struct {
			title string
			notes []annotator.Note
		}{
			{"Critical", g.Critical},
			{"Liked", g.Liked},
			{"Disliked", g.Disliked},
			{"Neutral", g.Neutral},
		} {
			fmt.Fprintf(w, "%s (%d)\n", section.title, len(section.notes))
			for _, n := range section.notes {
				fmt.Fprintf(w, "  p.%s  %s\n", n.Page, annotator.Resolve(n).Rendered.ASCII.Annotation)
			}
		}
		return nil
	default:
		_, err := fmt.Fprint(w, a.Markdown())
		return err
	}
}
