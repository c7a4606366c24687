package commands

import (
	"github.com/spf13/cobra"

	"github.com/teranos/can/nomenclature"
)

// ListCmd lists every annotation code
var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all annotation codes",
	Long: `List every annotation code in catalog order with its name and description.

Examples:
  can list                  # Table of all 100 codes
  can list --format yaml    # YAML list
  can --json list           # JSON array`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeEntries(cmd, nomenclature.AllAnnotations().Slice())
	},
}

// EmphasizersCmd lists the emphasizers
var EmphasizersCmd = &cobra.Command{
	Use:   "emphasizers",
	Short: "List emphasizers",
	Long: `List the emphasizers that may follow an annotation code, e.g. "(KC)*".

Use at most one emphasizer per annotation.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeEntries(cmd, nomenclature.AllEmphasizers().Slice())
	},
}

func init() {
	addFormatFlag(ListCmd)
	addFormatFlag(EmphasizersCmd)
}
