package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/can/display"
	"github.com/teranos/can/version"
)

// VersionCmd represents the version command
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show can version information",
	Long: `Display version, nomenclature version, build time, commit hash, and platform
information for the can binary.

With --require, exit non-zero unless the nomenclature version satisfies the
constraint.

Examples:
  can version
  can version --json
  can version --require "^1.0"`,
	Args: cobra.NoArgs,
	RunE: runVersion,
}

func init() {
	VersionCmd.Flags().String("require", "", "Semver constraint the nomenclature version must satisfy")
}

func runVersion(cmd *cobra.Command, args []string) error {
	if constraint, _ := cmd.Flags().GetString("require"); constraint != "" {
		if err := version.CheckNomenclature(constraint); err != nil {
			return err
		}
	}

	info := version.Get()
	if display.ShouldOutputJSON(cmd) {
		return display.Output(cmd.OutOrStdout(), "json", info)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, info.String())
	fmt.Fprintf(w, "Platform: %s\n", info.Platform)
	fmt.Fprintf(w, "Go: %s\n", info.GoVersion)
	return nil
}
