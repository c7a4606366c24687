package commands

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/can/am"
	"github.com/teranos/can/display"
	"github.com/teranos/can/nomenclature"
)

// InfoCmd prints the disclaimer and emphasizer guidance
var InfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show nomenclature version, disclaimer and emphasizer guidance",
	Args:  cobra.NoArgs,
	RunE:  runInfo,
}

type infoOutput struct {
	Version     string                          `json:"version" yaml:"version" toml:"version"`
	Annotations int                             `json:"annotations" yaml:"annotations" toml:"annotations"`
	Emphasizers int                             `json:"emphasizers" yaml:"emphasizers" toml:"emphasizers"`
	Disclaimer  string                          `json:"disclaimer" yaml:"disclaimer" toml:"disclaimer"`
	Guidance    nomenclature.EmphasizerGuidance `json:"emphasizer_guidance" yaml:"emphasizer_guidance" toml:"emphasizer_guidance"`
}

func init() {
	addFormatFlag(InfoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	info := infoOutput{
		Version:     nomenclature.Version,
		Annotations: nomenclature.Annotations().Len(),
		Emphasizers: nomenclature.Emphasizers().Len(),
		Disclaimer:  nomenclature.DisclaimerFull,
		Guidance:    nomenclature.EmphasizerInfo(),
	}

	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	if format != am.FormatTable {
		return display.Output(cmd.OutOrStdout(), format, info)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, pterm.Bold.Sprintf("Nomenclature %s", info.Version))
	fmt.Fprintf(w, "%d annotation codes, %d emphasizers\n\n", info.Annotations, info.Emphasizers)
	fmt.Fprintln(w, info.Disclaimer)
	fmt.Fprintln(w)
	fmt.Fprintln(w, pterm.Bold.Sprint("Emphasizers"))
	fmt.Fprintln(w, info.Guidance.Purpose)
	fmt.Fprintln(w, info.Guidance.Recommendation)
	fmt.Fprintln(w, info.Guidance.Note)
	return nil
}
