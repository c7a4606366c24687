package commands

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/can/am"
	"github.com/teranos/can/display"
	"github.com/teranos/can/errors"
	"github.com/teranos/can/logger"
)

// AmCmd represents the am (configuration) command
var AmCmd = &cobra.Command{
	Use:   "am",
	Short: "Manage can configuration",
	Long: `Display and validate can configuration ("I am").

Configuration sources (later overrides earlier):
1. Default values
2. System config (/etc/can/can.toml)
3. User config (~/.can/can.toml)
4. Project config (can.toml in the current or a parent directory)
5. Environment variables (CAN_* prefix, e.g. CAN_OUTPUT_FORMAT)

Examples:
  can am show                 # Every setting and where it came from
  can am show --format toml   # Effective configuration as TOML
  can am validate             # Validate current configuration`,
}

var amShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  "Display every effective setting with the source that supplied it",
	Args:  cobra.NoArgs,
	RunE:  runAmShow,
}

var amValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate current configuration",
	Args:  cobra.NoArgs,
	RunE:  runAmValidate,
}

func init() {
	addFormatFlag(amShowCmd)

	AmCmd.AddCommand(amShowCmd)
	AmCmd.AddCommand(amValidateCmd)
}

func runAmShow(cmd *cobra.Command, args []string) error {
	cfg, err := am.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	format, err := display.ResolveFormat(cmd, cfg.Output.Format)
	if err != nil {
		return err
	}
	if format != am.FormatTable {
		return display.Output(cmd.OutOrStdout(), format, cfg)
	}

	intro, err := am.GetConfigIntrospection()
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(intro.Settings))
	for _, s := range intro.Settings {
		rows = append(rows, []string{s.Key, fmt.Sprint(s.Value), string(s.Source), s.SourcePath})
	}
	return renderTable(cmd.OutOrStdout(), []string{"Key", "Value", "Source", "From"}, rows)
}

func runAmValidate(cmd *cobra.Command, args []string) error {
	cfg, err := am.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "configuration validation failed")
	}

	logger.Infow("Configuration validated", logger.FieldCount, len(am.ConfigSources))
	fmt.Fprintln(cmd.OutOrStdout(), pterm.Success.Sprint("Configuration is valid"))
	return nil
}
