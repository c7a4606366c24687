package commands

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/can/am"
	"github.com/teranos/can/display"
	"github.com/teranos/can/errors"
	"github.com/teranos/can/nomenclature"
)

// loadConfig loads and validates configuration for a command.
func loadConfig() (*am.Config, error) {
	cfg, err := am.Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}

// outputFormat resolves the format for cmd from flags and configuration.
func outputFormat(cmd *cobra.Command) (string, error) {
	cfg, err := loadConfig()
	if err != nil {
		return "", err
	}
	return display.ResolveFormat(cmd, cfg.Output.Format)
}

// renderTable writes rows under header as a pterm table.
func renderTable(w io.Writer, header []string, rows [][]string) error {
	data := pterm.TableData{header}
	data = append(data, rows...)

	s, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return errors.Wrap(err, "failed to render table")
	}
	_, err = fmt.Fprintln(w, s)
	return err
}

// entryRows turns catalog entries into table rows.
func entryRows(list []nomenclature.Entry) [][]string {
	rows := make([][]string, 0, len(list))
	for _, e := range list {
		rows = append(rows, []string{e.Code, e.Name, e.Description})
	}
	return rows
}

var entryHeader = []string{"Code", "Name", "Description"}

// writeEntries prints entries in the resolved format.
func writeEntries(cmd *cobra.Command, list []nomenclature.Entry) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	if format == am.FormatTable {
		return renderTable(cmd.OutOrStdout(), entryHeader, entryRows(list))
	}
	return display.Output(cmd.OutOrStdout(), format, list)
}

// addFormatFlag registers --format on cmd.
func addFormatFlag(cmd *cobra.Command) {
	cmd.Flags().String("format", "", "Output format: table, json, yaml, toml (default from config)")
}
