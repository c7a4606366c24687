package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/teranos/can/am"
	"github.com/teranos/can/display"
	"github.com/teranos/can/logger"
	"github.com/teranos/can/search"
)

// SearchCmd finds annotations by code, name or description
var SearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search annotations by code, name or description",
	Long: `Search annotation codes, names and descriptions. Matching is case-insensitive
and falls back to fuzzy name matching.

Examples:
  can search concept          # KeyConcept, TechnologyConcept, ...
  can search kc --limit 1     # Best match only
  can search quote --limit 0  # Every match`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	SearchCmd.Flags().IntP("limit", "l", 0, "Maximum results, 0 for all (default from config)")
	addFormatFlag(SearchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	limit := cfg.Search.Limit
	if cmd.Flags().Changed("limit") {
		limit, _ = cmd.Flags().GetInt("limit")
	}

	results := search.Annotations(args[0], limit)
	logger.Debugw("Search complete",
		logger.FieldQuery, args[0],
		logger.FieldLimit, limit,
		logger.FieldCount, len(results))

	format, err := display.ResolveFormat(cmd, cfg.Output.Format)
	if err != nil {
		return err
	}
	if format != am.FormatTable {
		if results == nil {
			results = []search.Result{}
		}
		return display.Output(cmd.OutOrStdout(), format, results)
	}

	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{strconv.Itoa(r.Score), r.Tier, r.Entry.Code, r.Entry.Name, r.Entry.Description})
	}
	return renderTable(cmd.OutOrStdout(), []string{"Score", "Match", "Code", "Name", "Description"}, rows)
}
