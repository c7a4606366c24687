package main

import (
	"os"
	"sort"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/can/am"
	"github.com/teranos/can/cmd/can/commands"
	"github.com/teranos/can/errors"
	"github.com/teranos/can/logger"
	"github.com/teranos/can/nomenclature"
)

var rootCmd = &cobra.Command{
	Use:   "can",
	Short: "can - Reading annotation codes",
	Long: `can - Look up, search and render reading annotation codes.

Annotation codes mark noteworthy passages while reading, e.g. (KC) for a key
concept or (!) for something surprising. An emphasizer (+, - or *) may follow
a code to mark strong sentiment.

Available commands:
  list        - List all annotation codes
  emphasizers - List emphasizers
  show        - Show one code or name
  search      - Search codes, names and descriptions
  format      - Render an annotation for a margin
  parse       - Split shorthand such as +KC
  export      - Export a YAML notes file as Markdown
  info        - Disclaimer and emphasizer guidance
  am          - Manage can configuration ("I am")
  version     - Show version information

Examples:
  can show KC                       # Key concept
  can search concept                # Ranked search
  can format KC -e '*' -c 5         # [5] (KC)*
  can --json list                   # JSON catalog`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")

		cfg, err := am.Load()
		if err != nil {
			return errors.Wrap(err, "failed to load config")
		}

		logger.SetTheme(cfg.GetLogTheme())
		if err := logger.Initialize(cfg.Log.JSON, verbosity); err != nil {
			return errors.Wrap(err, "failed to initialize logger")
		}
		if !cfg.Output.Color {
			pterm.DisableColor()
		}

		logger.Logger.Debugw("Command starting",
			logger.FieldCommand, cmd.CommandPath(),
			logger.FieldFormat, cfg.Output.Format,
			"verbosity", logger.LevelName(verbosity))

		printDiagnostics(verbosity, cfg)
		return nil
	},
}

// printDiagnostics writes the -v output categories to stderr.
func printDiagnostics(verbosity int, cfg *am.Config) {
	info := pterm.Info.WithWriter(os.Stderr)

	if logger.ShouldOutput(verbosity, logger.OutputConfig) {
		files := configFiles()
		if len(files) == 0 {
			info.Println("Config: built-in defaults (no can.toml found)")
		} else {
			info.Printfln("Config: %s", strings.Join(files, ", "))
		}
	}

	if logger.ShouldOutput(verbosity, logger.OutputCatalogStats) {
		info.Printfln("Nomenclature %s: %d annotations, %d emphasizers",
			nomenclature.Version, nomenclature.Annotations().Len(), nomenclature.Emphasizers().Len())
	}

	if logger.ShouldOutput(verbosity, logger.OutputDataDump) {
		info.Println(cfg.String())
	}
}

// configFiles lists the files that supplied settings, in load order.
func configFiles() []string {
	seen := make(map[string]am.ConfigSource)
	for _, src := range am.ConfigSources {
		seen[src.Path] = src.Source
	}

	order := map[am.ConfigSource]int{am.SourceSystem: 0, am.SourceUser: 1, am.SourceProject: 2}
	files := make([]string, 0, len(seen))
	for path := range seen {
		files = append(files, path)
	}
	sort.Slice(files, func(i, j int) bool {
		return order[seen[files[i]]] < order[seen[files[j]]]
	})
	return files
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase log verbosity (repeat for more detail: -v, -vv, -vvv)")
	rootCmd.PersistentFlags().Bool("json", false, "Output JSON")

	rootCmd.AddCommand(commands.ListCmd)
	rootCmd.AddCommand(commands.EmphasizersCmd)
	rootCmd.AddCommand(commands.ShowCmd)
	rootCmd.AddCommand(commands.SearchCmd)
	rootCmd.AddCommand(commands.FormatCmd)
	rootCmd.AddCommand(commands.ParseCmd)
	rootCmd.AddCommand(commands.ExportCmd)
	rootCmd.AddCommand(commands.InfoCmd)
	rootCmd.AddCommand(commands.AmCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		reportError(err)
		logger.Cleanup()
		os.Exit(1)
	}
	logger.Cleanup()
}

// reportError prints err and its hints to stderr, as a log entry when JSON
// logging is on.
func reportError(err error) {
	hints := errors.GetAllHints(err)
	if logger.JSONOutput {
		logger.Errorw("Command failed",
			logger.FieldError, err.Error(),
			"hints", hints)
		return
	}

	pterm.Error.WithWriter(os.Stderr).Println(err)
	for _, hint := range hints {
		pterm.Info.WithWriter(os.Stderr).Println(hint)
	}
}
