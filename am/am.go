// Package am holds can's configuration: output format, logging, rendering
// medium and search limits, loaded through viper from TOML files and CAN_*
// environment variables.
package am

// Config represents the can configuration
type Config struct {
	Output OutputConfig `mapstructure:"output" json:"output" yaml:"output" toml:"output"`
	Log    LogConfig    `mapstructure:"log" json:"log" yaml:"log" toml:"log"`
	Render RenderConfig `mapstructure:"render" json:"render" yaml:"render" toml:"render"`
	Search SearchConfig `mapstructure:"search" json:"search" yaml:"search" toml:"search"`
}

// OutputConfig controls how the CLI prints results
type OutputConfig struct {
	Format string `mapstructure:"format" json:"format" yaml:"format" toml:"format"` // table, json, yaml, toml
	Color  bool   `mapstructure:"color" json:"color" yaml:"color" toml:"color"`
}

// LogConfig configures diagnostic logging on stderr
type LogConfig struct {
	JSON  bool   `mapstructure:"json" json:"json" yaml:"json" toml:"json"`
	Theme string `mapstructure:"theme" json:"theme" yaml:"theme" toml:"theme"` // everforest, gruvbox
}

// RenderConfig selects the default rendering medium for `can format`
type RenderConfig struct {
	Medium string `mapstructure:"medium" json:"medium" yaml:"medium" toml:"medium"` // ascii, graphical
}

// SearchConfig configures `can search`
type SearchConfig struct {
	Limit int `mapstructure:"limit" json:"limit" yaml:"limit" toml:"limit"` // 0 = unlimited
}

// Output formats
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatTOML  = "toml"
)

// Formats lists every accepted output.format value.
var Formats = []string{FormatTable, FormatJSON, FormatYAML, FormatTOML}

// Log themes
const (
	ThemeEverforest = "everforest"
	ThemeGruvbox    = "gruvbox"
)

// Config file locations
const (
	ConfigFileName   = "can.toml"
	UserConfigDir    = ".can"
	SystemConfigPath = "/etc/can/can.toml"
	EnvPrefix        = "CAN"
)
