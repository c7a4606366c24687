package am

import (
	"fmt"

	"github.com/spf13/viper"
)

// Default values
const (
	DefaultFormat      = FormatTable
	DefaultColor       = true
	DefaultLogJSON     = false
	DefaultTheme       = ThemeEverforest
	DefaultMedium      = "ascii"
	DefaultSearchLimit = 10
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("output.format", DefaultFormat)
	v.SetDefault("output.color", DefaultColor)

	v.SetDefault("log.json", DefaultLogJSON)
	v.SetDefault("log.theme", DefaultTheme)

	v.SetDefault("render.medium", DefaultMedium)

	v.SetDefault("search.limit", DefaultSearchLimit) // 0 = unlimited
}

// GetLogTheme returns the log theme (default: everforest)
func (c *Config) GetLogTheme() string {
	if c.Log.Theme == "" {
		return DefaultTheme
	}
	return c.Log.Theme
}

// GetMedium returns the render medium (default: ascii)
func (c *Config) GetMedium() string {
	if c.Render.Medium == "" {
		return DefaultMedium
	}
	return c.Render.Medium
}

// String returns a string representation of the config
func (c *Config) String() string {
	return fmt.Sprintf("Config{Output: {Format: %s, Color: %t}, Log: {JSON: %t, Theme: %s}, Render: {Medium: %s}, Search: {Limit: %d}}",
		c.Output.Format, c.Output.Color, c.Log.JSON, c.Log.Theme, c.Render.Medium, c.Search.Limit)
}
