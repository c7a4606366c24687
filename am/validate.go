package am

import (
	"slices"

	"github.com/teranos/can/errors"
	"github.com/teranos/can/render"
)

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if !slices.Contains(Formats, c.Output.Format) {
		return errors.WithHintf(
			errors.NewInvalidRequestError("output.format must be one of %v, got %q", Formats, c.Output.Format),
			"set %s or [output] format in %s", EnvKey("output.format"), ConfigFileName)
	}

	// Empty theme falls back to everforest
	if t := c.Log.Theme; t != "" && t != ThemeEverforest && t != ThemeGruvbox {
		return errors.NewInvalidRequestError("log.theme must be %q or %q, got %q", ThemeEverforest, ThemeGruvbox, t)
	}

	if _, err := render.ParseMedium(c.GetMedium()); err != nil {
		return errors.Wrap(err, "render.medium")
	}

	// Search limit: 0 = unlimited, negative = invalid
	if c.Search.Limit < 0 {
		return errors.NewInvalidRequestError("search.limit must be >= 0, got %d", c.Search.Limit)
	}

	return nil
}
