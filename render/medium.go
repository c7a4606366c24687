package render

import (
	"strings"

	"github.com/teranos/can/errors"
)

// Medium selects which half of a Formatted result a caller displays.
type Medium string

const (
	MediumASCII     Medium = "ascii"
	MediumGraphical Medium = "graphical"
)

// ParseMedium accepts "ascii" or "graphical", case-insensitively.
func ParseMedium(s string) (Medium, error) {
	switch m := Medium(strings.ToLower(strings.TrimSpace(s))); m {
	case MediumASCII, MediumGraphical:
		return m, nil
	default:
		return "", errors.WithHint(
			errors.NewInvalidRequestError("unknown medium %q", s),
			"use 'ascii' or 'graphical'")
	}
}

// Pick returns the part of f meant for m. An unknown medium yields nil.
func (f Formatted) Pick(m Medium) any {
	switch m {
	case MediumASCII:
		return f.ASCII
	case MediumGraphical:
		return f.Graphical
	default:
		return nil
	}
}
