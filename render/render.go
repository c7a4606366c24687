// Package render turns an annotation code and its decorations into display
// parts for two mediums.
//
// ASCII output is a single line where parentheses stand in for the circle:
//
//	[5] (KC)* This is the central thesis
//
// Graphical output hands the raw pieces to a UI that draws its own circle:
// CircleContent goes inside the circle, TopLeft and Right sit outside it.
// Never draw ASCII.Circle inside a graphical circle; that would show "(KC)"
// inside a ring.
//
// Rendering does not validate anything against the catalogs. Use
// nomenclature.IsValidCode and nomenclature.IsValidEmphasizerCode first if the
// input is untrusted.
package render

import (
	"strconv"
	"strings"
)

// Options describes one annotation to render. Zero values mean "absent":
// Occurrences == 0 renders no count and an empty Note renders no note.
type Options struct {
	Code        string
	Emphasizer  string
	Occurrences int
	Note        string
}

// ASCII holds the linear text rendering.
type ASCII struct {
	Circle     string `json:"circle" yaml:"circle" toml:"circle"`
	Left       string `json:"left" yaml:"left" toml:"left"`
	Right      string `json:"right" yaml:"right" toml:"right"`
	Note       string `json:"note" yaml:"note" toml:"note"`
	Annotation string `json:"annotation" yaml:"annotation" toml:"annotation"`
}

// Graphical holds the pieces for a UI that draws the circle itself.
type Graphical struct {
	CircleContent string `json:"circleContent" yaml:"circleContent" toml:"circleContent"`
	TopLeft       string `json:"topLeft" yaml:"topLeft" toml:"topLeft"`
	Right         string `json:"right" yaml:"right" toml:"right"`
	Note          string `json:"note" yaml:"note" toml:"note"`
}

// Formatted is the result of Annotation. It shares no memory with the
// Options it was built from.
type Formatted struct {
	ASCII     ASCII     `json:"ascii" yaml:"ascii" toml:"ascii"`
	Graphical Graphical `json:"graphical" yaml:"graphical" toml:"graphical"`
	Code      string    `json:"code" yaml:"code" toml:"code"`
}

// Annotation renders opts for both mediums.
//
// The emphasizer touches the circle ("(KC)*"); the count, the circle, and the
// note are separated by single spaces, with empty parts dropped.
func Annotation(opts Options) Formatted {
	var left string
	if opts.Occurrences != 0 {
		left = "[" + strconv.Itoa(opts.Occurrences) + "]"
	}
	right := opts.Emphasizer
	note := opts.Note
	circle := "(" + opts.Code + ")"

	parts := make([]string, 0, 3)
	for _, p := range []string{left, circle + right, note} {
		if p != "" {
			parts = append(parts, p)
		}
	}

	return Formatted{
		ASCII: ASCII{
			Circle:     circle,
			Left:       left,
			Right:      right,
			Note:       note,
			Annotation: strings.Join(parts, " "),
		},
		Graphical: Graphical{
			CircleContent: opts.Code,
			TopLeft:       left,
			Right:         right,
			Note:          note,
		},
		Code: opts.Code,
	}
}

// Format is shorthand for Annotation with positional arguments.
func Format(code, emphasizer string, occurrences int, note string) Formatted {
	return Annotation(Options{
		Code:        code,
		Emphasizer:  emphasizer,
		Occurrences: occurrences,
		Note:        note,
	})
}
