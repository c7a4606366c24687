package annotator

import (
	"fmt"
	"strings"

	"github.com/teranos/can/nomenclature"
)

// Groups partitions notes by their emphasizer.
type Groups struct {
	Critical []Note `json:"critical" yaml:"critical" toml:"critical"`
	Liked    []Note `json:"liked" yaml:"liked" toml:"liked"`
	Disliked []Note `json:"disliked" yaml:"disliked" toml:"disliked"`
	Neutral  []Note `json:"neutral" yaml:"neutral" toml:"neutral"`
}

// GroupByEmphasis sorts every note into one of four groups, keeping page order.
func (a *Annotator) GroupByEmphasis() Groups {
	var g Groups
	for _, n := range a.Notes() {
		switch n.Emphasizer {
		case nomenclature.Critical:
			g.Critical = append(g.Critical, n)
		case nomenclature.StrongLike:
			g.Liked = append(g.Liked, n)
		case nomenclature.StrongDislike:
			g.Disliked = append(g.Disliked, n)
		default:
			g.Neutral = append(g.Neutral, n)
		}
	}
	return g
}

// Markdown renders all notes as a Markdown document, one section per page:
//
//	# Reading Annotations
//
//	## Page 42
//	- **+KC** (KeyConcept): central thesis _[I really like this]_
func (a *Annotator) Markdown() string {
	var b strings.Builder
	b.WriteString("# Reading Annotations\n\n")

	for _, page := range a.pages {
		fmt.Fprintf(&b, "## Page %s\n", page)
		for _, d := range a.Page(page) {
			fmt.Fprintf(&b, "- **%s%s** (%s): %s", d.Note.Emphasizer, d.Note.Code, d.Annotation.Name, d.Note.Text)
			if d.Emphasizer != nil {
				fmt.Fprintf(&b, " _[%s]_", d.Emphasizer.Description)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Option is one choice in a picker built from a catalog.
type Option struct {
	Label       string `json:"label" yaml:"label" toml:"label"`
	Value       string `json:"value" yaml:"value" toml:"value"`
	Description string `json:"description" yaml:"description" toml:"description"`
}

// Options lists the entries of list as picker choices labelled "CODE - Name".
func Options(list *nomenclature.EntryList) []Option {
	out := make([]Option, 0, list.Len())
	for _, e := range list.All() {
		out = append(out, Option{
			Label:       e.Code + " - " + e.Name,
			Value:       e.Code,
			Description: e.Description,
		})
	}
	return out
}
