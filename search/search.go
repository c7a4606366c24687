// Package search finds catalog entries by code, name, or description.
package search

import (
	"cmp"
	"slices"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/teranos/can/nomenclature"
)

// Match tiers, strongest first.
const (
	TierCode        = "code"
	TierName        = "name"
	TierCodePrefix  = "code-prefix"
	TierCodePart    = "code-substring"
	TierNamePart    = "name-substring"
	TierDescription = "description"
	TierFuzzy       = "fuzzy"
)

const (
	scoreCode        = 100
	scoreName        = 90
	scoreCodePrefix  = 70
	scoreCodePart    = 60
	scoreNamePart    = 50
	scoreDescription = 30
	scoreFuzzyMax    = 10
)

// Result is one matching entry.
type Result struct {
	Entry nomenclature.Entry `json:"entry" yaml:"entry" toml:"entry"`
	Score int                `json:"score" yaml:"score" toml:"score"`
	Tier  string             `json:"tier" yaml:"tier" toml:"tier"`
}

// Entries returns entries of list matching query, best match first. Entries
// with equal scores keep catalog order. A limit <= 0 returns every match; a
// blank query returns nothing.
func Entries(list *nomenclature.EntryList, query string, limit int) []Result {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var results []Result
	for _, e := range list.All() {
		if s, tier, ok := classify(e, q); ok {
			results = append(results, Result{Entry: e, Score: s, Tier: tier})
		}
	}

	slices.SortStableFunc(results, func(a, b Result) int {
		return cmp.Compare(b.Score, a.Score)
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}

// Annotations searches the annotation catalog.
func Annotations(query string, limit int) []Result {
	return Entries(nomenclature.AllAnnotations(), query, limit)
}

// classify scores e against the lowercased query q.
func classify(e nomenclature.Entry, q string) (int, string, bool) {
	code := strings.ToLower(e.Code)
	name := strings.ToLower(e.Name)

	switch {
	case code == q:
		return scoreCode, TierCode, true
	case name == q:
		return scoreName, TierName, true
	case strings.HasPrefix(code, q):
		return scoreCodePrefix, TierCodePrefix, true
	case strings.Contains(code, q):
		return scoreCodePart, TierCodePart, true
	case strings.Contains(name, q):
		return scoreNamePart, TierNamePart, true
	case strings.Contains(strings.ToLower(e.Description), q):
		return scoreDescription, TierDescription, true
	}

	if d := fuzzy.RankMatchNormalizedFold(q, e.Name); d >= 0 {
		return max(1, scoreFuzzyMax-d), TierFuzzy, true
	}
	return 0, "", false
}
