package nomenclature

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildIndex_Projections(t *testing.T) {
	idx := BuildIndex([]Entry{
		{"b", "Bravo", "second letter"},
		{"a", "Alpha", "first letter"},
	})

	assert.Equal(t, 2, idx.Len())
	assert.Equal(t, []string{"b", "a"}, idx.Codes().Slice())
	assert.Equal(t, map[string]string{"Bravo": "b", "Alpha": "a"}, idx.NameToCode().Map())
	assert.Equal(t, map[string]string{"b": "Bravo", "a": "Alpha"}, idx.CodeToName().Map())
	assert.Equal(t, map[string]string{"b": "second letter", "a": "first letter"}, idx.Descriptions().Map())

	e, ok := idx.LookupName("Alpha")
	require.True(t, ok)
	assert.Equal(t, "a", e.Code)
	assert.True(t, idx.Contains("b"))
	assert.False(t, idx.Contains("c"))
}

func TestBuildIndex_CopiesCatalog(t *testing.T) {
	catalog := []Entry{{"a", "Alpha", "first"}}
	idx := BuildIndex(catalog)

	catalog[0].Name = "Changed"

	assert.Equal(t, "Alpha", idx.Entries().At(0).Name)
	e, _ := idx.Lookup("a")
	assert.Equal(t, "Alpha", e.Name)
}

func TestBuildIndex_DuplicatesLastWriteWins(t *testing.T) {
	idx := BuildIndex([]Entry{
		{"a", "Alpha", "first"},
		{"b", "Bravo", "second"},
		{"a", "Again", "third"},
	})

	e, _ := idx.Lookup("a")
	assert.Equal(t, "Again", e.Name)
	name, _ := idx.CodeToName().Get("a")
	assert.Equal(t, "Again", name)

	// Keyed projections keep first position; the ordered lists keep every row.
	assert.Equal(t, []string{"a", "b"}, idx.CodeToName().Keys())
	assert.Equal(t, []string{"a", "b", "a"}, idx.Codes().Slice())
	assert.Equal(t, 3, idx.Entries().Len())
}

func TestBuildIndex_Empty(t *testing.T) {
	idx := BuildIndex(nil)

	assert.Equal(t, 0, idx.Len())
	assert.Equal(t, 0, idx.Codes().Len())
	assert.Empty(t, idx.Codes().Slice())
	_, ok := idx.Lookup("")
	assert.False(t, ok)
}

func TestTableAll_StopsEarly(t *testing.T) {
	var seen []string
	for k := range Annotations().CodeToName().All() {
		seen = append(seen, k)
		if len(seen) == 3 {
			break
		}
	}
	assert.Equal(t, []string{Surprising, Question, Analogy}, seen)
}
