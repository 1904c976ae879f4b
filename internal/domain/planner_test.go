package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/ProfeJavix/lua-localizer/internal/model"
)

func refSet(names ...string) m.ReferenceSet {
	refs := make(m.ReferenceSet)
	for _, name := range names {
		refs.Add(name)
	}

	return refs
}

func TestPlanReplacements(t *testing.T) {
	text := "table.insert(t, 1)\ntable.insert(t, 2)\n"
	catalog := testCatalog("table.insert")

	got := PlanReplacements(text, ParseRegion(text), refSet("table.insert"), catalog)

	assert.Equal(t, []m.Replacement{
		{Name: "table.insert", Span: m.Range{Start: 0, End: 12}, Alias: "insert"},
		{Name: "table.insert", Span: m.Range{Start: 19, End: 31}, Alias: "insert"},
	}, got)
}

func TestPlanReplacements_SkipsAlreadyAliased(t *testing.T) {
	text := RenderRegion(m.AliasEntries{"table.insert": "insert"}) + "\n\ntable.insert(t, 1)\nos.time()\n"
	catalog := testCatalog("table.insert", "os.time")

	got := PlanReplacements(text, ParseRegion(text), refSet("table.insert", "os.time"), catalog)

	require.Len(t, got, 1)
	assert.Equal(t, "os.time", got[0].Name)
	assert.Equal(t, "os.time", text[got[0].Span.Start:got[0].Span.End])
}

func TestPlanReplacements_IgnoresOccurrencesInsideRegion(t *testing.T) {
	text := "--#region Localizations os.time\n--#endregion\nos.time()\n"
	catalog := testCatalog("os.time")

	got := PlanReplacements(text, ParseRegion(text), refSet("os.time"), catalog)

	require.Len(t, got, 1)
	assert.Equal(t, len(text)-len("os.time()\n"), got[0].Span.Start)
}

func TestPlanReplacements_SubstringOccurrences(t *testing.T) {
	text := "os.time() myos.timer = 1\n"
	catalog := testCatalog("os.time")

	got := PlanReplacements(text, ParseRegion(text), refSet("os.time"), catalog)

	require.Len(t, got, 2, "plain substring scan also hits longer identifiers")
	assert.Equal(t, 12, got[1].Span.Start)
}

func TestPlanReplacements_SortedAcrossNames(t *testing.T) {
	text := "string.format('%d', os.time())\n"
	catalog := testCatalog("string.format", "os.time")

	got := PlanReplacements(text, ParseRegion(text), refSet("string.format", "os.time"), catalog)

	require.Len(t, got, 2)
	assert.Equal(t, "string.format", got[0].Name)
	assert.Equal(t, "os.time", got[1].Name)
}

func TestPlanRegion(t *testing.T) {
	existing := m.AliasEntries{"table.insert": "tinsert"}
	catalog := testCatalog("table.insert", "os.time")

	merged, added, text := PlanRegion(existing, refSet("table.insert", "os.time"), catalog)

	assert.Equal(t, m.AliasEntries{"table.insert": "tinsert", "os.time": "time"}, merged)
	assert.Equal(t, m.AliasEntries{"os.time": "time"}, added)
	assert.Equal(t, m.AliasEntries{"table.insert": "tinsert"}, existing, "existing entries are not mutated")
	assert.Equal(t, RenderRegion(merged), text)
}

func TestPlanRegion_Deterministic(t *testing.T) {
	catalog := testCatalog("a.x", "b.y", "c.z", "d.w")
	refs := refSet("d.w", "a.x", "c.z", "b.y")

	_, _, first := PlanRegion(m.AliasEntries{}, refs, catalog)
	for i := 0; i < 20; i++ {
		_, _, again := PlanRegion(m.AliasEntries{}, refs, catalog)
		require.Equal(t, first, again)
	}
}
