package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "github.com/ProfeJavix/lua-localizer/internal/model"
)

func testCatalog(names ...string) m.Catalog {
	catalog := make(m.Catalog)
	for _, name := range names {
		catalog[name] = m.NewDefinition(name, "std.lua")
	}

	return catalog
}

func TestResolveReferences(t *testing.T) {
	catalog := testCatalog("table.insert", "os.time", "string.format", "print")

	tests := []struct {
		name string
		span string
		want []string
	}{
		{"dotted calls", "table.insert(t, os.time())", []string{"os.time", "table.insert"}},
		{"duplicates collapse", "print(1) print(2)", []string{"print"}},
		{"unknown calls ignored", "foo.bar() string.rep('x', 2)", []string{}},
		{"method calls never match", "s:format(1)", []string{}},
		{"references without call", "local f = string.format", []string{}},
		{"spacing before paren", "os.time ()", []string{"os.time"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveReferences(tt.span, catalog).Sorted())
		})
	}
}

func TestResolveReferences_EmptyCatalog(t *testing.T) {
	assert.Empty(t, ResolveReferences("table.insert(t, 1)", m.Catalog{}))
}

func TestReferenceSpan(t *testing.T) {
	text := "--#region Localizations\n-- string.format(x)\n--#endregion\nos.time()\nos.time()\n"
	region := ParseRegion(text)

	t.Run("without selection strips the region", func(t *testing.T) {
		span := ReferenceSpan(m.Document{Text: text}, region)
		assert.NotContains(t, span, "string.format")
		assert.Contains(t, span, "os.time()")
	})

	t.Run("selection takes precedence", func(t *testing.T) {
		start := len(text) - len("os.time()\n")
		doc := m.Document{Text: text, Selection: m.Range{Start: start, End: len(text)}}
		assert.Equal(t, "os.time()\n", ReferenceSpan(doc, region))
	})

	t.Run("empty selection falls back", func(t *testing.T) {
		doc := m.Document{Text: text, Selection: m.Range{Start: 3, End: 3}}
		assert.Equal(t, StripRegion(text, region), ReferenceSpan(doc, region))
	})
}
