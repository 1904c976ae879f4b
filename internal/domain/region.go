package domain

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ProfeJavix/lua-localizer/internal/domain/patterns"
	m "github.com/ProfeJavix/lua-localizer/internal/model"
)

// Marker lines delimiting the generated alias block.
const (
	RegionStartMarker = "--#region Localizations ---------------------------------------------------------------------"
	RegionEndMarker   = "--#endregion --------------------------------------------------------------------------------"
)

// ParseRegion finds the first localization block in text and reads its
// `local alias = name` declarations.
func ParseRegion(text string) m.Region {
	match, ok := patterns.Region.First(text)
	if !ok {
		return m.Region{Entries: make(m.AliasEntries)}
	}

	entries := make(m.AliasEntries)
	for decl := range patterns.AliasDecl.All(match.Group(1)) {
		entries[decl.Group(2)] = decl.Group(1)
	}

	return m.Region{
		Found:   true,
		Span:    m.Range{Start: match.Start, End: match.End},
		Entries: entries,
	}
}

// StripRegion removes the region span from text.
func StripRegion(text string, region m.Region) string {
	if !region.Found {
		return text
	}

	return text[:region.Span.Start] + text[region.Span.End:]
}

// RenderRegion serializes entries as a localization block. Declaration lines
// are sorted by their full rendered text.
func RenderRegion(entries m.AliasEntries) string {
	lines := make([]string, 0, len(entries))
	for name, alias := range entries {
		lines = append(lines, fmt.Sprintf("local %s = %s", alias, name))
	}

	sort.Strings(lines)

	var b strings.Builder

	b.WriteString(RegionStartMarker)
	b.WriteString("\n\n")
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n\n")
	b.WriteString(RegionEndMarker)

	return b.String()
}
