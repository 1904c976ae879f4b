package domain

import (
	"sort"
	"strings"

	m "github.com/ProfeJavix/lua-localizer/internal/model"
)

// PlanReplacements schedules the rewrite of every raw occurrence of each
// referenced name that the region does not alias yet. Occurrences are plain
// substring hits, so a name embedded in a longer identifier is rewritten too.
// Occurrences starting inside the region are left to the region rewrite.
// All ranges refer to text as given.
func PlanReplacements(text string, region m.Region, refs m.ReferenceSet, catalog m.Catalog) []m.Replacement {
	var replacements []m.Replacement

	for _, name := range refs.Sorted() {
		if region.Entries.Has(name) {
			continue
		}

		alias, ok := catalog.Alias(name)
		if !ok {
			alias = name
		}

		for index := 0; ; {
			found := strings.Index(text[index:], name)
			if found < 0 {
				break
			}

			start := index + found
			index = start + len(name)

			if region.Found && region.Span.Contains(start) {
				continue
			}

			replacements = append(replacements, m.Replacement{
				Name:  name,
				Span:  m.Range{Start: start, End: start + len(name)},
				Alias: alias,
			})
		}
	}

	sort.SliceStable(replacements, func(i, j int) bool {
		return replacements[i].Span.Start < replacements[j].Span.Start
	})

	return replacements
}

// PlanRegion adds every referenced name missing from existing and renders the
// resulting block. existing is never modified; entries already present keep
// their alias.
func PlanRegion(existing m.AliasEntries, refs m.ReferenceSet, catalog m.Catalog) (merged, added m.AliasEntries, text string) {
	merged = existing.Clone()
	added = make(m.AliasEntries)

	for name := range refs {
		if merged.Has(name) {
			continue
		}

		alias, ok := catalog.Alias(name)
		if !ok {
			alias = name
		}

		merged[name] = alias
		added[name] = alias
	}

	return merged, added, RenderRegion(merged)
}
