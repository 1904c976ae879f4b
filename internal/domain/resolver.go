package domain

import (
	"github.com/ProfeJavix/lua-localizer/internal/domain/patterns"
	m "github.com/ProfeJavix/lua-localizer/internal/model"
)

// ReferenceSpan picks the text scanned for calls: the selection when there is
// one, otherwise the whole document without its localization block.
func ReferenceSpan(doc m.Document, region m.Region) string {
	if selected := doc.SelectedText(); selected != "" {
		return selected
	}

	return StripRegion(doc.Text, region)
}

// ResolveReferences returns the catalog names invoked as calls in span.
func ResolveReferences(span string, catalog m.Catalog) m.ReferenceSet {
	refs := make(m.ReferenceSet)

	for match := range patterns.Call.All(span) {
		if name := match.Group(1); catalog.Has(name) {
			refs.Add(name)
		}
	}

	return refs
}
