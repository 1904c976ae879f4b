package model

import (
	"sort"
	"strings"
)

// Definition is a library-defined global function and its preferred local alias.
type Definition struct {
	Name   string // fully-qualified, e.g. "table.insert"
	Alias  string // last dotted segment, e.g. "insert"
	Source Path   // definition file the name was last seen in
}

// NewDefinition derives the default alias of name from its last dotted segment.
func NewDefinition(name string, source Path) Definition {
	return Definition{
		Name:   name,
		Alias:  DefaultAlias(name),
		Source: source,
	}
}

// DefaultAlias returns the last dotted segment of a fully-qualified name.
func DefaultAlias(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 && i+1 < len(name) {
		return name[i+1:]
	}

	return name
}

// Catalog maps fully-qualified names to their definitions.
type Catalog map[string]Definition

// Alias returns the catalog alias for name.
func (c Catalog) Alias(name string) (string, bool) {
	def, ok := c[name]
	if !ok {
		return "", false
	}

	return def.Alias, true
}

// Has reports whether name is a known library global.
func (c Catalog) Has(name string) bool {
	_, ok := c[name]
	return ok
}

// Merge copies every definition of other into c, overwriting existing names.
func (c Catalog) Merge(other Catalog) {
	for name, def := range other {
		c[name] = def
	}
}

// Sorted returns the definitions ordered by name.
func (c Catalog) Sorted() []Definition {
	defs := make([]Definition, 0, len(c))
	for _, def := range c {
		defs = append(defs, def)
	}

	sort.Slice(defs, func(i, j int) bool {
		return defs[i].Name < defs[j].Name
	})

	return defs
}

// SkippedSource records a catalog source that could not be read.
type SkippedSource struct {
	Path Path
	Err  error
}
