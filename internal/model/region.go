package model

import "sort"

// AliasEntries maps fully-qualified names to the local alias declared for them.
type AliasEntries map[string]string

// Clone returns an independent copy of the entries.
func (e AliasEntries) Clone() AliasEntries {
	out := make(AliasEntries, len(e))
	for name, alias := range e {
		out[name] = alias
	}

	return out
}

// Has reports whether name is already aliased.
func (e AliasEntries) Has(name string) bool {
	_, ok := e[name]
	return ok
}

// Collisions returns aliases declared for more than one name, with the names sorted.
func (e AliasEntries) Collisions() map[string][]string {
	byAlias := make(map[string][]string)
	for name, alias := range e {
		byAlias[alias] = append(byAlias[alias], name)
	}

	collisions := make(map[string][]string)

	for alias, names := range byAlias {
		if len(names) < 2 {
			continue
		}

		sort.Strings(names)
		collisions[alias] = names
	}

	return collisions
}

// Region is the parsed localization block of a document.
//
// Found distinguishes "no region" from "empty region present". Span covers
// both marker lines and is only meaningful when Found is true.
type Region struct {
	Found   bool
	Span    Range
	Entries AliasEntries
}

// ReferenceSet is the set of fully-qualified names invoked in the scanned text.
type ReferenceSet map[string]struct{}

// Add inserts name into the set.
func (s ReferenceSet) Add(name string) {
	s[name] = struct{}{}
}

// Has reports whether name was referenced.
func (s ReferenceSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Sorted returns the names in ascending order.
func (s ReferenceSet) Sorted() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
