package model

// Replacement overwrites one occurrence of a fully-qualified name with its alias.
type Replacement struct {
	Name  string
	Span  Range
	Alias string
}

// Edit is one (range, text) change inside a host edit transaction.
// An empty Span inserts Text at Span.Start.
type Edit struct {
	Span Range
	Text string
}

// Edit converts the replacement into a host edit.
func (r Replacement) Edit() Edit {
	return Edit{Span: r.Span, Text: r.Alias}
}

// RegionChange describes what the second transaction did to the localization block.
type RegionChange string

const (
	// RegionUnchanged means the rendered block equals the existing one.
	RegionUnchanged RegionChange = "unchanged"
	// RegionInserted means a new block was added below the comment header.
	RegionInserted RegionChange = "inserted"
	// RegionUpdated means the existing block was replaced.
	RegionUpdated RegionChange = "updated"
)

// Report summarizes one localize operation on a document.
type Report struct {
	Path              Path
	NothingToLocalize bool
	Replacements      []Replacement
	NewAliases        AliasEntries
	Region            RegionChange
	Collisions        map[string][]string
	Original          string
	Result            string
}

// Changed reports whether the operation altered the document text.
func (r Report) Changed() bool {
	return r.Original != r.Result
}
