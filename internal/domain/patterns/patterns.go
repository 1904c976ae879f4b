// Package patterns holds the textual recognizers used to scan Lua sources.
//
// None of the matchers tokenize: they run over raw text, so declarations,
// calls and aliases inside strings or comments are matched as well.
package patterns

import (
	"iter"
	"regexp"
)

const identPath = `[A-Za-z_][A-Za-z0-9_]*(?:\.[A-Za-z_][A-Za-z0-9_]*)*`

// Match is one non-overlapping hit of a Matcher.
type Match struct {
	Text   string   // whole matched text
	Groups []string // capture groups, Groups[0] is the first group
	Start  int      // byte offset of the match in the scanned text
	End    int      // byte offset just past the match
}

// Group returns capture group i (1-based, like regexp submatches) or "".
func (m Match) Group(i int) string {
	if i < 1 || i > len(m.Groups) {
		return ""
	}

	return m.Groups[i-1]
}

// Matcher recognizes one construct anywhere in a text buffer.
type Matcher struct {
	name string
	re   *regexp.Regexp
}

// Name identifies the matcher in logs.
func (m *Matcher) Name() string {
	return m.name
}

// All yields every non-overlapping match in text. Each match resumes scanning
// at the end of the previous one. The sequence can be ranged over any number
// of times; each range restarts from offset zero.
func (m *Matcher) All(text string) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		cursor := 0

		for cursor <= len(text) {
			loc := m.re.FindStringSubmatchIndex(text[cursor:])
			if loc == nil {
				return
			}

			match := m.build(text, cursor, loc)
			if !yield(match) {
				return
			}

			// Step past zero-width matches.
			if match.End == match.Start {
				cursor = match.End + 1
				continue
			}

			cursor = match.End
		}
	}
}

// First returns the first match in text.
func (m *Matcher) First(text string) (Match, bool) {
	for match := range m.All(text) {
		return match, true
	}

	return Match{}, false
}

func (m *Matcher) build(text string, cursor int, loc []int) Match {
	match := Match{
		Text:   text[cursor+loc[0] : cursor+loc[1]],
		Start:  cursor + loc[0],
		End:    cursor + loc[1],
		Groups: make([]string, 0, len(loc)/2-1),
	}

	for i := 2; i+1 < len(loc); i += 2 {
		if loc[i] < 0 {
			match.Groups = append(match.Groups, "")
			continue
		}

		match.Groups = append(match.Groups, text[cursor+loc[i]:cursor+loc[i+1]])
	}

	return match
}

func newMatcher(name, expr string) *Matcher {
	return &Matcher{name: name, re: regexp.MustCompile(expr)}
}

var (
	// FunctionDecl matches `function a.b.c(` and captures `a.b.c`.
	FunctionDecl = newMatcher("function-declaration", `function\s+(`+identPath+`)\s*\(`)

	// AssignDecl matches `a.b.c = function(` and captures `a.b.c`.
	AssignDecl = newMatcher("assignment-declaration", `(`+identPath+`)\s*=\s*function\s*\(`)

	// Call matches `a.b:c(` and captures `a.b:c`. It also matches declarations;
	// callers filter hits against known definitions.
	Call = newMatcher("call", `([A-Za-z_][A-Za-z0-9_]*(?:[.:][A-Za-z_][A-Za-z0-9_]*)*)\s*\(`)

	// AliasDecl matches `local x = a.b.c`, capturing the alias then the path.
	AliasDecl = newMatcher("alias-declaration", `local\s+(\w+)\s*=\s*([\w.]+)`)

	// Region matches the localization block from its start marker line through
	// the end of its end marker line, capturing the body between them.
	Region = newMatcher("region", `--#region Localizations[^\n]*([\s\S]*?)--#endregion[^\n]*`)
)
