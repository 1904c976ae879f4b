// Package model defines the data structures shared by the localizer.
package model

import "strings"

// Path represents a file system path.
type Path string

// Range is a half-open byte span [Start, End) into a document text.
type Range struct {
	Start int
	End   int
}

// Empty reports whether the range covers no bytes.
func (r Range) Empty() bool {
	return r.End <= r.Start
}

// Len returns the number of bytes covered by the range.
func (r Range) Len() int {
	if r.Empty() {
		return 0
	}

	return r.End - r.Start
}

// Contains reports whether offset falls inside the range.
func (r Range) Contains(offset int) bool {
	return offset >= r.Start && offset < r.End
}

// Position is a zero-based line/column location. Column counts bytes.
type Position struct {
	Line   int
	Column int
}

// Document is a snapshot of a Lua source file and the user's selection in it.
type Document struct {
	Path      Path
	Text      string
	Selection Range
}

// SelectedText returns the selected span, or an empty string when nothing is selected.
func (d Document) SelectedText() string {
	if d.Selection.Empty() || d.Selection.End > len(d.Text) || d.Selection.Start < 0 {
		return ""
	}

	return d.Text[d.Selection.Start:d.Selection.End]
}

// LineStarts returns the byte offset of the first character of every line in text.
func LineStarts(text string) []int {
	starts := []int{0}

	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}

	return starts
}

// Lines splits text into lines without their terminators ("\n" or "\r\n").
func Lines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return lines
}
