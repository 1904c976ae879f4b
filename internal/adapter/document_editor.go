package adapter

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	m "github.com/ProfeJavix/lua-localizer/internal/model"
)

var (
	// ErrOverlappingEdits rejects a transaction whose edits overlap.
	ErrOverlappingEdits = errors.New("overlapping edits are not allowed")
	// ErrEditOutOfRange rejects a transaction with an edit outside the document.
	ErrEditOutOfRange = errors.New("edit range is outside the document")
)

// DocumentEditor is the host side of an open document. Edits are committed in
// transactions that either fully apply or are rejected without any change.
type DocumentEditor interface {
	// Text re-reads the current document text.
	Text() string
	// Apply commits edits, whose ranges refer to the text before the call.
	Apply(ctx context.Context, edits []m.Edit) error
	// LineCount returns the number of lines, counting a trailing empty line.
	LineCount() int
	// LineAt returns line i without its terminator.
	LineAt(line int) string
	// PositionAt converts a byte offset into a line/column position.
	PositionAt(offset int) m.Position
	// OffsetAt converts a position into a byte offset, clamping to the document.
	OffsetAt(pos m.Position) int
}

// MemoryEditor is a DocumentEditor over an in-memory buffer.
type MemoryEditor struct {
	text       string
	lineStarts []int
}

// NewMemoryEditor opens text for editing.
func NewMemoryEditor(text string) *MemoryEditor {
	e := &MemoryEditor{}
	e.reset(text)

	return e
}

func (e *MemoryEditor) reset(text string) {
	e.text = text
	e.lineStarts = m.LineStarts(text)
}

// Text returns the current buffer.
func (e *MemoryEditor) Text() string {
	return e.text
}

// Apply validates every edit and then rewrites the buffer in one pass.
func (e *MemoryEditor) Apply(ctx context.Context, edits []m.Edit) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(edits) == 0 {
		return nil
	}

	sorted := make([]m.Edit, len(edits))
	copy(sorted, edits)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Span.Start < sorted[j].Span.Start
	})

	for i, edit := range sorted {
		if edit.Span.Start < 0 || edit.Span.End < edit.Span.Start || edit.Span.End > len(e.text) {
			return fmt.Errorf("%w: [%d,%d) in %d bytes", ErrEditOutOfRange, edit.Span.Start, edit.Span.End, len(e.text))
		}

		if i > 0 && edit.Span.Start < sorted[i-1].Span.End {
			return fmt.Errorf("%w: [%d,%d) and [%d,%d)", ErrOverlappingEdits,
				sorted[i-1].Span.Start, sorted[i-1].Span.End, edit.Span.Start, edit.Span.End)
		}
	}

	var b strings.Builder

	b.Grow(len(e.text))

	cursor := 0
	for _, edit := range sorted {
		b.WriteString(e.text[cursor:edit.Span.Start])
		b.WriteString(edit.Text)
		cursor = edit.Span.End
	}

	b.WriteString(e.text[cursor:])
	e.reset(b.String())

	return nil
}

// LineCount returns the number of lines in the buffer.
func (e *MemoryEditor) LineCount() int {
	return len(e.lineStarts)
}

// LineAt returns line i without "\n" or "\r\n"; out-of-range lines are empty.
func (e *MemoryEditor) LineAt(line int) string {
	if line < 0 || line >= len(e.lineStarts) {
		return ""
	}

	end := len(e.text)
	if line+1 < len(e.lineStarts) {
		end = e.lineStarts[line+1] - 1
	}

	return strings.TrimSuffix(e.text[e.lineStarts[line]:end], "\r")
}

// PositionAt converts offset, clamped to the buffer, into a position.
func (e *MemoryEditor) PositionAt(offset int) m.Position {
	offset = max(0, min(offset, len(e.text)))

	line := sort.Search(len(e.lineStarts), func(i int) bool {
		return e.lineStarts[i] > offset
	}) - 1

	return m.Position{Line: line, Column: offset - e.lineStarts[line]}
}

// OffsetAt converts pos into an offset. Lines past the end map to the end of
// the buffer; columns are clamped to the line length.
func (e *MemoryEditor) OffsetAt(pos m.Position) int {
	if pos.Line < 0 {
		return 0
	}

	if pos.Line >= len(e.lineStarts) {
		return len(e.text)
	}

	start := e.lineStarts[pos.Line]
	column := max(0, min(pos.Column, len(e.LineAt(pos.Line))))

	return start + column
}
