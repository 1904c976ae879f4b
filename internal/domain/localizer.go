package domain

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ProfeJavix/lua-localizer/internal/adapter"
	m "github.com/ProfeJavix/lua-localizer/internal/model"
)

// Localizer rewrites one document so that referenced library globals go
// through aliases declared in its localization block.
type Localizer interface {
	// Localize runs extract, resolve, plan and the two edit transactions on
	// editor, which must hold doc.Text. Nothing is applied unless planning
	// succeeds; a rejected body transaction skips the region transaction.
	Localize(ctx context.Context, doc m.Document, editor adapter.DocumentEditor, catalog m.Catalog) (m.Report, error)
}

type localizer struct{}

// NewLocalizer constructs a Localizer.
func NewLocalizer() Localizer {
	return &localizer{}
}

func (l *localizer) Localize(ctx context.Context, doc m.Document, editor adapter.DocumentEditor, catalog m.Catalog) (m.Report, error) {
	report := m.Report{Path: doc.Path, Original: doc.Text, Result: doc.Text, Region: m.RegionUnchanged}

	if err := ctx.Err(); err != nil {
		return report, err
	}

	region := ParseRegion(doc.Text)

	refs := ResolveReferences(ReferenceSpan(doc, region), catalog)
	if len(refs) == 0 {
		slog.Debug("nothing to localize", "path", doc.Path, "region", region.Found)
		report.NothingToLocalize = true

		return report, nil
	}

	replacements := PlanReplacements(editor.Text(), region, refs, catalog)
	merged, added, regionText := PlanRegion(region.Entries, refs, catalog)

	slog.Debug("localization planned", "path", doc.Path, "references", len(refs),
		"replacements", len(replacements), "new_aliases", len(added))

	if err := l.applyBody(ctx, editor, replacements); err != nil {
		return report, fmt.Errorf("%s: %w", doc.Path, err)
	}

	change, err := l.applyRegion(ctx, editor, regionText)
	if err != nil {
		return report, fmt.Errorf("%s: %w", doc.Path, err)
	}

	report.Replacements = replacements
	report.NewAliases = added
	report.Region = change
	report.Collisions = merged.Collisions()
	report.Result = editor.Text()

	return report, nil
}

func (l *localizer) applyBody(ctx context.Context, editor adapter.DocumentEditor, replacements []m.Replacement) error {
	edits := make([]m.Edit, 0, len(replacements))
	for _, replacement := range replacements {
		edits = append(edits, replacement.Edit())
	}

	if err := editor.Apply(ctx, edits); err != nil {
		return fmt.Errorf("applying replacements: %w", err)
	}

	return nil
}

// applyRegion re-reads the editor because the body transaction shifted every
// offset after the first replacement.
func (l *localizer) applyRegion(ctx context.Context, editor adapter.DocumentEditor, regionText string) (m.RegionChange, error) {
	text := editor.Text()

	current := ParseRegion(text)
	if current.Found {
		if text[current.Span.Start:current.Span.End] == regionText {
			return m.RegionUnchanged, nil
		}

		edit := m.Edit{Span: current.Span, Text: regionText}
		if err := editor.Apply(ctx, []m.Edit{edit}); err != nil {
			return "", fmt.Errorf("replacing region: %w", err)
		}

		return m.RegionUpdated, nil
	}

	offset := headerEnd(editor)
	insert := regionText + "\n\n"

	if offset == len(text) && text != "" && !strings.HasSuffix(text, "\n") {
		insert = "\n" + insert
	}

	edit := m.Edit{Span: m.Range{Start: offset, End: offset}, Text: insert}
	if err := editor.Apply(ctx, []m.Edit{edit}); err != nil {
		return "", fmt.Errorf("inserting region: %w", err)
	}

	return m.RegionInserted, nil
}

// headerEnd returns the offset of the first line that is not a `--` comment.
func headerEnd(editor adapter.DocumentEditor) int {
	line := 0
	for line < editor.LineCount() && strings.HasPrefix(editor.LineAt(line), "--") {
		line++
	}

	return editor.OffsetAt(m.Position{Line: line})
}
