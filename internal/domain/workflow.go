// Package domain contains the localization workflow and its core algorithms.
package domain

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/ProfeJavix/lua-localizer/internal/adapter"
	"github.com/ProfeJavix/lua-localizer/internal/controller"
	m "github.com/ProfeJavix/lua-localizer/internal/model"
)

// LineSelection is a 1-based inclusive line range. The zero value selects nothing.
type LineSelection struct {
	From int
	To   int
}

// IsZero reports whether no selection was requested.
func (s LineSelection) IsZero() bool {
	return s.From == 0 && s.To == 0
}

// SourceArgs describe where catalog definitions come from.
type SourceArgs struct {
	Library []m.Path
	Locate  adapter.LocateOptions
}

// LocalizeArgs contains the arguments for localizing documents.
type LocalizeArgs struct {
	SourceArgs
	Paths     []m.Path
	Selection LineSelection
	DryRun    bool
	Stdout    bool
}

// CatalogArgs contains the arguments for listing the catalog.
type CatalogArgs struct {
	SourceArgs
	Format controller.CatalogFormat
}

// Workflow drives one command invocation end to end.
type Workflow interface {
	Localize(ctx context.Context, args LocalizeArgs) error
	ListCatalog(ctx context.Context, args CatalogArgs) error
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.MetaLocator
	adapter.DocumentFinder
	CatalogBuilder
	Localizer
	ui        controller.UI
	extension string
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	metaLocator adapter.MetaLocator,
	documentFinder adapter.DocumentFinder,
	catalogBuilder CatalogBuilder,
	localizer Localizer,
	ui controller.UI,
	extension string,
) Workflow {
	return &workflow{
		SourceFSAdapter: fsAdapter,
		MetaLocator:     metaLocator,
		DocumentFinder:  documentFinder,
		CatalogBuilder:  catalogBuilder,
		Localizer:       localizer,
		ui:              ui,
		extension:       extension,
	}
}

const defaultFileMode os.FileMode = 0o644

type openDocument struct {
	doc    m.Document
	editor *adapter.MemoryEditor
	mode   os.FileMode
}

func (w *workflow) Localize(ctx context.Context, args LocalizeArgs) error {
	docs, err := w.openDocuments(ctx, args)
	if err != nil {
		return err
	}

	catalog, err := w.collect(ctx, args.SourceArgs)
	if err != nil {
		return err
	}

	reports := make([]m.Report, 0, len(docs))

	for _, open := range docs {
		report, err := w.Localizer.Localize(ctx, open.doc, open.editor, catalog)
		if err != nil {
			slog.Error("localize failed", "path", open.doc.Path, "error", err)
			return err
		}

		reports = append(reports, report)
	}

	for i, report := range reports {
		if err := w.emit(ctx, args, report, docs[i].mode); err != nil {
			return err
		}
	}

	if len(reports) > 1 && !args.Stdout {
		w.ui.DisplaySummary(ctx, reports)
	}

	return nil
}

func (w *workflow) ListCatalog(ctx context.Context, args CatalogArgs) error {
	catalog, err := w.collect(ctx, args.SourceArgs)
	if err != nil {
		return err
	}

	return w.ui.DisplayCatalog(ctx, catalog, args.Format)
}

// openDocuments validates and reads every document before anything is scanned.
func (w *workflow) openDocuments(ctx context.Context, args LocalizeArgs) ([]openDocument, error) {
	if len(args.Paths) == 0 {
		return nil, ErrNoDocuments
	}

	paths, err := w.Find(ctx, args.Paths, w.extension)
	if err != nil {
		return nil, fmt.Errorf("finding documents: %w", err)
	}

	if len(paths) == 0 {
		return nil, ErrNoDocuments
	}

	if !args.Selection.IsZero() && len(paths) != 1 {
		return nil, ErrSelectionWithManyDocuments
	}

	docs := make([]openDocument, 0, len(paths))

	for _, path := range paths {
		if !strings.HasSuffix(string(path), w.extension) {
			return nil, fmt.Errorf("%w: %s", ErrNotLuaDocument, path)
		}

		info, err := w.FileInfo(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}

		content, err := w.ReadFile(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}

		editor := adapter.NewMemoryEditor(string(content))

		selection, err := selectionRange(editor, args.Selection)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}

		mode := info.Mode().Perm()
		if mode == 0 {
			mode = defaultFileMode
		}

		docs = append(docs, openDocument{
			doc:    m.Document{Path: path, Text: string(content), Selection: selection},
			editor: editor,
			mode:   mode,
		})
	}

	return docs, nil
}

func selectionRange(editor adapter.DocumentEditor, selection LineSelection) (m.Range, error) {
	if selection.IsZero() {
		return m.Range{}, nil
	}

	if selection.From < 1 || selection.To < selection.From || selection.To > editor.LineCount() {
		return m.Range{}, fmt.Errorf("%w: lines %d:%d of %d", ErrSelectionOutOfRange,
			selection.From, selection.To, editor.LineCount())
	}

	return m.Range{
		Start: editor.OffsetAt(m.Position{Line: selection.From - 1}),
		End:   editor.OffsetAt(m.Position{Line: selection.To}),
	}, nil
}

// collect resolves the catalog sources and builds the catalog. Unreadable
// sources are warned about; a missing companion aborts the invocation.
func (w *workflow) collect(ctx context.Context, args SourceArgs) (m.Catalog, error) {
	if len(args.Library) == 0 {
		w.ui.Warn(ctx, "No paths specified in: lua.workspace.library.")
	}

	metaDir, err := w.Locate(ctx, args.Locate)
	if err != nil {
		slog.Error("companion discovery failed", "error", err)
		return nil, err
	}

	metaDirs, err := w.SourceDirs(ctx, metaDir)
	if err != nil {
		return nil, err
	}

	sources := make([]m.Path, 0, len(args.Library)+len(metaDirs))
	sources = append(sources, args.Library...)
	sources = append(sources, metaDirs...)

	catalog, skipped, err := w.Build(ctx, sources)
	if err != nil {
		return nil, err
	}

	for _, source := range skipped {
		w.ui.Warn(ctx, "Couldn't read: %s", source.Path)
	}

	return catalog, nil
}

func (w *workflow) emit(ctx context.Context, args LocalizeArgs, report m.Report, mode os.FileMode) error {
	switch {
	case args.Stdout:
		w.ui.DisplayDocument(ctx, report)
		return nil
	case args.DryRun:
		w.ui.DisplayReport(ctx, report)
		return w.ui.DisplayDiff(ctx, report)
	}

	w.ui.DisplayReport(ctx, report)

	if !report.Changed() {
		return nil
	}

	if err := w.WriteFile(ctx, report.Path, []byte(report.Result), mode); err != nil {
		return fmt.Errorf("writing %s: %w", report.Path, err)
	}

	slog.Info("document localized", "path", report.Path, "replacements", len(report.Replacements),
		"new_aliases", len(report.NewAliases), "region", report.Region)

	return nil
}
