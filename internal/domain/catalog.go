package domain

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/ProfeJavix/lua-localizer/internal/adapter"
	"github.com/ProfeJavix/lua-localizer/internal/domain/patterns"
	m "github.com/ProfeJavix/lua-localizer/internal/model"
)

// DefaultCatalogParallel bounds concurrent directory reads while building a catalog.
const DefaultCatalogParallel = 4

// CatalogBuilder collects library definitions from definition source directories.
type CatalogBuilder interface {
	// Build scans every directory in sources (non-recursively) and returns the
	// merged catalog. A name defined in several sources keeps the definition of
	// the last one. Unreadable directories and files are returned as skipped
	// and never abort the scan.
	Build(ctx context.Context, sources []m.Path) (m.Catalog, []m.SkippedSource, error)
}

type catalogBuilder struct {
	fs        adapter.SourceFSAdapter
	extension string
	parallel  int
}

// NewCatalogBuilder constructs a CatalogBuilder reading files ending in extension.
func NewCatalogBuilder(fs adapter.SourceFSAdapter, extension string, parallel int) CatalogBuilder {
	if parallel < 1 {
		parallel = DefaultCatalogParallel
	}

	return &catalogBuilder{fs: fs, extension: extension, parallel: parallel}
}

type sourceScan struct {
	catalog m.Catalog
	skipped []m.SkippedSource
}

func (b *catalogBuilder) Build(ctx context.Context, sources []m.Path) (m.Catalog, []m.SkippedSource, error) {
	scans := make([]sourceScan, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.parallel)

	for i, source := range sources {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			scans[i] = b.scanDir(gctx, source)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, fmt.Errorf("building catalog: %w", err)
	}

	catalog := make(m.Catalog)

	var skipped []m.SkippedSource

	// Merge in source order so later sources win.
	for _, scan := range scans {
		catalog.Merge(scan.catalog)
		skipped = append(skipped, scan.skipped...)
	}

	slog.Debug("catalog built", "sources", len(sources), "definitions", len(catalog), "skipped", len(skipped))

	return catalog, skipped, nil
}

func (b *catalogBuilder) scanDir(ctx context.Context, dir m.Path) sourceScan {
	scan := sourceScan{catalog: make(m.Catalog)}

	entries, err := b.fs.ReadDir(ctx, dir)
	if err != nil {
		slog.Warn("couldn't read definitions folder", "path", dir, "error", err)
		scan.skipped = append(scan.skipped, m.SkippedSource{Path: dir, Err: err})

		return scan
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), b.extension) {
			continue
		}

		path := b.fs.JoinPath(ctx, string(dir), entry.Name())

		content, err := b.fs.ReadFile(ctx, path)
		if err != nil {
			slog.Warn("couldn't read definitions file", "path", path, "error", err)
			scan.skipped = append(scan.skipped, m.SkippedSource{Path: path, Err: err})

			continue
		}

		scan.catalog.Merge(ExtractDefinitions(string(content), path))
	}

	return scan
}

// ExtractDefinitions collects every `function a.b(` and `a.b = function(`
// declaration in content, aliased by its last dotted segment.
func ExtractDefinitions(content string, source m.Path) m.Catalog {
	catalog := make(m.Catalog)

	for _, matcher := range []*patterns.Matcher{patterns.FunctionDecl, patterns.AssignDecl} {
		for match := range matcher.All(content) {
			name := match.Group(1)
			catalog[name] = m.NewDefinition(name, source)
		}
	}

	return catalog
}
