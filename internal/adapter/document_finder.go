package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"

	m "github.com/ProfeJavix/lua-localizer/internal/model"
)

var skipDirs = map[string]struct{}{
	"node_modules": {},
	".git":         {},
	".hg":          {},
	".svn":         {},
	".luarocks":    {},
	"lua_modules":  {},
}

// DocumentFinder expands command-line paths into the documents to localize.
type DocumentFinder interface {
	// Find returns explicit files unchanged and, for directories, every nested
	// file ending in extension that is not hidden or ignored by the directory's
	// .gitignore. The result keeps argument order and drops duplicates.
	Find(ctx context.Context, paths []m.Path, extension string) ([]m.Path, error)
}

type documentFinder struct {
	fs SourceFSAdapter
}

// NewDocumentFinder constructs a DocumentFinder backed by fs.
func NewDocumentFinder(fs SourceFSAdapter) DocumentFinder {
	return &documentFinder{fs: fs}
}

func (f *documentFinder) Find(ctx context.Context, paths []m.Path, extension string) ([]m.Path, error) {
	seen := make(map[m.Path]struct{})

	var documents []m.Path

	add := func(path m.Path) {
		if _, ok := seen[path]; ok {
			return
		}

		seen[path] = struct{}{}
		documents = append(documents, path)
	}

	for _, path := range paths {
		info, err := f.fs.FileInfo(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("document path: %w", err)
		}

		if !info.IsDir() {
			add(path)
			continue
		}

		found, err := f.walk(ctx, path, extension)
		if err != nil {
			return nil, err
		}

		for _, doc := range found {
			add(doc)
		}
	}

	return documents, nil
}

func (f *documentFinder) walk(ctx context.Context, root m.Path, extension string) ([]m.Path, error) {
	gi := f.loadGitignore(ctx, root)
	rootStr := string(root)

	var results []m.Path

	err := f.fs.Walk(ctx, root, func(path string, entry os.DirEntry, err error) error {
		if err != nil {
			slog.Warn("skipping unreadable path", "path", path, "error", err)
			return nil
		}

		name := entry.Name()

		if entry.IsDir() {
			if path == rootStr {
				return nil
			}

			if _, skip := skipDirs[name]; skip || strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
		}

		rel, relErr := f.fs.RelPath(ctx, root, m.Path(path))
		if relErr != nil {
			return nil
		}

		if gi != nil && gi.MatchesPath(filepath.ToSlash(string(rel))) {
			if entry.IsDir() {
				return filepath.SkipDir
			}

			return nil
		}

		if entry.IsDir() || strings.HasPrefix(name, ".") || !strings.HasSuffix(name, extension) {
			return nil
		}

		results = append(results, m.Path(path))

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i] < results[j]
	})

	return results, nil
}

func (f *documentFinder) loadGitignore(ctx context.Context, root m.Path) *ignore.GitIgnore {
	content, err := f.fs.ReadFile(ctx, f.fs.JoinPath(ctx, string(root), ".gitignore"))
	if err != nil {
		return nil
	}

	return ignore.CompileIgnoreLines(strings.Split(string(content), "\n")...)
}
