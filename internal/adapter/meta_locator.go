package adapter

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	m "github.com/ProfeJavix/lua-localizer/internal/model"
)

var (
	// ErrCompanionNotFound is returned when the language server extension is not installed.
	ErrCompanionNotFound = errors.New("lua extension is not installed")
	// ErrMetaDirNotFound is returned when the extension has no built-in definitions directory.
	ErrMetaDirNotFound = errors.New("could not find lua functions")
)

//go:embed companion.yaml
var defaultCompanionYAML []byte

// Companion describes the editor extension that ships the built-in definitions.
type Companion struct {
	ExtensionID         string   `yaml:"extension_id"`
	DefinitionExtension string   `yaml:"definition_extension"`
	MetaCandidates      []string `yaml:"meta_candidates"`
}

var (
	companionOnce     sync.Once
	companionDefaults Companion
	companionErr      error
)

// DefaultCompanion returns the embedded companion defaults, decoded once.
func DefaultCompanion() (Companion, error) {
	companionOnce.Do(func() {
		if err := yaml.Unmarshal(defaultCompanionYAML, &companionDefaults); err != nil {
			companionErr = fmt.Errorf("parsing companion.yaml: %w", err)
		}
	})

	return companionDefaults, companionErr
}

// LocateOptions controls where the companion meta directory is searched for.
type LocateOptions struct {
	// MetaDir, when set, is used as the meta directory without any discovery.
	MetaDir m.Path
	// ExtensionsDirs are the editor extension install roots to search.
	ExtensionsDirs []m.Path
	// ExtensionID overrides Companion.ExtensionID.
	ExtensionID string
}

// MetaLocator finds the built-in definition directories of the companion tool.
type MetaLocator interface {
	// Locate returns the companion meta directory.
	Locate(ctx context.Context, opts LocateOptions) (m.Path, error)
	// SourceDirs lists every nested subdirectory of metaDir, depth-first in
	// lexical order. metaDir itself is not included.
	SourceDirs(ctx context.Context, metaDir m.Path) ([]m.Path, error)
}

type metaLocator struct {
	fs        SourceFSAdapter
	companion Companion
}

// NewMetaLocator constructs a MetaLocator backed by fs and the companion description.
func NewMetaLocator(fs SourceFSAdapter, companion Companion) MetaLocator {
	return &metaLocator{fs: fs, companion: companion}
}

func (l *metaLocator) Locate(ctx context.Context, opts LocateOptions) (m.Path, error) {
	if opts.MetaDir != "" {
		if !l.isDir(ctx, opts.MetaDir) {
			return "", fmt.Errorf("%w: %s", ErrMetaDirNotFound, opts.MetaDir)
		}

		return opts.MetaDir, nil
	}

	extensionID := opts.ExtensionID
	if extensionID == "" {
		extensionID = l.companion.ExtensionID
	}

	installDir, err := l.findExtension(ctx, opts.ExtensionsDirs, extensionID)
	if err != nil {
		return "", err
	}

	for _, candidate := range l.companion.MetaCandidates {
		path := l.fs.JoinPath(ctx, string(installDir), candidate)
		if l.isDir(ctx, path) {
			slog.Debug("found companion meta directory", "path", path)
			return path, nil
		}
	}

	return "", fmt.Errorf("%w in %s", ErrMetaDirNotFound, installDir)
}

func (l *metaLocator) findExtension(ctx context.Context, roots []m.Path, extensionID string) (m.Path, error) {
	var matches []m.Path

	for _, root := range roots {
		entries, err := l.fs.ReadDir(ctx, root)
		if err != nil {
			slog.Debug("skipping extensions directory", "path", root, "error", err)
			continue
		}

		for _, entry := range entries {
			if !entry.IsDir() || !isExtensionDir(entry.Name(), extensionID) {
				continue
			}

			matches = append(matches, l.fs.JoinPath(ctx, string(root), entry.Name()))
		}
	}

	if len(matches) == 0 {
		return "", fmt.Errorf("%w: %s", ErrCompanionNotFound, extensionID)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return compareVersions(baseName(matches[i]), baseName(matches[j])) > 0
	})

	slog.Debug("found companion extension", "id", extensionID, "path", matches[0], "candidates", len(matches))

	return matches[0], nil
}

func (l *metaLocator) SourceDirs(ctx context.Context, metaDir m.Path) ([]m.Path, error) {
	var dirs []m.Path

	err := l.fs.Walk(ctx, metaDir, func(path string, entry os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if entry.IsDir() && m.Path(path) != metaDir {
			dirs = append(dirs, m.Path(path))
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", metaDir, err)
	}

	return dirs, nil
}

func (l *metaLocator) isDir(ctx context.Context, path m.Path) bool {
	info, err := l.fs.FileInfo(ctx, path)
	return err == nil && info.IsDir()
}

// isExtensionDir matches "<id>" and "<id>-<version>[-<platform>]" install folders.
func isExtensionDir(name, extensionID string) bool {
	name = strings.ToLower(name)
	extensionID = strings.ToLower(extensionID)

	return name == extensionID || strings.HasPrefix(name, extensionID+"-")
}

func baseName(path m.Path) string {
	return filepath.Base(string(path))
}

// compareVersions orders folder names by their numeric runs, so "x-3.10.0"
// sorts after "x-3.9.1". Non-numeric runs compare lexically.
func compareVersions(a, b string) int {
	as, bs := splitRuns(a), splitRuns(b)

	for i := 0; i < len(as) && i < len(bs); i++ {
		if c := compareRun(as[i], bs[i]); c != 0 {
			return c
		}
	}

	return len(as) - len(bs)
}

func compareRun(a, b string) int {
	an, aErr := strconv.Atoi(a)
	bn, bErr := strconv.Atoi(b)

	if aErr == nil && bErr == nil {
		return an - bn
	}

	return strings.Compare(a, b)
}

func splitRuns(s string) []string {
	var (
		runs    []string
		current strings.Builder
		digits  bool
	)

	for i, r := range s {
		isDigit := r >= '0' && r <= '9'
		if i > 0 && isDigit != digits {
			runs = append(runs, current.String())
			current.Reset()
		}

		digits = isDigit

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		runs = append(runs, current.String())
	}

	return runs
}
