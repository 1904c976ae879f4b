// Package controller provides the user-facing output of the localizer.
package controller

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "github.com/ProfeJavix/lua-localizer/internal/model"
)

// CatalogFormat selects how DisplayCatalog renders definitions.
type CatalogFormat string

// Available CatalogFormat values.
const (
	CatalogTable CatalogFormat = "table"
	CatalogYAML  CatalogFormat = "yaml"
)

// ParseCatalogFormat validates a --format value.
func ParseCatalogFormat(value string) (CatalogFormat, error) {
	switch CatalogFormat(value) {
	case "", CatalogTable:
		return CatalogTable, nil
	case CatalogYAML:
		return CatalogYAML, nil
	}

	return "", fmt.Errorf("unknown catalog format %q (want %q or %q)", value, CatalogTable, CatalogYAML)
}

// UI surfaces status messages and results to the user.
// Implementations can use different output methods (plain or styled text).
type UI interface {
	Info(ctx context.Context, format string, args ...any)
	Warn(ctx context.Context, format string, args ...any)
	Error(ctx context.Context, format string, args ...any)
	DisplayReport(ctx context.Context, report m.Report)
	DisplaySummary(ctx context.Context, reports []m.Report)
	DisplayDiff(ctx context.Context, report m.Report) error
	DisplayDocument(ctx context.Context, report m.Report)
	DisplayCatalog(ctx context.Context, catalog m.Catalog, format CatalogFormat) error
}

// NewUI returns a SimpleUI printing through cmd, with styled labels on a terminal.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewSimpleUI(cmd, WithStyles(DefaultStyles()))
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is an interactive terminal.
func IsTTY(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
