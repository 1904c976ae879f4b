package controller

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	m "github.com/ProfeJavix/lua-localizer/internal/model"
)

// SimpleUI implements UI using cobra Command's output streams.
type SimpleUI struct {
	cmd    *cobra.Command
	styles Styles
}

// SimpleOption configures a SimpleUI.
type SimpleOption func(*SimpleUI)

// WithStyles sets the label styles.
func WithStyles(styles Styles) SimpleOption {
	return func(s *SimpleUI) {
		s.styles = styles
	}
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command, options ...SimpleOption) *SimpleUI {
	s := &SimpleUI{cmd: cmd, styles: PlainStyles()}
	for _, option := range options {
		option(s)
	}

	return s
}

// Info prints an informational line.
func (s *SimpleUI) Info(ctx context.Context, format string, args ...any) {
	if ctx.Err() != nil {
		return
	}

	s.printf("%s %s\n", s.styles.Info.Render("info:"), fmt.Sprintf(format, args...))
}

// Warn prints a warning line to stderr.
func (s *SimpleUI) Warn(ctx context.Context, format string, args ...any) {
	if ctx.Err() != nil {
		return
	}

	s.errorf("%s %s\n", s.styles.Warn.Render("warning:"), fmt.Sprintf(format, args...))
}

// Error prints an error line to stderr.
func (s *SimpleUI) Error(ctx context.Context, format string, args ...any) {
	if ctx.Err() != nil {
		return
	}

	s.errorf("%s %s\n", s.styles.Error.Render("error:"), fmt.Sprintf(format, args...))
}

// DisplayReport prints the outcome of localizing one document.
func (s *SimpleUI) DisplayReport(ctx context.Context, report m.Report) {
	if ctx.Err() != nil {
		return
	}

	if report.NothingToLocalize {
		s.Info(ctx, "%s: No functions to localize.", report.Path)
		return
	}

	s.Info(ctx, "%s: Localized functions: %d.", report.Path, len(report.Replacements))

	for _, line := range aliasLines(report.NewAliases) {
		s.printf("  %s %s\n", s.styles.Added.Render("+"), line)
	}

	aliases := make([]string, 0, len(report.Collisions))
	for alias := range report.Collisions {
		aliases = append(aliases, alias)
	}

	sort.Strings(aliases)

	for _, alias := range aliases {
		s.Warn(ctx, "%s: alias %q is declared for %s", report.Path, alias, strings.Join(report.Collisions[alias], ", "))
	}
}

// DisplaySummary renders one table row per document.
func (s *SimpleUI) DisplaySummary(ctx context.Context, reports []m.Report) {
	if ctx.Err() != nil {
		return
	}

	s.printf("\n%s", renderSummaryTable(reports))
}

func renderSummaryTable(reports []m.Report) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Localized", "New aliases", "Region"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT,
	})

	total := 0

	for _, report := range reports {
		region := string(report.Region)
		if report.NothingToLocalize {
			region = "-"
		}

		table.Append([]string{
			string(report.Path),
			fmt.Sprintf("%d", len(report.Replacements)),
			fmt.Sprintf("%d", len(report.NewAliases)),
			region,
		})

		total += len(report.Replacements)
	}

	table.SetFooter([]string{fmt.Sprintf("Total Files %d", len(reports)), fmt.Sprintf("%d", total), "", ""})
	table.Render()

	return tableBuffer.String()
}

// DisplayDiff prints a unified diff between the original and rewritten text.
func (s *SimpleUI) DisplayDiff(ctx context.Context, report m.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	diff, err := UnifiedDiff(report)
	if err != nil {
		return err
	}

	s.printf("%s", diff)

	return nil
}

// DisplayDocument prints the rewritten document text.
func (s *SimpleUI) DisplayDocument(ctx context.Context, report m.Report) {
	if ctx.Err() != nil {
		return
	}

	s.printf("%s", report.Result)
}

type catalogEntry struct {
	Name   string `yaml:"name"`
	Alias  string `yaml:"alias"`
	Source string `yaml:"source"`
}

// DisplayCatalog lists the catalog sorted by name.
func (s *SimpleUI) DisplayCatalog(ctx context.Context, catalog m.Catalog, format CatalogFormat) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	defs := catalog.Sorted()

	if format == CatalogYAML {
		entries := make([]catalogEntry, 0, len(defs))
		for _, def := range defs {
			entries = append(entries, catalogEntry{Name: def.Name, Alias: def.Alias, Source: string(def.Source)})
		}

		out, err := yaml.Marshal(entries)
		if err != nil {
			return fmt.Errorf("encoding catalog: %w", err)
		}

		s.printf("%s", out)

		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Name", "Alias", "Source"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	for _, def := range defs {
		table.Append([]string{def.Name, def.Alias, string(def.Source)})
	}

	table.SetFooter([]string{fmt.Sprintf("Total %d", len(defs)), "", ""})
	table.Render()

	s.printf("%s", tableBuffer.String())

	return nil
}

func aliasLines(entries m.AliasEntries) []string {
	lines := make([]string, 0, len(entries))
	for name, alias := range entries {
		lines = append(lines, fmt.Sprintf("local %s = %s", alias, name))
	}

	sort.Strings(lines)

	return lines
}

func (s *SimpleUI) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func (s *SimpleUI) errorf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), format, args...)
}
