package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ProfeJavix/lua-localizer/internal/domain"
)

const (
	linesFlagName  = "lines"
	dryRunFlagName = "dry-run"
	stdoutFlagName = "stdout"
)

var linesFlag string
var dryRunFlag bool
var stdoutFlag bool

// localizeCmd represents the localize command.
var localizeCmd = newLocalizeCmd()

func newLocalizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "localize [paths...]",
		Short: "Localize library calls in Lua files",
		Long:  localizeLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			selection, err := parseLinesFlag(linesFlag)
			if err != nil {
				return err
			}

			return workflow.Localize(cmd.Context(), domain.LocalizeArgs{
				SourceArgs: sourceArgs(),
				Paths:      parsePaths(args),
				Selection:  selection,
				DryRun:     dryRunFlag,
				Stdout:     stdoutFlag,
			})
		},
	}

	cmd.Flags().StringVar(&linesFlag, linesFlagName, "", "only rewrite references in lines FROM:TO (1-based, inclusive)")
	cmd.Flags().BoolVarP(&dryRunFlag, dryRunFlagName, "n", false, "print a diff instead of writing files")
	cmd.Flags().BoolVar(&stdoutFlag, stdoutFlagName, false, "print the localized document instead of writing it")
	cmd.MarkFlagsMutuallyExclusive(dryRunFlagName, stdoutFlagName)

	return cmd
}

// parseLinesFlag parses "FROM:TO" or a single "LINE". An empty value selects nothing.
func parseLinesFlag(value string) (domain.LineSelection, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return domain.LineSelection{}, nil
	}

	from, to, found := strings.Cut(value, ":")
	if !found {
		to = from
	}

	start, err := strconv.Atoi(strings.TrimSpace(from))
	if err != nil {
		return domain.LineSelection{}, fmt.Errorf("invalid --%s %q: %w", linesFlagName, value, err)
	}

	end, err := strconv.Atoi(strings.TrimSpace(to))
	if err != nil {
		return domain.LineSelection{}, fmt.Errorf("invalid --%s %q: %w", linesFlagName, value, err)
	}

	if start < 1 || end < start {
		return domain.LineSelection{}, fmt.Errorf("invalid --%s %q: want FROM:TO with 1 <= FROM <= TO", linesFlagName, value)
	}

	return domain.LineSelection{From: start, To: end}, nil
}

func init() {
	rootCmd.AddCommand(localizeCmd)
}
