package controller

import (
	"fmt"

	"github.com/pmezard/go-difflib/difflib"

	m "github.com/ProfeJavix/lua-localizer/internal/model"
)

// UnifiedDiff renders the change made to a document, or "" when unchanged.
func UnifiedDiff(report m.Report) (string, error) {
	if !report.Changed() {
		return "", nil
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(report.Original),
		B:        difflib.SplitLines(report.Result),
		FromFile: "a/" + string(report.Path),
		ToFile:   "b/" + string(report.Path),
		Context:  3,
	})
	if err != nil {
		return "", fmt.Errorf("diffing %s: %w", report.Path, err)
	}

	return diff, nil
}
