package controller

import "github.com/charmbracelet/lipgloss"

// Styles decorates message labels.
type Styles struct {
	Info  lipgloss.Style
	Warn  lipgloss.Style
	Error lipgloss.Style
	Added lipgloss.Style
}

// DefaultStyles returns the terminal color scheme.
func DefaultStyles() Styles {
	return Styles{
		Info:  lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		Warn:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Error: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Added: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	}
}

// PlainStyles renders every label unchanged.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()

	return Styles{Info: plain, Warn: plain, Error: plain, Added: plain}
}
