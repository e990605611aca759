// Package report renders fact results: a styled console
// reporter with eager failure output and pluralized suite
// summaries, a JSON writer for suite results, and a markdown
// run summary.
package report

import "github.com/charmbracelet/lipgloss"

// Styles defines the visual theme for console report output.
// Lipgloss automatically degrades to no-color when output is
// not a TTY.
type Styles struct {
	// Header styles the suite banner line.
	Header lipgloss.Style

	// SubHeader styles the suite source label.
	SubHeader lipgloss.Style

	// Pass styles the all-green summary line.
	Pass lipgloss.Style

	// Fail styles failure blocks and failed counts.
	Fail lipgloss.Style

	// Errored styles error blocks and errored counts.
	Errored lipgloss.Style

	// Value styles reported values.
	Value lipgloss.Style

	// Muted is used for de-emphasized text such as context
	// labels and source locations.
	Muted lipgloss.Style
}

// DefaultStyles returns the default color scheme.
func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63")),
		SubHeader: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Pass: lipgloss.NewStyle().
			Foreground(lipgloss.Color("40")).
			Bold(true),
		Fail: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
		Errored: lipgloss.NewStyle().
			Foreground(lipgloss.Color("208")).
			Bold(true),
		Value: lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
	}
}
