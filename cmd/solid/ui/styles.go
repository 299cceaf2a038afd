// Package ui holds the lipgloss styles the solid command prints with.
package ui

import "github.com/charmbracelet/lipgloss"

// Styles groups the terminal styles used by the list and run output.
type Styles struct {
	Header    lipgloss.Style
	Name      lipgloss.Style
	Principle lipgloss.Style
	Summary   lipgloss.Style
}

// New returns the default styles. With noColor set every style is the zero
// style, which renders text unchanged.
func New(noColor bool) Styles {
	if noColor {
		return Styles{}
	}

	return Styles{
		Header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Name:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		Principle: lipgloss.NewStyle().Foreground(lipgloss.Color("86")),
		Summary:   lipgloss.NewStyle().Faint(true),
	}
}
