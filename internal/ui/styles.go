package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - titles, entering cards
	ColorHighlight = "205" // Magenta - card borders, key hints
	ColorMuted     = "241" // Gray - closing cards, hints
	ColorText      = "252" // Light gray - body text
	ColorDanger    = "196" // Red - errors
)

// Styles contains shared style definitions for the stack renderer.
var Styles = struct {
	Header       lipgloss.Style // Floating header bar
	HeaderTitle  lipgloss.Style // Title text inside a header
	HeaderBack   lipgloss.Style // "‹ Previous" back label
	Card         lipgloss.Style // Active card
	CardEntering lipgloss.Style // Card still running its entrance transition
	CardClosing  lipgloss.Style // Card running its exit transition
	Body         lipgloss.Style
	Marker       lipgloss.Style // Lifecycle markers in the breadcrumb
	Hint         lipgloss.Style
	Error        lipgloss.Style
}{
	Header: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Padding(0, 1),
	HeaderTitle: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	HeaderBack: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Card: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2),
	CardEntering: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(1, 2),
	CardClosing: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Foreground(lipgloss.Color(ColorMuted)).
		Faint(true).
		Padding(1, 2),
	Body: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Marker: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
}
