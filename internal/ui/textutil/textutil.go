// Package textutil provides width-aware text helpers for header rendering.
package textutil

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Ellipsis marks truncated text.
const Ellipsis = "…"

// Width returns the number of terminal columns s occupies. ANSI styling is ignored.
func Width(s string) int {
	return lipgloss.Width(s)
}

// Truncate shortens s to at most maxWidth columns, ending in Ellipsis when cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, Ellipsis)
}

// HeaderLine lays out a back label on the left and a title after it within
// width columns. The title is kept whole when possible; the back label is
// dropped first.
func HeaderLine(back, title string, width int) (string, string) {
	if width <= 0 {
		return "", ""
	}
	tw := runewidth.StringWidth(title)
	if tw >= width {
		return "", Truncate(title, width)
	}
	if back == "" {
		return "", title
	}
	room := width - tw - 1
	if room < runewidth.StringWidth(Ellipsis)+1 {
		return "", title
	}
	return Truncate(back, room), title
}
