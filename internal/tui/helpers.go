package tui

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/naveenspark/skillhub/internal/page"
)

// truncStr truncates a string to maxLen runes, appending an ellipsis if needed.
func truncStr(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxLen-1]) + "…"
}

// singleLine collapses newlines and runs of whitespace so API strings
// cannot break the row layout.
func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// centered pads s on the left so it sits in the middle of width.
func centered(s string, width int) string {
	pad := (width - lipgloss.Width(s)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + s
}

// renderEmptyState draws a page placeholder.
func renderEmptyState(e page.EmptyState, width int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centered(e.Icon, width) + "\n")
	b.WriteString(centered(emptyTitleStyle.Render(e.Title), width) + "\n")
	b.WriteString(centered(dimStyle.Render(singleLine(e.Description)), width) + "\n")
	if e.BrowseLink {
		b.WriteString("\n" + centered(helpEntry("2", "Browse Skills"), width) + "\n")
	}
	return b.String()
}

// renderLoading is the terminal counterpart of the page spinner.
func renderLoading() string {
	return " " + dimStyle.Render("loading...")
}
