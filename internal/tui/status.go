package tui

import (
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// statusNames maps porcelain status letters to their meaning.
//
//nolint:gochecknoglobals // Static lookup table
var statusNames = map[string]string{
	"M": "modified",
	"A": "added",
	"D": "deleted",
	"R": "renamed",
	"C": "copied",
	"U": "unmerged",
	"T": "type changed",
	"?": "untracked",
	"!": "ignored",
}

// StatusLabel returns a title-cased description of a porcelain status letter,
// for example "Modified" for "M". Unknown letters are returned unchanged.
func StatusLabel(code string) string {
	name, ok := statusNames[code]
	if !ok {
		return code
	}
	return cases.Title(language.English).String(name)
}

// StatusStyle returns the style used to render a status letter.
// Staged entries are green, unstaged yellow, and conflicts red.
func StatusStyle(code string, staged bool) lipgloss.Style {
	switch {
	case code == "U":
		return lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	case code == "?" || code == "!":
		return lipgloss.NewStyle().Foreground(ColorMuted)
	case staged:
		return lipgloss.NewStyle().Foreground(ColorSuccess)
	default:
		return lipgloss.NewStyle().Foreground(ColorWarning)
	}
}
