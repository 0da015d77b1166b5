package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/gutterpad/editor"
	"github.com/iw2rmb/gutterpad/internal/config"
)

// editorStyle maps a config theme onto the editor's styles. Empty colors keep
// the editor defaults. Text gets no background so the current-line band shows
// through.
func editorStyle(t config.Theme) editor.Style {
	t = t.Resolved()
	s := editor.DefaultStyle()

	if t.LineNumber != "" {
		s.Gutter = s.Gutter.Foreground(lipgloss.Color(t.LineNumber))
		s.LineNum = s.LineNum.Foreground(lipgloss.Color(t.LineNumber))
	}
	if t.LineNumberActive != "" {
		s.LineNumActive = s.LineNumActive.Foreground(lipgloss.Color(t.LineNumberActive))
	}
	if t.Foreground != "" {
		s.Text = s.Text.Foreground(lipgloss.Color(t.Foreground))
	}
	if t.CurrentLine != "" {
		s.CurrentLine = lipgloss.NewStyle().Background(lipgloss.Color(t.CurrentLine))
	}
	if t.Selection != "" {
		s.Selection = lipgloss.NewStyle().Background(lipgloss.Color(t.Selection))
	}
	return s
}

func keywordHighlighter(t config.Theme) *editor.KeywordHighlighter {
	return editor.NewKeywordHighlighter(t.Keyword, t.String, t.Comment)
}

type statusStyles struct {
	bar      lipgloss.Style
	modified lipgloss.Style
	message  lipgloss.Style
}

func newStatusStyles(t config.Theme) statusStyles {
	bar := lipgloss.NewStyle().Padding(0, 1)
	if t.StatusBar != "" {
		bar = bar.Background(lipgloss.Color(t.StatusBar)).Foreground(lipgloss.Color("#ffffff"))
	}
	return statusStyles{
		bar:      bar,
		modified: lipgloss.NewStyle().Bold(true),
		message:  lipgloss.NewStyle().Italic(true),
	}
}
