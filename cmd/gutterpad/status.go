package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/iw2rmb/gutterpad/buffer"
	"github.com/iw2rmb/gutterpad/editor"
	"github.com/iw2rmb/gutterpad/stats"
)

type statusInfo struct {
	cursor   buffer.Pos
	mode     editor.InputMode
	readOnly bool
	counts   stats.Counts
	name     string
	language string
	modified bool
	summary  stats.DiffSummary
	message  string
}

func (a app) status() statusInfo {
	return statusInfo{
		cursor:   a.editor.CursorPosition(),
		mode:     a.editor.InputMode(),
		readOnly: a.editor.ReadOnly(),
		counts:   a.tracker.Counts(),
		name:     a.doc.name(),
		language: a.language,
		modified: a.tracker.Modified(),
		summary:  a.tracker.Summary(),
		message:  a.message,
	}
}

// left is "Ln 3 : Col 7  INS  120 chars | 18 words". Line and column are
// 1-based.
func (s statusInfo) left() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Ln %d : Col %d  %s", s.cursor.Row+1, s.cursor.Col+1, s.mode.Label())
	if s.readOnly {
		sb.WriteString(" RO")
	}
	fmt.Fprintf(&sb, "  %d chars | %d words", s.counts.Chars, s.counts.Words)
	return sb.String()
}

// right is the transient message, or the file name with its modified marker
// and the detected language.
func (s statusInfo) right() string {
	if s.message != "" {
		return s.message
	}
	var sb strings.Builder
	sb.WriteString(s.name)
	if s.modified {
		sb.WriteString(" *")
		if !s.summary.IsZero() {
			sb.WriteString(" " + s.summary.String())
		}
	}
	sb.WriteString("  " + s.language)
	return sb.String()
}

func (a app) statusView() string {
	info := a.status()
	st := a.styles

	left := info.left()
	right := info.right()
	if info.message != "" {
		right = st.message.Render(right)
	} else if info.modified {
		right = st.modified.Render(right)
	}

	inner := max(a.width-st.bar.GetHorizontalFrameSize(), 0)
	gap := inner - lipgloss.Width(left) - lipgloss.Width(right)
	line := left + strings.Repeat(" ", max(gap, 1)) + right
	line = ansi.Truncate(line, inner, "…")
	return st.bar.Width(a.width).Render(line)
}
