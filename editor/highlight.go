package editor

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// HighlightSpan styles the graphemes [StartCol, EndCol) of one line.
type HighlightSpan struct {
	StartCol int
	EndCol   int
	Style    lipgloss.Style
}

type LineContext struct {
	Row  int
	Text string

	// CursorCol is the grapheme column of the cursor when HasCursor is set;
	// otherwise -1.
	CursorCol int
	HasCursor bool
}

// Highlighter returns styled spans for a single line. Spans may be unsorted
// and may overlap; overlapping spans are dropped after sorting. An error
// drops highlighting for that line only.
type Highlighter interface {
	HighlightLine(ctx LineContext) ([]HighlightSpan, error)
}

func normalizeHighlightSpans(spans []HighlightSpan, lineLen int) []HighlightSpan {
	if len(spans) == 0 {
		return nil
	}
	lineLen = max(lineLen, 0)

	out := make([]HighlightSpan, 0, len(spans))
	for _, sp := range spans {
		start := clampInt(sp.StartCol, 0, lineLen)
		end := clampInt(sp.EndCol, 0, lineLen)
		if end < start {
			start, end = end, start
		}
		if start == end {
			continue
		}
		out = append(out, HighlightSpan{StartCol: start, EndCol: end, Style: sp.Style})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].StartCol != out[j].StartCol {
			return out[i].StartCol < out[j].StartCol
		}
		return out[i].EndCol < out[j].EndCol
	})

	merged := out[:0]
	lastEnd := -1
	for _, sp := range out {
		if sp.StartCol < lastEnd {
			continue
		}
		merged = append(merged, sp)
		lastEnd = sp.EndCol
	}
	return merged
}

// spanIndexAt returns the index of the span covering col, or -1.
func spanIndexAt(spans []HighlightSpan, col int) int {
	i := sort.Search(len(spans), func(i int) bool { return spans[i].EndCol > col })
	if i < len(spans) && spans[i].StartCol <= col {
		return i
	}
	return -1
}

func (m Model) highlightSpans(row int, vl visualLine) []HighlightSpan {
	if m.cfg.Highlighter == nil || vl.len() == 0 {
		return nil
	}
	cur := m.buf.Cursor()
	ctx := LineContext{Row: row, Text: m.buf.Line(row), CursorCol: -1}
	if cur.Row == row {
		ctx.CursorCol = cur.Col
		ctx.HasCursor = true
	}
	spans, err := m.cfg.Highlighter.HighlightLine(ctx)
	if err != nil {
		m.debug("highlight failed", "row", row, "err", err)
		return nil
	}
	return normalizeHighlightSpans(spans, vl.len())
}
