package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/gutterpad/buffer"
)

type cellStyleKey struct {
	span     int
	selected bool
	cursor   bool
}

func joinGutter(gutter, text string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, gutter, text)
}

// renderContent renders every visual row of the document, without the
// gutter, joined by newlines.
func (m Model) renderContent() string {
	if len(m.layout.rows) == 0 {
		return ""
	}
	sel, hasSel := m.buf.Selection()

	var sb strings.Builder
	spansBlock := -1
	var spans []HighlightSpan
	for i, ref := range m.layout.rows {
		if i > 0 {
			sb.WriteByte('\n')
		}
		if ref.block != spansBlock {
			spans = m.highlightSpans(ref.block, m.layout.blocks[ref.block].visual)
			spansBlock = ref.block
		}
		m.renderRow(&sb, ref, spans, sel, hasSel)
	}
	return sb.String()
}

func (m Model) renderRow(sb *strings.Builder, ref rowRef, spans []HighlightSpan, sel buffer.Range, hasSel bool) {
	b := &m.layout.blocks[ref.block]
	seg := b.segments[ref.seg]
	vl := b.visual
	cur := m.buf.Cursor()
	st := m.cfg.Style

	band := !m.readOnly && cur.Row == ref.block
	base := st.Text
	if band {
		base = base.Inherit(st.CurrentLine)
	}

	width := m.contentWidth()
	left := seg.startCell
	if m.cfg.WrapMode == WrapNone {
		left = m.xOffset
	}
	right := left + width
	if width <= 0 {
		right = vl.width() + 1
	}

	used := 0
	var run strings.Builder
	runKey := cellStyleKey{span: -1}
	flush := func() {
		if run.Len() == 0 {
			return
		}
		sb.WriteString(m.cellStyle(runKey, spans, base).Render(run.String()))
		run.Reset()
	}

	for col := seg.startCol; col < seg.endCol; col++ {
		cs, ce := vl.cells[col], vl.cells[col+1]
		if ce <= left {
			continue
		}
		if cs >= right {
			break
		}
		text := vl.displayText(col)
		visible := min(ce, right) - max(cs, left)
		if cs < left || ce > right {
			text = spaces(visible)
		}

		pos := buffer.Pos{Row: ref.block, Col: col}
		key := cellStyleKey{
			span:     spanIndexAt(spans, col),
			selected: hasSel && buffer.ComparePos(sel.Start, pos) <= 0 && buffer.ComparePos(pos, sel.End) < 0,
			cursor:   m.focused && cur == pos,
		}
		if key != runKey {
			flush()
			runKey = key
		}
		run.WriteString(text)
		used += visible
	}
	flush()

	if m.focused && cur.Row == ref.block && cur.Col == vl.len() && ref.seg == len(b.segments)-1 {
		if cell := vl.width(); cell >= left && cell < right {
			sb.WriteString(st.Cursor.Inherit(base).Render(" "))
			used++
		}
	}

	if band && width > used {
		sb.WriteString(base.Render(spaces(width - used)))
	}
}

func (m Model) cellStyle(key cellStyleKey, spans []HighlightSpan, base lipgloss.Style) lipgloss.Style {
	s := base
	if key.span >= 0 {
		s = spans[key.span].Style.Inherit(base)
	}
	if key.selected {
		s = m.cfg.Style.Selection.Inherit(s)
	}
	if key.cursor {
		s = m.cfg.Style.Cursor.Inherit(s)
	}
	return s
}
