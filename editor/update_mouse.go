package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/gutterpad/buffer"
)

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown, tea.MouseButtonWheelLeft, tea.MouseButtonWheelRight:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		m.sync(syncOptions{})
		return m, cmd
	}

	if !m.focused {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		pos, inGutter := m.screenToDocPos(msg.X, msg.Y)
		if inGutter {
			pos.Col = 0
		}
		m.buf.ClearSelection()
		m.buf.SetCursor(pos)
		m.dragging = true
		m.dragAnchor = m.buf.Cursor()
	case tea.MouseActionMotion:
		if !m.dragging {
			return m, nil
		}
		pos, _ := m.screenToDocPos(msg.X, msg.Y)
		m.buf.SetCursor(pos)
		m.buf.SetSelection(buffer.Range{Start: m.dragAnchor, End: m.buf.Cursor()})
	case tea.MouseActionRelease:
		m.dragging = false
	}

	m.sync(syncOptions{})
	return m, nil
}

// screenToDocPos maps editor-local coordinates to a document position.
// inGutter reports whether x falls inside the gutter.
func (m Model) screenToDocPos(x, y int) (pos buffer.Pos, inGutter bool) {
	gw := m.gut.resolvedWidth()
	inGutter = x < gw
	rows := m.layout.rows
	if len(rows) == 0 {
		return buffer.Pos{}, inGutter
	}

	r := clampInt(m.viewport.YOffset+max(y, 0), 0, len(rows)-1)
	ref := rows[r]
	b := &m.layout.blocks[ref.block]
	seg := b.segments[ref.seg]

	cx := max(x-gw, 0)
	cell := seg.startCell + cx
	if m.cfg.WrapMode == WrapNone {
		cell = m.xOffset + cx
	}

	col := clampInt(b.visual.colForCell(cell), seg.startCol, seg.endCol)
	// Past the end of a wrapped row, stay on that row.
	if ref.seg < len(b.segments)-1 && col >= seg.endCol {
		col = max(seg.endCol-1, seg.startCol)
	}
	return buffer.Pos{Row: ref.block, Col: col}, inGutter
}
