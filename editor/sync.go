package editor

import "github.com/iw2rmb/gutterpad/buffer"

type syncOptions struct {
	// follow scrolls to keep the cursor visible even if it did not move.
	follow bool
	// fullGutter forces a width recompute and a full gutter repaint.
	fullGutter bool
	// geometry reports a geometry event even if nothing else moved.
	geometry bool
}

// sync folds pending buffer changes into layout, scroll state, rendered
// rows and the gutter, then publishes events. It is the single place where
// the editor reacts to document mutations.
func (m *Model) sync(opt syncOptions) {
	changes := m.pending.drain()

	var (
		textChanged      bool
		reset            bool
		cursorChanged    bool
		lineCountChanged bool
		firstRow         = -1
		lastRow          = -1
		oldCursorRow     = m.buf.Cursor().Row
	)
	if len(changes) > 0 {
		oldCursorRow = changes[0].CursorBefore.Row
	}
	for _, c := range changes {
		if c.Source == buffer.ChangeSourceReset {
			reset = true
		}
		if c.LineCountBefore != c.LineCountAfter {
			lineCountChanged = true
		}
		if c.CursorBefore != c.CursorAfter || c.SelectionBefore != c.SelectionAfter {
			cursorChanged = true
		}
		for _, e := range c.AppliedEdits {
			textChanged = true
			r := buffer.NormalizeRange(e.RangeAfter)
			if firstRow < 0 || r.Start.Row < firstRow {
				firstRow = r.Start.Row
			}
			lastRow = max(lastRow, r.End.Row)
		}
	}

	lineCount := m.buf.LineCount()
	widthChanged := m.gut.updateWidth(lineCount, reset || opt.fullGutter)
	if widthChanged {
		m.applyWidths()
	}

	oldRows := m.layout.totalRows()
	layoutChanged := m.ensureLayout()

	follow := opt.follow || widthChanged || textChanged || cursorChanged
	xChanged := false
	if follow {
		xChanged = m.followCursorX()
	}
	if m.stale || widthChanged || textChanged || cursorChanged || layoutChanged || xChanged {
		m.viewport.SetContent(m.renderContent())
		m.stale = false
	}
	if follow {
		m.followCursorY()
	}

	top := m.viewport.YOffset
	h := m.visibleRowCount()
	geometryChanged := widthChanged || opt.geometry
	if m.gut.height() != h {
		m.gut.resize(h)
		geometryChanged = true
	}
	if top != m.gut.top {
		if textChanged || layoutChanged {
			m.gut.invalidateAll()
		} else {
			m.gut.scroll(m.gut.top - top)
		}
		m.gut.top = top
		geometryChanged = true
	}
	if reset || opt.fullGutter || (layoutChanged && !textChanged) {
		m.gut.invalidateAll()
	}
	if textChanged {
		from, to := m.layout.blockRows(firstRow)
		if lineCountChanged || oldRows != m.layout.totalRows() {
			to = top + h
		} else if _, end := m.layout.blockRows(lastRow); end > to {
			to = end
		}
		m.gut.invalidate(from-top, to-top)
	}
	if cursorChanged {
		if row := m.buf.Cursor().Row; row != oldCursorRow {
			m.invalidateBlock(oldCursorRow)
			m.invalidateBlock(row)
		}
	}
	if m.gut.dirtyCoversViewport() && !widthChanged {
		// A full repaint revalidates the cached width as well.
		m.gut.updateWidth(lineCount, true)
	}
	m.gut.paint(viewportBlocks{l: m.layout, top: top}, m.gutterCell, m.gutterBlank())

	for _, c := range changes {
		if c.TextChanged() {
			m.bus.emit(Event{Kind: EventContentChanged, Content: buildChangeEvent(m.buf, c)})
		}
	}
	if cursorChanged {
		ev := CursorEvent{Cursor: m.buf.Cursor()}
		ev.Selection, ev.Active = m.buf.Selection()
		m.bus.emit(Event{Kind: EventCursorChanged, Cursor: ev})
	}
	if geometryChanged {
		m.bus.emit(Event{Kind: EventGeometryChanged, Geometry: GeometryEvent{
			GutterWidth: m.gut.resolvedWidth(),
			Width:       m.width,
			Height:      m.height,
			TopRow:      top,
		}})
	}
	if widthChanged {
		m.debug("gutter width changed", "width", m.gut.resolvedWidth(), "lines", lineCount)
	}
}

func (m *Model) layoutKey() layoutKey {
	k := layoutKey{
		textVersion: m.buf.TextVersion(),
		tabWidth:    m.cfg.TabWidth,
		wrap:        m.cfg.WrapMode,
	}
	if k.wrap != WrapNone {
		k.width = m.contentWidth()
	}
	return k
}

func (m *Model) ensureLayout() bool {
	k := m.layoutKey()
	if m.layout.valid && m.layout.key == k {
		return false
	}
	m.layout = buildLayout(m.buf, k)
	return true
}

// invalidateBlock dirties the gutter rows of block relative to the current
// viewport.
func (m *Model) invalidateBlock(block int) {
	from, to := m.layout.blockRows(block)
	top := m.viewport.YOffset
	m.gut.invalidate(from-top, to-top)
}

func (m *Model) invalidateCursorBlock() {
	m.invalidateBlock(m.buf.Cursor().Row)
}

func (m *Model) followCursorX() bool {
	next := 0
	if w := m.contentWidth(); m.cfg.WrapMode == WrapNone && w > 0 {
		cur := m.buf.Cursor()
		cell := m.layout.blocks[cur.Row].visual.cellForCol(cur.Col)
		next = m.xOffset
		if cell < next {
			next = cell
		} else if cell >= next+w {
			next = cell - w + 1
		}
	}
	if next == m.xOffset {
		return false
	}
	m.xOffset = next
	return true
}

func (m *Model) followCursorY() {
	h := m.visibleRowCount()
	if h <= 0 {
		return
	}
	row := m.layout.rowForPos(m.buf.Cursor())
	y := m.viewport.YOffset
	if row < y {
		m.viewport.SetYOffset(row)
		return
	}
	if row >= y+h {
		m.viewport.SetYOffset(row - h + 1)
	}
}
