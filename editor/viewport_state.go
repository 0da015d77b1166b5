package editor

import "github.com/iw2rmb/gutterpad/buffer"

// ViewportState is a stable host-facing snapshot of editor camera state.
type ViewportState struct {
	// TopVisualRow is the visual row index rendered at viewport screen row 0.
	TopVisualRow int
	// VisibleRows is the number of content rows available for rendering.
	VisibleRows int
	// TotalRows is the number of visual rows in the document.
	TotalRows int
	// LeftCellOffset is the horizontal cell offset in WrapNone mode.
	LeftCellOffset int
	GutterWidth    int
	// WrapMode is the active wrapping mode used to interpret coordinates.
	WrapMode WrapMode
}

// ViewportState returns the current host-facing viewport state.
func (m Model) ViewportState() ViewportState {
	return ViewportState{
		TopVisualRow:   max(m.viewport.YOffset, 0),
		VisibleRows:    m.visibleRowCount(),
		TotalRows:      m.layout.totalRows(),
		LeftCellOffset: m.xOffset,
		GutterWidth:    m.gut.resolvedWidth(),
		WrapMode:       m.cfg.WrapMode,
	}
}

// ScreenToDoc maps editor-local screen coordinates, gutter included, to a
// document position. Clicks in the gutter map to the row's first column.
func (m Model) ScreenToDoc(x, y int) buffer.Pos {
	pos, inGutter := m.screenToDocPos(x, y)
	if inGutter {
		pos.Col = 0
	}
	return pos
}
