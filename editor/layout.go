package editor

import "github.com/iw2rmb/gutterpad/buffer"

type layoutKey struct {
	textVersion uint64
	width       int // 0 for WrapNone
	tabWidth    int
	wrap        WrapMode
}

type blockLayout struct {
	visual   visualLine
	segments []wrappedSegment
	firstRow int
}

type rowRef struct {
	block, seg int
}

// layout is the visual row model of the whole document: every logical line
// (block) split into wrapped segments.
type layout struct {
	key    layoutKey
	valid  bool
	blocks []blockLayout
	rows   []rowRef
}

func buildLayout(buf *buffer.Buffer, key layoutKey) *layout {
	n := buf.LineCount()
	l := &layout{
		key:    key,
		valid:  true,
		blocks: make([]blockLayout, n),
		rows:   make([]rowRef, 0, n),
	}
	for row := range n {
		vl := newVisualLine(buf.Line(row), key.tabWidth)
		segs := wrapSegments(vl, key.wrap, key.width)
		l.blocks[row] = blockLayout{visual: vl, segments: segs, firstRow: len(l.rows)}
		for i := range segs {
			l.rows = append(l.rows, rowRef{block: row, seg: i})
		}
	}
	return l
}

func (l *layout) totalRows() int { return len(l.rows) }

// rowForPos returns the visual row p renders on.
func (l *layout) rowForPos(p buffer.Pos) int {
	if len(l.blocks) == 0 {
		return 0
	}
	b := &l.blocks[clampInt(p.Row, 0, len(l.blocks)-1)]
	return b.firstRow + segmentForCol(b.segments, p.Col)
}

// blockRows returns the half-open visual row span of block.
func (l *layout) blockRows(block int) (top, bottom int) {
	if block < 0 || block >= len(l.blocks) {
		return 0, 0
	}
	b := &l.blocks[block]
	return b.firstRow, b.firstRow + len(b.segments)
}

// viewportBlocks exposes a layout as LineMetrics for a viewport whose first
// row is top.
type viewportBlocks struct {
	l   *layout
	top int
}

func (v viewportBlocks) FirstVisibleBlock() (block, top int) {
	if v.top < 0 || v.top >= len(v.l.rows) {
		return len(v.l.blocks), 0
	}
	ref := v.l.rows[v.top]
	return ref.block, -ref.seg
}

func (v viewportBlocks) BlockCount() int { return len(v.l.blocks) }

func (v viewportBlocks) BlockHeight(block int) int {
	if block < 0 || block >= len(v.l.blocks) {
		return 0
	}
	return len(v.l.blocks[block].segments)
}
