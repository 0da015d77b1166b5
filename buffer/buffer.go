package buffer

import (
	"strings"

	"github.com/iw2rmb/gutterpad/internal/grapheme"
)

type Options struct {
	HistoryLimit int // default: 1000; negative disables history
}

type selectionState struct {
	active bool
	anchor Pos
	end    Pos
}

// Buffer is the pure document state: text, cursor, and selection.
//
// Buffer is not safe for concurrent use.
type Buffer struct {
	lines       [][]string
	version     uint64
	textVersion uint64

	cursor Pos
	sel    selectionState

	opt  Options
	hist historyState

	lastChange    Change
	hasLastChange bool

	observers []observer
	nextObsID int
}

func New(text string, opt Options) *Buffer {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = 1000
	}
	return &Buffer{
		lines: splitLines(NormalizeNewlines(text)),
		opt:   opt,
	}
}

// Text returns the document joined with '\n'.
func (b *Buffer) Text() string {
	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for _, g := range line {
			sb.WriteString(g)
		}
	}
	return sb.String()
}

// SetText replaces the whole document. The cursor moves to (0,0), the
// selection is cleared and undo history is dropped.
//
// Line breaks are normalized with NormalizeNewlines.
func (b *Buffer) SetText(text string) {
	text = NormalizeNewlines(text)
	before := b.Text()
	change := b.beginChange(ChangeSourceReset)

	b.lines = splitLines(text)
	b.cursor = Pos{}
	b.sel = selectionState{}
	b.hist = historyState{}

	textChanged := before != text
	if !textChanged && change.cursorBefore == b.cursor && !change.selectionBefore.Active {
		return
	}
	b.version++
	if textChanged {
		b.textVersion++
		change.addAppliedEdit(AppliedEdit{
			RangeBefore: fullDocumentRange(before),
			RangeAfter:  fullDocumentRange(text),
			InsertText:  text,
			DeletedText: before,
		})
	}
	b.commitChange(change)
}

// Version increments on every effective change of text, cursor or selection.
func (b *Buffer) Version() uint64 { return b.version }

// TextVersion increments only when the text changes.
func (b *Buffer) TextVersion() uint64 { return b.textVersion }

// LineCount returns the number of logical lines (always >= 1).
func (b *Buffer) LineCount() int { return len(b.lines) }

// Line returns the text of row, or "" when row is out of range.
func (b *Buffer) Line(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return grapheme.Join(b.lines[row])
}

// LineLen returns the grapheme length of row.
func (b *Buffer) LineLen(row int) int { return b.lineLen(row) }

func (b *Buffer) Cursor() Pos { return b.cursor }

// AtLineEnd reports whether the cursor sits after the last grapheme of its row.
func (b *Buffer) AtLineEnd() bool {
	return b.cursor.Col >= b.lineLen(b.cursor.Row)
}

func (b *Buffer) SetCursor(p Pos) {
	next := b.clampPos(p)
	if next == b.cursor {
		return
	}
	change := b.beginChange(ChangeSourceLocal)
	b.cursor = next
	b.version++
	b.commitChange(change)
}

func (b *Buffer) Selection() (Range, bool) {
	if !b.sel.active {
		return Range{}, false
	}
	r := NormalizeRange(Range{Start: b.sel.anchor, End: b.sel.end})
	if r.IsEmpty() {
		return Range{}, false
	}
	return r, true
}

// HasSelection reports whether a non-empty selection is active.
func (b *Buffer) HasSelection() bool {
	_, ok := b.Selection()
	return ok
}

// SelectionRaw returns the raw selection anchor/end without normalization.
//
// This is useful for UI layers that need to preserve the selection direction
// (e.g. shift+click behavior) while still treating empty selections as inactive.
func (b *Buffer) SelectionRaw() (Range, bool) {
	if !b.sel.active || b.sel.anchor == b.sel.end {
		return Range{}, false
	}
	return Range{Start: b.sel.anchor, End: b.sel.end}, true
}

func (b *Buffer) SetSelection(r Range) {
	clamped := ClampRange(r, len(b.lines), b.lineLen)
	next := selectionState{active: true, anchor: clamped.Start, end: clamped.End}
	if clamped.Start == clamped.End {
		next = selectionState{}
	}

	prevRange, prevOK := b.Selection()
	nextRange, nextOK := Range{}, next.active
	if nextOK {
		nextRange = NormalizeRange(clamped)
	}
	if prevOK == nextOK && (!prevOK || prevRange == nextRange) {
		b.sel = next
		return
	}

	change := b.beginChange(ChangeSourceLocal)
	b.sel = next
	b.version++
	b.commitChange(change)
}

// SelectAll selects the whole document and moves the cursor to its end.
func (b *Buffer) SelectAll() {
	end := b.docEnd()
	if end == (Pos{}) {
		return
	}
	change := b.beginChange(ChangeSourceLocal)
	prevCursor, prevSel := b.cursor, b.sel
	b.cursor = end
	b.sel = selectionState{active: true, anchor: Pos{}, end: end}
	if prevCursor == b.cursor && selectionStateEqual(prevSel, b.sel) {
		return
	}
	b.version++
	b.commitChange(change)
}

func (b *Buffer) ClearSelection() {
	if !b.sel.active {
		return
	}
	if _, ok := b.Selection(); !ok {
		b.sel = selectionState{}
		return
	}
	change := b.beginChange(ChangeSourceLocal)
	b.sel = selectionState{}
	b.version++
	b.commitChange(change)
}

// TextInRange returns the document text covered by r after clamping.
func (b *Buffer) TextInRange(r Range) string {
	return textForLinesRange(b.lines, NormalizeRange(ClampRange(r, len(b.lines), b.lineLen)))
}

func (b *Buffer) lineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return len(b.lines[row])
}

func (b *Buffer) clampPos(p Pos) Pos {
	return ClampPos(p, len(b.lines), b.lineLen)
}

func (b *Buffer) docEnd() Pos {
	last := len(b.lines) - 1
	return Pos{Row: last, Col: len(b.lines[last])}
}

func splitLines(text string) [][]string {
	parts := strings.Split(text, "\n")
	lines := make([][]string, 0, len(parts))
	for _, s := range parts {
		lines = append(lines, grapheme.Split(s))
	}
	if len(lines) == 0 {
		lines = append(lines, nil)
	}
	return lines
}
