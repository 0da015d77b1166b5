package buffer

import (
	"strings"

	"github.com/iw2rmb/gutterpad/internal/grapheme"
)

// InsertText inserts text at the cursor, or replaces the active selection.
func (b *Buffer) InsertText(s string) {
	s = NormalizeNewlines(s)
	if s == "" {
		b.DeleteSelection()
		return
	}
	r, ok := b.Selection()
	if !ok {
		r = Range{Start: b.cursor, End: b.cursor}
	}
	b.editRange(r, s)
}

// InsertNewline inserts a line break at the cursor, or replaces the active
// selection.
func (b *Buffer) InsertNewline() {
	b.InsertText("\n")
}

// OverwriteText types s over the graphemes ahead of the cursor.
//
// An active selection takes precedence and is replaced exactly as InsertText
// would. Otherwise one grapheme ahead of the cursor is replaced per grapheme
// of s, never past the end of the cursor row; at the end of a row s is simply
// inserted. Text containing a line break is always inserted.
func (b *Buffer) OverwriteText(s string) {
	s = NormalizeNewlines(s)
	if s == "" {
		return
	}
	if b.HasSelection() || strings.ContainsRune(s, '\n') {
		b.InsertText(s)
		return
	}

	start := b.cursor
	n := grapheme.Count(s)
	if start.Col > 0 {
		// A leading combining mark joins the grapheme before the cursor and
		// replaces nothing.
		prev := b.lines[start.Row][start.Col-1]
		n = grapheme.Count(prev+s) - 1
	}
	if n == 0 {
		b.InsertText(s)
		return
	}
	end := Pos{Row: start.Row, Col: min(start.Col+n, b.lineLen(start.Row))}
	r := Range{Start: start, End: end}
	if textForLinesRange(b.lines, r) == s {
		// Typing the same text over itself only advances the cursor.
		b.SetCursor(end)
		return
	}
	b.editRange(r, s)
}

// DeleteBackward applies backspace semantics.
func (b *Buffer) DeleteBackward() {
	if b.HasSelection() {
		b.DeleteSelection()
		return
	}

	row, col := b.cursor.Row, b.cursor.Col
	switch {
	case row == 0 && col == 0:
		return
	case col > 0:
		b.editRange(Range{Start: Pos{Row: row, Col: col - 1}, End: b.cursor}, "")
	default:
		// Join with previous line (delete the newline).
		prev := row - 1
		b.editRange(Range{Start: Pos{Row: prev, Col: len(b.lines[prev])}, End: b.cursor}, "")
	}
}

// DeleteForward applies delete-key semantics.
func (b *Buffer) DeleteForward() {
	if b.HasSelection() {
		b.DeleteSelection()
		return
	}

	row, col := b.cursor.Row, b.cursor.Col
	lastRow := len(b.lines) - 1
	switch {
	case row == lastRow && col == len(b.lines[lastRow]):
		return
	case col < len(b.lines[row]):
		b.editRange(Range{Start: b.cursor, End: Pos{Row: row, Col: col + 1}}, "")
	default:
		// Join with next line (delete the newline).
		b.editRange(Range{Start: b.cursor, End: Pos{Row: row + 1, Col: 0}}, "")
	}
}

// DeleteSelection deletes the active selection, if any.
func (b *Buffer) DeleteSelection() {
	r, ok := b.Selection()
	if !ok {
		return
	}
	b.editRange(r, "")
}

// editRange replaces r with text as a single undoable local change.
func (b *Buffer) editRange(r Range, text string) bool {
	prev := b.snapshot()
	change := b.beginChange(ChangeSourceLocal)

	nextCursor, applied, changed := b.replaceRange(r, text)
	if !changed {
		return false
	}

	b.cursor = b.clampPos(nextCursor)
	b.sel = selectionState{}
	b.version++
	b.textVersion++
	b.recordUndo(prev)
	change.addAppliedEdit(applied)
	b.commitChange(change)
	return true
}

func (b *Buffer) replaceRange(r Range, text string) (nextCursor Pos, applied AppliedEdit, changed bool) {
	r = NormalizeRange(ClampRange(r, len(b.lines), b.lineLen))
	if r.IsEmpty() && text == "" {
		return b.cursor, AppliedEdit{}, false
	}

	deletedText := textForLinesRange(b.lines, r)
	if deletedText == text {
		return b.cursor, AppliedEdit{}, false
	}

	startRow, startCol := r.Start.Row, r.Start.Col
	endRow, endCol := r.End.Row, r.End.Col

	prefix := grapheme.Join(b.lines[startRow][:startCol])
	suffix := grapheme.Join(b.lines[endRow][endCol:])

	// Lines are re-segmented across the seams so a combining mark or joiner
	// merges with its neighbour instead of standing alone.
	parts := strings.Split(text, "\n")
	repl := make([][]string, 0, len(parts))
	if len(parts) == 1 {
		line, col := joinSegments(prefix+parts[0], suffix)
		repl = append(repl, line)
		nextCursor = Pos{Row: startRow, Col: col}
	} else {
		first, _ := joinSegments(prefix+parts[0], "")
		repl = append(repl, first)
		for _, p := range parts[1 : len(parts)-1] {
			repl = append(repl, grapheme.Split(p))
		}
		last, col := joinSegments(parts[len(parts)-1], suffix)
		repl = append(repl, last)
		nextCursor = Pos{Row: startRow + len(parts) - 1, Col: col}
	}

	before := b.lines[:startRow]
	after := b.lines[endRow+1:]
	out := make([][]string, 0, len(before)+len(repl)+len(after))
	out = append(out, before...)
	out = append(out, repl...)
	out = append(out, after...)
	if len(out) == 0 {
		out = [][]string{nil}
	}

	b.lines = out
	applied = AppliedEdit{
		RangeBefore: r,
		RangeAfter:  Range{Start: r.Start, End: nextCursor},
		InsertText:  text,
		DeletedText: deletedText,
	}
	return nextCursor, applied, true
}

// joinSegments splits head+tail into graphemes and returns the index of the
// first grapheme that starts at or after the seam. A cluster spanning the seam
// counts as part of head.
func joinSegments(head, tail string) ([]string, int) {
	line := grapheme.Split(head + tail)
	off, col := 0, 0
	for col < len(line) && off < len(head) {
		off += len(line[col])
		col++
	}
	return line, col
}

func textForLinesRange(lines [][]string, r Range) string {
	r = NormalizeRange(r)
	if r.IsEmpty() {
		return ""
	}

	startRow, startCol := r.Start.Row, r.Start.Col
	endRow, endCol := r.End.Row, r.End.Col

	if startRow == endRow {
		return grapheme.Join(lines[startRow][startCol:endCol])
	}

	var sb strings.Builder
	for row := startRow; row <= endRow; row++ {
		if row > startRow {
			sb.WriteByte('\n')
		}
		partStart, partEnd := 0, len(lines[row])
		if row == startRow {
			partStart = startCol
		}
		if row == endRow {
			partEnd = endCol
		}
		sb.WriteString(grapheme.Join(lines[row][partStart:partEnd]))
	}
	return sb.String()
}
