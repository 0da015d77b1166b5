package buffer

import "testing"

func TestBuffer_InsertText_MultiLine(t *testing.T) {
	b := New("ab", Options{})
	b.SetCursor(Pos{Row: 0, Col: 1})
	v := b.Version()

	b.InsertText("X\nY")
	if got, want := b.Text(), "aX\nYb"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 1, Col: 1}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	if got := b.Version(); got != v+1 {
		t.Fatalf("version=%d, want %d", got, v+1)
	}
	if got := b.TextVersion(); got != 1 {
		t.Fatalf("text version=%d, want 1", got)
	}
}

func TestBuffer_InsertText_ReplacesSelection(t *testing.T) {
	b := New("hello", Options{})
	b.SetSelection(Range{Start: Pos{Row: 0, Col: 1}, End: Pos{Row: 0, Col: 4}}) // "ell"

	b.InsertText("i")
	if got, want := b.Text(), "hio"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 0, Col: 2}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	if _, ok := b.Selection(); ok {
		t.Fatalf("expected selection cleared")
	}
}

func TestBuffer_InsertText_Unicode(t *testing.T) {
	b := New("", Options{})
	b.InsertText("π")
	b.InsertText("テ")

	if got, want := b.Text(), "πテ"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 0, Col: 2}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestBuffer_DeleteBackward_JoinsLinesAtSOL(t *testing.T) {
	b := New("ab\ncd", Options{})
	b.SetCursor(Pos{Row: 1, Col: 0})

	b.DeleteBackward()
	if got, want := b.Text(), "abcd"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 0, Col: 2}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestBuffer_DeleteForward_JoinsLinesAtEOL(t *testing.T) {
	b := New("ab\ncd", Options{})
	b.SetCursor(Pos{Row: 0, Col: 2})

	b.DeleteForward()
	if got, want := b.Text(), "abcd"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 0, Col: 2}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestBuffer_DeleteAtDocumentBoundsIsNoOp(t *testing.T) {
	b := New("ab", Options{})
	v := b.Version()
	b.DeleteBackward()
	if got := b.Version(); got != v {
		t.Fatalf("backspace at start bumped version: %d", got)
	}
	b.SetCursor(Pos{Row: 0, Col: 2})
	v = b.Version()
	b.DeleteForward()
	if got := b.Version(); got != v {
		t.Fatalf("delete at end bumped version: %d", got)
	}
}

func TestBuffer_OverwriteText(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		cursor     Pos
		sel        *Range
		typed      string
		wantText   string
		wantCursor Pos
	}{
		{
			name:       "replaces-grapheme-ahead",
			text:       "abc",
			cursor:     Pos{Row: 0, Col: 1},
			typed:      "X",
			wantText:   "aXc",
			wantCursor: Pos{Row: 0, Col: 2},
		},
		{
			name:       "appends-at-line-end",
			text:       "ab\ncd",
			cursor:     Pos{Row: 0, Col: 2},
			typed:      "X",
			wantText:   "abX\ncd",
			wantCursor: Pos{Row: 0, Col: 3},
		},
		{
			name:       "appends-at-document-end",
			text:       "ab",
			cursor:     Pos{Row: 0, Col: 2},
			typed:      "X",
			wantText:   "abX",
			wantCursor: Pos{Row: 0, Col: 3},
		},
		{
			name:       "selection-takes-precedence",
			text:       "hello",
			cursor:     Pos{Row: 0, Col: 4},
			sel:        &Range{Start: Pos{Row: 0, Col: 1}, End: Pos{Row: 0, Col: 4}},
			typed:      "X",
			wantText:   "hXo",
			wantCursor: Pos{Row: 0, Col: 2},
		},
		{
			name:       "multi-grapheme-stops-at-line-end",
			text:       "ab\ncd",
			cursor:     Pos{Row: 0, Col: 1},
			typed:      "XYZ",
			wantText:   "aXYZ\ncd",
			wantCursor: Pos{Row: 0, Col: 4},
		},
		{
			name:       "same-text-advances-cursor",
			text:       "abc",
			cursor:     Pos{Row: 0, Col: 1},
			typed:      "b",
			wantText:   "abc",
			wantCursor: Pos{Row: 0, Col: 2},
		},
		{
			name:       "wide-grapheme-replaced-whole",
			text:       "aテb",
			cursor:     Pos{Row: 0, Col: 1},
			typed:      "x",
			wantText:   "axb",
			wantCursor: Pos{Row: 0, Col: 2},
		},
		{
			name:       "newline-inserts",
			text:       "abc",
			cursor:     Pos{Row: 0, Col: 1},
			typed:      "\n",
			wantText:   "a\nbc",
			wantCursor: Pos{Row: 1, Col: 0},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := New(tc.text, Options{})
			b.SetCursor(tc.cursor)
			if tc.sel != nil {
				b.SetSelection(*tc.sel)
			}
			b.OverwriteText(tc.typed)
			if got := b.Text(); got != tc.wantText {
				t.Fatalf("text=%q, want %q", got, tc.wantText)
			}
			if got := b.Cursor(); got != tc.wantCursor {
				t.Fatalf("cursor=%v, want %v", got, tc.wantCursor)
			}
		})
	}
}

func TestBuffer_OverwriteText_PreservesLengthAndIsOneUndoStep(t *testing.T) {
	b := New("abcd", Options{})
	b.SetCursor(Pos{Row: 0, Col: 1})

	b.OverwriteText("X")
	if got, want := len([]rune(b.Text())), 4; got != want {
		t.Fatalf("length=%d, want %d", got, want)
	}

	if !b.Undo() {
		t.Fatalf("expected undo")
	}
	if got, want := b.Text(), "abcd"; got != want {
		t.Fatalf("text after undo=%q, want %q", got, want)
	}
	if b.CanUndo() {
		t.Fatalf("overwrite must be a single undo step")
	}
}

func TestBuffer_InsertText_CombiningMarkJoinsPreviousGrapheme(t *testing.T) {
	b := New("abc", Options{})
	b.SetCursor(Pos{Row: 0, Col: 2})

	b.InsertText("\u0301")
	if got, want := b.Text(), "ab\u0301c"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.LineLen(0), 3; got != want {
		t.Fatalf("line len=%d, want %d", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 0, Col: 2}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestBuffer_InsertText_MultiLineResegmentsSeams(t *testing.T) {
	b := New("ab", Options{})
	b.SetCursor(Pos{Row: 0, Col: 1})

	b.InsertText("\u0301\nz")
	if got, want := b.Text(), "a\u0301\nzb"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.LineLen(0), 1; got != want {
		t.Fatalf("first line len=%d, want %d", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 1, Col: 1}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestBuffer_OverwriteText_CombiningMarkReplacesNothing(t *testing.T) {
	b := New("abc", Options{})
	b.SetCursor(Pos{Row: 0, Col: 2})

	b.OverwriteText("\u0301")
	if got, want := b.Text(), "ab\u0301c"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.LineLen(0), 3; got != want {
		t.Fatalf("line len=%d, want %d", got, want)
	}

	// A mark followed by a base character still overwrites one grapheme.
	b.OverwriteText("\u0301x")
	if got, want := b.Text(), "ab\u0301\u0301x"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 0, Col: 3}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestBuffer_DeleteBackward_ResegmentsJoin(t *testing.T) {
	// Hangul leading consonant and vowel jamo form one syllable once the
	// letter between them is gone.
	b := New("\u1100a\u1161", Options{})
	if got, want := b.LineLen(0), 3; got != want {
		t.Fatalf("initial line len=%d, want %d", got, want)
	}
	b.SetCursor(Pos{Row: 0, Col: 2})
	b.DeleteBackward()
	if got, want := b.Text(), "\u1100\u1161"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.LineLen(0), 1; got != want {
		t.Fatalf("line len=%d, want %d", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 0, Col: 1}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}
