package buffer

import "testing"

func TestBuffer_EmptyDocumentHasOneLine(t *testing.T) {
	b := New("", Options{})
	if got, want := b.LineCount(), 1; got != want {
		t.Fatalf("line count=%d, want %d", got, want)
	}
	if got := b.Text(); got != "" {
		t.Fatalf("text=%q, want empty", got)
	}
	if got, want := b.Cursor(), (Pos{}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestBuffer_SetCursor_ClampsAndVersions(t *testing.T) {
	b := New("a\nbc", Options{})
	if b.Version() != 0 {
		t.Fatalf("expected version 0, got %d", b.Version())
	}

	b.SetCursor(Pos{Row: 999, Col: 999})
	if got := b.Cursor(); got != (Pos{Row: 1, Col: 2}) {
		t.Fatalf("cursor=%v, want (1,2)", got)
	}
	if b.Version() != 1 {
		t.Fatalf("expected version 1, got %d", b.Version())
	}
	if b.TextVersion() != 0 {
		t.Fatalf("expected text version unchanged, got %d", b.TextVersion())
	}

	b.SetCursor(Pos{Row: 1, Col: 2})
	if b.Version() != 1 {
		t.Fatalf("expected version unchanged, got %d", b.Version())
	}

	b.SetCursor(Pos{Row: -3, Col: -1})
	if got := b.Cursor(); got != (Pos{}) {
		t.Fatalf("cursor=%v, want (0,0)", got)
	}
}

func TestBuffer_SetSelection_NormalizesClampsAndVersions(t *testing.T) {
	b := New("a\nbc", Options{})

	b.SetSelection(Range{
		Start: Pos{Row: 1, Col: 99},
		End:   Pos{Row: 0, Col: -1},
	})

	r, ok := b.Selection()
	if !ok {
		t.Fatalf("expected selection active")
	}
	want := Range{Start: Pos{Row: 0, Col: 0}, End: Pos{Row: 1, Col: 2}}
	if r != want {
		t.Fatalf("selection=%v, want %v", r, want)
	}
	if b.Version() != 1 {
		t.Fatalf("expected version 1, got %d", b.Version())
	}

	// Setting the same effective selection should not bump the version.
	b.SetSelection(Range{Start: Pos{Row: 1, Col: 2}, End: Pos{Row: 0, Col: 0}})
	if b.Version() != 1 {
		t.Fatalf("expected version unchanged, got %d", b.Version())
	}

	b.ClearSelection()
	if _, ok := b.Selection(); ok {
		t.Fatalf("expected selection cleared")
	}
	if b.Version() != 2 {
		t.Fatalf("expected version 2, got %d", b.Version())
	}

	b.ClearSelection()
	if b.Version() != 2 {
		t.Fatalf("expected version unchanged, got %d", b.Version())
	}
}

func TestBuffer_SetText_RoundTrip(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "single-line", in: "hello", want: "hello"},
		{name: "multi-line", in: "a\nbb\n\nccc", want: "a\nbb\n\nccc"},
		{name: "trailing-newline", in: "a\n", want: "a\n"},
		{name: "crlf", in: "a\r\nb", want: "a\nb"},
		{name: "mixed", in: "a\r\nb\rc\nd", want: "a\nb\nc\nd"},
		{name: "unicode", in: "π\nテスト", want: "π\nテスト"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := New("seed\ntext", Options{})
			b.SetCursor(Pos{Row: 1, Col: 2})
			b.SetText(tc.in)
			if got := b.Text(); got != tc.want {
				t.Fatalf("text=%q, want %q", got, tc.want)
			}
			if got := b.Cursor(); got != (Pos{}) {
				t.Fatalf("cursor=%v, want (0,0)", got)
			}
			if b.LineCount() < 1 {
				t.Fatalf("line count=%d, want >= 1", b.LineCount())
			}
		})
	}
}

func TestBuffer_SetText_ClearsHistoryAndSelection(t *testing.T) {
	b := New("ab", Options{})
	b.InsertText("x")
	b.SetSelection(Range{Start: Pos{}, End: Pos{Row: 0, Col: 1}})

	b.SetText("new")
	if b.CanUndo() {
		t.Fatalf("expected undo history cleared")
	}
	if _, ok := b.Selection(); ok {
		t.Fatalf("expected selection cleared")
	}
	last, ok := b.LastChange()
	if !ok {
		t.Fatalf("expected last change")
	}
	if got, want := last.Source, ChangeSourceReset; got != want {
		t.Fatalf("source=%v, want %v", got, want)
	}
}

func TestBuffer_SetText_SameTextAtOriginIsNoOp(t *testing.T) {
	b := New("same", Options{})
	v := b.Version()
	b.SetText("same")
	if got := b.Version(); got != v {
		t.Fatalf("version=%d, want %d", got, v)
	}
}

func TestBuffer_LineAccessors(t *testing.T) {
	b := New("ab\ncde", Options{})
	if got, want := b.Line(1), "cde"; got != want {
		t.Fatalf("line(1)=%q, want %q", got, want)
	}
	if got := b.Line(5); got != "" {
		t.Fatalf("line(5)=%q, want empty", got)
	}
	if got, want := b.LineLen(0), 2; got != want {
		t.Fatalf("line len=%d, want %d", got, want)
	}
	b.SetCursor(Pos{Row: 0, Col: 2})
	if !b.AtLineEnd() {
		t.Fatalf("expected cursor at line end")
	}
}

func TestBuffer_SelectAll(t *testing.T) {
	b := New("ab\ncd", Options{})
	b.SelectAll()
	r, ok := b.Selection()
	if !ok {
		t.Fatalf("expected selection")
	}
	if want := (Range{Start: Pos{}, End: Pos{Row: 1, Col: 2}}); r != want {
		t.Fatalf("selection=%v, want %v", r, want)
	}
	if got, want := b.TextInRange(r), "ab\ncd"; got != want {
		t.Fatalf("selected text=%q, want %q", got, want)
	}

	empty := New("", Options{})
	empty.SelectAll()
	if empty.HasSelection() {
		t.Fatalf("select all on empty doc must not select")
	}
}
