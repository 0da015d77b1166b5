package editor

import "testing"

func TestVisualLine_TabsAndWideGraphemes(t *testing.T) {
	v := newVisualLine("a\tb", 4)
	if got, want := v.width(), 5; got != want {
		t.Fatalf("width: got %d, want %d", got, want)
	}
	if got, want := v.cellForCol(2), 4; got != want {
		t.Fatalf("cellForCol(2): got %d, want %d", got, want)
	}
	if got, want := v.displayText(1), "   "; got != want {
		t.Fatalf("tab display: got %q, want %q", got, want)
	}

	w := newVisualLine("日本", 4)
	if got, want := w.width(), 4; got != want {
		t.Fatalf("wide width: got %d, want %d", got, want)
	}
	if got, want := w.cellForCol(1), 2; got != want {
		t.Fatalf("wide cellForCol(1): got %d, want %d", got, want)
	}
}

func TestVisualLine_ColForCell(t *testing.T) {
	v := newVisualLine("a\tb", 4)
	cases := []struct {
		cell int
		want int
	}{
		{cell: -3, want: 0},
		{cell: 0, want: 0},
		{cell: 1, want: 1},
		{cell: 3, want: 1},
		{cell: 4, want: 2},
		{cell: 9, want: 3},
	}
	for _, tc := range cases {
		if got := v.colForCell(tc.cell); got != tc.want {
			t.Fatalf("colForCell(%d): got %d, want %d", tc.cell, got, tc.want)
		}
	}
}

func TestVisualLine_ControlCharactersShowPlaceholder(t *testing.T) {
	v := newVisualLine("a\x01", 4)
	if got := v.displayText(1); got == "" || got[0] != '?' {
		t.Fatalf("control display: got %q, want leading ?", got)
	}
}
