package stats

import (
	"fmt"
	"strings"

	dmp "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/iw2rmb/gutterpad/editor"
)

// DiffSummary counts lines added and removed relative to the baseline.
type DiffSummary struct {
	Added   int
	Removed int
}

func (d DiffSummary) IsZero() bool { return d.Added == 0 && d.Removed == 0 }

func (d DiffSummary) String() string {
	return fmt.Sprintf("+%d -%d", d.Added, d.Removed)
}

// Tracker follows an editor's content events and keeps counts and the
// modified state up to date. It is driven from the Bubble Tea update loop
// and is not safe for concurrent use.
type Tracker struct {
	baseline string
	text     string
	counts   Counts

	summary      DiffSummary
	summaryValid bool
}

// NewTracker starts tracking from text, which is also the saved baseline.
func NewTracker(text string) *Tracker {
	t := &Tracker{}
	t.Reset(text)
	return t
}

// Attach subscribes the tracker to content events on bus.
func (t *Tracker) Attach(bus *editor.Bus) (detach func()) {
	return bus.Subscribe(editor.EventContentChanged, func(ev editor.Event) {
		t.Update(ev.Content.Text)
	})
}

// Update records the current text.
func (t *Tracker) Update(text string) {
	if text == t.text {
		return
	}
	t.text = text
	t.counts = Count(text)
	t.summaryValid = false
}

// Reset replaces both the current text and the baseline, as after loading a
// file.
func (t *Tracker) Reset(text string) {
	t.baseline = text
	t.text = text
	t.counts = Count(text)
	t.summary = DiffSummary{}
	t.summaryValid = true
}

// MarkSaved makes the current text the new baseline.
func (t *Tracker) MarkSaved() { t.SetBaseline(t.text) }

// SetBaseline records text as the saved state without touching the current
// text. Hosts that save asynchronously pass the text they wrote.
func (t *Tracker) SetBaseline(text string) {
	if text == t.baseline {
		return
	}
	t.baseline = text
	t.summaryValid = false
}

func (t *Tracker) Counts() Counts { return t.counts }

func (t *Tracker) Text() string { return t.text }

// Modified reports whether the text differs from the baseline. Undoing back
// to the saved text clears it.
func (t *Tracker) Modified() bool { return t.text != t.baseline }

// Summary returns the line diff against the baseline. It is computed lazily
// and cached until the text changes.
func (t *Tracker) Summary() DiffSummary {
	if t.summaryValid {
		return t.summary
	}
	t.summary = diffLines(t.baseline, t.text)
	t.summaryValid = true
	return t.summary
}

func diffLines(before, after string) DiffSummary {
	if before == after {
		return DiffSummary{}
	}
	d := dmp.New()
	a, b, lines := d.DiffLinesToChars(terminate(before), terminate(after))
	diffs := d.DiffCharsToLines(d.DiffMain(a, b, false), lines)

	var s DiffSummary
	for _, df := range diffs {
		n := strings.Count(df.Text, "\n")
		switch df.Type {
		case dmp.DiffInsert:
			s.Added += n
		case dmp.DiffDelete:
			s.Removed += n
		}
	}
	return s
}

// terminate gives the last line a newline so an edit to it counts as a
// changed line rather than a partial one.
func terminate(s string) string {
	if strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
