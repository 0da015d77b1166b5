package stats

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/gutterpad/editor"
)

func TestTrackerModified(t *testing.T) {
	tr := NewTracker("a\nb\nc")
	assert.False(t, tr.Modified())
	assert.True(t, tr.Summary().IsZero())

	tr.Update("a\nX\nc")
	assert.True(t, tr.Modified())
	assert.Equal(t, DiffSummary{Added: 1, Removed: 1}, tr.Summary())
	assert.Equal(t, "+1 -1", tr.Summary().String())

	tr.Update("a\nb\nc")
	assert.False(t, tr.Modified(), "returning to the baseline clears the flag")
	assert.True(t, tr.Summary().IsZero())
}

func TestTrackerSummary(t *testing.T) {
	tests := []struct {
		name          string
		before, after string
		want          DiffSummary
	}{
		{"append line", "a", "a\nb", DiffSummary{Added: 1}},
		{"remove line", "a\nb", "a", DiffSummary{Removed: 1}},
		{"edit last line", "a\nb", "a\nbc", DiffSummary{Added: 1, Removed: 1}},
		{"from empty", "", "x\ny", DiffSummary{Added: 2, Removed: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTracker(tt.before)
			tr.Update(tt.after)
			assert.Equal(t, tt.want, tr.Summary())
		})
	}
}

func TestTrackerMarkSaved(t *testing.T) {
	tr := NewTracker("one")
	tr.Update("one two")
	require.True(t, tr.Modified())

	tr.MarkSaved()
	assert.False(t, tr.Modified())
	assert.Equal(t, "one two", tr.Text())
	assert.Equal(t, 2, tr.Counts().Words)
}

func TestTrackerReset(t *testing.T) {
	tr := NewTracker("old")
	tr.Update("older")
	tr.Reset("new text")

	assert.False(t, tr.Modified())
	assert.Equal(t, Counts{Chars: 8, Words: 2, Lines: 1}, tr.Counts())
}

func TestTrackerFollowsEditor(t *testing.T) {
	m := editor.New(editor.Config{Text: "hi"})
	tr := NewTracker(m.Text())
	detach := tr.Attach(m.Events())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	for _, r := range " there" {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}

	assert.Equal(t, "hi there", tr.Text())
	assert.Equal(t, Counts{Chars: 8, Words: 2, Lines: 1}, tr.Counts())
	assert.True(t, tr.Modified())

	detach()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'!'}})
	assert.Equal(t, "hi there!", m.Text())
	assert.Equal(t, "hi there", tr.Text(), "detached tracker stops following")
}

func TestTrackerSetBaselineKeepsLaterEdits(t *testing.T) {
	tr := NewTracker("a")
	tr.Update("ab")
	written := tr.Text()
	tr.Update("abc")

	tr.SetBaseline(written)
	assert.True(t, tr.Modified())
	assert.Equal(t, DiffSummary{Added: 1, Removed: 1}, tr.Summary())

	tr.Update("ab")
	assert.False(t, tr.Modified())
}
