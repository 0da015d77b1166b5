package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/gutterpad/editor"
	"github.com/iw2rmb/gutterpad/internal/config"
	"github.com/iw2rmb/gutterpad/internal/logging"
)

func newTestApp(t *testing.T, text string) (app, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.txt")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))

	doc, loaded, err := loadDocument(path)
	require.NoError(t, err)

	a := newApp(config.Default(), doc, loaded, logging.New(io.Discard, "debug"))
	a = send(t, a, tea.WindowSizeMsg{Width: 60, Height: 10})
	return a, path
}

func send(t *testing.T, a app, msgs ...tea.Msg) app {
	t.Helper()
	for _, msg := range msgs {
		var next tea.Model
		next, _ = a.Update(msg)
		a = next.(app)
	}
	return a
}

func sendCmd(t *testing.T, a app, msg tea.Msg) (app, tea.Cmd) {
	t.Helper()
	next, cmd := a.Update(msg)
	return next.(app), cmd
}

func runes(s string) []tea.Msg {
	var out []tea.Msg
	for _, r := range s {
		out = append(out, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return out
}

func TestAppStatusLine(t *testing.T) {
	a, _ := newTestApp(t, "hello world\nsecond")

	info := a.status()
	assert.Equal(t, "Ln 1 : Col 1  INS  18 chars | 3 words", info.left())
	assert.False(t, info.modified)

	a = send(t, a, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnd})
	assert.Equal(t, "Ln 2 : Col 7  INS  18 chars | 3 words", a.status().left())

	view := ansi.Strip(a.View())
	assert.Contains(t, view, "Ln 2 : Col 7")
	assert.Contains(t, view, "doc.txt")
}

func TestAppModifiedMarker(t *testing.T) {
	a, _ := newTestApp(t, "hello world\nsecond")
	a = send(t, a, runes("X")...)

	info := a.status()
	assert.True(t, info.modified)
	assert.Contains(t, info.right(), "doc.txt * +1 -1")
	assert.Equal(t, 19, info.counts.Chars)
}

func TestAppInsertKeyTogglesMode(t *testing.T) {
	a, _ := newTestApp(t, "abc")
	a = send(t, a, tea.KeyMsg{Type: tea.KeyInsert})
	assert.Equal(t, editor.ModeOverwrite, a.editor.InputMode())
	assert.Contains(t, a.status().left(), "OVR")

	a = send(t, a, runes("XY")...)
	assert.Equal(t, "XYc", a.editor.Text())
}

func TestAppQuitUnmodified(t *testing.T) {
	a, _ := newTestApp(t, "abc")
	_, cmd := sendCmd(t, a, tea.KeyMsg{Type: tea.KeyCtrlQ})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestAppQuitPromptsOnceWhenModified(t *testing.T) {
	a, _ := newTestApp(t, "abc")
	a = send(t, a, runes("z")...)

	a, cmd := sendCmd(t, a, tea.KeyMsg{Type: tea.KeyCtrlQ})
	assert.Nil(t, cmd)
	assert.Equal(t, quitPrompt, a.status().right())

	// Any other key disarms the prompt.
	a = send(t, a, tea.KeyMsg{Type: tea.KeyLeft})
	a, cmd = sendCmd(t, a, tea.KeyMsg{Type: tea.KeyCtrlQ})
	assert.Nil(t, cmd)

	_, cmd = sendCmd(t, a, tea.KeyMsg{Type: tea.KeyCtrlQ})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestAppSave(t *testing.T) {
	a, path := newTestApp(t, "one\r\ntwo\r\n")
	assert.False(t, a.tracker.Modified(), "CRLF input is not a modification")

	a = send(t, a, runes("> ")...)
	require.True(t, a.tracker.Modified())

	a, cmd := sendCmd(t, a, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	assert.True(t, a.saving)

	msg := cmd()
	require.IsType(t, savedMsg{}, msg)
	a = send(t, a, msg)

	assert.False(t, a.saving)
	assert.False(t, a.tracker.Modified())
	assert.Equal(t, "saved doc.txt", a.status().right())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "> one\r\ntwo\r\n", string(data))
}

func TestAppSaveErrorKeepsModified(t *testing.T) {
	a, path := newTestApp(t, "abc")
	a = send(t, a, runes("!")...)
	a.doc.Path = filepath.Join(path, "nested", "x.txt")

	a, cmd := sendCmd(t, a, tea.KeyMsg{Type: tea.KeyCtrlS})
	a = send(t, a, cmd())

	assert.True(t, a.tracker.Modified())
	assert.Contains(t, a.status().right(), "save ")
}

func TestAppReadOnlyToggle(t *testing.T) {
	a, _ := newTestApp(t, "abc")
	a = send(t, a, tea.KeyMsg{Type: tea.KeyCtrlR})
	assert.True(t, a.editor.ReadOnly())
	assert.Contains(t, a.status().left(), "INS RO")

	a = send(t, a, runes("x")...)
	assert.Equal(t, "abc", a.editor.Text())

	a = send(t, a, tea.KeyMsg{Type: tea.KeyCtrlR})
	assert.False(t, a.editor.ReadOnly())
}

func TestAppHelpToggleResizesEditor(t *testing.T) {
	a, _ := newTestApp(t, "abc")
	short := a.editor.ViewportState().VisibleRows
	assert.Equal(t, 8, short)

	a = send(t, a, tea.KeyMsg{Type: tea.KeyCtrlG})
	assert.True(t, a.help.ShowAll)
	assert.Less(t, a.editor.ViewportState().VisibleRows, short)

	a = send(t, a, tea.KeyMsg{Type: tea.KeyCtrlG})
	assert.Equal(t, short, a.editor.ViewportState().VisibleRows)
}

func TestEditorConfigFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Editor.Wrap = config.WrapGrapheme
	cfg.Editor.Overwrite = true
	cfg.Editor.LineNumbers = false
	cfg.Editor.Highlight = false

	ec := editorConfig(cfg, nil)
	assert.Equal(t, editor.WrapGrapheme, ec.WrapMode)
	assert.Equal(t, editor.ModeOverwrite, ec.InputMode)
	assert.True(t, ec.HideLineNums)
	assert.Nil(t, ec.Highlighter)
	assert.NotNil(t, ec.Clipboard)
}

func TestAppSaveMarksNewFileExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.txt")
	doc, text, err := loadDocument(path)
	require.NoError(t, err)
	require.False(t, doc.Exists)

	a := newApp(config.Default(), doc, text, logging.New(io.Discard, "info"))
	a = send(t, a, runes("hi")...)
	a, cmd := sendCmd(t, a, tea.KeyMsg{Type: tea.KeyCtrlS})
	msg := cmd()
	assert.False(t, doc.Exists, "state changes only when the result reaches Update")

	a = send(t, a, msg)
	assert.True(t, a.doc.Exists)
	assert.FileExists(t, path)
}

func TestAppHelpTracksUndoAvailability(t *testing.T) {
	a, _ := newTestApp(t, "abc")
	k := a.helpKeys()
	assert.False(t, k.editor.Undo.Enabled())
	assert.False(t, k.editor.Redo.Enabled())

	a = send(t, a, runes("x")...)
	assert.True(t, a.helpKeys().editor.Undo.Enabled())

	a = send(t, a, tea.KeyMsg{Type: tea.KeyCtrlZ})
	assert.Equal(t, "abc", a.editor.Text())
	assert.True(t, a.helpKeys().editor.Redo.Enabled())
	assert.True(t, a.keys.editor.Undo.Enabled(), "the host's own bindings stay enabled")

	a = send(t, a, tea.KeyMsg{Type: tea.KeyCtrlR})
	assert.False(t, a.helpKeys().editor.Redo.Enabled(), "read-only hides history keys")
}
