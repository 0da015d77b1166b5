package editor

import "github.com/atotto/clipboard"

// Clipboard provides editor-level clipboard integration.
//
// Errors must not crash the UI; failures are ignored and logged at debug
// level.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}

// SystemClipboard uses the operating system clipboard.
type SystemClipboard struct{}

func (SystemClipboard) ReadText() (string, error) { return clipboard.ReadAll() }

func (SystemClipboard) WriteText(s string) error { return clipboard.WriteAll(s) }

// Available reports whether a system clipboard backend was found.
func (SystemClipboard) Available() bool { return !clipboard.Unsupported }

// MemoryClipboard keeps clipboard contents in process memory.
type MemoryClipboard struct {
	text string
}

func (c *MemoryClipboard) ReadText() (string, error) { return c.text, nil }

func (c *MemoryClipboard) WriteText(s string) error {
	c.text = s
	return nil
}

// copySelection reports whether the selection reached the clipboard.
func (m Model) copySelection() bool {
	if m.cfg.Clipboard == nil {
		return false
	}
	r, ok := m.buf.Selection()
	if !ok {
		return false
	}
	s := m.buf.TextInRange(r)
	if s == "" {
		return false
	}
	if err := m.cfg.Clipboard.WriteText(s); err != nil {
		m.debug("clipboard write failed", "err", err)
		return false
	}
	return true
}

func (m Model) cutSelection() {
	if m.cfg.Clipboard == nil {
		return
	}
	// The selection stays in the document when the clipboard rejects it.
	if !m.copySelection() {
		return
	}
	m.buf.DeleteSelection()
}

// pasteClipboard always inserts, regardless of the input mode.
func (m Model) pasteClipboard() {
	if m.cfg.Clipboard == nil {
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil {
		m.debug("clipboard read failed", "err", err)
		return
	}
	if s == "" {
		return
	}
	m.buf.InsertText(s)
}
