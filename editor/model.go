package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/gutterpad/buffer"
)

// Model is a Bubble Tea component that renders and edits a document with a
// line-number gutter.
//
// Model is a value type, but copies share the underlying document, gutter
// and event bus; the latest copy returned from Update or a setter is the one
// to keep.
type Model struct {
	cfg Config
	buf *buffer.Buffer

	focused  bool
	readOnly bool
	mode     InputMode

	width, height int
	viewport      viewport.Model
	xOffset       int

	layout  *layout
	gut     *gutter
	bus     *Bus
	pending *changeQueue

	// stale forces the next sync to re-render text rows.
	stale bool

	dragging   bool
	dragAnchor buffer.Pos
}

// changeQueue collects buffer changes between syncs.
type changeQueue struct {
	changes []buffer.Change
}

func (q *changeQueue) drain() []buffer.Change {
	out := q.changes
	q.changes = nil
	return out
}

func New(cfg Config) Model {
	cfg = normalizeConfig(cfg)
	m := Model{
		cfg:      cfg,
		buf:      buffer.New(cfg.Text, buffer.Options{HistoryLimit: cfg.HistoryLimit}),
		focused:  true,
		readOnly: cfg.ReadOnly,
		mode:     cfg.InputMode,
		viewport: viewport.New(0, 0),
		layout:   &layout{},
		gut:      newGutter(!cfg.HideLineNums, cfg.GutterMargin, cfg.Metrics),
		bus:      &Bus{},
		pending:  &changeQueue{},
		stale:    true,
	}

	q := m.pending
	m.buf.Observe(func(c buffer.Change) {
		q.changes = append(q.changes, c)
	})
	if cfg.OnChange != nil {
		onChange := cfg.OnChange
		m.bus.Subscribe(EventContentChanged, func(ev Event) { onChange(ev.Content) })
	}

	m.sync(syncOptions{follow: true, fullGutter: true})
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// Events returns the bus the editor publishes on. All copies of a Model share
// one bus.
func (m Model) Events() *Bus { return m.bus }

func (m Model) SetSize(width, height int) Model {
	m.width = max(width, 0)
	m.height = max(height, 0)
	m.viewport.Height = m.height
	m.applyWidths()

	m.stale = true
	m.sync(syncOptions{follow: true, geometry: true})
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.stale = true
		m.invalidateCursorBlock()
		m.sync(syncOptions{follow: true})
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.dragging = false
		m.stale = true
		m.invalidateCursorBlock()
		m.sync(syncOptions{})
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

// SetText replaces the whole document. The cursor moves to the start, the
// selection and undo history are cleared, and the gutter is recomputed and
// fully repainted.
func (m Model) SetText(s string) Model {
	m.buf.SetText(s)
	m.xOffset = 0
	m.stale = true
	m.sync(syncOptions{follow: true, fullGutter: true})
	return m
}

// Text returns the document with lines joined by "\n".
func (m Model) Text() string { return m.buf.Text() }

func (m Model) LineCount() int { return m.buf.LineCount() }

// CursorPosition returns the cursor as (row, grapheme column), both 0-based.
func (m Model) CursorPosition() buffer.Pos { return m.buf.Cursor() }

func (m Model) Selection() (buffer.Range, bool) { return m.buf.Selection() }

func (m Model) InputMode() InputMode { return m.mode }

// CanUndo reports whether an undo step is available. Read-only editors never
// undo.
func (m Model) CanUndo() bool { return !m.readOnly && m.buf.CanUndo() }

func (m Model) CanRedo() bool { return !m.readOnly && m.buf.CanRedo() }

// SetInputMode switches between insert and overwrite typing.
func (m Model) SetInputMode(mode InputMode) Model {
	if mode > ModeOverwrite || mode == m.mode {
		return m
	}
	m.mode = mode
	m.debug("input mode changed", "mode", mode)
	m.bus.emit(Event{Kind: EventModeChanged, Mode: mode})
	return m
}

func (m Model) ReadOnly() bool { return m.readOnly }

// SetReadOnly toggles editing. While read-only, edits are ignored and the
// current-line highlight is not drawn.
func (m Model) SetReadOnly(readOnly bool) Model {
	if readOnly == m.readOnly {
		return m
	}
	m.readOnly = readOnly
	m.stale = true
	m.sync(syncOptions{})
	return m
}

// CurrentLineHighlight returns the block carrying the current-line band.
// ok is false when no band is drawn.
func (m Model) CurrentLineHighlight() (row int, ok bool) {
	if m.readOnly {
		return 0, false
	}
	return m.buf.Cursor().Row, true
}

// GutterStats returns the gutter's width and repaint counters.
func (m Model) GutterStats() GutterStats { return m.gut.snapshot() }

// ScrollBy moves the viewport by delta rows without moving the cursor.
func (m Model) ScrollBy(delta int) Model {
	if delta == 0 {
		return m
	}
	m.viewport.SetYOffset(m.viewport.YOffset + delta)
	m.sync(syncOptions{})
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		var cmd tea.Cmd
		m, cmd = m.updateKey(msg)
		m.sync(syncOptions{})
		return m, cmd
	case tea.MouseMsg:
		return m.updateMouse(msg)
	}
	return m, nil
}

func (m Model) View() string {
	text := m.viewport.View()
	g := m.gut.view()
	if g == "" {
		return text
	}
	return joinGutter(g, text)
}

func (m Model) debug(msg string, keyvals ...any) {
	if m.cfg.Logger != nil {
		m.cfg.Logger.Debug(msg, keyvals...)
	}
}

func (m *Model) applyWidths() {
	m.viewport.Width = max(m.width-m.gut.resolvedWidth(), 0)
}

func (m Model) contentWidth() int { return m.viewport.Width }

func (m Model) visibleRowCount() int {
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h < 0 {
		return 0
	}
	return h
}

// SetGutterMetrics changes how the gutter width is measured. The width is
// recomputed and the gutter fully repainted.
func (m Model) SetGutterMetrics(margin int, metrics TextMetrics) Model {
	m.cfg.GutterMargin = margin
	m.cfg.Metrics = metrics
	m.cfg = normalizeConfig(m.cfg)
	m.gut.setMetrics(m.cfg.GutterMargin, m.cfg.Metrics)
	m.sync(syncOptions{fullGutter: true})
	return m
}
