package main

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/iw2rmb/gutterpad/editor"
	"github.com/iw2rmb/gutterpad/internal/config"
	"github.com/iw2rmb/gutterpad/stats"
)

const quitPrompt = "unsaved changes: ctrl+q again to quit, ctrl+s to save"

// savedMsg reports the result of a save started with saveCmd. text is what
// was written, which may lag behind the editor.
type savedMsg struct {
	text string
	err  error
}

// app hosts one editor with a status line and a help line below it.
type app struct {
	editor  editor.Model
	tracker *stats.Tracker
	doc     *document
	keys    appKeys
	help    help.Model
	styles  statusStyles
	logger  *log.Logger

	language  string
	message   string
	quitArmed bool
	saving    bool

	width, height int
}

func newApp(cfg config.Config, doc *document, text string, logger *log.Logger) app {
	ecfg := editorConfig(cfg, logger)
	ecfg.Text = text
	ed := editor.New(ecfg)

	// The tracker starts from the editor's normalized text so a CRLF file
	// is not reported as modified.
	tr := stats.NewTracker(ed.Text())
	tr.Attach(ed.Events())

	return app{
		editor:   ed,
		tracker:  tr,
		doc:      doc,
		keys:     newAppKeys(ecfg.KeyMap),
		help:     help.New(),
		styles:   newStatusStyles(cfg.Theme),
		logger:   logger,
		language: detectLanguage(doc.Path, text),
	}
}

func editorConfig(cfg config.Config, logger *log.Logger) editor.Config {
	ec := editor.Config{
		ReadOnly:     cfg.Editor.ReadOnly,
		WrapMode:     wrapMode(cfg.Editor.Wrap),
		TabWidth:     cfg.Editor.TabWidth,
		HideLineNums: !cfg.Editor.LineNumbers,
		GutterMargin: cfg.Editor.GutterMargin,
		Style:        editorStyle(cfg.Theme),
		KeyMap:       editor.DefaultKeyMap(),
		Logger:       logger,
	}
	if cfg.Editor.Overwrite {
		ec.InputMode = editor.ModeOverwrite
	}
	if cfg.Editor.Highlight {
		ec.Highlighter = keywordHighlighter(cfg.Theme)
	}
	if (editor.SystemClipboard{}).Available() {
		ec.Clipboard = editor.SystemClipboard{}
	} else {
		ec.Clipboard = &editor.MemoryClipboard{}
	}
	return ec
}

func wrapMode(name string) editor.WrapMode {
	switch name {
	case config.WrapWord:
		return editor.WrapWord
	case config.WrapGrapheme:
		return editor.WrapGrapheme
	default:
		return editor.WrapNone
	}
}

func (a app) Init() tea.Cmd { return a.editor.Init() }

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.help.Width = msg.Width
		a.layout()
		return a, nil

	case savedMsg:
		a.saving = false
		if msg.err != nil {
			a.logger.Error("save failed", "path", a.doc.Path, "err", msg.err)
			a.message = msg.err.Error()
			return a, nil
		}
		a.doc.Exists = true
		a.tracker.SetBaseline(msg.text)
		a.logger.Info("saved", "path", a.doc.Path, "bytes", len(msg.text))
		a.message = "saved " + a.doc.name()
		return a, nil

	case tea.KeyMsg:
		a.message = ""
		if !key.Matches(msg, a.keys.Quit) {
			a.quitArmed = false
		}
		switch {
		case key.Matches(msg, a.keys.Quit):
			if a.tracker.Modified() && !a.quitArmed {
				a.quitArmed = true
				a.message = quitPrompt
				return a, nil
			}
			return a, tea.Quit
		case key.Matches(msg, a.keys.Save):
			return a.save()
		case key.Matches(msg, a.keys.ReadOnly):
			a.editor = a.editor.SetReadOnly(!a.editor.ReadOnly())
			a.logger.Debug("read-only toggled", "readOnly", a.editor.ReadOnly())
			return a, nil
		case key.Matches(msg, a.keys.Help):
			a.help.ShowAll = !a.help.ShowAll
			a.layout()
			return a, nil
		}
	}

	var cmd tea.Cmd
	a.editor, cmd = a.editor.Update(msg)
	return a, cmd
}

func (a app) save() (app, tea.Cmd) {
	if a.saving {
		return a, nil
	}
	a.saving = true
	doc, text := a.doc, a.editor.Text()
	return a, func() tea.Msg {
		return savedMsg{text: text, err: doc.save(text)}
	}
}

// layout gives the editor whatever the status and help lines leave over.
func (a *app) layout() {
	if a.width == 0 && a.height == 0 {
		return
	}
	chrome := 1 + lipgloss.Height(a.help.View(a.helpKeys()))
	a.editor = a.editor.SetSize(a.width, max(a.height-chrome, 0))
}

func (a app) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		a.editor.View(),
		a.statusView(),
		a.help.View(a.helpKeys()),
	)
}

// helpKeys greys out undo and redo when there is nothing to apply. The
// editor keeps its own enabled copy of the bindings.
func (a app) helpKeys() appKeys {
	k := a.keys
	k.editor.Undo.SetEnabled(a.editor.CanUndo())
	k.editor.Redo.SetEnabled(a.editor.CanRedo())
	return k
}
