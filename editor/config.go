package editor

import (
	"github.com/charmbracelet/log"

	"github.com/iw2rmb/gutterpad/internal/grapheme"
)

// DefaultGutterMargin is the number of blank cells between line numbers and
// text.
const DefaultGutterMargin = 1

// Config configures the editor Model.
type Config struct {
	// Initial text for the internal buffer.
	Text string

	ReadOnly  bool
	InputMode InputMode
	WrapMode  WrapMode

	// TabWidth is the tab stop distance in cells. Values < 1 use
	// grapheme.DefaultTabWidth.
	TabWidth int

	// HideLineNums disables the gutter entirely.
	HideLineNums bool
	// GutterMargin is the blank space after the numbers, in metric units.
	// Values < 1 use DefaultGutterMargin.
	GutterMargin int
	// Metrics measures text for the gutter width. Nil uses CellMetrics.
	Metrics TextMetrics

	Style  Style
	KeyMap KeyMap // zero value uses DefaultKeyMap

	Clipboard   Clipboard
	Highlighter Highlighter

	// Forwarded to buffer.Options.
	HistoryLimit int

	// OnChange, when set, is subscribed to EventContentChanged.
	OnChange func(ChangeEvent)

	// Logger receives debug diagnostics. Nil disables logging.
	Logger *log.Logger
}

func normalizeConfig(cfg Config) Config {
	if cfg.TabWidth < 1 {
		cfg.TabWidth = grapheme.DefaultTabWidth
	}
	if cfg.GutterMargin < 1 {
		cfg.GutterMargin = DefaultGutterMargin
	}
	if cfg.Metrics == nil {
		cfg.Metrics = CellMetrics{TabWidth: cfg.TabWidth}
	}
	if cfg.KeyMap.isZero() {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.InputMode > ModeOverwrite {
		cfg.InputMode = ModeInsert
	}
	if cfg.WrapMode < WrapNone || cfg.WrapMode > WrapGrapheme {
		cfg.WrapMode = WrapNone
	}
	return cfg
}
