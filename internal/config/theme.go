package config

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// currentLineBlend is how far the derived current-line color moves from the
// background towards the accent.
const currentLineBlend = 0.12

// Theme holds hex colors ("#rrggbb"). An empty CurrentLine is derived from
// Background and Accent.
type Theme struct {
	Background       string `yaml:"background"`
	Foreground       string `yaml:"foreground"`
	Accent           string `yaml:"accent"`
	LineNumber       string `yaml:"line-number"`
	LineNumberActive string `yaml:"line-number-active"`
	CurrentLine      string `yaml:"current-line"`
	Selection        string `yaml:"selection"`
	Keyword          string `yaml:"keyword"`
	String           string `yaml:"string"`
	Comment          string `yaml:"comment"`
	StatusBar        string `yaml:"status-bar"`
}

func DefaultTheme() Theme {
	return Theme{
		Background:       "#1e1e1e",
		Foreground:       "#d4d4d4",
		Accent:           "#569cd6",
		LineNumber:       "#858585",
		LineNumberActive: "#c6c6c6",
		Selection:        "#264f78",
		Keyword:          "#569cd6",
		String:           "#ce9178",
		Comment:          "#6a9955",
		StatusBar:        "#007acc",
	}
}

// Validate checks that every non-empty color parses.
func (t Theme) Validate() error {
	for _, f := range t.fields() {
		if f.value == "" {
			continue
		}
		if _, err := colorful.Hex(f.value); err != nil {
			return fmt.Errorf("%w: theme.%s = %q", ErrInvalidColor, f.name, f.value)
		}
	}
	return nil
}

// Resolved fills derived colors. It assumes a validated theme.
func (t Theme) Resolved() Theme {
	if t.CurrentLine == "" {
		t.CurrentLine = DeriveCurrentLine(t.Background, t.Accent)
	}
	return t
}

// DeriveCurrentLine blends the accent into the background in Lab space so the
// band stays subtle on both dark and light backgrounds. Unparseable input
// yields "".
func DeriveCurrentLine(background, accent string) string {
	bg, err := colorful.Hex(background)
	if err != nil {
		return ""
	}
	ac, err := colorful.Hex(accent)
	if err != nil {
		return ""
	}
	return bg.BlendLab(ac, currentLineBlend).Clamped().Hex()
}

type themeField struct {
	name  string
	value string
}

func (t Theme) fields() []themeField {
	return []themeField{
		{"background", t.Background},
		{"foreground", t.Foreground},
		{"accent", t.Accent},
		{"line-number", t.LineNumber},
		{"line-number-active", t.LineNumberActive},
		{"current-line", t.CurrentLine},
		{"selection", t.Selection},
		{"keyword", t.Keyword},
		{"string", t.String},
		{"comment", t.Comment},
		{"status-bar", t.StatusBar},
	}
}
