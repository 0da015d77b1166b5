package editor

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/gutterpad/internal/grapheme"
)

// DefaultKeywords is the keyword set KeywordHighlighter uses when Keywords is
// empty.
var DefaultKeywords = []string{"var", "const", "if", "else", "while", "for", "return", "true", "false"}

// KeywordHighlighter is a small lexical highlighter: whole-word keywords,
// double-quoted strings with backslash escapes, and // line comments.
type KeywordHighlighter struct {
	Keywords []string

	Keyword lipgloss.Style
	String  lipgloss.Style
	Comment lipgloss.Style

	set map[string]struct{}
}

// NewKeywordHighlighter returns a highlighter for DefaultKeywords using the
// given colors (any lipgloss color string).
func NewKeywordHighlighter(keyword, str, comment string) *KeywordHighlighter {
	return &KeywordHighlighter{
		Keyword: lipgloss.NewStyle().Foreground(lipgloss.Color(keyword)).Bold(true),
		String:  lipgloss.NewStyle().Foreground(lipgloss.Color(str)),
		Comment: lipgloss.NewStyle().Foreground(lipgloss.Color(comment)),
	}
}

func (h *KeywordHighlighter) HighlightLine(ctx LineContext) ([]HighlightSpan, error) {
	if h.set == nil {
		words := h.Keywords
		if len(words) == 0 {
			words = DefaultKeywords
		}
		h.set = make(map[string]struct{}, len(words))
		for _, w := range words {
			h.set[w] = struct{}{}
		}
	}

	cl := grapheme.Split(ctx.Text)
	n := len(cl)
	var spans []HighlightSpan
	for i := 0; i < n; {
		switch {
		case cl[i] == "/" && i+1 < n && cl[i+1] == "/":
			spans = append(spans, HighlightSpan{StartCol: i, EndCol: n, Style: h.Comment})
			return spans, nil
		case cl[i] == `"`:
			if end, ok := closingQuote(cl, i+1); ok {
				spans = append(spans, HighlightSpan{StartCol: i, EndCol: end + 1, Style: h.String})
				i = end + 1
				continue
			}
			i++
		case isWordCluster(cl[i]):
			j := i + 1
			for j < n && isWordCluster(cl[j]) {
				j++
			}
			if _, ok := h.set[grapheme.Join(cl[i:j])]; ok {
				spans = append(spans, HighlightSpan{StartCol: i, EndCol: j, Style: h.Keyword})
			}
			i = j
		default:
			i++
		}
	}
	return spans, nil
}

func closingQuote(cl []string, from int) (int, bool) {
	for j := from; j < len(cl); j++ {
		switch cl[j] {
		case `\`:
			j++
		case `"`:
			return j, true
		}
	}
	return 0, false
}

func isWordCluster(gr string) bool {
	if len(gr) != 1 {
		return false
	}
	c := gr[0]
	return c == '_' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
