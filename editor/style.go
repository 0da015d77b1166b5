package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering.
//
// A zero Style renders plain text without a visible cursor; hosts usually
// start from DefaultStyle.
type Style struct {
	Gutter        lipgloss.Style
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style

	Text lipgloss.Style
	// CurrentLine is applied as a full-width band behind the cursor's line.
	// Only its background is expected to be set.
	CurrentLine lipgloss.Style
	Selection   lipgloss.Style
	Cursor      lipgloss.Style
}

func DefaultStyle() Style {
	gutter := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Gutter:        gutter,
		LineNum:       gutter,
		LineNumActive: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Text:          lipgloss.NewStyle(),
		CurrentLine:   lipgloss.NewStyle().Background(lipgloss.Color("236")),
		Selection:     lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Cursor:        lipgloss.NewStyle().Reverse(true),
	}
}
