package editor

import (
	"strconv"

	"github.com/iw2rmb/gutterpad/internal/grapheme"
)

// TextMetrics measures the horizontal advance of text in the units the
// gutter width is expressed in.
type TextMetrics interface {
	Advance(text string) int
}

// CellMetrics measures text in terminal cells.
type CellMetrics struct {
	TabWidth int
}

func (c CellMetrics) Advance(text string) int {
	x := 0
	for _, gr := range grapheme.Split(text) {
		x += grapheme.CellWidth(gr, x, c.TabWidth)
	}
	return x
}

// GutterWidth returns margin plus the advance of one digit for every decimal
// digit of lineCount. Counts below 1 are treated as 1.
func GutterWidth(lineCount, margin int, metrics TextMetrics) int {
	if metrics == nil {
		metrics = CellMetrics{}
	}
	return margin + metrics.Advance("9")*digitCount(lineCount)
}

func digitCount(lineCount int) int {
	return len(strconv.Itoa(max(lineCount, 1)))
}
