package editor

import (
	"sort"

	"github.com/iw2rmb/gutterpad/internal/grapheme"
)

// visualLine maps the graphemes of one document line to terminal cells.
type visualLine struct {
	clusters []string
	// cells[i] is the first cell of cluster i; cells[len(clusters)] is the
	// total width.
	cells []int
}

func newVisualLine(line string, tabWidth int) visualLine {
	clusters := grapheme.Split(line)
	cells := make([]int, len(clusters)+1)
	x := 0
	for i, gr := range clusters {
		cells[i] = x
		x += max(grapheme.CellWidth(gr, x, tabWidth), 1)
	}
	cells[len(clusters)] = x
	return visualLine{clusters: clusters, cells: cells}
}

func (v visualLine) len() int { return len(v.clusters) }

func (v visualLine) width() int { return v.cells[len(v.clusters)] }

func (v visualLine) cellForCol(col int) int {
	return v.cells[clampInt(col, 0, len(v.clusters))]
}

func (v visualLine) cellWidth(col int) int {
	return v.cells[col+1] - v.cells[col]
}

// colForCell returns the grapheme covering cell, or len when cell is past
// the end of the line.
func (v visualLine) colForCell(cell int) int {
	if cell <= 0 {
		return 0
	}
	n := len(v.clusters)
	return sort.Search(n, func(i int) bool { return v.cells[i+1] > cell })
}

// displayText returns what to draw for cluster i in its cells.
func (v visualLine) displayText(i int) string {
	gr := v.clusters[i]
	w := v.cellWidth(i)
	if gr == "\t" {
		return spaces(w)
	}
	for _, r := range gr {
		if r < 0x20 || r == 0x7f {
			return "?" + spaces(w-1)
		}
	}
	return gr
}
