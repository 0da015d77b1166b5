package editor

import (
	"fmt"
	"strings"
)

// GutterStats reports gutter bookkeeping for hosts and tests.
type GutterStats struct {
	Width  int
	Digits int

	// RowsRepainted is the number of rows refreshed by the most recent paint.
	RowsRepainted int
	Paints        int
	// WidthComputations counts how often the width was recomputed from the
	// line count, as opposed to reused from cache.
	WidthComputations int
}

// gutter keeps the painted line-number rows between frames so that only
// invalidated rows are rendered again.
type gutter struct {
	enabled bool
	margin  int
	metrics TextMetrics

	digits int // 0 until the first width computation
	width  int

	// top is the viewport row the painted rows were produced for.
	top  int
	rows []string

	// dirty span, half-open; empty when dirtyTop >= dirtyBottom.
	dirtyTop, dirtyBottom int

	stats GutterStats
}

func newGutter(enabled bool, margin int, metrics TextMetrics) *gutter {
	return &gutter{enabled: enabled, margin: margin, metrics: metrics}
}

// updateWidth recomputes the width when the digit count of lineCount differs
// from the cached one, or unconditionally when force is set. It reports
// whether the width changed.
func (g *gutter) updateWidth(lineCount int, force bool) bool {
	if !g.enabled {
		return false
	}
	d := digitCount(lineCount)
	if !force && g.digits != 0 && d == g.digits {
		return false
	}
	g.digits = d
	g.stats.WidthComputations++

	w := GutterWidth(lineCount, g.margin, g.metrics)
	if w == g.width {
		return false
	}
	g.width = w
	g.invalidateAll()
	return true
}

func (g *gutter) setMetrics(margin int, metrics TextMetrics) {
	g.margin = margin
	g.metrics = metrics
	g.digits = 0
}

// resize resets the painted rows to height blank rows and dirties them all.
func (g *gutter) resize(height int) {
	g.rows = make([]string, max(height, 0))
	g.invalidateAll()
}

func (g *gutter) height() int { return len(g.rows) }

// scroll shifts the painted rows by dy and dirties the exposed strip.
// Positive dy moves content down, which is what scrolling towards the
// document start does.
func (g *gutter) scroll(dy int) {
	h := len(g.rows)
	if dy == 0 || h == 0 {
		return
	}
	if dy >= h || -dy >= h {
		g.invalidateAll()
		return
	}
	if dy > 0 {
		copy(g.rows[dy:], g.rows[:h-dy])
	} else {
		copy(g.rows, g.rows[-dy:])
	}
	if g.dirtyTop < g.dirtyBottom {
		top := clampInt(g.dirtyTop+dy, 0, h)
		bottom := clampInt(g.dirtyBottom+dy, 0, h)
		g.dirtyTop, g.dirtyBottom = top, bottom
	}
	if dy > 0 {
		g.invalidate(0, dy)
	} else {
		g.invalidate(h+dy, h)
	}
}

// invalidate unions [top, bottom) into the dirty span.
func (g *gutter) invalidate(top, bottom int) {
	h := len(g.rows)
	top = clampInt(top, 0, h)
	bottom = clampInt(bottom, 0, h)
	if top >= bottom {
		return
	}
	if g.dirtyTop >= g.dirtyBottom {
		g.dirtyTop, g.dirtyBottom = top, bottom
		return
	}
	g.dirtyTop = min(g.dirtyTop, top)
	g.dirtyBottom = max(g.dirtyBottom, bottom)
}

func (g *gutter) invalidateAll() {
	g.dirtyTop, g.dirtyBottom = 0, len(g.rows)
}

func (g *gutter) dirtyCoversViewport() bool {
	h := len(g.rows)
	return h > 0 && g.dirtyTop <= 0 && g.dirtyBottom >= h
}

// paint re-renders the dirty rows. Rows not covered by any block render as
// blank. cell renders the segIdx-th row of a block.
func (g *gutter) paint(lm LineMetrics, cell func(gl GutterLine, segIdx int) string, blank string) {
	g.stats.RowsRepainted = 0
	top, bottom := g.dirtyTop, g.dirtyBottom
	g.dirtyTop, g.dirtyBottom = 0, 0
	if !g.enabled || g.width <= 0 || top >= bottom {
		return
	}

	for r := top; r < bottom; r++ {
		g.rows[r] = blank
	}
	for gl := range VisibleLineNumbers(top, bottom, lm) {
		for r := max(gl.Y, top); r < min(gl.Y+gl.Height, bottom); r++ {
			g.rows[r] = cell(gl, r-gl.Y)
		}
	}
	g.stats.RowsRepainted = bottom - top
	g.stats.Paints++
}

func (g *gutter) view() string {
	if !g.enabled || g.width <= 0 || len(g.rows) == 0 {
		return ""
	}
	return strings.Join(g.rows, "\n")
}

func (g *gutter) snapshot() GutterStats {
	st := g.stats
	st.Width = g.resolvedWidth()
	st.Digits = g.digits
	return st
}

func (g *gutter) resolvedWidth() int {
	if !g.enabled {
		return 0
	}
	return g.width
}

func (m Model) gutterCell(gl GutterLine, segIdx int) string {
	w := m.gut.width
	if segIdx > 0 {
		return m.cfg.Style.LineNum.Inherit(m.cfg.Style.Gutter).Render(strings.Repeat(" ", w))
	}

	style := m.cfg.Style.LineNum
	if m.focused && gl.Block == m.buf.Cursor().Row {
		style = m.cfg.Style.LineNumActive
	}
	numWidth := max(w-m.cfg.GutterMargin, 0)
	text := fmt.Sprintf("%*d", numWidth, gl.Number) + strings.Repeat(" ", m.cfg.GutterMargin)
	return style.Inherit(m.cfg.Style.Gutter).Render(text)
}

func (m Model) gutterBlank() string {
	return m.cfg.Style.Gutter.Render(strings.Repeat(" ", m.gut.width))
}
