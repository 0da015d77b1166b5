package editor

import "github.com/iw2rmb/gutterpad/internal/grapheme"

// wrappedSegment is one visual row of a logical line.
type wrappedSegment struct {
	startCol, endCol   int
	startCell, endCell int
}

func wrapSegments(vl visualLine, mode WrapMode, width int) []wrappedSegment {
	n := vl.len()
	if width <= 0 || mode == WrapNone || n == 0 {
		return []wrappedSegment{{endCol: n, endCell: vl.width()}}
	}

	segments := make([]wrappedSegment, 0, 1+vl.width()/width)
	for start := 0; start < n; {
		used := 0
		overflow := start
		for overflow < n {
			w := vl.cellWidth(overflow)
			if used > 0 && used+w > width {
				break
			}
			used += w
			overflow++
		}

		end := overflow
		if mode == WrapWord && overflow < n {
			if br, ok := findWordWrapBreak(vl, start, overflow); ok {
				end = br
			}
		}
		if end <= start {
			end = min(start+1, n)
		}

		segments = append(segments, wrappedSegment{
			startCol:  start,
			endCol:    end,
			startCell: vl.cells[start],
			endCell:   vl.cells[end],
		})
		start = end
	}
	return segments
}

// findWordWrapBreak returns the column just after the last whitespace run in
// [start, overflow).
func findWordWrapBreak(vl visualLine, start, overflow int) (int, bool) {
	lastBreak := -1
	for i := start; i < overflow; {
		if !grapheme.IsSpace(vl.clusters[i]) {
			i++
			continue
		}
		j := i + 1
		for j < overflow && grapheme.IsSpace(vl.clusters[j]) {
			j++
		}
		lastBreak = j
		i = j
	}
	if lastBreak <= start {
		return 0, false
	}
	return lastBreak, true
}

// segmentForCol returns the index of the segment a cursor at col renders on.
// A column on a segment boundary belongs to the following segment.
func segmentForCol(segs []wrappedSegment, col int) int {
	for i, seg := range segs {
		if col < seg.endCol {
			return i
		}
	}
	return len(segs) - 1
}
