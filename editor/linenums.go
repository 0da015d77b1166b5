package editor

import "iter"

// LineMetrics is the block geometry a gutter repaint walks.
//
// Blocks are logical lines in layout order. Coordinates are viewport rows:
// FirstVisibleBlock returns the first block intersecting the viewport and its
// top offset, which is negative when the block starts above the viewport.
type LineMetrics interface {
	FirstVisibleBlock() (block, top int)
	BlockCount() int
	BlockHeight(block int) int
}

// GutterLine is one visible line number and the rows it spans.
type GutterLine struct {
	Block  int
	Number int // 1-based
	Y      int // viewport row of the block's first row; may be negative
	Height int
}

// VisibleLineNumbers yields the line numbers of blocks intersecting the
// half-open row range [dirtyTop, dirtyBottom).
//
// The walk starts at the first visible block and stops at the first block
// whose top is at or past dirtyBottom, so a repaint costs O(visible lines)
// regardless of document length. Blocks with zero height are skipped.
func VisibleLineNumbers(dirtyTop, dirtyBottom int, lm LineMetrics) iter.Seq[GutterLine] {
	return func(yield func(GutterLine) bool) {
		if lm == nil || dirtyBottom <= dirtyTop {
			return
		}
		block, top := lm.FirstVisibleBlock()
		count := lm.BlockCount()
		for ; block >= 0 && block < count && top < dirtyBottom; block++ {
			h := lm.BlockHeight(block)
			if h <= 0 {
				continue
			}
			bottom := top + h
			if bottom > dirtyTop {
				if !yield(GutterLine{Block: block, Number: block + 1, Y: top, Height: h}) {
					return
				}
			}
			top = bottom
		}
	}
}
