// Package stats derives document statistics for the status line of a host
// embedding the editor: character and word counts and whether the text
// differs from the last saved baseline.
package stats

import (
	"strings"
	"unicode/utf8"
)

// Counts is a snapshot of document size.
type Counts struct {
	Chars int
	Words int
	Lines int
}

// Count measures s. Chars counts code points, newlines included. Words are
// runs of non-space characters.
func Count(s string) Counts {
	return Counts{
		Chars: utf8.RuneCountInString(s),
		Words: len(strings.Fields(s)),
		Lines: strings.Count(s, "\n") + 1,
	}
}
