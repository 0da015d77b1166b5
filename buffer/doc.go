// Package buffer implements the pure document model behind the editor.
//
// Coordinates are 0-based (Row, Col) where Col counts grapheme clusters.
// Ranges are half-open selections in document coordinates: [Start, End).
// A document always has at least one (possibly empty) line.
package buffer
