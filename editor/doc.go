// Package editor provides a Bubble Tea text editor component with a
// line-number gutter, backed by the buffer package.
//
// The package is responsible for input handling (including overwrite mode),
// viewport behavior, grapheme-aware rendering, the gutter repaint pipeline,
// the current-line highlight, and host integration hooks (highlighting,
// clipboard and change events).
package editor
