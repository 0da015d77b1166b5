package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

var errNotUTF8 = errors.New("file is not valid UTF-8")

// document is the on-disk side of the edited text. The editor only ever sees
// "\n"; the file's dominant line ending is restored on save.
type document struct {
	Path       string
	LineEnding string
	Mode       fs.FileMode
	Exists     bool
}

// loadDocument reads path. A missing file yields an empty, not yet existing
// document. An empty path is an unnamed scratch document.
func loadDocument(path string) (*document, string, error) {
	doc := &document{Path: path, LineEnding: "\n", Mode: 0o644}
	if path == "" {
		return doc, "", nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return doc, "", nil
		}
		return nil, "", fmt.Errorf("open %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return nil, "", fmt.Errorf("open %s: %w", path, errNotUTF8)
	}
	if info, err := os.Stat(path); err == nil {
		doc.Mode = info.Mode().Perm()
	}

	text := string(data)
	doc.Exists = true
	doc.LineEnding = dominantLineEnding(text)
	return doc, text, nil
}

// dominantLineEnding returns the most frequent of "\r\n", "\r" and "\n".
// Ties and text without line breaks resolve to "\n".
func dominantLineEnding(s string) string {
	var crlf, cr, lf int
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\r':
			if i+1 < len(s) && s[i+1] == '\n' {
				crlf++
				i++
			} else {
				cr++
			}
		case '\n':
			lf++
		}
	}
	switch {
	case crlf > lf && crlf >= cr:
		return "\r\n"
	case cr > lf && cr > crlf:
		return "\r"
	default:
		return "\n"
	}
}

// encode converts editor text to the document's line ending.
func (d *document) encode(text string) []byte {
	if d.LineEnding == "\n" || d.LineEnding == "" {
		return []byte(text)
	}
	return []byte(strings.ReplaceAll(text, "\n", d.LineEnding))
}

// save writes text through a temporary file in the same directory and renames
// it over the target. It runs off the update loop and only reads d.
func (d *document) save(text string) error {
	if d.Path == "" {
		return errNoPath
	}
	tmp, err := os.CreateTemp(filepath.Dir(d.Path), filepath.Base(d.Path)+".tmp.*")
	if err != nil {
		return fmt.Errorf("save %s: create temp file: %w", d.Path, err)
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(d.encode(text)); err != nil {
		return fmt.Errorf("save %s: write temp file: %w", d.Path, err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("save %s: sync temp file: %w", d.Path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("save %s: close temp file: %w", d.Path, err)
	}
	if err := os.Chmod(tmpPath, d.Mode); err != nil {
		return fmt.Errorf("save %s: chmod temp file: %w", d.Path, err)
	}
	if err := os.Rename(tmpPath, d.Path); err != nil {
		return fmt.Errorf("save %s: %w", d.Path, err)
	}
	success = true
	return nil
}

var errNoPath = errors.New("no file name; start gutterpad with a path to save")

func (d *document) name() string {
	if d.Path == "" {
		return "[scratch]"
	}
	return filepath.Base(d.Path)
}
