package main

import (
	"path/filepath"

	"github.com/go-enry/go-enry/v2"
)

const plainText = "Text"

// detectLanguage names the language for the status line from the file name,
// falling back to content (shebang, modeline, classifier).
func detectLanguage(path, text string) string {
	var name string
	if path != "" {
		name = filepath.Base(path)
	}
	if name == "" && text == "" {
		return plainText
	}
	lang := enry.GetLanguage(name, []byte(text))
	if lang == "" {
		return plainText
	}
	return lang
}
