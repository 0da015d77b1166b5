// Command gutterpad is a small terminal text editor built on the editor
// package: line-number gutter, current-line band and insert/overwrite modes.
package main

import (
	"fmt"
	"os"

	"github.com/iw2rmb/gutterpad"
)

func main() {
	os.Exit(run())
}

func run() int {
	root := newRootCommand(gutterpad.BuildInfo())
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "gutterpad:", err)
		return 1
	}
	return 0
}
