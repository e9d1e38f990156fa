// Package output provides terminal output formatting utilities for changelog-gen.
// This package is designed to have minimal dependencies to avoid import cycles.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// DefaultWidth is used when the writer is not a terminal.
const DefaultWidth = 80

// TerminalWidth returns the width of w when it is a terminal, DefaultWidth otherwise.
func TerminalWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return DefaultWidth
}

// PrintRule prints a dim separator of the given width with label centered in it.
func PrintRule(out io.Writer, width int, label string) {
	dim := color.New(color.Faint).SprintFunc()

	label = " " + label + " "
	lineLen := (width - len([]rune(label))) / 2
	if lineLen < 3 {
		lineLen = 3
	}

	line := strings.Repeat("─", lineLen)
	fmt.Fprintf(out, "\n%s%s%s\n", dim(line), dim(label), dim(line))
}
