// Package progress shows a spinner on stderr while slow steps run.
// It stays silent when stderr is not a terminal so piped and scripted
// runs see only the command's own output.
package progress

import (
	"os"

	"golang.org/x/term"
)

// TerminalCapabilities describes what the attached terminal supports.
type TerminalCapabilities struct {
	IsTTY           bool
	SupportsColor   bool
	SupportsUnicode bool
}

// DetectTerminalCapabilities detects terminal features of f.
// Checks: f isatty, NO_COLOR env, CHANGELOG_GEN_ASCII env.
func DetectTerminalCapabilities(f *os.File) TerminalCapabilities {
	isTTY := f != nil && term.IsTerminal(int(f.Fd()))

	noColor := os.Getenv("NO_COLOR") != ""
	forceASCII := os.Getenv("CHANGELOG_GEN_ASCII") == "1"

	return TerminalCapabilities{
		IsTTY:           isTTY,
		SupportsColor:   isTTY && !noColor,
		SupportsUnicode: isTTY && !forceASCII,
	}
}

// spinnerSet returns the briandowns/spinner character set index to use.
// Unicode: braille dots (set 14). ASCII: |/-\ (set 9).
func spinnerSet(caps TerminalCapabilities) int {
	if caps.SupportsUnicode {
		return 14
	}
	return 9
}
