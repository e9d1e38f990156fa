package progress

import (
	"io"
	"time"

	"github.com/briandowns/spinner"
)

// Spinner wraps briandowns/spinner and is a no-op on non-terminals.
type Spinner struct {
	s *spinner.Spinner
}

// Start begins a spinner with suffix on w when caps reports a TTY.
// The returned Spinner is always safe to Stop.
func Start(w io.Writer, caps TerminalCapabilities, suffix string) *Spinner {
	if !caps.IsTTY {
		return &Spinner{}
	}

	s := spinner.New(spinner.CharSets[spinnerSet(caps)], 100*time.Millisecond, spinner.WithWriter(w))
	s.Suffix = " " + suffix
	if caps.SupportsColor {
		_ = s.Color("cyan")
	}
	s.Start()
	return &Spinner{s: s}
}

// Stop halts the spinner and clears its line.
func (sp *Spinner) Stop() {
	if sp == nil || sp.s == nil {
		return
	}
	sp.s.Stop()
}

// Active reports whether a spinner is running.
func (sp *Spinner) Active() bool {
	return sp != nil && sp.s != nil && sp.s.Active()
}
