package progress

import (
	"os"

	"golang.org/x/term"
)

// Indexes into spinner.CharSets.
const (
	spinnerUnicodeDots = 14 // ⠋ ⠙ ⠹ ⠸ ⠼ ⠴ ⠦ ⠧ ⠇ ⠏
	spinnerASCIILine   = 9  // | / - \
)

// DetectTerminalCapabilities inspects f, the stream step output will be
// written to, and reports what it supports. A stream that is not a terminal
// has no capabilities at all. On a terminal, NO_COLOR suppresses color and
// CROISSANT_ASCII=1 forces the ASCII symbol set.
func DetectTerminalCapabilities(f *os.File) TerminalCapabilities {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return TerminalCapabilities{}
	}

	caps := TerminalCapabilities{
		IsTTY:           true,
		SupportsColor:   os.Getenv("NO_COLOR") == "",
		SupportsUnicode: os.Getenv("CROISSANT_ASCII") != "1",
	}
	if width, _, err := term.GetSize(fd); err == nil {
		caps.Width = width
	}
	return caps
}

// Symbols returns the indicator set matching these capabilities: Unicode
// marks with the braille spinner where supported, bracketed ASCII otherwise.
func (c TerminalCapabilities) Symbols() ProgressSymbols {
	if c.SupportsUnicode {
		return ProgressSymbols{
			Checkmark:  "✓",
			Failure:    "✗",
			SpinnerSet: spinnerUnicodeDots,
		}
	}
	return ProgressSymbols{
		Checkmark:  "[OK]",
		Failure:    "[FAIL]",
		SpinnerSet: spinnerASCIILine,
	}
}
