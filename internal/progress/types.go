// Package progress provides progress display types and utilities for the
// generation pipeline. It defines step tracking and terminal display helpers
// including spinners and formatted output.
package progress

// StepInfo represents metadata about a pipeline step for progress display
type StepInfo struct {
	// Name is the human-readable step description (e.g., "Reading data.csv")
	Name string
	// Number is the current step number (1-based index)
	Number int
	// TotalSteps is the total number of steps in the pipeline
	TotalSteps int
}

// TerminalCapabilities encapsulates detected terminal features
type TerminalCapabilities struct {
	// IsTTY indicates whether the target stream is a terminal (vs pipe/redirect)
	IsTTY bool
	// SupportsColor indicates whether terminal supports ANSI color codes
	SupportsColor bool
	// SupportsUnicode indicates whether terminal supports Unicode characters
	SupportsUnicode bool
	// Width is the terminal width in columns, 0 if unknown. Step lines are
	// fitted to it so the spinner redraw never has a wrapped line to erase.
	Width int
}

// ProgressSymbols defines the character set for visual indicators
type ProgressSymbols struct {
	// Checkmark is the success indicator ("✓" or "[OK]")
	Checkmark string
	// Failure is the failure indicator ("✗" or "[FAIL]")
	Failure string
	// SpinnerSet is the index into spinner.CharSets
	SpinnerSet int
}
