package progress

import (
	"fmt"
	"io"
	"time"
	"unicode/utf8"

	"github.com/briandowns/spinner"
)

// StepDisplay orchestrates the display of pipeline progress indicators.
// It is silent when the target stream is not a terminal so piped and
// scripted runs see only the command's own output.
type StepDisplay struct {
	capabilities TerminalCapabilities
	out          io.Writer
	spinner      *spinner.Spinner
	symbols      ProgressSymbols
}

// NewStepDisplay creates a new step display writing to out
func NewStepDisplay(caps TerminalCapabilities, out io.Writer) *StepDisplay {
	return &StepDisplay{
		capabilities: caps,
		out:          out,
		symbols:      caps.Symbols(),
	}
}

// StartStep begins displaying progress for a pipeline step
func (d *StepDisplay) StartStep(step StepInfo) {
	if !d.capabilities.IsTTY {
		return
	}

	d.StopSpinner()

	d.spinner = spinner.New(
		spinner.CharSets[d.symbols.SpinnerSet],
		100*time.Millisecond,
	)
	d.spinner.Writer = d.out
	d.spinner.Suffix = " " + fitToWidth(buildStepMessage(step), d.capabilities.Width, 2)
	d.spinner.Start()
}

// CompleteStep stops the spinner and displays completion status
func (d *StepDisplay) CompleteStep(step StepInfo) {
	d.StopSpinner()

	if !d.capabilities.IsTTY {
		return
	}

	mark := checkmark(d.symbols, d.capabilities.SupportsColor)
	fmt.Fprintf(d.out, "%s %s\n", mark, d.fitStepLine(step, d.symbols.Checkmark))
}

// FailStep stops the spinner and displays failure status
func (d *StepDisplay) FailStep(step StepInfo) {
	d.StopSpinner()

	if !d.capabilities.IsTTY {
		return
	}

	mark := failureMark(d.symbols, d.capabilities.SupportsColor)
	fmt.Fprintf(d.out, "%s %s\n", mark, d.fitStepLine(step, d.symbols.Failure))
}

// StopSpinner stops the spinner without showing completion/failure
func (d *StepDisplay) StopSpinner() {
	if d.spinner != nil {
		d.spinner.Stop()
		d.spinner = nil
	}
}

// fitStepLine fits the step message beside mark. The column budget counts
// the plain symbol; ANSI color codes around it occupy no columns.
func (d *StepDisplay) fitStepLine(step StepInfo, mark string) string {
	return fitToWidth(buildStepMessage(step), d.capabilities.Width, utf8.RuneCountInString(mark)+1)
}
