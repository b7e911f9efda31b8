package progress

import "fmt"

// formatStepCounter returns the [N/Total] step counter string
func formatStepCounter(number, total int) string {
	return fmt.Sprintf("[%d/%d]", number, total)
}

// buildStepMessage constructs the complete step message
func buildStepMessage(step StepInfo) string {
	return fmt.Sprintf("%s %s", formatStepCounter(step.Number, step.TotalSteps), step.Name)
}

// fitToWidth truncates msg with a trailing ellipsis so that reserved leading
// columns plus the message stay within width. Width 0 means unknown and
// leaves msg alone. A line longer than the terminal wraps, and the spinner's
// carriage-return redraw then leaves stale frames behind.
func fitToWidth(msg string, width, reserved int) string {
	if width <= 0 {
		return msg
	}
	budget := width - reserved
	runes := []rune(msg)
	if len(runes) <= budget {
		return msg
	}
	if budget <= 3 {
		if budget < 0 {
			budget = 0
		}
		return string(runes[:budget])
	}
	return string(runes[:budget-3]) + "..."
}

// checkmark returns the appropriate checkmark symbol
func checkmark(symbols ProgressSymbols, supportsColor bool) string {
	mark := symbols.Checkmark
	if supportsColor && symbols.Checkmark == "✓" {
		mark = "\033[32m" + mark + "\033[0m" // Green
	}
	return mark
}

// failureMark returns the appropriate failure symbol
func failureMark(symbols ProgressSymbols, supportsColor bool) string {
	mark := symbols.Failure
	if supportsColor && symbols.Failure == "✗" {
		mark = "\033[31m" + mark + "\033[0m" // Red
	}
	return mark
}
