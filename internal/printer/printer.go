package printer

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed, color.Bold)
)

// Output and ErrOutput are swapped in tests.
var (
	Output    io.Writer = os.Stdout
	ErrOutput io.Writer = os.Stderr
)

// Success prints a green message with a checkmark.
func Success(format string, a ...any) {
	green.Fprintf(Output, "✓ %s\n", fmt.Sprintf(format, a...))
}

// Warning prints a yellow message. Used for expected refusals such as a
// slot that is already booked.
func Warning(format string, a ...any) {
	yellow.Fprintf(Output, "! %s\n", fmt.Sprintf(format, a...))
}

func Info(format string, a ...any) {
	fmt.Fprintf(Output, format+"\n", a...)
}

// Error prints title, explanation and suggestions to ErrOutput and returns
// an error carrying only the title, for cobra.
func Error(title string, explanation string, suggestions []string) error {
	red.Fprintf(ErrOutput, "%s\n\n", title)
	fmt.Fprintf(ErrOutput, "%s\n", explanation)

	switch len(suggestions) {
	case 0:
	case 1:
		fmt.Fprintf(ErrOutput, "\n%s\n", suggestions[0])
	default:
		fmt.Fprintf(ErrOutput, "\nEither:\n")
		for i, s := range suggestions {
			fmt.Fprintf(ErrOutput, "  %d. %s\n", i+1, s)
		}
	}

	return fmt.Errorf("%s", title)
}
