package styles

import (
	"os"

	"github.com/muesli/termenv"
)

var (
	stdout = termenv.NewOutput(os.Stdout)

	// MESSAGE styles the question line shown above the list
	MESSAGE = func(s string) string {
		return stdout.String(s).
			Bold().
			String()
	}
	// HELP styles hint text with dimmed appearance (e.g., "(Use arrow keys)")
	HELP = func(s string) string {
		return stdout.String(s).
			Foreground(stdout.Color("244")).
			String()
	}
	// KEY styles a key label inside the help line (e.g., "<o>")
	KEY = func(s string) string {
		return stdout.String(s).
			Foreground(stdout.Color("11")).
			Bold().
			String()
	}
	// ANSWER styles the confirmed answer echoed after completion
	ANSWER = func(s string) string {
		return stdout.String(s).
			Foreground(stdout.Color("14")).
			String()
	}
	// HIGHLIGHT styles the active list row
	HIGHLIGHT = func(s string) string {
		return stdout.String(s).
			Foreground(stdout.Color("12")).
			Bold().
			String()
	}
	// DISABLED styles rows that are displayed but cannot be selected
	DISABLED = func(s string) string {
		return stdout.String(s).
			Foreground(stdout.Color("241")).
			String()
	}
	SEPARATOR = func(s string) string {
		return stdout.String(s).
			Foreground(stdout.Color("241")).
			String()
	}
)
