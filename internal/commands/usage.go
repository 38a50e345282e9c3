package commands

import "fmt"

// UsageError reports invalid command-line input. The dispatcher converts it
// into a parser-style error message, optional help text, and exit code 2; it
// never reaches the user as a raw fault.
type UsageError struct {
	Message   string
	PrintHelp bool
}

// Error implements the error interface.
func (e *UsageError) Error() string {
	if e.Message == "" {
		return "usage error"
	}
	return e.Message
}

// Usagef builds a UsageError with a formatted message.
func Usagef(format string, args ...any) *UsageError {
	return &UsageError{Message: fmt.Sprintf(format, args...)}
}

// UsageHelp builds a UsageError that prints the full help text instead of a
// message.
func UsageHelp() *UsageError {
	return &UsageError{PrintHelp: true}
}
