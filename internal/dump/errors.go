package dump

import "fmt"

// LineError locates a failure in the transcript.
type LineError struct {
	Line int
	Text string
	Err  error
}

// Error implements the error interface for LineError.
func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
}

// Unwrap returns the underlying cause.
func (e *LineError) Unwrap() error {
	return e.Err
}
