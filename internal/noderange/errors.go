// internal/noderange/errors.go
package noderange

import "fmt"

// MalformedRangeError reports a descriptor that is neither a bare integer
// nor a bracketed interval.
type MalformedRangeError struct {
	Token  string
	Reason string
}

// Error implements the error interface for MalformedRangeError.
func (e *MalformedRangeError) Error() string {
	return fmt.Sprintf("malformed range %q: %s", e.Token, e.Reason)
}
