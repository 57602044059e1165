package labels

import "fmt"

// UnknownLabelError reports a biome name missing from the table.
type UnknownLabelError struct {
	Name string
}

// Error implements the error interface for UnknownLabelError.
func (e *UnknownLabelError) Error() string {
	return fmt.Sprintf("unknown biome label %q", e.Name)
}

// ConflictError reports an inconsistent label declaration.
type ConflictError struct {
	Name   string
	Where  string
	Reason string
}

// Error implements the error interface for ConflictError.
func (e *ConflictError) Error() string {
	return fmt.Sprintf("label %q at %s: %s", e.Name, e.Where, e.Reason)
}
