package nptable

import "fmt"

// MalformedRowError reports a table row that cannot be split into six
// intervals and a payload.
type MalformedRowError struct {
	Line   int
	Text   string
	Reason string
}

// Error implements the error interface for MalformedRowError.
func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("line %d: malformed row %q: %s", e.Line, e.Text, e.Reason)
}

// CatalogOverflowError reports more distinct noise points than a one-byte
// index can address.
type CatalogOverflowError struct {
	Size int
}

// Error implements the error interface for CatalogOverflowError.
func (e *CatalogOverflowError) Error() string {
	return fmt.Sprintf("noise point catalog holds %d distinct points, at most %d fit a one-byte index", e.Size, MaxCatalog)
}

// PayloadOverflowError reports a raw payload that collides with the label tag.
type PayloadOverflowError struct {
	Line  int
	Value int
}

// Error implements the error interface for PayloadOverflowError.
func (e *PayloadOverflowError) Error() string {
	return fmt.Sprintf("line %d: payload %d does not fit below the label tag 0x%04X", e.Line, e.Value, LabelTag)
}
