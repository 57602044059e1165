package biometree

import (
	"errors"
	"fmt"
)

// ErrUnnumbered is returned by encoders when AssignIDs has not been run.
var ErrUnnumbered = errors.New("biometree: node ids have not been assigned")

// PathError reports an insertion path that does not fit the tree shape.
type PathError struct {
	Path   []int
	Reason string
}

// Error implements the error interface for PathError.
func (e *PathError) Error() string {
	return fmt.Sprintf("invalid tree path %v: %s", e.Path, e.Reason)
}
