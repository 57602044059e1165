// internal/noderange/types.go
package noderange

import "fmt"

// Range is an inclusive integer interval on one climate axis.
type Range struct {
	Low  int
	High int
}

// Point returns a range holding the single value v.
func Point(v int) Range {
	return Range{Low: v, High: v}
}

// Valid reports whether Low <= High.
func (r Range) Valid() bool {
	return r.Low <= r.High
}

// String renders the range in its descriptor form.
func (r Range) String() string {
	if r.Low == r.High {
		return fmt.Sprintf("%d", r.Low)
	}
	return fmt.Sprintf("[%d-%d]", r.Low, r.High)
}
