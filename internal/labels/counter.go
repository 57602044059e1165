package labels

// Counter hands out sequential codes.
type Counter struct {
	next int
}

// Next returns the next code. A non-nil reset restarts the sequence at *reset
// first, so the returned code is *reset.
func (c *Counter) Next(reset *int) int {
	if reset != nil {
		c.next = *reset
	}
	code := c.next
	c.next++
	return code
}
