package wm

// StackCounter issues stacking-order values. Values only ever increase and
// are never reused for the lifetime of the counter.
type StackCounter struct {
	current int
}

// NewStackCounter creates a counter whose first issued value is base+1
func NewStackCounter(base int) *StackCounter {
	return &StackCounter{current: base}
}

// Next issues the next stacking-order value
func (c *StackCounter) Next() int {
	c.current++
	return c.current
}

// Current returns the most recently issued value (or the base)
func (c *StackCounter) Current() int {
	return c.current
}
