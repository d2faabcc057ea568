package domain

// Counter holds a single count that only ever grows by one.
// It is not safe for concurrent use.
type Counter struct {
	count int
}

func NewCounter() *Counter {
	return &Counter{}
}

// Increment adds exactly one to the count.
func (c *Counter) Increment() {
	c.count++
}

func (c *Counter) Count() int {
	return c.count
}
