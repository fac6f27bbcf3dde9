package scope

import "sync/atomic"

// Counter is the one piece of shared state in the demo: a process-wide
// click counter starting at zero. It is injected into the demo operations
// rather than held as a package global so tests can assert isolation.
// Increment is a single atomic read-modify-write so "each click adds
// exactly one" holds under concurrent requests. There is no reset.
type Counter struct {
	n atomic.Int64
}

func NewCounter() *Counter { return &Counter{} }

// Increment adds one and returns the new value.
func (c *Counter) Increment() int64 { return c.n.Add(1) }

// Value reads the counter without modifying it.
func (c *Counter) Value() int64 { return c.n.Load() }
