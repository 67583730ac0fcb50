package processor

import (
	"github.com/badele/keygrabstats/internal/types"
)

///////////////////////////////////////////////////////////////////////////////
// Counter
///////////////////////////////////////////////////////////////////////////////

// Counter accumulates key press frequencies. It is not safe for concurrent
// use.
type Counter struct {
	counts map[types.KeyPress]int
	total  int
}

func NewCounter() *Counter {
	return &Counter{counts: make(map[types.KeyPress]int)}
}

func (c *Counter) Add(keys ...types.KeyPress) {
	for _, k := range keys {
		c.counts[k]++
		c.total++
	}
}

func (c *Counter) Count(k types.KeyPress) int {
	return c.counts[k]
}

// Total returns the number of key presses added.
func (c *Counter) Total() int {
	return c.total
}

// Len returns the number of distinct key presses.
func (c *Counter) Len() int {
	return len(c.counts)
}

// Counts returns a copy of the frequency map.
func (c *Counter) Counts() map[types.KeyPress]int {
	out := make(map[types.KeyPress]int, len(c.counts))
	for k, v := range c.counts {
		out[k] = v
	}
	return out
}
