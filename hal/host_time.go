package hal

import (
	"sync"
	"time"
)

type hostClock struct {
	mu    sync.Mutex
	fixed time.Duration
	virt  time.Duration
}

func newHostClock(fixed time.Duration) *hostClock {
	return &hostClock{fixed: fixed}
}

// NowMillis reports Unix milliseconds, or virtual milliseconds when the clock
// runs in fixed-step mode.
func (c *hostClock) NowMillis() float64 {
	if c.fixed <= 0 {
		return float64(time.Now().UnixNano()) / float64(time.Millisecond)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return float64(c.virt) / float64(time.Millisecond)
}

func (c *hostClock) step() {
	if c.fixed <= 0 {
		return
	}
	c.mu.Lock()
	c.virt += c.fixed
	c.mu.Unlock()
}
