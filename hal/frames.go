package hal

import "sync"

// FrameQueue holds callbacks that must run once before the next frame is
// presented. Hosts call Flush once per frame on their loop goroutine;
// callbacks requested during a Flush wait for the following frame.
type FrameQueue struct {
	mu      sync.Mutex
	pending []func()
	running []func()
}

// RequestFrame queues fn for the next frame. Safe from any goroutine.
func (q *FrameQueue) RequestFrame(fn func()) {
	if fn == nil {
		return
	}
	q.mu.Lock()
	q.pending = append(q.pending, fn)
	q.mu.Unlock()
}

// Pending reports the number of queued callbacks.
func (q *FrameQueue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Flush runs the callbacks queued before the call and returns how many ran.
func (q *FrameQueue) Flush() int {
	q.mu.Lock()
	q.running, q.pending = q.pending, q.running[:0]
	run := q.running
	q.mu.Unlock()

	for i, fn := range run {
		fn()
		run[i] = nil
	}
	return len(run)
}
