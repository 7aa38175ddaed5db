// Package frame provides the host-side primitives the particle field runs
// on: a "call me before the next repaint" queue and a page visibility
// signal. Both are single-threaded; the host pumps them from its own loop.
package frame

// Handle identifies a requested frame callback. The zero Handle is never
// issued.
type Handle uint64

type request struct {
	handle Handle
	fn     func()
}

// Queue collects frame callbacks and runs them once per Tick.
type Queue struct {
	next    Handle
	pending []request
	running []request
	ticks   uint64
}

func NewQueue() *Queue {
	return &Queue{}
}

// RequestFrame schedules fn for the next tick.
func (q *Queue) RequestFrame(fn func()) Handle {
	q.next++
	q.pending = append(q.pending, request{handle: q.next, fn: fn})
	return q.next
}

// CancelFrame drops a pending callback. Unknown, zero and already run or
// cancelled handles are ignored.
func (q *Queue) CancelFrame(h Handle) {
	if h == 0 {
		return
	}
	for i, r := range q.pending {
		if r.handle == h {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
	// Cancelled by a sibling callback of the batch being run.
	for i := range q.running {
		if q.running[i].handle == h {
			q.running[i].fn = nil
			return
		}
	}
}

// Tick runs every callback that was pending when it was called. Callbacks
// requested from inside a running callback wait for the next Tick.
func (q *Queue) Tick() int {
	q.running = q.pending
	q.pending = nil
	q.ticks++

	ran := 0
	for i := range q.running {
		fn := q.running[i].fn
		if fn == nil {
			continue
		}
		q.running[i].fn = nil
		fn()
		ran++
	}
	q.running = nil
	return ran
}

// Pending reports how many callbacks are waiting for the next Tick.
func (q *Queue) Pending() int { return len(q.pending) }

// Ticks reports how many times Tick has been called.
func (q *Queue) Ticks() uint64 { return q.ticks }
