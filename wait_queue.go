package mrwlock

import (
	"sync"
	"sync/atomic"
)

// waitQueue parks goroutines until a watched word no longer holds the
// value they observed, in the manner of a futex.
//
// Every store to the watched word that may unblock someone must be
// followed by wake. Waiters register in the waiters counter before they
// re-check the word, and wakers store before they read the counter, so
// either the waker sees the registration or the waiter sees the new value.
//
// Size: 4 byte counter + sync.Mutex + sync.Cond.
type waitQueue struct {
	waiters atomic.Int32
	mu      sync.Mutex
	cond    sync.Cond
}

// wait blocks while *addr == old. It may return early (spuriously); the
// caller must re-check its own condition.
func (q *waitQueue) wait(addr *atomic.Uint32, old uint32) {
	q.mu.Lock()
	if q.cond.L == nil {
		q.cond.L = &q.mu
	}
	q.waiters.Add(1)
	for addr.Load() == old {
		q.cond.Wait()
	}
	q.waiters.Add(-1)
	q.mu.Unlock()
}

// wake releases every parked goroutine. It costs one atomic load when
// nobody is parked.
func (q *waitQueue) wake() {
	if q.waiters.Load() == 0 {
		return
	}
	q.mu.Lock()
	if q.cond.L != nil {
		q.cond.Broadcast()
	}
	q.mu.Unlock()
}

// parked reports how many goroutines are currently inside wait.
func (q *waitQueue) parked() int {
	return int(q.waiters.Load())
}
