package queue

import "sync"

// compactAfter is the number of consumed slots the queue tolerates at the
// front of its backing slice before shifting the live items down
const compactAfter = 64

// Queue is an unbounded FIFO queue safe for any number of concurrent
// producers and consumers
// All operations are guarded by a single mutex held only for the O(1)
// enqueue or dequeue itself, never while callers do their own work
// A Queue must be created with New; the zero value is not usable
type Queue[T any] struct {
	mu   sync.Mutex
	cond *sync.Cond

	// items[head:] holds the queued elements, oldest first
	// Consumed slots before head are zeroed so the queue does not pin
	// payload memory
	items []T
	head  int
}

// New creates an empty queue
func New[T any]() *Queue[T] {
	q := &Queue[T]{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// Push appends item to the tail of the queue and wakes one goroutine blocked
// in Pop, if any
// It never blocks and always succeeds; the mutex establishes the
// happens-before edge that makes the item visible to whichever consumer
// receives it
func (q *Queue[T]) Push(item T) {
	q.mu.Lock()
	q.items = append(q.items, item)
	q.mu.Unlock()

	// Signal after unlock so the woken consumer does not immediately park
	// again on the mutex we still hold
	q.cond.Signal()
}

// Pop removes and returns the item at the head of the queue, blocking until
// one is available
// There is no timeout: a Pop on a queue that never receives another Push
// blocks forever
// The wait condition is re-checked in a loop, so a spurious wake-up (or a
// wake-up raced away by another consumer) puts the caller back to sleep
// instead of returning a stale or duplicate item
func (q *Queue[T]) Pop() T {
	q.mu.Lock()
	defer q.mu.Unlock()

	for q.head == len(q.items) {
		q.cond.Wait()
	}

	item := q.items[q.head]
	var zero T
	q.items[q.head] = zero
	q.head++
	q.compact()
	return item
}

// Len returns the number of items currently queued
// The value is a snapshot: with concurrent producers or consumers it may be
// stale by the time the caller acts on it
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items) - q.head
}

// compact reclaims the consumed prefix of the backing slice
// Called with the mutex held
func (q *Queue[T]) compact() {
	if q.head == len(q.items) {
		q.items = q.items[:0]
		q.head = 0
		return
	}
	if q.head >= compactAfter && q.head >= len(q.items)-q.head {
		n := copy(q.items, q.items[q.head:])
		clear(q.items[n:])
		q.items = q.items[:n]
		q.head = 0
	}
}
