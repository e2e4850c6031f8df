// Package queue provides an unbounded, thread-safe FIFO queue with a blocking
// removal operation.
//
// The queue is the single synchronization point between the darkroom producer
// and its workers: the producer appends work items (and, last, one shutdown
// marker per worker) while workers block on Pop until an item is handed to
// exactly one of them.
//
// # Guarantees
//
//   - FIFO order: items are returned in the order they were pushed
//   - Exactly-once delivery: each pushed item is returned by exactly one Pop
//   - Push never blocks and always succeeds (the queue has no capacity bound)
//   - Pop blocks until an item is available; there is no timeout and no
//     non-blocking variant
//   - A wake-up with an empty queue is re-checked, never acted on
//
// # Basic Usage
//
//	q := queue.New[string]()
//
//	go func() {
//	    q.Push("a")
//	    q.Push("b")
//	}()
//
//	first := q.Pop() // blocks until the producer pushes
//
// # Shutdown
//
// The queue itself has no close or cancel operation. Consumers are stopped by
// an in-band sentinel value: the producer pushes one recognizable marker per
// consumer after the real items, and each consumer exits when it pops one.
// Because markers are pushed after all work items and each is delivered
// exactly once, every consumer drains remaining work and then stops.
package queue
