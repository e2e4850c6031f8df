// Package pipeline runs a batch of independent file tasks on a fixed pool of
// workers fed by one shared blocking queue.
//
// The package implements the producer/consumer pattern with sentinel-based
// termination: a single producer discovers work and enqueues it, N workers
// compete for items, and the producer finishes by enqueuing exactly N
// shutdown markers so that each worker receives exactly one and exits.
//
// # Roles
//
//   - Source discovers work items (a directory listing, a filesystem watch)
//   - Processor executes the body of one item (decode, transform, encode)
//   - Pipeline owns the queue, the producer goroutine, and the workers
//
// # Basic Usage
//
//	pipe := pipeline.New(source, processor, 4, logger)
//
//	report, err := pipe.Run(ctx)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(report.String())
//
// # Termination Protocol
//
// The producer pushes every discovered work item, then exactly one shutdown
// marker per worker. The markers go through the same FIFO queue as the work,
// so each worker drains its share of the remaining items before meeting a
// marker. This holds in every producer outcome: a normal finish, an empty
// source, and a discovery error all end with N markers, which is what makes
// Run's join unconditional. No worker can block forever on an abandoned
// queue.
//
// # Failure Model
//
// A task body failure is recorded in that task's Result, logged, and
// absorbed; the worker moves on to its next Pop. Nothing a Processor returns
// can stop a worker or the run. A discovery failure ends enumeration early
// and is returned from Run after the workers have drained and exited.
//
// # Concurrency Guarantees
//
//   - Each work item is executed by exactly one worker
//   - Dequeue order is the enqueue order (scheduling decides execution order)
//   - Workers share nothing but the queue; results are merged after the join
//   - Run returns only after the producer and every worker have finished
package pipeline
