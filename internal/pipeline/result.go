package pipeline

import (
	"fmt"
	"sort"
	"time"
)

// Result holds the outcome of one processed work item
type Result struct {
	// Task is the work item as it was dequeued
	Task Task

	// Output is the path of the file the processor wrote
	// Empty when the task failed
	Output string

	// Err is the processing error, nil on success
	Err error

	// Duration is the wall time the task body took
	Duration time.Duration

	// Worker is the index of the worker that executed the task
	Worker int
}

// Succeeded reports whether the task completed without error
func (r Result) Succeeded() bool {
	return r.Err == nil
}

// Report aggregates the results of one pipeline run
type Report struct {
	// RunID uniquely identifies the run across log lines and output
	RunID string

	// Results holds one entry per processed work item, in completion order
	// per worker. Use Sorted for a name-ordered view
	Results []Result

	// Workers is the number of consumers the run was started with
	Workers int

	// Elapsed is the wall time of the whole run, discovery included
	Elapsed time.Duration
}

// Total returns the number of processed work items
func (rep *Report) Total() int {
	return len(rep.Results)
}

// Succeeded returns the results that completed without error
func (rep *Report) Succeeded() []Result {
	out := make([]Result, 0, len(rep.Results))
	for _, r := range rep.Results {
		if r.Succeeded() {
			out = append(out, r)
		}
	}
	return out
}

// Failed returns the results that ended in an error
func (rep *Report) Failed() []Result {
	out := make([]Result, 0)
	for _, r := range rep.Results {
		if !r.Succeeded() {
			out = append(out, r)
		}
	}
	return out
}

// Sorted returns a copy of the results ordered by task name
func (rep *Report) Sorted() []Result {
	out := make([]Result, len(rep.Results))
	copy(out, rep.Results)
	sort.Slice(out, func(i, j int) bool {
		return out[i].Task.Name < out[j].Task.Name
	})
	return out
}

// TotalDuration sums the task body durations across all results
// With several workers this exceeds Elapsed; the ratio is the effective
// parallelism of the run
func (rep *Report) TotalDuration() time.Duration {
	var total time.Duration
	for _, r := range rep.Results {
		total += r.Duration
	}
	return total
}

// String renders a one-line summary of the run
func (rep *Report) String() string {
	failed := len(rep.Failed())
	if failed == 0 {
		return fmt.Sprintf("processed %d file(s) with %d worker(s) in %s",
			rep.Total(), rep.Workers, rep.Elapsed.Round(time.Millisecond))
	}
	return fmt.Sprintf("processed %d file(s) with %d worker(s) in %s, %d failed",
		rep.Total(), rep.Workers, rep.Elapsed.Round(time.Millisecond), failed)
}
