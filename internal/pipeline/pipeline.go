package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/wraxau/AC-laba3/internal/queue"
	"github.com/wraxau/AC-laba3/internal/util"
)

// Source enumerates the work items of one run
// Implementations discover files and hand them to emit one at a time;
// returning an error ends enumeration early
type Source interface {
	// Items calls emit once per discovered file, in discovery order
	// The name is the file's base name, the path its location on disk
	// Items must return once enumeration is done or the context is cancelled
	Items(ctx context.Context, emit func(name, path string)) error
}

// Processor executes the body of one work item
type Processor interface {
	// Process transforms the file at path and returns the path of the file
	// it wrote. An error marks the task as failed; it never stops the run
	Process(path string) (string, error)
}

// SourceFunc adapts a plain function to the Source interface
type SourceFunc func(ctx context.Context, emit func(name, path string)) error

// Items calls fn.
func (fn SourceFunc) Items(ctx context.Context, emit func(name, path string)) error {
	return fn(ctx, emit)
}

// ProcessorFunc adapts a plain function to the Processor interface
type ProcessorFunc func(path string) (string, error)

// Process calls fn.
func (fn ProcessorFunc) Process(path string) (string, error) {
	return fn(path)
}

// Pipeline wires one producer and a fixed set of consumer workers to a
// shared blocking queue
// The producer enumerates the Source; the workers run the Processor on each
// item and exit when they receive a shutdown marker
type Pipeline struct {
	// workers is the number of consumer goroutines
	workers int

	// source discovers the work items
	source Source

	// proc executes the body of each work item
	proc Processor

	// logger for structured logging
	logger *slog.Logger

	// tasks is the queue the producer fills and the workers drain
	tasks *queue.Queue[Task]

	// enqueued counts the work items pushed in the current run
	enqueued atomic.Int64

	// running guards against overlapping Run calls
	running atomic.Bool
}

// New creates a pipeline over the given source and processor
// workers must be > 0, otherwise it defaults to 1
func New(source Source, proc Processor, workers int, logger *slog.Logger) *Pipeline {
	if workers <= 0 {
		workers = 1
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Pipeline{
		workers: workers,
		source:  source,
		proc:    proc,
		logger:  logger,
		tasks:   queue.New[Task](),
	}
}

// Run executes one full produce/process cycle and blocks until the producer
// and every worker have finished
// The returned report covers every work item the producer enqueued
// A discovery error is returned alongside the report of whatever was
// processed before the failure; task body errors live in the report only
func (p *Pipeline) Run(ctx context.Context) (*Report, error) {
	if p.source == nil {
		return nil, fmt.Errorf("pipeline has no source")
	}

	if p.proc == nil {
		return nil, fmt.Errorf("pipeline has no processor")
	}

	if !p.running.CompareAndSwap(false, true) {
		return nil, fmt.Errorf("pipeline is already running")
	}
	defer p.running.Store(false)

	runID := uuid.NewString()
	logger := p.logger.With("run_id", runID)

	p.enqueued.Store(0)
	start := time.Now()

	logger.Info("starting pipeline", "workers", p.workers)

	// Producer: enumerate the source, then release the workers
	prodErr := make(chan error, 1)
	go p.produce(ctx, logger, prodErr)

	// Consumers: each worker fills its own result bucket; the buckets are
	// merged after the join so the workers share nothing but the queue
	perWorker := make([][]Result, p.workers)

	var wg sync.WaitGroup
	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			perWorker[id] = p.consume(ctx, id, logger)
		}(i)
	}

	wg.Wait()
	err := <-prodErr

	report := &Report{
		RunID:   runID,
		Workers: p.workers,
		Elapsed: time.Since(start),
	}
	for _, results := range perWorker {
		report.Results = append(report.Results, results...)
	}

	succeeded := len(report.Succeeded())
	logger.Info("pipeline finished",
		"total", report.Total(),
		"successful", succeeded,
		"failed", report.Total()-succeeded,
		"duration", report.Elapsed)

	if err != nil {
		return report, fmt.Errorf("discovering work: %w", err)
	}

	return report, nil
}

// produce enumerates the source and pushes one work task per discovered
// file, then exactly one shutdown marker per worker
// The markers go out on every return path, so a discovery error still
// releases all workers; the error itself is handed back to Run over the
// done channel
func (p *Pipeline) produce(ctx context.Context, logger *slog.Logger, done chan<- error) {
	defer func() {
		for i := 0; i < p.workers; i++ {
			p.tasks.Push(ShutdownMarker())
		}
		logger.Debug("producer finished",
			"items", p.enqueued.Load(),
			"markers", p.workers)
	}()

	err := p.source.Items(ctx, func(name, path string) {
		p.tasks.Push(WorkItem(name, path))
		total := p.enqueued.Add(1)
		logger.Debug("work item enqueued", "file", name, "total", total)
	})

	done <- err
}

// consume pops tasks until a shutdown marker arrives
// Work items are executed in dequeue order; a failed item is recorded and
// the worker moves on, so one bad file never stops a worker
func (p *Pipeline) consume(ctx context.Context, workerID int, logger *slog.Logger) []Result {
	logger.Debug("worker started", "worker_id", workerID)

	var results []Result
	for {
		task := p.tasks.Pop()
		if task.IsShutdown() {
			logger.Debug("worker finished",
				"worker_id", workerID,
				"processed", len(results))
			return results
		}

		results = append(results, p.execute(ctx, workerID, logger, task))
	}
}

// execute runs the task body and packages the outcome
func (p *Pipeline) execute(ctx context.Context, workerID int, logger *slog.Logger, task Task) Result {
	startTime := time.Now()

	// A cancelled run still drains the queue so the shutdown handshake
	// completes; the remaining items are recorded as cancelled instead of
	// executed
	if err := ctx.Err(); err != nil {
		return Result{
			Task:     task,
			Err:      fmt.Errorf("%w: %w", util.ErrCancelled, err),
			Duration: time.Since(startTime),
			Worker:   workerID,
		}
	}

	logger.Debug("executing task", "worker_id", workerID, "file", task.Name)

	output, err := p.proc.Process(task.Path)
	duration := time.Since(startTime)

	if err != nil {
		logger.Warn("task failed",
			"worker_id", workerID,
			"file", task.Name,
			"error", err,
			"duration", duration)
	} else {
		logger.Debug("task succeeded",
			"worker_id", workerID,
			"file", task.Name,
			"output", output,
			"duration", duration)
	}

	return Result{
		Task:     task,
		Output:   output,
		Err:      err,
		Duration: duration,
		Worker:   workerID,
	}
}

// IsRunning returns true if the pipeline is currently executing a run
func (p *Pipeline) IsRunning() bool {
	return p.running.Load()
}

// WorkerCount returns the number of consumer workers
func (p *Pipeline) WorkerCount() int {
	return p.workers
}

// QueueLen returns the number of tasks currently sitting in the queue
func (p *Pipeline) QueueLen() int {
	return p.tasks.Len()
}

// Enqueued returns the number of work items the producer pushed in the most
// recent run
func (p *Pipeline) Enqueued() int64 {
	return p.enqueued.Load()
}
