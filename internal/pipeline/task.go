package pipeline

import "fmt"

// Kind discriminates what a queued Task means to a worker
type Kind int

const (
	// KindWork marks a task that carries a file to process
	KindWork Kind = iota

	// KindShutdown marks a sentinel that instructs the receiving worker to
	// exit. Shutdown markers carry no payload
	KindShutdown
)

// String returns a short lower-case label for the kind
func (k Kind) String() string {
	switch k {
	case KindWork:
		return "work"
	case KindShutdown:
		return "shutdown"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Task is one element of the pipeline's queue: either a unit of work or a
// shutdown marker
// The Kind field is the sole discriminator; payload fields of a shutdown
// marker are zero and must not be interpreted
type Task struct {
	// Kind tells a worker whether to process the task or exit
	Kind Kind

	// Name is the base name of the file, used for reporting and output
	// naming. Empty for shutdown markers
	Name string

	// Path is the location of the input file on disk
	// Empty for shutdown markers
	Path string
}

// WorkItem builds a work task for one file
func WorkItem(name, path string) Task {
	return Task{Kind: KindWork, Name: name, Path: path}
}

// ShutdownMarker builds the sentinel that terminates one worker
func ShutdownMarker() Task {
	return Task{Kind: KindShutdown}
}

// IsShutdown reports whether the task is a termination sentinel
func (t Task) IsShutdown() bool {
	return t.Kind == KindShutdown
}

// String renders the task for logs
func (t Task) String() string {
	if t.IsShutdown() {
		return "shutdown marker"
	}
	return fmt.Sprintf("%s (%s)", t.Name, t.Path)
}
