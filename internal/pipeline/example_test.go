package pipeline_test

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/wraxau/AC-laba3/internal/pipeline"
)

// Example demonstrates wiring a source and a processor into a pipeline run
func Example() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelWarn, // Reduce log noise
	}))

	// Discover three files
	source := pipeline.SourceFunc(func(ctx context.Context, emit func(name, path string)) error {
		for _, name := range []string{"cat.jpg", "dog.png", "tree.jpeg"} {
			emit(name, filepath.Join("input_images", name))
		}
		return nil
	})

	// Pretend to invert each file
	proc := pipeline.ProcessorFunc(func(path string) (string, error) {
		return filepath.Join("output_images", "inverted_"+filepath.Base(path)), nil
	})

	pipe := pipeline.New(source, proc, 2, logger)

	report, err := pipe.Run(context.Background())
	if err != nil {
		fmt.Println("run failed:", err)
		return
	}

	for _, r := range report.Sorted() {
		fmt.Printf("%s -> %s\n", r.Task.Name, r.Output)
	}
	fmt.Printf("done: %d file(s), %d failed\n", report.Total(), len(report.Failed()))

	// Output:
	// cat.jpg -> output_images/inverted_cat.jpg
	// dog.png -> output_images/inverted_dog.png
	// tree.jpeg -> output_images/inverted_tree.jpeg
	// done: 3 file(s), 0 failed
}

// Example_failureHandling demonstrates that a broken file is reported in the
// results without stopping the rest of the batch
func Example_failureHandling() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError, // Reduce log noise
	}))

	source := pipeline.SourceFunc(func(ctx context.Context, emit func(name, path string)) error {
		for _, name := range []string{"broken.png", "cat.jpg", "dog.png"} {
			emit(name, filepath.Join("input_images", name))
		}
		return nil
	})

	proc := pipeline.ProcessorFunc(func(path string) (string, error) {
		if filepath.Base(path) == "broken.png" {
			return "", fmt.Errorf("decoding image: unexpected EOF")
		}
		return filepath.Join("output_images", "inverted_"+filepath.Base(path)), nil
	})

	pipe := pipeline.New(source, proc, 2, logger)

	report, err := pipe.Run(context.Background())
	if err != nil {
		fmt.Println("run failed:", err)
		return
	}

	for _, r := range report.Sorted() {
		if r.Err != nil {
			fmt.Printf("%s failed: %v\n", r.Task.Name, r.Err)
		} else {
			fmt.Printf("%s -> %s\n", r.Task.Name, r.Output)
		}
	}
	fmt.Printf("%d of %d failed\n", len(report.Failed()), report.Total())

	// Output:
	// broken.png failed: decoding image: unexpected EOF
	// cat.jpg -> output_images/inverted_cat.jpg
	// dog.png -> output_images/inverted_dog.png
	// 1 of 3 failed
}
