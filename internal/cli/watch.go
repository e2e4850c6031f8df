package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/wraxau/AC-laba3/internal/config"
	"github.com/wraxau/AC-laba3/internal/pipeline"
	"github.com/wraxau/AC-laba3/internal/scan"
)

func newWatchCmd() *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch the input directory and process new images",
		Long: `Watch the input directory and process image files as they appear.

New files are picked up by a filesystem watcher, held back until their
writes settle, and pushed through the same worker pool as a normal run.
The command keeps going until interrupted; on shutdown the workers drain
the queue and a report covering everything processed is printed.`,
		Example: `  # Watch input_images until Ctrl-C
  darkroom watch

  # Process the files already there first, then keep watching
  darkroom watch --existing

  # Give slow copies a full second to finish
  darkroom watch --settle 1s

  # Grayscale new files with 2 workers
  darkroom watch -t grayscale -w 2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, opts)
		},
	}

	opts.bindFlags(cmd)
	cmd.Flags().DurationVar(&opts.settle, "settle", 0, fmt.Sprintf("time a new file must stay unchanged before processing (default %s)", config.DefaultSettle))
	cmd.Flags().BoolVar(&opts.existing, "existing", false, "also process files already in the input directory")

	return cmd
}

func runWatch(cmd *cobra.Command, opts *runOptions) error {
	ctx := cmd.Context()
	logger := slog.Default()

	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}

	if err := ensureDirs(cfg); err != nil {
		return err
	}

	proc, err := newProcessor(cfg, logger)
	if err != nil {
		return err
	}

	filter := scan.NewFilter(cfg.Extensions)
	source := scan.NewWatcher(cfg.InputDir, filter, scan.WatchConfig{
		Settle:          cfg.Watch.Settle,
		IncludeExisting: cfg.Watch.IncludeExisting,
	}, logger)

	logger.Info("starting watch",
		"input", cfg.InputDir,
		"output", cfg.OutputDir,
		"transform", proc.Transform(),
		"workers", cfg.Workers,
		"settle", cfg.Watch.Settle)

	pipe := pipeline.New(source, proc, cfg.Workers, logger)

	report, runErr := pipe.Run(ctx)
	if report != nil {
		if err := printReport(cmd.OutOrStdout(), report, cfg, opts.wide); err != nil {
			return err
		}
	}
	if runErr != nil {
		return runErr
	}

	return strictErr(report, opts.strict)
}
