package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wraxau/AC-laba3/internal/config"
	"github.com/wraxau/AC-laba3/internal/imgproc"
	"github.com/wraxau/AC-laba3/internal/output"
	"github.com/wraxau/AC-laba3/internal/pipeline"
	"github.com/wraxau/AC-laba3/internal/scan"
	"github.com/wraxau/AC-laba3/internal/util"
)

// runOptions holds the flag values shared by the run and watch commands
type runOptions struct {
	input      string
	outputDir  string
	transform  string
	prefix     string
	extensions []string
	quality    int
	strict     bool
	wide       bool

	// watch only
	settle   time.Duration
	existing bool
}

// bindFlags registers the shared processing flags on a command
func (o *runOptions) bindFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&o.input, "input", "i", "", fmt.Sprintf("input directory (default %q)", config.DefaultInputDir))
	flags.StringVar(&o.outputDir, "output-dir", "", fmt.Sprintf("output directory (default %q)", config.DefaultOutputDir))
	flags.StringVarP(&o.transform, "transform", "t", "", fmt.Sprintf("transform to apply (%s)", imgproc.TransformNames()))
	flags.StringVar(&o.prefix, "prefix", "", "output file name prefix (default derived from the transform)")
	flags.StringSliceVarP(&o.extensions, "extensions", "e", nil, "file extensions to process (default .jpg,.jpeg,.png)")
	flags.IntVarP(&o.quality, "quality", "q", 0, fmt.Sprintf("jpeg encode quality, 1-100 (default %d)", imgproc.DefaultQuality))
	flags.BoolVar(&o.strict, "strict", false, "exit with an error when any file fails")
	flags.BoolVar(&o.wide, "wide", false, "show worker and detail columns in table output")
}

func newRunCmd() *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Process all images in the input directory",
		Long: `Run a single processing pass over the input directory.

Every eligible image file is queued and handed to a pool of parallel
workers that decode it, apply the configured transform, and write the
result to the output directory. Failures of individual files are
reported but do not abort the run.`,
		Example: `  # Invert every image in input_images into output_images
  darkroom run

  # Grayscale with 8 workers from a custom directory
  darkroom run -i ./photos --output-dir ./processed -t grayscale -w 8

  # Fail the command when any file could not be processed
  darkroom run --strict

  # Machine-readable report
  darkroom run -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(cmd, opts)
		},
	}

	opts.bindFlags(cmd)

	return cmd
}

func runRun(cmd *cobra.Command, opts *runOptions) error {
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
	source := scan.NewScanner(cfg.InputDir, filter, logger)

	logger.Info("starting run",
		"input", cfg.InputDir,
		"output", cfg.OutputDir,
		"transform", proc.Transform(),
		"workers", cfg.Workers)

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

// resolveConfig loads the config file and overlays flags on top
// Persistent flags resolve through viper so environment variables and the
// config file keep their precedence; command flags apply only when set
func resolveConfig(cmd *cobra.Command, opts *runOptions) (*config.Config, error) {
	manager := config.NewManager(cfgFile)
	cfg, err := manager.Load()
	if err != nil {
		return nil, err
	}

	cfg.Workers = viper.GetInt("workers")
	if format := viper.GetString("output"); format != "" {
		cfg.OutputFormat = format
	}
	if viper.GetBool("no-color") {
		cfg.NoColor = true
	}

	flags := cmd.Flags()
	if flags.Changed("input") {
		cfg.InputDir = opts.input
	}
	if flags.Changed("output-dir") {
		cfg.OutputDir = opts.outputDir
	}
	if flags.Changed("transform") {
		cfg.Transform = opts.transform
	}
	if flags.Changed("prefix") {
		cfg.Prefix = opts.prefix
	}
	if flags.Changed("extensions") {
		cfg.Extensions = opts.extensions
	}
	if flags.Changed("quality") {
		cfg.Quality = opts.quality
	}
	if flags.Changed("settle") {
		cfg.Watch.Settle = opts.settle
	}
	if flags.Changed("existing") {
		cfg.Watch.IncludeExisting = opts.existing
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ensureDirs verifies the input directory exists and creates the output
// directory before any worker starts
func ensureDirs(cfg *config.Config) error {
	info, err := os.Stat(cfg.InputDir)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", util.ErrSourceNotFound, cfg.InputDir)
		}
		return fmt.Errorf("failed to access input directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", util.ErrSourceNotFound, cfg.InputDir)
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	return nil
}

// newProcessor builds the image processor from the resolved configuration
func newProcessor(cfg *config.Config, logger *slog.Logger) (*imgproc.Processor, error) {
	return imgproc.NewProcessor(imgproc.Config{
		OutputDir: cfg.OutputDir,
		Transform: imgproc.Transform(cfg.Transform),
		Prefix:    cfg.Prefix,
		Quality:   cfg.Quality,
	}, logger)
}

// printReport renders the report in the configured format
func printReport(w io.Writer, report *pipeline.Report, cfg *config.Config, wide bool) error {
	formatter := output.NewFormatter(
		output.Format(cfg.OutputFormat),
		output.WithNoColor(cfg.NoColor),
		output.WithWide(wide),
	)
	return formatter.FormatReport(w, report)
}

// strictErr converts failed results into an error for --strict mode
func strictErr(report *pipeline.Report, strict bool) error {
	if !strict {
		return nil
	}

	failed := report.Failed()
	if len(failed) == 0 {
		return nil
	}

	errs := make([]error, 0, len(failed))
	for _, r := range failed {
		errs = append(errs, util.WrapTaskError(r.Task.Name, r.Err))
	}

	return fmt.Errorf("%d file(s) failed: %w", len(failed), util.CombineErrors(errs...))
}
