package imgproc

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/wraxau/AC-laba3/internal/util"
)

// DefaultQuality is the JPEG encoding quality used when none is configured
const DefaultQuality = 95

// Config controls how processed images are produced
type Config struct {
	// OutputDir is the directory processed files are written into
	// It must exist before processing starts
	OutputDir string

	// Transform is the pixel operation applied to each image
	Transform Transform

	// Prefix is prepended to each output file name
	// Empty means the transform's conventional prefix
	Prefix string

	// Quality is the JPEG encoding quality, 1 to 100
	// Zero means DefaultQuality; it only affects JPEG outputs
	Quality int
}

// Processor applies one transform to image files
// A processor holds no per-file state, so a single instance serves all
// pipeline workers concurrently
type Processor struct {
	config Config
	logger *slog.Logger
}

// NewProcessor validates the configuration and builds a processor
func NewProcessor(config Config, logger *slog.Logger) (*Processor, error) {
	if config.OutputDir == "" {
		return nil, fmt.Errorf("%w: output directory is required", util.ErrInvalidConfig)
	}

	if config.Transform == "" {
		config.Transform = DefaultTransform
	}
	transform, err := ParseTransform(string(config.Transform))
	if err != nil {
		return nil, err
	}
	config.Transform = transform

	if config.Quality == 0 {
		config.Quality = DefaultQuality
	}
	if config.Quality < 1 || config.Quality > 100 {
		return nil, fmt.Errorf("%w: quality must be between 1 and 100, got %d", util.ErrInvalidConfig, config.Quality)
	}

	if config.Prefix == "" {
		config.Prefix = config.Transform.DefaultPrefix()
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Processor{
		config: config,
		logger: logger,
	}, nil
}

// Transform returns the pixel operation the processor applies
func (p *Processor) Transform() Transform {
	return p.config.Transform
}

// OutputPath returns where the processed version of path will be written
func (p *Processor) OutputPath(path string) string {
	return filepath.Join(p.config.OutputDir, p.config.Prefix+filepath.Base(path))
}

// Process decodes the image at path, applies the transform and encodes the
// result into the output directory
// Decoding honors EXIF orientation; the encoding format follows the output
// file extension
func (p *Processor) Process(path string) (string, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("decoding image: %w", err)
	}

	transformed := p.config.Transform.apply(img)

	outPath := p.OutputPath(path)
	if err := imaging.Save(transformed, outPath, imaging.JPEGQuality(p.config.Quality)); err != nil {
		return "", fmt.Errorf("encoding image: %w", err)
	}

	p.logger.Debug("image processed",
		"input", path,
		"output", outPath,
		"transform", p.config.Transform)

	return outPath, nil
}
