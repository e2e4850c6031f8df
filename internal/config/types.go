package config

import "time"

// Config represents the darkroom configuration file structure
type Config struct {
	// InputDir is the directory scanned for source images
	InputDir string `yaml:"inputDir,omitempty" json:"inputDir,omitempty"`

	// OutputDir is the directory processed images are written into
	OutputDir string `yaml:"outputDir,omitempty" json:"outputDir,omitempty"`

	// Workers is the number of concurrent image workers
	Workers int `yaml:"workers,omitempty" json:"workers,omitempty"`

	// Transform is the pixel operation applied to each image
	// One of: invert, grayscale, fliph, flipv
	Transform string `yaml:"transform,omitempty" json:"transform,omitempty"`

	// Prefix overrides the transform's conventional output name prefix
	Prefix string `yaml:"prefix,omitempty" json:"prefix,omitempty"`

	// Extensions lists the file extensions treated as images
	Extensions []string `yaml:"extensions,omitempty" json:"extensions,omitempty"`

	// Quality is the JPEG encoding quality, 1 to 100
	Quality int `yaml:"quality,omitempty" json:"quality,omitempty"`

	// OutputFormat is the default report format (table, json, yaml)
	OutputFormat string `yaml:"outputFormat,omitempty" json:"outputFormat,omitempty"`

	// NoColor disables colored output
	NoColor bool `yaml:"noColor,omitempty" json:"noColor,omitempty"`

	// Watch contains watch-mode settings
	Watch WatchConfig `yaml:"watch,omitempty" json:"watch,omitempty"`
}

// WatchConfig contains watch-mode settings
type WatchConfig struct {
	// Settle is how long a new file must stay quiet before it is processed
	Settle time.Duration `yaml:"settle,omitempty" json:"settle,omitempty"`

	// IncludeExisting processes the files already present when a watch starts
	IncludeExisting bool `yaml:"includeExisting,omitempty" json:"includeExisting,omitempty"`
}
