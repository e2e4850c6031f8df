package scan

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Scanner emits every eligible regular file of one directory
// Entries come out in directory order, which os.ReadDir keeps sorted by
// name, so discovery order is stable across runs
type Scanner struct {
	dir    string
	filter *Filter
	logger *slog.Logger
}

// NewScanner creates a scanner over dir using the given filter
func NewScanner(dir string, filter *Filter, logger *slog.Logger) *Scanner {
	if logger == nil {
		logger = slog.Default()
	}

	return &Scanner{
		dir:    dir,
		filter: filter,
		logger: logger,
	}
}

// Items lists the directory once and emits each eligible file
func (s *Scanner) Items(ctx context.Context, emit func(name, path string)) error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return fmt.Errorf("reading input directory: %w", err)
	}

	found := 0
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}

		name := entry.Name()

		if entry.IsDir() {
			s.logger.Debug("skipping directory", "name", name)
			continue
		}

		if !entry.Type().IsRegular() {
			s.logger.Debug("skipping irregular file", "name", name)
			continue
		}

		if !s.filter.Eligible(name) {
			s.logger.Debug("skipping filtered file", "name", name)
			continue
		}

		emit(name, filepath.Join(s.dir, name))
		found++
	}

	s.logger.Debug("directory scan complete", "dir", s.dir, "eligible", found)

	return nil
}
