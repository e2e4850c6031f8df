package util

import (
	"path/filepath"
	"strings"
)

// ShortPath compacts a long path for table display.
// The middle of the path is replaced with an ellipsis so the leading
// directory and the file name both stay visible. The file name itself is
// never cut, even when it alone exceeds max.
func ShortPath(path string, max int) string {
	if max <= 0 || len(path) <= max {
		return path
	}

	base := filepath.Base(path)

	// No room for any meaningful prefix
	if len(base)+len(".../") >= max {
		return base
	}

	keep := max - len(base) - len(".../")
	prefix := path[:keep]

	// Cut at a separator when one is close, so the prefix stays a readable
	// directory fragment
	if idx := strings.LastIndexByte(prefix, filepath.Separator); idx > 0 {
		prefix = prefix[:idx+1]
	}

	return prefix + ".../" + base
}

// Truncate shortens s to max runes, marking the cut with an ellipsis
func Truncate(s string, max int) string {
	if max <= 3 {
		max = 3
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
