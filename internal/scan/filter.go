package scan

import (
	"path/filepath"
	"sort"
	"strings"
)

// Filter decides which file names belong in the pipeline
// The zero value admits nothing; build one with NewFilter
type Filter struct {
	extensions map[string]bool
}

// NewFilter builds a filter allowing the given extensions
// Extensions are matched case-insensitively and a leading dot is optional,
// so "jpg", ".jpg" and ".JPG" all mean the same thing
func NewFilter(extensions []string) *Filter {
	set := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		set[ext] = true
	}
	return &Filter{extensions: set}
}

// Eligible reports whether the named file should be processed
// Hidden files are skipped regardless of extension
func (f *Filter) Eligible(name string) bool {
	if name == "" || strings.HasPrefix(name, ".") {
		return false
	}
	return f.extensions[strings.ToLower(filepath.Ext(name))]
}

// Extensions returns the allowed extensions, dotted and sorted
func (f *Filter) Extensions() []string {
	out := make([]string, 0, len(f.extensions))
	for ext := range f.extensions {
		out = append(out, ext)
	}
	sort.Strings(out)
	return out
}
