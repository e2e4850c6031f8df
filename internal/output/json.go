package output

import (
	"encoding/json"
	"io"

	"github.com/wraxau/AC-laba3/internal/pipeline"
)

// JSONFormatter formats output as JSON
type JSONFormatter struct {
	options *Options
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter(opts *Options) *JSONFormatter {
	if opts == nil {
		opts = &Options{}
	}
	return &JSONFormatter{
		options: opts,
	}
}

// Format outputs a single data item as JSON
func (f *JSONFormatter) Format(w io.Writer, data interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// FormatReport outputs the results of a pipeline run as JSON
func (f *JSONFormatter) FormatReport(w io.Writer, report *pipeline.Report) error {
	// Convert the report to a more JSON-friendly structure
	results := make([]map[string]interface{}, 0, report.Total())

	for _, result := range report.Sorted() {
		item := map[string]interface{}{
			"file":     result.Task.Name,
			"duration": result.Duration.String(),
			"worker":   result.Worker,
		}

		if result.Err != nil {
			item["status"] = "failed"
			item["error"] = result.Err.Error()
		} else {
			item["status"] = "success"
			item["output"] = result.Output
		}

		results = append(results, item)
	}

	output := map[string]interface{}{
		"runId":     report.RunID,
		"workers":   report.Workers,
		"elapsed":   report.Elapsed.String(),
		"total":     report.Total(),
		"succeeded": len(report.Succeeded()),
		"failed":    len(report.Failed()),
		"results":   results,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
