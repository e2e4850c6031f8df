package output

import (
	"io"

	"github.com/wraxau/AC-laba3/internal/pipeline"
	"gopkg.in/yaml.v3"
)

// YAMLFormatter formats output as YAML
type YAMLFormatter struct {
	options *Options
}

// NewYAMLFormatter creates a new YAML formatter
func NewYAMLFormatter(opts *Options) *YAMLFormatter {
	if opts == nil {
		opts = &Options{}
	}
	return &YAMLFormatter{
		options: opts,
	}
}

// Format outputs a single data item as YAML
func (f *YAMLFormatter) Format(w io.Writer, data interface{}) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer encoder.Close()

	return encoder.Encode(data)
}

// FormatReport outputs the results of a pipeline run as YAML
func (f *YAMLFormatter) FormatReport(w io.Writer, report *pipeline.Report) error {
	// Convert the report to a more YAML-friendly structure
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

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer encoder.Close()

	return encoder.Encode(output)
}
