// Package output provides formatters for displaying pipeline run results.
//
// The package supports multiple output formats (table, JSON, YAML) and provides
// a unified interface for formatting both generic data and full run reports.
//
// # Features
//
//   - Multiple output formats: table (borderless), JSON, and YAML
//   - Color support with automatic TTY detection
//   - Configurable options (no-color, no-headers, wide mode)
//   - Stable ordering: report rows are sorted by file name
//
// # Basic Usage
//
//	// Create a table formatter
//	formatter := output.NewFormatter(output.FormatTable)
//
//	// Format single data item
//	data := map[string]interface{}{"key": "value"}
//	formatter.Format(os.Stdout, data)
//
//	// Format a pipeline run report
//	report, err := pipe.Run(ctx)
//	formatter.FormatReport(os.Stdout, report)
//
// # Options
//
// Formatters can be configured with functional options:
//
//	formatter := output.NewFormatter(
//	    output.FormatTable,
//	    output.WithNoColor(true),
//	    output.WithWide(true),
//	)
//
// # Formatters
//
// Table Formatter:
//   - Borderless tables with tab-separated columns
//   - Optional color highlighting for status, errors, and file names
//   - Summary line with success/failure counts and elapsed time
//   - Wide mode adds worker index and a detail column (output path or error)
//
// JSON Formatter:
//   - Clean, indented JSON output
//   - Suitable for scripting and automation
//   - Single document per run with run id, totals, and per-file results
//
// YAML Formatter:
//   - Human-readable YAML output
//   - Same document structure as the JSON formatter
//
// # Color Support
//
// Colors are automatically enabled for TTY outputs and can be disabled with:
//   - WithNoColor(true) option
//   - Non-TTY output (pipes, redirects)
//
// Color scheme:
//   - File names: Cyan, Bold
//   - Success status: Green
//   - Error messages: Red, Bold
//   - Warnings: Yellow
//   - Headers: White, Bold
//   - Durations: Blue
package output
