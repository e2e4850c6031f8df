package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/wraxau/AC-laba3/internal/pipeline"
	"github.com/wraxau/AC-laba3/internal/util"
)

// detailWidth caps the DETAIL column in wide mode
const detailWidth = 50

// TableFormatter formats output as a borderless table
type TableFormatter struct {
	options *Options
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter(opts *Options) *TableFormatter {
	if opts == nil {
		opts = &Options{}
	}
	return &TableFormatter{
		options: opts,
	}
}

// Format outputs a single data item as a table
func (f *TableFormatter) Format(w io.Writer, data interface{}) error {
	table := f.createTable(w)

	switch v := data.(type) {
	case map[string]interface{}:
		return f.formatMap(table, v)
	case []map[string]interface{}:
		return f.formatMapSlice(table, v)
	case string:
		fmt.Fprintln(w, v)
		return nil
	default:
		fmt.Fprintln(w, v)
		return nil
	}
}

// FormatReport outputs the results of a pipeline run as a table
// Rows are ordered by file name so output is stable across runs
func (f *TableFormatter) FormatReport(w io.Writer, report *pipeline.Report) error {
	if report.Total() == 0 {
		fmt.Fprintln(w, "No files processed")
		return nil
	}

	colors := NewColorScheme(w, f.options.NoColor)

	table := f.createTable(w)

	headers := []string{"FILE", "STATUS", "DURATION"}
	if f.options.Wide {
		headers = append(headers, "WORKER", "DETAIL")
	}

	if !f.options.NoHeaders {
		if colors.Disabled {
			table.SetHeader(headers)
		} else {
			coloredHeaders := make([]string, len(headers))
			for i, h := range headers {
				coloredHeaders[i] = colors.Header(h)
			}
			table.SetHeader(coloredHeaders)
		}
	}

	for _, result := range report.Sorted() {
		row := f.formatResultRow(result, colors)
		table.Append(row)
	}

	table.Render()

	f.printSummary(w, report, colors)

	return nil
}

// formatResultRow formats a single result as a table row
func (f *TableFormatter) formatResultRow(result pipeline.Result, colors *ColorScheme) []string {
	name := result.Task.Name
	if !colors.Disabled {
		name = colors.File(name)
	}

	status := "Success"
	if result.Err != nil {
		status = "Failed"
	}
	if !colors.Disabled {
		status = colors.StatusColor(result.Err != nil)(status)
	}

	duration := result.Duration.String()
	if !colors.Disabled {
		duration = colors.Duration(duration)
	}

	row := []string{name, status, duration}

	if f.options.Wide {
		detail := ""
		if result.Err != nil {
			detail = util.Truncate(result.Err.Error(), detailWidth)
		} else if result.Output != "" {
			detail = util.ShortPath(result.Output, detailWidth)
		}
		row = append(row, strconv.Itoa(result.Worker), detail)
	}

	return row
}

// formatMap formats a map as a two-column table (key-value pairs)
func (f *TableFormatter) formatMap(table *tablewriter.Table, data map[string]interface{}) error {
	if !f.options.NoHeaders {
		table.SetHeader([]string{"KEY", "VALUE"})
	}

	for k, v := range data {
		table.Append([]string{k, fmt.Sprintf("%v", v)})
	}

	table.Render()
	return nil
}

// formatMapSlice formats a slice of maps as a table
func (f *TableFormatter) formatMapSlice(table *tablewriter.Table, data []map[string]interface{}) error {
	if len(data) == 0 {
		return nil
	}

	var headers []string
	for k := range data[0] {
		headers = append(headers, strings.ToUpper(k))
	}

	if !f.options.NoHeaders {
		table.SetHeader(headers)
	}

	for _, item := range data {
		var row []string
		for _, h := range headers {
			key := strings.ToLower(h)
			row = append(row, fmt.Sprintf("%v", item[key]))
		}
		table.Append(row)
	}

	table.Render()
	return nil
}

// createTable creates a new table with borderless, tab-separated configuration
func (f *TableFormatter) createTable(w io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(w)

	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	table.SetNoWhiteSpace(true)

	return table
}

// printSummary prints a summary line below the table
func (f *TableFormatter) printSummary(w io.Writer, report *pipeline.Report, colors *ColorScheme) {
	succeeded := len(report.Succeeded())
	failed := len(report.Failed())

	fmt.Fprintln(w, "")
	fmt.Fprintf(w, "Summary: ")

	successText := fmt.Sprintf("%d successful", succeeded)
	if !colors.Disabled {
		successText = colors.Success(successText)
	}

	failedText := fmt.Sprintf("%d failed", failed)
	if !colors.Disabled && failed > 0 {
		failedText = colors.Error(failedText)
	}

	elapsedText := fmt.Sprintf("elapsed=%s", report.Elapsed.Round(1000))
	if !colors.Disabled {
		elapsedText = colors.Duration(elapsedText)
	}

	fmt.Fprintf(w, "%s, %s, %s\n", successText, failedText, elapsedText)
}
