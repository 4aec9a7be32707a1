package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"
)

type Formatter struct{}

func NewFormatter() Formatter {
	return Formatter{}
}

func (f Formatter) Format(report Report, format Format) (string, error) {
	switch format {
	case FormatTable:
		return formatTable(report), nil
	case FormatJSON:
		payload, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return "", err
		}
		return string(payload) + "\n", nil
	default:
		return "", ErrUnknownFormat
	}
}

func formatTable(report Report) string {
	if report.Summary.RecordCount == 0 {
		return formatEmpty(report)
	}

	var buffer bytes.Buffer
	appendSummary(&buffer, report.Summary)

	writer := tabwriter.NewWriter(&buffer, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(writer, "FILE\tLINE\tFORM\tMODULE\tTYPE-ONLY\tLOCALS")
	for _, file := range report.Files {
		for _, record := range file.Records {
			_, _ = fmt.Fprintln(writer, formatTableRow(file.Path, record))
		}
	}
	_ = writer.Flush()

	appendWarnings(&buffer, report.Warnings)
	return buffer.String()
}

func formatTableRow(path string, record Record) string {
	typeOnly := ""
	if record.TypeOnly {
		typeOnly = "yes"
	}
	return fmt.Sprintf("%s\t%d\t%s\t%s\t%s\t%s",
		path,
		record.Location.Line,
		record.Form,
		record.Module,
		typeOnly,
		strings.Join(record.Locals, ", "),
	)
}

func appendSummary(buffer *bytes.Buffer, summary Summary) {
	_, _ = fmt.Fprintf(
		buffer,
		"Summary: %d imports in %d files (static %d, require %d, dynamic %d, ambient %d, type-only %d)\n\n",
		summary.RecordCount,
		summary.FileCount,
		summary.StaticCount,
		summary.RequireCount,
		summary.DynamicCount,
		summary.AmbientCount,
		summary.TypeOnly,
	)
}

func appendWarnings(buffer *bytes.Buffer, warnings []string) {
	if len(warnings) == 0 {
		return
	}
	buffer.WriteString("\nWarnings:\n")
	for _, warning := range warnings {
		buffer.WriteString("- ")
		buffer.WriteString(warning)
		buffer.WriteString("\n")
	}
}

func formatEmpty(report Report) string {
	var buffer bytes.Buffer
	buffer.WriteString("No imports found.\n")
	appendWarnings(&buffer, report.Warnings)
	return buffer.String()
}
