// Package output provides formatters for command output.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/crosswalklabs/crosswalk/pkg/tables"
)

// Format types for output.
type Format string

const (
	// FormatTable represents human-readable table output.
	FormatTable Format = "table"
	// FormatCSV represents CSV output.
	FormatCSV Format = "csv"
	// FormatJSON represents JSON output.
	FormatJSON Format = "json"
	// FormatYAML represents YAML output.
	FormatYAML Format = "yaml"
)

// Formatter renders a table to a writer.
type Formatter interface {
	Format(w io.Writer, t *tables.Table) error
}

// NewFormatter creates the formatter for a format.
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatCSV:
		return &CSVFormatter{}
	case FormatJSON:
		return &JSONFormatter{Indent: "  "}
	case FormatYAML:
		return &YAMLFormatter{}
	default:
		return &TableFormatter{}
	}
}

// CSVFormatter outputs CSV with null cells rendered empty.
type CSVFormatter struct{}

// Format implements the Formatter interface for CSV output.
func (f *CSVFormatter) Format(w io.Writer, t *tables.Table) error {
	return tables.WriteCSV(w, t)
}

// JSONFormatter outputs the table's JSON form.
type JSONFormatter struct {
	Indent string
}

// Format implements the Formatter interface for JSON output.
func (f *JSONFormatter) Format(w io.Writer, t *tables.Table) error {
	encoder := json.NewEncoder(w)
	if f.Indent != "" {
		encoder.SetIndent("", f.Indent)
	}
	return encoder.Encode(t)
}

// YAMLFormatter outputs the table's YAML form.
type YAMLFormatter struct{}

// Format implements the Formatter interface for YAML output.
func (f *YAMLFormatter) Format(w io.Writer, t *tables.Table) error {
	return tables.WriteYAML(w, t)
}

// TableFormatter renders an aligned text table with title-cased headers and
// "-" for null cells.
type TableFormatter struct{}

// Format implements the Formatter interface for table output.
func (f *TableFormatter) Format(w io.Writer, t *tables.Table) error {
	align := make([]tw.Align, len(t.Columns))
	for i := range align {
		align[i] = tw.AlignLeft
	}
	config := tablewriter.Config{}
	config.Header.Formatting.AutoFormat = tw.Off
	config.Header.Alignment = tw.CellAlignment{PerColumn: align}
	config.Row.Alignment = tw.CellAlignment{PerColumn: align}
	table := tablewriter.NewTable(w, tablewriter.WithConfig(config))

	title := cases.Title(language.English)
	headers := make([]any, len(t.Columns))
	for i, c := range t.Columns {
		headers[i] = title.String(strings.ReplaceAll(c, "_", " "))
	}
	table.Header(headers...)

	for _, row := range t.Rows {
		cells := make([]any, len(t.Columns))
		for i, c := range t.Columns {
			if value, ok := row[c]; ok {
				cells[i] = value
			} else {
				cells[i] = "-"
			}
		}
		if err := table.Append(cells...); err != nil {
			return err
		}
	}

	return table.Render()
}

// DetectFormat auto-detects format based on terminal and environment.
func DetectFormat(explicitFormat string) Format {
	if explicitFormat != "" {
		return Format(strings.ToLower(explicitFormat))
	}

	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return FormatTable
	}

	// Default to CSV for pipes/redirects
	return FormatCSV
}

// ParseFormat converts string to Format with validation.
func ParseFormat(s string) (Format, error) {
	format := Format(strings.ToLower(s))
	switch format {
	case FormatTable, FormatCSV, FormatJSON, FormatYAML, "":
		return format, nil
	default:
		return "", fmt.Errorf("invalid format %q: must be one of: table, csv, json, yaml", s)
	}
}
