package tables

import (
	"encoding/csv"
	"io"

	"github.com/crosswalklabs/crosswalk/pkg/errors"
)

// ReadCSV reads a table from CSV. The first record is the header; cells
// holding a null marker are dropped.
func ReadCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.NewSchemaError("csv input has no header")
	}
	if err != nil {
		return nil, errors.WrapParse("csv", "", err)
	}

	table := New(header...)
	if err := table.Validate(); err != nil {
		return nil, err
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.WrapParse("csv", "", err)
		}
		row := make(Row, len(header))
		for i, field := range header {
			if i < len(record) {
				row[field] = record[i]
			}
		}
		table.Append(row)
	}

	return table, nil
}

// WriteCSV writes the table as CSV, rendering null cells as empty strings.
func WriteCSV(w io.Writer, t *Table) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(t.Columns); err != nil {
		return errors.WrapIO("write", "", err)
	}

	record := make([]string, len(t.Columns))
	for _, row := range t.Rows {
		for i, field := range t.Columns {
			record[i] = row[field] // zero value for null cells
		}
		if err := writer.Write(record); err != nil {
			return errors.WrapIO("write", "", err)
		}
	}

	writer.Flush()
	return errors.WrapIO("write", "", writer.Error())
}
