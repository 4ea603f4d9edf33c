package tables

import (
	"io"

	"github.com/goccy/go-yaml"

	"github.com/crosswalklabs/crosswalk/pkg/errors"
)

// yamlTable is the YAML wire form of a Table: explicit column order plus a
// sequence of field→value mappings with null cells omitted.
type yamlTable struct {
	Columns []string            `yaml:"columns"`
	Rows    []map[string]string `yaml:"rows"`
}

// ReadYAML reads a table from its YAML form.
func ReadYAML(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.WrapIO("read", "", err)
	}

	var wire yamlTable
	if err := yaml.Unmarshal(data, &wire); err != nil {
		return nil, errors.WrapParse("yaml", "", err)
	}

	table := New(wire.Columns...)
	for _, row := range wire.Rows {
		table.Append(Row(row))
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}
	return table, nil
}

// WriteYAML writes the table in its YAML form.
func WriteYAML(w io.Writer, t *Table) error {
	wire := yamlTable{
		Columns: t.Columns,
		Rows:    make([]map[string]string, 0, len(t.Rows)),
	}
	for _, row := range t.Rows {
		wire.Rows = append(wire.Rows, map[string]string(row))
	}

	data, err := yaml.MarshalWithOptions(wire,
		yaml.Indent(2),
		yaml.IndentSequence(false),
	)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return errors.WrapIO("write", "", err)
}
