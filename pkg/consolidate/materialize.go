package consolidate

import (
	"github.com/crosswalklabs/crosswalk/pkg/graph"
	"github.com/crosswalklabs/crosswalk/pkg/tables"
)

// entityTable emits one row per component: the consolidated output table.
// Columns are the union of every input field, in input column order.
func entityTable(columns []string, records []tables.Row) *tables.Table {
	out := tables.New(columns...)
	for _, record := range records {
		out.Append(record)
	}
	return out
}

// rowPreservingTable maps every original input row to its owning
// component's consolidated record, keeping one-to-one row alignment with
// the input. A row with no non-null values owns no component and yields an
// all-null record.
func rowPreservingTable(input *tables.Table, records []tables.Row, index map[string]int) *tables.Table {
	out := tables.New(input.Columns...)
	for _, row := range input.Rows {
		obs := graph.Observations(row, input.Columns)
		if len(obs) == 0 {
			out.Append(tables.Row{})
			continue
		}
		// Every value of a row lands in the same component, so any
		// observation locates the owning record.
		out.Append(records[index[obs[0].Value]])
	}
	return out
}
