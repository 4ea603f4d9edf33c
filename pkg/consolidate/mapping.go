package consolidate

import (
	"github.com/crosswalklabs/crosswalk/pkg/graph"
	"github.com/crosswalklabs/crosswalk/pkg/tables"
)

// Mapping maps, per field, every observed value to the canonical value its
// component chose for that field. Callers use it to normalize adjacent
// tables that carry the same identifiers.
type Mapping map[string]map[string]string

// Canonical returns the canonical value for a (field, value) observation.
func (m Mapping) Canonical(field, value string) (string, bool) {
	values, ok := m[field]
	if !ok {
		return "", false
	}
	canonical, ok := values[value]
	return canonical, ok
}

// Apply returns a copy of the table with every cell replaced by its
// canonical value. Cells never observed during consolidation pass through
// unchanged.
func (m Mapping) Apply(t *tables.Table) *tables.Table {
	out := tables.New(t.Columns...)
	for _, row := range t.Rows {
		mapped := make(tables.Row, len(row))
		for field, value := range row {
			if canonical, ok := m.Canonical(field, value); ok {
				mapped[field] = canonical
			} else {
				mapped[field] = value
			}
		}
		out.Append(mapped)
	}
	return out
}

// buildMapping folds every component's canonical record into one mapping:
// each observed value points at its component's canonical value for the
// value's field.
func buildMapping(components []graph.Component, records []tables.Row) Mapping {
	mapping := make(Mapping)
	for i, c := range components {
		for _, n := range c.Nodes {
			values, ok := mapping[n.Field]
			if !ok {
				values = make(map[string]string)
				mapping[n.Field] = values
			}
			values[n.Value] = records[i][n.Field]
		}
	}
	return mapping
}
