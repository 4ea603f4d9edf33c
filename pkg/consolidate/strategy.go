package consolidate

import (
	"github.com/crosswalklabs/crosswalk/pkg/graph"
	"github.com/crosswalklabs/crosswalk/pkg/tables"
)

// Strategy picks one canonical value per field for a component. Strategies
// must be deterministic: the same component always yields the same record.
type Strategy interface {
	// Name identifies the strategy in logs and results.
	Name() string

	// Canonical returns the field→value record for one component. Fields
	// not present in the component are absent from the returned row.
	Canonical(c graph.Component) tables.Row
}

// maxCount selects, per field, the value observed in the most rows.
// Ties prefer the value observed in the earliest input row, then the
// lexicographically smallest value.
type maxCount struct{}

// MaxCount returns the default frequency-majority strategy.
func MaxCount() Strategy {
	return maxCount{}
}

// Name identifies the strategy.
func (maxCount) Name() string { return "max-count" }

// Canonical returns the majority value per field present in the component.
func (maxCount) Canonical(c graph.Component) tables.Row {
	best := make(map[string]*graph.Node, len(c.Nodes))
	for _, n := range c.Nodes {
		cur, ok := best[n.Field]
		if !ok || preferred(n, cur) {
			best[n.Field] = n
		}
	}

	record := make(tables.Row, len(best))
	for field, n := range best {
		record[field] = n.Value
	}
	return record
}

// preferred reports whether candidate beats the current best node:
// higher count, then earlier first observation, then smaller value.
func preferred(candidate, current *graph.Node) bool {
	if candidate.Count != current.Count {
		return candidate.Count > current.Count
	}
	if candidate.FirstRow != current.FirstRow {
		return candidate.FirstRow < current.FirstRow
	}
	return candidate.Value < current.Value
}
