package consolidate

import "github.com/crosswalklabs/crosswalk/pkg/tables"

// Statistics summarizes one consolidation run.
type Statistics struct {
	Rows       int   `json:"rows" yaml:"rows"`
	Nodes      int   `json:"nodes" yaml:"nodes"`
	Edges      int   `json:"edges" yaml:"edges"`
	Components int   `json:"components" yaml:"components"`
	ElapsedMs  int64 `json:"elapsed_ms" yaml:"elapsed_ms"`
}

// Result is the outcome of one consolidation run. The graph that produced
// it has already been discarded; Result carries only the materialized
// output.
type Result struct {
	// RunID correlates the result with the run's log events.
	RunID string

	// Table is the consolidated output: one row per entity, or one row per
	// input row in row-preserving mode.
	Table *tables.Table

	// Records holds each component's canonical record, in component order.
	Records []tables.Row

	// Mapping maps every observed (field, value) to its canonical value.
	Mapping Mapping

	// Warnings holds non-fatal conditions: ambiguous field tags and the
	// empty-input condition. They never abort a run.
	Warnings []error

	// Stats summarizes the run.
	Stats Statistics

	// index maps each observed value to its position in Records.
	index map[string]int
}

// Entity returns the canonical record of the component owning the given
// observed value, or false if the value was never observed.
func (r *Result) Entity(value string) (tables.Row, bool) {
	pos, ok := r.index[value]
	if !ok {
		return nil, false
	}
	return r.Records[pos], true
}
