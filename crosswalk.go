// Package crosswalk resolves partially-overlapping identifier records into
// one canonical record per real-world entity. Rows whose non-null values
// co-occur become linked in an identity graph; connected components of that
// graph are the resolved entities, and each component's canonical record is
// chosen field by field, majority count first with a deterministic
// tie-break.
//
// Example:
//
//	table := tables.New("issuer", "isin", "cusip")
//	table.Append(tables.Row{"issuer": "MSFT CORP", "isin": "US1"})
//	table.Append(tables.Row{"issuer": "MSFT CORP", "cusip": "C1"})
//
//	result, err := crosswalk.Consolidate(ctx, table)
//	// result.Table has one row: issuer=MSFT CORP, isin=US1, cusip=C1
package crosswalk

import (
	"context"

	"github.com/crosswalklabs/crosswalk/pkg/consolidate"
	"github.com/crosswalklabs/crosswalk/pkg/tables"
)

// Result is the outcome of a consolidation run.
type Result = consolidate.Result

// Option configures a consolidation run.
type Option = consolidate.Option

// Strategy picks canonical values for a resolved entity.
type Strategy = consolidate.Strategy

// Consolidate runs the full pipeline over the input table: per-row link
// extraction, graph accumulation, connected-component extraction, canonical
// value selection and table materialization. The graph lives only for this
// call.
func Consolidate(ctx context.Context, input *tables.Table, opts ...Option) (*Result, error) {
	return consolidate.Consolidate(ctx, input, opts...)
}

// MaxCount returns the default frequency-majority selection strategy.
func MaxCount() Strategy {
	return consolidate.MaxCount()
}

// WithStrategy sets the canonical value selection strategy.
func WithStrategy(strategy Strategy) Option {
	return consolidate.WithStrategy(strategy)
}

// WithRowPreserving selects one output row per input row, aligned with the
// input, instead of one row per entity.
func WithRowPreserving(enabled bool) Option {
	return consolidate.WithRowPreserving(enabled)
}

// WithWorkers bounds canonicalization parallelism.
func WithWorkers(n int) Option {
	return consolidate.WithWorkers(n)
}
