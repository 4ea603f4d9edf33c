// Package consolidate runs the crosswalk pipeline: fold records into an
// identity graph, extract connected components, canonicalize each component
// and materialize the consolidated table. One invocation owns one graph;
// nothing persists between runs.
package consolidate

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/crosswalklabs/crosswalk/pkg/errors"
	"github.com/crosswalklabs/crosswalk/pkg/graph"
	"github.com/crosswalklabs/crosswalk/pkg/logging"
	"github.com/crosswalklabs/crosswalk/pkg/tables"
)

// Consolidate resolves the table's rows into canonical per-entity records.
// Schema validation failures abort before any record is processed; every
// other condition resolves deterministically and surfaces in
// Result.Warnings.
func Consolidate(ctx context.Context, input *tables.Table, opts ...Option) (*Result, error) {
	start := time.Now()

	cfg := defaults()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	ctx = logging.WithRunID(ctx, runID)
	log := logging.Ctx(ctx)

	result := &Result{
		RunID:   runID,
		Mapping: make(Mapping),
		index:   make(map[string]int),
	}

	if input.Len() == 0 {
		log.Warn().Msg("input table has no rows")
		result.Table = tables.New(input.Columns...)
		result.Warnings = append(result.Warnings, errors.ErrEmptyInput)
		return result, nil
	}

	builder := graph.New(input.Columns)
	for _, row := range input.Rows {
		builder.AddRecord(row)
	}
	log.Debug().
		Int("rows", builder.Rows()).
		Int("nodes", builder.NodeCount()).
		Int("edges", builder.EdgeCount()).
		Msg("identity graph built")

	components := builder.Components()
	result.Records = canonicalize(components, cfg.strategy, cfg.workers)
	result.Mapping = buildMapping(components, result.Records)
	result.index = builder.ComponentIndex(components)
	result.Warnings = append(result.Warnings, builder.Warnings()...)

	if cfg.rowPreserving {
		result.Table = rowPreservingTable(input, result.Records, result.index)
	} else {
		result.Table = entityTable(input.Columns, result.Records)
	}

	result.Stats = Statistics{
		Rows:       builder.Rows(),
		Nodes:      builder.NodeCount(),
		Edges:      builder.EdgeCount(),
		Components: len(components),
		ElapsedMs:  time.Since(start).Milliseconds(),
	}

	for _, warning := range result.Warnings {
		log.Warn().Err(warning).Msg("consolidation warning")
	}
	log.Info().
		Str("strategy", cfg.strategy.Name()).
		Int("components", len(components)).
		Int64("elapsed_ms", result.Stats.ElapsedMs).
		Msg("consolidation complete")

	return result, nil
}

// canonicalize computes each component's canonical record. Components are
// independent of one another, so the work fans out across workers; records
// land by index, keeping output order deterministic.
func canonicalize(components []graph.Component, strategy Strategy, workers int) []tables.Row {
	records := make([]tables.Row, len(components))

	if workers > len(components) {
		workers = len(components)
	}
	if workers <= 1 {
		for i, c := range components {
			records[i] = strategy.Canonical(c)
		}
		return records
	}

	var wg sync.WaitGroup
	next := make(chan int)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range next {
				records[i] = strategy.Canonical(components[i])
			}
		}()
	}
	for i := range components {
		next <- i
	}
	close(next)
	wg.Wait()

	return records
}
