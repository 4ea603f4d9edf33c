// Package graph builds the identity graph at the heart of crosswalk: every
// distinct non-null value becomes a node, values co-occurring within one
// record become linked, and connected components of the resulting graph are
// the candidate resolved entities.
package graph

import (
	"github.com/crosswalklabs/crosswalk/pkg/errors"
	"github.com/crosswalklabs/crosswalk/pkg/tables"
)

// Node is one distinct observed value. Identity is the literal value; Field
// is the column the value was first observed under; Count is the number of
// input rows containing the value under that field; FirstRow is the
// zero-based index of the row that introduced it.
type Node struct {
	Value    string
	Field    string
	Count    int
	FirstRow int

	// col is the column position at first observation; with FirstRow it
	// gives a total order on nodes for deterministic enumeration.
	col int
}

// Builder accumulates records into one identity graph. A Builder is owned
// exclusively by a single consolidation run: construct, fold all records,
// extract components, discard. It is not safe for concurrent use; parallel
// builds shard rows across Builders and combine them with Merge.
type Builder struct {
	columns []string
	nodes   []*Node
	index   map[string]int // value -> dense node index
	sets    *dsu
	edges   map[Pair]int // canonical (A < B) pair -> co-occurrence count
	rows    int
	offset  int // global index of the first row folded into this builder

	warnings []error
}

// Option configures a Builder.
type Option func(*Builder)

// WithRowOffset sets the global index of the first row this builder will
// see. Sharded builds use it so that FirstRow stays a global row index and
// Merge remains order-independent.
func WithRowOffset(offset int) Option {
	return func(b *Builder) {
		b.offset = offset
	}
}

// New creates an empty identity graph builder for records with the given
// column order.
func New(columns []string, opts ...Option) *Builder {
	b := &Builder{
		columns: columns,
		index:   make(map[string]int),
		sets:    newDSU(),
		edges:   make(map[Pair]int),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// AddRecord folds one record into the graph: upserts a node per non-null
// observation and unions every candidate edge. A value appearing twice in
// the same record still counts once for that record.
func (b *Builder) AddRecord(row tables.Row) {
	rowIdx := b.offset + b.rows
	b.rows++

	obs := Observations(row, b.columns)

	counted := make(map[string]bool, len(obs))
	for i, o := range obs {
		if counted[o.Value] {
			continue
		}
		counted[o.Value] = true
		b.observe(o, rowIdx, i)
	}

	for _, p := range Pairs(obs) {
		b.link(p)
	}
}

// observe upserts the node for one observation.
func (b *Builder) observe(o Observation, rowIdx, col int) {
	if i, ok := b.index[o.Value]; ok {
		node := b.nodes[i]
		node.Count++
		if node.Field != o.Field {
			// First-seen field tag wins; surface the conflict as a warning.
			b.warnings = append(b.warnings,
				errors.NewFieldTagError(o.Value, node.Field, o.Field, rowIdx))
		}
		return
	}
	b.index[o.Value] = b.sets.add()
	b.nodes = append(b.nodes, &Node{
		Value:    o.Value,
		Field:    o.Field,
		Count:    1,
		FirstRow: rowIdx,
		col:      col,
	})
}

// link inserts one undirected edge. Insertion is idempotent for
// connectivity; only the co-occurrence count grows on repeats.
func (b *Builder) link(p Pair) {
	if p.B < p.A {
		p.A, p.B = p.B, p.A
	}
	b.edges[p]++
	b.sets.union(b.index[p.A], b.index[p.B])
}

// Merge folds another builder's graph into this one. Counts sum exactly,
// the earlier observation keeps the field tag and FirstRow, and the edge
// union is associative and commutative, so sharded partial builds combine
// to the same partition as a sequential fold.
func (b *Builder) Merge(other *Builder) {
	for _, node := range other.nodes {
		i, ok := b.index[node.Value]
		if !ok {
			b.index[node.Value] = b.sets.add()
			clone := *node
			b.nodes = append(b.nodes, &clone)
			continue
		}
		mine := b.nodes[i]
		mine.Count += node.Count
		if node.FirstRow < mine.FirstRow {
			if mine.Field != node.Field {
				b.warnings = append(b.warnings,
					errors.NewFieldTagError(node.Value, node.Field, mine.Field, mine.FirstRow))
			}
			mine.Field = node.Field
			mine.FirstRow = node.FirstRow
			mine.col = node.col
		} else if mine.Field != node.Field {
			b.warnings = append(b.warnings,
				errors.NewFieldTagError(node.Value, mine.Field, node.Field, node.FirstRow))
		}
	}

	for p, count := range other.edges {
		b.edges[p] += count
		b.sets.union(b.index[p.A], b.index[p.B])
	}

	b.rows += other.rows
	b.warnings = append(b.warnings, other.warnings...)
}

// Rows returns the number of records folded in.
func (b *Builder) Rows() int {
	return b.rows
}

// NodeCount returns the number of distinct observed values.
func (b *Builder) NodeCount() int {
	return len(b.nodes)
}

// EdgeCount returns the number of distinct undirected edges.
func (b *Builder) EdgeCount() int {
	return len(b.edges)
}

// EdgeWeight returns the number of records in which the two values
// co-occurred, or zero if they never did.
func (b *Builder) EdgeWeight(x, y string) int {
	p := Pair{A: x, B: y}
	if p.B < p.A {
		p.A, p.B = p.B, p.A
	}
	return b.edges[p]
}

// Node returns the node for a value, or nil if the value was never observed.
func (b *Builder) Node(value string) *Node {
	if i, ok := b.index[value]; ok {
		return b.nodes[i]
	}
	return nil
}

// Warnings returns the non-fatal conditions observed while folding, in
// observation order. Currently these are ambiguous field tags only.
func (b *Builder) Warnings() []error {
	return b.warnings
}
