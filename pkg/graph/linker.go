package graph

import "github.com/crosswalklabs/crosswalk/pkg/tables"

// Observation is one non-null (field, value) cell of a record.
type Observation struct {
	Field string
	Value string
}

// Observations returns the non-null observations of a row, in column order.
// Column order (not map order) drives every downstream determinism
// guarantee, so callers must pass the table's column slice.
func Observations(row tables.Row, columns []string) []Observation {
	obs := make([]Observation, 0, len(row))
	for _, field := range columns {
		value, ok := row[field]
		if !ok || tables.IsNull(value) {
			continue
		}
		obs = append(obs, Observation{Field: field, Value: value})
	}
	return obs
}

// Pair is an unordered candidate edge between two observed values.
type Pair struct {
	A string
	B string
}

// Pairs returns the candidate edges among a record's observations: every
// unordered combination of two distinct values. Records with fewer than two
// observations produce no pairs, and identical values observed under two
// fields of the same record never pair with themselves.
func Pairs(obs []Observation) []Pair {
	if len(obs) < 2 {
		return nil
	}
	pairs := make([]Pair, 0, len(obs)*(len(obs)-1)/2)
	for i := 0; i < len(obs); i++ {
		for j := i + 1; j < len(obs); j++ {
			if obs[i].Value == obs[j].Value {
				continue // no self-loops
			}
			pairs = append(pairs, Pair{A: obs[i].Value, B: obs[j].Value})
		}
	}
	return pairs
}
