package graph

// dsu is a disjoint-set-union over dense node indices, with path compression
// and union by rank. It gives near-O(1) amortized unions, so components are
// maintained incrementally as records are folded in rather than recovered by
// a traversal afterwards.
type dsu struct {
	parent []int
	rank   []int
}

func newDSU() *dsu {
	return &dsu{}
}

// add appends a new singleton set and returns its index.
func (d *dsu) add() int {
	i := len(d.parent)
	d.parent = append(d.parent, i)
	d.rank = append(d.rank, 0)
	return i
}

// find returns the representative of i's set.
func (d *dsu) find(i int) int {
	for d.parent[i] != i {
		d.parent[i] = d.parent[d.parent[i]] // path halving
		i = d.parent[i]
	}
	return i
}

// union merges the sets containing a and b.
func (d *dsu) union(a, b int) {
	ra, rb := d.find(a), d.find(b)
	if ra == rb {
		return
	}
	if d.rank[ra] < d.rank[rb] {
		ra, rb = rb, ra
	}
	d.parent[rb] = ra
	if d.rank[ra] == d.rank[rb] {
		d.rank[ra]++
	}
}
