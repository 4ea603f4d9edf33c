package graph

import "sort"

// Component is a maximal set of transitively linked nodes: one candidate
// resolved entity. Nodes are ordered by first observation (row index, then
// column position within the row), so enumeration is reproducible for any
// row processing order.
type Component struct {
	Nodes []*Node
}

// Fields returns the distinct field names present in the component, in
// first-observation order.
func (c Component) Fields() []string {
	seen := make(map[string]bool, len(c.Nodes))
	fields := make([]string, 0, len(c.Nodes))
	for _, n := range c.Nodes {
		if !seen[n.Field] {
			seen[n.Field] = true
			fields = append(fields, n.Field)
		}
	}
	return fields
}

// Components partitions every node into connected components. Components
// are ordered by the first observation of their earliest node; every node
// belongs to exactly one component, and an isolated node forms a singleton.
func (b *Builder) Components() []Component {
	ordered := make([]*Node, len(b.nodes))
	copy(ordered, b.nodes)
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].FirstRow != ordered[j].FirstRow {
			return ordered[i].FirstRow < ordered[j].FirstRow
		}
		return ordered[i].col < ordered[j].col
	})

	byRoot := make(map[int]int, len(b.nodes)) // dsu root -> component position
	components := make([]Component, 0)
	for _, node := range ordered {
		root := b.sets.find(b.index[node.Value])
		pos, ok := byRoot[root]
		if !ok {
			pos = len(components)
			byRoot[root] = pos
			components = append(components, Component{})
		}
		components[pos].Nodes = append(components[pos].Nodes, node)
	}
	return components
}

// ComponentIndex returns a map from every observed value to the position of
// its owning component in the slice returned by Components. Row-preserving
// materialization uses it to align input rows with resolved entities.
func (b *Builder) ComponentIndex(components []Component) map[string]int {
	index := make(map[string]int, len(b.nodes))
	for pos, c := range components {
		for _, n := range c.Nodes {
			index[n.Value] = pos
		}
	}
	return index
}
