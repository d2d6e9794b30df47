package bipartite

import "fmt"

// AdjacencyList is the ordered sequence of partition-B targets owned by one
// partition-A vertex. Targets are kept as raw labels, in insertion order.
type AdjacencyList struct {
	targets []int32
}

// Len returns the number of stored edges.
func (l *AdjacencyList) Len() int {
	return len(l.targets)
}

// Targets returns the backing slice. Callers must not modify it.
func (l *AdjacencyList) Targets() []int32 {
	return l.targets
}

// Trim releases spare capacity left behind by append growth.
func (l *AdjacencyList) Trim() {
	if cap(l.targets) > len(l.targets) {
		trimmed := make([]int32, len(l.targets))
		copy(trimmed, l.targets)
		l.targets = trimmed
	}
}

// AddEdge appends target to the adjacency list of source and returns the
// packed edge identifier. source must be a partition-A vertex and target a
// partition-B vertex, both added beforehand.
//
// Duplicates are not detected; a caller that adds the same pair twice gets
// two entries.
func (g *Graph) AddEdge(source, target int32) (EdgeID, error) {
	if !g.parts.hasB(target) {
		return 0, fmt.Errorf("add edge %d--%d: target: %w", source, target, ErrVertexNotFound)
	}
	list, ok := g.parts.listA(source)
	if !ok {
		return 0, fmt.Errorf("add edge %d--%d: source: %w", source, target, ErrVertexNotFound)
	}
	list.targets = append(list.targets, target)
	return Pack(source, target), nil
}

// Adjacency returns the list owned by partition-A vertex v.
func (g *Graph) Adjacency(v int32) (*AdjacencyList, error) {
	if v < 0 {
		return nil, fmt.Errorf("adjacency of %d: partition B has no stored adjacency: %w", v, ErrUnsupported)
	}
	list, ok := g.parts.listA(v)
	if !ok {
		return nil, fmt.Errorf("adjacency of %d: %w", v, ErrVertexNotFound)
	}
	return list, nil
}

// Compact trims every adjacency list. Call it once the graph is built.
func (g *Graph) Compact() {
	for _, list := range g.parts.adjacencyA {
		if list != nil {
			list.Trim()
		}
	}
}
