// Package bipartite stores a bipartite graph compactly for maximum-cardinality
// matching.
//
// Both partitions share one int32 label space. Non-negative labels belong to
// partition A and index its table directly; negative labels belong to
// partition B, where label v is stored at index -(v+1). This transform is part
// of the public contract: callers pick labels that satisfy it.
//
// Edges live only under their partition-A endpoint, as raw partition-B labels
// in a []int32, and are handed out as packed 64-bit EdgeIDs. Nothing is ever
// removed. The graph is not safe for concurrent mutation; once building is
// finished it may be read from many goroutines, provided the caller
// synchronises the hand-off.
package bipartite

import "fmt"

// MatchingGraph is everything a bipartite matching algorithm needs from a
// graph: labelled insertion, adjacency of partition-A vertices and edge
// decoding.
type MatchingGraph interface {
	AddVertex(v int32) (bool, error)
	AddEdge(source, target int32) (EdgeID, error)
	EdgeSource(e EdgeID) int32
	EdgeTarget(e EdgeID) int32
	EdgesOf(v int32) (EdgeView, error)
	Edge(a, b int32) EdgeID
	Type() GraphType
}

// GraphType describes the kind of graph a MatchingGraph holds.
type GraphType struct {
	Undirected         bool
	AllowMultipleEdges bool
	AllowSelfLoops     bool
	Weighted           bool
}

var graphType = GraphType{Undirected: true}

// Graph is the fixed-capacity bipartite graph.
type Graph struct {
	parts partitions
}

var _ MatchingGraph = (*Graph)(nil)

// New allocates a graph able to hold capacityA partition-A vertices (labels
// 0..capacityA-1) and capacityB partition-B vertices (labels -1..-capacityB).
func New(capacityA, capacityB int) (*Graph, error) {
	parts, err := newPartitions(capacityA, capacityB)
	if err != nil {
		return nil, err
	}
	return &Graph{parts: parts}, nil
}

// AddVertex adds v to the partition its sign selects. It reports false
// without changing anything when v is already present.
func (g *Graph) AddVertex(v int32) (bool, error) {
	added, err := g.parts.addVertex(v)
	if err != nil {
		return false, fmt.Errorf("add vertex: %w", err)
	}
	return added, nil
}

// EdgeSource returns the partition-A end of e.
func (g *Graph) EdgeSource(e EdgeID) int32 { return e.Source() }

// EdgeTarget returns the partition-B end of e.
func (g *Graph) EdgeTarget(e EdgeID) int32 { return e.Target() }

// EdgesOf returns the edges of partition-A vertex v in insertion order.
// Partition-B vertices keep no adjacency, so asking for one is unsupported.
func (g *Graph) EdgesOf(v int32) (EdgeView, error) {
	list, err := g.Adjacency(v)
	if err != nil {
		return EdgeView{}, fmt.Errorf("edges of: %w", err)
	}
	return EdgeView{source: v, list: list}, nil
}

// Edge returns the identifier of the edge between a and b, whichever order
// they are given in. The non-negative label is always packed as the source.
// Existence is not checked.
func (g *Graph) Edge(a, b int32) EdgeID {
	if a >= 0 {
		return Pack(a, b)
	}
	return Pack(b, a)
}

// Type reports an undirected, simple, unweighted graph.
func (g *Graph) Type() GraphType { return graphType }

// Capacity returns the fixed partition sizes.
func (g *Graph) Capacity() (a, b int) {
	return len(g.parts.adjacencyA), len(g.parts.existsB)
}
