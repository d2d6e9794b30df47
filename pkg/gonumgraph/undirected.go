// Package gonumgraph exposes a bipartite.Graph through the gonum graph
// interfaces so that gonum-based code can consume it.
//
// Only the members a matching algorithm needs are backed by the compact
// store. Everything else (node and edge enumeration, containment, weights,
// removal, anonymous node creation) panics with an error wrapping
// bipartite.ErrUnsupported, in keeping with gonum's panic-on-misuse style.
package gonumgraph

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/gilchrisn/bipartite-matching-graph/pkg/bipartite"
)

// Undirected adapts a bipartite.Graph to gonum.
//
// Unlike the gonum graphs, Edge and EdgeBetween do not look the edge up: they
// build it from the two ids and return non-nil for every cross-partition pair,
// whether or not it was added. They return nil only when both ids share a
// partition. Callers must take edge ids from From, not probe with Edge.
type Undirected struct {
	g *bipartite.Graph
}

var (
	_ graph.Undirected        = (*Undirected)(nil)
	_ graph.UndirectedBuilder = (*Undirected)(nil)
	_ graph.Weighted          = (*Undirected)(nil)
	_ graph.NodeWithIDer      = (*Undirected)(nil)
	_ graph.WeightedEdgeAdder = (*Undirected)(nil)
	_ graph.NodeRemover       = (*Undirected)(nil)
	_ graph.EdgeRemover       = (*Undirected)(nil)
)

// New returns an adapter over a fresh bipartite.Graph.
func New(capacityA, capacityB int) (*Undirected, error) {
	g, err := bipartite.New(capacityA, capacityB)
	if err != nil {
		return nil, err
	}
	return &Undirected{g: g}, nil
}

// Wrap returns an adapter over an existing graph. Both share storage.
func Wrap(g *bipartite.Graph) *Undirected {
	return &Undirected{g: g}
}

// Graph returns the wrapped graph.
func (u *Undirected) Graph() *bipartite.Graph { return u.g }

// EdgeID returns the packed identifier of e, with the partition-A end as
// source whatever the orientation of e.
func EdgeID(e graph.Edge) bipartite.EdgeID {
	from, to := mustLabel(e.From().ID()), mustLabel(e.To().ID())
	if from >= 0 {
		return bipartite.Pack(from, to)
	}
	return bipartite.Pack(to, from)
}

// From returns the partition-B neighbours of partition-A node id in insertion
// order. The iterator reads the adjacency list in place and can be Reset.
// An absent node has no neighbours. Partition-B nodes keep no adjacency and
// panic.
func (u *Undirected) From(id int64) graph.Nodes {
	label := mustLabel(id)
	view, err := u.g.EdgesOf(label)
	switch {
	case err == nil:
		if view.Len() == 0 {
			return graph.Empty
		}
		return &neighbours{it: view.Iter()}
	case errors.Is(err, bipartite.ErrVertexNotFound):
		return graph.Empty
	default:
		panic(err)
	}
}

// Edge returns the edge from uid to vid. Like bipartite.Graph.Edge it does not
// check that the edge was added; it returns nil only when both ids lie in the
// same partition, where no edge can exist.
func (u *Undirected) Edge(uid, vid int64) graph.Edge {
	ul, vl := mustLabel(uid), mustLabel(vid)
	if (ul >= 0) == (vl >= 0) {
		return nil
	}
	return simple.Edge{F: simple.Node(ul), T: simple.Node(vl)}
}

// EdgeBetween returns the edge between xid and yid oriented from its
// partition-A end.
func (u *Undirected) EdgeBetween(xid, yid int64) graph.Edge {
	xl, yl := mustLabel(xid), mustLabel(yid)
	if (xl >= 0) == (yl >= 0) {
		return nil
	}
	e := u.g.Edge(xl, yl)
	return simple.Edge{F: simple.Node(e.Source()), T: simple.Node(e.Target())}
}

// NodeWithID adds node id if it is absent and reports whether it did.
func (u *Undirected) NodeWithID(id int64) (graph.Node, bool) {
	added, err := u.g.AddVertex(mustLabel(id))
	if err != nil {
		panic(err)
	}
	return simple.Node(id), added
}

// AddNode adds n. As with the gonum simple graphs, adding an existing node
// panics.
func (u *Undirected) AddNode(n graph.Node) {
	added, err := u.g.AddVertex(mustLabel(n.ID()))
	if err != nil {
		panic(err)
	}
	if !added {
		panic(fmt.Sprintf("gonumgraph: node ID collision: %d", n.ID()))
	}
}

// NewEdge returns an edge between from and to without adding it.
func (u *Undirected) NewEdge(from, to graph.Node) graph.Edge {
	return simple.Edge{F: from, T: to}
}

// SetEdge adds e in either orientation. Both ends must already be present.
func (u *Undirected) SetEdge(e graph.Edge) {
	id := EdgeID(e)
	if _, err := u.g.AddEdge(id.Source(), id.Target()); err != nil {
		panic(err)
	}
}

// Node is unsupported: the store answers no containment queries.
func (u *Undirected) Node(id int64) graph.Node { panic(unsupported("Node")) }

// Nodes is unsupported.
func (u *Undirected) Nodes() graph.Nodes { panic(unsupported("Nodes")) }

// HasEdgeBetween is unsupported.
func (u *Undirected) HasEdgeBetween(xid, yid int64) bool { panic(unsupported("HasEdgeBetween")) }

// WeightedEdge is unsupported; edges carry no weight.
func (u *Undirected) WeightedEdge(uid, vid int64) graph.WeightedEdge {
	panic(unsupported("WeightedEdge"))
}

// Weight is unsupported.
func (u *Undirected) Weight(xid, yid int64) (float64, bool) { panic(unsupported("Weight")) }

// NewNode is unsupported; nodes need explicit labels.
func (u *Undirected) NewNode() graph.Node { panic(unsupported("NewNode")) }

// NewWeightedEdge is unsupported.
func (u *Undirected) NewWeightedEdge(from, to graph.Node, weight float64) graph.WeightedEdge {
	panic(unsupported("NewWeightedEdge"))
}

// SetWeightedEdge is unsupported.
func (u *Undirected) SetWeightedEdge(e graph.WeightedEdge) { panic(unsupported("SetWeightedEdge")) }

// RemoveNode is unsupported.
func (u *Undirected) RemoveNode(id int64) { panic(unsupported("RemoveNode")) }

// RemoveEdge is unsupported.
func (u *Undirected) RemoveEdge(fid, tid int64) { panic(unsupported("RemoveEdge")) }

func unsupported(op string) error {
	return fmt.Errorf("gonumgraph: %s: %w", op, bipartite.ErrUnsupported)
}

func mustLabel(id int64) int32 {
	if id < math.MinInt32 || id > math.MaxInt32 {
		panic(fmt.Errorf("gonumgraph: node id %d outside the int32 label space: %w", id, bipartite.ErrCapacityExceeded))
	}
	return int32(id)
}

// neighbours is a graph.Nodes over one adjacency list.
type neighbours struct {
	it *bipartite.EdgeIterator
}

func (n *neighbours) Next() bool { return n.it.Next() }
func (n *neighbours) Len() int { return n.it.Len() }
func (n *neighbours) Reset() { n.it.Reset() }
func (n *neighbours) Node() graph.Node { return simple.Node(n.it.Target()) }
