package gonumgraph

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/gilchrisn/bipartite-matching-graph/pkg/bipartite"
)

var testEdges = [][2]int64{{0, -1}, {0, -3}, {1, -2}, {2, -1}, {2, -2}, {2, -3}}

func buildTestGraph(t *testing.T) *Undirected {
	t.Helper()
	u, err := New(4, 3)
	require.NoError(t, err)
	for _, id := range []int64{0, 1, 2, 3, -1, -2, -3} {
		u.AddNode(simple.Node(id))
	}
	for i, e := range testEdges {
		// Alternate orientation; SetEdge must canonicalise.
		if i%2 == 0 {
			u.SetEdge(u.NewEdge(simple.Node(e[0]), simple.Node(e[1])))
		} else {
			u.SetEdge(u.NewEdge(simple.Node(e[1]), simple.Node(e[0])))
		}
	}
	return u
}

func ids(nodes []graph.Node) []int64 {
	out := make([]int64, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.ID())
	}
	return out
}

func requireUnsupported(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "%s did not panic", name)
		err, ok := r.(error)
		require.True(t, ok, "%s panicked with %v", name, r)
		assert.True(t, errors.Is(err, bipartite.ErrUnsupported), "%s: %v", name, err)
	}()
	fn()
}

func TestFromMatchesSimpleGraph(t *testing.T) {
	u := buildTestGraph(t)

	ref := simple.NewUndirectedGraph()
	for _, e := range testEdges {
		ref.SetEdge(simple.Edge{F: simple.Node(e[0]), T: simple.Node(e[1])})
	}
	ref.AddNode(simple.Node(3))

	for _, a := range []int64{0, 1, 2, 3} {
		got := ids(graph.NodesOf(u.From(a)))
		want := ids(graph.NodesOf(ref.From(a)))
		slices.Sort(got)
		slices.Sort(want)
		assert.Equal(t, want, got, "neighbours of %d", a)
	}
}

func TestFromInsertionOrderAndReset(t *testing.T) {
	u := buildTestGraph(t)

	it := u.From(2)
	assert.Equal(t, 3, it.Len())
	assert.Equal(t, []int64{-1, -2, -3}, ids(graph.NodesOf(it)))
	assert.Equal(t, 0, it.Len())

	it.Reset()
	require.True(t, it.Next())
	assert.Equal(t, int64(-1), it.Node().ID())
}

func TestFromAbsentAndPartitionB(t *testing.T) {
	u := buildTestGraph(t)

	assert.Equal(t, 0, u.From(3).Len(), "present without edges")
	assert.Equal(t, 0, u.From(100).Len(), "beyond capacity")

	requireUnsupported(t, "From(-1)", func() { u.From(-1) })
}

func TestEdgeOrientation(t *testing.T) {
	u := buildTestGraph(t)

	e := u.Edge(-3, 0)
	require.NotNil(t, e)
	assert.Equal(t, int64(-3), e.From().ID())
	assert.Equal(t, int64(0), e.To().ID())
	assert.Equal(t, bipartite.Pack(0, -3), EdgeID(e))
	assert.Equal(t, EdgeID(e), EdgeID(e.ReversedEdge()))

	for _, pair := range [][2]int64{{0, -3}, {-3, 0}} {
		e := u.EdgeBetween(pair[0], pair[1])
		require.NotNil(t, e)
		assert.Equal(t, int64(0), e.From().ID())
		assert.Equal(t, int64(-3), e.To().ID())
	}

	assert.Nil(t, u.Edge(0, 1))
	assert.Nil(t, u.EdgeBetween(-1, -2))
}

func TestEdgeDoesNotCheckExistence(t *testing.T) {
	u := buildTestGraph(t)

	// 1 -- -1 was never added; the edge is still built from the ids.
	e := u.EdgeBetween(-1, 1)
	require.NotNil(t, e)
	assert.Equal(t, bipartite.Pack(1, -1), EdgeID(e))
	assert.NotContains(t, ids(graph.NodesOf(u.From(1))), int64(-1))
}

func TestSetEdgeStoresCanonically(t *testing.T) {
	u := buildTestGraph(t)

	view, err := u.Graph().EdgesOf(0)
	require.NoError(t, err)
	assert.Equal(t, []bipartite.EdgeID{bipartite.Pack(0, -1), bipartite.Pack(0, -3)}, slices.Collect(view.All()))
}

func TestSetEdgeMissingVertex(t *testing.T) {
	u, err := New(2, 2)
	require.NoError(t, err)
	u.AddNode(simple.Node(0))

	defer func() {
		r := recover()
		require.NotNil(t, r)
		assert.ErrorIs(t, r.(error), bipartite.ErrVertexNotFound)
	}()
	u.SetEdge(simple.Edge{F: simple.Node(0), T: simple.Node(-1)})
}

func TestNodeWithID(t *testing.T) {
	u, err := New(2, 2)
	require.NoError(t, err)

	n, added := u.NodeWithID(-2)
	assert.True(t, added)
	assert.Equal(t, int64(-2), n.ID())

	_, added = u.NodeWithID(-2)
	assert.False(t, added)

	assert.Panics(t, func() { u.NodeWithID(2) })
	assert.Panics(t, func() { u.NodeWithID(math.MaxInt32 + 1) })
}

func TestAddNodeCollision(t *testing.T) {
	u, err := New(1, 1)
	require.NoError(t, err)
	u.AddNode(simple.Node(0))
	assert.Panics(t, func() { u.AddNode(simple.Node(0)) })
}

func TestWrapSharesStorage(t *testing.T) {
	g, err := bipartite.New(1, 1)
	require.NoError(t, err)
	_, _ = g.AddVertex(0)
	_, _ = g.AddVertex(-1)
	_, _ = g.AddEdge(0, -1)

	u := Wrap(g)
	assert.Same(t, g, u.Graph())
	assert.Equal(t, []int64{-1}, ids(graph.NodesOf(u.From(0))))
}

func TestUnsupportedMembers(t *testing.T) {
	u := buildTestGraph(t)
	n0, n1 := simple.Node(0), simple.Node(-1)

	cases := map[string]func(){
		"Node":            func() { u.Node(0) },
		"Nodes":           func() { u.Nodes() },
		"HasEdgeBetween":  func() { u.HasEdgeBetween(0, -1) },
		"WeightedEdge":    func() { u.WeightedEdge(0, -1) },
		"Weight":          func() { u.Weight(0, -1) },
		"NewNode":         func() { u.NewNode() },
		"NewWeightedEdge": func() { u.NewWeightedEdge(n0, n1, 1) },
		"SetWeightedEdge": func() { u.SetWeightedEdge(simple.WeightedEdge{F: n0, T: n1, W: 1}) },
		"RemoveNode":      func() { u.RemoveNode(0) },
		"RemoveEdge":      func() { u.RemoveEdge(0, -1) },
	}
	for name, fn := range cases {
		t.Run(name, func(t *testing.T) {
			requireUnsupported(t, name, fn)
		})
	}
}
