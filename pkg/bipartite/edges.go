package bipartite

import "iter"

// EdgeView presents the adjacency list of one partition-A vertex as packed
// edge identifiers. It reads the live list, so edges appended after the view
// was taken are visible through it, and it never copies the targets.
type EdgeView struct {
	source int32
	list   *AdjacencyList
}

func (v EdgeView) targets() []int32 {
	if v.list == nil {
		return nil
	}
	return v.list.targets
}

// Source returns the partition-A vertex the view belongs to.
func (v EdgeView) Source() int32 { return v.source }

// Len returns the number of edges in the view.
func (v EdgeView) Len() int { return len(v.targets()) }

// At returns the i-th edge in insertion order.
func (v EdgeView) At(i int) EdgeID { return Pack(v.source, v.targets()[i]) }

// All yields the edges in insertion order. Each call walks from the start.
func (v EdgeView) All() iter.Seq[EdgeID] {
	return func(yield func(EdgeID) bool) {
		for _, t := range v.targets() {
			if !yield(Pack(v.source, t)) {
				return
			}
		}
	}
}

// Iter returns a cursor over the view.
func (v EdgeView) Iter() *EdgeIterator {
	return &EdgeIterator{view: v, pos: -1}
}

// EdgeIterator walks an EdgeView. It follows the Next/Len/Reset shape of the
// gonum iterators.
type EdgeIterator struct {
	view EdgeView
	pos  int
}

// Next advances the cursor and reports whether an edge is available.
func (it *EdgeIterator) Next() bool {
	if it.pos+1 >= len(it.view.targets()) {
		it.pos = len(it.view.targets())
		return false
	}
	it.pos++
	return true
}

// Edge returns the current edge. It must follow a Next that returned true.
func (it *EdgeIterator) Edge() EdgeID {
	return it.view.At(it.pos)
}

// Target returns the partition-B end of the current edge.
func (it *EdgeIterator) Target() int32 {
	return it.view.targets()[it.pos]
}

// Len returns the number of edges not yet visited.
func (it *EdgeIterator) Len() int {
	if it.pos >= len(it.view.targets()) {
		return 0
	}
	return len(it.view.targets()) - it.pos - 1
}

// Reset rewinds the cursor to before the first edge.
func (it *EdgeIterator) Reset() {
	it.pos = -1
}
