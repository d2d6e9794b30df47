package bipartite

import "fmt"

// Partition names one side of the bipartite graph.
type Partition uint8

const (
	// PartitionA holds the non-negative labels; a label is its own index.
	PartitionA Partition = iota
	// PartitionB holds the negative labels; label v has index -(v+1).
	PartitionB
)

func (p Partition) String() string {
	if p == PartitionA {
		return "A"
	}
	return "B"
}

// PartitionIndex maps a label to its partition and its storage index there.
// Label -1 is index 0 of partition B, -2 is index 1, and so on.
func PartitionIndex(label int32) (Partition, int) {
	if label >= 0 {
		return PartitionA, int(label)
	}
	return PartitionB, int(^label)
}

// LabelB returns the partition-B label stored at index.
func LabelB(index int) int32 {
	return ^int32(index)
}

// partitions holds the two fixed-size vertex tables. They are sized once and
// never grown.
type partitions struct {
	adjacencyA []*AdjacencyList // nil entry = vertex absent
	existsB    []bool
}

func newPartitions(capacityA, capacityB int) (partitions, error) {
	if capacityA < 0 || capacityB < 0 {
		return partitions{}, fmt.Errorf("negative capacity (a=%d, b=%d): %w", capacityA, capacityB, ErrCapacityExceeded)
	}
	return partitions{
		adjacencyA: make([]*AdjacencyList, capacityA),
		existsB:    make([]bool, capacityB),
	}, nil
}

func (p *partitions) addVertex(label int32) (bool, error) {
	part, index := PartitionIndex(label)
	if part == PartitionA {
		if index >= len(p.adjacencyA) {
			return false, capacityError(label, part, index, len(p.adjacencyA))
		}
		if p.adjacencyA[index] != nil {
			return false, nil
		}
		p.adjacencyA[index] = &AdjacencyList{}
		return true, nil
	}

	if index >= len(p.existsB) {
		return false, capacityError(label, part, index, len(p.existsB))
	}
	if p.existsB[index] {
		return false, nil
	}
	p.existsB[index] = true
	return true, nil
}

// listA returns the adjacency list of a present partition-A vertex.
func (p *partitions) listA(label int32) (*AdjacencyList, bool) {
	if label < 0 || int(label) >= len(p.adjacencyA) {
		return nil, false
	}
	list := p.adjacencyA[label]
	return list, list != nil
}

func (p *partitions) hasB(label int32) bool {
	if label >= 0 {
		return false
	}
	index := int(^label)
	return index < len(p.existsB) && p.existsB[index]
}

func capacityError(label int32, part Partition, index, capacity int) error {
	return fmt.Errorf("label %d (partition %s index %d, capacity %d): %w", label, part, index, capacity, ErrCapacityExceeded)
}
