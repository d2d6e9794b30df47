package bipartite

import "fmt"

// EdgeID identifies an edge by both of its endpoint labels: the source label
// in the high 32 bits and the target label's bit pattern in the low 32 bits.
type EdgeID int64

// Pack builds the identifier of the edge source -> target.
func Pack(source, target int32) EdgeID {
	return EdgeID(int64(source)<<32 | int64(uint32(target)))
}

// Source decodes the source label. The shift is arithmetic, so the sign of
// the original label survives.
func (e EdgeID) Source() int32 {
	return int32(e >> 32)
}

// Target decodes the target label from the low 32 bits.
func (e EdgeID) Target() int32 {
	return int32(e)
}

func (e EdgeID) String() string {
	return fmt.Sprintf("%d--%d", e.Source(), e.Target())
}
