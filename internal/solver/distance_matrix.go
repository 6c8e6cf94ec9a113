package solver

import (
	"delivery-plan-solver/internal/domain"
	"encoding/binary"
	"fmt"
	"math"
)

// All-pairs shortest travel distances over a case network.
//
// The matrix is dense: Between(i, j) is 0 on the diagonal and +Inf whenever
// no path connects i to j. Instances are immutable after construction, so
// one matrix can back any number of concurrent solves.
type DistanceMatrix struct {
	size int
	dist [][]float64
}

// NewDistanceMatrix builds the matrix for nodeCount nodes from explicit edge
// weights using Floyd-Warshall. The edge map is taken as directed, exactly
// as the case loader materializes it; node pairs without a path stay at
// +Inf.
func NewDistanceMatrix(nodeCount int, edges map[domain.EdgeKey]float64) *DistanceMatrix {
	dist := make([][]float64, nodeCount)
	for i := range dist {
		row := make([]float64, nodeCount)
		for j := range row {
			row[j] = math.Inf(1)
		}
		row[i] = 0
		dist[i] = row
	}

	for key, weight := range edges {
		dist[key.From][key.To] = weight
	}

	// Relaxation with the intermediate node outermost. Only a strictly
	// shorter path replaces the current entry.
	for k := 0; k < nodeCount; k++ {
		for i := 0; i < nodeCount; i++ {
			for j := 0; j < nodeCount; j++ {
				if through := dist[i][k] + dist[k][j]; through < dist[i][j] {
					dist[i][j] = through
				}
			}
		}
	}

	return &DistanceMatrix{size: nodeCount, dist: dist}
}

// Between returns the shortest distance from one node to another, +Inf when
// unreachable. Both indices must be in [0, Size()).
func (m *DistanceMatrix) Between(from, to int) float64 {
	return m.dist[from][to]
}

// Size returns the node count the matrix was built for.
func (m *DistanceMatrix) Size() int { return m.size }

// MarshalBinary encodes the matrix as the node count followed by size*size
// little-endian float64 cells. Unlike JSON, the raw bit layout round-trips
// the +Inf cells that disconnected networks produce.
func (m *DistanceMatrix) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 8+8*m.size*m.size)
	binary.LittleEndian.PutUint64(buf, uint64(m.size))
	off := 8
	for _, row := range m.dist {
		for _, cell := range row {
			binary.LittleEndian.PutUint64(buf[off:], math.Float64bits(cell))
			off += 8
		}
	}
	return buf, nil
}

// UnmarshalBinary decodes a payload produced by MarshalBinary.
func (m *DistanceMatrix) UnmarshalBinary(data []byte) error {
	if len(data) < 8 {
		return fmt.Errorf("distance matrix: payload too short (%d bytes)", len(data))
	}
	size := int(binary.LittleEndian.Uint64(data))
	if size < 0 || size > 1<<20 {
		return fmt.Errorf("distance matrix: implausible node count %d", size)
	}
	if want := 8 + 8*size*size; len(data) != want {
		return fmt.Errorf("distance matrix: payload is %d bytes, want %d for %d nodes", len(data), want, size)
	}

	dist := make([][]float64, size)
	off := 8
	for i := range dist {
		row := make([]float64, size)
		for j := range row {
			row[j] = math.Float64frombits(binary.LittleEndian.Uint64(data[off:]))
			off += 8
		}
		dist[i] = row
	}

	m.size = size
	m.dist = dist
	return nil
}
