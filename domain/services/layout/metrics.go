package layout

import (
	"math"

	"kgraph-engine/domain/core/aggregates"
)

// QualityMetrics summarizes the geometry of one layout run: edge length
// distribution, coordinate spread per axis and overall balance around the
// centroid.
type QualityMetrics struct {
	EdgeLengthMean     float64 `json:"edge_length_mean"`
	EdgeLengthMin      float64 `json:"edge_length_min"`
	EdgeLengthMax      float64 `json:"edge_length_max"`
	EdgeLengthVariance float64 `json:"edge_length_variance"`

	VarianceX float64 `json:"variance_x"`
	VarianceY float64 `json:"variance_y"`
	VarianceZ float64 `json:"variance_z"`

	// Balance is the mean distance of all nodes from their centroid
	Balance float64 `json:"balance"`
}

func computeMetrics(graph *aggregates.GraphModel, positions map[string]Coordinates) QualityMetrics {
	var m QualityMetrics
	if len(positions) == 0 {
		return m
	}

	lengths := make([]float64, 0, graph.EdgeCount())
	for _, edge := range graph.Edges() {
		src, srcOK := positions[edge.SourceID().String()]
		dst, dstOK := positions[edge.TargetID().String()]
		if !srcOK || !dstOK {
			continue
		}

		dx := src.X - dst.X
		dy := src.Y - dst.Y
		dz := src.Z - dst.Z
		lengths = append(lengths, math.Sqrt(dx*dx+dy*dy+dz*dz))
	}

	if len(lengths) > 0 {
		m.EdgeLengthMin = math.Inf(1)
		sum := 0.0
		for _, l := range lengths {
			sum += l
			if l < m.EdgeLengthMin {
				m.EdgeLengthMin = l
			}
			if l > m.EdgeLengthMax {
				m.EdgeLengthMax = l
			}
		}
		m.EdgeLengthMean = sum / float64(len(lengths))

		varSum := 0.0
		for _, l := range lengths {
			d := l - m.EdgeLengthMean
			varSum += d * d
		}
		m.EdgeLengthVariance = varSum / float64(len(lengths))
	}

	var meanX, meanY, meanZ float64
	for _, p := range positions {
		meanX += p.X
		meanY += p.Y
		meanZ += p.Z
	}
	count := float64(len(positions))
	meanX /= count
	meanY /= count
	meanZ /= count

	var varX, varY, varZ, balance float64
	for _, p := range positions {
		dx := p.X - meanX
		dy := p.Y - meanY
		dz := p.Z - meanZ
		varX += dx * dx
		varY += dy * dy
		varZ += dz * dz
		balance += math.Sqrt(dx*dx + dy*dy + dz*dz)
	}

	m.VarianceX = varX / count
	m.VarianceY = varY / count
	m.VarianceZ = varZ / count
	m.Balance = balance / count

	return m
}
