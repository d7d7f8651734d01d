package scene

import (
	"math"
	"math/rand"

	"github.com/lixenwraith/folio/render"
	"github.com/lixenwraith/folio/vmath"
)

// Connection is a curved connector between two skill nodes
type Connection struct {
	A, B     int
	Points   []vmath.Vec3F
	Opacity  float64
	Color    render.RGB
	Distance float64
}

// ConnectionOpacity fades connectors with distance, floored at ConnectionMinOpacity
func ConnectionOpacity(distance float64) float64 {
	return math.Max(ConnectionMinOpacity, ConnectionBaseOpacity-distance/ConnectionFalloff)
}

// BuildConnections links every node pair closer than ConnectionMaxDistance
// with a jittered quadratic Bézier; pairs are visited in (i<j) order
func BuildConnections(rng *rand.Rand, positions []vmath.Vec3F, colors []render.RGB) []Connection {
	var out []Connection
	for i := 0; i < len(positions); i++ {
		for j := i + 1; j < len(positions); j++ {
			a, b := positions[i], positions[j]
			d := vmath.V3FDist(a, b)
			if d >= ConnectionMaxDistance {
				continue
			}
			ctrl := vmath.V3FAdd(vmath.V3FMid(a, b), vmath.Jitter(rng, ConnectionJitter))
			c := Connection{
				A:        i,
				B:        j,
				Points:   vmath.SampleQuadBezier(a, ctrl, b, ConnectionSegments),
				Opacity:  ConnectionOpacity(d),
				Distance: d,
			}
			if i < len(colors) && j < len(colors) {
				c.Color = render.Mix(colors[i], colors[j], 0.5)
			}
			out = append(out, c)
		}
	}
	return out
}

// RebuildConnections discards the connector set and rebuilds it from the
// current node positions
func (s *State) RebuildConnections() {
	positions := make([]vmath.Vec3F, len(s.Nodes))
	colors := make([]render.RGB, len(s.Nodes))
	for i, n := range s.Nodes {
		positions[i] = n.Position
		colors[i] = n.Skill.Color
	}
	s.Connections = BuildConnections(s.rng, positions, colors)
	s.Rebuilds++
}
