package scene

import (
	"math"

	"github.com/lixenwraith/folio/vmath"
)

// Edge is one straight wireframe segment in local shell space
type Edge struct {
	A, B vmath.Vec3F
}

// Wireframe is the edge list of a shell mesh
type Wireframe struct {
	Radius float64
	Edges  []Edge
}

// NewSphereWireframe builds parallels and meridians of a UV sphere with the
// pole on the y axis
func NewSphereWireframe(radius float64, widthSegments, heightSegments int) *Wireframe {
	widthSegments = max(widthSegments, 3)
	heightSegments = max(heightSegments, 2)

	vertex := func(ix, iy int) vmath.Vec3F {
		phi := float64(ix) / float64(widthSegments) * 2 * math.Pi
		theta := float64(iy) / float64(heightSegments) * math.Pi
		return vmath.Vec3F{
			X: -radius * math.Cos(phi) * math.Sin(theta),
			Y: radius * math.Cos(theta),
			Z: radius * math.Sin(phi) * math.Sin(theta),
		}
	}

	w := &Wireframe{Radius: radius}
	// Parallels, poles excluded
	for iy := 1; iy < heightSegments; iy++ {
		for ix := 0; ix < widthSegments; ix++ {
			w.Edges = append(w.Edges, Edge{vertex(ix, iy), vertex(ix+1, iy)})
		}
	}
	// Meridians
	for ix := 0; ix < widthSegments; ix++ {
		for iy := 0; iy < heightSegments; iy++ {
			w.Edges = append(w.Edges, Edge{vertex(ix, iy), vertex(ix, iy+1)})
		}
	}
	return w
}

// Icosahedron base mesh
var (
	icoPhi = (1 + math.Sqrt(5)) / 2

	icoVertices = []vmath.Vec3F{
		{X: -1, Y: icoPhi}, {X: 1, Y: icoPhi}, {X: -1, Y: -icoPhi}, {X: 1, Y: -icoPhi},
		{Y: -1, Z: icoPhi}, {Y: 1, Z: icoPhi}, {Y: -1, Z: -icoPhi}, {Y: 1, Z: -icoPhi},
		{X: icoPhi, Z: -1}, {X: icoPhi, Z: 1}, {X: -icoPhi, Z: -1}, {X: -icoPhi, Z: 1},
	}

	icoFaces = [][3]int{
		{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
		{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
		{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
		{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
	}
)

// NewIcosphereWireframe subdivides every icosahedron edge into detail+1
// pieces and pushes the new vertices onto the sphere; shared edges are
// emitted once
func NewIcosphereWireframe(radius float64, detail int) *Wireframe {
	detail = max(detail, 0)
	segs := detail + 1

	w := &Wireframe{Radius: radius}
	seen := make(map[[2]vertexKey]struct{})
	addEdge := func(a, b vmath.Vec3F) {
		a = vmath.V3FScale(vmath.V3FNormalize(a), radius)
		b = vmath.V3FScale(vmath.V3FNormalize(b), radius)
		ka, kb := keyOf(a), keyOf(b)
		if kb.less(ka) {
			ka, kb = kb, ka
		}
		k := [2]vertexKey{ka, kb}
		if _, ok := seen[k]; ok {
			return
		}
		seen[k] = struct{}{}
		w.Edges = append(w.Edges, Edge{a, b})
	}

	for _, f := range icoFaces {
		a, b, c := icoVertices[f[0]], icoVertices[f[1]], icoVertices[f[2]]

		// Triangular lattice: row i runs from lerp(a,c) to lerp(b,c)
		grid := make([][]vmath.Vec3F, segs+1)
		for i := 0; i <= segs; i++ {
			t := float64(i) / float64(segs)
			aj := vmath.V3FLerp(a, c, t)
			bj := vmath.V3FLerp(b, c, t)
			rows := segs - i
			grid[i] = make([]vmath.Vec3F, rows+1)
			for j := 0; j <= rows; j++ {
				if rows == 0 {
					grid[i][j] = aj
				} else {
					grid[i][j] = vmath.V3FLerp(aj, bj, float64(j)/float64(rows))
				}
			}
		}

		for i := 0; i < segs; i++ {
			for j := 0; j < len(grid[i])-1; j++ {
				addEdge(grid[i][j], grid[i][j+1])
				addEdge(grid[i][j], grid[i+1][j])
				addEdge(grid[i][j+1], grid[i+1][j])
			}
		}
	}
	return w
}

// vertexKey quantizes a vertex so shared edges hash identically
type vertexKey [3]int64

func keyOf(v vmath.Vec3F) vertexKey {
	const q = 1e6
	return vertexKey{int64(math.Round(v.X * q)), int64(math.Round(v.Y * q)), int64(math.Round(v.Z * q))}
}

func (k vertexKey) less(o vertexKey) bool {
	for i := range k {
		if k[i] != o[i] {
			return k[i] < o[i]
		}
	}
	return false
}
