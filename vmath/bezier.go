package vmath

// QuadBezier evaluates the quadratic Bézier p0→p2 with control p1 at t in [0,1]
func QuadBezier(p0, p1, p2 Vec3F, t float64) Vec3F {
	u := 1 - t
	a := u * u
	b := 2 * u * t
	c := t * t
	return Vec3F{
		a*p0.X + b*p1.X + c*p2.X,
		a*p0.Y + b*p1.Y + c*p2.Y,
		a*p0.Z + b*p1.Z + c*p2.Z,
	}
}

// SampleQuadBezier returns segments+1 evenly spaced points along the curve, endpoints included
func SampleQuadBezier(p0, p1, p2 Vec3F, segments int) []Vec3F {
	if segments < 1 {
		segments = 1
	}
	points := make([]Vec3F, segments+1)
	for i := 0; i <= segments; i++ {
		points[i] = QuadBezier(p0, p1, p2, float64(i)/float64(segments))
	}
	return points
}
