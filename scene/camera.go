package scene

import (
	"math"

	"github.com/lixenwraith/folio/vmath"
)

var worldUp = vmath.Vec3F{Y: 1}

// Camera is a perspective camera with a vertical field of view in degrees
// Aspect is width/height in pixel units, not cells
type Camera struct {
	Position vmath.Vec3F
	Target   vmath.Vec3F
	FOV      float64
	Aspect   float64
	Near     float64
	Far      float64

	forward vmath.Vec3F
	right   vmath.Vec3F
	up      vmath.Vec3F
}

// NewCamera places a camera on the +z axis looking at the origin
func NewCamera(aspect float64) *Camera {
	c := &Camera{
		Position: vmath.Vec3F{Z: CameraDistance},
		FOV:      CameraFOV,
		Near:     CameraNear,
		Far:      CameraFar,
	}
	c.SetAspect(aspect)
	c.LookAt(vmath.Zero3F)
	return c
}

// LookAt re-aims the camera basis at target, keeping world +y as up
func (c *Camera) LookAt(target vmath.Vec3F) {
	c.Target = target
	f := vmath.V3FNormalize(vmath.V3FSub(target, c.Position))
	if f == vmath.Zero3F {
		f = vmath.Vec3F{Z: -1}
	}
	r := vmath.V3FNormalize(vmath.V3FCross(f, worldUp))
	if r == vmath.Zero3F {
		// Looking straight along y
		r = vmath.Vec3F{X: 1}
	}
	c.forward = f
	c.right = r
	c.up = vmath.V3FCross(r, f)
}

// SetAspect replaces the aspect ratio; non-positive values fall back to 1
func (c *Camera) SetAspect(aspect float64) {
	if aspect <= 0 || math.IsNaN(aspect) || math.IsInf(aspect, 0) {
		aspect = 1
	}
	c.Aspect = aspect
}

// Basis returns the camera's forward, right and up unit vectors
func (c *Camera) Basis() (forward, right, up vmath.Vec3F) {
	return c.forward, c.right, c.up
}

func (c *Camera) tanHalf() float64 {
	return math.Tan(c.FOV * math.Pi / 360)
}

// Project maps a world point to normalized device coordinates
// ok is false when the point lies outside the near/far range
func (c *Camera) Project(p vmath.Vec3F) (ndcX, ndcY, depth float64, ok bool) {
	v := vmath.V3FSub(p, c.Position)
	depth = vmath.V3FDot(v, c.forward)
	if depth <= c.Near || depth >= c.Far {
		return 0, 0, depth, false
	}
	th := c.tanHalf()
	ndcX = vmath.V3FDot(v, c.right) / (depth * th * c.Aspect)
	ndcY = vmath.V3FDot(v, c.up) / (depth * th)
	return ndcX, ndcY, depth, true
}

// ScreenRadius converts a world-space radius at depth to a vertical NDC extent
func (c *Camera) ScreenRadius(radius, depth float64) float64 {
	if depth <= 0 {
		return 0
	}
	return radius / (depth * c.tanHalf())
}

// viewDepth inverts the perspective depth mapping for an NDC z in [-1, 1]
func (c *Camera) viewDepth(ndcZ float64) float64 {
	n, f := c.Near, c.Far
	return 2 * f * n / ((f + n) - ndcZ*(f-n))
}

// Unproject returns the world point under (ndcX, ndcY) at NDC depth ndcZ
func (c *Camera) Unproject(ndcX, ndcY, ndcZ float64) vmath.Vec3F {
	d := c.viewDepth(ndcZ)
	th := c.tanHalf()
	p := c.Position
	p = vmath.V3FAdd(p, vmath.V3FScale(c.right, ndcX*th*c.Aspect*d))
	p = vmath.V3FAdd(p, vmath.V3FScale(c.up, ndcY*th*d))
	p = vmath.V3FAdd(p, vmath.V3FScale(c.forward, d))
	return p
}

// RayPlaneZ casts the pointer ray through (ndcX, ndcY) onto the plane z = 0
// ok is false when the ray runs parallel to the plane or points away from it
func (c *Camera) RayPlaneZ(ndcX, ndcY float64) (vmath.Vec3F, bool) {
	v := c.Unproject(ndcX, ndcY, MouseLightDepth)
	dir := vmath.V3FNormalize(vmath.V3FSub(v, c.Position))
	if dir.Z == 0 {
		return vmath.Zero3F, false
	}
	distance := -c.Position.Z / dir.Z
	if distance < 0 {
		return vmath.Zero3F, false
	}
	hit := vmath.V3FAdd(c.Position, vmath.V3FScale(dir, distance))
	hit.Z = 0
	return hit, true
}
