package scene

import (
	"math/rand"

	"github.com/lixenwraith/folio/render"
	"github.com/lixenwraith/folio/vmath"
)

// Shell is a translucent sphere around the origin: the wireframe globes and
// the back-side atmosphere layers (Wire is nil for atmospheres)
type Shell struct {
	Wire        *Wireframe
	Radius      float64
	Color       render.RGB
	Emissive    render.RGB
	BaseOpacity float64
	Opacity     float64
	Rotation    vmath.Vec3F
	Scale       float64
}

// Star is one background point
type Star struct {
	Position vmath.Vec3F
	Size     float64
	Color    render.RGB
}

// Starfield is the rotating background point cloud
type Starfield struct {
	Stars    []Star
	Opacity  float64
	Rotation vmath.Vec3F
}

// Node is the sphere drawn for a skill
type Node struct {
	Skill    Skill
	Position vmath.Vec3F
	Radius   float64
	Scale    float64
	Emissive float64
}

// Halo is the static glow sphere left at a node's base position
type Halo struct {
	Position vmath.Vec3F
	Radius   float64
	Color    render.RGB
	Opacity  float64
}

// Label is a billboard above a node; Facing points toward the camera
type Label struct {
	Node     int
	Position vmath.Vec3F
	Facing   vmath.Vec3F
	ScaleX   float64
	ScaleY   float64
	Sprite   *render.Sprite
}

// PointLight is a colored light; Range 0 means unbounded
type PointLight struct {
	Position  vmath.Vec3F
	Color     render.RGB
	Intensity float64
	Range     float64
}

// Attenuation returns the light's contribution factor at p in [0, Intensity]
func (l PointLight) Attenuation(p vmath.Vec3F) float64 {
	if l.Range <= 0 {
		return l.Intensity
	}
	d := vmath.V3FDist(l.Position, p)
	if d >= l.Range {
		return 0
	}
	f := 1 - d/l.Range
	return l.Intensity * f * f
}

// State is the whole mutable scene, advanced by Step and read by renderers
type State struct {
	Time float64
	Tick uint64

	Camera *Camera
	// Smoothed pointer offset in pseudo-pixels divided by PointerDivisor
	PointerX float64
	PointerY float64

	Stars           Starfield
	Globe           Shell
	InnerGlobe      Shell
	Atmosphere      Shell
	OuterAtmosphere Shell

	Nodes  []Node
	Halos  []Halo
	Labels []Label

	Particles   []ParticleGroup
	Connections []Connection
	Rebuilds    int

	Ambient    float64
	KeyLight   PointLight
	MouseLight PointLight

	rebuildEvery uint64
	rng          *rand.Rand
}

// SetPointer records the pointer offset the camera eases toward
func (s *State) SetPointer(x, y float64) {
	s.PointerX = x
	s.PointerY = y
}

// SetAspect forwards a viewport aspect change to the camera
func (s *State) SetAspect(aspect float64) {
	s.Camera.SetAspect(aspect)
}

// MoveMouseLight places the pointer light at p
func (s *State) MoveMouseLight(p vmath.Vec3F) {
	s.MouseLight.Position = p
}
