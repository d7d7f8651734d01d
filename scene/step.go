package scene

import (
	"math"

	"github.com/lixenwraith/folio/vmath"
)

// Step advances the scene by one animation tick
func Step(s *State) {
	s.Time += TimeStep
	s.Tick++
	t := s.Time

	s.Globe.Rotation.Y += GlobeSpinY
	s.Globe.Rotation.X += GlobeSpinX
	s.InnerGlobe.Rotation.Y += InnerSpinY
	s.InnerGlobe.Rotation.Z += InnerSpinZ
	s.Atmosphere.Rotation.Y += AtmosphereSpinY
	s.OuterAtmosphere.Rotation.Y += OuterSpinY

	pulse := GlobePulse(t)
	s.Globe.Opacity = s.Globe.BaseOpacity * pulse
	s.InnerGlobe.Opacity = s.InnerGlobe.BaseOpacity * (1 - pulse + InnerPulseBias)

	s.Atmosphere.Scale = math.Sin(t*AtmosphereWaveFreq)*AtmosphereWaveAmp + 1
	s.OuterAtmosphere.Scale = math.Sin(t*AtmosphereWaveFreq+OuterWavePhase)*OuterWaveAmp + 1

	stepCamera(s)
	stepNodes(s, t)

	if s.rebuildEvery > 0 && s.Tick%s.rebuildEvery == 0 {
		s.RebuildConnections()
	}

	s.stepParticles(t)

	s.Stars.Rotation.Y += StarSpinPerTick
	s.Stars.Rotation.Z += StarSpinPerTick
	s.Stars.Rotation.X = math.Sin(t*StarWobbleFreq) * StarWobbleAmp
}

// GlobePulse is the globe's breathing factor at time t, in [0.8, 1.0]
func GlobePulse(t float64) float64 {
	return math.Sin(t*GlobePulseFreq)*GlobePulseAmp + GlobePulseBase
}

// CameraTarget returns the point the camera eases toward for the current pointer
func (s *State) CameraTarget() (x, y float64) {
	return s.PointerX * CameraFollow, -s.PointerY * CameraFollow
}

func stepCamera(s *State) {
	tx, ty := s.CameraTarget()
	cam := s.Camera
	cam.Position.X = vmath.Lerp(cam.Position.X, tx, CameraDamping)
	cam.Position.Y = vmath.Lerp(cam.Position.Y, ty, CameraDamping)
	cam.LookAt(vmath.Zero3F)
}

// NodeOffset is the orbit displacement of node k from its base at time t
func NodeOffset(t float64, k int) vmath.Vec3F {
	kf := float64(k)
	return vmath.Vec3F{
		X: math.Cos(t*0.7+kf*0.5) * NodeOrbitRadius,
		Y: math.Sin(t*0.9+kf*0.7) * NodeOrbitRadius,
		Z: math.Sin(t*0.5+kf*0.9) * math.Cos(t*0.3+kf*0.6) * NodeOrbitRadius,
	}
}

func stepNodes(s *State, t float64) {
	for k := range s.Nodes {
		n := &s.Nodes[k]
		kf := float64(k)
		n.Scale = math.Sin(t*NodePulseFreq+kf*NodePulsePhase)*NodePulseAmp + 1
		n.Emissive = NodeGlowBase + math.Sin(t*NodeGlowFreq+kf*NodeGlowPhase)*NodeGlowAmp
		n.Position = vmath.V3FAdd(n.Skill.Position, NodeOffset(t, k))
	}

	for i := range s.Labels {
		l := &s.Labels[i]
		n := s.Nodes[l.Node]
		l.Position = vmath.V3FAdd(n.Position, vmath.Vec3F{Y: LabelOffsetY * n.Scale})
		l.Facing = vmath.V3FNormalize(vmath.V3FSub(s.Camera.Position, l.Position))
	}
}
