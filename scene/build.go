package scene

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/folio/render"
	"github.com/lixenwraith/folio/vmath"
)

// Params configures scene construction
type Params struct {
	Skills            []Skill
	StarCount         int
	ParticlesPerShell int
	RebuildEvery      int
	Aspect            float64
	// Rand is the random source for all scene sampling; nil seeds from the clock
	Rand *rand.Rand
}

// DefaultParams returns the stock scene configuration
func DefaultParams() Params {
	return Params{
		Skills:            DefaultSkills,
		StarCount:         StarCount,
		ParticlesPerShell: ParticlesPerShell,
		RebuildEvery:      RebuildEvery,
		Aspect:            1,
	}
}

// Shell and light colors
var (
	globeColor         = render.Hex(0x0077ff)
	globeEmissive      = render.Hex(0x0044aa)
	innerGlobeColor    = render.Hex(0x0055aa)
	atmosphereColor    = render.Hex(0x0077ff)
	outerAtmosColor    = render.Hex(0x00aaff)
	mouseLightColor    = render.Hex(0x00aaff)
	mouseLightStartPos = vmath.Vec3F{Z: 15}
	keyLightPos        = vmath.Vec3F{X: 10, Y: 10, Z: 10}
)

// Build constructs the static scene graph and the initial connection set
func Build(p Params) *State {
	rng := p.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if p.RebuildEvery <= 0 {
		p.RebuildEvery = RebuildEvery
	}

	s := &State{
		Camera:       NewCamera(p.Aspect),
		Ambient:      AmbientIntensity,
		rebuildEvery: uint64(p.RebuildEvery),
		rng:          rng,
	}

	s.Stars = buildStarfield(rng, max(p.StarCount, 0))

	s.Globe = Shell{
		Wire:        NewSphereWireframe(GlobeRadius, GlobeWidthSegments, GlobeHeightSegments),
		Radius:      GlobeRadius,
		Color:       globeColor,
		Emissive:    globeEmissive,
		BaseOpacity: GlobeOpacity,
		Opacity:     GlobeOpacity,
		Scale:       1,
	}
	s.InnerGlobe = Shell{
		Wire:        NewIcosphereWireframe(InnerGlobeRadius, InnerGlobeDetail),
		Radius:      InnerGlobeRadius,
		Color:       innerGlobeColor,
		BaseOpacity: InnerGlobeOpacity,
		Opacity:     InnerGlobeOpacity,
		Scale:       1,
	}
	s.Atmosphere = Shell{
		Radius:      AtmosphereRadius,
		Color:       atmosphereColor,
		BaseOpacity: AtmosphereOpacity,
		Opacity:     AtmosphereOpacity,
		Scale:       1,
	}
	s.OuterAtmosphere = Shell{
		Radius:      OuterAtmosphereRadius,
		Color:       outerAtmosColor,
		BaseOpacity: OuterAtmosphereOpacity,
		Opacity:     OuterAtmosphereOpacity,
		Scale:       1,
	}

	for i, sk := range p.Skills {
		s.Nodes = append(s.Nodes, Node{
			Skill:    sk,
			Position: sk.Position,
			Radius:   NodeRadius,
			Scale:    1,
			Emissive: NodeEmissiveStart,
		})
		s.Halos = append(s.Halos, Halo{
			Position: sk.Position,
			Radius:   HaloRadius,
			Color:    sk.Color,
			Opacity:  HaloOpacity,
		})

		sprite, ok := render.NewLabelSprite(sk.Name, sk.Color)
		if !ok {
			continue
		}
		s.Labels = append(s.Labels, Label{
			Node:     i,
			Position: vmath.V3FAdd(sk.Position, vmath.Vec3F{Y: LabelOffsetY}),
			Facing:   vmath.V3FNormalize(vmath.V3FSub(s.Camera.Position, sk.Position)),
			ScaleX:   LabelScaleX,
			ScaleY:   LabelScaleY,
			Sprite:   sprite,
		})
	}

	s.Particles = make([]ParticleGroup, ShellCount)
	for g := range s.Particles {
		s.Particles[g] = newParticleGroup(rng, g, max(p.ParticlesPerShell, 0))
	}

	s.KeyLight = PointLight{Position: keyLightPos, Color: render.RGBWhite, Intensity: KeyLightIntensity}
	s.MouseLight = PointLight{
		Position:  mouseLightStartPos,
		Color:     mouseLightColor,
		Intensity: MouseLightIntensity,
		Range:     MouseLightRange,
	}

	s.RebuildConnections()
	return s
}

func buildStarfield(rng *rand.Rand, n int) Starfield {
	sf := Starfield{Stars: make([]Star, n), Opacity: StarOpacity}
	half := StarSpread / 2
	for i := range sf.Stars {
		pos := vmath.Vec3F{
			X: vmath.RandRange(rng, -half, half),
			Y: vmath.RandRange(rng, -half, half),
			Z: vmath.RandRange(rng, -half, half),
		}
		sf.Stars[i] = Star{
			Position: pos,
			Size:     vmath.RandRange(rng, 0.05, 0.15),
			Color:    starColor(rng),
		}
	}
	return sf
}

// starColor picks a mostly white tint with rare blue or red stars
func starColor(rng *rand.Rand) render.RGB {
	roll := rng.Float64()
	switch {
	case roll > 0.95:
		return render.FromFloat(vmath.RandRange(rng, 0.7, 1), vmath.RandRange(rng, 0.7, 1), 1)
	case roll > 0.9:
		return render.FromFloat(1, vmath.RandRange(rng, 0.7, 1), vmath.RandRange(rng, 0.7, 1))
	default:
		return render.FromFloat(vmath.RandRange(rng, 0.9, 1), vmath.RandRange(rng, 0.9, 1), vmath.RandRange(rng, 0.9, 1))
	}
}
