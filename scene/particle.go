package scene

import (
	"math"
	"math/rand"

	"github.com/lixenwraith/folio/render"
	"github.com/lixenwraith/folio/vmath"
)

// Particle orbits inside its shell's band and respawns near Origin when it
// leaves it
type Particle struct {
	Origin   vmath.Vec3F
	Position vmath.Vec3F
	Velocity vmath.Vec3F
	Phase    float64
	Speed    float64
}

// ParticleGroup is one shell of particles sharing size, opacity and band
type ParticleGroup struct {
	Index     int
	Particles []Particle
	Colors    []render.RGB
	Size      float64
	Opacity   float64
	// Respawns counts band exits since build
	Respawns int
}

// shellPalette holds per-channel [lo, hi) ranges for a shell's particle colors
type shellPalette [3][2]float64

var shellPalettes = [ShellCount]shellPalette{
	{{0.2, 0.4}, {0.5, 0.8}, {0.8, 1.0}},
	{{0.5, 0.8}, {0.2, 0.4}, {0.8, 1.0}},
	{{0.2, 0.4}, {0.7, 1.0}, {0.7, 1.0}},
}

// Band returns the inclusive radial band [inner, outer] for shell g
func Band(g int) (inner, outer float64) {
	return ParticleBandInner, ParticleBandOuter + float64(g)*ParticleBandStep
}

// InBand reports whether p lies within shell g's band
func InBand(p vmath.Vec3F, g int) bool {
	inner, outer := Band(g)
	d := vmath.V3FMag(p)
	return d >= inner && d <= outer
}

func newParticleGroup(rng *rand.Rand, g, n int) ParticleGroup {
	pal := shellPalettes[g%ShellCount]
	grp := ParticleGroup{
		Index:     g,
		Particles: make([]Particle, n),
		Colors:    make([]render.RGB, n),
		Size:      ParticleBaseSize + float64(g)*ParticleSizeStep,
		Opacity:   ParticleBaseOpacity - float64(g)*ParticleOpacityStep,
	}
	for j := range grp.Particles {
		radius := ParticleBaseRadius + rng.Float64()*ParticleRadiusRange + float64(g)*ParticleShellStep
		pos := vmath.RandomOnSphere(rng, radius)
		grp.Particles[j] = Particle{
			Origin:   pos,
			Position: pos,
			Velocity: vmath.Jitter(rng, ParticleInitSpeed),
			Phase:    rng.Float64() * 2 * math.Pi,
			Speed:    vmath.RandRange(rng, 0.01, 0.03),
		}
		grp.Colors[j] = render.FromFloat(
			vmath.RandRange(rng, pal[0][0], pal[0][1]),
			vmath.RandRange(rng, pal[1][0], pal[1][1]),
			vmath.RandRange(rng, pal[2][0], pal[2][1]),
		)
	}
	return grp
}

// stepParticles advances every shell by one tick at time t
func (s *State) stepParticles(t float64) {
	for g := range s.Particles {
		grp := &s.Particles[g]
		for i := range grp.Particles {
			if stepParticle(&grp.Particles[i], t, g, s.rng) {
				grp.Respawns++
			}
		}
	}
}

// stepParticle applies center pull, z-axis swirl and phase wave, clamps the
// speed and moves the particle; reports whether it was respawned
func stepParticle(p *Particle, t float64, g int, rng *rand.Rand) bool {
	pos := p.Position
	v := p.Velocity

	v = vmath.V3FAdd(v, vmath.V3FScale(vmath.V3FNormalize(vmath.V3FScale(pos, -1)), ParticleCenterPull))
	v = vmath.V3FAdd(v, vmath.Vec3F{X: pos.Y * ParticleSwirl, Y: -pos.X * ParticleSwirl})
	v = vmath.V3FAdd(v, vmath.Vec3F{
		X: math.Sin(t+p.Phase) * ParticleWave,
		Y: math.Cos(t*0.7+p.Phase) * ParticleWave,
		Z: math.Sin(t*0.5+p.Phase) * ParticleWave,
	})
	v = vmath.V3FClampMag(v, ParticleMaxSpeed)

	p.Velocity = v
	p.Position = vmath.V3FAdd(pos, v)

	if InBand(p.Position, g) {
		return false
	}
	p.respawn(g, rng)
	return true
}

// respawn moves the particle next to its origin, resampling the jitter until
// the new position is inside the band
func (p *Particle) respawn(g int, rng *rand.Rand) {
	p.Position = p.Origin
	for range ParticleRespawnTries {
		cand := vmath.V3FAdd(p.Origin, vmath.Jitter(rng, ParticleRespawnJitter))
		if InBand(cand, g) {
			p.Position = cand
			break
		}
	}
	p.Velocity = vmath.Jitter(rng, ParticleRespawnSpeed)
}
