package scene

import "math"

// Animation loop
const (
	TimeStep     = 0.01 // time accumulator increment per tick
	RebuildEvery = 50   // connection rebuild cadence in ticks
)

// Camera
const (
	CameraFOV       = 75.0
	CameraNear      = 0.1
	CameraFar       = 1000.0
	CameraDistance  = 20.0
	CameraDamping   = 0.03 // first-order low-pass factor per tick
	CameraFollow    = 0.8  // pointer offset → camera target scale
	PointerDivisor  = 100.0
	MouseLightDepth = 0.5 // NDC depth used when unprojecting the pointer
)

// Starfield
const (
	StarCount       = 1500
	StarSpread      = 2000.0
	StarOpacity     = 0.8
	StarSpinPerTick = 0.0001
	StarWobbleFreq  = 0.1
	StarWobbleAmp   = 0.01
)

// Globe and atmosphere shells
const (
	GlobeRadius            = 10.0
	GlobeOpacity           = 0.15
	GlobeWidthSegments     = 32
	GlobeHeightSegments    = 16
	InnerGlobeRadius       = 9.5
	InnerGlobeOpacity      = 0.1
	InnerGlobeDetail       = 1
	AtmosphereRadius       = 10.5
	AtmosphereOpacity      = 0.08
	OuterAtmosphereRadius  = 11.5
	OuterAtmosphereOpacity = 0.05

	GlobePulseFreq = 0.5
	GlobePulseAmp  = 0.1
	GlobePulseBase = 0.9
	InnerPulseBias = 0.5

	AtmosphereWaveFreq = 0.3
	AtmosphereWaveAmp  = 0.5
	OuterWaveAmp       = 0.3
	OuterWavePhase     = math.Pi
)

// Per-tick shell rotation increments (radians)
const (
	GlobeSpinY      = 0.001
	GlobeSpinX      = 0.0005
	InnerSpinY      = -0.0015
	InnerSpinZ      = 0.0005
	AtmosphereSpinY = 0.0008
	OuterSpinY      = -0.0005
)

// Skill nodes and labels
const (
	NodeRadius        = 0.4
	NodeEmissiveStart = 0.6
	HaloRadius        = 0.55
	HaloOpacity       = 0.2
	LabelOffsetY      = 1.2
	LabelScaleX       = 2.5
	LabelScaleY       = 1.25

	NodePulseFreq  = 1.5
	NodePulsePhase = 0.7
	NodePulseAmp   = 0.15

	NodeGlowBase  = 0.4
	NodeGlowAmp   = 0.25
	NodeGlowFreq  = 2.0
	NodeGlowPhase = 1.3

	NodeOrbitRadius = 0.5
)

// Connections
const (
	ConnectionMaxDistance = 15.0
	ConnectionSegments    = 20
	ConnectionJitter      = 1.0
	ConnectionMinOpacity  = 0.1
	ConnectionBaseOpacity = 0.5
	ConnectionFalloff     = 30.0
)

// Particles
const (
	ShellCount            = 3
	ParticlesPerShell     = 300
	ParticleBaseRadius    = 10.0
	ParticleRadiusRange   = 3.0
	ParticleShellStep     = 1.5
	ParticleInitSpeed     = 0.015 // initial velocity component amplitude
	ParticleRespawnSpeed  = 0.01  // respawn velocity component amplitude
	ParticleRespawnJitter = 1.0
	ParticleRespawnTries  = 8

	ParticleCenterPull = 0.0001
	ParticleSwirl      = 0.001
	ParticleWave       = 0.002
	ParticleMaxSpeed   = 0.05

	ParticleBandInner = 9.0
	ParticleBandOuter = 15.0
	ParticleBandStep  = 2.0

	ParticleBaseSize    = 0.1
	ParticleSizeStep    = 0.05
	ParticleBaseOpacity = 0.7
	ParticleOpacityStep = 0.1
)

// Lights
const (
	AmbientIntensity    = 0.5
	KeyLightIntensity   = 1.0
	MouseLightIntensity = 2.0
	MouseLightRange     = 50.0
)
