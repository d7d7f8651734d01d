package vmath

import (
	"math"
	"math/rand"
)

// RandomOnSphere samples a point uniformly on the sphere of the given radius
// theta uniform in [0, 2π), phi = acos(2u-1) to avoid polar clustering
func RandomOnSphere(rng *rand.Rand, radius float64) Vec3F {
	theta := rng.Float64() * 2 * math.Pi
	phi := math.Acos(2*rng.Float64() - 1)
	sinPhi := math.Sin(phi)
	return Vec3F{
		X: radius * sinPhi * math.Cos(theta),
		Y: radius * sinPhi * math.Sin(theta),
		Z: radius * math.Cos(phi),
	}
}

// Jitter returns a vector with each component uniform in [-amp, amp)
func Jitter(rng *rand.Rand, amp float64) Vec3F {
	return Vec3F{
		X: (rng.Float64() - 0.5) * 2 * amp,
		Y: (rng.Float64() - 0.5) * 2 * amp,
		Z: (rng.Float64() - 0.5) * 2 * amp,
	}
}

// RandRange returns a float uniform in [lo, hi)
func RandRange(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
