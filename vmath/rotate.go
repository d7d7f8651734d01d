package vmath

import "math"

// RotateEuler rotates v by Euler angles in XYZ order (matrix Rx·Ry·Rz),
// so Z is applied first and X last
func RotateEuler(v, angles Vec3F) Vec3F {
	// Z
	if angles.Z != 0 {
		s, c := math.Sincos(angles.Z)
		v = Vec3F{v.X*c - v.Y*s, v.X*s + v.Y*c, v.Z}
	}
	// Y
	if angles.Y != 0 {
		s, c := math.Sincos(angles.Y)
		v = Vec3F{v.X*c + v.Z*s, v.Y, -v.X*s + v.Z*c}
	}
	// X
	if angles.X != 0 {
		s, c := math.Sincos(angles.X)
		v = Vec3F{v.X, v.Y*c - v.Z*s, v.Y*s + v.Z*c}
	}
	return v
}
