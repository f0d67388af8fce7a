package core

import "math"

// Translation returns a translation matrix
func Translation(x, y, z float64) Matrix4 {
	m := Identity()
	m[0][3] = x
	m[1][3] = y
	m[2][3] = z
	return m
}

// Scaling returns a scaling matrix
func Scaling(x, y, z float64) Matrix4 {
	m := Identity()
	m[0][0] = x
	m[1][1] = y
	m[2][2] = z
	return m
}

// RotationX returns a rotation around the X axis (radians)
func RotationX(r float64) Matrix4 {
	cos, sin := math.Cos(r), math.Sin(r)
	m := Identity()
	m[1][1] = cos
	m[1][2] = -sin
	m[2][1] = sin
	m[2][2] = cos
	return m
}

// RotationY returns a rotation around the Y axis (radians)
func RotationY(r float64) Matrix4 {
	cos, sin := math.Cos(r), math.Sin(r)
	m := Identity()
	m[0][0] = cos
	m[0][2] = sin
	m[2][0] = -sin
	m[2][2] = cos
	return m
}

// RotationZ returns a rotation around the Z axis (radians)
func RotationZ(r float64) Matrix4 {
	cos, sin := math.Cos(r), math.Sin(r)
	m := Identity()
	m[0][0] = cos
	m[0][1] = -sin
	m[1][0] = sin
	m[1][1] = cos
	return m
}

// Shearing returns a shearing matrix; each argument moves one axis in
// proportion to another (xy = x in proportion to y, and so on)
func Shearing(xy, xz, yx, yz, zx, zy float64) Matrix4 {
	m := Identity()
	m[0][1] = xy
	m[0][2] = xz
	m[1][0] = yx
	m[1][2] = yz
	m[2][0] = zx
	m[2][1] = zy
	return m
}

// Chain composes transforms so that the first argument is applied first
func Chain(transforms ...Matrix4) Matrix4 {
	result := Identity()
	for _, t := range transforms {
		result = t.Multiply(result)
	}
	return result
}

// ViewTransform orients the world relative to an eye at from looking at to
func ViewTransform(from, to, up Tuple) Matrix4 {
	forward := to.Subtract(from).Normalize()
	left := forward.Cross(up.Normalize())
	trueUp := left.Cross(forward)

	orientation := Matrix4{
		{left.X, left.Y, left.Z, 0},
		{trueUp.X, trueUp.Y, trueUp.Z, 0},
		{-forward.X, -forward.Y, -forward.Z, 0},
		{0, 0, 0, 1},
	}
	return orientation.Multiply(Translation(-from.X, -from.Y, -from.Z))
}
