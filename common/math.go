package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Perspective creates a perspective projection matrix for WebGPU clip space (depth in [0, 1]).
// mgl32.Perspective targets OpenGL's [-1, 1] depth range, so the matrix is built here.
//
// Parameters:
//   - fovY: vertical field of view in radians
//   - aspect: viewport aspect ratio (width/height)
//   - near: near clipping plane distance (must be > 0)
//   - far: far clipping plane distance (must be > near)
//
// Returns:
//   - mgl32.Mat4: the column-major projection matrix
func Perspective(fovY, aspect, near, far float32) mgl32.Mat4 {
	f := 1.0 / float32(math.Tan(float64(fovY)/2.0))

	var out mgl32.Mat4
	out[0] = f / aspect
	out[5] = f
	out[10] = far / (near - far)
	out[11] = -1.0
	out[14] = (near * far) / (near - far)
	return out
}

// Orthographic creates a symmetric orthographic projection matrix for WebGPU clip space (depth in [0, 1]).
// The visible volume spans halfHeight*aspect horizontally and halfHeight vertically around the view axis.
//
// Parameters:
//   - halfHeight: half of the visible height in world units (must be > 0)
//   - aspect: viewport aspect ratio (width/height)
//   - near: near clipping plane distance
//   - far: far clipping plane distance (must be > near)
//
// Returns:
//   - mgl32.Mat4: the column-major projection matrix
func Orthographic(halfHeight, aspect, near, far float32) mgl32.Mat4 {
	out := mgl32.Ident4()
	out[0] = 1 / (halfHeight * aspect)
	out[5] = 1 / halfHeight
	out[10] = 1 / (near - far)
	out[14] = near / (near - far)
	return out
}

// ViewFromTransform returns the view matrix of a camera at position with unit rotation,
// the inverse of translate(position) * rotate(rotation).
func ViewFromTransform(position mgl32.Vec3, rotation mgl32.Quat) mgl32.Mat4 {
	return rotation.Conjugate().Mat4().Mul4(mgl32.Translate3D(-position.X(), -position.Y(), -position.Z()))
}

// Centroid returns the arithmetic mean of a set of points.
//
// Parameters:
//   - points: the points to average
//
// Returns:
//   - mgl32.Vec3: the mean position
//   - bool: false if points is empty
func Centroid(points []mgl32.Vec3) (mgl32.Vec3, bool) {
	if len(points) == 0 {
		return mgl32.Vec3{}, false
	}
	var total mgl32.Vec3
	for _, p := range points {
		total = total.Add(p)
	}
	return total.Mul(1 / float32(len(points))), true
}
